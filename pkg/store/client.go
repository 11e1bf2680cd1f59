// pkg/store/client.go
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GrayMists/sales-ingress/pkg/config"
	"github.com/GrayMists/sales-ingress/pkg/model"
)

// Client talks to the hosted Supabase REST endpoint. Uploads are chunked,
// reads are paginated, and every request passes through a shared rate
// limiter.
type Client struct {
	cfg        *config.SupabaseConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger

	chunkSize int
	pageSize  int
}

// ClientOptions tune transfer behavior. Zero values fall back to the
// defaults used in production.
type ClientOptions struct {
	ChunkSize      int
	PageSize       int
	RequestTimeout time.Duration
	RateLimit      float64
}

// NewClient creates a store client for the given Supabase project.
func NewClient(cfg *config.SupabaseConfig, opts ClientOptions, logger *zap.Logger) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("supabase config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 500
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 1000
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 10
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: opts.RequestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), int(opts.RateLimit)+1),
		logger:     logger,
		chunkSize:  opts.ChunkSize,
		pageSize:   opts.PageSize,
	}, nil
}

// UploadResult reports the outcome of a chunked upload.
type UploadResult struct {
	TotalRecords    int
	UploadedRecords int
	Chunks          int
	FailedChunk     int // 1-based index of the failed chunk, 0 when all succeeded
}

// UploadSales writes cleaned records to the sales table in chunks. The first
// failed chunk stops the upload; records already written stay written, so
// the result reports how far the upload got.
func (c *Client) UploadSales(ctx context.Context, records []model.CleanedRecord) (*UploadResult, error) {
	result := &UploadResult{TotalRecords: len(records)}
	if len(records) == 0 {
		return result, nil
	}

	for i := 0; i < len(records); i += c.chunkSize {
		end := i + c.chunkSize
		if end > len(records) {
			end = len(records)
		}
		chunk := records[i:end]
		result.Chunks++

		if err := c.insertChunk(ctx, c.cfg.SalesTable, chunk); err != nil {
			result.FailedChunk = result.Chunks
			return result, fmt.Errorf("chunk %d/%d failed after %d records uploaded: %w",
				result.Chunks, (len(records)+c.chunkSize-1)/c.chunkSize, result.UploadedRecords, err)
		}

		result.UploadedRecords += len(chunk)
		c.logger.Debug("Chunk uploaded",
			zap.Int("chunk", result.Chunks),
			zap.Int("records", len(chunk)),
			zap.Int("totalUploaded", result.UploadedRecords))
	}

	c.logger.Info("Upload complete",
		zap.String("table", c.cfg.SalesTable),
		zap.Int("records", result.UploadedRecords),
		zap.Int("chunks", result.Chunks))

	return result, nil
}

func (c *Client) insertChunk(ctx context.Context, table string, chunk []model.CleanedRecord) error {
	body, err := json.Marshal(chunk)
	if err != nil {
		return fmt.Errorf("failed to encode chunk: %w", err)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.cfg.URL, table)
	if len(c.cfg.OnConflict) > 0 {
		endpoint += "?on_conflict=" + url.QueryEscape(strings.Join(c.cfg.OnConflict, ","))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build insert request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	if len(c.cfg.OnConflict) > 0 {
		req.Header.Set("Prefer", "resolution=merge-duplicates,return=minimal")
	} else {
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return c.statusError(resp)
	}
	return nil
}

// SalesFilter narrows fetched sales rows. Empty fields are ignored.
type SalesFilter struct {
	Region    string // Oblast display name stored in the region column
	Month     string // source_file_date value, e.g. "2024-07-01"
	Territory string
}

// FetchSales reads the sales table page by page until a short page signals
// the end of the result set.
func (c *Client) FetchSales(ctx context.Context, filter SalesFilter) ([]model.CleanedRecord, error) {
	params := url.Values{}
	params.Set("select", "*")
	if filter.Region != "" {
		params.Set("region", "eq."+filter.Region)
	}
	if filter.Month != "" {
		params.Set("source_file_date", "eq."+filter.Month)
	}
	if filter.Territory != "" {
		params.Set("territory", "eq."+filter.Territory)
	}

	var all []model.CleanedRecord
	for offset := 0; ; offset += c.pageSize {
		var page []model.CleanedRecord
		if err := c.fetchPage(ctx, c.cfg.SalesTable, params, offset, &page); err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < c.pageSize {
			break
		}
	}

	c.logger.Debug("Sales fetched",
		zap.String("table", c.cfg.SalesTable),
		zap.String("region", filter.Region),
		zap.String("month", filter.Month),
		zap.Int("records", len(all)))

	return all, nil
}

// FetchReps reads the representative sales table for one region code.
func (c *Client) FetchReps(ctx context.Context, regionCode string) ([]model.RepRecord, error) {
	params := url.Values{}
	params.Set("select", "*")
	if regionCode != "" {
		params.Set("region_code", "eq."+regionCode)
	}

	var all []model.RepRecord
	for offset := 0; ; offset += c.pageSize {
		var page []model.RepRecord
		if err := c.fetchPage(ctx, c.cfg.RepTable, params, offset, &page); err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < c.pageSize {
			break
		}
	}

	return all, nil
}

// fetchPage reads one page into dest, which must be a pointer to a slice.
func (c *Client) fetchPage(ctx context.Context, table string, params url.Values, offset int, dest interface{}) error {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("limit", strconv.Itoa(c.pageSize))
	query.Set("offset", strconv.Itoa(offset))

	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", c.cfg.URL, table, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build fetch request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return c.statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode page at offset %d: %w", offset, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter interrupted: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store request failed: %w", err)
	}
	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.cfg.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
}

func (c *Client) statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("store returned status %d: %s", resp.StatusCode, msg)
}
