// pkg/analytics/summary.go
package analytics

import (
	"sort"

	"github.com/GrayMists/sales-ingress/pkg/model"
)

// ProductTotal is the summed quantity for one product.
type ProductTotal struct {
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
}

// TreemapGroup is one leaf of the product-line treemap.
type TreemapGroup struct {
	ProductLine string  `json:"product_line"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
}

// Summary is the payload of the general sales overview.
type Summary struct {
	ProductTotals []ProductTotal `json:"product_totals"`
	MeanQuantity  float64        `json:"mean_quantity"`
	TreemapGroups []TreemapGroup `json:"treemap_groups"`
}

// Summarize computes per-product totals (highest first) and the
// product-line/product breakdown used by the treemap view.
func Summarize(records []model.CleanedRecord) *Summary {
	byProduct := make(map[string]float64)
	byLineProduct := make(map[TreemapGroup]float64)

	for _, rec := range records {
		byProduct[rec.ProductName] += rec.Quantity
		key := TreemapGroup{ProductLine: rec.ProductLine, ProductName: rec.ProductName}
		byLineProduct[key] += rec.Quantity
	}

	summary := &Summary{}
	for name, quantity := range byProduct {
		summary.ProductTotals = append(summary.ProductTotals, ProductTotal{
			ProductName: name,
			Quantity:    quantity,
		})
	}
	sort.Slice(summary.ProductTotals, func(i, j int) bool {
		if summary.ProductTotals[i].Quantity != summary.ProductTotals[j].Quantity {
			return summary.ProductTotals[i].Quantity > summary.ProductTotals[j].Quantity
		}
		return summary.ProductTotals[i].ProductName < summary.ProductTotals[j].ProductName
	})

	if len(summary.ProductTotals) > 0 {
		var total float64
		for _, pt := range summary.ProductTotals {
			total += pt.Quantity
		}
		summary.MeanQuantity = total / float64(len(summary.ProductTotals))
	}

	for key, quantity := range byLineProduct {
		group := key
		group.Quantity = quantity
		summary.TreemapGroups = append(summary.TreemapGroups, group)
	}
	sort.Slice(summary.TreemapGroups, func(i, j int) bool {
		if summary.TreemapGroups[i].ProductLine != summary.TreemapGroups[j].ProductLine {
			return summary.TreemapGroups[i].ProductLine < summary.TreemapGroups[j].ProductLine
		}
		return summary.TreemapGroups[i].ProductName < summary.TreemapGroups[j].ProductName
	})

	return summary
}
