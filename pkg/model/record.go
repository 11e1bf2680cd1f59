// pkg/model/record.go
package model

// RawRecord is one uploaded spreadsheet row after header renaming but before
// any cleaning. Text fields arrive with arbitrary whitespace noise and
// inconsistent spelling.
type RawRecord struct {
	Region          string  `json:"region"`
	City            string  `json:"city"`
	Client          string  `json:"client"`
	DeliveryAddress Value   `json:"-"`
	ProductName     Value   `json:"-"`
	Quantity        float64 `json:"quantity"`
	Distributor     string  `json:"distributor"`
}

// CleanedRecord is a RawRecord plus the fields derived by the cleaning
// pipeline. JSON tags match the sales_data_month store columns exactly.
type CleanedRecord struct {
	Region          string  `json:"region" db:"region"`
	City            string  `json:"city" db:"city"`
	Client          string  `json:"client" db:"client"`
	DeliveryAddress string  `json:"delivery_address" db:"delivery_address"`
	ProductName     string  `json:"product_name" db:"product_name"`
	Quantity        float64 `json:"quantity" db:"quantity"`
	Territory       string  `json:"territory" db:"territory"`
	ProductLine     string  `json:"product_line" db:"product_line"`
	HouseNumber     string  `json:"house_number" db:"house_number"`
	Street          string  `json:"street" db:"street"`
	SourceFileDate  string  `json:"source_file_date" db:"source_file_date"`
	Distributor     string  `json:"distributor" db:"distributor"`
}

// RepRecord is one row of the representative/manager sales table
// (sales_data_rep). ID, Name and RegionCode are internal identifiers that are
// stripped before display.
type RepRecord struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	RegionCode  string  `json:"region_code"`
	Region      string  `json:"region"`
	ManagerName string  `json:"manager_name"`
	Month       string  `json:"month"`
	Year        int     `json:"year"`
	Quantity    float64 `json:"quantity"`
}
