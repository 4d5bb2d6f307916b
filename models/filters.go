package models

// FilterMetadata is everything the storefront needs to render its filter rail.
type FilterMetadata struct {
	Categories []CategoryCount `json:"categories"`
	Brands     []string        `json:"brands"`
	Sizes      []string        `json:"sizes"`
	PriceRange *PriceRangeData `json:"priceRange"`
}

// CategoryCount is one category tag with its active product count.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// PriceRangeData represents the minimum and maximum price in the store
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
