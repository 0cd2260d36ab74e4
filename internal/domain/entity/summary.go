package entity

// Summary holds the cross-category financial totals derived from a Snapshot.
// It is recomputed with every snapshot and never persisted.
type Summary struct {
	TotalServices       int                 `json:"totalServices"`
	TotalCustomerAmount int64               `json:"totalCustomerAmount"`
	TotalSupplierAmount int64               `json:"totalSupplierAmount"`
	TotalProfit         int64               `json:"totalProfit"`
	ServiceBreakdown    map[CategoryTag]int `json:"serviceBreakdown"`

	// CoercedAmounts counts amount fields that were missing or non-numeric
	// and therefore contributed zero. It surfaces bad data entry without
	// changing any total.
	CoercedAmounts int `json:"coercedAmounts"`
}
