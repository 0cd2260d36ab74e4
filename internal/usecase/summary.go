package usecase

import (
	"travelledger-service/internal/domain/entity"
)

// Summarize derives the financial summary for a snapshot. It is a pure
// function: no I/O, no mutation of the snapshot, same output for the same
// input. Missing or non-numeric amounts contribute zero and are tallied in
// CoercedAmounts rather than treated as errors.
func Summarize(snap *entity.Snapshot) *entity.Summary {
	summary := &entity.Summary{
		ServiceBreakdown: make(map[entity.CategoryTag]int, 8),
	}

	for _, tag := range entity.Categories() {
		count := snap.Count(tag)
		summary.ServiceBreakdown[tag] = count
		summary.TotalServices += count
	}

	for _, tr := range snap.Tagged() {
		revenue := tr.Record.Revenue()
		cost := tr.Record.Cost()

		summary.TotalCustomerAmount += revenue.Or(0)
		summary.TotalSupplierAmount += cost.Or(0)

		if !revenue.Valid {
			summary.CoercedAmounts++
		}
		if !cost.Valid {
			summary.CoercedAmounts++
		}
	}

	// Computed once from the two totals, never re-derived per record.
	summary.TotalProfit = summary.TotalCustomerAmount - summary.TotalSupplierAmount
	return summary
}
