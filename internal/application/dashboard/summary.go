package dashboard

import (
	"github.com/pos/backoffice/internal/domain/datatable"
	"github.com/shopspring/decimal"
)

// Summary aggregates the filtered set of a table, across all pages
type Summary struct {
	Count      int             `json:"count"`
	ByCategory map[string]int  `json:"by_category"`
	Amount     decimal.Decimal `json:"amount"`
}

// Summarize counts records per category value and sums their amounts.
// Either accessor may be nil.
func Summarize[R any](records []R, category func(R) any, amount func(R) decimal.Decimal) Summary {
	s := Summary{
		Count:      len(records),
		ByCategory: make(map[string]int),
		Amount:     decimal.Zero,
	}
	for _, r := range records {
		if category != nil {
			s.ByCategory[datatable.Stringify(category(r))]++
		}
		if amount != nil {
			s.Amount = s.Amount.Add(amount(r))
		}
	}
	return s
}
