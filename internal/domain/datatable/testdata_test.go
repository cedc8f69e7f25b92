package datatable

import (
	"fmt"
	"time"
)

type testOrder struct {
	Number   string
	Customer string
	Total    float64
	Paid     bool
	Status   string
	Placed   time.Time
	Note     *string
}

func orderColumns() []Column[testOrder] {
	return []Column[testOrder]{
		Field("Order", "number", func(o testOrder) any { return o.Number }),
		Field("Customer", "customer", func(o testOrder) any { return o.Customer }),
		Field("Total", "total", func(o testOrder) any { return o.Total }),
		Field("Paid", "paid", func(o testOrder) any { return o.Paid }),
		Field("Note", "note", func(o testOrder) any { return o.Note }),
	}
}

func makeOrders(n int) []testOrder {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	orders := make([]testOrder, n)
	for i := range orders {
		orders[i] = testOrder{
			Number:   fmt.Sprintf("ORD-%03d", i+1),
			Customer: fmt.Sprintf("Customer %d", i+1),
			Total:    float64(i+1) * 10.5,
			Status:   []string{"PENDING", "COMPLETED"}[i%2],
			Placed:   base.AddDate(0, 0, i),
		}
	}
	return orders
}
