// Package ingest - Loss aggregation
package ingest

import (
	"github.com/shopspring/decimal"

	"cashback-report/core/types"
)

// aggregate accumulates loss for one (bucket date, category) pair.
// Aggregates live only for the duration of one batch run.
type aggregate struct {
	Date      string
	Mode      types.Category
	TotalLoss decimal.Decimal
}

// aggregateSet is an insertion-ordered map of aggregates. Plain map
// iteration would make report order depend on runtime hashing; tracking
// insertion order keeps two runs over the same input byte-identical.
type aggregateSet struct {
	order []string
	items map[string]*aggregate
}

func newAggregateSet() *aggregateSet {
	return &aggregateSet{items: make(map[string]*aggregate)}
}

// add sums a loss contribution into the (date, mode) bucket
func (s *aggregateSet) add(date string, mode types.Category, loss decimal.Decimal) {
	key := date + "|" + mode.String()
	item, ok := s.items[key]
	if !ok {
		item = &aggregate{Date: date, Mode: mode, TotalLoss: decimal.Zero}
		s.items[key] = item
		s.order = append(s.order, key)
	}
	item.TotalLoss = item.TotalLoss.Add(loss)
}

// values returns the aggregates in insertion order
func (s *aggregateSet) values() []*aggregate {
	out := make([]*aggregate, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.items[key])
	}
	return out
}
