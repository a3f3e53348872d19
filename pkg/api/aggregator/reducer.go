package aggregators

import (
	"context"

	num "numericadt/pkg/api/numeric"
)

// KeyedValue pairs a number with the group it belongs to
type KeyedValue interface {
	GroupKey() string
	Value() num.Value
}

// GroupResult represents the folded value of a group
type GroupResult interface {
	GroupKey() string
	Result() num.Value
	// Count returns the number of values folded into Result
	Count() int
}

// Reducer folds keyed values group by group
type Reducer interface {
	// Process reads values until the channel is closed and returns
	// one result per group key, ordered by key.
	Process(ctx context.Context, in <-chan KeyedValue) ([]GroupResult, error)
}
