package aggregator

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	api "numericadt/pkg/api/aggregator"
	apiNum "numericadt/pkg/api/numeric"
	num "numericadt/pkg/numeric"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const valueQueueSize = 1000

type keyedValue struct {
	key string
	val apiNum.Value
}

func (k keyedValue) GroupKey() string    { return k.key }
func (k keyedValue) Value() apiNum.Value { return k.val }

// Keyed creates a KeyedValue for the given group.
func Keyed(key string, val apiNum.Value) api.KeyedValue {
	return keyedValue{key: key, val: val}
}

type groupResult struct {
	key   string
	val   apiNum.Value
	count int
}

func (g groupResult) GroupKey() string     { return g.key }
func (g groupResult) Result() apiNum.Value { return g.val }
func (g groupResult) Count() int           { return g.count }

var (
	_ api.KeyedValue  = (*keyedValue)(nil)
	_ api.GroupResult = (*groupResult)(nil)
	_ api.Reducer     = (*groupReducer)(nil)
)

type foldFunc func(acc, val apiNum.Value) (apiNum.Value, error)

type groupReducer struct {
	name string
	fold foldFunc
}

// NewSumBy creates a reducer that adds up the values of each group.
func NewSumBy() api.Reducer {
	return &groupReducer{name: "sum", fold: apiNum.Value.Add}
}

// NewProductBy creates a reducer that multiplies the values of each group.
func NewProductBy() api.Reducer {
	return &groupReducer{name: "product", fold: apiNum.Value.Mul}
}

// reduce folds every value of one group. All values of a group must share a kind.
func (r *groupReducer) reduce(ctx context.Context, in <-chan apiNum.Value) (apiNum.Value, int, error) {
	acc := num.None
	cnt := 0
	done := ctx.Done()

	for val := range in {
		select {
		case <-done:
			return nil, 0, ctx.Err()
		default:
		}

		if cnt == 0 {
			acc = val
		} else {
			next, err := r.fold(acc, val)
			if err != nil {
				slog.ErrorContext(ctx, "Error folding value", "op", r.name, "acc", acc.String(), "value", val.String(), "error", err)
				return nil, 0, err
			}
			acc = next
		}
		cnt++
	}
	return acc, cnt, nil
}

// Process implements aggregators.Reducer.
func (r *groupReducer) Process(ctx context.Context, in <-chan api.KeyedValue) ([]api.GroupResult, error) {
	// group key → queue feeding that group's worker
	queues := make(map[string]chan apiNum.Value)
	var results sync.Map

	eg, egCtx := errgroup.WithContext(ctx)
	done := egCtx.Done()

	spawn := func(key string) chan apiNum.Value {
		ch := make(chan apiNum.Value, valueQueueSize)
		queues[key] = ch
		eg.Go(func() error {
			val, cnt, err := r.reduce(egCtx, ch)
			if err != nil {
				return errors.Wrapf(err, "group %q", key)
			}
			results.Store(key, groupResult{key: key, val: val, count: cnt})
			return nil
		})
		return ch
	}

feed:
	for {
		select {
		case <-done:
			break feed
		case item, ok := <-in:
			if !ok {
				break feed
			}
			if item == nil || item.Value() == nil {
				slog.WarnContext(ctx, "Skipping empty item", "op", r.name)
				continue
			}
			key := item.GroupKey()
			ch, found := queues[key]
			if !found {
				ch = spawn(key)
			}
			select {
			case ch <- item.Value():
			case <-done:
				break feed
			}
		}
	}
	for _, ch := range queues {
		close(ch)
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outputs := make([]api.GroupResult, 0, len(queues))
	results.Range(func(_, value any) bool {
		outputs = append(outputs, value.(groupResult))
		return true
	})
	slices.SortFunc(outputs, func(a, b api.GroupResult) int {
		return strings.Compare(a.GroupKey(), b.GroupKey())
	})
	slog.DebugContext(ctx, "Reduced groups", "op", r.name, "groups", len(outputs))
	return outputs, nil
}
