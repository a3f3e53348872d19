// Package conformance checks that a numeric variant obeys the laws of the
// numeric contract on randomly drawn samples.
package conformance

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	apiNum "numericadt/pkg/api/numeric"

	"golang.org/x/sync/errgroup"
)

// PropertyResult is the outcome of one law over all samples
type PropertyResult struct {
	Name    string `json:"name"`
	Checked int    `json:"checked"`
	Failed  int    `json:"failed"`
	// Example describes the failing sample with the lowest index
	Example string `json:"example,omitempty"`
}

// Report is the outcome of a conformance check of one variant
type Report struct {
	Kind       string           `json:"kind"`
	Samples    int              `json:"samples"`
	Seed       uint64           `json:"seed"`
	Properties []PropertyResult `json:"properties"`

	// GeneratorFailed counts samples the generator could not produce
	GeneratorFailed  int    `json:"generator_failed"`
	GeneratorExample string `json:"generator_example,omitempty"`
}

// Failures returns the number of failed property evaluations.
func (r Report) Failures() int {
	n := r.GeneratorFailed
	for _, p := range r.Properties {
		n += p.Failed
	}
	return n
}

// Passed reports whether every property held on every sample.
func (r Report) Passed() bool {
	return r.Failures() == 0
}

type tally struct {
	PropertyResult
	exampleIdx int
}

// Check draws samples from gen and evaluates every law on them.
// Sample i is drawn from a PCG source seeded with (seed, i), so the report
// does not depend on the number of workers. The error is non-nil only for
// invalid options or a cancelled context; law violations are in the report.
func Check[T apiNum.Number[T]](ctx context.Context, gen Generator[T], opts ...Option) (Report, error) {
	if gen == nil {
		return Report{}, errNilGenerator
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Report{}, err
		}
	}

	var zero T
	kind := zero.Kind()
	props := properties[T]()
	tallies := make([]tally, len(props))
	for i, p := range props {
		tallies[i] = tally{PropertyResult: PropertyResult{Name: p.name}, exampleIdx: -1}
	}
	var (
		mu           sync.Mutex
		genFailed    int
		genExample   string
		genFailedIdx = -1
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i := range cfg.samples {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			r := rand.New(rand.NewPCG(cfg.seed, uint64(i)))
			s, reason := draw(gen, r)
			if reason != "" {
				mu.Lock()
				defer mu.Unlock()
				genFailed++
				if genFailedIdx == -1 || i < genFailedIdx {
					genFailedIdx = i
					genExample = fmt.Sprintf("sample %d: %s", i, reason)
				}
				slog.DebugContext(ctx, "Generator failed", "kind", kind.String(), "sample", i, "reason", reason)
				return nil
			}

			outcomes := make([]outcome, len(props))
			for j, p := range props {
				outcomes[j] = p.evaluate(s)
			}

			mu.Lock()
			defer mu.Unlock()
			for j, o := range outcomes {
				if !o.checked {
					continue
				}
				t := &tallies[j]
				t.Checked++
				if !o.failed {
					continue
				}
				t.Failed++
				if t.exampleIdx == -1 || i < t.exampleIdx {
					t.exampleIdx = i
					t.Example = fmt.Sprintf("sample %d: x=%s y=%s z=%s", i, s.x, s.y, s.z)
					if o.reason != "" {
						t.Example += " (" + o.reason + ")"
					}
				}
				slog.DebugContext(ctx, "Property failed", "kind", kind.String(), "property", t.Name, "sample", i, "x", s.x.String(), "y", s.y.String())
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	report := Report{
		Kind:       kind.String(),
		Samples:    cfg.samples,
		Seed:       cfg.seed,
		Properties: make([]PropertyResult, len(tallies)),

		GeneratorFailed:  genFailed,
		GeneratorExample: genExample,
	}
	for i, t := range tallies {
		report.Properties[i] = t.PropertyResult
	}
	slog.DebugContext(ctx, "Conformance check finished", "kind", report.Kind, "samples", report.Samples, "failures", report.Failures())
	return report, nil
}
