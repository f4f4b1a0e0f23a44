package headless

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"
)

// SweepSummary aggregates the results of a sweep.
type SweepSummary struct {
	Runs      int
	Conserved int
	// Settled counts runs that came to rest before their last tick.
	Settled     int
	MeanSettle  float64
	FastestSeed int64
	SlowestSeed int64
	Elapsed     time.Duration
}

// Sweep runs opts once per seed across workers goroutines. Results are
// returned sorted by seed. workers <= 0 uses one worker per CPU.
func Sweep(ctx context.Context, opts Options, seeds []int64, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, max(len(seeds), 1))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int64)
	results := make(chan Result)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				run := opts
				run.World.Seed = seed
				res, err := Run(ctx, run)
				if err != nil {
					errs <- err
					cancel()
					return
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, seed := range seeds {
			select {
			case jobs <- seed:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]Result, 0, len(seeds))
	for res := range results {
		all = append(all, res)
		if opts.Logger != nil {
			opts.Logger.Info("seed done", "seed", res.Seed, "settled_at", res.SettledAt, "done", len(all), "of", len(seeds))
		}
	}

	select {
	case err := <-errs:
		return all, err
	default:
	}
	if err := ctx.Err(); err != nil && len(all) < len(seeds) {
		return all, err
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	return all, nil
}

// Summarize aggregates sweep results.
func Summarize(results []Result) SweepSummary {
	s := SweepSummary{Runs: len(results)}
	fastest, slowest := -1, -1
	total := 0
	for i, r := range results {
		s.Elapsed += r.Duration
		if r.Conserved() {
			s.Conserved++
		}
		if r.SettledAt < 0 {
			continue
		}
		s.Settled++
		total += r.SettledAt
		if fastest < 0 || r.SettledAt < results[fastest].SettledAt {
			fastest = i
		}
		if slowest < 0 || r.SettledAt > results[slowest].SettledAt {
			slowest = i
		}
	}
	if s.Settled > 0 {
		s.MeanSettle = float64(total) / float64(s.Settled)
		s.FastestSeed = results[fastest].Seed
		s.SlowestSeed = results[slowest].Seed
	}
	return s
}
