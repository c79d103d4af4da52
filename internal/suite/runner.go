// SPDX-License-Identifier: MPL-2.0

package suite

import (
	"context"
	"fmt"
	"io"
	goruntime "runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type (
	// Clock is the stopwatch time source. Production code uses the system
	// clock; tests substitute a deterministic one.
	Clock interface {
		Now() time.Time
		Since(t time.Time) time.Duration
	}

	// Sink receives run progress. Calls are made from the running goroutine,
	// in order: Begin once, Result once per benchmark, End once.
	Sink interface {
		Begin(r *Report) error
		Result(r *Report, res Result) error
		End(r *Report) error
	}

	// Option configures a Runner.
	Option func(*Runner)

	// Runner times benchmarks one after another.
	Runner struct {
		clock    Clock
		logger   *log.Logger
		memStats bool
		newID    func() string
	}

	// MemDelta is the allocation activity observed across one benchmark.
	// HeapAllocAfter is not a delta: it is the live heap size sampled once
	// the benchmark has finished.
	MemDelta struct {
		TotalAlloc     uint64 `json:"total_alloc_bytes" toml:"total_alloc_bytes"`
		Mallocs        uint64 `json:"mallocs" toml:"mallocs"`
		NumGC          uint32 `json:"num_gc" toml:"num_gc"`
		HeapAllocAfter uint64 `json:"heap_alloc_after_bytes" toml:"heap_alloc_after_bytes"`
	}

	// Result is the measurement of a single benchmark.
	Result struct {
		Name      string        `json:"name" toml:"name"`
		Benchmark Benchmark     `json:"benchmark" toml:"benchmark"`
		Elapsed   time.Duration `json:"-" toml:"-"`
		ElapsedMS int64         `json:"elapsed_ms" toml:"elapsed_ms"`
		Value     Value         `json:"result" toml:"result"`
		Mem       *MemDelta     `json:"mem,omitempty" toml:"mem,omitempty"`
	}

	// Report describes a whole run.
	Report struct {
		RunID     string    `json:"run_id" toml:"run_id"`
		StartedAt time.Time `json:"started_at" toml:"started_at"`
		GoVersion string    `json:"go_version" toml:"go_version"`
		GOOS      string    `json:"goos" toml:"goos"`
		GOARCH    string    `json:"goarch" toml:"goarch"`
		Results   []Result  `json:"results" toml:"results"`
	}

	systemClock struct{}
)

func (systemClock) Now() time.Time                  { return time.Now() }
func (systemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithLogger sets the logger used for progress and diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithMemStats enables per-benchmark allocation sampling. The samples are
// taken outside the timed region.
func WithMemStats(enabled bool) Option {
	return func(r *Runner) { r.memStats = enabled }
}

// withRunID fixes the report identifier (tests).
func withRunID(id string) Option {
	return func(r *Runner) { r.newID = func() string { return id } }
}

// NewRunner creates a Runner. By default it uses the system clock, discards
// logs, and does not sample memory statistics.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		clock:  systemClock{},
		logger: log.New(io.Discard),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes plan in order, forwarding progress to sink (which may be nil).
// Cancellation of ctx stops the run before the next benchmark starts; the
// partial report is returned together with the context error.
func (r *Runner) Run(ctx context.Context, plan []Benchmark, sink Sink) (*Report, error) {
	report := &Report{
		RunID:     r.newID(),
		StartedAt: r.clock.Now(),
		GoVersion: goruntime.Version(),
		GOOS:      goruntime.GOOS,
		GOARCH:    goruntime.GOARCH,
		Results:   make([]Result, 0, len(plan)),
	}

	if sink != nil {
		if err := sink.Begin(report); err != nil {
			return report, err
		}
	}

	r.logger.Debug("run started", "run_id", report.RunID, "benchmarks", len(plan))

	for _, b := range plan {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("run canceled", "next", b.Label(), "completed", len(report.Results))
			return report, fmt.Errorf("run canceled before %s: %w", b.Kind, err)
		}

		res := r.measure(b)
		report.Results = append(report.Results, res)

		if sink != nil {
			if err := sink.Result(report, res); err != nil {
				return report, err
			}
		}
	}

	if sink != nil {
		if err := sink.End(report); err != nil {
			return report, err
		}
	}

	r.logger.Debug("run finished", "run_id", report.RunID)
	return report, nil
}

// measure runs one benchmark between two clock readings.
func (r *Runner) measure(b Benchmark) Result {
	label := b.Label()
	r.logger.Debug("benchmark started", "name", label)

	var before goruntime.MemStats
	if r.memStats {
		goruntime.ReadMemStats(&before)
	}

	start := r.clock.Now()
	value := b.Kind.run(b.Param)
	elapsed := r.clock.Since(start)

	res := Result{
		Name:      label,
		Benchmark: b,
		Elapsed:   elapsed,
		ElapsedMS: elapsed.Milliseconds(),
		Value:     value,
	}

	if r.memStats {
		var after goruntime.MemStats
		goruntime.ReadMemStats(&after)
		res.Mem = &MemDelta{
			TotalAlloc:     after.TotalAlloc - before.TotalAlloc,
			Mallocs:        after.Mallocs - before.Mallocs,
			NumGC:          after.NumGC - before.NumGC,
			HeapAllocAfter: after.HeapAlloc,
		}
		r.logger.Debug("benchmark finished", "name", label, "elapsed", elapsed,
			"result", value.String(), "total_alloc", res.Mem.TotalAlloc, "gc_cycles", res.Mem.NumGC)
	} else {
		r.logger.Debug("benchmark finished", "name", label, "elapsed", elapsed, "result", value.String())
	}

	return res
}
