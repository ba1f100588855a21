// Package progress implements the per-stage counters and rate-limited
// periodic reporter. Progress reporting is informational only and never
// affects correctness.
package progress

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/wikigeo/geohist/internal/queue"
)

// Counter is a multi-producer-safe running total: any stage goroutine may
// add to it concurrently, and the reporter reads a snapshot.
type Counter struct {
	n atomic.Uint64
}

// Add increments the counter by delta.
func (c *Counter) Add(delta uint64) { c.n.Add(delta) }

// Value returns the current total.
func (c *Counter) Value() uint64 { return c.n.Load() }

// Counters is the fixed set of per-stage totals the pipeline tracks.
type Counters struct {
	BytesRead         Counter
	BytesDecompressed Counter
	ItemsParsed       Counter
	ItemsPersisted    Counter
}

// QueueStatser is implemented by queue.Queue[T] for any T; Reporter uses it
// to read enqueue/dequeue wait ratios without depending on a concrete
// element type.
type QueueStatser interface {
	Stats() queue.Stats
}

// Reporter periodically logs Counters and named queue wait-ratios to w,
// throttled by a token-bucket limiter so a fast run doesn't flood the
// terminal. The limiter reuses golang.org/x/time/rate, repurposed here
// from "requests per second against an external API" to "progress lines
// per second".
type Reporter struct {
	w        io.Writer
	counters *Counters
	queues   map[string]QueueStatser
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// NewReporter builds a Reporter that emits at most linesPerSecond lines.
func NewReporter(w io.Writer, counters *Counters, queues map[string]QueueStatser, linesPerSecond float64) *Reporter {
	return &Reporter{
		w:        w,
		counters: counters,
		queues:   queues,
		limiter:  rate.NewLimiter(rate.Limit(linesPerSecond), 1),
		logger:   slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

// Report emits one progress line if the limiter currently allows it;
// otherwise it is a silent no-op. Call this from any stage's hot loop — it
// is cheap to call on every iteration.
func (r *Reporter) Report() {
	if !r.limiter.Allow() {
		return
	}
	r.logger.Info("progress",
		"bytes_read", r.counters.BytesRead.Value(),
		"bytes_decompressed", r.counters.BytesDecompressed.Value(),
		"items_parsed", r.counters.ItemsParsed.Value(),
		"items_persisted", r.counters.ItemsPersisted.Value(),
	)
	for name, q := range r.queues {
		s := q.Stats()
		fmt.Fprintf(r.w, "      %s: enqueueWait=%.1f%%, dequeueWait=%.1f%%\n",
			name, 100*s.EnqueueWaitRate, 100*s.DequeueWaitRate)
	}
}

// Run blocks, calling Report at the reporter's throttled cadence until ctx
// is cancelled. The pipeline orchestrator runs this as its own task and
// cancels ctx when the run ends.
func (r *Reporter) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			r.Report()
			return
		case <-t.C:
			r.Report()
		}
	}
}
