// Package pipeline wires the Reader, Decompressor, Parser pool and
// Persister stages over bounded queues, with first-error propagation and
// end-of-stream cascade.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wikigeo/geohist/internal/classify"
	"github.com/wikigeo/geohist/internal/decompress"
	"github.com/wikigeo/geohist/internal/item"
	"github.com/wikigeo/geohist/internal/lineextract"
	"github.com/wikigeo/geohist/internal/locate"
	"github.com/wikigeo/geohist/internal/progress"
	"github.com/wikigeo/geohist/internal/queue"
	"github.com/wikigeo/geohist/internal/store"
)

// Queue capacities from three raw-byte chunks, 26 line
// batches, 126 items.
const (
	rawChunkQueueCapacity  = 3
	lineBatchQueueCapacity = 26
	itemQueueCapacity      = 126
)

// readChunkSize is the Reader stage's fixed read size.
const readChunkSize = 1 * 1024 * 1024

// secondPassCommitEvery is the re-begin-every-126 second pass commit
// batching rule.
const secondPassCommitEvery = 126

// Config controls pipeline concurrency and reporting.
type Config struct {
	// Workers is the number of parser goroutines sharing the line-batch
	// queue.
	Workers int
	// Logger receives non-fatal per-line/per-row diagnostics.
	Logger *slog.Logger
	// ProgressWriter, if non-nil, receives throttled progress lines for the
	// duration of the run. Nil disables progress reporting.
	ProgressWriter io.Writer
	// ProgressHz bounds how many progress lines per second are emitted to
	// ProgressWriter. Ignored when ProgressWriter is nil.
	ProgressHz float64
}

// Stats summarizes one run for the caller to print.
type Stats struct {
	ItemsParsed    uint64
	ItemsPersisted uint64
	ClassCount     int
}

// Run executes one full ingest: reads src (a compressed Wikidata dump),
// decompresses, extracts and parses item records, classifies and resolves
// locations, and persists into st. It returns the first fatal error from
// any stage; per-line and per-row
// errors are logged via cfg.Logger and never returned.
func Run(ctx context.Context, src io.Reader, st *store.Store, cfg Config) (Stats, error) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rawQ := queue.New[[]byte](rawChunkQueueCapacity)
	lineQ := queue.New[lineBatch](lineBatchQueueCapacity)
	itemQ := queue.New[*item.Item](itemQueueCapacity)

	counters := &progress.Counters{}

	// The reporter runs under its own cancellation, independent of the
	// errgroup-derived ctx below: that ctx is only canceled once a stage
	// errors or g.Wait returns, and g.Wait can't return while the reporter
	// is still running off the same group.
	reportCtx, cancelReport := context.WithCancel(ctx)
	reportDone := make(chan struct{})
	if cfg.ProgressWriter != nil {
		hz := cfg.ProgressHz
		if hz <= 0 {
			hz = 2.0
		}
		reporter := progress.NewReporter(cfg.ProgressWriter, counters, map[string]progress.QueueStatser{
			"raw":  rawQ,
			"line": lineQ,
			"item": itemQ,
		}, hz)
		go func() {
			defer close(reportDone)
			reporter.Run(reportCtx, time.Second/time.Duration(hz+1))
		}()
	} else {
		close(reportDone)
	}
	defer func() {
		cancelReport()
		<-reportDone
	}()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := runReader(ctx, src, rawQ, counters)
		if err != nil {
			stopAll(rawQ, lineQ, itemQ)
		}
		return err
	})

	g.Go(func() error {
		err := runDecompressor(rawQ, lineQ, counters)
		if err != nil {
			stopAll(rawQ, lineQ, itemQ)
		}
		return err
	})

	g.Go(func() error {
		err := runParserPool(lineQ, itemQ, cfg.Workers, counters, logger)
		if err != nil {
			stopAll(rawQ, lineQ, itemQ)
		}
		return err
	})

	var stats Stats
	g.Go(func() error {
		s, err := runPersister(ctx, itemQ, st, counters, logger)
		stats = s
		if err != nil {
			stopAll(rawQ, lineQ, itemQ)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		stats.ItemsParsed = counters.ItemsParsed.Value()
		return stats, err
	}
	stats.ItemsParsed = counters.ItemsParsed.Value()
	return stats, nil
}

func stopAll(qs ...interface{ Stop() }) {
	for _, q := range qs {
		q.Stop()
	}
}

// runReader is stage (a): reads src in fixed-size chunks onto rawQ.
func runReader(ctx context.Context, src io.Reader, rawQ *queue.Queue[[]byte], counters *progress.Counters) error {
	defer rawQ.MarkEnd()

	buf := make([]byte, readChunkSize)
	for {
		if ctx.Err() != nil {
			return nil
		}
		n, err := src.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			counters.BytesRead.Add(uint64(n))
			if !rawQ.Enqueue(chunk) {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("pipeline: reading input: %w", err)
		}
	}
}

// lineBatch is one decompressed-and-split group of candidate JSON lines.
type lineBatch [][]byte

// queueReader adapts a *queue.Queue[[]byte] to io.Reader, so the
// decompressor can apply gzip/zstd decoding incrementally as chunks arrive
// from the Reader stage, with backpressure flowing through rawQ itself.
type queueReader struct {
	q        *queue.Queue[[]byte]
	leftover []byte
}

func (r *queueReader) Read(p []byte) (int, error) {
	for len(r.leftover) == 0 {
		chunk, ok := r.q.Dequeue()
		if !ok {
			return 0, io.EOF
		}
		r.leftover = chunk
	}
	n := copy(p, r.leftover)
	r.leftover = r.leftover[n:]
	return n, nil
}

// runDecompressor is stage (b): dequeues raw chunks, decompresses them
// incrementally, and cuts the growing buffer into line batches via
// internal/lineextract.
func runDecompressor(rawQ *queue.Queue[[]byte], lineQ *queue.Queue[lineBatch], counters *progress.Counters) error {
	defer lineQ.MarkEnd()

	qr := &queueReader{q: rawQ}
	dr, err := decompress.Open(qr)
	if err != nil {
		return fmt.Errorf("pipeline: opening decompressor: %w", err)
	}
	defer dr.Close()

	var buf []byte
	tmp := make([]byte, 256*1024)

	for {
		n, rerr := dr.Read(tmp)
		if n > 0 {
			buf = append(buf, tmp[:n]...)
			counters.BytesDecompressed.Add(uint64(n))

			lines, residual := lineextract.Extract(buf)
			if len(lines) > 0 {
				if !lineQ.Enqueue(copyLines(lines)) {
					return nil
				}
			}
			buf = append([]byte(nil), residual...)
		}

		if rerr == io.EOF {
			lines, _ := lineextract.Finalize(buf)
			if len(lines) > 0 {
				lineQ.Enqueue(copyLines(lines))
			}
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("pipeline: decompressing: %w", rerr)
		}
	}
}

func copyLines(lines [][]byte) lineBatch {
	out := make(lineBatch, len(lines))
	for i, l := range lines {
		cp := make([]byte, len(l))
		copy(cp, l)
		out[i] = cp
	}
	return out
}

// runParserPool is stage (c): N workers share lineQ, each running
// internal/item.Parse over every line of a batch and force-enqueueing
// accepted items to itemQ. The pool marks itemQ ended only after every
// worker has exited.
func runParserPool(lineQ *queue.Queue[lineBatch], itemQ *queue.Queue[*item.Item], workers int, counters *progress.Counters, logger *slog.Logger) error {
	defer itemQ.MarkEnd()

	g := new(errgroup.Group)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			return parseWorker(lineQ, itemQ, counters, logger)
		})
	}
	return g.Wait()
}

func parseWorker(lineQ *queue.Queue[lineBatch], itemQ *queue.Queue[*item.Item], counters *progress.Counters, logger *slog.Logger) error {
	for {
		batch, ok := lineQ.Dequeue()
		if !ok {
			return nil
		}

		items := make([]*item.Item, 0, len(batch))
		for _, line := range batch {
			it, accepted, err := item.Parse(line)
			if err != nil {
				logger.Debug("dropping unparseable line", "error", err)
				continue
			}
			if !accepted {
				continue
			}
			items = append(items, it)
		}
		counters.ItemsParsed.Add(uint64(len(items)))

		overflow := itemQ.ForceEnqueueRange(items)
		for _, it := range overflow {
			if !itemQ.Enqueue(it) {
				return nil
			}
		}
	}
}

// runPersister is stage (d): runs classify+locate+store over every item
// from itemQ (first pass), then the second pass over the location
// resolver's pending entries, then writes class statistics.
func runPersister(ctx context.Context, itemQ *queue.Queue[*item.Item], st *store.Store, counters *progress.Counters, logger *slog.Logger) (Stats, error) {
	resolver := locate.New()
	classStats := store.ClassStats{}
	var stats Stats

	persistOne := func(tx *store.Tx, it *item.Item, verdict classify.Verdict) error {
		row := store.Row{
			ID:     it.ID,
			MinT:   verdict.MinT,
			MaxT:   verdict.MaxT,
			Title:  it.Title,
			Class:  verdict.Class,
			Broken: verdict.Broken,
		}
		if it.Coord != nil {
			row.LonE7, row.LatE7 = it.Coord.LonE7, it.Coord.LatE7
		}
		if err := tx.Insert(ctx, row); err != nil {
			logger.Warn("row insert failed, dropping", "item", it.String(), "error", err)
			return nil
		}
		classStats[verdict.Class]++
		stats.ItemsPersisted++
		counters.ItemsPersisted.Add(1)
		return nil
	}

	// First pass: intake.
	var batch []*item.Item
	for {
		it, ok := itemQ.Dequeue()
		if !ok {
			break
		}
		batch = append(batch, it)
		batch = itemQ.ForceDequeueAll(batch)

		tx, err := st.Begin(ctx)
		if err != nil {
			return stats, fmt.Errorf("pipeline: beginning intake transaction: %w", err)
		}
		for _, it := range batch {
			resolved, ready := resolver.Observe(it)
			if !ready {
				continue
			}
			verdict := classify.Classify(resolved)
			if !verdict.Keep {
				continue
			}
			if err := persistOne(tx, resolved, verdict); err != nil {
				tx.Rollback()
				return stats, err
			}
		}
		if err := tx.Commit(); err != nil {
			return stats, fmt.Errorf("pipeline: committing intake transaction: %w", err)
		}
		batch = batch[:0]
	}

	// Second pass: drain resolved location entries.
	tx, err := st.Begin(ctx)
	if err != nil {
		return stats, fmt.Errorf("pipeline: beginning second-pass transaction: %w", err)
	}
	since := 0
	var resolveErr error
	resolver.Resolve(func(it *item.Item) {
		if resolveErr != nil {
			return
		}
		verdict := classify.Classify(it)
		if !verdict.Keep {
			return
		}
		if err := persistOne(tx, it, verdict); err != nil {
			resolveErr = err
			return
		}
		since++
		if since >= secondPassCommitEvery {
			tx, resolveErr = tx.CommitAndBegin(ctx, st)
			since = 0
		}
	})
	if resolveErr != nil {
		// CommitAndBegin returns a nil tx on failure (the prior transaction
		// is already done); only roll back a still-open one.
		if tx != nil {
			tx.Rollback()
		}
		return stats, resolveErr
	}
	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("pipeline: committing second-pass transaction: %w", err)
	}

	if err := st.WriteClassStats(ctx, classStats); err != nil {
		return stats, fmt.Errorf("pipeline: writing class stats: %w", err)
	}
	stats.ClassCount = len(classStats)

	return stats, nil
}
