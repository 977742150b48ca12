package rank

import (
	"cmp"
	"context"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Cavallium/lucene-relevance/similarity"
)

// Posting is one matching document with its term frequency, as produced by
// the postings-iteration collaborator. Freq may be fractional for sloppy or
// phrase matches.
type Posting struct {
	Doc  int
	Freq float64
}

// Hit is a scored document.
type Hit struct {
	Doc   int
	Score float64
}

const minChunk = 1024

type options struct {
	parallelism int
	logger      *slog.Logger
	metrics     MetricsCollector
}

// Option configures batch scoring.
type Option func(*options)

// WithParallelism bounds the number of scoring goroutines. Values below 1
// fall back to GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

// WithLogger enables debug logging of query completion.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetricsCollector configures a metrics collector for scored queries.
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopMetricsCollector{}
		}
		o.metrics = c
	}
}

// Top scores every posting and returns the k highest-scoring hits in
// descending score order. k <= 0 returns all hits ranked.
func Top(ctx context.Context, scorer *similarity.DocScorer, postings []Posting, k int, opts ...Option) ([]Hit, error) {
	start := time.Now()
	o := options{
		parallelism: runtime.GOMAXPROCS(0),
		metrics:     NoopMetricsCollector{},
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.parallelism < 1 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}

	hits, err := scoreAll(ctx, scorer, postings, o.parallelism)
	o.metrics.RecordQuery(len(postings), time.Since(start), err)
	if err != nil {
		if o.logger != nil {
			o.logger.ErrorContext(ctx, "ranking failed", "postings", len(postings), "error", err)
		}
		return nil, err
	}

	slices.SortFunc(hits, func(a, b Hit) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Doc, b.Doc)
	})
	if k > 0 && len(hits) > k {
		hits = hits[:k]
	}

	if o.logger != nil {
		o.logger.DebugContext(ctx, "ranking completed",
			"postings", len(postings),
			"hits", len(hits),
			"duration", time.Since(start),
		)
	}

	return hits, nil
}

// scoreAll evaluates the scorer over contiguous chunks of postings. Each
// worker owns a disjoint region of the output slice, so no synchronization is
// needed beyond the errgroup join.
func scoreAll(ctx context.Context, scorer *similarity.DocScorer, postings []Posting, parallelism int) ([]Hit, error) {
	hits := make([]Hit, len(postings))

	chunk := (len(postings) + parallelism - 1) / parallelism
	if chunk < minChunk {
		chunk = minChunk
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for lo := 0; lo < len(postings); lo += chunk {
		lo := lo
		hi := min(lo+chunk, len(postings))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				p := postings[i]
				hits[i] = Hit{Doc: p.Doc, Score: scorer.Score(p.Doc, p.Freq)}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hits, nil
}
