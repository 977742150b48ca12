package relevance

import (
	"context"

	"github.com/Cavallium/lucene-relevance/rank"
	"github.com/Cavallium/lucene-relevance/similarity"
)

// Engine ties a configured Similarity to logging and batch ranking. It is
// safe for concurrent use after construction.
type Engine struct {
	sim    *similarity.Similarity
	logger *Logger
}

// New creates an Engine. Without options this is classic BM25 with k1=1.2
// and b=0.75. Construction fails with a similarity.ParameterError if a
// parameter is outside its legal range; values are never clamped.
func New(opts ...Option) (*Engine, error) {
	o := options{
		k1:               similarity.DefaultK1,
		b:                similarity.DefaultB,
		model:            similarity.Classic,
		discountOverlaps: true,
		logger:           NoopLogger(),
	}
	for _, fn := range opts {
		fn(&o)
	}

	sim, err := similarity.New(o.k1, o.b, o.d, o.model)
	if err != nil {
		return nil, err
	}
	sim.SetDiscountOverlaps(o.discountOverlaps)
	if o.payload != nil {
		sim.SetPayloadScorer(o.payload)
	}

	return &Engine{sim: sim, logger: o.logger}, nil
}

// Similarity returns the underlying scoring configuration.
func (e *Engine) Similarity() *similarity.Similarity { return e.sim }

// ComputeNorm encodes a document's field state into its stored norm.
func (e *Engine) ComputeNorm(state similarity.FieldState) int64 {
	return e.sim.ComputeNorm(state)
}

// ComputeWeight builds the per-query weight from collection and term
// statistics.
func (e *Engine) ComputeWeight(queryBoost float64, stats similarity.CollectionStatistics, terms ...similarity.TermStatistics) (*similarity.Weight, error) {
	w, err := e.sim.ComputeWeight(queryBoost, stats, terms...)
	if err != nil {
		return nil, err
	}
	e.logger.LogWeight(context.Background(), stats.Field, len(terms), w.IDF().Value())
	return w, nil
}

// Scorer creates a per-segment document scorer for a normalized weight. A nil
// norms reader scores without length normalization.
func (e *Engine) Scorer(qw *similarity.QueryWeight, norms similarity.NormsReader) *similarity.DocScorer {
	return e.sim.Scorer(qw, norms)
}

// Rank scores every posting with the scorer and returns the top k hits in
// descending score order.
func (e *Engine) Rank(ctx context.Context, scorer *similarity.DocScorer, postings []rank.Posting, k int, opts ...rank.Option) ([]rank.Hit, error) {
	hits, err := rank.Top(ctx, scorer, postings, k, opts...)
	e.logger.LogRank(ctx, len(postings), len(hits), err)
	return hits, err
}

// String renders the scoring configuration, e.g. "BM25(k1=1.2,b=0.75)".
func (e *Engine) String() string { return e.sim.String() }
