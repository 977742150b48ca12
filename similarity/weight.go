package similarity

import (
	"github.com/Cavallium/lucene-relevance/explanation"
)

// Weight is the per-query, per-field statistics bundle produced by
// ComputeWeight. It is not yet usable for scoring: Normalize must fold in the
// top-level boost first, producing the finalized QueryWeight that Scorer
// accepts.
type Weight struct {
	field      string
	idf        *explanation.Explanation
	queryBoost float64
	avgdl      float64
}

// ComputeWeight combines collection and term statistics into a Weight for one
// query. A single term uses the plain idf; multiple terms (a phrase) sum the
// per-term idf factors.
func (s *Similarity) ComputeWeight(queryBoost float64, stats CollectionStatistics, terms ...TermStatistics) (*Weight, error) {
	if len(terms) == 0 {
		return nil, ErrNoTermStatistics
	}

	var idf *explanation.Explanation
	if len(terms) == 1 {
		idf = s.IDFExplain(stats, terms[0])
	} else {
		idf = s.idfExplainPhrase(stats, terms)
	}

	return &Weight{
		field:      stats.Field,
		idf:        idf,
		queryBoost: queryBoost,
		avgdl:      avgFieldLength(stats),
	}, nil
}

// Field returns the field the weight was computed for.
func (w *Weight) Field() string { return w.field }

// IDF returns the idf factor with its explanation.
func (w *Weight) IDF() *explanation.Explanation { return w.idf }

// AvgFieldLength returns the average field length in tokens, or 1 if the
// collection does not record total term frequency.
func (w *Weight) AvgFieldLength() float64 { return w.avgdl }

// ValueForNormalization returns (idf * queryBoost)² as a tf-idf style
// comparability hint for an external normalization step. Scores are never
// normalized by this package itself; they are comparable only within one
// query.
func (w *Weight) ValueForNormalization() float64 {
	queryWeight := w.idf.Value() * w.queryBoost
	return queryWeight * queryWeight
}

// Normalize folds the top-level boost into the weight and finalizes it for
// scoring. Call it exactly once per Weight, on the query-initiation path,
// before the QueryWeight is shared with the per-document scoring fan-out.
func (w *Weight) Normalize(topLevelBoost float64) *QueryWeight {
	return &QueryWeight{
		Weight:        *w,
		topLevelBoost: topLevelBoost,
		weight:        w.idf.Value() * w.queryBoost * topLevelBoost,
	}
}

// QueryWeight is a finalized Weight: idf * queryBoost * topLevelBoost.
// It is immutable and safe to share across concurrent scorers.
type QueryWeight struct {
	Weight
	topLevelBoost float64
	weight        float64
}

// Boost returns the combined queryBoost * topLevelBoost factor.
func (qw *QueryWeight) Boost() float64 { return qw.queryBoost * qw.topLevelBoost }

// Value returns the finalized weight.
func (qw *QueryWeight) Value() float64 { return qw.weight }
