package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cavallium/lucene-relevance/explanation"
)

// sliceNorms is a test NormsReader: one norm per document id.
type sliceNorms []int64

func (s sliceNorms) Norm(doc int) (int64, bool) {
	if doc < 0 || doc >= len(s) {
		return 0, false
	}
	return s[doc], true
}

func mustScorer(t *testing.T, sim *Similarity, queryBoost, topLevelBoost float64, stats CollectionStatistics, docFreq int64, norms NormsReader) *DocScorer {
	t.Helper()
	w, err := sim.ComputeWeight(queryBoost, stats, TermStatistics{Term: "okapi", DocFreq: docFreq})
	require.NoError(t, err)
	return sim.Scorer(w.Normalize(topLevelBoost), norms)
}

func TestScoreConcreteScenario(t *testing.T) {
	// k1=1.2, b=0.75, maxDoc=1000, docFreq=10, avgdl=100, doclen=100, freq=2.
	sim := NewDefault(Classic)
	stats := CollectionStatistics{Field: "body", MaxDoc: 1000, SumTotalTermFreq: 100000}
	scorer := mustScorer(t, sim, 1, 1, stats, 10, sliceNorms{100})

	idf := math.Log(1 + 990.5/10.5)

	// norm = 1.2*0.25 + 1.2*0.75/100*100 = 1.2
	want := idf * 2.2 * 2 / (2 + 1.2)
	got := scorer.Score(0, 2)

	assert.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 6.27, got, 2e-2)
}

func TestScoreExplainAgreement(t *testing.T) {
	stats := CollectionStatistics{Field: "body", MaxDoc: 5000, SumTotalTermFreq: 620000}
	norms := sliceNorms{12, 124, 3900, 0, 124}

	tests := []struct {
		name          string
		k1, b, d      float64
		model         Model
		queryBoost    float64
		topLevelBoost float64
		norms         NormsReader
	}{
		{"classic defaults", 1.2, 0.75, 0, Classic, 1, 1, norms},
		{"classic boosted", 1.2, 0.75, 0, Classic, 2, 1.5, norms},
		{"classic b=0", 1.2, 0, 0, Classic, 1, 1, norms},
		{"classic b=1", 2, 1, 0, Classic, 1, 1, norms},
		{"classic no norms", 1.2, 0.75, 0, Classic, 1, 1, nil},
		{"bm25l defaults", 1.2, 0.75, 0.5, L, 1, 1, norms},
		{"bm25l d=1", 1.2, 0.75, 1, L, 3, 1, norms},
		{"bm25l k1=0", 0, 0.75, 0.5, L, 1, 1, norms},
		{"bm25l no norms", 1.2, 0.75, 0.5, L, 1, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := New(tt.k1, tt.b, tt.d, tt.model)
			require.NoError(t, err)
			scorer := mustScorer(t, sim, tt.queryBoost, tt.topLevelBoost, stats, 75, tt.norms)

			for doc := 0; doc < 6; doc++ {
				for _, freq := range []float64{0.25, 1, 2, 17} {
					score := scorer.Score(doc, freq)
					expl := scorer.Explain(doc, explanation.Newf(freq, "termFreq=%g", freq))

					require.False(t, math.IsNaN(score), "doc=%d freq=%g", doc, freq)
					assert.InDelta(t, score, expl.Value(), 1e-6, "doc=%d freq=%g", doc, freq)
				}
			}
		})
	}
}

func TestScoreClassicBZeroIgnoresLength(t *testing.T) {
	sim, err := New(1.2, 0, 0, Classic)
	require.NoError(t, err)
	stats := CollectionStatistics{Field: "body", MaxDoc: 1000, SumTotalTermFreq: 100000}
	scorer := mustScorer(t, sim, 1, 1, stats, 10, sliceNorms{5, 5000})

	weight := math.Log(1 + 990.5/10.5)
	freq := 3.0
	want := weight * 2.2 * freq / (freq + 1.2)

	assert.InDelta(t, want, scorer.Score(0, freq), 1e-12)
	assert.InDelta(t, want, scorer.Score(1, freq), 1e-12)
}

func TestScoreMissingNormsActsAsBZero(t *testing.T) {
	sim := NewDefault(Classic)
	stats := CollectionStatistics{Field: "body", MaxDoc: 1000, SumTotalTermFreq: 100000}

	withoutNorms := mustScorer(t, sim, 1, 1, stats, 10, nil)
	// Document 3 has no stored norm in a two-entry reader.
	sparse := mustScorer(t, sim, 1, 1, stats, 10, sliceNorms{100, 100})

	idf := math.Log(1 + 990.5/10.5)
	want := idf * 2.2 * 2 / (2 + 1.2)

	assert.InDelta(t, want, withoutNorms.Score(0, 2), 1e-12)
	assert.InDelta(t, want, sparse.Score(3, 2), 1e-12)
}

func TestScoreFreqMonotonicity(t *testing.T) {
	stats := CollectionStatistics{Field: "body", MaxDoc: 1000, SumTotalTermFreq: 100000}

	for _, model := range []Model{Classic, L} {
		t.Run(model.String(), func(t *testing.T) {
			d := 0.0
			if model == L {
				d = 0.5
			}
			sim, err := New(1.2, 0.75, d, model)
			require.NoError(t, err)
			scorer := mustScorer(t, sim, 1, 1, stats, 10, sliceNorms{250})

			prev := math.Inf(-1)
			for _, freq := range []float64{0.1, 0.5, 1, 2, 4, 8, 100} {
				score := scorer.Score(0, freq)
				assert.Greater(t, score, prev, "freq=%g", freq)
				prev = score
			}
		})
	}
}

func TestScoreClassicPenalizesLongerDocuments(t *testing.T) {
	sim := NewDefault(Classic)
	stats := CollectionStatistics{Field: "body", MaxDoc: 1000, SumTotalTermFreq: 100000}
	scorer := mustScorer(t, sim, 1, 1, stats, 10, sliceNorms{50, 100, 200, 400})

	prev := math.Inf(1)
	for doc := 0; doc < 4; doc++ {
		score := scorer.Score(doc, 2)
		assert.Less(t, score, prev, "doc=%d", doc)
		prev = score
	}
}

func TestBM25LDampensLongDocumentPenalty(t *testing.T) {
	// Two documents longer than average with identical freq: the score gap
	// under BM25L must be smaller than under classic BM25 with the same k1, b.
	stats := CollectionStatistics{Field: "body", MaxDoc: 1000, SumTotalTermFreq: 100000}
	norms := sliceNorms{200, 400}

	classic := mustScorer(t, NewDefault(Classic), 1, 1, stats, 10, norms)
	bm25l := mustScorer(t, NewDefault(L), 1, 1, stats, 10, norms)

	classicGap := classic.Score(0, 2) - classic.Score(1, 2)
	lGap := bm25l.Score(0, 2) - bm25l.Score(1, 2)

	assert.Greater(t, classicGap, 0.0)
	assert.Greater(t, lGap, 0.0)
	assert.Less(t, lGap, classicGap)
}

func TestScorerLK1Zero(t *testing.T) {
	// d/k1 is defined as 0 when k1 == 0: the floor term vanishes and no
	// division by zero occurs.
	sim, err := New(0, 0.75, 0.5, L)
	require.NoError(t, err)
	stats := CollectionStatistics{Field: "body", MaxDoc: 1000, SumTotalTermFreq: 100000}
	scorer := mustScorer(t, sim, 1, 1, stats, 10, sliceNorms{300})

	score := scorer.Score(0, 2)
	require.False(t, math.IsNaN(score))
	require.False(t, math.IsInf(score, 0))

	// With k1=0 saturation is immediate: the tf factor is exactly 1.
	assert.InDelta(t, math.Log(1+990.5/10.5), score, 1e-12)
}

func TestExplainStructure(t *testing.T) {
	stats := CollectionStatistics{Field: "body", MaxDoc: 1000, SumTotalTermFreq: 100000}

	t.Run("boost omitted when one", func(t *testing.T) {
		scorer := mustScorer(t, NewDefault(Classic), 1, 1, stats, 10, sliceNorms{100})
		expl := scorer.Explain(0, explanation.New(2, "termFreq=2"))

		require.Len(t, expl.Details(), 2)
		assert.Equal(t, "idf(docFreq=10, maxDocs=1000)", expl.Details()[0].Description())
		assert.Equal(t, "tfNorm, computed from:", expl.Details()[1].Description())
	})

	t.Run("boost present otherwise", func(t *testing.T) {
		scorer := mustScorer(t, NewDefault(Classic), 2, 1.5, stats, 10, sliceNorms{100})
		expl := scorer.Explain(0, explanation.New(2, "termFreq=2"))

		require.Len(t, expl.Details(), 3)
		assert.Equal(t, "boost", expl.Details()[0].Description())
		assert.InDelta(t, 3.0, expl.Details()[0].Value(), 1e-12)
	})

	t.Run("norms omitted marks b", func(t *testing.T) {
		scorer := mustScorer(t, NewDefault(Classic), 1, 1, stats, 10, nil)
		expl := scorer.Explain(0, explanation.New(2, "termFreq=2"))

		tfNorm := expl.Details()[1]
		require.Len(t, tfNorm.Details(), 3)
		assert.Equal(t, "parameter b (norms omitted for field)", tfNorm.Details()[2].Description())
		assert.Zero(t, tfNorm.Details()[2].Value())
	})

	t.Run("classic lists length factors", func(t *testing.T) {
		scorer := mustScorer(t, NewDefault(Classic), 1, 1, stats, 10, sliceNorms{140})
		expl := scorer.Explain(0, explanation.New(2, "termFreq=2"))

		tfNorm := expl.Details()[1]
		require.Len(t, tfNorm.Details(), 5)
		assert.Equal(t, "parameter k1", tfNorm.Details()[1].Description())
		assert.Equal(t, "parameter b", tfNorm.Details()[2].Description())
		assert.Equal(t, "avgFieldLength", tfNorm.Details()[3].Description())
		assert.Equal(t, "fieldLength", tfNorm.Details()[4].Description())
		assert.InDelta(t, 140.0, tfNorm.Details()[4].Value(), 1e-12)
	})

	t.Run("L adds parameter d", func(t *testing.T) {
		scorer := mustScorer(t, NewDefault(L), 1, 1, stats, 10, sliceNorms{140})
		expl := scorer.Explain(0, explanation.New(2, "termFreq=2"))

		tfNorm := expl.Details()[1]
		require.Len(t, tfNorm.Details(), 6)
		assert.Equal(t, "parameter d", tfNorm.Details()[5].Description())
		assert.InDelta(t, 0.5, tfNorm.Details()[5].Value(), 1e-12)
	})

	t.Run("description names doc and freq", func(t *testing.T) {
		scorer := mustScorer(t, NewDefault(Classic), 1, 1, stats, 10, sliceNorms{100})
		expl := scorer.Explain(0, explanation.New(2, "termFreq=2"))
		assert.Equal(t, "score(doc=0,freq=2), product of:", expl.Description())
	})
}

func TestSlopFactor(t *testing.T) {
	sim := NewDefault(Classic)
	stats := CollectionStatistics{Field: "body", MaxDoc: 1000, SumTotalTermFreq: 100000}
	scorer := mustScorer(t, sim, 1, 1, stats, 10, nil)

	assert.Equal(t, 1.0, scorer.SlopFactor(0))
	assert.Equal(t, 0.5, scorer.SlopFactor(1))
	assert.InDelta(t, 0.1, scorer.SlopFactor(9), 1e-12)

	prev := math.Inf(1)
	for distance := 0; distance < 10; distance++ {
		f := scorer.SlopFactor(distance)
		assert.Less(t, f, prev)
		prev = f
	}
}

type doublingPayload struct{}

func (doublingPayload) ScorePayload(doc, start, end int, payload []byte) float64 { return 2 }

func TestPayloadFactor(t *testing.T) {
	stats := CollectionStatistics{Field: "body", MaxDoc: 1000, SumTotalTermFreq: 100000}

	sim := NewDefault(Classic)
	scorer := mustScorer(t, sim, 1, 1, stats, 10, nil)
	assert.Equal(t, 1.0, scorer.PayloadFactor(0, 0, 1, []byte{0xff}))

	sim.SetPayloadScorer(doublingPayload{})
	scorer = mustScorer(t, sim, 1, 1, stats, 10, nil)
	assert.Equal(t, 2.0, scorer.PayloadFactor(0, 0, 1, nil))
}
