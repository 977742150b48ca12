package similarity

import (
	"fmt"

	"github.com/Cavallium/lucene-relevance/explanation"
)

// NormsReader resolves the stored norm for a document. Implementations are
// provided by the norms package; any per-field store that can answer the
// lookup works.
type NormsReader interface {
	// Norm returns the encoded norm for doc, and whether one is stored.
	Norm(doc int) (int64, bool)
}

// PayloadScorer scores a term payload at a position. It is an extension point
// for term-level payload weighting; the default implementation ignores the
// payload entirely.
type PayloadScorer interface {
	ScorePayload(doc, start, end int, payload []byte) float64
}

// ConstantPayload is the default PayloadScorer; it always returns 1.
type ConstantPayload struct{}

func (ConstantPayload) ScorePayload(doc, start, end int, payload []byte) float64 { return 1 }

// DocScorer scores documents for one (query weight, norms source) pair.
//
// The per-query constants are computed once at construction so that Score is
// a handful of float operations per document. Score and Explain write no
// shared state and may be called concurrently.
type DocScorer struct {
	sim    *Similarity
	weight *QueryWeight
	norms  NormsReader

	// weightValue is weight * (k1 + 1).
	weightValue float64
	// multK1MinusB is k1 * (1 - b).
	multK1MinusB float64
	// multK1BInvAvgdl is k1 * b / avgdl.
	multK1BInvAvgdl float64
	// multInvK1D is d / k1, the BM25L floor scaled back to norm units.
	multInvK1D float64

	payload PayloadScorer
}

// Scorer creates a DocScorer for the finalized query weight, reading stored
// norms from rdr. A nil rdr means the field omits length statistics, and
// scoring behaves as if b were 0.
//
// For model L with k1 == 0 the d/k1 constant is taken to be 0, so the floor
// term vanishes and the formula degrades to the classic k1=0 curve.
func (s *Similarity) Scorer(qw *QueryWeight, rdr NormsReader) *DocScorer {
	multInvK1D := 0.0
	if s.k1 > 0 {
		multInvK1D = s.d / s.k1
	}
	return &DocScorer{
		sim:             s,
		weight:          qw,
		norms:           rdr,
		weightValue:     qw.Value() * (s.k1 + 1),
		multK1MinusB:    s.k1 * (1 - s.b),
		multK1BInvAvgdl: s.k1 * s.b / qw.AvgFieldLength(),
		multInvK1D:      multInvK1D,
		payload:         s.payload,
	}
}

// Score computes the relevance contribution of the query term for doc, given
// the term frequency freq. Phrase and sloppy matches may supply fractional
// frequencies.
//
// The result is weightValue * (freq + dlt) / (freq + norm + dlt), where norm
// is the length-normalization denominator k1*(1-b) + k1*b*doclen/avgdl and
// dlt is the BM25L floor d/k1 * norm (0 for the Classic model). A document
// without a stored norm scores with norm = k1, which is the b=0 curve.
func (ds *DocScorer) Score(doc int, freq float64) float64 {
	var norm, docLenTerm float64
	if doclen, ok := ds.storedNorm(doc); ok {
		norm = ds.multK1MinusB + ds.multK1BInvAvgdl*doclen
		docLenTerm = ds.multInvK1D * norm
	} else {
		norm = ds.sim.k1
	}
	return ds.weightValue * (freq + docLenTerm) / (freq + norm + docLenTerm)
}

// Explain reproduces the Score arithmetic for doc as an explanation tree. The
// freq argument is the frequency explanation produced by the postings
// collaborator; its value is the term frequency Score would receive.
//
// The returned root value agrees with Score on the same inputs.
func (ds *DocScorer) Explain(doc int, freq *explanation.Explanation) *explanation.Explanation {
	details := make([]*explanation.Explanation, 0, 3)

	boost := ds.weight.Boost()
	if boost != 1 {
		details = append(details, explanation.New(boost, "boost"))
	}
	details = append(details, ds.weight.IDF())

	tfNorm := ds.explainTFNorm(doc, freq)
	details = append(details, tfNorm)

	value := boost * ds.weight.IDF().Value() * tfNorm.Value()
	desc := fmt.Sprintf("score(doc=%d,freq=%g), product of:", doc, freq.Value())
	return explanation.New(value, desc, details...)
}

func (ds *DocScorer) explainTFNorm(doc int, freq *explanation.Explanation) *explanation.Explanation {
	sim := ds.sim
	k1, b, d := sim.k1, sim.b, sim.d

	details := []*explanation.Explanation{
		freq,
		explanation.New(k1, "parameter k1"),
	}

	doclen, ok := ds.storedNorm(doc)
	if !ok {
		details = append(details, explanation.New(0, "parameter b (norms omitted for field)"))
		value := freq.Value() * (k1 + 1) / (freq.Value() + k1)
		return explanation.New(value, "tfNorm, computed from:", details...)
	}

	avgdl := ds.weight.AvgFieldLength()
	details = append(details,
		explanation.New(b, "parameter b"),
		explanation.New(avgdl, "avgFieldLength"),
		explanation.New(doclen, "fieldLength"),
	)

	lengthNorm := 1 - b + b*doclen/avgdl
	if sim.model == L {
		details = append(details, explanation.New(d, "parameter d"))
		adjusted := d + freq.Value()/lengthNorm
		if k1 == 0 {
			// d/k1 is defined as 0 when k1 == 0; the floor term vanishes.
			adjusted = freq.Value() / lengthNorm
		}
		value := (k1 + 1) * adjusted / (k1 + adjusted)
		return explanation.New(value, "tfNorm, computed from:", details...)
	}

	value := freq.Value() * (k1 + 1) / (freq.Value() + k1*lengthNorm)
	return explanation.New(value, "tfNorm, computed from:", details...)
}

// SlopFactor computes the multiplier for a sloppy phrase match with the given
// gap between term occurrences, as 1 / (distance + 1).
func (ds *DocScorer) SlopFactor(distance int) float64 {
	return 1 / float64(distance+1)
}

// PayloadFactor scores the payload stored at a term position, delegating to
// the configured PayloadScorer.
func (ds *DocScorer) PayloadFactor(doc, start, end int, payload []byte) float64 {
	return ds.payload.ScorePayload(doc, start, end, payload)
}

func (ds *DocScorer) storedNorm(doc int) (float64, bool) {
	if ds.norms == nil {
		return 0, false
	}
	n, ok := ds.norms.Norm(doc)
	if !ok {
		return 0, false
	}
	return float64(n), true
}
