package similarity

import (
	"math"

	"github.com/Cavallium/lucene-relevance/explanation"
)

// IDF computes the inverse document frequency of a term, as
// log(1 + (maxDoc - docFreq + 0.5) / (docFreq + 0.5)).
//
// The result is positive and strictly decreasing in docFreq for any
// 0 <= docFreq <= maxDoc; the 0.5 smoothing keeps the edge cases docFreq == 0
// and docFreq == maxDoc finite.
func (s *Similarity) IDF(docFreq, maxDoc int64) float64 {
	return math.Log(1 + (float64(maxDoc-docFreq)+0.5)/(float64(docFreq)+0.5))
}

// IDFExplain computes the idf factor for a single term together with its
// explanation.
//
// MaxDoc is used rather than the exact live document count because docFreq is
// computed against the same bound: when one is an overestimate, so is the
// other, and in the same direction.
func (s *Similarity) IDFExplain(stats CollectionStatistics, term TermStatistics) *explanation.Explanation {
	idf := s.IDF(term.DocFreq, stats.MaxDoc)
	return explanation.Newf(idf, "idf(docFreq=%d, maxDocs=%d)", term.DocFreq, stats.MaxDoc)
}

// idfExplainPhrase sums the idf factor of each term in a phrase, nesting the
// per-term explanations under an aggregate node.
func (s *Similarity) idfExplainPhrase(stats CollectionStatistics, terms []TermStatistics) *explanation.Explanation {
	var sum float64
	details := make([]*explanation.Explanation, 0, len(terms))
	for _, term := range terms {
		detail := s.IDFExplain(stats, term)
		details = append(details, detail)
		sum += detail.Value()
	}
	return explanation.New(sum, "idf(), sum of:", details...)
}
