package similarity

// ComputeNorm encodes a document's field length and index-time boost into the
// integer norm stored per (document, field). When DiscountOverlaps is set,
// overlap tokens are subtracted from the length first.
//
// The result is floor(numTerms / boost²); dividing by the square of the boost
// mimics the behavior of the original BM25 length normalization.
func (s *Similarity) ComputeNorm(state FieldState) int64 {
	numTerms := state.Length
	if s.discountOverlaps {
		numTerms -= state.NumOverlap
	}
	return int64(float64(numTerms) / (state.Boost * state.Boost))
}
