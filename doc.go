// Package relevance provides BM25 and BM25L document-relevance scoring for
// text search.
//
// Given aggregate collection statistics and per-document term-frequency
// signals, the engine produces a relevance score for a (query, document)
// pair, plus a structured explanation of how the score was derived. Index
// construction, postings iteration and storage belong to the surrounding
// search system; this library is the scoring function and its statistics
// pipeline.
//
// # Quick Start
//
//	eng, _ := relevance.New()  // BM25, k1=1.2, b=0.75
//	eng, _ := relevance.New(relevance.WithModel(similarity.L), relevance.WithD(0.5))
//
//	// Index time: encode one norm per (document, field).
//	norm := eng.ComputeNorm(similarity.FieldState{Length: 120, Boost: 1})
//
//	// Query time: build the per-query weight, then score documents.
//	weight, _ := eng.ComputeWeight(1.0, collectionStats, termStats)
//	scorer := eng.Scorer(weight.Normalize(1.0), normsReader)
//
//	score := scorer.Score(doc, freq)
//	fmt.Println(scorer.Explain(doc, explanation.New(freq, "termFreq")))
//
// # Scoring Model
//
// The classic model is Okapi BM25: idf saturated term frequency with document
// length normalization. Model L is BM25L (Lv & Zhai, SIGIR 2011), which adds
// a floor d to the length-adjusted term frequency so very long documents are
// not over-penalized. Scores are comparable only within one query.
//
// # Packages
//
//   - similarity: the scoring core (parameters, idf, weights, scorers, norms
//     encoding)
//   - norms: per-document norm stores read by scorers
//   - explanation: score breakdown trees
//   - rank: parallel batch scoring and top-k selection
package relevance
