// Package similarity implements BM25 relevance scoring with an optional
// long-document variant (BM25L).
//
// BM25 was introduced in Robertson et al., "Okapi at TREC-3" (TREC 1994).
// BM25L was introduced in Lv and Zhai, "When Documents Are Very Long, BM25
// Fails!" (SIGIR 2011); it adds a floor constant d that keeps very long
// documents from being over-penalized by length normalization.
//
// # Usage
//
//	sim, _ := similarity.New(1.2, 0.75, 0, similarity.Classic)
//
//	weight := sim.ComputeWeight(1.0, collectionStats, termStats)
//	qw := weight.Normalize(1.0)
//
//	scorer := sim.Scorer(qw, normsReader)
//	score := scorer.Score(doc, freq)
//
// A Weight cannot be used for scoring until Normalize has folded in the
// top-level boost; Scorer only accepts the finalized QueryWeight, so scoring
// an unnormalized weight does not compile.
//
// # Thread Safety
//
// A Similarity is safe for concurrent use once configured. Score and Explain
// are pure functions of the precomputed query weight, the stored norm and the
// term frequency, and may be called concurrently across documents without
// synchronization. SetDiscountOverlaps is the one mutable knob and must not
// race with ComputeNorm.
package similarity
