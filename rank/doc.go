// Package rank scores batches of matching documents for one query.
//
// The scoring core evaluates a single (document, frequency) pair at a time;
// this package fans a whole posting run out across goroutines and returns the
// top-k hits. Scorers are pure, so the fan-out needs no locking: each worker
// writes to its own slice region.
//
//	hits, err := rank.Top(ctx, scorer, postings, 10)
//
// Results are deterministic regardless of parallelism: ties on score are
// broken by ascending document id.
package rank
