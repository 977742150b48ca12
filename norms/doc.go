// Package norms provides per-document norm stores read by the scorer.
//
// A norm is the integer encoding of a document's field length computed by
// similarity.ComputeNorm at index time. The scorer never writes norms; it
// only resolves them per document. Two stores are provided:
//
//   - Dense holds one norm per document in a slice, for fields present in
//     most documents.
//   - Sparse tracks which documents carry a norm in a Roaring bitmap and
//     stores only those values, for fields present in few documents.
//
// A field that omits length statistics altogether is represented by a nil
// similarity.NormsReader, not by an empty store.
package norms
