package similarity

// CollectionStatistics is an immutable per-field aggregate snapshot, supplied
// by the index for one query.
type CollectionStatistics struct {
	// Field is the field these statistics describe.
	Field string

	// MaxDoc is an upper bound on the number of documents in the collection.
	MaxDoc int64

	// SumTotalTermFreq is the total number of term occurrences across all
	// documents for the field. A non-positive value means the statistic is
	// unavailable, in which case the average field length defaults to 1.
	SumTotalTermFreq int64
}

// TermStatistics describes a single query term.
type TermStatistics struct {
	// Term is the term text, used only in diagnostics.
	Term string

	// DocFreq is the number of documents containing the term.
	DocFreq int64
}

// FieldState carries the per-document, per-field counts gathered at index
// time from which a norm is computed.
type FieldState struct {
	// Length is the number of indexed tokens for the field.
	Length int

	// NumOverlap is the number of tokens with a position increment of zero.
	NumOverlap int

	// Boost is the index-time field boost.
	Boost float64
}

// avgFieldLength computes the average as sumTotalTermFreq/maxDoc, or returns 1
// if the index does not store sumTotalTermFreq.
func avgFieldLength(stats CollectionStatistics) float64 {
	if stats.SumTotalTermFreq <= 0 {
		return 1
	}
	return float64(stats.SumTotalTermFreq) / float64(stats.MaxDoc)
}
