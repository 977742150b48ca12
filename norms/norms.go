package norms

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/Cavallium/lucene-relevance/similarity"
)

// Dense is a slice-backed norm store: one value per document id, for fields
// that nearly every document carries.
type Dense struct {
	values []int64
}

// Ensure the stores satisfy the scorer's reader interface.
var (
	_ similarity.NormsReader = (*Dense)(nil)
	_ similarity.NormsReader = (*Sparse)(nil)
)

// NewDense creates a Dense store over values, indexed by document id. The
// store takes ownership of the slice.
func NewDense(values []int64) *Dense {
	return &Dense{values: values}
}

// Norm returns the stored norm for doc. Documents outside the slice have no
// norm.
func (d *Dense) Norm(doc int) (int64, bool) {
	if doc < 0 || doc >= len(d.values) {
		return 0, false
	}
	return d.values[doc], true
}

// Len returns the number of documents covered by the store.
func (d *Dense) Len() int { return len(d.values) }

// Sparse stores norms for a subset of documents. Presence is tracked in a
// Roaring bitmap; values are held in document order and resolved by rank, so
// lookups cost one bitmap rank query.
type Sparse struct {
	docs    *roaring.Bitmap
	values  []int64
	lastDoc int64
}

// NewSparse creates an empty Sparse store.
func NewSparse() *Sparse {
	return &Sparse{docs: roaring.New(), lastDoc: -1}
}

// Add records the norm for doc. Documents must be added in strictly
// increasing order, matching the index-time pass that computes them.
func (s *Sparse) Add(doc uint32, norm int64) error {
	if int64(doc) <= s.lastDoc {
		return fmt.Errorf("norms: doc %d added out of order (last was %d)", doc, s.lastDoc)
	}
	s.docs.Add(doc)
	s.values = append(s.values, norm)
	s.lastDoc = int64(doc)
	return nil
}

// Norm returns the stored norm for doc, if one was added.
func (s *Sparse) Norm(doc int) (int64, bool) {
	if doc < 0 || int64(doc) > math.MaxUint32 {
		return 0, false
	}
	d := uint32(doc)
	if !s.docs.Contains(d) {
		return 0, false
	}
	return s.values[s.docs.Rank(d)-1], true
}

// Len returns the number of documents with a stored norm.
func (s *Sparse) Len() int { return len(s.values) }
