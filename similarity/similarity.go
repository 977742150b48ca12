package similarity

import (
	"fmt"
	"math"
)

// Standard parameter values, from the Okapi and BM25L papers.
const (
	DefaultK1 = 1.2
	DefaultB  = 0.75
	DefaultD  = 0.5
)

// Model selects the term-frequency saturation formula.
type Model int

const (
	// Classic is the original Okapi BM25 formula.
	Classic Model = iota

	// L is the BM25L variant, which adds a floor d to the length-normalized
	// term frequency so very long documents are not over-penalized.
	L
)

func (m Model) String() string {
	switch m {
	case Classic:
		return "CLASSIC"
	case L:
		return "L"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Similarity holds the BM25 parameters and computes per-query weights and
// per-document scorers from collection statistics.
type Similarity struct {
	k1    float64
	b     float64
	d     float64
	model Model

	// discountOverlaps is the one mutable knob: when true (the default),
	// tokens with a position increment of zero do not count toward the
	// document length used for norms.
	discountOverlaps bool

	payload PayloadScorer
}

// New creates a Similarity with the supplied parameter values.
//
// k1 controls non-linear term frequency normalization (saturation) and must be
// a non-negative finite value. b controls to what degree document length
// normalizes tf values and must be in [0, 1]. d is the BM25L document-length
// floor and must be in [0, 1]; it is ignored for the Classic model.
func New(k1, b, d float64, model Model) (*Similarity, error) {
	if math.IsInf(k1, 0) || math.IsNaN(k1) || k1 < 0 {
		return nil, &ParameterError{Name: "k1", Value: k1, Reason: "must be a non-negative finite value"}
	}
	if math.IsNaN(b) || b < 0 || b > 1 {
		return nil, &ParameterError{Name: "b", Value: b, Reason: "must be between 0 and 1"}
	}
	if math.IsNaN(d) || d < 0 || d > 1 {
		return nil, &ParameterError{Name: "d", Value: d, Reason: "must be between 0 and 1"}
	}
	if model == Classic {
		// d plays no part in the classic formula.
		d = 0
	}
	return &Similarity{
		k1:               k1,
		b:                b,
		d:                d,
		model:            model,
		discountOverlaps: true,
		payload:          ConstantPayload{},
	}, nil
}

// NewDefault creates a Similarity with k1=1.2 and b=0.75, plus d=0.5 when
// model is L.
func NewDefault(model Model) *Similarity {
	d := 0.0
	if model == L {
		d = DefaultD
	}
	s, err := New(DefaultK1, DefaultB, d, model)
	if err != nil {
		// Defaults are always legal.
		panic(err)
	}
	return s
}

// K1 returns the k1 parameter.
func (s *Similarity) K1() float64 { return s.k1 }

// B returns the b parameter.
func (s *Similarity) B() float64 { return s.b }

// D returns the d parameter. It is 0 for the Classic model.
func (s *Similarity) D() float64 { return s.d }

// Model returns the term-frequency saturation model.
func (s *Similarity) Model() Model { return s.model }

// SetDiscountOverlaps sets whether overlap tokens (tokens with zero position
// increment) are ignored when computing norms. The default is true. The flag
// is read at ComputeNorm time and affects all subsequent encodes.
func (s *Similarity) SetDiscountOverlaps(v bool) { s.discountOverlaps = v }

// DiscountOverlaps reports whether overlap tokens are discounted from the
// document length.
func (s *Similarity) DiscountOverlaps() bool { return s.discountOverlaps }

// SetPayloadScorer replaces the payload scoring strategy used by scorers
// created afterwards. Passing nil restores the constant-1 default.
func (s *Similarity) SetPayloadScorer(p PayloadScorer) {
	if p == nil {
		p = ConstantPayload{}
	}
	s.payload = p
}

// String renders the configuration for diagnostics, e.g. "BM25(k1=1.2,b=0.75)"
// or "BM25L(k1=1.2,b=0.75,d=0.5)". The output is not meant to be parsed.
func (s *Similarity) String() string {
	if s.model == Classic {
		return fmt.Sprintf("BM25(k1=%g,b=%g)", s.k1, s.b)
	}
	return fmt.Sprintf("BM25%s(k1=%g,b=%g,d=%g)", s.model, s.k1, s.b, s.d)
}
