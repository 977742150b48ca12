package relevance

import (
	"github.com/Cavallium/lucene-relevance/similarity"
)

type options struct {
	k1               float64
	b                float64
	d                float64
	model            similarity.Model
	discountOverlaps bool
	payload          similarity.PayloadScorer
	logger           *Logger
}

// Option configures engine construction.
type Option func(*options)

// WithModel selects the term-frequency saturation model. The default is
// similarity.Classic; similarity.L also sets d to its standard 0.5 unless
// WithD overrides it.
func WithModel(m similarity.Model) Option {
	return func(o *options) {
		o.model = m
		if m == similarity.L && o.d == 0 {
			o.d = similarity.DefaultD
		}
	}
}

// WithK1 sets the term-frequency saturation parameter. Must be a
// non-negative finite value; the default is 1.2.
func WithK1(k1 float64) Option {
	return func(o *options) { o.k1 = k1 }
}

// WithB sets the length-normalization strength. Must be in [0, 1]; the
// default is 0.75.
func WithB(b float64) Option {
	return func(o *options) { o.b = b }
}

// WithD sets the BM25L long-document floor. Must be in [0, 1]; only
// meaningful with similarity.L.
func WithD(d float64) Option {
	return func(o *options) { o.d = d }
}

// WithDiscountOverlaps sets whether overlap tokens are excluded from the
// document length when encoding norms. The default is true.
func WithDiscountOverlaps(v bool) Option {
	return func(o *options) { o.discountOverlaps = v }
}

// WithPayloadScorer replaces the constant-1 payload scoring strategy.
func WithPayloadScorer(p similarity.PayloadScorer) Option {
	return func(o *options) { o.payload = p }
}

// WithLogger configures structured logging. The default discards all output.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
