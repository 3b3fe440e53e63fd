package phsp

import "github.com/particlezoo/phsp/particle"

// ReaderOptions configures a Reader at construction, following the
// functional-options pattern (each option mutates the bag, applied in
// order).
type ReaderOptions struct {
	// CommentMarkers lists line prefixes an ASCII codec treats as comments
	// to skip. Defaults to {"#", "//"} if left nil.
	CommentMarkers []string
	// Filter, if set, is applied after decode; a particle for which it
	// returns false is not handed to the caller. Its incremental history
	// count is promoted onto the writer's pending-histories counter by
	// callers that re-encode (see cmd/phspconvert), not by the Reader
	// itself, since the Reader has no writer to promote into.
	Filter func(*particle.Particle) bool
	// MaxParticles stops iteration after this many particles have been
	// handed to the caller, regardless of how many remain on disk. Zero
	// means unlimited.
	MaxParticles int64
}

// ReaderOption mutates a ReaderOptions during construction.
type ReaderOption func(*ReaderOptions)

// WithCommentMarkers overrides the default ASCII comment prefixes.
func WithCommentMarkers(markers ...string) ReaderOption {
	return func(o *ReaderOptions) { o.CommentMarkers = markers }
}

// WithParticleFilter installs a post-decode predicate.
func WithParticleFilter(f func(*particle.Particle) bool) ReaderOption {
	return func(o *ReaderOptions) { o.Filter = f }
}

// WithMaxParticles caps how many particles Next will yield.
func WithMaxParticles(n int64) ReaderOption {
	return func(o *ReaderOptions) { o.MaxParticles = n }
}

// NewReaderOptions applies opts over the zero-value defaults ({"#", "//"}
// comment markers, no filter, unlimited particles).
func NewReaderOptions(opts ...ReaderOption) ReaderOptions {
	o := ReaderOptions{CommentMarkers: []string{"#", "//"}}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}

// WriterOptions configures a Writer at construction.
type WriterOptions struct {
	// FixedValues declares which axes are constant across the file; a
	// codec that supports a given axis omits it from the per-record
	// layout and stores the constant in its header instead.
	FixedValues particle.FixedValues
	// FlipX/Y/Z negate the corresponding direction cosine of every
	// particle before it is encoded, mirroring the CLI's --flip* flags.
	FlipX, FlipY, FlipZ bool
}

// WriterOption mutates a WriterOptions during construction.
type WriterOption func(*WriterOptions)

// WithFixedValues declares the writer's constant-column contract.
func WithFixedValues(fv particle.FixedValues) WriterOption {
	return func(o *WriterOptions) { o.FixedValues = fv }
}

// WithFlip negates the given direction-cosine axes on every write.
func WithFlip(x, y, z bool) WriterOption {
	return func(o *WriterOptions) { o.FlipX, o.FlipY, o.FlipZ = x, y, z }
}

// NewWriterOptions applies opts over the zero-value defaults (no fixed
// values, no flips).
func NewWriterOptions(opts ...WriterOption) WriterOptions {
	var o WriterOptions
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
