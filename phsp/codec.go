// Package phsp provides the format-independent Reader/Writer skeleton that
// every phase-space codec plugs into: buffered file I/O, record framing
// (binary/ASCII/external), statistics accumulation, and history bookkeeping.
// A codec package (codec/iaea, codec/egs, codec/topas, codec/peneasy) owns
// only its header grammar and per-record bit layout, implementing the
// Decoder/Encoder capability traits defined here.
package phsp

import (
	"github.com/particlezoo/phsp/buffer"
	"github.com/particlezoo/phsp/particle"
)

// Axis identifies one of the seven scalar axes a codec may declare
// constant across an entire file.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisU
	AxisV
	AxisW
	AxisWeight
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	case AxisU:
		return "u"
	case AxisV:
		return "v"
	case AxisW:
		return "w"
	case AxisWeight:
		return "weight"
	default:
		return "unknown"
	}
}

// FramingMode selects how the Reader/Writer skeleton frames on-disk
// records for a given codec.
type FramingMode int

const (
	// BinaryFraming means the skeleton reads fixed-length byte records at
	// a codec-declared offset and length, handing each one to the codec to
	// decode/encode.
	BinaryFraming FramingMode = iota
	// ASCIIFraming means the skeleton reads newline-delimited text lines,
	// skipping blank lines and codec-configured comment markers.
	ASCIIFraming
	// ExternalFraming means the skeleton performs no I/O of its own; the
	// codec drives its own reads/writes entirely.
	ExternalFraming
)

// Warning is a non-fatal condition surfaced to the caller instead of
// failing the operation outright: a declared count disagreeing with what
// was read, a history promoted across a filter boundary, and so on.
type Warning struct {
	Kind    string
	Message string
}

func (w Warning) String() string { return w.Kind + ": " + w.Message }

// Decoder is the part of a format codec common to all three framing
// modes: the metadata the Reader skeleton needs regardless of how it
// frames records.
type Decoder interface {
	Framing() FramingMode
	TotalParticles() int64
	TotalHistories() int64
	FixedValues() particle.FixedValues
	Warnings() []Warning
	Close() error
}

// BinaryDecoder is implemented by a codec using BinaryFraming.
type BinaryDecoder interface {
	Decoder
	RecordStartOffset() int64
	RecordLength() int
	// DecodeBinary decodes one fixed-length record. emit is false for a
	// record that represents bookkeeping only (a pseudo-particle) rather
	// than an observable particle; the skeleton does not count it towards
	// particles_read and reads another record immediately.
	DecodeBinary(record []byte) (p particle.Particle, emit bool, err error)
}

// ASCIIDecoder is implemented by a codec using ASCIIFraming.
type ASCIIDecoder interface {
	Decoder
	MaxLineLength() int
	CommentMarkers() []string
	DecodeASCII(line string) (p particle.Particle, emit bool, err error)
}

// ExternalDecoder is implemented by a codec using ExternalFraming; it
// drives its own I/O layer entirely.
type ExternalDecoder interface {
	Decoder
	ReadExternal() (p particle.Particle, more bool, err error)
}

// Seekable is implemented by a BinaryDecoder whose underlying storage
// supports random access, enabling Reader.MoveToParticle.
type Seekable interface {
	SeekToRecord(index int64) error
}

// Encoder is the part of a format codec common to all three framing
// modes: the metadata the Writer skeleton needs regardless of how it
// frames records.
type Encoder interface {
	Framing() FramingMode
	// SupportsConstant reports whether the format can omit a column from
	// the per-record layout when declared constant.
	SupportsConstant(axis Axis) bool
	// SupportsExplicitPseudoParticles reports whether the format has an
	// on-disk representation for a run of empty histories (TOPAS); when
	// false, pending histories are folded into the header's history count
	// at Close instead.
	SupportsExplicitPseudoParticles() bool
	RecordStartOffset() int64
	// WriteHeader renders the header bytes to be written at file offset
	// zero; the skeleton pads it with zeros up to RecordStartOffset.
	WriteHeader() ([]byte, error)
	NoteParticleWritten(p *particle.Particle)
	NoteHistoriesWritten(n uint64)
	Warnings() []Warning
	Close() error
}

// BinaryEncoder is implemented by a codec using BinaryFraming.
type BinaryEncoder interface {
	Encoder
	RecordLength() int
	EncodeBinary(p *particle.Particle, dst *buffer.Buffer) error
	// EncodePseudoParticle appends a pseudo-particle record representing k
	// empty histories. Only called when SupportsExplicitPseudoParticles is
	// true.
	EncodePseudoParticle(k uint32, dst *buffer.Buffer) error
}

// ASCIIEncoder is implemented by a codec using ASCIIFraming.
type ASCIIEncoder interface {
	Encoder
	MaxLineLength() int
	EncodeASCII(p *particle.Particle) (string, error)
}

// ExternalEncoder is implemented by a codec using ExternalFraming.
type ExternalEncoder interface {
	Encoder
	WriteExternal(p *particle.Particle) error
}
