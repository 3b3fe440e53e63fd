// Package egs implements the EGSnrc (and BEAMnrc/DOSXYZnrc) phase-space
// format: a 25-byte in-band header padded to the record length, followed
// by fixed-width MODE0 (28-byte) or MODE2 (32-byte, adds ZLAST) records.
// The format stores no Z coordinate; every particle shares a single
// caller-declared Z value.
package egs

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/particlezoo/phsp/buffer"
	"github.com/particlezoo/phsp/errs"
	"github.com/particlezoo/phsp/particle"
	"github.com/particlezoo/phsp/phsp"
	"github.com/particlezoo/phsp/registry"
)

// FormatName is the name this codec registers under.
const FormatName = "EGS"

func init() {
	registry.RegisterFormat(registry.Format{
		Name:       FormatName,
		Extensions: []string{".egsphsp"},
		OpenReader: func(path string, opts registry.Options) (*phsp.Reader, error) {
			ropts, err := readerOptionsFromRegistry(opts)
			if err != nil {
				return nil, err
			}

			return OpenReader(path, ropts...)
		},
		CreateWriter: func(path string, opts registry.Options) (*phsp.Writer, error) {
			wopts, err := writerOptionsFromRegistry(opts)
			if err != nil {
				return nil, err
			}

			return CreateWriter(path, wopts...)
		},
	})
}

func readerOptionsFromRegistry(opts registry.Options) ([]ReaderOption, error) {
	var out []ReaderOption
	if opts.Bool("EGSIgnoreHeaderCount") {
		out = append(out, WithIgnoreHeaderCount())
	}
	if v, ok := opts.Get("EGSParticleZValue"); ok {
		z, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid EGSParticleZValue %q", errs.ErrInvalidProperty, v)
		}
		out = append(out, WithParticleZValue(float32(z)))
	}
	if v, ok := opts.Get("EGSLatchOption"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid EGSLatchOption %q", errs.ErrInvalidProperty, v)
		}
		out = append(out, WithReaderLATCHOption(LATCHOption(n)))
	}

	return out, nil
}

func writerOptionsFromRegistry(opts registry.Options) ([]Option, error) {
	var out []Option
	if v, ok := opts.Get("EGSMode"); ok {
		out = append(out, WithMode(v))
	}
	if v, ok := opts.Get("EGSLatchOption"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid EGSLatchOption %q", errs.ErrInvalidProperty, v)
		}
		out = append(out, WithWriterLATCHOption(LATCHOption(n)))
	}

	return out, nil
}

// Mode selects the on-disk record layout: MODE0 is the standard 28-byte
// record, MODE2 extends it with a ZLAST float (32 bytes).
type Mode int

const (
	Mode0 Mode = 28
	Mode2 Mode = 32
)

// headerDataLength is the number of meaningful header bytes; the region
// between it and the record length (the record-start offset) is zero
// padding.
const headerDataLength = 25

// Header is the parsed/accumulated content of an EGS file's 25-byte
// in-band header.
type Header struct {
	Mode                     Mode
	NumberOfParticles        uint32
	NumberOfPhotons          uint32
	MaxKineticEnergy         float32
	MinElectronEnergy        float32
	NumberOfOriginalHistories float32
}

func newHeader() *Header {
	return &Header{
		Mode:              Mode0,
		MinElectronEnergy: float32(math.Inf(1)),
	}
}

func parseHeader(data []byte) (*Header, error) {
	if len(data) < headerDataLength {
		return nil, errs.ErrNotEnoughData
	}
	buf := buffer.From(data[:headerDataLength], buffer.LittleEndian)

	modeString, err := buf.ReadStringN(4)
	if err != nil {
		return nil, err
	}
	if modeString != "MODE" {
		return nil, fmt.Errorf("%w: not an EGS phase-space file", errs.ErrInvalidFormat)
	}
	modeByte, err := buf.ReadUint8()
	if err != nil {
		return nil, err
	}

	h := newHeader()
	switch modeByte {
	case '0':
		h.Mode = Mode0
	case '2':
		h.Mode = Mode2
	default:
		return nil, fmt.Errorf("%w: unsupported EGS mode byte %q", errs.ErrInvalidFormat, modeByte)
	}

	n, err := buf.ReadUint32()
	if err != nil {
		return nil, err
	}
	h.NumberOfParticles = n

	if h.NumberOfPhotons, err = buf.ReadUint32(); err != nil {
		return nil, err
	}
	if h.MaxKineticEnergy, err = buf.ReadFloat32(); err != nil {
		return nil, err
	}
	if h.MinElectronEnergy, err = buf.ReadFloat32(); err != nil {
		return nil, err
	}
	if h.NumberOfOriginalHistories, err = buf.ReadFloat32(); err != nil {
		return nil, err
	}

	return h, nil
}

func (h *Header) render() []byte {
	buf := buffer.New(headerDataLength, buffer.LittleEndian)
	switch h.Mode {
	case Mode2:
		buf.WriteString("MODE2", false)
	default:
		buf.WriteString("MODE0", false)
	}
	buf.WriteUint32(h.NumberOfParticles)
	buf.WriteUint32(h.NumberOfPhotons)
	buf.WriteFloat32(h.MaxKineticEnergy)
	buf.WriteFloat32(h.MinElectronEnergy)
	buf.WriteFloat32(h.NumberOfOriginalHistories)

	return buf.Bytes()
}

// decoder implements phsp.BinaryDecoder over a parsed Header.
type decoder struct {
	header             *Header
	latchOption        LATCHOption
	particleZValue     float32
	ignoreHeaderCount  bool
	recomputedCount    int64
	warnings           []phsp.Warning
}

func (d *decoder) Framing() phsp.FramingMode { return phsp.BinaryFraming }

func (d *decoder) TotalParticles() int64 {
	if d.ignoreHeaderCount {
		return d.recomputedCount
	}

	return int64(d.header.NumberOfParticles)
}

func (d *decoder) TotalHistories() int64 { return int64(d.header.NumberOfOriginalHistories) }
func (d *decoder) Warnings() []phsp.Warning { return d.warnings }
func (d *decoder) Close() error             { return nil }

func (d *decoder) FixedValues() particle.FixedValues {
	return particle.FixedValues{ZConstant: true, ConstantZ: d.particleZValue}
}

func (d *decoder) RecordStartOffset() int64 { return int64(d.header.Mode) }
func (d *decoder) RecordLength() int        { return int(d.header.Mode) }

// DecodeBinary implements the exact byte layout of readBinaryParticle: a
// packed LATCH word, a signed total-energy float (sign carries
// new-history), x, y (no z), u, v (w reconstructed), weight, and--in
// MODE2 only--a trailing ZLAST float.
func (d *decoder) DecodeBinary(record []byte) (particle.Particle, bool, error) {
	buf := buffer.From(record, buffer.LittleEndian)

	latch, err := buf.ReadUint32()
	if err != nil {
		return particle.Particle{}, false, err
	}
	energy, err := buf.ReadFloat32()
	if err != nil {
		return particle.Particle{}, false, err
	}
	x, err := buf.ReadFloat32()
	if err != nil {
		return particle.Particle{}, false, err
	}
	y, err := buf.ReadFloat32()
	if err != nil {
		return particle.Particle{}, false, err
	}
	u, err := buf.ReadFloat32()
	if err != nil {
		return particle.Particle{}, false, err
	}
	v, err := buf.ReadFloat32()
	if err != nil {
		return particle.Particle{}, false, err
	}

	uuvv := u*u + v*v
	if uuvv > 1 {
		uuvv = 1
	}
	w := float32(math.Sqrt(float64(1 - uuvv)))

	weight, err := buf.ReadFloat32()
	if err != nil {
		return particle.Particle{}, false, err
	}

	isNewHistory := energy < 0
	if isNewHistory {
		energy = -energy
	}

	particleChargeBits := (latch >> 29) & 3
	var pt particle.ParticleType
	switch particleChargeBits {
	case 0:
		pt = particle.Photon
	case 1:
		pt = particle.Electron
		energy -= particle.ElectronRestMass
	case 2:
		pt = particle.Positron
		energy -= particle.ElectronRestMass
	default:
		return particle.Particle{}, false, fmt.Errorf("%w: invalid EGS LATCH charge bits %d", errs.ErrInvalidFormat, particleChargeBits)
	}

	p := particle.New(pt, energy, x, y, d.particleZValue, u, v, w, isNewHistory, weight)
	ApplyLATCH(p, latch, d.latchOption)

	if d.header.Mode == Mode2 {
		zlast, err := buf.ReadFloat32()
		if err != nil {
			return particle.Particle{}, false, err
		}
		p.SetFloatProperty(particle.ZLAST, zlast)
	}

	return *p, true, nil
}

// ReaderOption configures an OpenReader call.
type ReaderOption func(*decoder)

// WithIgnoreHeaderCount recomputes the particle count from the file size
// instead of trusting the (sometimes stale) header value.
func WithIgnoreHeaderCount() ReaderOption {
	return func(d *decoder) { d.ignoreHeaderCount = true }
}

// WithParticleZValue sets the Z coordinate assigned to every particle,
// since EGS records do not store one.
func WithParticleZValue(z float32) ReaderOption {
	return func(d *decoder) { d.particleZValue = z }
}

// WithReaderLATCHOption selects how LATCH's secondary-particle bits are
// interpreted when decoding; defaults to LatchOption2.
func WithReaderLATCHOption(opt LATCHOption) ReaderOption {
	return func(d *decoder) { d.latchOption = opt }
}

// OpenReader opens the EGS phase-space file at path, parses its 25-byte
// in-band header, and returns a phsp.Reader over it.
func OpenReader(path string, opts ...ReaderOption) (*phsp.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrIO, err)
	}

	prefix := make([]byte, headerDataLength)
	if _, err := io.ReadFull(f, prefix); err != nil {
		f.Close()

		return nil, fmt.Errorf("%w: %v", errs.ErrIO, err)
	}

	header, err := parseHeader(prefix)
	if err != nil {
		f.Close()

		return nil, err
	}

	dec := &decoder{header: header, latchOption: LatchOption2}
	for _, opt := range opts {
		opt(dec)
	}

	if dec.ignoreHeaderCount {
		info, err := f.Stat()
		if err != nil {
			f.Close()

			return nil, err
		}
		dec.recomputedCount = (info.Size() - int64(header.Mode)) / int64(header.Mode)
		if dec.recomputedCount != int64(header.NumberOfParticles) {
			dec.warnings = append(dec.warnings, phsp.Warning{
				Kind:    "InconsistentMetadata",
				Message: fmt.Sprintf("particle count computed from file size (%d) differs from header value (%d)", dec.recomputedCount, header.NumberOfParticles),
			})
		}
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()

		return nil, err
	}

	return phsp.NewReader(FormatName, f, dec)
}

// encoder implements phsp.BinaryEncoder, accumulating statistics into the
// header as particles are written.
type encoder struct {
	header                *Header
	latchOption           LATCHOption
	historyCountManualSet bool
	warnings              []phsp.Warning
}

func (e *encoder) Framing() phsp.FramingMode           { return phsp.BinaryFraming }
func (e *encoder) RecordStartOffset() int64            { return int64(e.header.Mode) }
func (e *encoder) RecordLength() int                   { return int(e.header.Mode) }
func (e *encoder) Warnings() []phsp.Warning             { return e.warnings }
func (e *encoder) SupportsExplicitPseudoParticles() bool { return false }

// SupportsConstant is true only for Z: EGS never stores x/y/u/v/w/weight
// as anything but per-record floats, but it never stores Z at all, so a
// constant Z declaration is always honored (and any non-constant Z is
// simply dropped on write, matching the format's own limitation).
func (e *encoder) SupportsConstant(axis phsp.Axis) bool { return axis == phsp.AxisZ }

func (e *encoder) NoteParticleWritten(p *particle.Particle) {
	e.header.NumberOfParticles++
	if p.Type() == particle.Photon {
		e.header.NumberOfPhotons++
	}

	energy := p.KineticEnergy()
	if energy > e.header.MaxKineticEnergy {
		e.header.MaxKineticEnergy = energy
	}
	if p.Type() == particle.Electron && energy < e.header.MinElectronEnergy {
		e.header.MinElectronEnergy = energy
	}
}

func (e *encoder) NoteHistoriesWritten(n uint64) {
	if e.historyCountManualSet {
		return
	}
	if float32(n) > e.header.NumberOfOriginalHistories {
		e.header.NumberOfOriginalHistories = float32(n)
	}
}

func (e *encoder) WriteHeader() ([]byte, error) { return e.header.render(), nil }
func (e *encoder) Close() error                 { return nil }

// EncodeBinary implements the exact byte layout of writeBinaryParticle:
// the packed LATCH word, a signed total-energy float, x, y, u, v, weight,
// and--in MODE2 only--a trailing ZLAST float pulled from the particle's
// ZLAST property (an error if absent, matching the original's hard
// requirement).
func (e *encoder) EncodeBinary(p *particle.Particle, dst *buffer.Buffer) error {
	energy := p.KineticEnergy()

	latch := ExtractLATCH(p, e.latchOption)

	var chargeBits uint32
	switch p.Type() {
	case particle.Photon:
		chargeBits = 0
	case particle.Electron:
		chargeBits = 1
		energy += particle.ElectronRestMass
	case particle.Positron:
		chargeBits = 2
		energy += particle.ElectronRestMass
	default:
		return fmt.Errorf("%w: EGS cannot represent particle type %s", errs.ErrUnsupportedParticle, p.Type())
	}
	latch = (latch &^ (3 << 29)) | (chargeBits << 29)

	if p.IsNewHistory() {
		energy = -energy
	}

	dst.WriteUint32(latch)
	dst.WriteFloat32(energy)
	dst.WriteFloat32(p.X())
	dst.WriteFloat32(p.Y())
	dst.WriteFloat32(p.U())
	dst.WriteFloat32(p.V())
	dst.WriteFloat32(p.Weight())

	if e.header.Mode == Mode2 {
		zlast, ok := p.FloatProperty(particle.ZLAST)
		if !ok {
			return fmt.Errorf("%w: MODE2 EGS files require a ZLAST property on every particle", errs.ErrInvalidProperty)
		}
		dst.WriteFloat32(zlast)
	}

	return nil
}

// EncodePseudoParticle is never called: SupportsExplicitPseudoParticles is
// false for this format.
func (e *encoder) EncodePseudoParticle(uint32, *buffer.Buffer) error {
	return fmt.Errorf("%w: EGS has no on-disk pseudo-particle representation", errs.ErrInvalidFormat)
}

// Option configures a CreateWriter call.
type Option func(*encoder) error

// WithMode selects MODE0 (default) or MODE2 ("MODE0"/"MODE2").
func WithMode(mode string) Option {
	return func(e *encoder) error {
		switch strings.ToUpper(mode) {
		case "MODE0":
			e.header.Mode = Mode0
		case "MODE2":
			e.header.Mode = Mode2
		default:
			return fmt.Errorf("%w: unsupported EGS mode %q", errs.ErrInvalidProperty, mode)
		}

		return nil
	}
}

// WithWriterLATCHOption selects how LATCH's secondary-particle bits are
// constructed when encoding; defaults to LatchOption2.
func WithWriterLATCHOption(opt LATCHOption) Option {
	return func(e *encoder) error { e.latchOption = opt; return nil }
}

// WithManualHistories overrides automatic original-history tracking with
// an explicit count, the way setNumberOfOriginalHistories does.
func WithManualHistories(n uint32) Option {
	return func(e *encoder) error {
		e.header.NumberOfOriginalHistories = float32(n)
		e.historyCountManualSet = true

		return nil
	}
}

// CreateWriter creates the EGS phase-space file at path, returning a
// phsp.Writer over it.
func CreateWriter(path string, opts ...Option) (*phsp.Writer, error) {
	enc := &encoder{header: newHeader(), latchOption: LatchOption2}
	for _, opt := range opts {
		if err := opt(enc); err != nil {
			return nil, err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrIO, err)
	}

	return phsp.NewWriter(FormatName, f, enc)
}
