package phsp

import (
	"io"
	"os"

	"github.com/particlezoo/phsp/buffer"
	"github.com/particlezoo/phsp/errs"
	"github.com/particlezoo/phsp/particle"
)

// Writer is the format-independent skeleton over an Encoder: it owns the
// file handle and byte buffers, applies the common write policy (flip,
// constant-column substitution, pseudo-particle/Unsupported handling),
// and rewrites the header at Close with final statistics.
type Writer struct {
	formatName string
	file       *os.File
	encoder    Encoder

	binary   BinaryEncoder
	ascii    ASCIIEncoder
	external ExternalEncoder

	opts WriterOptions

	scratch *buffer.Buffer // record-sized, binary framing only
	main    *buffer.Buffer // block-sized, binary/ASCII framing

	historiesWritten uint64
	particlesWritten uint64
	pendingHistories uint64

	closed bool
}

// NewWriter constructs a Writer over an already-open, writable file.
func NewWriter(formatName string, file *os.File, encoder Encoder, opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		formatName: formatName,
		file:       file,
		encoder:    encoder,
		opts:       NewWriterOptions(opts...),
	}

	switch encoder.Framing() {
	case BinaryFraming:
		be, ok := encoder.(BinaryEncoder)
		if !ok {
			return nil, errs.ErrInvalidFormat
		}
		w.binary = be
		w.scratch = buffer.New(be.RecordLength(), buffer.LittleEndian)
		w.main = buffer.New(blockSize, buffer.LittleEndian)
	case ASCIIFraming:
		ae, ok := encoder.(ASCIIEncoder)
		if !ok {
			return nil, errs.ErrInvalidFormat
		}
		w.ascii = ae
		w.main = buffer.New(blockSize, buffer.LittleEndian)
	case ExternalFraming:
		ee, ok := encoder.(ExternalEncoder)
		if !ok {
			return nil, errs.ErrInvalidFormat
		}
		w.external = ee
	}

	// Reserve the header region; it is back-patched at Close.
	if file != nil {
		if _, err := file.Seek(encoder.RecordStartOffset(), io.SeekStart); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// FormatName returns the name the writer was constructed with.
func (w *Writer) FormatName() string { return w.formatName }

// ParticlesWritten returns how many particles have actually been
// persisted to disk. Pseudo-particles are never counted, including those
// the format records explicitly.
func (w *Writer) ParticlesWritten() uint64 { return w.particlesWritten }

// HistoriesWritten returns the running total, including any pending
// histories staged by AddAdditionalHistories.
func (w *Writer) HistoriesWritten() uint64 { return w.historiesWritten + w.pendingHistories }

// SetFixedValues installs a constant-column declaration after
// construction, for a caller (a CLI driver re-encoding another file
// with --preserveConstants) that only learns the input's fixed values
// once the source Reader has been opened, too late to pass as a
// WriterOption to NewWriter.
func (w *Writer) SetFixedValues(fv particle.FixedValues) { w.opts.FixedValues = fv }

// Write applies the common write policy (steps 1-6 of the writer
// contract) and hands the particle to the codec's encoder.
func (w *Writer) Write(p particle.Particle) error {
	if p.Type() == particle.Unsupported {
		return errs.ErrUnsupportedParticle
	}

	if p.Type() == particle.PseudoParticle {
		return w.writePseudoParticle(p)
	}

	w.applyFlip(&p)
	w.applyConstants(&p)

	if err := w.encodeReal(&p); err != nil {
		return err
	}

	w.particlesWritten++
	w.encoder.NoteParticleWritten(&p)

	if p.IsNewHistory() {
		w.historiesWritten += uint64(p.IncrementalHistories())
	}

	return nil
}

func (w *Writer) applyFlip(p *particle.Particle) {
	if w.opts.FlipX {
		p.SetU(-p.U())
	}
	if w.opts.FlipY {
		p.SetV(-p.V())
	}
	if w.opts.FlipZ {
		p.SetW(-p.W())
	}
}

func (w *Writer) applyConstants(p *particle.Particle) {
	fv := w.opts.FixedValues
	if fv.XConstant && w.encoder.SupportsConstant(AxisX) {
		p.SetX(fv.ConstantX)
	}
	if fv.YConstant && w.encoder.SupportsConstant(AxisY) {
		p.SetY(fv.ConstantY)
	}
	if fv.ZConstant && w.encoder.SupportsConstant(AxisZ) {
		p.SetZ(fv.ConstantZ)
	}
	if fv.UConstant && w.encoder.SupportsConstant(AxisU) {
		p.SetU(fv.ConstantU)
	}
	if fv.VConstant && w.encoder.SupportsConstant(AxisV) {
		p.SetV(fv.ConstantV)
	}
	if fv.WConstant && w.encoder.SupportsConstant(AxisW) {
		p.SetW(fv.ConstantW)
	}
	if fv.WeightConstant && w.encoder.SupportsConstant(AxisWeight) {
		p.SetWeight(fv.ConstantWeight)
	}
}

func (w *Writer) encodeReal(p *particle.Particle) error {
	switch w.encoder.Framing() {
	case BinaryFraming:
		w.scratch.Clear()
		if err := w.binary.EncodeBinary(p, w.scratch); err != nil {
			return err
		}

		return w.appendAndFlush(w.scratch.Bytes())
	case ASCIIFraming:
		line, err := w.ascii.EncodeASCII(p)
		if err != nil {
			return err
		}
		w.main.WriteLine(line)

		return w.flushIfNeeded()
	default:
		return w.external.WriteExternal(p)
	}
}

func (w *Writer) appendAndFlush(record []byte) error {
	if w.main.Remaining() < len(record) && w.main.Len() > 0 {
		if err := w.flushMain(); err != nil {
			return err
		}
	}
	w.main.WriteBytes(record)

	return w.flushIfNeeded()
}

// flushIfNeeded flushes main once it has grown past one block, keeping
// memory use bounded on very large files.
func (w *Writer) flushIfNeeded() error {
	if w.main.Len() < blockSize {
		return nil
	}

	return w.flushMain()
}

func (w *Writer) flushMain() error {
	if w.main.Len() == 0 {
		return nil
	}
	if _, err := w.file.Write(w.main.Bytes()); err != nil {
		return err
	}
	w.main.Clear()

	return nil
}

// writePseudoParticle implements write-policy step 2: a caller-supplied
// PseudoParticle represents k empty histories (k is carried in the
// particle's weight as -k, matching TOPAS's own on-disk convention, or
// via IncrementalHistories if set). If the codec can represent it
// on-disk, an explicit record is emitted now; otherwise the count is
// only staged into pending history accounting.
func (w *Writer) writePseudoParticle(p particle.Particle) error {
	var k uint32
	if p.HasIntProperty(particle.INCREMENTAL_HISTORY_NUMBER) {
		k = p.IncrementalHistories()
	}
	if k == 0 {
		k = uint32(-p.Weight())
	}
	if k == 0 {
		return errs.ErrInvalidProperty
	}

	if w.encoder.SupportsExplicitPseudoParticles() && w.encoder.Framing() == BinaryFraming {
		w.scratch.Clear()
		if err := w.binary.EncodePseudoParticle(k, w.scratch); err != nil {
			return err
		}
		if err := w.appendAndFlush(w.scratch.Bytes()); err != nil {
			return err
		}
	}

	return w.AddAdditionalHistories(uint64(k))
}

// AddAdditionalHistories accounts for k simulated histories that
// produced no scoring particle. Formats without an explicit
// pseudo-particle representation fold k into the header's history
// counter at Close.
func (w *Writer) AddAdditionalHistories(k uint64) error {
	w.pendingHistories += k

	return nil
}

// Close flushes buffered records, rewrites the header at offset zero
// with final statistics, and closes the file. It is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.flushMain(); err != nil {
		return err
	}

	w.encoder.NoteHistoriesWritten(w.HistoriesWritten())

	header, err := w.encoder.WriteHeader()
	if err != nil {
		return err
	}

	if w.file != nil {
		if _, err := w.file.Seek(0, io.SeekStart); err != nil {
			return err
		}
		padded := header
		if pad := w.encoder.RecordStartOffset() - int64(len(header)); pad > 0 {
			padded = append(padded, make([]byte, pad)...)
		}
		if _, err := w.file.Write(padded); err != nil {
			return err
		}
		if err := w.file.Sync(); err != nil {
			return err
		}
	}

	var cerr error
	if cerr = w.encoder.Close(); cerr != nil {
		return cerr
	}
	if w.file != nil {
		return w.file.Close()
	}

	return nil
}
