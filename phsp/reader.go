package phsp

import (
	"io"
	"os"
	"strings"

	"github.com/particlezoo/phsp/buffer"
	"github.com/particlezoo/phsp/errs"
	"github.com/particlezoo/phsp/particle"
)

// blockSize is how much the Reader skeleton tries to keep buffered ahead
// of the cursor for binary and ASCII framing.
const blockSize = buffer.DefaultGrowChunk

// Reader is the format-independent skeleton over a Decoder: it owns the
// file handle and byte buffer, frames records per the codec's declared
// FramingMode, and tracks the statistics and history-accounting rules
// common to every phase-space format.
type Reader struct {
	formatName string
	file       *os.File
	buf        *buffer.Buffer
	decoder    Decoder

	binary   BinaryDecoder
	ascii    ASCIIDecoder
	external ExternalDecoder

	opts ReaderOptions

	bytesInFile    int64
	particlesRead  int64
	historiesRead  int64
	particlesSkip  int64
	seekedToRecord bool

	pendingLine    string
	havePending    bool
	asciiExhausted bool

	closed bool
}

// NewReader constructs a Reader over an already-open file, given a
// Decoder implementing the capability trait matching its FramingMode.
// formatName is only what FormatName reports; the caller
// (a codec's OpenReader constructor) is responsible for opening file at
// the correct data-file path (for IAEA, the sidecar .IAEAphsp, not the
// header).
func NewReader(formatName string, file *os.File, decoder Decoder, opts ...ReaderOption) (*Reader, error) {
	r := &Reader{
		formatName: formatName,
		file:       file,
		decoder:    decoder,
		opts:       NewReaderOptions(opts...),
	}

	switch decoder.Framing() {
	case BinaryFraming:
		bd, ok := decoder.(BinaryDecoder)
		if !ok {
			return nil, errs.ErrInvalidFormat
		}
		r.binary = bd
		r.buf = buffer.New(blockSize, buffer.LittleEndian)
	case ASCIIFraming:
		ad, ok := decoder.(ASCIIDecoder)
		if !ok {
			return nil, errs.ErrInvalidFormat
		}
		r.ascii = ad
		r.buf = buffer.New(blockSize, buffer.LittleEndian)
	case ExternalFraming:
		ed, ok := decoder.(ExternalDecoder)
		if !ok {
			return nil, errs.ErrInvalidFormat
		}
		r.external = ed
	}

	if file != nil {
		if info, err := file.Stat(); err == nil {
			r.bytesInFile = info.Size()
		}
	}

	return r, nil
}

// FormatName returns the name the reader was constructed with.
func (r *Reader) FormatName() string { return r.formatName }

// TotalParticles returns the codec-declared particle count.
func (r *Reader) TotalParticles() int64 { return r.decoder.TotalParticles() }

// TotalHistories returns the codec-declared original-history count.
func (r *Reader) TotalHistories() int64 { return r.decoder.TotalHistories() }

// ParticlesRead returns how many particles Next has yielded so far.
func (r *Reader) ParticlesRead() int64 { return r.particlesRead }

// HistoriesRead returns the running history count: each new-history
// particle contributes max(1, incremental_histories).
func (r *Reader) HistoriesRead() int64 { return r.historiesRead }

// FixedValues returns the constant-column declaration the codec parsed
// from its header.
func (r *Reader) FixedValues() particle.FixedValues { return r.decoder.FixedValues() }

// Warnings returns non-fatal conditions accumulated by the codec (header
// parsing) and the skeleton (filter promotions are the caller's
// responsibility, not tracked here).
func (r *Reader) Warnings() []Warning { return r.decoder.Warnings() }

// HasMore reports whether another call to Next could yield a particle.
func (r *Reader) HasMore() bool {
	if r.opts.MaxParticles > 0 && r.particlesRead >= r.opts.MaxParticles {
		return false
	}
	if r.particlesRead >= r.decoder.TotalParticles() {
		return false
	}

	switch r.decoder.Framing() {
	case BinaryFraming:
		return r.binaryBytesRemaining() >= int64(r.binary.RecordLength())
	case ASCIIFraming:
		return r.peekLine()
	default:
		return true
	}
}

func (r *Reader) binaryBytesRemaining() int64 {
	buffered := int64(r.buf.Remaining())
	pos, _ := r.file.Seek(0, io.SeekCurrent)

	return buffered + (r.bytesInFile - pos)
}

// Next decodes the next particle. ok is false when the reader is
// exhausted (not an error); callers should stop calling Next once ok is
// false.
func (r *Reader) Next() (p particle.Particle, ok bool, err error) {
	for r.HasMore() {
		switch r.decoder.Framing() {
		case BinaryFraming:
			p, ok, err = r.nextBinary()
		case ASCIIFraming:
			p, ok, err = r.nextASCII()
		default:
			p, ok, err = r.external.ReadExternal()
		}
		if err != nil || !ok {
			return p, ok, err
		}

		if r.opts.Filter != nil && !r.opts.Filter(&p) {
			continue
		}

		r.particlesRead++
		if p.IsNewHistory() {
			n := int64(p.IncrementalHistories())
			if n < 1 {
				n = 1
			}
			r.historiesRead += n
		}

		return p, true, nil
	}

	return particle.Particle{}, false, nil
}

func (r *Reader) ensureBinaryPrimed() error {
	if r.seekedToRecord {
		return nil
	}
	r.seekedToRecord = true

	return r.seekFile(r.binary.RecordStartOffset())
}

func (r *Reader) seekFile(offset int64) error {
	r.buf.Clear()
	_, err := r.file.Seek(offset, io.SeekStart)

	return err
}

func (r *Reader) nextBinary() (particle.Particle, bool, error) {
	if err := r.ensureBinaryPrimed(); err != nil {
		return particle.Particle{}, false, err
	}

	recLen := r.binary.RecordLength()
	for {
		if r.buf.Remaining() < recLen {
			r.buf.Compact()
			if _, err := r.buf.AppendData(r.file); err != nil {
				return particle.Particle{}, false, err
			}
			if r.buf.Remaining() < recLen {
				return particle.Particle{}, false, nil
			}
		}

		view, err := r.buf.ReadBytes(recLen)
		if err != nil {
			return particle.Particle{}, false, err
		}

		p, emit, err := r.binary.DecodeBinary(view)
		if err != nil {
			return particle.Particle{}, false, err
		}
		if emit {
			fv := r.decoder.FixedValues()
			fv.Apply(&p)

			return p, true, nil
		}
		// Non-emitting record (a pseudo-particle): the codec has folded
		// its history count forward for the next real record; keep going.
		if r.binaryBytesRemaining() < int64(recLen) {
			return particle.Particle{}, false, nil
		}
	}
}

func (r *Reader) peekLine() bool {
	if r.havePending {
		return true
	}
	if r.asciiExhausted {
		return false
	}

	for {
		line, err := r.readRawLine()
		if err != nil {
			r.asciiExhausted = true

			return false
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if r.isComment(trimmed) {
			continue
		}
		r.pendingLine = line
		r.havePending = true

		return true
	}
}

func (r *Reader) isComment(line string) bool {
	markers := r.opts.CommentMarkers
	if len(markers) == 0 {
		markers = []string{"#", "//"}
	}
	for _, m := range markers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}

	return false
}

func (r *Reader) readRawLine() (string, error) {
	for {
		line, err := r.buf.ReadLine()
		if err == nil {
			return line, nil
		}
		r.buf.Compact()
		n, rerr := r.buf.AppendData(r.file)
		if n == 0 {
			if rerr != nil {
				return "", rerr
			}

			return "", io.EOF
		}
	}
}

func (r *Reader) nextASCII() (particle.Particle, bool, error) {
	for r.peekLine() {
		line := r.pendingLine
		r.havePending = false

		p, emit, err := r.ascii.DecodeASCII(line)
		if err != nil {
			return particle.Particle{}, false, err
		}
		if !emit {
			continue
		}
		fv := r.decoder.FixedValues()
		fv.Apply(&p)

		return p, true, nil
	}

	return particle.Particle{}, false, nil
}

// MoveToParticle repositions a binary-framed reader to the given
// zero-based particle index. It is an error for ASCII or external
// framing. After a jump, callers must walk forward to the next
// new-history particle to avoid splitting a history.
func (r *Reader) MoveToParticle(index int64) error {
	if r.decoder.Framing() != BinaryFraming {
		return errs.ErrInvalidFormat
	}
	if seekable, ok := r.decoder.(Seekable); ok {
		if err := seekable.SeekToRecord(index); err != nil {
			return err
		}
		r.buf.Clear()
		r.seekedToRecord = true

		return nil
	}

	offset := r.binary.RecordStartOffset() + index*int64(r.binary.RecordLength())

	return r.seekFile(offset)
}

// Close releases the underlying file handle. It is idempotent.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	var err error
	if cerr := r.decoder.Close(); cerr != nil {
		err = cerr
	}
	if r.file != nil {
		if cerr := r.file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}
