// Package peneasy implements the penEasy phase-space format: a single
// ASCII file with a fixed 112-byte text header followed by one
// whitespace-separated record per line (KPAR E X Y Z U V W WGHT DeltaN
// ILB(1..5)), compatible with the PENELOPE Monte Carlo code.
package peneasy

import (
	"bufio"
	"fmt"
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
const FormatName = "penEasy"

func init() {
	registry.RegisterFormat(registry.Format{
		Name:       FormatName,
		Extensions: []string{".dat", ".penEasy"},
		OpenReader: func(path string, opts registry.Options) (*phsp.Reader, error) {
			return OpenReader(path)
		},
		CreateWriter: func(path string, opts registry.Options) (*phsp.Writer, error) {
			return CreateWriter(path)
		},
	})
}

// headerLength is the fixed byte offset particle records start at.
const headerLength = 112

// maxASCIILineLength is the longest a formatted record line can be.
const maxASCIILineLength = 205

// fileHeader is the standard penEasy header text, padded with zeros by the
// Writer skeleton up to headerLength.
const fileHeader = "# [PHASE SPACE FILE FORMAT penEasy v.2008-05-15]\n" +
	"# KPAR : E : X : Y : Z : U : V : W : WGHT : DeltaN : ILB(1..5)\n"

// penelopeILB maps ILB array index (0-4) to its property type.
var penelopeILB = [5]particle.IntPropertyType{
	particle.PENELOPE_ILB1,
	particle.PENELOPE_ILB2,
	particle.PENELOPE_ILB3,
	particle.PENELOPE_ILB4,
	particle.PENELOPE_ILB5,
}

func kparForType(t particle.ParticleType) (int, bool) {
	switch t {
	case particle.Electron:
		return 1, true
	case particle.Photon:
		return 2, true
	case particle.Positron:
		return 3, true
	case particle.Proton:
		return 4, true
	default:
		return 0, false
	}
}

func typeForKPAR(kpar int) (particle.ParticleType, bool) {
	switch kpar {
	case 1:
		return particle.Electron, true
	case 2:
		return particle.Photon, true
	case 3:
		return particle.Positron, true
	case 4:
		return particle.Proton, true
	default:
		return particle.Unsupported, false
	}
}

// decoder implements phsp.ASCIIDecoder. TotalParticles is fixed by a fast
// prescan at OpenReader time, counting lines; TotalHistories grows as
// records are read, matching the original Reader, whose
// getNumberOfOriginalHistories() returns a running sum of DeltaN updated
// during readASCIIParticle rather than a value known up front.
type decoder struct {
	warnings []phsp.Warning

	numberOfParticles  uint64
	historiesRead      uint64
}

func (d *decoder) Framing() phsp.FramingMode           { return phsp.ASCIIFraming }
func (d *decoder) TotalParticles() int64               { return int64(d.numberOfParticles) }
func (d *decoder) TotalHistories() int64                { return int64(d.historiesRead) }
func (d *decoder) Warnings() []phsp.Warning             { return d.warnings }
func (d *decoder) Close() error                         { return nil }
func (d *decoder) FixedValues() particle.FixedValues    { return particle.FixedValues{} }
func (d *decoder) MaxLineLength() int                   { return maxASCIILineLength }
func (d *decoder) CommentMarkers() []string             { return []string{"#"} }

// DecodeASCII parses "KPAR E X Y Z U V W WGHT DeltaN ILB1 ILB2 ILB3 ILB4
// ILB5", converting E from eV (on disk) to MeV (in memory).
func (d *decoder) DecodeASCII(line string) (particle.Particle, bool, error) {
	fields := strings.Fields(line)
	if len(fields) < 15 {
		return particle.Particle{}, false, fmt.Errorf("%w: penEasy record has %d fields, want 15", errs.ErrInvalidFormat, len(fields))
	}

	kpar, err := strconv.Atoi(fields[0])
	if err != nil {
		return particle.Particle{}, false, err
	}
	pt, ok := typeForKPAR(kpar)
	if !ok {
		return particle.Particle{}, false, fmt.Errorf("%w: unsupported penEasy particle type code %d", errs.ErrInvalidFormat, kpar)
	}

	parseF32 := func(s string) (float32, error) {
		v, err := strconv.ParseFloat(s, 32)
		return float32(v), err
	}

	e, err := parseF32(fields[1])
	if err != nil {
		return particle.Particle{}, false, err
	}
	x, err := parseF32(fields[2])
	if err != nil {
		return particle.Particle{}, false, err
	}
	y, err := parseF32(fields[3])
	if err != nil {
		return particle.Particle{}, false, err
	}
	z, err := parseF32(fields[4])
	if err != nil {
		return particle.Particle{}, false, err
	}
	u, err := parseF32(fields[5])
	if err != nil {
		return particle.Particle{}, false, err
	}
	v, err := parseF32(fields[6])
	if err != nil {
		return particle.Particle{}, false, err
	}
	w, err := parseF32(fields[7])
	if err != nil {
		return particle.Particle{}, false, err
	}
	weight, err := parseF32(fields[8])
	if err != nil {
		return particle.Particle{}, false, err
	}
	dn, err := strconv.Atoi(fields[9])
	if err != nil {
		return particle.Particle{}, false, err
	}

	ilb := [5]int{}
	for i := 0; i < 5; i++ {
		ilb[i], err = strconv.Atoi(fields[10+i])
		if err != nil {
			return particle.Particle{}, false, err
		}
	}

	kineticEnergy := e * 1e-6 // eV on disk -> MeV in memory
	isNewHistory := dn >= 1

	p := particle.New(pt, kineticEnergy, x, y, z, u, v, w, isNewHistory, weight)
	p.SetIntProperty(particle.INCREMENTAL_HISTORY_NUMBER, int32(dn))
	for i := 0; i < 5; i++ {
		if ilb[i] != 0 {
			p.SetIntProperty(penelopeILB[i], int32(ilb[i]))
		}
	}

	if isNewHistory {
		d.historiesRead += uint64(dn)
	}

	return *p, true, nil
}

// scanParticleCount counts the data lines in a penEasy file: total
// newline-terminated lines, plus one more if the file is non-empty and
// does not end in a newline, minus the two header lines. Mirrors
// countLinesInAsciiFile + the header-line subtraction in the original
// Reader constructor.
func scanParticleCount(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrIO, err)
	}
	defer f.Close()

	var lines uint64
	r := bufio.NewReaderSize(f, 64*1024)
	sawAnyByte := false
	endsInNewline := true
	for {
		chunk, err := r.ReadSlice('\n')
		for _, b := range chunk {
			sawAnyByte = true
			if b == '\n' {
				lines++
				endsInNewline = true
			} else {
				endsInNewline = false
			}
		}
		if err != nil {
			break
		}
	}
	if sawAnyByte && !endsInNewline {
		lines++
	}

	if lines <= 2 {
		return 0, nil
	}

	return lines - 2, nil
}

// OpenReader opens the penEasy file at path, prescans it to determine the
// particle count, and returns a phsp.Reader over it.
func OpenReader(path string) (*phsp.Reader, error) {
	count, err := scanParticleCount(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrIO, err)
	}

	dec := &decoder{numberOfParticles: count}

	return phsp.NewReader(FormatName, file, dec, phsp.WithCommentMarkers("#"))
}

// encoder implements phsp.ASCIIEncoder. penEasy has no fixed in-band
// statistics to maintain beyond the static header text: every record
// carries its own DeltaN and ILB values, so there is nothing for
// NoteParticleWritten to accumulate.
type encoder struct {
	warnings []phsp.Warning
}

func (e *encoder) Framing() phsp.FramingMode              { return phsp.ASCIIFraming }
func (e *encoder) SupportsConstant(phsp.Axis) bool          { return false }
func (e *encoder) SupportsExplicitPseudoParticles() bool    { return false }
func (e *encoder) RecordStartOffset() int64                 { return headerLength }
func (e *encoder) MaxLineLength() int                        { return maxASCIILineLength }
func (e *encoder) Warnings() []phsp.Warning                   { return e.warnings }
func (e *encoder) NoteParticleWritten(p *particle.Particle)   {}
func (e *encoder) NoteHistoriesWritten(n uint64)               {}
func (e *encoder) WriteHeader() ([]byte, error)                { return []byte(fileHeader), nil }

// EncodePseudoParticle is never called: SupportsExplicitPseudoParticles is
// false for this format.
func (e *encoder) EncodePseudoParticle(uint32, *buffer.Buffer) error {
	return fmt.Errorf("%w: penEasy has no on-disk pseudo-particle representation", errs.ErrInvalidFormat)
}

// EncodeASCII formats "KPAR E X Y Z U V W WGHT DeltaN ILB1 ILB2 ILB3 ILB4
// ILB5", converting the kinetic energy from MeV (in memory) to eV (on
// disk).
func (e *encoder) EncodeASCII(p *particle.Particle) (string, error) {
	kpar, ok := kparForType(p.Type())
	if !ok {
		return "", fmt.Errorf("%w: penEasy cannot represent particle type %s", errs.ErrUnsupportedParticle, p.Type())
	}

	dn := 0
	if v, ok := p.IntProperty(particle.INCREMENTAL_HISTORY_NUMBER); ok {
		dn = int(v)
	} else if p.IsNewHistory() {
		dn = 1
	}

	var ilb [5]int32
	for i := 0; i < 5; i++ {
		if v, ok := p.IntProperty(penelopeILB[i]); ok {
			ilb[i] = v
		}
	}

	e_ev := p.KineticEnergy() * 1e6 // MeV in memory -> eV on disk

	line := fmt.Sprintf("%d %14.7e %14.7e %14.7e %14.7e %14.7e %14.7e %14.7e %14.7e %d %d %d %d %d %d",
		kpar, e_ev, p.X(), p.Y(), p.Z(), p.U(), p.V(), p.W(), p.Weight(), dn,
		ilb[0], ilb[1], ilb[2], ilb[3], ilb[4])

	if len(line) > maxASCIILineLength {
		return "", fmt.Errorf("%w: penEasy record exceeds maximum line length", errs.ErrNotEnoughSpace)
	}

	return line, nil
}

func (e *encoder) Close() error { return nil }

// CreateWriter creates the penEasy file at path and returns a phsp.Writer
// over it.
func CreateWriter(path string) (*phsp.Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrIO, err)
	}

	return phsp.NewWriter(FormatName, file, &encoder{})
}
