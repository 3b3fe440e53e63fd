package iaea

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/particlezoo/phsp/buffer"
	"github.com/particlezoo/phsp/errs"
	"github.com/particlezoo/phsp/particle"
	"github.com/particlezoo/phsp/phsp"
	"github.com/particlezoo/phsp/registry"
)

// FormatName is the name this codec registers under.
const FormatName = "IAEA"

func init() {
	registry.RegisterFormat(registry.Format{
		Name:       FormatName,
		Extensions: []string{".iaeaphsp", ".iaea"},
		OpenReader: func(path string, opts registry.Options) (*phsp.Reader, error) {
			return OpenReader(path)
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

// writerOptionsFromRegistry translates a generic option bag (as a CLI
// driver would pass "--IAEAIndex foo") into this codec's typed
// WriterOptions, the way the original Writer constructor reads named
// entries out of its UserOptions map.
func writerOptionsFromRegistry(opts registry.Options) ([]WriterOption, error) {
	var out []WriterOption
	if v, ok := opts.Get("IAEAIndex"); ok {
		out = append(out, WithIAEAIndex(v))
	}
	if v, ok := opts.Get("IAEATitle"); ok {
		out = append(out, WithTitle(v))
	}
	if v, ok := opts.Get("IAEAFileType"); ok {
		out = append(out, WithFileType(v))
	}
	if opts.Bool("IAEAAddIncHistNumber") {
		out = append(out, WithAddIncrementalHistoryNumber())
	}
	if opts.Bool("IAEAAddEGSLATCH") {
		out = append(out, WithAddEGSLatch())
	}
	for _, n := range []int{1, 2, 3, 4, 5} {
		if opts.Bool(fmt.Sprintf("IAEAAddPENELOPEILB%d", n)) {
			out = append(out, WithAddPenelopeILB(n))
		}
	}
	for _, axis := range []string{"x", "y", "z"} {
		if opts.Bool("IAEAAdd" + strings.ToUpper(axis[:1]) + axis[1:] + "Last") {
			out = append(out, WithAddLast(axis))
		}
	}
	if v, ok := opts.Get("IAEAHeaderTemplate"); ok {
		out = append(out, WithTemplateHeader(v))
	}

	return out, nil
}

// HeaderPath derives the sidecar header path for a data file path, per the
// fixed-extension convention DeterminePathToHeaderFile uses: same stem,
// extension changed to .IAEAheader.
func HeaderPath(dataPath string) string {
	ext := filepath.Ext(dataPath)
	return strings.TrimSuffix(dataPath, ext) + ".IAEAheader"
}

// DataPath derives the sidecar data path from a header path, extension
// changed to .IAEAphsp.
func DataPath(headerPath string) string {
	ext := filepath.Ext(headerPath)
	return strings.TrimSuffix(headerPath, ext) + ".IAEAphsp"
}

func typeFromCode(code byte) (particle.ParticleType, bool) {
	switch code {
	case 1:
		return particle.Photon, true
	case 2:
		return particle.Electron, true
	case 3:
		return particle.Positron, true
	case 4:
		return particle.Neutron, true
	case 5:
		return particle.Proton, true
	default:
		return particle.Unsupported, false
	}
}

// decoder implements phsp.BinaryDecoder over a parsed Header.
type decoder struct {
	header   *Header
	warnings []phsp.Warning
}

func (d *decoder) Framing() phsp.FramingMode { return phsp.BinaryFraming }
func (d *decoder) TotalParticles() int64     { return int64(d.header.NumberOfParticles) }
func (d *decoder) TotalHistories() int64     { return int64(d.header.OriginalHistories) }
func (d *decoder) Warnings() []phsp.Warning  { return d.warnings }
func (d *decoder) Close() error              { return nil }

func (d *decoder) FixedValues() particle.FixedValues {
	h := d.header

	return particle.FixedValues{
		XConstant: !h.XStored, ConstantX: h.ConstantX,
		YConstant: !h.YStored, ConstantY: h.ConstantY,
		ZConstant: !h.ZStored, ConstantZ: h.ConstantZ,
		UConstant: !h.UStored, ConstantU: h.ConstantU,
		VConstant: !h.VStored, ConstantV: h.ConstantV,
		WConstant: !h.WStored, ConstantW: h.ConstantW,
		WeightConstant: !h.WeightStored, ConstantWeight: h.ConstantWeight,
	}
}

func (d *decoder) RecordStartOffset() int64 { return 0 }
func (d *decoder) RecordLength() int        { return d.header.RecordLength }

// DecodeBinary implements the exact byte layout of readBinaryParticle: a
// signed type-code byte (sign carries the sign of W), a float32 kinetic
// energy (sign carries new-history), then whichever of x,y,z,u,v,weight the
// header declares stored, then the extra-float and extra-long arrays.
func (d *decoder) DecodeBinary(record []byte) (particle.Particle, bool, error) {
	buf := buffer.From(record, d.header.ByteOrder)
	typeByte, err := buf.ReadInt8()
	if err != nil {
		return particle.Particle{}, false, err
	}

	sign := float32(1)
	magnitude := typeByte
	if magnitude < 0 {
		sign = -1
		magnitude = -magnitude
	}

	pt, ok := typeFromCode(byte(magnitude))
	if !ok {
		return particle.Particle{}, false, fmt.Errorf("%w: unsupported IAEA particle type code %d", errs.ErrInvalidFormat, magnitude)
	}

	energy, err := buf.ReadFloat32()
	if err != nil {
		return particle.Particle{}, false, err
	}
	isNewHistory := energy < 0
	if isNewHistory {
		energy = -energy
	}

	h := d.header
	readOrConst := func(stored bool, constant float32) (float32, error) {
		if !stored {
			return constant, nil
		}

		return buf.ReadFloat32()
	}

	x, err := readOrConst(h.XStored, h.ConstantX)
	if err != nil {
		return particle.Particle{}, false, err
	}
	y, err := readOrConst(h.YStored, h.ConstantY)
	if err != nil {
		return particle.Particle{}, false, err
	}
	z, err := readOrConst(h.ZStored, h.ConstantZ)
	if err != nil {
		return particle.Particle{}, false, err
	}
	u, err := readOrConst(h.UStored, h.ConstantU)
	if err != nil {
		return particle.Particle{}, false, err
	}
	v, err := readOrConst(h.VStored, h.ConstantV)
	if err != nil {
		return particle.Particle{}, false, err
	}

	var w float32
	if h.WStored {
		uuvv := u*u + v*v
		if uuvv > 1 {
			uuvv = 1
		}
		w = sign * float32(math.Sqrt(float64(1-uuvv)))
	} else {
		w = h.ConstantW
	}

	weight, err := readOrConst(h.WeightStored, h.ConstantWeight)
	if err != nil {
		return particle.Particle{}, false, err
	}

	p := particle.New(pt, energy, x, y, z, u, v, w, isNewHistory, weight)

	for _, ft := range h.ExtraFloats {
		val, err := buf.ReadFloat32()
		if err != nil {
			return particle.Particle{}, false, err
		}
		p.SetFloatProperty(translateExtraFloatType(ft), val)
	}
	for _, lt := range h.ExtraLongs {
		val, err := buf.ReadInt32()
		if err != nil {
			return particle.Particle{}, false, err
		}
		p.SetIntProperty(translateExtraLongType(lt), val)
	}

	return *p, true, nil
}

// OpenReader opens the IAEA data file at dataPath (a .IAEAphsp file),
// parses its sidecar .IAEAheader, and returns a phsp.Reader over it.
func OpenReader(dataPath string) (*phsp.Reader, error) {
	headerFile, err := os.Open(HeaderPath(dataPath))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrIO, err)
	}
	defer headerFile.Close()

	header, err := ParseHeader(headerFile)
	if err != nil {
		return nil, err
	}

	dataFile, err := os.Open(dataPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrIO, err)
	}

	dec := &decoder{header: header}

	return phsp.NewReader(FormatName, dataFile, dec)
}

// encoder implements phsp.BinaryEncoder, accumulating statistics into the
// header as particles are written and rendering it at Close.
type encoder struct {
	header     *Header
	headerPath string
	warnings   []phsp.Warning
}

func (e *encoder) Framing() phsp.FramingMode { return phsp.BinaryFraming }
func (e *encoder) RecordStartOffset() int64  { return 0 }
func (e *encoder) RecordLength() int         { return e.header.RecordLength }
func (e *encoder) Warnings() []phsp.Warning  { return e.warnings }

// SupportsConstant reports true for all seven axes: every axis of an IAEA
// record can be declared constant and dropped from the per-record layout.
func (e *encoder) SupportsConstant(phsp.Axis) bool { return true }

// SupportsExplicitPseudoParticles is false: IAEA has no on-disk
// representation for an empty history, only the ORIG_HISTORIES header
// counter.
func (e *encoder) SupportsExplicitPseudoParticles() bool { return false }

func (e *encoder) NoteParticleWritten(p *particle.Particle) { e.header.CountParticleStats(p) }

func (e *encoder) NoteHistoriesWritten(n uint64) {
	if n > e.header.OriginalHistories {
		e.header.OriginalHistories = n
	}
}

func (e *encoder) WriteHeader() ([]byte, error) {
	return nil, nil // the data file has no in-band header; see Close.
}

func (e *encoder) EncodeBinary(p *particle.Particle, dst *buffer.Buffer) error {
	h := e.header

	typeCode, ok := typeCodeForStats(p.Type())
	if !ok {
		return fmt.Errorf("%w: IAEA cannot represent particle type %s", errs.ErrUnsupportedParticle, p.Type())
	}
	signedCode := int8(typeCode)
	if p.W() < 0 {
		signedCode = -signedCode
	}
	dst.WriteInt8(signedCode)

	energy := p.KineticEnergy()
	if p.IsNewHistory() {
		energy = -energy
	}
	dst.WriteFloat32(energy)

	if h.XStored {
		dst.WriteFloat32(p.X())
	}
	if h.YStored {
		dst.WriteFloat32(p.Y())
	}
	if h.ZStored {
		dst.WriteFloat32(p.Z())
	}
	if h.UStored {
		dst.WriteFloat32(p.U())
	}
	if h.VStored {
		dst.WriteFloat32(p.V())
	}
	if h.WeightStored {
		dst.WriteFloat32(p.Weight())
	}

	customFloats := p.CustomFloats()
	customFloatIdx := 0
	for _, ft := range h.ExtraFloats {
		ptype := translateExtraFloatType(ft)
		var val float32
		if ptype == particle.CUSTOM_FLOAT {
			if customFloatIdx < len(customFloats) {
				val = customFloats[customFloatIdx]
				customFloatIdx++
			}
		} else if v, ok := p.FloatProperty(ptype); ok {
			val = v
		}
		dst.WriteFloat32(val)
	}

	customInts := p.CustomInts()
	customIntIdx := 0
	for _, lt := range h.ExtraLongs {
		ptype := translateExtraLongType(lt)
		var val int32
		if ptype == particle.CUSTOM_INT {
			if customIntIdx < len(customInts) {
				val = customInts[customIntIdx]
				customIntIdx++
			}
		} else if v, ok := p.IntProperty(ptype); ok {
			val = v
		} else if ptype == particle.INCREMENTAL_HISTORY_NUMBER {
			if p.IsNewHistory() {
				val = 1
			}
		}
		dst.WriteInt32(val)
	}

	return nil
}

// EncodePseudoParticle is never called: SupportsExplicitPseudoParticles is
// false for this format.
func (e *encoder) EncodePseudoParticle(uint32, *buffer.Buffer) error {
	return fmt.Errorf("%w: IAEA has no on-disk pseudo-particle representation", errs.ErrInvalidFormat)
}

func (e *encoder) Close() error {
	headerFile, err := os.Create(e.headerPath)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrIO, err)
	}
	defer headerFile.Close()

	if _, err := headerFile.WriteString(e.header.Render()); err != nil {
		return err
	}

	return headerFile.Sync()
}

// WriterOption configures a CreateWriter call.
type WriterOption func(*Header) error

// WithIAEAIndex overrides the default "1000" index string.
func WithIAEAIndex(index string) WriterOption {
	return func(h *Header) error { h.IAEAIndex = index; return nil }
}

// WithTitle overrides the header title.
func WithTitle(title string) WriterOption {
	return func(h *Header) error { h.Title = title; return nil }
}

// WithAddIncrementalHistoryNumber adds an INCREMENTAL_HISTORY_NUMBER extra
// long column to every record.
func WithAddIncrementalHistoryNumber() WriterOption {
	return func(h *Header) error { h.AddExtraLong(ExtraLongIncrementalHistoryNumber); return nil }
}

// WithAddEGSLatch adds an EGS_LATCH extra long column to every record.
func WithAddEGSLatch() WriterOption {
	return func(h *Header) error { h.AddExtraLong(ExtraLongEGSLatch); return nil }
}

// WithAddPenelopeILB adds the requested PENELOPE ILB extra long column
// (1-5) to every record.
func WithAddPenelopeILB(n int) WriterOption {
	return func(h *Header) error {
		switch n {
		case 1:
			h.AddExtraLong(ExtraLongPenelopeILB1)
		case 2:
			h.AddExtraLong(ExtraLongPenelopeILB2)
		case 3:
			h.AddExtraLong(ExtraLongPenelopeILB3)
		case 4:
			h.AddExtraLong(ExtraLongPenelopeILB4)
		case 5:
			h.AddExtraLong(ExtraLongPenelopeILB5)
		default:
			return fmt.Errorf("%w: invalid PENELOPE ILB index %d", errs.ErrInvalidProperty, n)
		}

		return nil
	}
}

// WithAddLast adds an XLAST/YLAST/ZLAST extra float column; axis must be
// "x", "y", or "z".
func WithAddLast(axis string) WriterOption {
	return func(h *Header) error {
		switch axis {
		case "x":
			h.AddExtraFloat(ExtraFloatXLast)
		case "y":
			h.AddExtraFloat(ExtraFloatYLast)
		case "z":
			h.AddExtraFloat(ExtraFloatZLast)
		default:
			return fmt.Errorf("%w: invalid LAST axis %q", errs.ErrInvalidProperty, axis)
		}

		return nil
	}
}

// WithFileType sets the header's file-type code ("PHSP_FILE" or
// "PHSP_GENERATOR"; only the former is supported for writing).
func WithFileType(fileType string) WriterOption {
	return func(h *Header) error {
		switch fileType {
		case "PHSP_FILE":
			h.FileType = PHSPFile
		case "PHSP_GENERATOR":
			return fmt.Errorf("%w: IAEA phase-space generator files are not supported for writing", errs.ErrInvalidFormat)
		default:
			return fmt.Errorf("%w: invalid IAEA file type %q", errs.ErrInvalidProperty, fileType)
		}

		return nil
	}
}

// WithTemplateHeader clones the column layout, extras, and metadata of an
// existing .IAEAheader file rather than starting from defaults, the way
// the original Writer's second constructor clones a template header.
func WithTemplateHeader(templateHeaderPath string) WriterOption {
	return func(h *Header) error {
		f, err := os.Open(templateHeaderPath)
		if err != nil {
			return fmt.Errorf("%w: %v", errs.ErrIO, err)
		}
		defer f.Close()

		tmpl, err := ParseHeader(f)
		if err != nil {
			return err
		}

		*h = *tmpl
		h.NumberOfParticles = 0
		h.OriginalHistories = 0
		h.Checksum = 0
		h.Stats = make(map[particle.ParticleType]*ParticleStats)
		h.MinX, h.MaxX = float32(math.MaxFloat32), -float32(math.MaxFloat32)
		h.MinY, h.MaxY = float32(math.MaxFloat32), -float32(math.MaxFloat32)
		h.MinZ, h.MaxZ = float32(math.MaxFloat32), -float32(math.MaxFloat32)

		return nil
	}
}

// CreateWriter creates the IAEA data file at dataPath (a .IAEAphsp file)
// and its sidecar .IAEAheader, returning a phsp.Writer over the data file.
func CreateWriter(dataPath string, opts ...WriterOption) (*phsp.Writer, error) {
	header := NewHeader()
	for _, opt := range opts {
		if err := opt(header); err != nil {
			return nil, err
		}
	}

	dataFile, err := os.Create(dataPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrIO, err)
	}

	enc := &encoder{header: header, headerPath: HeaderPath(dataPath)}

	return phsp.NewWriter(FormatName, dataFile, enc)
}
