package topas

import (
	"fmt"
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
const FormatName = "TOPAS"

func init() {
	registry.RegisterFormat(registry.Format{
		Name:       FormatName,
		Extensions: []string{".phsp"},
		OpenReader: func(path string, opts registry.Options) (*phsp.Reader, error) {
			return OpenReader(path, readerOptionsFromRegistry(opts)...)
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

func readerOptionsFromRegistry(opts registry.Options) []ReaderOption {
	var out []ReaderOption
	if v, ok := opts.Get("TOPASDetailedReading"); ok {
		out = append(out, WithDetailedReading(v == "true"))
	}

	return out
}

func writerOptionsFromRegistry(opts registry.Options) ([]WriterOption, error) {
	var out []WriterOption
	if v, ok := opts.Get("TOPASFormat"); ok {
		f, err := formatByName(v)
		if err != nil {
			return nil, err
		}
		out = append(out, WithFormat(f))
	}

	return out, nil
}

func formatByName(name string) (Format, error) {
	switch strings.ToUpper(name) {
	case "ASCII":
		return FormatASCII, nil
	case "BINARY":
		return FormatBinary, nil
	case "LIMITED":
		return FormatLimited, nil
	default:
		return 0, fmt.Errorf("%w: unknown TOPAS format %q", errs.ErrInvalidProperty, name)
	}
}

// HeaderPath derives the sidecar header path for a data file path. TOPAS's
// own convention is a substring search/replace on whichever of ".phsp" or
// ".header" appears in the name, not a fixed-extension swap: a path with
// no ".phsp" substring just gets ".header" appended.
func HeaderPath(dataPath string) string {
	if strings.Contains(dataPath, ".phsp") {
		return strings.Replace(dataPath, ".phsp", ".header", 1)
	}

	return dataPath + ".header"
}

// DataPath derives the sidecar data path from a header path, the same way.
func DataPath(headerPath string) string {
	if strings.Contains(headerPath, ".header") {
		return strings.Replace(headerPath, ".header", ".phsp", 1)
	}

	return headerPath + ".phsp"
}

// roundToInt32 rounds x to the nearest int32, half away from zero, failing
// with ErrOverflow if the result does not fit a signed 32-bit field -- the
// same bound the original's roundToInt32 helper enforces before trusting a
// pseudo-particle's implied history count.
func roundToInt32(x float64) (int32, error) {
	r := math.Round(x)
	if r > math.MaxInt32 || r < math.MinInt32 {
		return 0, fmt.Errorf("%w: TOPAS pseudo-particle history count %g does not fit a signed 32-bit field", errs.ErrOverflow, x)
	}

	return int32(r), nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}

	return 0
}

func limitedCodeForType(t particle.ParticleType) (int8, bool) {
	switch t {
	case particle.Photon:
		return 1, true
	case particle.Electron:
		return 2, true
	case particle.Positron:
		return 3, true
	case particle.Neutron:
		return 4, true
	case particle.Proton:
		return 5, true
	default:
		return 0, false
	}
}

func typeFromLimitedCode(code int8) (particle.ParticleType, bool) {
	mag := code
	if mag < 0 {
		mag = -mag
	}
	switch mag {
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

// decoder implements phsp.BinaryDecoder (BINARY/LIMITED) and
// phsp.ASCIIDecoder (ASCII) over a parsed Header.
type decoder struct {
	header   *Header
	warnings []phsp.Warning

	// pendingHistories accumulates the history count carried by a run of
	// BINARY empty-history pseudo-particle records (type code 0); it is
	// folded into the next real particle's INCREMENTAL_HISTORY_NUMBER and
	// reset to zero, the way the original's emptyHistoriesCount_ field
	// spans readBinaryParticle calls until a real particle absorbs it.
	pendingHistories uint32

	// skipExtras, when set, decodes only the ten fixed columns and leaves
	// a record's catalogued extras unpopulated -- a faster path for
	// callers that only need the primary phase-space quantities.
	skipExtras bool
}

func (d *decoder) Framing() phsp.FramingMode {
	if d.header.Format == FormatASCII {
		return phsp.ASCIIFraming
	}

	return phsp.BinaryFraming
}

func (d *decoder) TotalParticles() int64 { return int64(d.header.NumberOfParticles) }
func (d *decoder) TotalHistories() int64 { return int64(d.header.NumberOfOriginalHistories) }
func (d *decoder) Warnings() []phsp.Warning { return d.warnings }
func (d *decoder) Close() error { return nil }

// FixedValues is always all-variable: TOPAS has no mechanism for declaring
// an axis constant across a file and omitting it from every record.
func (d *decoder) FixedValues() particle.FixedValues { return particle.FixedValues{} }

func (d *decoder) RecordStartOffset() int64 { return 0 }
func (d *decoder) RecordLength() int        { return d.header.RecordLength() }
func (d *decoder) MaxLineLength() int       { return topasMaxASCIILineLength }
func (d *decoder) CommentMarkers() []string { return nil }

const topasMaxASCIILineLength = 1024

// DecodeBinary dispatches to the LIMITED or BINARY record layout.
func (d *decoder) DecodeBinary(record []byte) (particle.Particle, bool, error) {
	if d.header.Format == FormatLimited {
		return d.decodeLimited(record)
	}

	return d.decodeStandardBinary(record)
}

func (d *decoder) decodeLimited(record []byte) (particle.Particle, bool, error) {
	buf := buffer.From(record, buffer.LittleEndian)

	codeByte, err := buf.ReadInt8()
	if err != nil {
		return particle.Particle{}, false, err
	}
	sign := float32(1)
	mag := codeByte
	if mag < 0 {
		sign = -1
		mag = -mag
	}
	pt, ok := typeFromLimitedCode(mag)
	if !ok {
		return particle.Particle{}, false, fmt.Errorf("%w: unsupported TOPAS limited particle type code %d", errs.ErrInvalidFormat, mag)
	}

	energy, err := buf.ReadFloat32()
	if err != nil {
		return particle.Particle{}, false, err
	}
	isNewHistory := energy < 0
	if isNewHistory {
		energy = -energy
	}

	x, err := buf.ReadFloat32()
	if err != nil {
		return particle.Particle{}, false, err
	}
	y, err := buf.ReadFloat32()
	if err != nil {
		return particle.Particle{}, false, err
	}
	z, err := buf.ReadFloat32()
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
	weight, err := buf.ReadFloat32()
	if err != nil {
		return particle.Particle{}, false, err
	}

	uv := u*u + v*v
	if uv > 1 {
		uv = 1
	}
	w := sign * float32(math.Sqrt(float64(1-uv)))

	p := particle.New(pt, energy, x, y, z, u, v, w, isNewHistory, weight)

	return *p, true, nil
}

func (d *decoder) decodeStandardBinary(record []byte) (particle.Particle, bool, error) {
	buf := buffer.From(record, buffer.LittleEndian)

	x, err := buf.ReadFloat32()
	if err != nil {
		return particle.Particle{}, false, err
	}
	y, err := buf.ReadFloat32()
	if err != nil {
		return particle.Particle{}, false, err
	}
	z, err := buf.ReadFloat32()
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
	energy, err := buf.ReadFloat32()
	if err != nil {
		return particle.Particle{}, false, err
	}
	weight, err := buf.ReadFloat32()
	if err != nil {
		return particle.Particle{}, false, err
	}
	typeCode, err := buf.ReadInt32()
	if err != nil {
		return particle.Particle{}, false, err
	}

	if typeCode == 0 {
		n, err := roundToInt32(float64(-weight))
		if err != nil {
			return particle.Particle{}, false, err
		}
		if n > 0 {
			d.pendingHistories += uint32(n)
		}

		return particle.Particle{}, false, nil
	}

	wSignByte, err := buf.ReadUint8()
	if err != nil {
		return particle.Particle{}, false, err
	}
	newHistByte, err := buf.ReadUint8()
	if err != nil {
		return particle.Particle{}, false, err
	}

	uv := u*u + v*v
	if uv > 1 {
		uv = 1
	}
	w := float32(math.Sqrt(float64(1-uv)))
	if wSignByte != 0 {
		w = -w
	}

	p := particle.New(particle.ByPDGCode(typeCode), energy, x, y, z, u, v, w, newHistByte != 0, weight)

	if d.pendingHistories > 0 {
		base := uint32(1)
		if inc, ok := p.IntProperty(particle.INCREMENTAL_HISTORY_NUMBER); ok {
			base = uint32(inc)
		}
		p.SetNewHistory(true)
		p.SetIntProperty(particle.INCREMENTAL_HISTORY_NUMBER, int32(d.pendingHistories+base))
		d.pendingHistories = 0
	}

	if !d.skipExtras {
		if err := d.decodeExtrasBinary(p, buf); err != nil {
			return particle.Particle{}, false, err
		}
	}

	return *p, true, nil
}

func (d *decoder) decodeExtrasBinary(p *particle.Particle, buf *buffer.Buffer) error {
	for _, c := range d.header.Columns[NumFixedColumns:] {
		switch c.ValueType {
		case DataInt8:
			v, err := buf.ReadInt8()
			if err != nil {
				return err
			}
			p.AddCustomInt(int32(v))
		case DataInt32:
			v, err := buf.ReadInt32()
			if err != nil {
				return err
			}
			p.AddCustomInt(v)
		case DataFloat32:
			v, err := buf.ReadFloat32()
			if err != nil {
				return err
			}
			p.AddCustomFloat(v)
		case DataFloat64:
			v, err := buf.ReadFloat64()
			if err != nil {
				return err
			}
			p.AddCustomFloat(float32(v))
		case DataBool:
			v, err := buf.ReadUint8()
			if err != nil {
				return err
			}
			p.AddCustomBool(v != 0)
		case DataString:
			s, err := buf.ReadStringN(stringFieldLength)
			if err != nil {
				return err
			}
			p.AddCustomString(strings.TrimRight(s, "\x00"))
		}
	}

	return nil
}

// DecodeASCII parses one whitespace-separated record line: the ten fixed
// columns followed by any catalogued extras. TOPAS writes no ASCII
// pseudo-particle records, but a type code of zero is still tolerated as a
// non-emitting record for symmetry with the BINARY reader.
func (d *decoder) DecodeASCII(line string) (particle.Particle, bool, error) {
	fields := strings.Fields(line)
	if len(fields) < NumFixedColumns {
		return particle.Particle{}, false, fmt.Errorf("%w: TOPAS ASCII record has %d fields, want at least %d", errs.ErrInvalidFormat, len(fields), NumFixedColumns)
	}

	parseF32 := func(s string) (float32, error) {
		v, err := strconv.ParseFloat(s, 32)
		return float32(v), err
	}

	x, err := parseF32(fields[0])
	if err != nil {
		return particle.Particle{}, false, err
	}
	y, err := parseF32(fields[1])
	if err != nil {
		return particle.Particle{}, false, err
	}
	z, err := parseF32(fields[2])
	if err != nil {
		return particle.Particle{}, false, err
	}
	u, err := parseF32(fields[3])
	if err != nil {
		return particle.Particle{}, false, err
	}
	v, err := parseF32(fields[4])
	if err != nil {
		return particle.Particle{}, false, err
	}
	energy, err := parseF32(fields[5])
	if err != nil {
		return particle.Particle{}, false, err
	}
	weight, err := parseF32(fields[6])
	if err != nil {
		return particle.Particle{}, false, err
	}
	typeCode64, err := strconv.ParseInt(fields[7], 10, 32)
	if err != nil {
		return particle.Particle{}, false, err
	}
	wIsNeg, err := strconv.ParseInt(fields[8], 10, 8)
	if err != nil {
		return particle.Particle{}, false, err
	}
	isNewHist, err := strconv.ParseInt(fields[9], 10, 8)
	if err != nil {
		return particle.Particle{}, false, err
	}

	typeCode := int32(typeCode64)
	if typeCode == 0 {
		return particle.Particle{}, false, nil
	}

	uv := u*u + v*v
	if uv > 1 {
		uv = 1
	}
	w := float32(math.Sqrt(float64(1-uv)))
	if wIsNeg != 0 {
		w = -w
	}

	p := particle.New(particle.ByPDGCode(typeCode), energy, x, y, z, u, v, w, isNewHist != 0, weight)

	if !d.skipExtras {
		extra := fields[NumFixedColumns:]
		idx := 0
		for _, c := range d.header.Columns[NumFixedColumns:] {
			if idx >= len(extra) {
				break
			}
			tok := extra[idx]
			idx++

			switch c.ValueType {
			case DataInt8, DataInt32:
				n, err := strconv.ParseInt(tok, 10, 64)
				if err != nil {
					return particle.Particle{}, false, err
				}
				p.AddCustomInt(int32(n))
			case DataFloat32, DataFloat64:
				f, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					return particle.Particle{}, false, err
				}
				p.AddCustomFloat(float32(f))
			case DataBool:
				n, err := strconv.ParseInt(tok, 10, 8)
				if err != nil {
					return particle.Particle{}, false, err
				}
				p.AddCustomBool(n != 0)
			case DataString:
				p.AddCustomString(tok)
			}
		}
	}

	return *p, true, nil
}

// ReaderOption configures an OpenReader call.
type ReaderOption func(*decoder)

// WithDetailedReading controls whether a reader populates a record's
// catalogued extra columns (true, the default) or only its ten fixed
// columns (false) -- the faster path when a caller only needs the primary
// phase-space quantities, mirroring the original's setDetailedReading
// toggle.
func WithDetailedReading(enabled bool) ReaderOption {
	return func(d *decoder) { d.skipExtras = !enabled }
}

// OpenReader opens the TOPAS data file at dataPath, parses its sidecar
// ".header" file (detecting ASCII/BINARY/LIMITED from its first non-empty
// line), and
// returns a phsp.Reader over it.
func OpenReader(dataPath string, opts ...ReaderOption) (*phsp.Reader, error) {
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
	for _, opt := range opts {
		opt(dec)
	}

	return phsp.NewReader(FormatName, dataFile, dec)
}

// encoder implements phsp.BinaryEncoder (BINARY/LIMITED) and
// phsp.ASCIIEncoder (ASCII), accumulating statistics into the header as
// particles are written and rendering it as a sidecar file at Close.
type encoder struct {
	header     *Header
	headerPath string
	warnings   []phsp.Warning
}

func (e *encoder) Framing() phsp.FramingMode {
	if e.header.Format == FormatASCII {
		return phsp.ASCIIFraming
	}

	return phsp.BinaryFraming
}

// SupportsConstant is false for every axis: TOPAS records always carry
// their full fixed layout, with no mechanism to omit a constant column.
func (e *encoder) SupportsConstant(phsp.Axis) bool { return false }

// SupportsExplicitPseudoParticles is true only for the BINARY sub-variant,
// the one TOPAS layout with an on-disk representation (type code 0) for a
// run of empty histories.
func (e *encoder) SupportsExplicitPseudoParticles() bool { return e.header.Format == FormatBinary }

func (e *encoder) RecordStartOffset() int64 { return 0 }
func (e *encoder) RecordLength() int        { return e.header.RecordLength() }
func (e *encoder) MaxLineLength() int       { return topasMaxASCIILineLength }
func (e *encoder) Warnings() []phsp.Warning { return e.warnings }

func (e *encoder) NoteParticleWritten(p *particle.Particle) { e.header.CountParticleStats(p) }

func (e *encoder) NoteHistoriesWritten(n uint64) {
	if n > e.header.NumberOfOriginalHistories {
		e.header.NumberOfOriginalHistories = n
	}
}

// WriteHeader renders nothing in-band: like IAEA's, the TOPAS header is a
// separate file written at Close.
func (e *encoder) WriteHeader() ([]byte, error) { return nil, nil }

func (e *encoder) EncodeBinary(p *particle.Particle, dst *buffer.Buffer) error {
	if e.header.Format == FormatLimited {
		return e.encodeLimited(p, dst)
	}

	return e.encodeStandardBinary(p, dst)
}

func (e *encoder) encodeLimited(p *particle.Particle, dst *buffer.Buffer) error {
	code, ok := limitedCodeForType(p.Type())
	if !ok {
		return fmt.Errorf("%w: TOPAS limited format cannot represent particle type %s", errs.ErrUnsupportedParticle, p.Type())
	}
	if p.W() < 0 {
		code = -code
	}
	dst.WriteInt8(code)

	energy := p.KineticEnergy()
	if p.IsNewHistory() {
		energy = -energy
	}
	dst.WriteFloat32(energy)

	dst.WriteFloat32(p.X())
	dst.WriteFloat32(p.Y())
	dst.WriteFloat32(p.Z())
	dst.WriteFloat32(p.U())
	dst.WriteFloat32(p.V())
	dst.WriteFloat32(p.Weight())

	return nil
}

func (e *encoder) encodeStandardBinary(p *particle.Particle, dst *buffer.Buffer) error {
	dst.WriteFloat32(p.X())
	dst.WriteFloat32(p.Y())
	dst.WriteFloat32(p.Z())
	dst.WriteFloat32(p.U())
	dst.WriteFloat32(p.V())
	dst.WriteFloat32(p.KineticEnergy())
	dst.WriteFloat32(p.Weight())
	dst.WriteInt32(p.Type().PDGCode())
	dst.WriteUint8(boolByte(p.W() < 0))
	dst.WriteUint8(boolByte(p.IsNewHistory()))

	return e.encodeExtrasBinary(p, dst)
}

func (e *encoder) encodeExtrasBinary(p *particle.Particle, dst *buffer.Buffer) error {
	customInts := p.CustomInts()
	customFloats := p.CustomFloats()
	customBools := p.CustomBools()
	customStrings := p.CustomStrings()
	intIdx, floatIdx, boolIdx, stringIdx := 0, 0, 0, 0

	for _, c := range e.header.Columns[NumFixedColumns:] {
		switch c.ValueType {
		case DataInt8:
			var v int32
			if intIdx < len(customInts) {
				v = customInts[intIdx]
				intIdx++
			}
			dst.WriteInt8(int8(v))
		case DataInt32:
			var v int32
			if intIdx < len(customInts) {
				v = customInts[intIdx]
				intIdx++
			}
			dst.WriteInt32(v)
		case DataFloat32:
			var v float32
			if floatIdx < len(customFloats) {
				v = customFloats[floatIdx]
				floatIdx++
			}
			dst.WriteFloat32(v)
		case DataFloat64:
			var v float32
			if floatIdx < len(customFloats) {
				v = customFloats[floatIdx]
				floatIdx++
			}
			dst.WriteFloat64(float64(v))
		case DataBool:
			var v bool
			if boolIdx < len(customBools) {
				v = customBools[boolIdx]
				boolIdx++
			}
			dst.WriteUint8(boolByte(v))
		case DataString:
			var s string
			if stringIdx < len(customStrings) {
				s = customStrings[stringIdx]
				stringIdx++
			}
			field := make([]byte, stringFieldLength)
			copy(field, s)
			dst.WriteBytes(field)
		}
	}

	return nil
}

// EncodeASCII formats one whitespace-separated record line: the ten fixed
// columns followed by any catalogued extras.
func (e *encoder) EncodeASCII(p *particle.Particle) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%g %g %g %g %g %g %g %d %d %d",
		p.X(), p.Y(), p.Z(), p.U(), p.V(), p.KineticEnergy(), p.Weight(),
		p.Type().PDGCode(), boolByte(p.W() < 0), boolByte(p.IsNewHistory()))

	customInts := p.CustomInts()
	customFloats := p.CustomFloats()
	customBools := p.CustomBools()
	customStrings := p.CustomStrings()
	intIdx, floatIdx, boolIdx, stringIdx := 0, 0, 0, 0

	for _, c := range e.header.Columns[NumFixedColumns:] {
		b.WriteByte(' ')
		switch c.ValueType {
		case DataInt8, DataInt32:
			var v int32
			if intIdx < len(customInts) {
				v = customInts[intIdx]
				intIdx++
			}
			fmt.Fprintf(&b, "%d", v)
		case DataFloat32, DataFloat64:
			var v float32
			if floatIdx < len(customFloats) {
				v = customFloats[floatIdx]
				floatIdx++
			}
			fmt.Fprintf(&b, "%g", v)
		case DataBool:
			var v bool
			if boolIdx < len(customBools) {
				v = customBools[boolIdx]
				boolIdx++
			}
			fmt.Fprintf(&b, "%d", boolByte(v))
		case DataString:
			var s string
			if stringIdx < len(customStrings) {
				s = customStrings[stringIdx]
				stringIdx++
			}
			fmt.Fprintf(&b, "%-22s", s)
		}
	}

	return b.String(), nil
}

// EncodePseudoParticle appends a BINARY record representing k empty
// histories: type code zero and a weight of -k, matching how
// accountForAdditionalHistories constructs its synthetic particle.
func (e *encoder) EncodePseudoParticle(k uint32, dst *buffer.Buffer) error {
	if e.header.Format != FormatBinary {
		return fmt.Errorf("%w: TOPAS %s has no on-disk pseudo-particle representation", errs.ErrInvalidFormat, e.header.Format)
	}
	if _, err := roundToInt32(float64(k)); err != nil {
		return err
	}

	dst.WriteFloat32(0) // x
	dst.WriteFloat32(0) // y
	dst.WriteFloat32(0) // z
	dst.WriteFloat32(0) // u
	dst.WriteFloat32(0) // v
	dst.WriteFloat32(0) // energy
	dst.WriteFloat32(-float32(k))
	dst.WriteInt32(0)

	// The reader only inspects the fixed fields above before folding a
	// zero-type-code record's history count forward, but every BINARY
	// record (real or pseudo) must occupy exactly RecordLength bytes for
	// the fixed-width framing to stay aligned, so the direction-cosine
	// flags and any catalogued extras still need their own zero filler.
	dst.WriteUint8(0) // direction cosine Z sign
	dst.WriteUint8(0) // new-history flag

	for _, c := range e.header.Columns[NumFixedColumns:] {
		switch c.ValueType {
		case DataInt8:
			dst.WriteInt8(0)
		case DataInt32:
			dst.WriteInt32(0)
		case DataFloat32:
			dst.WriteFloat32(0)
		case DataFloat64:
			dst.WriteFloat64(0)
		case DataBool:
			dst.WriteUint8(0)
		case DataString:
			dst.WriteBytes(make([]byte, stringFieldLength))
		}
	}

	return nil
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
type WriterOption func(*Header)

// WithFormat selects the sub-variant to write: ASCII, BINARY (the default),
// or LIMITED. Mirrors the original's TOPASFormatCommand CLI flag.
func WithFormat(f Format) WriterOption {
	return func(h *Header) { *h = *NewHeader(f) }
}

// WithExtraColumn appends a catalogued extra column to every record,
// beyond the ten fixed columns every ASCII/BINARY header starts with. Not
// meaningful for LIMITED, which carries no column catalog.
func WithExtraColumn(t ColumnType) WriterOption {
	return func(h *Header) { h.AddColumn(NewDataColumn(t)) }
}

// CreateWriter creates the TOPAS data file at dataPath and its sidecar
// ".header" file, defaulting to the BINARY sub-variant, and returns a
// phsp.Writer over the data file.
func CreateWriter(dataPath string, opts ...WriterOption) (*phsp.Writer, error) {
	header := NewHeader(FormatBinary)
	for _, opt := range opts {
		opt(header)
	}

	dataFile, err := os.Create(dataPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrIO, err)
	}

	enc := &encoder{header: header, headerPath: HeaderPath(dataPath)}

	return phsp.NewWriter(FormatName, dataFile, enc)
}
