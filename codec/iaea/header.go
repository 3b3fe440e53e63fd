// Package iaea implements the IAEA phase-space format: a section-delimited
// ASCII header (conventionally named *.IAEAheader) describing a sidecar
// binary data file (*.IAEAphsp) of fixed- or variable-width records.
package iaea

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/particlezoo/phsp/buffer"
	"github.com/particlezoo/phsp/particle"
)

// FileType distinguishes a scored phase-space file from a source generator
// description; this package only reads/writes the former.
type FileType int

const (
	PHSPFile FileType = iota
	PHSPGenerator
)

// ExtraFloatType enumerates the catalogued meanings an extra float column
// in a record can carry, per the IAEA(NDS)-0484 technical report.
type ExtraFloatType int

const (
	ExtraFloatGeneric ExtraFloatType = iota
	ExtraFloatXLast
	ExtraFloatYLast
	ExtraFloatZLast
)

// ExtraLongType enumerates the catalogued meanings an extra integer column
// in a record can carry.
type ExtraLongType int

const (
	ExtraLongGeneric ExtraLongType = iota
	ExtraLongIncrementalHistoryNumber
	ExtraLongEGSLatch
	ExtraLongPenelopeILB5
	ExtraLongPenelopeILB4
	ExtraLongPenelopeILB3
	ExtraLongPenelopeILB2
	ExtraLongPenelopeILB1
)

var extraFloatLabels = [...]string{
	"Generic float variable stored in the extrafloat array",
	"XLAST variable stored in the extrafloat array",
	"YLAST variable stored in the extrafloat array",
	"ZLAST variable stored in the extrafloat array",
}

var extraLongLabels = [...]string{
	"Generic integer variable stored in the extralong array",
	"Incremental history number stored in the extralong array",
	"LATCH EGS variable stored in the extralong array",
	"ILB5 PENELOPE variable stored in the extralong array",
	"ILB4 PENELOPE variable stored in the extralong array",
	"ILB3 PENELOPE variable stored in the extralong array",
	"ILB2 PENELOPE variable stored in the extralong array",
	"ILB1 PENELOPE variable stored in the extralong array",
}

// translateExtraFloatType maps a wire-level extra-float slot to the
// particle property it populates.
func translateExtraFloatType(t ExtraFloatType) particle.FloatPropertyType {
	switch t {
	case ExtraFloatGeneric:
		return particle.CUSTOM_FLOAT
	case ExtraFloatXLast:
		return particle.XLAST
	case ExtraFloatYLast:
		return particle.YLAST
	case ExtraFloatZLast:
		return particle.ZLAST
	default:
		return particle.INVALID_FLOAT
	}
}

// translateExtraLongType maps a wire-level extra-long slot to the particle
// property it populates.
func translateExtraLongType(t ExtraLongType) particle.IntPropertyType {
	switch t {
	case ExtraLongGeneric:
		return particle.CUSTOM_INT
	case ExtraLongIncrementalHistoryNumber:
		return particle.INCREMENTAL_HISTORY_NUMBER
	case ExtraLongEGSLatch:
		return particle.EGS_LATCH
	case ExtraLongPenelopeILB5:
		return particle.PENELOPE_ILB5
	case ExtraLongPenelopeILB4:
		return particle.PENELOPE_ILB4
	case ExtraLongPenelopeILB3:
		return particle.PENELOPE_ILB3
	case ExtraLongPenelopeILB2:
		return particle.PENELOPE_ILB2
	case ExtraLongPenelopeILB1:
		return particle.PENELOPE_ILB1
	default:
		return particle.INVALID_INT
	}
}

// ParticleStats accumulates the per-species statistics the header publishes
// in its STATISTICAL_INFORMATION_PARTICLES section.
type ParticleStats struct {
	Count     uint64
	WeightSum float64
	MinWeight float32
	MaxWeight float32
	EnergySum float64
	MinEnergy float32
	MaxEnergy float32
}

func newParticleStats() *ParticleStats {
	return &ParticleStats{
		MinWeight: math.MaxFloat32,
		MinEnergy: math.MaxFloat32,
	}
}

// MeanWeight returns the statistical-weight mean, or 0 if no particles of
// this species have been counted.
func (s *ParticleStats) MeanWeight() float32 {
	if s.Count == 0 {
		return 0
	}

	return float32(s.WeightSum / float64(s.Count))
}

// MeanEnergy returns the kinetic-energy mean, or 0 if no particles of this
// species have been counted.
func (s *ParticleStats) MeanEnergy() float32 {
	if s.Count == 0 {
		return 0
	}

	return float32(s.EnergySum / float64(s.Count))
}

var statsOrder = []particle.ParticleType{
	particle.Photon, particle.Electron, particle.Positron, particle.Neutron, particle.Proton,
}

var statsSectionName = map[particle.ParticleType]string{
	particle.Photon:   "PHOTONS",
	particle.Electron: "ELECTRONS",
	particle.Positron: "POSITRONS",
	particle.Neutron:  "NEUTRONS",
	particle.Proton:   "PROTONS",
}

func typeCodeForStats(t particle.ParticleType) (byte, bool) {
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

func statsNameForType(t particle.ParticleType) string { return statsSectionName[t] }

func typeFromStatsName(name string) (particle.ParticleType, bool) {
	switch name {
	case "PHOTONS":
		return particle.Photon, true
	case "ELECTRONS":
		return particle.Electron, true
	case "POSITRONS":
		return particle.Positron, true
	case "NEUTRONS":
		return particle.Neutron, true
	case "PROTONS":
		return particle.Proton, true
	default:
		return particle.Unsupported, false
	}
}

// Header is the parsed/accumulated content of an .IAEAheader file.
type Header struct {
	IAEAIndex string
	Title     string
	FileType  FileType

	Checksum uint64

	XStored, YStored, ZStored      bool
	UStored, VStored, WStored      bool
	WeightStored                   bool
	ConstantX, ConstantY, ConstantZ float32
	ConstantU, ConstantV, ConstantW float32
	ConstantWeight                  float32

	ExtraFloats []ExtraFloatType
	ExtraLongs  []ExtraLongType

	RecordLength int
	ByteOrder    buffer.Order

	OriginalHistories uint64
	NumberOfParticles uint64

	MinX, MaxX float32
	MinY, MaxY float32
	MinZ, MaxZ float32

	Stats map[particle.ParticleType]*ParticleStats

	// extraSections preserves any free-text sections (machine description,
	// beam name, and so on) across a read-modify-write round trip.
	extraSections map[string]string
}

// NewHeader returns a Header with every axis stored, the default 29-byte
// Photon/Electron/Positron/Neutron/Proton record layout (1 type byte + 4
// energy + 6*4 position/direction/weight floats = 29), and an empty
// statistics table.
func NewHeader() *Header {
	return &Header{
		IAEAIndex:     "1000",
		Title:         "PHASESPACE in IAEA format",
		FileType:      PHSPFile,
		XStored:       true,
		YStored:       true,
		ZStored:       true,
		UStored:       true,
		VStored:       true,
		WStored:       true,
		WeightStored:  true,
		RecordLength:  29,
		ByteOrder:     buffer.LittleEndian,
		MinX:          math.MaxFloat32,
		MinY:          math.MaxFloat32,
		MinZ:          math.MaxFloat32,
		MaxX:          -math.MaxFloat32,
		MaxY:          -math.MaxFloat32,
		MaxZ:          -math.MaxFloat32,
		Stats:         make(map[particle.ParticleType]*ParticleStats),
		extraSections: make(map[string]string),
	}
}

// CalculateMinimumRecordLength returns the smallest record length consistent
// with the currently-stored axes and extra column counts: 1 type byte + 4
// energy bytes + 4 bytes per stored axis/extra.
func (h *Header) CalculateMinimumRecordLength() int {
	stored := 0
	for _, b := range []bool{h.XStored, h.YStored, h.ZStored, h.UStored, h.VStored, h.WeightStored} {
		if b {
			stored++
		}
	}

	return 1 + 4 + 4*(stored+len(h.ExtraFloats)+len(h.ExtraLongs))
}

// setConstant marks an axis constant, recording its value and--if the axis
// was previously stored--shrinking the record length and clearing the
// stored flag, mirroring the wire-format side effect of declaring a column
// constant: it is no longer present in each record.
func (h *Header) setConstant(wasStored *bool, constant *float32, value float32) {
	*constant = value
	if *wasStored {
		*wasStored = false
		h.RecordLength -= 4
	}
}

func (h *Header) SetConstantX(v float32) { h.setConstant(&h.XStored, &h.ConstantX, v) }
func (h *Header) SetConstantY(v float32) { h.setConstant(&h.YStored, &h.ConstantY, v) }
func (h *Header) SetConstantZ(v float32) { h.setConstant(&h.ZStored, &h.ConstantZ, v) }
func (h *Header) SetConstantU(v float32) { h.setConstant(&h.UStored, &h.ConstantU, v) }
func (h *Header) SetConstantV(v float32) { h.setConstant(&h.VStored, &h.ConstantV, v) }
func (h *Header) SetConstantW(v float32) {
	// W never occupies record bytes (it is reconstructed from U and V), so
	// declaring it constant leaves the record length unchanged.
	h.ConstantW = v
	h.WStored = false
}
func (h *Header) SetConstantWeight(v float32) {
	h.setConstant(&h.WeightStored, &h.ConstantWeight, v)
}

// AddExtraFloat appends a column to the extra-float array and grows the
// record length to match.
func (h *Header) AddExtraFloat(t ExtraFloatType) {
	h.ExtraFloats = append(h.ExtraFloats, t)
	h.RecordLength += 4
}

// AddExtraLong appends a column to the extra-long array and grows the
// record length to match.
func (h *Header) AddExtraLong(t ExtraLongType) {
	h.ExtraLongs = append(h.ExtraLongs, t)
	h.RecordLength += 4
}

// CountParticleStats folds one decoded/encoded particle into the header's
// running totals: particle count, per-species weight/energy statistics,
// geometric bounds, original-history count, and checksum.
func (h *Header) CountParticleStats(p *particle.Particle) {
	h.NumberOfParticles++

	if iv, ok := p.IntProperty(particle.INCREMENTAL_HISTORY_NUMBER); ok {
		h.OriginalHistories += uint64(iv)
	} else if p.IsNewHistory() {
		h.OriginalHistories++
	}

	t := p.Type()
	stats, ok := h.Stats[t]
	if !ok {
		stats = newParticleStats()
		h.Stats[t] = stats
	}
	weight, energy := p.Weight(), p.KineticEnergy()
	stats.Count++
	stats.WeightSum += float64(weight)
	if weight < stats.MinWeight {
		stats.MinWeight = weight
	}
	if weight > stats.MaxWeight {
		stats.MaxWeight = weight
	}
	stats.EnergySum += float64(energy)
	if energy < stats.MinEnergy {
		stats.MinEnergy = energy
	}
	if energy > stats.MaxEnergy {
		stats.MaxEnergy = energy
	}

	x, y, z := p.X(), p.Y(), p.Z()
	if x < h.MinX {
		h.MinX = x
	}
	if x > h.MaxX {
		h.MaxX = x
	}
	if y < h.MinY {
		h.MinY = y
	}
	if y > h.MaxY {
		h.MaxY = y
	}
	if z < h.MinZ {
		h.MinZ = z
	}
	if z > h.MaxZ {
		h.MaxZ = z
	}

	h.Checksum = h.NumberOfParticles * uint64(h.RecordLength)
}

// ChecksumValid reports whether the header's recorded checksum matches
// RecordLength * NumberOfParticles and RecordLength is at least the
// minimum the declared columns require.
func (h *Header) ChecksumValid() bool {
	return h.RecordLength >= h.CalculateMinimumRecordLength() &&
		h.Checksum == uint64(h.RecordLength)*h.NumberOfParticles
}

func stripWhiteSpace(s string) string { return strings.TrimSpace(s) }

// removeInlineComments drops everything from the first "//" that is
// preceded by whitespace or begins the string, the way the original header
// parser distinguishes a comment from a URL or path containing "//".
func removeInlineComments(s string) string {
	pos := 0
	for {
		idx := strings.Index(s[pos:], "//")
		if idx < 0 {
			return s
		}
		abs := pos + idx
		if abs == 0 || s[abs-1] == ' ' || s[abs-1] == '\t' {
			return s[:abs]
		}
		pos = abs + 2
	}
}

func cleanLine(line string) string {
	return stripWhiteSpace(removeInlineComments(line))
}

func isSectionHeader(line string) bool {
	return strings.HasPrefix(line, "$") && strings.Contains(line, ":")
}

func parseIntValue(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	return strconv.ParseUint(s, 10, 64)
}

func parseIntArray(s string) []uint64 {
	fields := strings.Fields(s)
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}

	return out
}

func parseFloatArray(s string) []float32 {
	fields := strings.Fields(s)
	out := make([]float32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			continue
		}
		out = append(out, float32(v))
	}

	return out
}

// ParseHeader reads the section-delimited ASCII grammar of an .IAEAheader
// file.
func ParseHeader(r io.Reader) (*Header, error) {
	h := NewHeader()
	h.NumberOfParticles = 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var title, content strings.Builder
	sections := make(map[string]string)

	flush := func() {
		if title.Len() == 0 {
			return
		}
		sections[title.String()] = content.String()
		title.Reset()
		content.Reset()
	}

	for scanner.Scan() {
		line := cleanLine(scanner.Text())
		if isSectionHeader(line) {
			flush()
			name := line[1:strings.Index(line, ":")]
			title.WriteString(stripWhiteSpace(name))
		} else {
			content.WriteString(line)
			content.WriteString("\n")
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	h.extraSections = sections
	if v, ok := sections["IAEA_INDEX"]; ok {
		h.IAEAIndex = stripWhiteSpace(v)
	}
	if v, ok := sections["TITLE"]; ok {
		h.Title = stripWhiteSpace(v)
	}
	if v, ok := sections["CHECKSUM"]; ok {
		if n, err := parseIntValue(v); err == nil {
			h.Checksum = n
		}
	}
	if v, ok := sections["RECORD_CONTENTS"]; ok {
		arr := parseIntArray(v)
		if len(arr) < 9 {
			return nil, fmt.Errorf("IAEA header RECORD_CONTENTS has %d values, want at least 9", len(arr))
		}
		h.XStored = arr[0] == 1
		h.YStored = arr[1] == 1
		h.ZStored = arr[2] == 1
		h.UStored = arr[3] == 1
		h.VStored = arr[4] == 1
		h.WStored = arr[5] == 1
		h.WeightStored = arr[6] == 1
		if !h.WStored && h.UStored && h.VStored {
			h.WStored = true
		}
		nFloats := int(arr[7])
		nLongs := int(arr[8])
		h.ExtraFloats = make([]ExtraFloatType, nFloats)
		h.ExtraLongs = make([]ExtraLongType, nLongs)
		for i := 0; i < nFloats; i++ {
			h.ExtraFloats[i] = ExtraFloatType(arr[9+i])
		}
		for i := 0; i < nLongs; i++ {
			h.ExtraLongs[i] = ExtraLongType(arr[9+nFloats+i])
		}
	}
	if v, ok := sections["RECORD_CONSTANT"]; ok {
		arr := parseFloatArray(v)
		idx := 0
		next := func() float32 {
			if idx >= len(arr) {
				return 0
			}
			f := arr[idx]
			idx++

			return f
		}
		if !h.XStored {
			h.ConstantX = next()
		}
		if !h.YStored {
			h.ConstantY = next()
		}
		if !h.ZStored {
			h.ConstantZ = next()
		}
		if !h.UStored {
			h.ConstantU = next()
		}
		if !h.VStored {
			h.ConstantV = next()
		}
		if !h.WStored {
			h.ConstantW = next()
		}
		if !h.WeightStored {
			if idx >= len(arr) {
				h.ConstantWeight = 1
			} else {
				h.ConstantWeight = next()
			}
		}
	}
	if v, ok := sections["RECORD_LENGTH"]; ok {
		if n, err := parseIntValue(v); err == nil {
			h.RecordLength = int(n)
		}
		if h.RecordLength < h.CalculateMinimumRecordLength() {
			return nil, fmt.Errorf("IAEA header RECORD_LENGTH %d below minimum %d", h.RecordLength, h.CalculateMinimumRecordLength())
		}
	}
	if v, ok := sections["BYTE_ORDER"]; ok {
		n, _ := parseIntValue(v)
		switch n {
		case 1234:
			h.ByteOrder = buffer.LittleEndian
		case 4321:
			h.ByteOrder = buffer.BigEndian
		case 3412:
			h.ByteOrder = buffer.PDPEndian
		default:
			return nil, fmt.Errorf("IAEA header has unknown BYTE_ORDER code %d", n)
		}
	}
	if v, ok := sections["ORIG_HISTORIES"]; ok {
		if n, err := parseIntValue(v); err == nil {
			h.OriginalHistories = n
		}
	}
	if v, ok := sections["PARTICLES"]; ok {
		if n, err := parseIntValue(v); err == nil {
			h.NumberOfParticles = n
		}
	}
	for _, name := range []string{"PHOTONS", "ELECTRONS", "POSITRONS", "NEUTRONS", "PROTONS"} {
		v, ok := sections[name]
		if !ok {
			continue
		}
		n, err := parseIntValue(v)
		if err != nil {
			continue
		}
		pt, _ := typeFromStatsName(name)
		stats := newParticleStats()
		stats.Count = n
		h.Stats[pt] = stats
	}
	if v, ok := sections["STATISTICAL_INFORMATION_PARTICLES"]; ok {
		h.parseParticleStatsSection(v)
	}
	if v, ok := sections["STATISTICAL_INFORMATION_GEOMETRY"]; ok {
		h.parseGeometrySection(v)
	}

	return h, nil
}

func (h *Header) parseParticleStatsSection(content string) {
	for _, rawLine := range strings.Split(content, "\n") {
		line := stripWhiteSpace(removeInlineComments(rawLine))
		if line == "" {
			continue
		}
		if c := line[0]; !(c >= '0' && c <= '9') && c != '-' && c != '.' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 7 {
			continue
		}
		totalWeight, err1 := strconv.ParseFloat(fields[0], 32)
		minWeight, err2 := strconv.ParseFloat(fields[1], 32)
		maxWeight, err3 := strconv.ParseFloat(fields[2], 32)
		meanEnergy, err4 := strconv.ParseFloat(fields[3], 32)
		minEnergy, err5 := strconv.ParseFloat(fields[4], 32)
		maxEnergy, err6 := strconv.ParseFloat(fields[5], 32)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil || err6 != nil {
			continue
		}
		name := strings.TrimSuffix(fields[6], "S")
		pt, ok := typeFromStatsName(name + "S")
		if !ok {
			continue
		}
		stats, ok := h.Stats[pt]
		if !ok {
			stats = newParticleStats()
			h.Stats[pt] = stats
		}
		stats.MinWeight = float32(minWeight)
		stats.MaxWeight = float32(maxWeight)
		stats.WeightSum = totalWeight
		stats.EnergySum = float64(stats.Count) * meanEnergy
		stats.MinEnergy = float32(minEnergy)
		stats.MaxEnergy = float32(maxEnergy)
	}
}

func (h *Header) parseGeometrySection(content string) {
	var nums []float64
	for _, tok := range strings.Fields(content) {
		if v, err := strconv.ParseFloat(tok, 32); err == nil {
			nums = append(nums, v)
		}
	}
	idx := 0
	take2 := func() (float32, float32, bool) {
		if idx+1 >= len(nums) {
			return 0, 0, false
		}
		lo, hi := float32(nums[idx]), float32(nums[idx+1])
		idx += 2

		return lo, hi, true
	}
	if h.XStored {
		if lo, hi, ok := take2(); ok {
			h.MinX, h.MaxX = lo, hi
		}
	} else {
		h.MinX, h.MaxX = h.ConstantX, h.ConstantX
	}
	if h.YStored {
		if lo, hi, ok := take2(); ok {
			h.MinY, h.MaxY = lo, hi
		}
	} else {
		h.MinY, h.MaxY = h.ConstantY, h.ConstantY
	}
	if h.ZStored {
		if lo, hi, ok := take2(); ok {
			h.MinZ, h.MaxZ = lo, hi
		}
	} else {
		h.MinZ, h.MaxZ = h.ConstantZ, h.ConstantZ
	}
}

// Render serializes the header back to the section-delimited ASCII
// grammar, recomputing the checksum from the current record length and
// particle count.
func (h *Header) Render() string {
	h.Checksum = uint64(h.RecordLength) * h.NumberOfParticles

	var b strings.Builder
	section := func(name, content string) {
		b.WriteString("$")
		b.WriteString(name)
		b.WriteString(":\n")
		b.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	section("IAEA_INDEX", h.IAEAIndex)
	section("TITLE", h.Title)
	section("FILE_TYPE", strconv.Itoa(int(h.FileType)))
	section("CHECKSUM", strconv.FormatUint(h.Checksum, 10))

	var rc strings.Builder
	writeFlag := func(v bool, label string) {
		n := 0
		if v {
			n = 1
		}
		fmt.Fprintf(&rc, "    %d     // %s\n", n, label)
	}
	writeFlag(h.XStored, "X is stored ?")
	writeFlag(h.YStored, "Y is stored ?")
	writeFlag(h.ZStored, "Z is stored ?")
	writeFlag(h.UStored, "U is stored ?")
	writeFlag(h.VStored, "V is stored ?")
	writeFlag(h.WStored, "W is stored ?")
	writeFlag(h.WeightStored, "Weight is stored ?")
	fmt.Fprintf(&rc, "    %d     // Extra floats stored ?\n", len(h.ExtraFloats))
	fmt.Fprintf(&rc, "    %d     // Extra longs stored ?\n", len(h.ExtraLongs))
	for i, t := range h.ExtraFloats {
		fmt.Fprintf(&rc, "    %d     // %s [ %d] \n", int(t), extraFloatLabels[t], i)
	}
	for i, t := range h.ExtraLongs {
		fmt.Fprintf(&rc, "    %d     // %s [ %d] \n", int(t), extraLongLabels[t], i)
	}
	section("RECORD_CONTENTS", rc.String())

	var constants strings.Builder
	writeConst := func(stored bool, v float32, label string) {
		if stored {
			return
		}
		fmt.Fprintf(&constants, "   %8.4f     // Constant %s\n", v, label)
	}
	writeConst(h.XStored, h.ConstantX, "X")
	writeConst(h.YStored, h.ConstantY, "Y")
	writeConst(h.ZStored, h.ConstantZ, "Z")
	writeConst(h.UStored, h.ConstantU, "U")
	writeConst(h.VStored, h.ConstantV, "V")
	writeConst(h.WStored, h.ConstantW, "W")
	writeConst(h.WeightStored, h.ConstantWeight, "Weight")
	section("RECORD_CONSTANT", constants.String())

	section("RECORD_LENGTH", strconv.Itoa(h.RecordLength))
	section("BYTE_ORDER", byteOrderCode(h.ByteOrder))
	section("ORIG_HISTORIES", strconv.FormatUint(h.OriginalHistories, 10))
	section("PARTICLES", strconv.FormatUint(h.NumberOfParticles, 10))

	for _, pt := range statsOrder {
		stats, ok := h.Stats[pt]
		if !ok || stats.Count == 0 {
			continue
		}
		section(statsNameForType(pt), strconv.FormatUint(stats.Count, 10))
	}

	section("TRANSPORT_PARAMETERS", h.extraSections["TRANSPORT_PARAMETERS"])
	section("MACHINE_TYPE", h.extraSections["MACHINE_TYPE"])
	section("MONTE_CARLO_CODE_VERSION", h.extraSections["MONTE_CARLO_CODE_VERSION"])
	section("GLOBAL_PHOTON_ENERGY_CUTOFF", h.extraSections["GLOBAL_PHOTON_ENERGY_CUTOFF"])
	section("GLOBAL_PARTICLE_ENERGY_CUTOFF", h.extraSections["GLOBAL_PARTICLE_ENERGY_CUTOFF"])
	section("COORDINATE_SYSTEM_DESCRIPTION", h.extraSections["COORDINATE_SYSTEM_DESCRIPTION"])

	b.WriteString("//  OPTIONAL INFORMATION\n\n")

	section("BEAM_NAME", h.extraSections["BEAM_NAME"])
	section("FIELD_SIZE", h.extraSections["FIELD_SIZE"])
	section("NOMINAL_SSD", h.extraSections["NOMINAL_SSD"])
	section("MC_INPUT_FILENAME", h.extraSections["MC_INPUT_FILENAME"])
	section("VARIANCE_REDUCTION_TECHNIQUES", h.extraSections["VARIANCE_REDUCTION_TECHNIQUES"])
	section("INITIAL_SOURCE_DESCRIPTION", h.extraSections["INITIAL_SOURCE_DESCRIPTION"])
	section("PUBLISHED_REFERENCE", h.extraSections["PUBLISHED_REFERENCE"])
	section("AUTHORS", h.extraSections["AUTHORS"])
	section("INSTITUTION", h.extraSections["INSTITUTION"])
	section("LINK_VALIDATION", h.extraSections["LINK_VALIDATION"])
	notes := h.extraSections["ADDITIONAL_NOTES"]
	if notes == "" {
		notes = "This is IAEA header as defined in the technical\nreport IAEA(NDS)-0484, Vienna, 2006\n"
	}
	section("ADDITIONAL_NOTES", notes)

	var stats strings.Builder
	stats.WriteString("//        Weight        Wmin       Wmax       <E>         Emin         Emax    Particle\n")
	for _, pt := range statsOrder {
		st, ok := h.Stats[pt]
		if !ok || st.Count == 0 {
			continue
		}
		fmt.Fprintf(&stats, "  %15.6g %10.4f %10.4f %10.4f    %10.4f  %10.4f   %sS\n",
			st.WeightSum, st.MinWeight, st.MaxWeight, st.MeanEnergy(), st.MinEnergy, st.MaxEnergy, strings.TrimSuffix(statsNameForType(pt), "S"))
	}
	section("STATISTICAL_INFORMATION_PARTICLES", stats.String())

	var geom strings.Builder
	if h.XStored {
		fmt.Fprintf(&geom, "%g %g\n", h.MinX, h.MaxX)
	}
	if h.YStored {
		fmt.Fprintf(&geom, "%g %g\n", h.MinY, h.MaxY)
	}
	if h.ZStored {
		fmt.Fprintf(&geom, "%g %g\n", h.MinZ, h.MaxZ)
	}
	section("STATISTICAL_INFORMATION_GEOMETRY", geom.String())

	return b.String()
}

func byteOrderCode(o buffer.Order) string {
	switch o {
	case buffer.LittleEndian:
		return "1234"
	case buffer.BigEndian:
		return "4321"
	case buffer.PDPEndian:
		return "3412"
	default:
		return "1234"
	}
}
