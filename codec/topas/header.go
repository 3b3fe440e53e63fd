// Package topas implements the TOPAS phase-space format: a sidecar
// ".header" file describing either a plain-text record layout ("ASCII"),
// a fixed binary layout with a self-describing column catalog
// ("BINARY"), or a fixed 29-byte record with no catalog at all
// ("LIMITED"), paired with a ".phsp" data file.
//
// Unlike IAEA and EGS, TOPAS represents a run of empty histories with an
// explicit on-disk pseudo-particle record (BINARY only) rather than
// folding it silently into a history counter.
package topas

import (
	"fmt"
	"math"

	"github.com/particlezoo/phsp/particle"
)

// Format selects which of TOPAS's three sub-variants a header describes.
type Format int

const (
	FormatASCII Format = iota
	FormatBinary
	FormatLimited
)

func (f Format) String() string {
	switch f {
	case FormatASCII:
		return "ASCII"
	case FormatBinary:
		return "BINARY"
	case FormatLimited:
		return "LIMITED"
	default:
		return "unknown"
	}
}

// limitedRecordLength is the fixed per-record length of the LIMITED
// sub-variant: 1 (type) + 7*4 (energy,x,y,z,u,v,weight) bytes.
const limitedRecordLength = 29

// DataType is the on-disk representation of one column's value.
type DataType int

const (
	DataString DataType = iota
	DataBool
	DataInt8
	DataInt32
	DataFloat32
	DataFloat64
)

// stringFieldLength is the fixed byte width a BINARY-format string column
// (CreatorProcess) occupies; the original's string columns are fixed-width
// too, since BINARY records must all share one constant length.
const stringFieldLength = 32

func (d DataType) sizeOf() int {
	switch d {
	case DataString:
		return stringFieldLength
	case DataBool:
		return 1
	case DataInt8:
		return 1
	case DataInt32:
		return 4
	case DataFloat32:
		return 4
	case DataFloat64:
		return 8
	default:
		return 0
	}
}

// ColumnType identifies one of the catalogued TOPAS phase-space columns.
// The first ten are the fixed columns every ASCII/BINARY record carries;
// the rest are optional extras a writer may append.
type ColumnType int

const (
	ColPositionX ColumnType = iota
	ColPositionY
	ColPositionZ
	ColDirectionCosineX
	ColDirectionCosineY
	ColEnergy
	ColWeight
	ColParticleType
	ColDirectionCosineZSign
	ColNewHistoryFlag
	ColTOPASTime
	ColTimeOfFlight
	ColRunID
	ColEventID
	ColTrackID
	ColParentID
	ColCharge
	ColCreatorProcess
	ColInitialKineticEnergy
	ColVertexPositionX
	ColVertexPositionY
	ColVertexPositionZ
	ColInitialDirectionCosineX
	ColInitialDirectionCosineY
	ColInitialDirectionCosineZ
	ColSeedPart1
	ColSeedPart2
	ColSeedPart3
	ColSeedPart4
)

// NumFixedColumns is how many leading columns every TOPAS ASCII/BINARY
// record always carries, in order: the ten columns a Reader/Writer
// consumes directly without consulting the column catalog.
const NumFixedColumns = 10

var columnNames = map[ColumnType]string{
	ColPositionX:               "Position X [cm]",
	ColPositionY:               "Position Y [cm]",
	ColPositionZ:               "Position Z [cm]",
	ColDirectionCosineX:        "Direction Cosine X",
	ColDirectionCosineY:        "Direction Cosine Y",
	ColEnergy:                  "Energy [MeV]",
	ColWeight:                  "Weight",
	ColParticleType:            "Particle Type (in PDG Format)",
	ColDirectionCosineZSign:    "Flag to tell if Third Direction Cosine is Negative (1 means true)",
	ColNewHistoryFlag:          "Flag to tell if this is the First Scored Particle from this History (1 means true)",
	ColTOPASTime:               "TOPAS Time [s]",
	ColTimeOfFlight:            "Time of Flight [ns]",
	ColRunID:                   "Run ID",
	ColEventID:                 "Event ID",
	ColTrackID:                 "Track ID",
	ColParentID:                "Parent ID",
	ColCharge:                  "Charge",
	ColCreatorProcess:          "Creator Process Name",
	ColInitialKineticEnergy:    "Initial Kinetic Energy [MeV]",
	ColVertexPositionX:         "Vertex Position X [cm]",
	ColVertexPositionY:         "Vertex Position Y [cm]",
	ColVertexPositionZ:         "Vertex Position Z [cm]",
	ColInitialDirectionCosineX: "Initial Direction Cosine X",
	ColInitialDirectionCosineY: "Initial Direction Cosine Y",
	ColInitialDirectionCosineZ: "Initial Direction Cosine Z",
	ColSeedPart1:               "Seed Part 1",
	ColSeedPart2:               "Seed Part 2",
	ColSeedPart3:               "Seed Part 3",
	ColSeedPart4:               "Seed Part 4",
}

var columnsByName = func() map[string]ColumnType {
	m := make(map[string]ColumnType, len(columnNames))
	for t, name := range columnNames {
		m[name] = t
	}
	return m
}()

func (c ColumnType) Name() string { return columnNames[c] }

func columnTypeByName(name string) (ColumnType, error) {
	t, ok := columnsByName[name]
	if !ok {
		return 0, fmt.Errorf("topas: unknown column name %q", name)
	}
	return t, nil
}

func (c ColumnType) dataType() DataType {
	switch c {
	case ColPositionX, ColPositionY, ColPositionZ,
		ColDirectionCosineX, ColDirectionCosineY,
		ColEnergy, ColWeight, ColTOPASTime, ColTimeOfFlight, ColCharge,
		ColInitialKineticEnergy,
		ColVertexPositionX, ColVertexPositionY, ColVertexPositionZ,
		ColInitialDirectionCosineX, ColInitialDirectionCosineY, ColInitialDirectionCosineZ:
		return DataFloat32
	case ColDirectionCosineZSign, ColNewHistoryFlag:
		return DataBool
	case ColCreatorProcess:
		return DataString
	case ColParticleType, ColRunID, ColEventID, ColTrackID, ColParentID,
		ColSeedPart1, ColSeedPart2, ColSeedPart3, ColSeedPart4:
		return DataInt32
	default:
		return DataFloat32
	}
}

// DataColumn is one entry of a BINARY/ASCII header's column catalog.
type DataColumn struct {
	Type      ColumnType
	ValueType DataType
	Name      string
}

// NewDataColumn builds a column with its catalogued default value type
// and name.
func NewDataColumn(t ColumnType) DataColumn {
	return DataColumn{Type: t, ValueType: t.dataType(), Name: t.Name()}
}

// NewDataColumnFromName recovers a column's catalogued type from the
// name recorded in an ASCII header; the value type is not known in
// ASCII headers and defaults to the column's catalogued type.
func NewDataColumnFromName(name string) (DataColumn, error) {
	t, err := columnTypeByName(name)
	if err != nil {
		return DataColumn{}, err
	}
	return DataColumn{Type: t, ValueType: t.dataType(), Name: name}, nil
}

// NewDataColumnFromBinaryEntry builds a column from a BINARY header's
// "<code><size>: <name>" entry, where the on-disk value type may differ
// from the column's catalogued default (e.g. INT8 vs INT32).
func NewDataColumnFromBinaryEntry(name string, valueType DataType) (DataColumn, error) {
	t, err := columnTypeByName(name)
	if err != nil {
		return DataColumn{}, err
	}
	return DataColumn{Type: t, ValueType: valueType, Name: name}, nil
}

func (d DataColumn) sizeOf() int { return d.ValueType.sizeOf() }

// fixedColumns is the ten-column layout every header (ASCII or BINARY)
// starts with; LIMITED headers carry no column catalog at all.
func fixedColumns() []DataColumn {
	return []DataColumn{
		NewDataColumn(ColPositionX),
		NewDataColumn(ColPositionY),
		NewDataColumn(ColPositionZ),
		NewDataColumn(ColDirectionCosineX),
		NewDataColumn(ColDirectionCosineY),
		NewDataColumn(ColEnergy),
		NewDataColumn(ColWeight),
		NewDataColumn(ColParticleType),
		NewDataColumn(ColDirectionCosineZSign),
		NewDataColumn(ColNewHistoryFlag),
	}
}

// ParticleStats accumulates per-species counts and kinetic-energy range,
// keyed by ParticleType in the Header below.
type ParticleStats struct {
	Count            uint64
	MinKineticEnergy float64
	MaxKineticEnergy float64
}

func newParticleStats() *ParticleStats {
	return &ParticleStats{MinKineticEnergy: math.MaxFloat64}
}

// Header is a parsed or in-progress TOPAS header: its sub-variant, its
// column catalog (empty for LIMITED), and its accumulated statistics.
type Header struct {
	Format Format
	Columns []DataColumn

	NumberOfOriginalHistories    uint64
	NumberOfRepresentedHistories uint64
	NumberOfParticles            uint64

	Stats map[particle.ParticleType]*ParticleStats
}

// NewHeader builds a fresh header for writing in the given sub-variant,
// pre-populated with the ten fixed columns (ASCII/BINARY) or none
// (LIMITED).
func NewHeader(format Format) *Header {
	h := &Header{Format: format, Stats: make(map[particle.ParticleType]*ParticleStats)}
	if format != FormatLimited {
		h.Columns = fixedColumns()
	}
	return h
}

// RecordLength returns the fixed per-record byte length of the header's
// sub-variant: the catalog's total column width for ASCII/BINARY, or the
// fixed 29 bytes for LIMITED.
func (h *Header) RecordLength() int {
	if h.Format == FormatLimited {
		return limitedRecordLength
	}
	total := 0
	for _, c := range h.Columns {
		total += c.sizeOf()
	}
	return total
}

// AddColumn appends an extra column to the catalog; only meaningful for
// ASCII/BINARY headers being written.
func (h *Header) AddColumn(c DataColumn) { h.Columns = append(h.Columns, c) }

// CountParticleStats folds a particle into the header's running
// statistics, following the same accounting rule as IAEA and EGS: new
// histories are always counted (crediting INCREMENTAL_HISTORY_NUMBER if
// present), but per-species counts and energy range skip Unsupported
// particles and non-positive-weight records (TOPAS's empty-history
// pseudo-particles always carry a negative weight).
func (h *Header) CountParticleStats(p *particle.Particle) {
	if p.IsNewHistory() {
		if v, ok := p.IntProperty(particle.INCREMENTAL_HISTORY_NUMBER); ok {
			h.NumberOfOriginalHistories += uint64(v)
		} else {
			h.NumberOfOriginalHistories++
		}
	}

	if p.Type() == particle.Unsupported || p.Weight() <= 0 {
		return
	}

	if p.IsNewHistory() {
		h.NumberOfRepresentedHistories++
	}

	stats, ok := h.Stats[p.Type()]
	if !ok {
		stats = newParticleStats()
		h.Stats[p.Type()] = stats
	}
	stats.Count++
	energy := float64(p.KineticEnergy())
	if energy < stats.MinKineticEnergy {
		stats.MinKineticEnergy = energy
	}
	if energy > stats.MaxKineticEnergy {
		stats.MaxKineticEnergy = energy
	}

	h.NumberOfParticles++
}
