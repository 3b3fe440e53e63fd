package topas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/particlezoo/phsp/buffer"
	"github.com/particlezoo/phsp/particle"
)

func TestHeaderRenderParseRoundTripBinary(t *testing.T) {
	h := NewHeader(FormatBinary)
	h.AddColumn(NewDataColumn(ColRunID))

	p := particle.New(particle.Electron, 6.0, 1, 2, 3, 0.1, 0.2, 0.9, true, 1.5)
	h.CountParticleStats(p)

	rendered := h.Render()
	reparsed, err := ParseHeader(strings.NewReader(rendered))
	require.NoError(t, err)

	require.Equal(t, FormatBinary, reparsed.Format)
	require.Equal(t, h.NumberOfOriginalHistories, reparsed.NumberOfOriginalHistories)
	require.Equal(t, h.NumberOfRepresentedHistories, reparsed.NumberOfRepresentedHistories)
	require.Equal(t, h.NumberOfParticles, reparsed.NumberOfParticles)
	require.Len(t, reparsed.Columns, NumFixedColumns+1)
	require.Equal(t, ColRunID, reparsed.Columns[NumFixedColumns].Type)

	stats, ok := reparsed.Stats[particle.Electron]
	require.True(t, ok)
	require.Equal(t, uint64(1), stats.Count)
}

func TestHeaderRenderParseRoundTripASCII(t *testing.T) {
	h := NewHeader(FormatASCII)
	h.AddColumn(NewDataColumn(ColEventID))

	p := particle.New(particle.Photon, 2.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	h.CountParticleStats(p)

	reparsed, err := ParseHeader(strings.NewReader(h.Render()))
	require.NoError(t, err)
	require.Equal(t, FormatASCII, reparsed.Format)
	require.Len(t, reparsed.Columns, NumFixedColumns+1)
	require.Equal(t, ColEventID, reparsed.Columns[NumFixedColumns].Type)
}

func TestHeaderRenderParseRoundTripLimited(t *testing.T) {
	h := NewHeader(FormatLimited)
	h.NumberOfOriginalHistories = 10
	h.NumberOfParticles = 7

	reparsed, err := ParseHeader(strings.NewReader(h.Render()))
	require.NoError(t, err)
	require.Equal(t, FormatLimited, reparsed.Format)
	require.Equal(t, uint64(10), reparsed.NumberOfOriginalHistories)
	require.Equal(t, uint64(7), reparsed.NumberOfParticles)
	require.Equal(t, limitedRecordLength, reparsed.RecordLength())
}

func TestCountParticleStatsSkipsPseudoParticles(t *testing.T) {
	h := NewHeader(FormatBinary)

	newHist := particle.New(particle.Electron, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	h.CountParticleStats(newHist)
	require.Equal(t, uint64(1), h.NumberOfOriginalHistories)

	pseudo := particle.New(particle.PseudoParticle, 0, 0, 0, 0, 0, 0, 1, true, -3.0)
	pseudo.SetIntProperty(particle.INCREMENTAL_HISTORY_NUMBER, 3)
	h.CountParticleStats(pseudo)
	require.Equal(t, uint64(4), h.NumberOfOriginalHistories)
	require.Equal(t, uint64(1), h.NumberOfParticles)
	require.Len(t, h.Stats, 1)
	require.Contains(t, h.Stats, particle.Electron)
}

func TestEncodeDecodeBinaryStandardRoundTrip(t *testing.T) {
	header := NewHeader(FormatBinary)
	enc := &encoder{header: header}
	dec := &decoder{header: header}

	original := particle.New(particle.Electron, 6.0, 1.5, -2.5, 3.5, 0.1, 0.2, -0.9, true, 0.75)

	scratch := buffer.New(header.RecordLength(), buffer.LittleEndian)
	require.NoError(t, enc.EncodeBinary(original, scratch))
	require.Equal(t, header.RecordLength(), scratch.Len())

	decoded, emit, err := dec.DecodeBinary(scratch.Bytes())
	require.NoError(t, err)
	require.True(t, emit)

	require.Equal(t, original.Type(), decoded.Type())
	require.InDelta(t, original.KineticEnergy(), decoded.KineticEnergy(), 1e-4)
	require.InDelta(t, original.X(), decoded.X(), 1e-4)
	require.InDelta(t, original.Y(), decoded.Y(), 1e-4)
	require.InDelta(t, original.Z(), decoded.Z(), 1e-4)
	require.InDelta(t, original.U(), decoded.U(), 1e-4)
	require.InDelta(t, original.V(), decoded.V(), 1e-4)
	require.InDelta(t, original.W(), decoded.W(), 1e-3)
	require.InDelta(t, original.Weight(), decoded.Weight(), 1e-4)
	require.Equal(t, original.IsNewHistory(), decoded.IsNewHistory())
}

func TestEncodeDecodeBinaryLimitedRoundTrip(t *testing.T) {
	header := NewHeader(FormatLimited)
	enc := &encoder{header: header}
	dec := &decoder{header: header}

	original := particle.New(particle.Photon, 3.0, 1.0, -1.0, 2.0, 0.1, 0.1, -0.98, true, 1.0)

	scratch := buffer.New(limitedRecordLength, buffer.LittleEndian)
	require.NoError(t, enc.EncodeBinary(original, scratch))
	require.Equal(t, limitedRecordLength, scratch.Len())

	decoded, emit, err := dec.DecodeBinary(scratch.Bytes())
	require.NoError(t, err)
	require.True(t, emit)
	require.Equal(t, particle.Photon, decoded.Type())
	require.InDelta(t, original.W(), decoded.W(), 1e-3)
	require.True(t, decoded.IsNewHistory())
}

func TestEncodeBinaryLimitedRejectsUnsupportedType(t *testing.T) {
	header := NewHeader(FormatLimited)
	enc := &encoder{header: header}
	p := particle.New(particle.ElectronNeutrino, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)

	scratch := buffer.New(limitedRecordLength, buffer.LittleEndian)
	err := enc.EncodeBinary(p, scratch)
	require.Error(t, err)
}

func TestBinaryPseudoParticleFoldsIntoNextRealParticle(t *testing.T) {
	header := NewHeader(FormatBinary)
	enc := &encoder{header: header}
	dec := &decoder{header: header}

	scratch := buffer.New(header.RecordLength(), buffer.LittleEndian)
	require.NoError(t, enc.EncodePseudoParticle(5, scratch))

	_, emit, err := dec.DecodeBinary(scratch.Bytes())
	require.NoError(t, err)
	require.False(t, emit)
	require.Equal(t, uint32(5), dec.pendingHistories)

	scratch.Clear()
	real := particle.New(particle.Electron, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	require.NoError(t, enc.EncodeBinary(real, scratch))

	decoded, emit, err := dec.DecodeBinary(scratch.Bytes())
	require.NoError(t, err)
	require.True(t, emit)
	require.True(t, decoded.IsNewHistory())
	inc, ok := decoded.IntProperty(particle.INCREMENTAL_HISTORY_NUMBER)
	require.True(t, ok)
	require.Equal(t, int32(6), inc)
	require.Equal(t, uint32(0), dec.pendingHistories)
}

func TestEncodeASCIIWithExtraColumns(t *testing.T) {
	header := NewHeader(FormatASCII)
	header.AddColumn(NewDataColumn(ColEventID))
	enc := &encoder{header: header}
	dec := &decoder{header: header}

	p := particle.New(particle.Electron, 2.0, 1.0, 2.0, 3.0, 0.1, 0.2, -0.9, true, 1.0)
	p.AddCustomInt(42)

	line, err := enc.EncodeASCII(p)
	require.NoError(t, err)

	decoded, emit, err := dec.DecodeASCII(line)
	require.NoError(t, err)
	require.True(t, emit)
	require.Equal(t, particle.Electron, decoded.Type())
	require.Equal(t, []int32{42}, decoded.CustomInts())
}

func TestDecodeASCIIZeroTypeCodeIsNonEmitting(t *testing.T) {
	header := NewHeader(FormatASCII)
	dec := &decoder{header: header}

	_, emit, err := dec.DecodeASCII("0 0 0 0 0 0 0 0 0 0")
	require.NoError(t, err)
	require.False(t, emit)
}

func TestRoundToInt32Overflow(t *testing.T) {
	_, err := roundToInt32(1e30)
	require.Error(t, err)

	v, err := roundToInt32(2.6)
	require.NoError(t, err)
	require.Equal(t, int32(3), v)
}

func TestHeaderPathDataPath(t *testing.T) {
	require.Equal(t, "/tmp/beam.header", HeaderPath("/tmp/beam.phsp"))
	require.Equal(t, "/tmp/beam.phsp", DataPath("/tmp/beam.header"))
}
