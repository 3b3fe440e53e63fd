package iaea

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/particlezoo/phsp/buffer"
	"github.com/particlezoo/phsp/particle"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := NewHeader()
	h.IAEAIndex = "42"
	h.Title = "a test beam"
	h.AddExtraLong(ExtraLongIncrementalHistoryNumber)
	h.AddExtraFloat(ExtraFloatXLast)

	p := particle.New(particle.Electron, 6.0, 1, 2, 3, 0.1, 0.2, 0.9, true, 1.5)
	h.CountParticleStats(p)

	rendered := h.Render()

	reparsed, err := ParseHeader(strings.NewReader(rendered))
	require.NoError(t, err)

	require.Equal(t, "42", reparsed.IAEAIndex)
	require.Equal(t, "a test beam", reparsed.Title)
	require.Equal(t, h.RecordLength, reparsed.RecordLength)
	require.Equal(t, h.NumberOfParticles, reparsed.NumberOfParticles)
	require.Equal(t, h.Checksum, reparsed.Checksum)
	require.Len(t, reparsed.ExtraLongs, 1)
	require.Equal(t, ExtraLongIncrementalHistoryNumber, reparsed.ExtraLongs[0])
	require.Len(t, reparsed.ExtraFloats, 1)
	require.Equal(t, ExtraFloatXLast, reparsed.ExtraFloats[0])
	require.True(t, reparsed.ChecksumValid())
}

func TestConstantAxisShrinksRecordLength(t *testing.T) {
	h := NewHeader()
	before := h.RecordLength
	require.Equal(t, h.CalculateMinimumRecordLength(), before)

	h.SetConstantWeight(1.0)
	require.Equal(t, before-4, h.RecordLength)
	require.False(t, h.WeightStored)
	require.Equal(t, float32(1.0), h.ConstantWeight)

	// Declaring it constant again must not double-shrink: the stored
	// flag is already false.
	h.SetConstantWeight(2.0)
	require.Equal(t, before-4, h.RecordLength)
	require.Equal(t, float32(2.0), h.ConstantWeight)
}

func TestChecksumLaw(t *testing.T) {
	h := NewHeader()
	for i := 0; i < 3; i++ {
		p := particle.New(particle.Photon, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
		h.CountParticleStats(p)
	}

	require.Equal(t, uint64(3), h.NumberOfParticles)
	require.Equal(t, uint64(h.RecordLength)*3, h.Checksum)
	require.True(t, h.ChecksumValid())

	h.Checksum = 0
	require.False(t, h.ChecksumValid())
}

func TestHistoryAccounting(t *testing.T) {
	h := NewHeader()

	newHist := particle.New(particle.Electron, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	h.CountParticleStats(newHist)
	require.Equal(t, uint64(1), h.OriginalHistories)

	notNew := particle.New(particle.Electron, 1.0, 0, 0, 0, 0, 0, 1, false, 1.0)
	h.CountParticleStats(notNew)
	require.Equal(t, uint64(1), h.OriginalHistories)

	withIncrement := particle.New(particle.Electron, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	withIncrement.SetIntProperty(particle.INCREMENTAL_HISTORY_NUMBER, 4)
	h.CountParticleStats(withIncrement)
	require.Equal(t, uint64(5), h.OriginalHistories)
}

func TestEncodeDecodeBinaryRoundTrip(t *testing.T) {
	header := NewHeader()
	enc := &encoder{header: header}
	dec := &decoder{header: header}

	original := particle.New(particle.Electron, 6.0, 1.5, -2.5, 3.5, 0.1, 0.2, -0.9, true, 0.75)

	scratch := buffer.New(header.RecordLength, buffer.LittleEndian)
	require.NoError(t, enc.EncodeBinary(original, scratch))
	require.Equal(t, header.RecordLength, scratch.Len())

	decoded, ok, err := dec.DecodeBinary(scratch.Bytes())
	require.NoError(t, err)
	require.True(t, ok)

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

func TestEncodeBinaryRejectsUnsupportedType(t *testing.T) {
	header := NewHeader()
	enc := &encoder{header: header}
	p := particle.New(particle.Unsupported, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)

	scratch := buffer.New(header.RecordLength, buffer.LittleEndian)
	err := enc.EncodeBinary(p, scratch)
	require.Error(t, err)
}

func TestHeaderPathDataPath(t *testing.T) {
	require.Equal(t, "/tmp/beam.IAEAheader", HeaderPath("/tmp/beam.IAEAphsp"))
	require.Equal(t, "/tmp/beam.IAEAphsp", DataPath("/tmp/beam.IAEAheader"))
}

func TestWithTemplateHeaderClonesLayoutNotStats(t *testing.T) {
	tmpl := NewHeader()
	tmpl.SetConstantWeight(1.0)
	tmpl.AddExtraLong(ExtraLongEGSLatch)
	p := particle.New(particle.Proton, 2.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	tmpl.CountParticleStats(p)

	templatePath := t.TempDir() + "/template.IAEAheader"
	require.NoError(t, os.WriteFile(templatePath, []byte(tmpl.Render()), 0o644))

	h := NewHeader()
	require.NoError(t, WithTemplateHeader(templatePath)(h))

	require.False(t, h.WeightStored)
	require.Len(t, h.ExtraLongs, 1)
	require.Equal(t, uint64(0), h.NumberOfParticles)
	require.Equal(t, uint64(0), h.OriginalHistories)
	require.Empty(t, h.Stats)
}
