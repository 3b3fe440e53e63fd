package egs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/particlezoo/phsp/buffer"
	"github.com/particlezoo/phsp/particle"
)

func TestHeaderRenderParseRoundTrip(t *testing.T) {
	h := newHeader()
	h.Mode = Mode2
	h.NumberOfParticles = 10
	h.NumberOfPhotons = 4
	h.MaxKineticEnergy = 6.0
	h.MinElectronEnergy = 0.5
	h.NumberOfOriginalHistories = 100

	data := h.render()
	require.Len(t, data, headerDataLength)

	reparsed, err := parseHeader(data)
	require.NoError(t, err)
	require.Equal(t, Mode2, reparsed.Mode)
	require.Equal(t, uint32(10), reparsed.NumberOfParticles)
	require.Equal(t, uint32(4), reparsed.NumberOfPhotons)
	require.Equal(t, float32(6.0), reparsed.MaxKineticEnergy)
	require.Equal(t, float32(0.5), reparsed.MinElectronEnergy)
	require.Equal(t, float32(100), reparsed.NumberOfOriginalHistories)
}

func TestParseHeaderRejectsBadMagic(t *testing.T) {
	data := make([]byte, headerDataLength)
	copy(data, "XXXX0")
	_, err := parseHeader(data)
	require.Error(t, err)
}

func TestExtractAndApplyLATCHPhoton(t *testing.T) {
	p := particle.New(particle.Photon, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	latch := ExtractLATCH(p, LatchOption2)
	require.Equal(t, uint32(0), (latch>>29)&3)

	decoded := particle.New(particle.Photon, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	ApplyLATCH(decoded, latch, LatchOption2)
	v, ok := decoded.IntProperty(particle.EGS_LATCH)
	require.True(t, ok)
	require.Equal(t, int32(latch), v)
}

func TestExtractLATCHElectronSecondary(t *testing.T) {
	p := particle.New(particle.Electron, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	p.SetBoolProperty(particle.IS_SECONDARY_PARTICLE, true)
	p.SetBoolProperty(particle.IS_MULTIPLE_CROSSER, true)

	latch := ExtractLATCH(p, LatchOption2)
	require.Equal(t, uint32(1), (latch>>29)&3)
	require.Equal(t, uint32(1), (latch>>31)&1)
	require.NotZero(t, (latch>>24)&0x1F)
}

func TestPassesLATCHFilter(t *testing.T) {
	p := particle.New(particle.Electron, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	require.False(t, PassesLATCHFilter(p, 1))

	p.SetIntProperty(particle.EGS_LATCH, 0b110)
	require.True(t, PassesLATCHFilter(p, 0b100))
	require.False(t, PassesLATCHFilter(p, 0b1000))
}

func TestEncodeDecodeBinaryRoundTripMode0(t *testing.T) {
	enc := &encoder{header: newHeader(), latchOption: LatchOption2}
	dec := &decoder{header: enc.header, latchOption: LatchOption2, particleZValue: 5.0}

	original := particle.New(particle.Electron, 6.0, 1.5, -2.5, 5.0, 0.2, 0.3, 0.9, true, 0.8)

	scratch := buffer.New(int(Mode0), buffer.LittleEndian)
	require.NoError(t, enc.EncodeBinary(original, scratch))
	require.Equal(t, int(Mode0), scratch.Len())

	decoded, ok, err := dec.DecodeBinary(scratch.Bytes())
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, particle.Electron, decoded.Type())
	require.InDelta(t, original.KineticEnergy(), decoded.KineticEnergy(), 1e-3)
	require.InDelta(t, original.X(), decoded.X(), 1e-4)
	require.InDelta(t, original.Y(), decoded.Y(), 1e-4)
	require.Equal(t, float32(5.0), decoded.Z())
	require.True(t, decoded.IsNewHistory())
}

func TestEncodeBinaryMode2RequiresZLAST(t *testing.T) {
	enc := &encoder{header: newHeader()}
	enc.header.Mode = Mode2
	p := particle.New(particle.Photon, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)

	scratch := buffer.New(int(Mode2), buffer.LittleEndian)
	err := enc.EncodeBinary(p, scratch)
	require.Error(t, err)

	p.SetFloatProperty(particle.ZLAST, 3.0)
	scratch.Clear()
	require.NoError(t, enc.EncodeBinary(p, scratch))
}

func TestEncodeBinaryRejectsUnsupportedType(t *testing.T) {
	enc := &encoder{header: newHeader()}
	p := particle.New(particle.Neutron, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)

	scratch := buffer.New(int(Mode0), buffer.LittleEndian)
	err := enc.EncodeBinary(p, scratch)
	require.Error(t, err)
}

func TestNoteParticleWrittenTracksStats(t *testing.T) {
	enc := &encoder{header: newHeader()}
	photon := particle.New(particle.Photon, 2.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	electron := particle.New(particle.Electron, 0.5, 0, 0, 0, 0, 0, 1, true, 1.0)

	enc.NoteParticleWritten(photon)
	enc.NoteParticleWritten(electron)

	require.Equal(t, uint32(2), enc.header.NumberOfParticles)
	require.Equal(t, uint32(1), enc.header.NumberOfPhotons)
	require.Equal(t, float32(2.0), enc.header.MaxKineticEnergy)
	require.Equal(t, float32(0.5), enc.header.MinElectronEnergy)
}
