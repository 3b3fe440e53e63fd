package peneasy

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/particlezoo/phsp/particle"
)

func TestEncodeDecodeASCIIRoundTripAllTypes(t *testing.T) {
	enc := &encoder{}
	dec := &decoder{}

	cases := []particle.ParticleType{
		particle.Electron, particle.Photon, particle.Positron, particle.Proton,
	}

	for _, pt := range cases {
		p := particle.New(pt, 6.0, 1.5, -2.5, 3.5, 0.1, 0.2, -0.9, true, 0.75)

		line, err := enc.EncodeASCII(p)
		require.NoError(t, err)

		decoded, emit, err := dec.DecodeASCII(line)
		require.NoError(t, err)
		require.True(t, emit)

		require.Equal(t, pt, decoded.Type())
		require.InDelta(t, p.KineticEnergy(), decoded.KineticEnergy(), 1e-3)
		require.InDelta(t, p.X(), decoded.X(), 1e-4)
		require.InDelta(t, p.Y(), decoded.Y(), 1e-4)
		require.InDelta(t, p.Z(), decoded.Z(), 1e-4)
		require.InDelta(t, p.U(), decoded.U(), 1e-4)
		require.InDelta(t, p.V(), decoded.V(), 1e-4)
		require.InDelta(t, p.W(), decoded.W(), 1e-4)
		require.InDelta(t, p.Weight(), decoded.Weight(), 1e-4)
		require.True(t, decoded.IsNewHistory())
	}
}

func TestEnergyUnitConversion(t *testing.T) {
	enc := &encoder{}
	dec := &decoder{}

	p := particle.New(particle.Electron, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	line, err := enc.EncodeASCII(p)
	require.NoError(t, err)

	fields := splitFields(t, line)
	require.InDelta(t, 1.0e6, fields[1], 1.0)

	decoded, _, err := dec.DecodeASCII(line)
	require.NoError(t, err)
	require.InDelta(t, 1.0, decoded.KineticEnergy(), 1e-4)
}

func TestDeltaNDefaultsAndAlwaysSetOnRead(t *testing.T) {
	enc := &encoder{}
	dec := &decoder{}

	notNewHistory := particle.New(particle.Photon, 1.0, 0, 0, 0, 0, 0, 1, false, 1.0)
	line, err := enc.EncodeASCII(notNewHistory)
	require.NoError(t, err)

	decoded, _, err := dec.DecodeASCII(line)
	require.NoError(t, err)
	inc, ok := decoded.IntProperty(particle.INCREMENTAL_HISTORY_NUMBER)
	require.True(t, ok)
	require.Equal(t, int32(0), inc)
	require.False(t, decoded.IsNewHistory())

	newHistory := particle.New(particle.Photon, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	line, err = enc.EncodeASCII(newHistory)
	require.NoError(t, err)
	decoded, _, err = dec.DecodeASCII(line)
	require.NoError(t, err)
	inc, ok = decoded.IntProperty(particle.INCREMENTAL_HISTORY_NUMBER)
	require.True(t, ok)
	require.Equal(t, int32(1), inc)
	require.True(t, decoded.IsNewHistory())
}

func TestILBRoundTrip(t *testing.T) {
	enc := &encoder{}
	dec := &decoder{}

	p := particle.New(particle.Electron, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	p.SetIntProperty(particle.PENELOPE_ILB1, 2)
	p.SetIntProperty(particle.PENELOPE_ILB2, 1)
	p.SetIntProperty(particle.PENELOPE_ILB3, 4)

	line, err := enc.EncodeASCII(p)
	require.NoError(t, err)

	decoded, _, err := dec.DecodeASCII(line)
	require.NoError(t, err)

	v, ok := decoded.IntProperty(particle.PENELOPE_ILB1)
	require.True(t, ok)
	require.Equal(t, int32(2), v)
	v, ok = decoded.IntProperty(particle.PENELOPE_ILB2)
	require.True(t, ok)
	require.Equal(t, int32(1), v)
	v, ok = decoded.IntProperty(particle.PENELOPE_ILB3)
	require.True(t, ok)
	require.Equal(t, int32(4), v)

	// Absent (zero) ILB values are not set on read.
	_, ok = decoded.IntProperty(particle.PENELOPE_ILB4)
	require.False(t, ok)
}

func TestUnsupportedParticleTypeRejected(t *testing.T) {
	enc := &encoder{}
	p := particle.New(particle.Neutron, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	_, err := enc.EncodeASCII(p)
	require.Error(t, err)
}

func TestDecodeUnsupportedKPARRejected(t *testing.T) {
	dec := &decoder{}
	_, _, err := dec.DecodeASCII("5 1.0e6 0 0 0 0 0 1 1 1 0 0 0 0 0")
	require.Error(t, err)
}

func TestScanParticleCountWithTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beam.dat")
	content := fileHeader + "line1\nline2\nline3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	count, err := scanParticleCount(path)
	require.NoError(t, err)
	require.Equal(t, uint64(3), count)
}

func TestScanParticleCountWithoutTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beam.dat")
	content := fileHeader + "line1\nline2\nline3"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	count, err := scanParticleCount(path)
	require.NoError(t, err)
	require.Equal(t, uint64(3), count)
}

func TestHistoriesReadAccumulatesLive(t *testing.T) {
	dec := &decoder{}
	require.Equal(t, int64(0), dec.TotalHistories())

	p := particle.New(particle.Photon, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	p.SetIntProperty(particle.INCREMENTAL_HISTORY_NUMBER, 3)
	enc := &encoder{}
	line, err := enc.EncodeASCII(p)
	require.NoError(t, err)

	_, _, err = dec.DecodeASCII(line)
	require.NoError(t, err)
	require.Equal(t, int64(3), dec.TotalHistories())

	_, _, err = dec.DecodeASCII(line)
	require.NoError(t, err)
	require.Equal(t, int64(6), dec.TotalHistories())
}

func splitFields(t *testing.T, line string) map[int]float64 {
	t.Helper()
	out := make(map[int]float64)
	for i, s := range strings.Fields(line) {
		v, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		out[i] = v
	}
	return out
}
