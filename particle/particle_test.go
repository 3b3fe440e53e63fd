package particle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNormalizesDirection(t *testing.T) {
	p := New(Electron, 6.0, 0, 0, 0, 3, 4, 0, true, 1.0)

	mag2 := float64(p.U())*float64(p.U()) + float64(p.V())*float64(p.V()) + float64(p.W())*float64(p.W())
	require.InDelta(t, 1.0, mag2, 1e-5)
	require.InDelta(t, 0.6, p.U(), 1e-5)
	require.InDelta(t, 0.8, p.V(), 1e-5)
}

func TestNewLeavesZeroVectorAlone(t *testing.T) {
	p := New(PseudoParticle, 0, 0, 0, 0, 0, 0, 0, true, -1)
	require.Equal(t, float32(0), p.U())
	require.Equal(t, float32(0), p.V())
	require.Equal(t, float32(0), p.W())
}

func TestNewLeavesUnitVectorAlone(t *testing.T) {
	p := New(Photon, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	require.Equal(t, float32(1), p.W())
}

func TestIncrementalHistoriesDefaults(t *testing.T) {
	p := New(Electron, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	require.Equal(t, uint32(1), p.IncrementalHistories())

	notNew := New(Electron, 1.0, 0, 0, 0, 0, 0, 1, false, 1.0)
	require.Equal(t, uint32(0), notNew.IncrementalHistories())
}

func TestSetIncrementalHistories(t *testing.T) {
	p := New(Electron, 1.0, 0, 0, 0, 0, 0, 1, false, 1.0)
	p.SetIncrementalHistories(5)
	require.True(t, p.IsNewHistory())
	require.Equal(t, uint32(5), p.IncrementalHistories())
}

func TestIntPropertyRoundTrip(t *testing.T) {
	p := New(Electron, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	require.False(t, p.HasIntProperty(EGS_LATCH))

	p.SetIntProperty(EGS_LATCH, 0x60000000)
	v, ok := p.IntProperty(EGS_LATCH)
	require.True(t, ok)
	require.Equal(t, int32(0x60000000), v)
	require.Equal(t, 1, p.NumIntProperties())

	p.SetIntProperty(EGS_LATCH, 1)
	v2, _ := p.IntProperty(EGS_LATCH)
	require.Equal(t, int32(1), v2)
	require.Equal(t, 1, p.NumIntProperties())
}

func TestFloatAndBoolProperties(t *testing.T) {
	p := New(Photon, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)

	p.SetFloatProperty(XLAST, 12.5)
	v, ok := p.FloatProperty(XLAST)
	require.True(t, ok)
	require.InDelta(t, 12.5, v, 1e-6)

	p.SetBoolProperty(IS_SECONDARY_PARTICLE, true)
	b, ok := p.BoolProperty(IS_SECONDARY_PARTICLE)
	require.True(t, ok)
	require.True(t, b)
}

func TestCustomSequences(t *testing.T) {
	p := New(Electron, 1.0, 0, 0, 0, 0, 0, 1, true, 1.0)
	p.AddCustomInt(1)
	p.AddCustomInt(2)
	p.AddCustomString("tag")

	require.Equal(t, []int32{1, 2}, p.CustomInts())
	require.Equal(t, []string{"tag"}, p.CustomStrings())
	require.Empty(t, p.CustomFloats())
}

func TestProjectToX(t *testing.T) {
	p := New(Photon, 1.0, 0, 0, 0, 1, 0, 0, true, 1.0)
	ok := p.ProjectToX(10)
	require.True(t, ok)
	require.Equal(t, float32(10), p.X())
}

func TestProjectToXFailsWithoutMovement(t *testing.T) {
	p := New(Photon, 1.0, 0, 0, 0, 0, 1, 0, true, 1.0)
	ok := p.ProjectToX(10)
	require.False(t, ok)
	require.Equal(t, float32(0), p.X())
}

func TestFixedValuesApply(t *testing.T) {
	p := New(Electron, 1.0, 1, 2, 3, 0, 0, 1, true, 0.5)
	fv := FixedValues{
		XConstant: true, ConstantX: 100,
		WeightConstant: true, ConstantWeight: 1,
	}
	fv.Apply(p)
	require.Equal(t, float32(100), p.X())
	require.Equal(t, float32(2), p.Y())
	require.Equal(t, float32(1), p.Weight())
}

func TestParticleTypeNameRoundTrip(t *testing.T) {
	require.Equal(t, "Electron", Electron.String())
	require.Equal(t, int32(11), Electron.PDGCode())

	got, ok := ByName("Positron")
	require.True(t, ok)
	require.Equal(t, Positron, got)

	_, ok = ByName("NotAParticle")
	require.False(t, ok)
}

func TestParticleTypeUnknownCodeFallsBackToNumeric(t *testing.T) {
	unknown := ParticleType(123456789)
	require.Contains(t, unknown.String(), "PDG(123456789)")
	require.False(t, unknown.Known())
}

func TestUnsupportedAndPseudoParticleNames(t *testing.T) {
	require.Equal(t, "Unsupported", Unsupported.String())
	require.Equal(t, "PseudoParticle", PseudoParticle.String())
}

func TestMagnitudeHelper(t *testing.T) {
	require.InDelta(t, 5.0, math.Sqrt(3*3+4*4), 1e-9)
}
