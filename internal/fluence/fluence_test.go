package fluence

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/particlezoo/phsp/particle"
)

func newParticle(x, y float32) particle.Particle {
	return *particle.New(particle.Photon, 1.0, x, y, 0, 0, 0, 1, true, 1.0)
}

func TestAccumulateDropsOutOfRangeParticles(t *testing.T) {
	h := NewHistogram(4, 4, 10, 10)
	h.Accumulate(newParticle(0, 0))
	h.Accumulate(newParticle(100, 100))
	h.Accumulate(newParticle(-100, -100))

	var total uint64
	for _, c := range h.counts {
		total += c
	}
	require.EqualValues(t, 1, total)
}

func TestWriteToProducesValidPNGOfRequestedSize(t *testing.T) {
	h := NewHistogram(8, 6, 5, 5)
	for i := 0; i < 20; i++ {
		h.Accumulate(newParticle(float32(i%5-2), float32(i%3-1)))
	}

	var buf bytes.Buffer
	require.NoError(t, h.WriteTo(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())
}

func TestWriteToOnEmptyHistogramIsAllBlack(t *testing.T) {
	h := NewHistogram(2, 2, 1, 1)

	var buf bytes.Buffer
	require.NoError(t, h.WriteTo(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			require.Zero(t, r)
		}
	}
}
