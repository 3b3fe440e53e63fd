// Package fluence implements the default FluenceImager: a 2-D histogram
// of particle crossings on the X/Y scoring plane, rendered as a
// grayscale PNG density map using only the standard library's image and
// image/png packages; a BMP/TIFF writer stack stays an external
// collaborator rather than a dependency of this package.
package fluence

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/particlezoo/phsp/particle"
)

// Histogram accumulates particle crossings into a fixed-resolution 2-D
// grid over a rectangular region of the scoring plane centered on the beam
// axis, and renders the accumulated counts as a grayscale PNG.
type Histogram struct {
	width, height         int
	halfWidth, halfHeight float64 // cm, symmetric about (0,0)
	counts                []uint64
}

// NewHistogram builds an empty histogram of the given pixel resolution,
// covering [-halfWidth, halfWidth] x [-halfHeight, halfHeight] cm.
func NewHistogram(width, height int, halfWidth, halfHeight float64) *Histogram {
	return &Histogram{
		width:      width,
		height:     height,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
		counts:     make([]uint64, width*height),
	}
}

// Accumulate bins one particle's (X, Y) crossing, silently dropping it
// if it falls outside the histogram's extents.
func (h *Histogram) Accumulate(p particle.Particle) {
	x, y := float64(p.X()), float64(p.Y())
	if x < -h.halfWidth || x >= h.halfWidth || y < -h.halfHeight || y >= h.halfHeight {
		return
	}

	col := int((x + h.halfWidth) / (2 * h.halfWidth) * float64(h.width))
	row := int((y + h.halfHeight) / (2 * h.halfHeight) * float64(h.height))
	if col < 0 || col >= h.width || row < 0 || row >= h.height {
		return
	}

	// Row 0 is the top of the image; Y increases upward on the scoring
	// plane, so the pixel row runs opposite to the bin row.
	h.counts[(h.height-1-row)*h.width+col]++
}

// WriteTo renders the histogram as a grayscale PNG, log-scaled against
// its own peak bin so a handful of hot pixels don't wash out the rest of
// the field.
func (h *Histogram) WriteTo(w io.Writer) error {
	img := image.NewGray(image.Rect(0, 0, h.width, h.height))

	var max uint64
	for _, c := range h.counts {
		if c > max {
			max = c
		}
	}

	logMax := math.Log1p(float64(max))
	for i, c := range h.counts {
		var v uint8
		if max > 0 && logMax > 0 {
			v = uint8(255 * math.Log1p(float64(c)) / logMax)
		}
		img.SetGray(i%h.width, i/h.width, color.Gray{Y: v})
	}

	return png.Encode(w, img)
}
