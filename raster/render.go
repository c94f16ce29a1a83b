package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/gridholes/enclosure"
)

// goldenAngle spreads consecutive hues far apart on the color wheel.
const goldenAngle = 137.508

// Palette returns the fill and outline colors used for the i-th enclosure.
func Palette(i int) (fill, outline color.NRGBA) {
	h := math.Mod(float64(i)*goldenAngle, 360)
	fill = nrgba(colorful.Hsv(h, 0.35, 0.95))
	outline = nrgba(colorful.Hsv(h, 0.85, 0.55))

	return fill, outline
}

// Render paints encs on a white width×height canvas, one cell per pixel, and
// scales the result by scale (nearest neighbor). Each enclosure gets its own
// hue; its outline is drawn in a darker shade. Later enclosures are painted
// over earlier ones and cells outside the canvas are skipped.
// scale < 1 is treated as 1.
func Render(width, height int, encs []enclosure.Enclosure, scale int) *image.NRGBA {
	canvas := imaging.New(width, height, color.White)
	if width <= 0 || height <= 0 {
		return canvas
	}
	bounds := canvas.Bounds()

	for i, e := range encs {
		fill, line := Palette(i)
		anchor := e.Anchor()
		for _, c := range e.Cells() {
			p := image.Pt(anchor.X+c.X, anchor.Y+c.Y)
			if p.In(bounds) {
				canvas.SetNRGBA(p.X, p.Y, fill)
			}
		}
		for _, c := range e.Outline() {
			p := image.Pt(c.X, c.Y)
			if p.In(bounds) {
				canvas.SetNRGBA(p.X, p.Y, line)
			}
		}
	}

	if scale <= 1 {
		return canvas
	}

	return imaging.Resize(canvas, width*scale, height*scale, imaging.NearestNeighbor)
}

func nrgba(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()

	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}
