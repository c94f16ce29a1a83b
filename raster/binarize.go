package raster

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"

	"github.com/katalvlaran/gridholes/enclosure"
	"github.com/katalvlaran/gridholes/gridgraph"
)

// Binarize converts img into a 0/1 grid indexed [y][x].
//
// Steps:
//  1. Validate the image and options.
//  2. Down-sample so one pixel stands for CellSize×CellSize source pixels
//     (nearest neighbor, partial trailing blocks dropped).
//  3. Threshold at Level: darker pixels are filled (1), the rest empty (0);
//     WithInvert swaps the two.
//
// Returns ErrEmptyImage for nil or empty images and ErrOptionViolation for
// invalid options.
func Binarize(img image.Image, opts ...Option) ([][]int, error) {
	// 1) Validate
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	b := img.Bounds()
	cols, rows := b.Dx()/o.CellSize, b.Dy()/o.CellSize
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("%w: CellSize %d exceeds image %dx%d", ErrOptionViolation, o.CellSize, b.Dx(), b.Dy())
	}

	// 2) Down-sample
	src := img
	if o.CellSize > 1 {
		cropped := imaging.Crop(img, image.Rect(b.Min.X, b.Min.Y, b.Min.X+cols*o.CellSize, b.Min.Y+rows*o.CellSize))
		src = imaging.Resize(cropped, cols, rows, imaging.NearestNeighbor)
	}

	// 3) Threshold; dark pixels come back as 0x00, light ones as 0xFF
	gray := segment.Threshold(src, o.Level)
	gb := gray.Bounds()
	out := make([][]int, rows)
	for y := 0; y < rows; y++ {
		out[y] = make([]int, cols)
		for x := 0; x < cols; x++ {
			dark := gray.GrayAt(gb.Min.X+x, gb.Min.Y+y).Y == 0
			if dark != o.Invert {
				out[y][x] = 1
			}
		}
	}

	return out, nil
}

// Clusters binarizes img and splits the filled cells into clusters using the
// configured connectivity. Cluster anchors are in cell coordinates.
func Clusters(img image.Image, opts ...Option) ([]enclosure.Cluster, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	values, err := Binarize(img, opts...)
	if err != nil {
		return nil, err
	}
	gg, err := gridgraph.NewGridGraph(values, gridgraph.GridOptions{LandThreshold: 1, Conn: o.Conn})
	if err != nil {
		return nil, fmt.Errorf("raster: Clusters: %w", err)
	}

	return gg.Clusters(), nil
}
