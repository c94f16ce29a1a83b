// Package gridholes finds the enclosed regions ("holes") of clusters of filled
// cells on a 2D grid.
//
// 🚀 What is gridholes?
//
//	A small, dependency-light library that brings together:
//		• Grid primitives: positions, the eight compass directions, immutable boolean grids
//		• Contour search: a depth-first walk that closes loops around empty cells
//		• Enclosure building: outline → filled region via a bounding-box flood fill
//		• Board analysis: integer grids cut into connected clusters
//		• Bitmaps: binarize images into clusters and render enclosures back
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/      — Position, Direction, Dense (immutable) and Mask (mutable) grids
//	enclosure/ — Cluster, Enclosure, TraceBorder, Build, Search and the drivers
//	gridgraph/ — [][]int boards → connected components → clusters
//	raster/    — image.Image → clusters, enclosures → image.NRGBA
//
// Quick ASCII example:
//
//	###.####
//	#.###..#
//	###.#..#
//	....####
//
//	holds two enclosures: the 3×3 ring on the left and the lake on the right.
//
// Typical flow:
//
//	gg, _ := gridgraph.NewGridGraph(board, gridgraph.DefaultGridOptions())
//	encs, _ := enclosure.FindLargestEnclosures(gg.Clusters())
//
//	go get github.com/katalvlaran/gridholes
package gridholes
