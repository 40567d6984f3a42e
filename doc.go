// Package scaler renders 2D numeric arrays into packed-pixel images.
//
// # Overview
//
// scaler is a pure Go resampling and colorization engine for scientific
// raster data. It maps source arrays of any supported element kind onto
// destination pixel buffers through a colormap lookup table, with
// nearest, bilinear or antialiased sampling, and covers the usual image
// placements: axis-aligned rectangles, non-uniform 1D axes, affine
// transforms and structured quad meshes.
//
// # Quick Start
//
//	import "github.com/sciplot/scaler"
//
//	data := scaler.NewField[float64](512, 512)
//	// ... fill data ...
//
//	lut := scaler.NewColorLUT(0)
//	lut.Build(scaler.GetColormap("viridis"), false, scaler.AlphaNone, 1)
//	vmin, vmax, _ := scaler.NaNRange(data)
//	lut.SetRange(vmin, vmax)
//
//	dst := scaler.NewPixBuffer(800, 600)
//	src := scaler.RectF{X1: 512, Y1: 512}
//	scaler.ScaleRect(data, src, dst, scaler.MakeRect(0, 0, 800, 600),
//		lut.Params(), scaler.Linear)
//	dst.SavePNG("out.png")
//
// # Beyond Rendering
//
// The same data structures feed the analysis helpers: 1D and 2D
// histograms with outlier-eliminating level estimation, marching
// squares contour extraction, cross-section profiles and mask
// overlays.
//
// # NaN Handling
//
// Float-typed fields use NaN as a "no data" sentinel. NaN samples
// render as the LUT background, are excluded from range and histogram
// computations, and hole-punch contour cells.
package scaler
