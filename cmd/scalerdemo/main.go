// Command scalerdemo renders a synthetic 2D field with the scaler
// engine and writes the results as PNG images.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/sciplot/scaler"
)

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		cmapName = flag.String("colormap", "viridis", "colormap name")
		output   = flag.String("output", "demo.png", "output file")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		scaler.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	field := makeField(256, 256)

	lut := scaler.NewColorLUT(0)
	if err := lut.Build(scaler.GetColormap(*cmapName), false, scaler.AlphaNone, 1); err != nil {
		log.Fatalf("build LUT: %v", err)
	}

	// trim the outlier tails before mapping the range
	hist := scaler.NewHistogramEngine(field.Data(), 256)
	vmin, vmax, err := hist.LevelsRange(98, false)
	if err != nil {
		log.Fatalf("levels: %v", err)
	}
	lut.SetRange(vmin, vmax)

	dst := scaler.NewPixBuffer(*width, *height)
	src := scaler.RectF{X1: float64(field.Cols()), Y1: float64(field.Rows())}
	dstRect := scaler.MakeRect(0, 0, *width, *height)
	if _, err := scaler.ScaleRect(field, src, dst, dstRect, lut.Params(), scaler.Linear); err != nil {
		log.Fatalf("render: %v", err)
	}
	if err := dst.SavePNG(*output); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("rendered %s (%dx%d, range [%g, %g])", *output, *width, *height, vmin, vmax)
}

// makeField builds a two-bump interference pattern with a NaN hole.
func makeField(rows, cols int) *scaler.Field[float64] {
	f := scaler.NewField[float64](rows, cols)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			x := float64(i) / float64(cols-1) * 4 * math.Pi
			y := float64(j) / float64(rows-1) * 4 * math.Pi
			f.Set(j, i, math.Sin(x)*math.Cos(y)+0.3*math.Sin(2.5*x+y))
		}
	}
	// punch a hole to show background handling
	for j := rows / 2; j < rows/2+10; j++ {
		for i := cols / 2; i < cols/2+10; i++ {
			f.Set(j, i, math.NaN())
		}
	}
	return f
}
