package epx

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"
)

// Params controls how Upscale runs.
type Params struct {
	// Workers is the number of goroutines used for the expansion and EPX
	// passes. Values <= 1 run sequentially. Output does not depend on it.
	Workers int
}

// DefaultParams runs the pipeline on the calling goroutine.
var DefaultParams = Params{Workers: 1}

// Result holds the source grid and both 2x expansions of it.
type Result struct {
	Original Grid
	Nearest  Grid
	EPX      Grid
}

// NearestBuffer returns the nearest-neighbor result as a flat RGBA buffer.
func (r *Result) NearestBuffer() []byte { return r.Nearest.Buffer() }

// EPXBuffer returns the EPX result as a flat RGBA buffer.
func (r *Result) EPXBuffer() []byte { return r.EPX.Buffer() }

// Changed returns the number of output pixels where EPX differs from the
// nearest-neighbor expansion.
func (r *Result) Changed() int { return Diff(r.Nearest, r.EPX) }

// Upscale decodes a flat RGBA buffer of height x width pixels and returns
// its nearest-neighbor and EPX 2x expansions. A nil params uses
// DefaultParams.
func Upscale(buf []byte, height, width int, params *Params) (*Result, error) {
	src, err := FromBuffer(buf, height, width)
	if err != nil {
		return nil, err
	}
	return upscaleGrid(src, params), nil
}

// UpscaleImage is Upscale for a standard library image.
func UpscaleImage(img image.Image, params *Params) (*Result, error) {
	if img == nil {
		return nil, errors.New("epx: nil image")
	}
	return upscaleGrid(FromImage(img), params), nil
}

func upscaleGrid(src Grid, params *Params) *Result {
	if params == nil {
		params = &DefaultParams
	}
	logger := Logger()
	workers := bandCount(params.Workers, src.rows)
	logger.Debug("upscale", "width", src.cols, "height", src.rows, "workers", workers)

	nearest := NewTransparentGrid(src.rows*Scale, src.cols*Scale)
	if workers <= 1 {
		ExpandInto(&nearest, src)
	} else {
		forBands(src.rows, workers, func(y0, y1 int) {
			expandRows(&nearest, src, y0, y1)
		})
	}

	var refined Grid
	if workers <= 1 {
		refined = ApplyEPX(src, nearest)
	} else {
		refined = nearest.Clone()
		forBands(src.rows, workers, func(y0, y1 int) {
			epxRows(&refined, src, y0, y1)
		})
	}

	res := &Result{Original: src, Nearest: nearest, EPX: refined}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("epx applied", "changed", res.Changed(), "total", nearest.rows*nearest.cols)
	}
	return res
}

// bandCount clamps the requested worker count to the number of rows.
func bandCount(workers, rows int) int {
	if workers > rows {
		workers = rows
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// forBands splits [0, rows) into n contiguous bands and runs fn on each band
// in its own goroutine.
func forBands(rows, n int, fn func(y0, y1 int)) {
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		y0 := rows * i / n
		y1 := rows * (i + 1) / n
		if y0 == y1 {
			continue
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

// Diff returns the number of cells that differ between a and b, which must
// have the same dimensions.
func Diff(a, b Grid) int {
	if !a.SameSize(b) {
		panic(fmt.Sprintf("epx: diff of %dx%d and %dx%d grids", a.rows, a.cols, b.rows, b.cols))
	}
	n := 0
	for y := 0; y < a.rows; y++ {
		rb := b.row(y)
		for x, p := range a.row(y) {
			if !p.Equal(rb[x]) {
				n++
			}
		}
	}
	return n
}
