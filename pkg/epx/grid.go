package epx

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// Scale is the fixed upscaling factor of every expander in this package.
const Scale = 2

// ErrInvalidBufferSize is returned when a flat RGBA buffer does not hold
// exactly height*width*4 bytes.
var ErrInvalidBufferSize = errors.New("epx: invalid buffer size")

// maxPixels bounds the pixel count of an input grid so that its 2x expansion
// still has a byte length representable as int.
const maxPixels = math.MaxInt / (4 * Scale * Scale)

// Grid is a rectangular, row-major 2D array of pixels.
type Grid struct {
	pix    []Pixel
	rows   int
	cols   int
	stride int // pixels per row in the backing slice
}

// NewTransparentGrid returns a rows x cols grid filled with Transparent.
// Negative dimensions yield a 0x0 grid; a zero dimension is kept, so a 5x0
// grid still reports five rows.
func NewTransparentGrid(rows, cols int) Grid {
	if rows < 0 || cols < 0 {
		return Grid{}
	}
	return Grid{
		pix:    make([]Pixel, rows*cols),
		rows:   rows,
		cols:   cols,
		stride: cols,
	}
}

// FromBuffer builds a grid from a flat interleaved RGBA buffer. The pixel at
// (y, x) is read from buf[(y*width+x)*4:][:4]. Negative dimensions, or
// dimensions too large to upscale, fail with ErrInvalidBufferSize.
func FromBuffer(buf []byte, height, width int) (Grid, error) {
	if height < 0 || width < 0 {
		return Grid{}, fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidBufferSize, width, height)
	}
	if height > maxPixels || width > maxPixels || (width != 0 && height > maxPixels/width) {
		return Grid{}, fmt.Errorf("%w: %dx%d pixels do not fit in memory", ErrInvalidBufferSize, width, height)
	}
	if want := height * width * 4; len(buf) != want {
		return Grid{}, fmt.Errorf("%w: got %d bytes, want %d for %dx%d", ErrInvalidBufferSize, len(buf), want, width, height)
	}

	g := NewTransparentGrid(height, width)
	for y := 0; y < g.rows; y++ {
		row := g.row(y)
		src := buf[y*width*4:]
		for x := range row {
			i := x * 4
			row[x] = Pixel{R: src[i], G: src[i+1], B: src[i+2], A: src[i+3]}
		}
	}
	return g, nil
}

// FromImage converts any image to a grid. The image bounds are translated so
// that img.Bounds().Min becomes (0, 0).
func FromImage(img image.Image) Grid {
	b := img.Bounds()
	g := NewTransparentGrid(b.Dy(), b.Dx())
	if n, ok := img.(*image.NRGBA); ok {
		for y := 0; y < g.rows; y++ {
			src := n.Pix[n.PixOffset(b.Min.X, b.Min.Y+y):]
			row := g.row(y)
			for x := range row {
				i := x * 4
				row[x] = Pixel{R: src[i], G: src[i+1], B: src[i+2], A: src[i+3]}
			}
		}
		return g
	}
	for y := 0; y < g.rows; y++ {
		row := g.row(y)
		for x := range row {
			row[x] = pixelFromColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return g
}

// Rows returns the grid height.
func (g Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g Grid) Cols() int { return g.cols }

// Empty reports whether the grid holds no pixels.
func (g Grid) Empty() bool { return g.rows == 0 || g.cols == 0 }

// At returns the pixel at row y, column x. It panics when out of range.
func (g Grid) At(y, x int) Pixel {
	g.check(y, x)
	return g.pix[y*g.stride+x]
}

// Set stores p at row y, column x. It panics when out of range.
func (g Grid) Set(y, x int, p Pixel) {
	g.check(y, x)
	g.pix[y*g.stride+x] = p
}

func (g Grid) check(y, x int) {
	if y < 0 || y >= g.rows || x < 0 || x >= g.cols {
		panic(fmt.Sprintf("epx: (%d,%d) out of range for %dx%d grid", y, x, g.rows, g.cols))
	}
}

// row returns the pixels of row y, without the stride padding.
func (g Grid) row(y int) []Pixel {
	off := y * g.stride
	return g.pix[off : off+g.cols]
}

// SameSize reports whether g and o have the same dimensions.
func (g Grid) SameSize(o Grid) bool {
	return g.rows == o.rows && g.cols == o.cols
}

// Clone returns a deep copy of g that shares no memory with it.
func (g Grid) Clone() Grid {
	c := NewTransparentGrid(g.rows, g.cols)
	for y := 0; y < g.rows; y++ {
		copy(c.row(y), g.row(y))
	}
	return c
}

// Buffer flattens g into an interleaved RGBA buffer of Rows()*Cols()*4 bytes.
func (g Grid) Buffer() []byte {
	buf := make([]byte, g.rows*g.cols*4)
	for y := 0; y < g.rows; y++ {
		dst := buf[y*g.cols*4:]
		for x, p := range g.row(y) {
			i := x * 4
			dst[i], dst[i+1], dst[i+2], dst[i+3] = p.R, p.G, p.B, p.A
		}
	}
	return buf
}

// NRGBA returns a copy of g as a standard library image anchored at (0, 0).
func (g Grid) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    g.Buffer(),
		Stride: g.cols * 4,
		Rect:   image.Rect(0, 0, g.cols, g.rows),
	}
}
