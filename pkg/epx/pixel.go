package epx

import "image/color"

// Pixel is a non-premultiplied 8-bit RGBA sample.
type Pixel struct {
	R, G, B, A uint8
}

// Transparent is the all-zero pixel used to pre-fill new grids.
var Transparent = Pixel{}

// Equal reports whether all four components of p and q match, in order.
func (p Pixel) Equal(q Pixel) bool {
	return p.R == q.R && p.G == q.G && p.B == q.B && p.A == q.A
}

// RGBA implements color.Color. Alpha is applied the same way color.NRGBA does.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// NRGBA returns p as a standard library color.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

func pixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}

var _ color.Color = Pixel{}
