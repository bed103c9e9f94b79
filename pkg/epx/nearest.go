package epx

import "fmt"

// Expand returns src scaled by 2 with nearest-neighbor replication.
func Expand(src Grid) Grid {
	dst := NewTransparentGrid(src.rows*Scale, src.cols*Scale)
	ExpandInto(&dst, src)
	return dst
}

// ExpandInto writes every source pixel (y, x) into the 2x2 block at
// (2y, 2x) of dst. dst must be exactly twice the size of src; every cell of
// dst is overwritten.
func ExpandInto(dst *Grid, src Grid) {
	if dst.rows != src.rows*Scale || dst.cols != src.cols*Scale {
		panic(fmt.Sprintf("epx: expand target is %dx%d, want %dx%d",
			dst.rows, dst.cols, src.rows*Scale, src.cols*Scale))
	}
	expandRows(dst, src, 0, src.rows)
}

// expandRows expands source rows [y0, y1).
func expandRows(dst *Grid, src Grid, y0, y1 int) {
	for y := y0; y < y1; y++ {
		top := dst.row(2 * y)
		bottom := dst.row(2*y + 1)
		for x, p := range src.row(y) {
			top[2*x], top[2*x+1] = p, p
		}
		copy(bottom, top)
	}
}
