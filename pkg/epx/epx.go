package epx

import "fmt"

// ApplyEPX refines prescaled, a nearest-neighbor 2x expansion of original,
// with Eric's Pixel Expansion and returns the result as a new grid.
// prescaled is not modified.
//
// For every source pixel P with neighbors A (above), B (right), C (left) and
// D (below), the 2x2 output block is laid out as
//
//	  A
//	C P B    ->   1 2
//	  D           3 4
//
// and each corner takes the value of the neighbor pair it touches when that
// pair is equal:
//
//	1 = A if C == A
//	2 = B if A == B
//	3 = C if D == C
//	4 = D if B == D
//
// When three of the four neighbors agree the whole block is set back to P.
// Neighbors that fall outside the grid are replaced by P.
func ApplyEPX(original, prescaled Grid) Grid {
	if prescaled.rows != original.rows*Scale || prescaled.cols != original.cols*Scale {
		panic(fmt.Sprintf("epx: prescaled grid is %dx%d, want %dx%d",
			prescaled.rows, prescaled.cols, original.rows*Scale, original.cols*Scale))
	}
	out := prescaled.Clone()
	epxRows(&out, original, 0, original.rows)
	return out
}

// epxRows refines the output blocks of source rows [y0, y1). It writes only
// output rows 2*y0 through 2*y1-1.
func epxRows(out *Grid, src Grid, y0, y1 int) {
	h, w := src.rows, src.cols

	for y := y0; y < y1; y++ {
		cur := src.row(y)
		above, below := cur, cur
		if y > 0 {
			above = src.row(y - 1)
		}
		if y < h-1 {
			below = src.row(y + 1)
		}
		top := out.row(2 * y)
		bottom := out.row(2*y + 1)

		for x, p := range cur {
			a, b, c, d := p, p, p, p
			if y > 0 {
				a = above[x]
			}
			if x < w-1 {
				b = cur[x+1]
			}
			if x > 0 {
				c = cur[x-1]
			}
			if y < h-1 {
				d = below[x]
			}

			if c.Equal(a) {
				top[2*x] = a
			}
			if a.Equal(b) {
				top[2*x+1] = b
			}
			if d.Equal(c) {
				bottom[2*x] = c
			}
			if b.Equal(d) {
				bottom[2*x+1] = d
			}

			if isFlat(a, b, c, d) {
				top[2*x], top[2*x+1] = p, p
				bottom[2*x], bottom[2*x+1] = p, p
			}
		}
	}
}

// isFlat reports whether at least three of the four neighbors are equal.
// The last clause is implied by the first two.
func isFlat(a, b, c, d Pixel) bool {
	ab, bc, cd := a.Equal(b), b.Equal(c), c.Equal(d)
	return (ab && bc) ||
		(bc && cd) ||
		(ab && b.Equal(d)) ||
		(a.Equal(c) && cd) ||
		(ab && bc && cd)
}
