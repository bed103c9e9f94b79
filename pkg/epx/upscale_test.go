package epx

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math/rand"
	"testing"
)

func TestUpscale(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	src := randomGrid(rng, 6, 9)
	buf := src.Buffer()

	res, err := Upscale(buf, 6, 9, nil)
	if err != nil {
		t.Fatalf("Upscale() error = %v", err)
	}
	if Diff(res.Original, src) != 0 {
		t.Errorf("Result.Original differs from the input")
	}
	if Diff(res.Nearest, Expand(src)) != 0 {
		t.Errorf("Result.Nearest differs from Expand()")
	}
	if Diff(res.EPX, ApplyEPX(src, Expand(src))) != 0 {
		t.Errorf("Result.EPX differs from ApplyEPX()")
	}
	if got, want := len(res.NearestBuffer()), 12*18*4; got != want {
		t.Errorf("len(NearestBuffer()) = %d, want %d", got, want)
	}
	if got, want := len(res.EPXBuffer()), 12*18*4; got != want {
		t.Errorf("len(EPXBuffer()) = %d, want %d", got, want)
	}
	if got, want := res.Changed(), Diff(res.Nearest, res.EPX); got != want {
		t.Errorf("Changed() = %d, want %d", got, want)
	}
	if !bytes.Equal(buf, src.Buffer()) {
		t.Errorf("Upscale() modified its input buffer")
	}
}

func TestUpscaleInvalidBuffer(t *testing.T) {
	res, err := Upscale(make([]byte, 10), 2, 2, nil)
	if !errors.Is(err, ErrInvalidBufferSize) {
		t.Fatalf("Upscale() error = %v, want %v", err, ErrInvalidBufferSize)
	}
	if res != nil {
		t.Errorf("Upscale() returned a result alongside an error")
	}
}

func TestUpscaleWorkersMatchSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	src := randomGrid(rng, 37, 23)
	want, err := Upscale(src.Buffer(), src.Rows(), src.Cols(), &Params{Workers: 1})
	if err != nil {
		t.Fatalf("Upscale() error = %v", err)
	}

	for _, workers := range []int{0, 2, 3, 8, 100} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			got, err := Upscale(src.Buffer(), src.Rows(), src.Cols(), &Params{Workers: workers})
			if err != nil {
				t.Fatalf("Upscale() error = %v", err)
			}
			if n := Diff(got.Nearest, want.Nearest); n != 0 {
				t.Errorf("nearest result differs in %d cells", n)
			}
			if n := Diff(got.EPX, want.EPX); n != 0 {
				t.Errorf("EPX result differs in %d cells", n)
			}
		})
	}
}

func TestUpscaleImage(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	src := randomGrid(rng, 5, 7)
	img := src.NRGBA()

	res, err := UpscaleImage(img, &Params{Workers: 2})
	if err != nil {
		t.Fatalf("UpscaleImage() error = %v", err)
	}
	if got := res.EPX.NRGBA().Bounds(); got != image.Rect(0, 0, 14, 10) {
		t.Errorf("EPX bounds = %v, want %v", got, image.Rect(0, 0, 14, 10))
	}

	if _, err := UpscaleImage(nil, nil); err == nil {
		t.Error("UpscaleImage(nil) succeeded")
	}
}

func TestUpscaleEmpty(t *testing.T) {
	res, err := Upscale(nil, 0, 0, &Params{Workers: 4})
	if err != nil {
		t.Fatalf("Upscale() error = %v", err)
	}
	if !res.Nearest.Empty() || !res.EPX.Empty() {
		t.Errorf("Upscale() of an empty image produced non-empty grids")
	}
}

func TestUpscaleZeroDimensionKeepsOther(t *testing.T) {
	for _, dims := range []image.Point{{0, 5}, {5, 0}} {
		for _, workers := range []int{1, 4} {
			res, err := Upscale(nil, dims.Y, dims.X, &Params{Workers: workers})
			if err != nil {
				t.Fatalf("Upscale(%v) error = %v", dims, err)
			}
			for name, g := range map[string]Grid{"Nearest": res.Nearest, "EPX": res.EPX} {
				if g.Rows() != 2*dims.Y || g.Cols() != 2*dims.X {
					t.Errorf("workers=%d: %s of %dx%d is %dx%d, want %dx%d",
						workers, name, dims.Y, dims.X, g.Rows(), g.Cols(), 2*dims.Y, 2*dims.X)
				}
			}
		}
	}
}

func TestDiff(t *testing.T) {
	a := gridOf(t, [][]Pixel{{red, green}, {blue, yellow}})
	b := a.Clone()
	if n := Diff(a, b); n != 0 {
		t.Errorf("Diff() of a clone = %d, want 0", n)
	}
	b.Set(0, 1, white)
	b.Set(1, 0, Pixel{0, 0, 255, 254})
	if n := Diff(a, b); n != 2 {
		t.Errorf("Diff() = %d, want 2", n)
	}

	defer func() {
		if recover() == nil {
			t.Error("Diff() of mismatched grids did not panic")
		}
	}()
	Diff(a, NewTransparentGrid(2, 3))
}

func TestBandCount(t *testing.T) {
	tests := []struct {
		workers, rows, want int
	}{
		{0, 10, 1},
		{-3, 10, 1},
		{1, 10, 1},
		{4, 10, 4},
		{16, 10, 10},
		{4, 0, 1},
	}
	for _, tt := range tests {
		if got := bandCount(tt.workers, tt.rows); got != tt.want {
			t.Errorf("bandCount(%d, %d) = %d, want %d", tt.workers, tt.rows, got, tt.want)
		}
	}
}
