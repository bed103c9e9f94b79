//go:build !purego && !js

package main

import (
	"fmt"

	"gocv.io/x/gocv"
)

// loadImage reads an image with OpenCV and returns its pixels as a flat RGBA
// buffer together with its width and height.
func loadImage(path string) ([]byte, int, int, error) {
	src := gocv.IMRead(path, gocv.IMReadUnchanged)
	if src.Empty() {
		return nil, 0, 0, fmt.Errorf("could not load image: %s", path)
	}
	defer src.Close()

	// 16-bit PNG/TIFF: scale down to 8 bits per channel
	m8 := src
	switch src.Type() {
	case gocv.MatTypeCV16UC1, gocv.MatTypeCV16UC3, gocv.MatTypeCV16UC4:
		conv := gocv.NewMat()
		defer conv.Close()
		src.ConvertToWithParams(&conv, gocv.MatTypeCV8U, 1.0/257.0, 0)
		m8 = conv
	}

	rgba := gocv.NewMat()
	defer rgba.Close()
	switch m8.Channels() {
	case 1:
		gocv.CvtColor(m8, &rgba, gocv.ColorGrayToBGRA)
	case 3:
		gocv.CvtColor(m8, &rgba, gocv.ColorBGRToRGBA)
	case 4:
		gocv.CvtColor(m8, &rgba, gocv.ColorBGRAToRGBA)
	default:
		return nil, 0, 0, fmt.Errorf("unsupported channel count %d: %s", m8.Channels(), path)
	}

	return rgba.ToBytes(), rgba.Cols(), rgba.Rows(), nil
}

// saveImage writes a flat RGBA buffer with OpenCV. The format follows the
// file extension.
func saveImage(path string, pixels []byte, width, height int) error {
	rgba, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC4, pixels)
	if err != nil {
		return fmt.Errorf("wrapping pixels: %w", err)
	}
	defer rgba.Close()

	// Swapping R and B is its own inverse, so the BGRA->RGBA code also
	// produces the BGRA layout OpenCV writes.
	bgra := gocv.NewMat()
	defer bgra.Close()
	gocv.CvtColor(rgba, &bgra, gocv.ColorBGRAToRGBA)

	if !gocv.IMWrite(path, bgra) {
		return fmt.Errorf("could not write image: %s", path)
	}
	return nil
}
