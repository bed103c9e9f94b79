package epx

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	sheetMargin   = 12
	sheetCaptionH = 22
	sheetSummaryH = 24
	sheetMinPanel = 140 // keeps captions and the summary line inside the sheet
)

var (
	sheetBackground = color.RGBA{24, 24, 24, 255}
	sheetText       = color.RGBA{230, 230, 230, 255}
	sheetFrame      = color.RGBA{90, 90, 90, 255}
)

// WriteSheet renders the comparison sheet of res and writes it as PNG.
func WriteSheet(res *Result, outputPath string) error {
	data, err := RenderSheetPNG(res)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write sheet: %w", err)
	}
	return nil
}

// RenderSheetPNG renders the comparison sheet of res and returns PNG bytes.
func RenderSheetPNG(res *Result) ([]byte, error) {
	img, err := RenderSheet(res)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode sheet: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderSheet lays out the source image (scaled 2x so all panels share one
// size), the nearest-neighbor result and the EPX result side by side, each
// with a caption, above a one-line summary.
func RenderSheet(res *Result) (*image.RGBA, error) {
	if res == nil || res.Nearest.Empty() {
		return nil, errors.New("no upscale result")
	}

	panelW, panelH := res.Nearest.Cols(), res.Nearest.Rows()
	slotW := max(panelW, sheetMinPanel)
	totalW := 3*slotW + 4*sheetMargin
	totalH := sheetMargin + panelH + sheetCaptionH + sheetSummaryH

	img := image.NewRGBA(image.Rect(0, 0, totalW, totalH))
	draw.Draw(img, img.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	panels := []struct {
		label string
		src   image.Image
	}{
		{"Original", res.Original.NRGBA()},
		{"Nearest neighbor", res.Nearest.NRGBA()},
		{"EPX", res.EPX.NRGBA()},
	}

	face := basicfont.Face7x13
	for i, p := range panels {
		x0 := sheetMargin + i*(slotW+sheetMargin) + (slotW-panelW)/2
		r := image.Rect(x0, sheetMargin, x0+panelW, sheetMargin+panelH)

		drawFrame(img, r.Inset(-1), sheetFrame)
		if p.src.Bounds().Size() == r.Size() {
			draw.Draw(img, r, p.src, image.Point{}, draw.Over)
		} else {
			draw.NearestNeighbor.Scale(img, r, p.src, p.src.Bounds(), draw.Over, nil)
		}

		cx := sheetMargin + i*(slotW+sheetMargin) + slotW/2
		drawCenteredText(img, face, p.label, cx, r.Max.Y+16, sheetText)
	}

	total := panelW * panelH
	changed := res.Changed()
	summary := fmt.Sprintf("%dx%d -> %dx%d   EPX changed %d of %d pixels (%.1f%%)",
		res.Original.Cols(), res.Original.Rows(), panelW, panelH,
		changed, total, 100*float64(changed)/float64(total))
	drawText(img, face, summary, sheetMargin, totalH-8, sheetText)

	return img, nil
}

// drawFrame draws a 1px rectangle outline.
func drawFrame(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

// drawText draws a string with its baseline at (x, y).
func drawText(img *image.RGBA, face font.Face, s string, x, y int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawCenteredText draws a string horizontally centered on cx.
func drawCenteredText(img *image.RGBA, face font.Face, s string, cx, y int, c color.RGBA) {
	advance := font.MeasureString(face, s)
	drawText(img, face, s, cx-advance.Round()/2, y, c)
}
