//go:build js && wasm

package main

import (
	"syscall/js"

	"epxscale/pkg/epx"
)

var lastResult *epx.Result

func main() {
	js.Global().Set("epxUpscale", js.FuncOf(upscale))
	js.Global().Set("epxSheet", js.FuncOf(renderSheet))
	select {} // block forever
}

// upscale(rgbaBytes, width, height) takes the data of a canvas ImageData and
// returns both 2x expansions as RGBA byte arrays of the same layout.
func upscale(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return errorResult("usage: epxUpscale(rgbaBytes, width, height)")
	}

	jsBytes := args[0]
	if !jsBytes.InstanceOf(js.Global().Get("Uint8Array")) &&
		!jsBytes.InstanceOf(js.Global().Get("Uint8ClampedArray")) {
		return errorResult("rgbaBytes must be a Uint8Array or Uint8ClampedArray")
	}
	if args[1].Type() != js.TypeNumber || args[2].Type() != js.TypeNumber {
		return errorResult("width and height must be numbers")
	}
	length := jsBytes.Get("length").Int()
	pixels := make([]byte, length)
	js.CopyBytesToGo(pixels, jsBytes)

	width := args[1].Int()
	height := args[2].Int()

	res, err := epx.Upscale(pixels, height, width, nil)
	if err != nil {
		return errorResult("upscale error: " + err.Error())
	}
	lastResult = res

	return js.ValueOf(map[string]interface{}{
		"width":   res.EPX.Cols(),
		"height":  res.EPX.Rows(),
		"nearest": toUint8Array(res.NearestBuffer()),
		"epx":     toUint8Array(res.EPXBuffer()),
		"changed": res.Changed(),
	})
}

// renderSheet returns the comparison sheet of the last upscale as PNG bytes.
func renderSheet(this js.Value, args []js.Value) interface{} {
	if lastResult == nil {
		return js.Null()
	}

	pngBytes, err := epx.RenderSheetPNG(lastResult)
	if err != nil {
		return js.Null()
	}
	return toUint8Array(pngBytes)
}

func toUint8Array(b []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(arr, b)
	return arr
}

func errorResult(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{
		"error": msg,
	})
}
