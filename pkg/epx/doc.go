// Package epx upscales RGBA rasters by a factor of two, once by
// nearest-neighbor replication and once with Eric's Pixel Expansion (EPX),
// so the two results can be compared.
//
// The usual entry point is [Upscale], which takes a flat interleaved RGBA
// buffer and returns a [Result] holding both expansions. The individual
// steps ([FromBuffer], [Expand], [ApplyEPX], [Grid.Buffer]) are exported for
// callers that manage their own grids.
package epx
