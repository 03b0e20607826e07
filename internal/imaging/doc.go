// Package imaging provides the pixel operations behind asset-kit.
//
// Every operation is a pure function from an image plus scalar parameters to
// a new image; inputs are never modified. Results are *image.NRGBA
// (non-premultiplied, 8 bits per channel), so the alpha channel is the only
// transparency signal and color channels keep their value under transparent
// pixels.
//
// # Operations
//
// Geometry:
//   - Resize: contain-centered, cover-crop or stretch to an exact box
//   - CenterIcon: fit inside a padded square transparent canvas
//
// Transparency:
//   - RemoveBackground: near-white pixels become fully transparent
//   - ErodeAlpha: 3x3 minimum filter over alpha, one pixel per pass
//   - ShrinkAlpha: scale-down approximation of erosion
//   - ThresholdToBlack: visible pixels become pure black
//
// Color:
//   - RGBColor: brightness, saturation, HSL and palette transforms
//   - TopColors: quantized color frequencies, reported by Inspect
//
// I/O:
//   - Load and Inspect decode PNG, JPEG, GIF, WebP, BMP and TIFF
//   - Save picks an encoder from the destination extension
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward.
//
// # Concurrency
//
// Per-pixel passes split rows across goroutines with bild's parallel.Line.
// Each goroutine writes a disjoint set of rows and all of them finish before
// the function returns.
package imaging
