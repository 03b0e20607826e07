package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"

	apperrors "github.com/ironsheep/asset-kit/internal/errors"
)

// ErosionMethod names one of the two alpha erosion implementations. They
// produce different output and are not substitutes for each other.
type ErosionMethod string

const (
	// MinFilterErosion shrinks the opaque region by exactly one pixel per pass.
	MinFilterErosion ErosionMethod = "min-filter"

	// ShrinkErosion scales the whole image down and re-centers it.
	ShrinkErosion ErosionMethod = "shrink"
)

// ParseErosionMethod converts a method name into an ErosionMethod.
func ParseErosionMethod(name string) (ErosionMethod, error) {
	switch ErosionMethod(name) {
	case MinFilterErosion, ShrinkErosion:
		return ErosionMethod(name), nil
	}
	return "", apperrors.InvalidArgumentf("unknown erosion method: %s", name)
}

// Erode dispatches to ErodeAlpha or ShrinkAlpha.
func Erode(img image.Image, pixels int, method ErosionMethod) (*image.NRGBA, error) {
	switch method {
	case MinFilterErosion:
		return ErodeAlpha(img, pixels)
	case ShrinkErosion:
		return ShrinkAlpha(img, pixels)
	default:
		return nil, apperrors.InvalidArgumentf("unknown erosion method: %s", method)
	}
}

// ErodeAlpha shrinks the opaque region of img inward by the given number of
// pixels, removing anti-aliasing halos.
//
// # Algorithm
//
// The alpha channel is run through a 3x3 minimum filter `pixels` times. Each
// pass replaces every alpha value with the minimum of itself and its eight
// neighbors, so a pixel next to any transparent pixel becomes transparent and
// the boundary moves in by one pixel. Border pixels use clamped (replicated)
// edge values, so a region touching the image edge does not erode from that
// side. Color channels are copied unchanged.
//
// Erosion never increases alpha anywhere. pixels == 0 returns an NRGBA copy.
func ErodeAlpha(img image.Image, pixels int) (*image.NRGBA, error) {
	if pixels < 0 {
		return nil, apperrors.InvalidArgumentf("erosion pixels must be >= 0, got %d", pixels)
	}

	dst := imaging.Clone(img)
	width, height := dst.Rect.Dx(), dst.Rect.Dy()
	if pixels == 0 || width == 0 || height == 0 {
		return dst, nil
	}

	alpha := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < width; x++ {
			alpha[y*width+x] = row[x*4+3]
		}
	}

	next := make([]uint8, len(alpha))
	for pass := 0; pass < pixels; pass++ {
		minFilter3x3(alpha, next, width, height)
		alpha, next = next, alpha
	}

	for y := 0; y < height; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < width; x++ {
			row[x*4+3] = alpha[y*width+x]
		}
	}
	return dst, nil
}

// minFilter3x3 writes into dst the 3x3 neighborhood minimum of src.
func minFilter3x3(src, dst []uint8, width, height int) {
	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				m := uint8(255)
				for ky := -1; ky <= 1; ky++ {
					py := clamp(y+ky, 0, height-1)
					for kx := -1; kx <= 1; kx++ {
						px := clamp(x+kx, 0, width-1)
						if v := src[py*width+px]; v < m {
							m = v
						}
					}
				}
				dst[y*width+x] = m
			}
		}
	})
}

// ShrinkAlpha approximates erosion by scaling the whole image down and
// centering it on a transparent canvas of the original size.
//
// The scale factor is 1 - 2*pixels/min(width, height). Unlike ErodeAlpha this
// resamples the colors as well and moves every edge, not only the alpha
// boundary, so the two results are not interchangeable.
func ShrinkAlpha(img image.Image, pixels int) (*image.NRGBA, error) {
	if pixels < 0 {
		return nil, apperrors.InvalidArgumentf("erosion pixels must be >= 0, got %d", pixels)
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	shortSide := width
	if height < shortSide {
		shortSide = height
	}
	if shortSide == 0 {
		return imaging.Clone(img), nil
	}

	factor := 1 - float64(pixels*2)/float64(shortSide)
	shrunkW := int(float64(width) * factor)
	shrunkH := int(float64(height) * factor)
	if shrunkW <= 0 || shrunkH <= 0 {
		return nil, apperrors.InvalidArgumentf("cannot shrink a %dx%d image by %d pixels", width, height, pixels)
	}

	shrunk := imaging.Resize(img, shrunkW, shrunkH, imaging.Lanczos)
	canvas := imaging.New(width, height, color.Transparent)
	return pasteCentered(canvas, shrunk), nil
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in neighborhood filters.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
