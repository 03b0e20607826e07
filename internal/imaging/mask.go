package imaging

import (
	"image"
	"sync/atomic"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"

	apperrors "github.com/ironsheep/asset-kit/internal/errors"
)

// DefaultAlphaThreshold is the alpha value above which a pixel is blackened.
const DefaultAlphaThreshold = 10

// ThresholdToBlack turns every pixel with alpha > alphaThreshold into pure
// black, keeping its alpha. Pixels at or below the threshold are untouched.
// The result is a silhouette mask that a game engine can tint without
// artifacts from near-black or colored pixels.
//
// Returns the mask and the number of pixels that were blackened.
func ThresholdToBlack(img image.Image, alphaThreshold int) (*image.NRGBA, int, error) {
	if alphaThreshold < 0 || alphaThreshold > 255 {
		return nil, 0, apperrors.InvalidArgumentf("alpha threshold must be in [0, 255], got %d", alphaThreshold)
	}

	dst := imaging.Clone(img)
	width, height := dst.Rect.Dx(), dst.Rect.Dy()
	t := uint8(alphaThreshold)

	var converted int64
	parallel.Line(height, func(start, end int) {
		var n int64
		for y := start; y < end; y++ {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]
			for i := 0; i < len(row); i += 4 {
				if row[i+3] > t {
					row[i], row[i+1], row[i+2] = 0, 0, 0
					n++
				}
			}
		}
		atomic.AddInt64(&converted, n)
	})

	return dst, int(converted), nil
}
