package imaging

import (
	"image"
	"sync/atomic"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"

	apperrors "github.com/ironsheep/asset-kit/internal/errors"
)

// DefaultBackgroundThreshold is the channel value at or above which a pixel
// counts as background.
const DefaultBackgroundThreshold = 240

// BackgroundStats summarizes a background removal pass.
type BackgroundStats struct {
	Threshold          int     `json:"threshold"`
	TransparentPixels  int     `json:"transparentPixels"`
	TotalPixels        int     `json:"totalPixels"`
	TransparentPercent float64 `json:"transparentPercent"`
}

// RemoveBackground makes near-white pixels fully transparent.
//
// A pixel is background when its red, green and blue channels are all >=
// threshold. Background pixels get alpha 0 with their color channels left as
// they were; every other pixel is copied unchanged. This is a per-pixel
// brightness test, not segmentation: a bright foreground object is removed
// just like a bright background.
//
// Parameters:
//   - img: Source image in any color model. It is converted to NRGBA.
//   - threshold: Channel threshold in [0, 255]. Typical value: 240.
//
// Returns:
//   - *image.NRGBA: The image with background pixels made transparent.
//   - *BackgroundStats: How many pixels were made transparent.
//   - error: invalid_argument if threshold is outside [0, 255].
func RemoveBackground(img image.Image, threshold int) (*image.NRGBA, *BackgroundStats, error) {
	if threshold < 0 || threshold > 255 {
		return nil, nil, apperrors.InvalidArgumentf("threshold must be in [0, 255], got %d", threshold)
	}

	dst := imaging.Clone(img)
	width, height := dst.Rect.Dx(), dst.Rect.Dy()
	t := uint8(threshold)

	var cleared int64
	parallel.Line(height, func(start, end int) {
		var n int64
		for y := start; y < end; y++ {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]
			for i := 0; i < len(row); i += 4 {
				if row[i] >= t && row[i+1] >= t && row[i+2] >= t {
					row[i+3] = 0
					n++
				}
			}
		}
		atomic.AddInt64(&cleared, n)
	})

	total := width * height
	stats := &BackgroundStats{
		Threshold:         threshold,
		TransparentPixels: int(cleared),
		TotalPixels:       total,
	}
	if total > 0 {
		stats.TransparentPercent = float64(cleared) / float64(total) * 100
	}
	return dst, stats, nil
}
