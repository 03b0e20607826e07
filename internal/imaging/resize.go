package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	apperrors "github.com/ironsheep/asset-kit/internal/errors"
)

// Strategy selects how an image is mapped onto a target box.
type Strategy string

const (
	// ContainCentered fits the image inside the box without upscaling and pads
	// it to exactly the box size (transparent for alpha images, white otherwise).
	ContainCentered Strategy = "contain-centered"

	// CoverCrop scales the image to cover the box and crops the overflow
	// symmetrically about the center.
	CoverCrop Strategy = "cover-crop"

	// Stretch scales to exactly the box size, ignoring aspect ratio.
	Stretch Strategy = "stretch"
)

// Strategies lists the accepted strategy names.
var Strategies = []Strategy{ContainCentered, CoverCrop, Stretch}

// ParseStrategy converts a strategy name into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies {
		if string(s) == name {
			return s, nil
		}
	}
	return "", apperrors.InvalidArgumentf("unknown resize strategy: %s", name)
}

// Resize maps img onto a width x height box using the given strategy.
// Resampling uses the Lanczos filter.
func Resize(img image.Image, width, height int, strategy Strategy) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, apperrors.InvalidArgumentf("target dimensions must be positive, got %dx%d", width, height)
	}

	switch strategy {
	case ContainCentered:
		fitted := imaging.Fit(img, width, height, imaging.Lanczos)
		var fill color.Color = color.White
		if HasAlpha(img) {
			fill = color.Transparent
		}
		canvas := imaging.New(width, height, fill)
		return pasteCentered(canvas, fitted), nil

	case CoverCrop:
		return imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos), nil

	case Stretch:
		return imaging.Resize(img, width, height, imaging.Lanczos), nil

	default:
		return nil, apperrors.InvalidArgumentf("unknown resize strategy: %s", strategy)
	}
}

// CenterIcon fits img inside a square of canvasSize*(1-2*padding) pixels and
// places it in the middle of a transparent canvasSize x canvasSize canvas.
//
// padding is the fraction of the canvas left empty on each side and must be
// in [0, 0.5). The icon is never upscaled.
func CenterIcon(img image.Image, canvasSize int, padding float64) (*image.NRGBA, error) {
	if canvasSize <= 0 {
		return nil, apperrors.InvalidArgumentf("canvas size must be positive, got %d", canvasSize)
	}
	if padding < 0 || padding >= 0.5 {
		return nil, apperrors.InvalidArgumentf("padding must be in [0, 0.5), got %g", padding)
	}

	maxIcon := int(float64(canvasSize) * (1 - padding*2))
	if maxIcon <= 0 {
		return nil, apperrors.InvalidArgumentf("padding %g leaves no room on a %dpx canvas", padding, canvasSize)
	}

	fitted := imaging.Fit(img, maxIcon, maxIcon, imaging.Lanczos)
	canvas := imaging.New(canvasSize, canvasSize, color.Transparent)
	return pasteCentered(canvas, fitted), nil
}

// pasteCentered copies img onto canvas at ((cw-iw)/2, (ch-ih)/2). Pixels are
// copied, not blended, so transparent source pixels stay transparent.
func pasteCentered(canvas *image.NRGBA, img image.Image) *image.NRGBA {
	cb := canvas.Bounds()
	ib := img.Bounds()
	offset := image.Pt((cb.Dx()-ib.Dx())/2, (cb.Dy()-ib.Dy())/2)
	return imaging.Paste(canvas, img, cb.Min.Add(offset))
}
