package pipeline

import (
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/asset-kit/internal/imaging"
	"github.com/ironsheep/asset-kit/internal/logger"
)

// ResizeFile resizes input to width x height with strategy and writes output.
func (r *Runner) ResizeFile(input, output string, width, height int, strategy imaging.Strategy) (*Result, error) {
	img, format, err := imaging.Load(input)
	if err != nil {
		return nil, err
	}

	resized, err := imaging.Resize(img, width, height, strategy)
	if err != nil {
		return nil, err
	}

	size, err := imaging.Save(resized, output, r.encodeOpts...)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"input":    input,
		"output":   output,
		"strategy": strategy,
		"width":    width,
		"height":   height,
	}).Info("Resized image")

	return &Result{
		Success:  true,
		Input:    inputRef(input, format, img),
		Output:   outputRef(output, resized, size),
		Strategy: string(strategy),
	}, nil
}

// CenterFile fits input inside a square transparent canvas with padding on
// every side. The output is always PNG regardless of the extension.
func (r *Runner) CenterFile(input, output string, canvasSize int, padding float64) (*Result, error) {
	img, format, err := imaging.Load(input)
	if err != nil {
		return nil, err
	}

	centered, err := imaging.CenterIcon(img, canvasSize, padding)
	if err != nil {
		return nil, err
	}

	size, err := imaging.SaveFormat(centered, output, "png")
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"input":   input,
		"output":  output,
		"size":    canvasSize,
		"padding": padding,
	}).Info("Centered icon")

	return &Result{
		Success: true,
		Input:   inputRef(input, format, img),
		Output:  outputRef(output, centered, size),
		Padding: floatPtr(padding),
	}, nil
}

// RemoveBackgroundFile makes near-white pixels of input transparent and
// writes a PNG.
func (r *Runner) RemoveBackgroundFile(input, output string, threshold int) (*Result, error) {
	img, format, err := imaging.Load(input)
	if err != nil {
		return nil, err
	}

	cleared, stats, err := imaging.RemoveBackground(img, threshold)
	if err != nil {
		return nil, err
	}

	size, err := imaging.SaveFormat(cleared, output, "png")
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"input":       input,
		"threshold":   threshold,
		"transparent": stats.TransparentPixels,
	}).Info("Removed background")

	return &Result{
		Success:            true,
		Input:              inputRef(input, format, img),
		Output:             outputRef(output, cleared, size),
		Threshold:          intPtr(threshold),
		TransparentPixels:  intPtr(stats.TransparentPixels),
		TransparentPercent: floatPtr(stats.TransparentPercent),
	}, nil
}

// ErodeFile erodes the alpha channel of input and writes a PNG.
func (r *Runner) ErodeFile(input, output string, pixels int, method imaging.ErosionMethod) (*Result, error) {
	img, format, err := imaging.Load(input)
	if err != nil {
		return nil, err
	}

	eroded, err := imaging.Erode(img, pixels, method)
	if err != nil {
		return nil, err
	}

	size, err := imaging.SaveFormat(eroded, output, "png")
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"input":  input,
		"pixels": pixels,
		"method": method,
	}).Info("Eroded alpha")

	return &Result{
		Success:       true,
		Input:         inputRef(input, format, img),
		Output:        outputRef(output, eroded, size),
		ErosionPixels: intPtr(pixels),
		ErosionMethod: string(method),
	}, nil
}

// ThresholdBlackFile turns every visible pixel of input black and writes a
// PNG mask.
func (r *Runner) ThresholdBlackFile(input, output string, alphaThreshold int) (*Result, error) {
	img, format, err := imaging.Load(input)
	if err != nil {
		return nil, err
	}

	mask, converted, err := imaging.ThresholdToBlack(img, alphaThreshold)
	if err != nil {
		return nil, err
	}

	size, err := imaging.SaveFormat(mask, output, "png")
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"input":     input,
		"threshold": alphaThreshold,
		"converted": converted,
	}).Info("Converted to black mask")

	return &Result{
		Success:         true,
		Input:           inputRef(input, format, img),
		Output:          outputRef(output, mask, size),
		AlphaThreshold:  intPtr(alphaThreshold),
		PixelsConverted: intPtr(converted),
		Rationale:       "Pure black mask for clean game engine tinting",
	}, nil
}
