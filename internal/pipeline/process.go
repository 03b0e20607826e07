package pipeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/asset-kit/internal/config"
	"github.com/ironsheep/asset-kit/internal/imaging"
	"github.com/ironsheep/asset-kit/internal/logger"
)

// JPEG qualities used by Process. The lower one is picked when the input is
// already over the size target.
const (
	QualityNormal     = 85
	QualityAggressive = 70
)

// Process runs the post-processing pipeline for one generated asset.
//
// The asset type's output format decides the path:
//   - PNG: background removal at the default threshold, one pixel of alpha
//     erosion, then PNG with best compression.
//   - anything else: JPEG with transparency flattened onto white, at quality
//     70 when the input already exceeds the size target and 85 otherwise.
//
// A nil cfg or unknown asset type means PNG with a 50KB target. An output
// larger than the target is reported as a warning, not an error.
func (r *Runner) Process(input, output, assetType string, cfg *config.AssetConfig) (*Result, error) {
	outCfg := cfg.EffectiveOutput(assetType)
	target, err := outCfg.SizeTarget.Bytes()
	if err != nil {
		return nil, err
	}

	img, format, err := imaging.Load(input)
	if err != nil {
		return nil, err
	}
	inputSize, err := imaging.FileSize(input)
	if err != nil {
		return nil, err
	}

	log := logger.WithFields(logrus.Fields{
		"assetType": assetType,
		"format":    outCfg.Format,
		"target":    string(outCfg.SizeTarget),
	})

	res := &Result{
		Success:    true,
		Input:      inputRef(input, format, img),
		AssetType:  assetType,
		Format:     strings.ToUpper(outCfg.Format),
		SizeTarget: string(outCfg.SizeTarget),
	}
	res.Input.Size = inputSize

	var size int64
	if strings.EqualFold(outCfg.Format, "PNG") {
		cleared, stats, err := imaging.RemoveBackground(img, imaging.DefaultBackgroundThreshold)
		if err != nil {
			return nil, err
		}
		eroded, err := imaging.ErodeAlpha(cleared, 1)
		if err != nil {
			return nil, err
		}
		if size, err = imaging.SaveFormat(eroded, output, "png"); err != nil {
			return nil, err
		}
		log.WithField("transparentPercent", stats.TransparentPercent).Info("Processed transparent asset")

		res.Output = outputRef(output, eroded, size)
		res.TransparentPercent = floatPtr(stats.TransparentPercent)
		res.Steps = []string{"remove-background", "erode-alpha", "png-optimize"}
	} else {
		quality := QualityNormal
		if target > 0 && inputSize > target {
			quality = QualityAggressive
			log.WithField("inputSize", inputSize).Info("Input exceeds size target, using aggressive compression")
		}
		if size, err = imaging.SaveFormat(img, output, "jpeg", imaging.JPEGQuality(quality)); err != nil {
			return nil, err
		}

		res.Output = outputRef(output, img, size)
		res.Quality = quality
		res.Steps = []string{"flatten", "jpeg-compress"}
	}

	if inputSize > 0 {
		res.ReductionPercent = floatPtr(math.Round((1 - float64(size)/float64(inputSize)) * 100))
	}
	if target > 0 && size > target {
		msg := fmt.Sprintf("output size %dKB exceeds target %s", int(math.Round(float64(size)/1024)), outCfg.SizeTarget)
		res.Warnings = append(res.Warnings, msg)
		log.Warn(msg)
	}
	return res, nil
}
