package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/asset-kit/internal/config"
	"github.com/ironsheep/asset-kit/internal/imaging"
	"github.com/ironsheep/asset-kit/internal/logger"
)

// StrategyFor infers the resize strategy of an asset type.
//
// Textures and backgrounds (by filename) are cover-cropped, everything else
// is contain-centered. A postProcessing step naming either strategy
// overrides the inference, with later steps winning.
func StrategyFor(at config.AssetType) imaging.Strategy {
	strategy := imaging.ContainCentered
	if strings.Contains(at.Filename, "texture") || strings.Contains(at.Filename, "background") {
		strategy = imaging.CoverCrop
	}
	for _, step := range at.PostProcessing {
		if strings.Contains(step, string(imaging.ContainCentered)) {
			strategy = imaging.ContainCentered
		} else if strings.Contains(step, string(imaging.CoverCrop)) {
			strategy = imaging.CoverCrop
		}
	}
	return strategy
}

// Batch resizes every asset named in cfg from inputDir into outputDir, keyed
// by asset type. Failures are recorded per asset and never stop the batch.
func (r *Runner) Batch(cfg *config.AssetConfig, inputDir, outputDir string) map[string]*Result {
	results := make(map[string]*Result, len(cfg.AssetTypes))

	for _, name := range cfg.Names() {
		at := cfg.AssetTypes[name]
		input := filepath.Join(inputDir, at.Filename)
		output := filepath.Join(outputDir, at.Filename)

		if _, err := os.Stat(input); err != nil {
			results[name] = &Result{Success: false, Error: "File not found", Path: input}
			logger.WithField("assetType", name).Warn("Batch input not found")
			continue
		}

		strategy := StrategyFor(at)
		res, err := r.ResizeFile(input, output, at.Dimensions.Width, at.Dimensions.Height, strategy)
		if err != nil {
			results[name] = Failure(input, err)
			logger.WithFields(logrus.Fields{
				"assetType": name,
				"error":     err,
			}).Warn("Batch resize failed")
			continue
		}
		results[name] = res
	}
	return results
}
