package palette

import (
	"image"
	"math/rand"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	apperrors "github.com/ironsheep/asset-kit/internal/errors"
	"github.com/ironsheep/asset-kit/internal/imaging"
	"github.com/ironsheep/asset-kit/internal/logger"
)

// Version is stamped into every generated palette.
const Version = "1.0.0"

// Default sample counts for the block and accent images.
const (
	DefaultBlockSamples  = 100
	DefaultAccentSamples = 50
	kmeansClusters       = 3
)

// BaseMethod selects how the base (average) color of the block image is found.
type BaseMethod string

const (
	// BaseMean averages the block samples.
	BaseMean BaseMethod = "mean"
	// BaseDominant takes the heaviest color found by dominantcolor.
	BaseDominant BaseMethod = "dominant"
	// BaseKMeans takes the center of the largest k-means cluster.
	BaseKMeans BaseMethod = "kmeans"
)

// ParseBaseMethod converts a method name into a BaseMethod. The empty string
// selects BaseMean.
func ParseBaseMethod(name string) (BaseMethod, error) {
	switch BaseMethod(name) {
	case "":
		return BaseMean, nil
	case BaseMean, BaseDominant, BaseKMeans:
		return BaseMethod(name), nil
	}
	return "", apperrors.InvalidArgumentf("unknown base color method: %s", name)
}

// Options controls sampling for Extract.
type Options struct {
	BlockSamples  int
	AccentSamples int
	Base          BaseMethod
	// Rand is the sampling source. nil seeds a new source from the clock.
	Rand *rand.Rand
}

// DefaultOptions returns the standard sample counts and mean base color.
func DefaultOptions() Options {
	return Options{
		BlockSamples:  DefaultBlockSamples,
		AccentSamples: DefaultAccentSamples,
		Base:          BaseMean,
	}
}

// Palette is the themed color set consumed by the game's 3D scene (Babylon)
// and its HTML overlay (CSS).
type Palette struct {
	Name    string               `json:"name"`
	Version string               `json:"version"`
	Babylon map[string][]float64 `json:"babylon"`
	CSS     map[string]string    `json:"css"`
}

// Stats records the two source colors the palette was derived from.
type Stats struct {
	Average          string  `json:"average"`
	Accent           string  `json:"accent"`
	AccentBrightness float64 `json:"accentBrightness"`
	AccentSaturation float64 `json:"accentSaturation"`
	// AccentHSL is the accent in HSL, for matching hues across themes.
	AccentHSL imaging.HSLColor `json:"accentHsl"`
}

// Result is the outcome of Extract.
type Result struct {
	Palette *Palette `json:"palette"`
	Stats   Stats    `json:"stats"`
}

// Extract samples the block and accent images and derives a named palette.
//
// The block image supplies the base color (mean of samples by default) and
// the accent image supplies its most vivid sample. Every palette role is a
// fixed brightness, desaturation or saturation transform of one of the two.
func Extract(block, accent image.Image, theme string, opts Options) (*Result, error) {
	if opts.BlockSamples == 0 {
		opts.BlockSamples = DefaultBlockSamples
	}
	if opts.AccentSamples == 0 {
		opts.AccentSamples = DefaultAccentSamples
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	blockSamples, err := Sample(block, opts.BlockSamples, rng)
	if err != nil {
		return nil, err
	}
	accentSamples, err := Sample(accent, opts.AccentSamples, rng)
	if err != nil {
		return nil, err
	}

	var avg imaging.RGBColor
	switch opts.Base {
	case "", BaseMean:
		avg = Average(blockSamples)
	case BaseDominant:
		avg = DominantColor(block)
	case BaseKMeans:
		k := kmeansClusters
		if k > len(blockSamples) {
			k = len(blockSamples)
		}
		if avg, err = KMeansColor(blockSamples, k); err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.InvalidArgumentf("unknown base color method: %s", opts.Base)
	}
	vivid := MostVivid(accentSamples)

	logger.WithFields(logrus.Fields{
		"theme":   theme,
		"average": avg.Hex(),
		"accent":  vivid.Hex(),
		"base":    string(opts.Base),
	}).Debug("Sampled palette source colors")

	return &Result{
		Palette: Build(avg, vivid, theme),
		Stats: Stats{
			Average:          avg.Hex(),
			Accent:           vivid.Hex(),
			AccentBrightness: vivid.Brightness(),
			AccentSaturation: vivid.Saturation(),
			AccentHSL:        vivid.HSL(),
		},
	}, nil
}

// Build derives the full palette from a base color and an accent color.
func Build(avg, accent imaging.RGBColor, theme string) *Palette {
	white := imaging.RGBColor{R: 255, G: 255, B: 255}
	nearBlack := imaging.RGBColor{R: 13, G: 13, B: 13}
	muted := avg.Desaturate(0.5)

	return &Palette{
		Name:    DisplayName(theme),
		Version: Version,
		Babylon: map[string][]float64{
			"blockDefault":     white.Normalized(),
			"arrowColor":       avg.AdjustBrightness(0.8).Normalized(),
			"keyArrowColor":    nearBlack.Normalized(),
			"lockedArrowColor": muted.AdjustBrightness(0.6).Normalized(),
			"background":       append(avg.AdjustBrightness(0.3).Normalized(), 1.0),
			"keyColor":         accent.Normalized(),
			"keyEmissive":      accent.BoostSaturation(1.5).Normalized(),
			"lockedColor":      muted.Normalized(),
		},
		CSS: map[string]string{
			"headerBg":            avg.Hex(),
			"currencyContainer":   avg.AdjustBrightness(0.7).Hex(),
			"currencyPill":        avg.AdjustBrightness(0.5).Hex(),
			"bgBlue":              avg.Hex(),
			"darkBlue":            avg.AdjustBrightness(0.6).Hex(),
			"accent":              accent.Hex(),
			"accentDark":          accent.AdjustBrightness(0.7).Hex(),
			"buttonPrimary":       accent.AdjustBrightness(0.9).Hex(),
			"buttonPrimaryDark":   accent.AdjustBrightness(0.7).Hex(),
			"buttonSecondary":     avg.Hex(),
			"buttonSecondaryDark": avg.AdjustBrightness(0.7).Hex(),
		},
	}
}

// DisplayName upper-cases the first letter of theme and lower-cases the rest.
func DisplayName(theme string) string {
	r, size := utf8.DecodeRuneInString(theme)
	if r == utf8.RuneError {
		return theme
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(theme[size:])
}
