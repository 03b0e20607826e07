package cli

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/asset-kit/internal/config"
	apperrors "github.com/ironsheep/asset-kit/internal/errors"
	"github.com/ironsheep/asset-kit/internal/imaging"
	"github.com/ironsheep/asset-kit/internal/logger"
	"github.com/ironsheep/asset-kit/internal/palette"
)

// === Resize Commands ===

// ResizeCmd resizes an image to exact dimensions with a named strategy.
type ResizeCmd struct {
	Input    string `arg:"" help:"Source image."`
	Output   string `arg:"" help:"Destination image. The extension picks the format."`
	Width    int    `arg:"" help:"Target width in pixels."`
	Height   int    `arg:"" help:"Target height in pixels."`
	Strategy string `arg:"" optional:"" default:"contain-centered" help:"contain-centered, cover-crop or stretch."`
}

// Run resizes the input and prints the result.
func (c *ResizeCmd) Run(ctx *Context) error {
	strategy, err := imaging.ParseStrategy(c.Strategy)
	if err != nil {
		return err
	}
	res, err := ctx.Runner.ResizeFile(c.Input, c.Output, c.Width, c.Height, strategy)
	if err != nil {
		return err
	}
	return writeJSON(ctx.Out, res)
}

// CenterCmd centers an icon on a square transparent canvas.
type CenterCmd struct {
	Input   string  `arg:"" help:"Source icon."`
	Output  string  `arg:"" help:"Destination PNG."`
	Size    int     `arg:"" help:"Square canvas size in pixels."`
	Padding float64 `arg:"" optional:"" default:"0.1" help:"Fraction of the canvas left empty on each side."`
}

// Run centers the icon and prints the result.
func (c *CenterCmd) Run(ctx *Context) error {
	res, err := ctx.Runner.CenterFile(c.Input, c.Output, c.Size, c.Padding)
	if err != nil {
		return err
	}
	return writeJSON(ctx.Out, res)
}

// === Transparency Commands ===

// RemoveBgCmd makes near-white background pixels transparent.
type RemoveBgCmd struct {
	Input     string `arg:"" help:"Source image."`
	Output    string `arg:"" help:"Destination PNG."`
	Threshold int    `arg:"" optional:"" default:"240" help:"Channel value at or above which a pixel is background."`
}

// Run strips the background and prints how many pixels turned transparent.
func (c *RemoveBgCmd) Run(ctx *Context) error {
	res, err := ctx.Runner.RemoveBackgroundFile(c.Input, c.Output, c.Threshold)
	if err != nil {
		return err
	}
	return writeJSON(ctx.Out, res)
}

// ErodeCmd pulls the alpha boundary inward to remove light halos.
type ErodeCmd struct {
	Input  string `arg:"" help:"Source image with transparency."`
	Output string `arg:"" help:"Destination PNG."`
	Pixels int    `arg:"" optional:"" default:"1" help:"How far to move the alpha boundary inward."`
	Method string `default:"min-filter" enum:"min-filter,shrink" help:"Erosion method (${enum})."`
}

// Run erodes the alpha channel with the selected method.
func (c *ErodeCmd) Run(ctx *Context) error {
	method, err := imaging.ParseErosionMethod(c.Method)
	if err != nil {
		return err
	}
	res, err := ctx.Runner.ErodeFile(c.Input, c.Output, c.Pixels, method)
	if err != nil {
		return err
	}
	return writeJSON(ctx.Out, res)
}

// ThresholdBlackCmd turns every visible pixel pure black for tintable masks.
type ThresholdBlackCmd struct {
	Input          string `arg:"" help:"Source image with transparency."`
	Output         string `arg:"" help:"Destination PNG."`
	AlphaThreshold int    `arg:"" optional:"" default:"10" help:"Alpha value above which a pixel turns black."`
}

// Run converts the image to a black mask.
func (c *ThresholdBlackCmd) Run(ctx *Context) error {
	res, err := ctx.Runner.ThresholdBlackFile(c.Input, c.Output, c.AlphaThreshold)
	if err != nil {
		return err
	}
	return writeJSON(ctx.Out, res)
}

// === Palette Command ===

// PaletteCmd derives a themed palette from a block image and an accent image.
type PaletteCmd struct {
	Block  string `arg:"" help:"Block texture image (base color)."`
	Accent string `arg:"" help:"Accent image, usually the lock overlay."`
	Theme  string `arg:"" help:"Theme name."`

	Seed          int64  `help:"Sampling seed. 0 seeds from the clock."`
	Base          string `default:"mean" enum:"mean,dominant,kmeans" help:"How the base color is found (${enum})."`
	BlockSamples  int    `default:"100" help:"Pixels sampled from the block image."`
	AccentSamples int    `default:"50" help:"Pixels sampled from the accent image."`
}

type paletteOutput struct {
	Success bool             `json:"success"`
	Palette *palette.Palette `json:"palette"`
	Stats   palette.Stats    `json:"stats"`
}

// Run samples both images and prints the palette with its source stats.
func (c *PaletteCmd) Run(ctx *Context) error {
	base, err := palette.ParseBaseMethod(c.Base)
	if err != nil {
		return err
	}
	if c.BlockSamples <= 0 || c.AccentSamples <= 0 {
		return apperrors.InvalidArgumentf("sample counts must be positive")
	}

	block, _, err := imaging.Load(c.Block)
	if err != nil {
		return err
	}
	accent, _, err := imaging.Load(c.Accent)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.WithFields(logrus.Fields{
		"theme": c.Theme,
		"seed":  seed,
	}).Debug("Extracting palette")

	res, err := palette.Extract(block, accent, c.Theme, palette.Options{
		BlockSamples:  c.BlockSamples,
		AccentSamples: c.AccentSamples,
		Base:          base,
		Rand:          rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return err
	}
	return writeJSON(ctx.Out, paletteOutput{Success: true, Palette: res.Palette, Stats: res.Stats})
}

// === Config-driven Commands ===

// ProcessCmd runs the post-processing pipeline configured for an asset type.
type ProcessCmd struct {
	Input     string `arg:"" help:"Generated image."`
	Output    string `arg:"" help:"Processed output."`
	AssetType string `arg:"" help:"Asset type name from the asset config."`
	Config    string `default:"${config_path}" help:"Asset config file."`
}

// Run processes the input. A missing or invalid asset config falls back to
// PNG output with a 50KB target.
func (c *ProcessCmd) Run(ctx *Context) error {
	cfg, err := config.LoadAssetConfig(c.Config)
	if err != nil {
		// Without a usable config every asset type falls back to PNG / 50KB.
		logger.WithError(err).Warn("Using default output settings")
		cfg = nil
	}
	res, err := ctx.Runner.Process(c.Input, c.Output, c.AssetType, cfg)
	if err != nil {
		return err
	}
	return writeJSON(ctx.Out, res)
}

// BatchCmd resizes every asset listed in an asset config.
type BatchCmd struct {
	Config    string `arg:"" help:"Asset config file."`
	InputDir  string `arg:"" help:"Directory holding the generated assets."`
	OutputDir string `arg:"" help:"Directory for resized assets (may equal the input)."`
}

// Run resizes each configured asset and prints one result per asset name.
func (c *BatchCmd) Run(ctx *Context) error {
	cfg, err := config.LoadAssetConfig(c.Config)
	if err != nil {
		return err
	}
	return writeJSON(ctx.Out, ctx.Runner.Batch(cfg, c.InputDir, c.OutputDir))
}

// === Inspection ===

// InfoCmd prints image metadata.
type InfoCmd struct {
	Input string `arg:"" help:"Image to inspect."`
}

type infoOutput struct {
	Success bool `json:"success"`
	*imaging.ImageInfo
}

// Run inspects the input and prints its metadata.
func (c *InfoCmd) Run(ctx *Context) error {
	info, err := imaging.Inspect(c.Input)
	if err != nil {
		return err
	}
	return writeJSON(ctx.Out, infoOutput{Success: true, ImageInfo: info})
}
