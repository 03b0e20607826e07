package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/asset-kit/internal/config"
	apperrors "github.com/ironsheep/asset-kit/internal/errors"
	"github.com/ironsheep/asset-kit/internal/pipeline"
)

// AppName is the binary name shown in usage output.
const AppName = "asset-kit"

const description = `Post-processing utilities for generated game assets.

Every command reads its inputs, writes its output file and prints a JSON
result on stdout. Logs go to stderr.`

// CLI is the kong command tree. Resize is the default command, so
// "asset-kit in.png out.png 256 256" works without naming it.
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Print version information and quit."`

	Resize         ResizeCmd         `cmd:"" default:"withargs" help:"Resize an image to exact dimensions."`
	Center         CenterCmd         `cmd:"" help:"Center an icon on a square transparent canvas."`
	RemoveBg       RemoveBgCmd       `cmd:"" name:"remove-bg" aliases:"remove-white" help:"Make near-white pixels transparent."`
	Erode          ErodeCmd          `cmd:"" help:"Erode the alpha channel to remove halos."`
	ThresholdBlack ThresholdBlackCmd `cmd:"" name:"threshold-black" help:"Turn every visible pixel pure black."`
	Palette        PaletteCmd        `cmd:"" help:"Extract a themed color palette from two images."`
	Process        ProcessCmd        `cmd:"" help:"Run the post-processing pipeline for an asset type."`
	Batch          BatchCmd          `cmd:"" help:"Resize every asset named in an asset config."`
	Info           InfoCmd           `cmd:"" help:"Print image metadata."`
}

// Context is bound into every command's Run method.
type Context struct {
	Out      io.Writer
	Settings *config.Settings
	Runner   *pipeline.Runner
}

// NewContext returns a Context writing results to out.
func NewContext(out io.Writer, settings *config.Settings) *Context {
	if settings == nil {
		settings = config.LoadFromEnv()
	}
	return &Context{
		Out:      out,
		Settings: settings,
		Runner:   pipeline.New(settings),
	}
}

// NewParser builds the kong parser for root. The version and config_path
// variables are interpolated into help and defaults.
func NewParser(root *CLI, version string, settings *config.Settings, options ...kong.Option) (*kong.Kong, error) {
	if settings == nil {
		settings = config.LoadFromEnv()
	}
	opts := []kong.Option{
		kong.Name(AppName),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Vars{
			"version":     version,
			"config_path": settings.AssetConfigPath,
		},
	}
	return kong.New(root, append(opts, options...)...)
}

// Execute parses args and runs the selected command.
func Execute(parser *kong.Kong, args []string, ctx *Context) error {
	kctx, err := parser.Parse(args)
	if err != nil {
		return apperrors.NewInvalidArgumentError("invalid command line", err)
	}
	return kctx.Run(ctx)
}

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperrors.NewEncodeError("failed to encode result", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
