package pipeline

import (
	"image"

	"github.com/ironsheep/asset-kit/internal/config"
	"github.com/ironsheep/asset-kit/internal/imaging"
)

// FileRef describes one side (input or output) of an operation.
type FileRef struct {
	Path   string `json:"path"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Format string `json:"format,omitempty"`
	Size   int64  `json:"size,omitempty"`
}

// Result is the JSON object printed for every operation. Only the fields
// relevant to the operation are set.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Path    string `json:"path,omitempty"`

	Input  *FileRef `json:"input,omitempty"`
	Output *FileRef `json:"output,omitempty"`

	// Resize and center
	Strategy string   `json:"strategy,omitempty"`
	Padding  *float64 `json:"padding,omitempty"`

	// Background removal
	Threshold          *int     `json:"threshold,omitempty"`
	TransparentPixels  *int     `json:"transparentPixels,omitempty"`
	TransparentPercent *float64 `json:"transparentPercent,omitempty"`

	// Erosion
	ErosionPixels *int   `json:"erosionPixels,omitempty"`
	ErosionMethod string `json:"erosionMethod,omitempty"`

	// Threshold to black
	AlphaThreshold  *int   `json:"alphaThreshold,omitempty"`
	PixelsConverted *int   `json:"pixelsConverted,omitempty"`
	Rationale       string `json:"rationale,omitempty"`

	// Post-processing
	AssetType        string   `json:"assetType,omitempty"`
	Format           string   `json:"format,omitempty"`
	SizeTarget       string   `json:"sizeTarget,omitempty"`
	Quality          int      `json:"quality,omitempty"`
	ReductionPercent *float64 `json:"reductionPercent,omitempty"`
	Steps            []string `json:"steps,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// Failure builds the per-item error result used by Batch.
func Failure(path string, err error) *Result {
	return &Result{Success: false, Error: err.Error(), Path: path}
}

func inputRef(path, format string, img image.Image) *FileRef {
	b := img.Bounds()
	return &FileRef{Path: path, Width: b.Dx(), Height: b.Dy(), Format: format}
}

func outputRef(path string, img image.Image, size int64) *FileRef {
	b := img.Bounds()
	return &FileRef{Path: path, Width: b.Dx(), Height: b.Dy(), Size: size}
}

// Runner executes file-level operations: load, transform, save, report.
type Runner struct {
	encodeOpts []imaging.EncodeOption
}

// New returns a Runner whose default lossy qualities come from settings.
// A nil settings uses the codec defaults.
func New(settings *config.Settings) *Runner {
	r := &Runner{}
	if settings != nil {
		r.encodeOpts = []imaging.EncodeOption{
			imaging.JPEGQuality(settings.JPEGQuality),
			imaging.WebPQuality(settings.WebPQuality),
		}
	}
	return r
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
