package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	apperrors "github.com/ironsheep/asset-kit/internal/errors"
)

// Load opens and fully decodes an image file.
//
// Parameters:
//   - path: Absolute or relative file path. Supported formats are PNG, JPEG,
//     GIF, WebP, BMP and TIFF.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the format
//     and color model (e.g., *image.NRGBA, *image.RGBA, *image.YCbCr).
//   - string: The format name reported by the decoder ("png", "jpeg", ...).
//   - error: A not_found error if the file does not exist, a decode error if
//     it cannot be read or is not a supported image.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", apperrors.NewNotFoundError(fmt.Sprintf("input file not found: %s", path), err)
		}
		return nil, "", apperrors.NewDecodeError(fmt.Sprintf("failed to open image: %s", path), err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", apperrors.NewDecodeError(fmt.Sprintf("failed to decode image: %s", path), err)
	}
	return img, format, nil
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Path is the file that was inspected.
	Path string `json:"path"`

	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format name reported by the decoder, e.g. "png" or "jpeg".
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image carries transparency information.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`

	// TopColors lists the most common visible colors, most common first.
	TopColors []ColorFrequency `json:"top_colors"`
}

// InfoTopColors is how many colors Inspect reports.
const InfoTopColors = 5

// Inspect loads an image and returns its metadata.
//
// # Color Depth Detection
//
// Color depth is determined by the Go image type:
//   - *image.RGBA64, *image.NRGBA64, *image.Gray16 -> "16-bit"
//   - All other types -> "8-bit"
//
// TopColors holds up to InfoTopColors entries from TopColors.
func Inspect(path string) (*ImageInfo, error) {
	img, format, err := Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.NewDecodeError("failed to stat file", err)
	}

	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16:
		colorDepth = "16-bit"
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Path:          path,
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorDepth:    colorDepth,
		HasAlpha:      HasAlpha(img),
		FileSizeBytes: stat.Size(),
		TopColors:     TopColors(img, InfoTopColors),
	}, nil
}

// HasAlpha reports whether img can carry transparency.
//
// Non-premultiplied types always count. The PNG decoder returns *image.RGBA
// for opaque truecolor files, so premultiplied types count only when some
// pixel is not fully opaque. Paletted images count when the palette has a
// translucent entry.
func HasAlpha(img image.Image) bool {
	switch m := img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.Alpha, *image.Alpha16:
		return true
	case *image.RGBA:
		return !m.Opaque()
	case *image.RGBA64:
		return !m.Opaque()
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// FileSize returns the size in bytes of the file at path.
func FileSize(path string) (int64, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return stat.Size(), nil
}
