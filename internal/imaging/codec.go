package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"

	apperrors "github.com/ironsheep/asset-kit/internal/errors"
)

// DefaultQuality is the lossy quality used for JPEG and WebP output.
const DefaultQuality = 85

type encodeConfig struct {
	jpegQuality int
	webpQuality int
}

// EncodeOption adjusts how Save encodes its output.
type EncodeOption func(*encodeConfig)

// JPEGQuality sets the JPEG quality (1-100). Out-of-range values are ignored.
func JPEGQuality(q int) EncodeOption {
	return func(c *encodeConfig) {
		if q >= 1 && q <= 100 {
			c.jpegQuality = q
		}
	}
}

// WebPQuality sets the WebP quality (1-100). Out-of-range values are ignored.
func WebPQuality(q int) EncodeOption {
	return func(c *encodeConfig) {
		if q >= 1 && q <= 100 {
			c.webpQuality = q
		}
	}
}

// EncoderFor picks an encoder from the destination file extension. See
// EncoderForFormat for the mapping.
func EncoderFor(path string, opts ...EncodeOption) imgio.Encoder {
	return EncoderForFormat(strings.TrimPrefix(filepath.Ext(path), "."), opts...)
}

// EncoderForFormat picks an encoder by format name, case-insensitively:
//   - jpg/jpeg: transparency flattened onto white, then JPEG
//   - png: lossless with best compression
//   - webp: lossy WebP
//   - gif/bmp/tif/tiff: the imaging package's encoder for that format
//   - anything else: PNG with default settings
func EncoderForFormat(format string, opts ...EncodeOption) imgio.Encoder {
	cfg := encodeConfig{jpegQuality: DefaultQuality, webpQuality: DefaultQuality}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch ext := "." + strings.ToLower(format); ext {
	case ".jpg", ".jpeg":
		jpegEncode := imgio.JPEGEncoder(cfg.jpegQuality)
		return func(w io.Writer, img image.Image) error {
			return jpegEncode(w, FlattenOnWhite(img))
		}
	case ".png":
		return func(w io.Writer, img image.Image) error {
			return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
		}
	case ".webp":
		quality := float32(cfg.webpQuality)
		return func(w io.Writer, img image.Image) error {
			options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, quality)
			if err != nil {
				return err
			}
			return webp.Encode(w, img, options)
		}
	case ".gif", ".bmp", ".tif", ".tiff":
		f, _ := imaging.FormatFromExtension(ext)
		return func(w io.Writer, img image.Image) error {
			return imaging.Encode(w, img, f)
		}
	default:
		return imgio.PNGEncoder()
	}
}

// Save encodes img to path using EncoderFor and returns the written size in bytes.
func Save(img image.Image, path string, opts ...EncodeOption) (int64, error) {
	return save(img, path, EncoderFor(path, opts...))
}

// SaveFormat is Save with the format named explicitly instead of taken from
// the extension of path.
func SaveFormat(img image.Image, path, format string, opts ...EncodeOption) (int64, error) {
	return save(img, path, EncoderForFormat(format, opts...))
}

func save(img image.Image, path string, enc imgio.Encoder) (int64, error) {
	if err := imgio.Save(path, img, enc); err != nil {
		return 0, apperrors.NewEncodeError(fmt.Sprintf("failed to write image: %s", path), err)
	}
	size, err := FileSize(path)
	if err != nil {
		return 0, apperrors.NewEncodeError(fmt.Sprintf("failed to stat output: %s", path), err)
	}
	return size, nil
}

// FlattenOnWhite composites img over an opaque white canvas of the same size.
// Images without transparency are returned unchanged.
func FlattenOnWhite(img image.Image) image.Image {
	if !HasAlpha(img) {
		return img
	}
	b := img.Bounds()
	white := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(white, img, image.Pt(0, 0), 1.0)
}
