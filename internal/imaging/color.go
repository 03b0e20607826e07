package imaging

import (
	"image"
	"image/color"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorAt returns the 8-bit RGB color of the pixel at (x, y), ignoring alpha.
// Coordinates are relative to the image origin, not its bounds minimum.
// Non-premultiplied images keep the color stored under transparent pixels.
func ColorAt(img image.Image, x, y int) RGBColor {
	b := img.Bounds()
	c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
	return RGBColor{R: c.R, G: c.G, B: c.B}
}

// Colorful converts c to a go-colorful color with components in [0, 1].
func (c RGBColor) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the lowercase "#rrggbb" form of c.
func (c RGBColor) Hex() string {
	return c.Colorful().Hex()
}

// Normalized returns c as a [r, g, b] triple in [0, 1].
func (c RGBColor) Normalized() []float64 {
	col := c.Colorful()
	return []float64{col.R, col.G, col.B}
}

// Brightness is the mean of the three channels (0-255).
func (c RGBColor) Brightness() float64 {
	return (float64(c.R) + float64(c.G) + float64(c.B)) / 3
}

// Saturation is (max-min)/max in [0, 1], or 0 for black.
func (c RGBColor) Saturation() float64 {
	hi, lo := c.maxMin()
	if hi == 0 {
		return 0
	}
	return float64(hi-lo) / float64(hi)
}

// Vividness scores a color as 50% brightness plus 50% saturation scaled to 0-255.
func (c RGBColor) Vividness() float64 {
	return c.Brightness()*0.5 + c.Saturation()*255*0.5
}

// AdjustBrightness multiplies every channel by factor, rounding and clamping
// to [0, 255].
func (c RGBColor) AdjustBrightness(factor float64) RGBColor {
	return RGBColor{
		R: clampChannel(float64(c.R) * factor),
		G: clampChannel(float64(c.G) * factor),
		B: clampChannel(float64(c.B) * factor),
	}
}

// Desaturate blends each channel toward the channel mean by amount
// (0 = unchanged, 1 = fully gray).
func (c RGBColor) Desaturate(amount float64) RGBColor {
	gray := c.Brightness()
	blend := func(v uint8) uint8 {
		return clampChannel(float64(v) + (gray-float64(v))*amount)
	}
	return RGBColor{R: blend(c.R), G: blend(c.G), B: blend(c.B)}
}

// BoostSaturation pushes each channel away from the channel mean by factor,
// clamping to [0, 255]. Grays (max == min) are returned unchanged.
func (c RGBColor) BoostSaturation(factor float64) RGBColor {
	hi, lo := c.maxMin()
	if hi == lo {
		return c
	}
	gray := c.Brightness()
	push := func(v uint8) uint8 {
		return clampChannel(gray + (float64(v)-gray)*factor)
	}
	return RGBColor{R: push(c.R), G: push(c.G), B: push(c.B)}
}

// HSL converts c to HSL color space, truncating each component to an integer.
func (c RGBColor) HSL() HSLColor {
	h, s, l := c.Colorful().Hsl()
	return HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)}
}

func (c RGBColor) maxMin() (uint8, uint8) {
	hi, lo := c.R, c.R
	for _, v := range []uint8{c.G, c.B} {
		if v > hi {
			hi = v
		}
		if v < lo {
			lo = v
		}
	}
	return hi, lo
}

// clampChannel rounds half away from zero and clamps to [0, 255].
func clampChannel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Hex        string   `json:"hex"`        // Hex color "#rrggbb" (quantized)
	Percentage float64  `json:"percentage"` // Percentage of counted pixels (0-100)
	RGB        RGBColor `json:"rgb"`        // RGB components (quantized)
}

// TopColors returns up to count of the most common colors in img, most
// common first. Fully transparent pixels are skipped.
//
// # Color Quantization
//
// To group similar colors, each component is quantized down to a multiple of
// 16 before counting:
//
//	quantized = (original / 16) * 16
func TopColors(img image.Image, count int) []ColorFrequency {
	bounds := img.Bounds()
	counts := make(map[RGBColor]int)
	total := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			// Undo premultiplication before quantizing
			r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
			key := RGBColor{
				R: uint8((r >> 8) / 16 * 16),
				G: uint8((g >> 8) / 16 * 16),
				B: uint8((b >> 8) / 16 * 16),
			}
			counts[key]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: float64(n) / float64(total) * 100,
			RGB:        c,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if count >= 0 && len(colors) > count {
		colors = colors[:count]
	}
	return colors
}
