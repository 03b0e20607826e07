package palette

import (
	"fmt"
	"image"
	"math"
	"math/rand"

	"github.com/cenkalti/dominantcolor"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"gonum.org/v1/gonum/stat"

	apperrors "github.com/ironsheep/asset-kit/internal/errors"
	"github.com/ironsheep/asset-kit/internal/imaging"
)

// Sample draws n pixels from img uniformly at random, with replacement.
// Alpha is ignored. The caller owns rng so runs can be reproduced with a
// fixed seed.
func Sample(img image.Image, n int, rng *rand.Rand) ([]imaging.RGBColor, error) {
	if n <= 0 {
		return nil, apperrors.InvalidArgumentf("sample count must be positive, got %d", n)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, apperrors.InvalidArgumentf("cannot sample an empty %dx%d image", w, h)
	}

	samples := make([]imaging.RGBColor, n)
	for i := range samples {
		p := rng.Intn(w * h)
		samples[i] = imaging.ColorAt(img, p%w, p/w)
	}
	return samples, nil
}

// Average returns the per-channel mean of samples, rounded to the nearest
// integer. An empty slice averages to black.
func Average(samples []imaging.RGBColor) imaging.RGBColor {
	if len(samples) == 0 {
		return imaging.RGBColor{}
	}
	rs := make([]float64, len(samples))
	gs := make([]float64, len(samples))
	bs := make([]float64, len(samples))
	for i, s := range samples {
		rs[i], gs[i], bs[i] = float64(s.R), float64(s.G), float64(s.B)
	}
	return imaging.RGBColor{
		R: uint8(math.Round(stat.Mean(rs, nil))),
		G: uint8(math.Round(stat.Mean(gs, nil))),
		B: uint8(math.Round(stat.Mean(bs, nil))),
	}
}

// MostVivid returns the sample with the highest Vividness score. Ties keep
// the earliest sample. An empty slice returns black.
func MostVivid(samples []imaging.RGBColor) imaging.RGBColor {
	if len(samples) == 0 {
		return imaging.RGBColor{}
	}
	best := samples[0]
	bestScore := best.Vividness()
	for _, c := range samples[1:] {
		if score := c.Vividness(); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// DominantColor returns the heaviest color found by dominantcolor in img.
func DominantColor(img image.Image) imaging.RGBColor {
	candidates := dominantcolor.FindWeight(img, 8)
	if len(candidates) == 0 {
		return imaging.RGBColor{R: 128, G: 128, B: 128}
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Weight > best.Weight {
			best = c
		}
	}
	return imaging.RGBColor{R: best.RGBA.R, G: best.RGBA.G, B: best.RGBA.B}
}

// KMeansColor clusters samples into k groups and returns the center of the
// most populated cluster. k must be between 1 and len(samples).
func KMeansColor(samples []imaging.RGBColor, k int) (imaging.RGBColor, error) {
	if len(samples) == 0 {
		return imaging.RGBColor{}, apperrors.InvalidArgumentf("no samples to cluster")
	}
	if k < 1 {
		return imaging.RGBColor{}, apperrors.InvalidArgumentf("cluster count must be positive, got %d", k)
	}

	dataset := make(clusters.Observations, 0, len(samples))
	for _, s := range samples {
		dataset = append(dataset, clusters.Coordinates{
			float64(s.R) / 255.0,
			float64(s.G) / 255.0,
			float64(s.B) / 255.0,
		})
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil {
		return imaging.RGBColor{}, apperrors.NewInvalidArgumentError(
			fmt.Sprintf("k-means with %d clusters over %d samples failed", k, len(samples)), err)
	}
	if len(cc) == 0 {
		return Average(samples), nil
	}

	largest := cc[0]
	for _, c := range cc[1:] {
		if len(c.Observations) > len(largest.Observations) {
			largest = c
		}
	}
	if len(largest.Center) < 3 {
		return Average(samples), nil
	}
	unit := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return imaging.RGBColor{
		R: unit(largest.Center[0]),
		G: unit(largest.Center[1]),
		B: unit(largest.Center[2]),
	}, nil
}
