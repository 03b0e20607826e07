package imaging

import (
	"image"
	"image/color"
	"testing"

	apperrors "github.com/ironsheep/asset-kit/internal/errors"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		want    Strategy
		wantErr bool
	}{
		{"contain-centered", ContainCentered, false},
		{"cover-crop", CoverCrop, false},
		{"stretch", Stretch, false},
		{"contain", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategy(tt.name)
			if tt.wantErr {
				if !apperrors.IsType(err, apperrors.ErrorTypeInvalidArgument) {
					t.Errorf("expected invalid_argument, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseStrategy(%q) = %q, %v", tt.name, got, err)
			}
		})
	}
}

func TestResize_ExactOutputSize(t *testing.T) {
	src := createPatternImage(200, 100)

	for _, s := range Strategies {
		for _, box := range []image.Point{{64, 64}, {300, 50}, {17, 91}} {
			got, err := Resize(src, box.X, box.Y, s)
			if err != nil {
				t.Fatalf("%s %v: %v", s, box, err)
			}
			if b := got.Bounds(); b.Dx() != box.X || b.Dy() != box.Y {
				t.Errorf("%s %v: got %dx%d", s, box, b.Dx(), b.Dy())
			}
		}
	}
}

func TestResize_ContainPreservesAspect(t *testing.T) {
	src := createInMemoryImage(200, 100, color.NRGBA{255, 0, 0, 255})

	got, err := Resize(src, 64, 64, ContainCentered)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	// Fitted content is 64x32, centered vertically with 16 rows above and below
	rows := 0
	for y := 0; y < 64; y++ {
		if alphaAt(got, 32, y) > 0 {
			rows++
		}
	}
	if rows != 32 {
		t.Errorf("content height = %d rows, want 32", rows)
	}
	if alphaAt(got, 32, 15) != 0 || alphaAt(got, 32, 48) != 0 {
		t.Error("padding rows should be transparent")
	}
	if alphaAt(got, 32, 16) != 255 || alphaAt(got, 32, 47) != 255 {
		t.Error("content rows should be opaque")
	}
}

func TestResize_ContainNeverUpscales(t *testing.T) {
	src := createInMemoryImage(10, 10, color.NRGBA{0, 0, 255, 255})

	got, err := Resize(src, 64, 64, ContainCentered)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	opaque := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if alphaAt(got, x, y) > 0 {
				opaque++
			}
		}
	}
	if opaque != 100 {
		t.Errorf("got %d visible pixels, want 100 (no upscaling)", opaque)
	}
	if alphaAt(got, 27, 27) != 255 || alphaAt(got, 26, 26) != 0 {
		t.Error("10x10 content should start at offset 27")
	}
}

func TestResize_ContainOpaqueSourcePadsWhite(t *testing.T) {
	src := createPatternImage(100, 50)

	got, err := Resize(src, 40, 40, ContainCentered)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if c := got.NRGBAAt(0, 0); c != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("padding = %v, want opaque white", c)
	}
}

func TestResize_CoverCropsCenter(t *testing.T) {
	// Left third red, middle third green, right third blue
	src := image.NewNRGBA(image.Rect(0, 0, 300, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 300; x++ {
			switch {
			case x < 100:
				src.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
			case x < 200:
				src.SetNRGBA(x, y, color.NRGBA{0, 255, 0, 255})
			default:
				src.SetNRGBA(x, y, color.NRGBA{0, 0, 255, 255})
			}
		}
	}

	got, err := Resize(src, 50, 50, CoverCrop)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	c := got.NRGBAAt(25, 25)
	if c.G < 200 || c.R > 50 || c.B > 50 {
		t.Errorf("center of cover crop = %v, want green", c)
	}
}

func TestResize_InvalidArguments(t *testing.T) {
	src := createInMemoryImage(10, 10, color.White)

	tests := []struct {
		name     string
		w, h     int
		strategy Strategy
	}{
		{"zero width", 0, 10, ContainCentered},
		{"negative height", 10, -1, CoverCrop},
		{"zero both stretch", 0, 0, Stretch},
		{"unknown strategy", 10, 10, Strategy("squash")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resize(src, tt.w, tt.h, tt.strategy)
			if !apperrors.IsType(err, apperrors.ErrorTypeInvalidArgument) {
				t.Errorf("expected invalid_argument, got %v", err)
			}
		})
	}
}

func TestCenterIcon(t *testing.T) {
	src := createInMemoryImage(100, 50, color.NRGBA{0, 200, 0, 255})

	got, err := CenterIcon(src, 64, 0.1)
	if err != nil {
		t.Fatalf("CenterIcon failed: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("got %dx%d, want 64x64", b.Dx(), b.Dy())
	}

	// maxIcon = int(64*0.8) = 51, so at least 6 columns of padding per side
	for y := 0; y < 64; y++ {
		for x := 0; x < 6; x++ {
			if alphaAt(got, x, y) != 0 || alphaAt(got, 63-x, y) != 0 {
				t.Fatalf("padding column %d not transparent at row %d", x, y)
			}
		}
	}
	if alphaAt(got, 32, 32) != 255 {
		t.Error("center should be opaque")
	}
}

func TestCenterIcon_NeverUpscales(t *testing.T) {
	src := createInMemoryImage(8, 8, color.NRGBA{1, 2, 3, 255})

	got, err := CenterIcon(src, 64, 0)
	if err != nil {
		t.Fatalf("CenterIcon failed: %v", err)
	}
	if alphaAt(got, 28, 28) != 255 || alphaAt(got, 27, 27) != 0 || alphaAt(got, 36, 36) != 0 {
		t.Error("8x8 icon should sit unscaled at offset 28")
	}
}

func TestCenterIcon_InvalidPadding(t *testing.T) {
	src := createInMemoryImage(8, 8, color.White)
	for _, p := range []float64{-0.1, 0.5, 0.9} {
		if _, err := CenterIcon(src, 64, p); !apperrors.IsType(err, apperrors.ErrorTypeInvalidArgument) {
			t.Errorf("padding %v: expected invalid_argument, got %v", p, err)
		}
	}
	if _, err := CenterIcon(src, 0, 0.1); err == nil {
		t.Error("expected error for zero canvas")
	}
}
