package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			img.SetNRGBA(x, y, color.NRGBA{200, 40, 40, 255})
		}
	}

	path := filepath.Join(dir, "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestRun_Success(t *testing.T) {
	in := writeTestPNG(t, t.TempDir())

	var out bytes.Buffer
	if code := run([]string{"info", in}, &out); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if result["success"] != true || result["width"].(float64) != 6 {
		t.Errorf("unexpected result: %v", result)
	}
}

func TestRun_DefaultCommandResizes(t *testing.T) {
	dir := t.TempDir()
	in := writeTestPNG(t, dir)
	outPath := filepath.Join(dir, "out.png")

	var out bytes.Buffer
	if code := run([]string{in, outPath, "3", "3", "stretch"}, &out); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"missing input", []string{"info", filepath.Join(dir, "missing.png")}},
		{"unknown flag", []string{"info", "--bogus", "x.png"}},
		{"bad strategy", []string{"resize", "a.png", "b.png", "4", "4", "squash"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if code := run(tt.args, &out); code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if strings.TrimSpace(out.String()) != "" {
				t.Errorf("nothing should be printed on stdout, got %q", out.String())
			}
		})
	}
}
