package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/orbsmith/pkg/pipeline"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    [3]uint8
		wantErr bool
	}{
		{"#000000", [3]uint8{0, 0, 0}, false},
		{"ff8000", [3]uint8{255, 128, 0}, false},
		{"#A0b0C0", [3]uint8{0xa0, 0xb0, 0xc0}, false},
		{"", [3]uint8{}, true},
		{"#fff", [3]uint8{}, true},
		{"#gg0000", [3]uint8{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if got := FormatColor([3]uint8{255, 128, 0}); got != "#ff8000" {
		t.Errorf("FormatColor = %s", got)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Ring.Width != 20 || cfg.Ring.Color != "#000000" {
		t.Errorf("unexpected ring defaults: %+v", cfg.Ring)
	}
	if !cfg.Output.Backup {
		t.Error("backup should default to true")
	}
	if cfg.Output.Full != "full_health.png" || cfg.Low.Output != "low_health.png" {
		t.Errorf("unexpected output defaults: %+v", cfg.Output)
	}
}

func TestLoadFromFile(t *testing.T) {
	recipe := `
source: orb.png
transforms: [flip-h, rotate-right]
circle:
  x: 120
  y: 100
  radius: 80
ring:
  color: "#ff0000"
  width: 12
medium:
  reference: medium_ref.png
  erase:
    - [10, 12]
    - [20, 22]
output:
  backup: false
`
	path := filepath.Join(t.TempDir(), "recipe.yaml")
	if err := os.WriteFile(path, []byte(recipe), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	// Unset keys keep defaults.
	if cfg.Output.Full != "full_health.png" || cfg.Medium.Output != "medium_health.png" {
		t.Errorf("defaults lost: %+v", cfg)
	}

	oc, err := cfg.ToOrchestratorConfig()
	if err != nil {
		t.Fatalf("ToOrchestratorConfig failed: %v", err)
	}
	if oc.SourcePath != "orb.png" || oc.Backup {
		t.Errorf("unexpected config: %+v", oc)
	}
	if len(oc.Transforms) != 2 || oc.Transforms[0] != pipeline.FlipHorizontal || oc.Transforms[1] != pipeline.RotateRight {
		t.Errorf("unexpected transforms: %v", oc.Transforms)
	}
	if oc.Circle == nil || oc.Circle.CenterX != 120 || oc.Circle.Radius != 80 {
		t.Errorf("unexpected circle: %+v", oc.Circle)
	}
	if oc.Ring.Color != [3]uint8{255, 0, 0} || oc.Ring.Width != 12 {
		t.Errorf("unexpected ring: %+v", oc.Ring)
	}
	if !oc.Medium.Enabled() || len(oc.Medium.Erase) != 2 || oc.Medium.Erase[1].X != 20 {
		t.Errorf("unexpected medium: %+v", oc.Medium)
	}
	if oc.Medium.EraserSize != 15 {
		t.Errorf("eraser size should default to 15, got %d", oc.Medium.EraserSize)
	}
	if oc.Low.Enabled() {
		t.Error("low should be disabled without a reference")
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestToOrchestratorConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"no source", func(c *Config) { c.Source = "" }},
		{"bad transform", func(c *Config) { c.Transforms = []string{"spin"} }},
		{"bad color", func(c *Config) { c.Ring.Color = "red" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.Source = "orb.png"
			tt.modify(&cfg)
			if _, err := cfg.ToOrchestratorConfig(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRingStyle_Normalizes(t *testing.T) {
	cfg := Defaults()
	cfg.Ring.Width = 0
	style, err := cfg.RingStyle()
	if err != nil {
		t.Fatal(err)
	}
	if style.Width != 1 {
		t.Errorf("expected width 1, got %d", style.Width)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Defaults()
	cfg.Source = "orb.png"
	cfg.Circle = &CircleConfig{X: 1, Y: 2, Radius: 3}

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if back.Source != "orb.png" || back.Circle == nil || back.Circle.Radius != 3 {
		t.Errorf("round trip lost data: %+v", back)
	}
}
