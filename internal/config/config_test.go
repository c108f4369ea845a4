package config

import (
	"os"
	"path/filepath"
	"testing"

	"resistor-scan/internal/band"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Server.MaxUploadBytes != 10<<20 {
		t.Errorf("Server.MaxUploadBytes = %d, want %d", cfg.Server.MaxUploadBytes, 10<<20)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}

	def := band.DefaultParams()
	if cfg.Detection.MaxDimension != def.MaxDimension {
		t.Errorf("Detection.MaxDimension = %d, want %d", cfg.Detection.MaxDimension, def.MaxDimension)
	}
	if cfg.Detection.GaussianKernel != def.GaussianKernel {
		t.Errorf("Detection.GaussianKernel = %d, want %d", cfg.Detection.GaussianKernel, def.GaussianKernel)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("RESISTORSCAN_SERVER_ADDR", ":9999")
	t.Setenv("RESISTORSCAN_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("Server.Addr = %q, want :9999", cfg.Server.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  addr: \":7000\"\ndetection:\n  blur: bilateral\n  max_dimension: 600\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("Server.Addr = %q, want :7000", cfg.Server.Addr)
	}
	if cfg.Detection.Blur != "bilateral" {
		t.Errorf("Detection.Blur = %q, want bilateral", cfg.Detection.Blur)
	}
	if cfg.Detection.MaxDimension != 600 {
		t.Errorf("Detection.MaxDimension = %d, want 600", cfg.Detection.MaxDimension)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestDetectionParamsMapping(t *testing.T) {
	dc := DetectionConfig{
		MaxDimension:        600,
		Blur:                "bilateral",
		GaussianKernel:      5,
		BilateralDiameter:   7,
		BilateralSigmaColor: 60,
		BilateralSigmaSpace: 60,
		UseAdaptive:         true,
		AdaptiveBlockSize:   31,
		AdaptiveConstant:    3,
		MorphKernel:         5,
		MinRegionArea:       80,
	}

	p := dc.Params()
	if p.Blur != band.BlurBilateral {
		t.Errorf("Blur = %v, want BlurBilateral", p.Blur)
	}
	if p.MaxDimension != 600 || p.GaussianKernel != 5 || p.MorphKernel != 5 {
		t.Errorf("params not mapped: %+v", p)
	}
	if !p.UseAdaptiveThreshold || p.AdaptiveBlockSize != 31 || p.AdaptiveConstant != 3 {
		t.Errorf("adaptive settings not mapped: %+v", p)
	}
	if p.MinRegionArea != 80 {
		t.Errorf("MinRegionArea = %d, want 80", p.MinRegionArea)
	}
}
