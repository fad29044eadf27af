package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !reflect.DeepEqual(cfg.Defaults.Languages, []string{"ja-JP", "en-US"}) {
		t.Errorf("expected default language pair, got %v", cfg.Defaults.Languages)
	}
	if cfg.Defaults.RecognitionLevel != "accurate" {
		t.Errorf("expected accurate, got %s", cfg.Defaults.RecognitionLevel)
	}
	if !cfg.Defaults.LanguageCorrection || !cfg.Defaults.SortReadingOrder {
		t.Error("expected correction and sort flags on by default")
	}
	if cfg.Defaults.MinConfidence != 0.0 {
		t.Errorf("expected min confidence 0.0, got %v", cfg.Defaults.MinConfidence)
	}
	if !reflect.DeepEqual(cfg.Helper.Runner, []string{"xcrun", "swift"}) {
		t.Errorf("expected xcrun swift runner, got %v", cfg.Helper.Runner)
	}
	if !reflect.DeepEqual(cfg.Helper.Compiler, []string{"xcrun", "swiftc", "-O"}) {
		t.Errorf("expected xcrun swiftc -O compiler, got %v", cfg.Helper.Compiler)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("loads from config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		configContent := `
helper:
  script: /opt/vision/vision_ocr.swift
defaults:
  recognition_level: fast
  languages:
    - en-US
log_level: debug
`
		if err := os.WriteFile(configFile, []byte(configContent), 0o644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		mgr, err := NewManager(configFile)
		if err != nil {
			t.Fatalf("failed to create manager: %v", err)
		}

		cfg := mgr.Get()
		if cfg.Helper.Script != "/opt/vision/vision_ocr.swift" {
			t.Errorf("expected script path from file, got %s", cfg.Helper.Script)
		}
		if cfg.Defaults.RecognitionLevel != "fast" {
			t.Errorf("expected fast, got %s", cfg.Defaults.RecognitionLevel)
		}
		if !reflect.DeepEqual(cfg.Defaults.Languages, []string{"en-US"}) {
			t.Errorf("expected [en-US], got %v", cfg.Defaults.Languages)
		}
	})
}

func TestWriteDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("failed to write default config: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# visionocr configuration") {
		t.Error("expected commented header")
	}
	for _, want := range []string{"helper:", "defaults:", "recognition_level: accurate", "ja-JP"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in written config:\n%s", want, content)
		}
	}
}
