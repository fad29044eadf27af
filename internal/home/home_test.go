package home

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("uses explicit path", func(t *testing.T) {
		d, err := New("/tmp/visionocr-test")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Path() != "/tmp/visionocr-test" {
			t.Errorf("expected /tmp/visionocr-test, got %s", d.Path())
		}
	})

	t.Run("defaults to home directory", func(t *testing.T) {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skipf("no home directory: %v", err)
		}

		d, err := New("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Path() != filepath.Join(home, DefaultDirName) {
			t.Errorf("expected %s, got %s", filepath.Join(home, DefaultDirName), d.Path())
		}
	})
}

func TestDirLayout(t *testing.T) {
	d, err := New("/srv/visionocr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := d.ConfigPath(); got != "/srv/visionocr/config.yaml" {
		t.Errorf("unexpected config path %s", got)
	}
	if got := d.HelperScriptPath(); got != "/srv/visionocr/vision_ocr.swift" {
		t.Errorf("unexpected script path %s", got)
	}
	if got := d.HelperBinPath(); got != "/srv/visionocr/.build/vision_ocr" {
		t.Errorf("unexpected binary path %s", got)
	}
}

func TestEnsureExists(t *testing.T) {
	tmpDir := t.TempDir()
	d, err := New(filepath.Join(tmpDir, "nested", "home"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.Exists() {
		t.Error("expected directory to not exist yet")
	}
	if err := d.EnsureExists(); err != nil {
		t.Fatalf("failed to create home: %v", err)
	}
	if !d.Exists() {
		t.Error("expected directory to exist")
	}
	if d.ConfigExists() {
		t.Error("expected no config file yet")
	}
}
