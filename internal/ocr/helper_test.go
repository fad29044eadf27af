package ocr

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLocatorCommand(t *testing.T) {
	t.Run("prefers executable binary", func(t *testing.T) {
		tmpDir := t.TempDir()
		bin := filepath.Join(tmpDir, "vision_ocr")
		if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatalf("failed to write binary: %v", err)
		}

		loc := Locator{ScriptPath: filepath.Join(tmpDir, "vision_ocr.swift"), BinPath: bin}
		cmd, err := loc.Command()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(cmd, []string{bin}) {
			t.Errorf("expected [%s], got %v", bin, cmd)
		}
	})

	t.Run("ignores non-executable binary", func(t *testing.T) {
		tmpDir := t.TempDir()
		bin := filepath.Join(tmpDir, "vision_ocr")
		if err := os.WriteFile(bin, []byte("stale"), 0o644); err != nil {
			t.Fatalf("failed to write binary: %v", err)
		}
		script := filepath.Join(tmpDir, "vision_ocr.swift")
		if err := os.WriteFile(script, []byte("// helper"), 0o644); err != nil {
			t.Fatalf("failed to write script: %v", err)
		}

		loc := Locator{ScriptPath: script, BinPath: bin}
		cmd, err := loc.Command()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"xcrun", "swift", script}
		if !reflect.DeepEqual(cmd, want) {
			t.Errorf("expected %v, got %v", want, cmd)
		}
	})

	t.Run("falls back to script with custom runner", func(t *testing.T) {
		tmpDir := t.TempDir()
		script := filepath.Join(tmpDir, "vision_ocr.swift")
		if err := os.WriteFile(script, []byte("// helper"), 0o644); err != nil {
			t.Fatalf("failed to write script: %v", err)
		}

		loc := Locator{
			ScriptPath: script,
			BinPath:    filepath.Join(tmpDir, "missing"),
			Runner:     []string{"swift"},
		}
		cmd, err := loc.Command()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"swift", script}
		if !reflect.DeepEqual(cmd, want) {
			t.Errorf("expected %v, got %v", want, cmd)
		}
	})

	t.Run("neither binary nor script", func(t *testing.T) {
		tmpDir := t.TempDir()
		loc := Locator{
			ScriptPath: filepath.Join(tmpDir, "vision_ocr.swift"),
			BinPath:    filepath.Join(tmpDir, "vision_ocr"),
		}

		_, err := loc.Command()
		if !errors.Is(err, ErrHelperMissing) {
			t.Errorf("expected ErrHelperMissing, got %v", err)
		}
	})
}
