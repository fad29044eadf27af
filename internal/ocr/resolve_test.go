package ocr

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"testing"
)

func writeImage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("not really an image"), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestResolveImagePath(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("resolves existing image", func(t *testing.T) {
		path := writeImage(t, tmpDir, "photo.png")

		resolved, err := ResolveImagePath(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !filepath.IsAbs(resolved) {
			t.Errorf("expected absolute path, got %s", resolved)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		path := writeImage(t, tmpDir, "stable.jpg")

		first, err := ResolveImagePath(path)
		if err != nil {
			t.Fatalf("first resolve failed: %v", err)
		}
		second, err := ResolveImagePath(first)
		if err != nil {
			t.Fatalf("second resolve failed: %v", err)
		}
		if first != second {
			t.Errorf("expected %s, got %s", first, second)
		}
	})

	t.Run("resolves relative path against cwd", func(t *testing.T) {
		writeImage(t, tmpDir, "rel.png")
		t.Chdir(tmpDir)

		resolved, err := ResolveImagePath("rel.png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !filepath.IsAbs(resolved) {
			t.Errorf("expected absolute path, got %s", resolved)
		}
	})

	t.Run("uppercase extension allowed", func(t *testing.T) {
		path := writeImage(t, tmpDir, "SHOUTY.PNG")

		if _, err := ResolveImagePath(path); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ResolveImagePath(filepath.Join(tmpDir, "nope.png"))
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("directory is not a file", func(t *testing.T) {
		_, err := ResolveImagePath(tmpDir)
		if !errors.Is(err, ErrNotAFile) {
			t.Errorf("expected ErrNotAFile, got %v", err)
		}
	})

	t.Run("disallowed extension", func(t *testing.T) {
		path := writeImage(t, tmpDir, "notes.txt")

		_, err := ResolveImagePath(path)
		if !errors.Is(err, ErrUnsupportedExtension) {
			t.Fatalf("expected ErrUnsupportedExtension, got %v", err)
		}
		// The message enumerates the sorted allow-list for diagnosability.
		for _, ext := range []string{".bmp", ".gif", ".heic", ".heif", ".jpeg", ".jpg", ".png", ".tif", ".tiff", ".webp"} {
			if !strings.Contains(err.Error(), ext) {
				t.Errorf("expected error to mention %s: %v", ext, err)
			}
		}
	})
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	t.Run("expands tilde prefix", func(t *testing.T) {
		got := expandHome("~/pictures/scan.png")
		want := filepath.Join(home, "pictures", "scan.png")
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("bare tilde", func(t *testing.T) {
		if got := expandHome("~"); got != home {
			t.Errorf("expected %s, got %s", home, got)
		}
	})

	t.Run("expands named user", func(t *testing.T) {
		current, err := user.Current()
		if err != nil {
			t.Skipf("no current user: %v", err)
		}
		got := expandHome("~" + current.Username + "/scan.png")
		want := filepath.Join(current.HomeDir, "scan.png")
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("leaves other paths alone", func(t *testing.T) {
		if got := expandHome("/tmp/scan.png"); got != "/tmp/scan.png" {
			t.Errorf("expected /tmp/scan.png, got %s", got)
		}
		if got := expandHome(""); got != "" {
			t.Errorf("expected empty string, got %s", got)
		}
	})

	t.Run("unknown user passes through", func(t *testing.T) {
		in := "~nobody-like-this-exists/scan.png"
		if got := expandHome(in); got != in {
			t.Errorf("expected %s, got %s", in, got)
		}
	})
}
