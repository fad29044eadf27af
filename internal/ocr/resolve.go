package ocr

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"
)

// allowedExtensions is the fixed set of image suffixes the Vision helper
// accepts. Lowercase, with leading dot.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".heic": true,
	".heif": true,
	".bmp":  true,
	".gif":  true,
	".webp": true,
}

// allowedExtensionList returns the allow-list sorted for stable error messages.
func allowedExtensionList() string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}

// ResolveImagePath validates a caller-supplied image reference and returns
// its absolute path. The path must exist, be a regular file, and carry an
// allowed image extension. No external process is involved.
func ResolveImagePath(path string) (string, error) {
	resolved, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %q: %w", path, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, resolved)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotAFile, resolved)
	}

	ext := strings.ToLower(filepath.Ext(resolved))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedExtension, ext, allowedExtensionList())
	}

	return resolved, nil
}

// expandHome replaces a leading ~ or ~user with the matching home directory.
// Paths naming an unknown user are returned unchanged and fail the later
// existence check with the literal path in the message.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	name := path[1:]
	rest := ""
	if i := strings.IndexByte(name, '/'); i >= 0 {
		name, rest = name[:i], name[i+1:]
	}

	var home string
	if name == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		home = h
	} else {
		u, err := user.Lookup(name)
		if err != nil {
			return path
		}
		home = u.HomeDir
	}
	return filepath.Join(home, rest)
}
