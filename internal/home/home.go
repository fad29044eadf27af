package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the visionocr home directory.
	DefaultDirName = ".visionocr"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"

	// HelperScriptName is the Swift helper script file name.
	HelperScriptName = "vision_ocr.swift"

	// BuildDirName is the subdirectory holding compiled helper output.
	BuildDirName = ".build"

	// HelperBinName is the compiled helper binary file name.
	HelperBinName = "vision_ocr"
)

// Dir represents the visionocr home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.visionocr).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// HelperScriptPath returns the path to the Swift helper script.
func (d *Dir) HelperScriptPath() string {
	return filepath.Join(d.path, HelperScriptName)
}

// BuildPath returns the build-output directory for the compiled helper.
func (d *Dir) BuildPath() string {
	return filepath.Join(d.path, BuildDirName)
}

// HelperBinPath returns the path to the compiled helper binary.
func (d *Dir) HelperBinPath() string {
	return filepath.Join(d.BuildPath(), HelperBinName)
}

// EnsureExists creates the home directory if it doesn't exist.
func (d *Dir) EnsureExists() error {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("failed to create home directory: %w", err)
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}
