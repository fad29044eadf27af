package ocr

import "errors"

// Error taxonomy for the recognition pipeline. Callers match with errors.Is;
// messages carry the specifics (offending path, helper diagnostics, etc).
var (
	// ErrNotFound indicates the resolved image path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrNotAFile indicates the resolved path exists but is not a regular file.
	ErrNotAFile = errors.New("path is not a file")

	// ErrUnsupportedExtension indicates the image suffix is outside the allow-list.
	ErrUnsupportedExtension = errors.New("unsupported extension")

	// ErrHelperMissing indicates neither the compiled helper binary nor the
	// helper script exists. This is a configuration error, never retried.
	ErrHelperMissing = errors.New("helper missing")

	// ErrInvalidParameter indicates a bad recognition level or an
	// out-of-range confidence threshold. Checked before any process spawns.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrHelperExecution indicates the helper process exited non-zero.
	// The message carries the helper's own stderr diagnostics.
	ErrHelperExecution = errors.New("helper execution failed")

	// ErrInvalidHelperOutput indicates the helper exited zero but its stdout
	// was not a parseable JSON document.
	ErrInvalidHelperOutput = errors.New("invalid helper output")

	// ErrCompilation indicates the helper compilation toolchain failed.
	ErrCompilation = errors.New("helper compilation failed")
)
