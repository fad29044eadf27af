package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Recognition quality levels accepted by the Vision helper.
const (
	LevelAccurate = "accurate"
	LevelFast     = "fast"
)

// helperStderrFallback is reported when the helper exits non-zero without
// writing anything to stderr.
const helperStderrFallback = "Swift OCR helper failed without stderr output."

// Request is the validated parameter set for one recognition call.
type Request struct {
	Languages          []string
	RecognitionLevel   string
	LanguageCorrection bool
	SortReadingOrder   bool
	MinConfidence      float64
}

// validate fast-fails on bad parameters before any process is spawned.
func (r Request) validate() error {
	if r.RecognitionLevel != LevelAccurate && r.RecognitionLevel != LevelFast {
		return fmt.Errorf("%w: recognition_level must be one of [%s %s], got %q",
			ErrInvalidParameter, LevelAccurate, LevelFast, r.RecognitionLevel)
	}
	if r.MinConfidence < 0.0 || r.MinConfidence > 1.0 {
		return fmt.Errorf("%w: min_confidence must be between 0.0 and 1.0", ErrInvalidParameter)
	}
	return nil
}

// args encodes the request into the helper's fixed CLI contract: comma-joined
// languages, lowercase boolean literals, and a three-decimal confidence so the
// textual encoding is stable across the process boundary.
func (r Request) args(imagePath string) []string {
	return []string{
		"--input", imagePath,
		"--languages", strings.Join(r.Languages, ","),
		"--recognition-level", r.RecognitionLevel,
		"--language-correction", strconv.FormatBool(r.LanguageCorrection),
		"--sort-reading-order", strconv.FormatBool(r.SortReadingOrder),
		"--min-confidence", strconv.FormatFloat(r.MinConfidence, 'f', 3, 64),
	}
}

// runCommand executes argv and returns captured stdout and stderr.
// Tests replace it to avoid spawning real processes.
var runCommand = func(ctx context.Context, argv []string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// runHelper executes the recognition helper synchronously and returns the
// normalized result document. The call blocks until the helper exits; no
// timeout is imposed beyond whatever deadline ctx carries.
func runHelper(ctx context.Context, prefix []string, imagePath string, req Request) (map[string]any, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	argv := make([]string, 0, len(prefix)+12)
	argv = append(argv, prefix...)
	argv = append(argv, req.args(imagePath)...)

	stdout, stderr, err := runCommand(ctx, argv)
	if err != nil {
		msg := strings.TrimSpace(stderr)
		if msg == "" {
			msg = helperStderrFallback
		}
		return nil, fmt.Errorf("%w: %s", ErrHelperExecution, msg)
	}

	var payload map[string]any
	if jsonErr := json.Unmarshal([]byte(stdout), &payload); jsonErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHelperOutput, jsonErr)
	}

	return Normalize(payload), nil
}
