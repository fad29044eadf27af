package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLanguages is applied whenever neither the caller nor the
// configuration supplies a language list.
var DefaultLanguages = []string{"ja-JP", "en-US"}

// Options are the caller-facing recognition knobs. Every field is optional:
// zero values (and nil pointers) fall back to the service's configured
// defaults.
type Options struct {
	Languages          []string
	RecognitionLevel   string
	LanguageCorrection *bool
	SortReadingOrder   *bool
	MinConfidence      *float64
}

// Defaults are the recognition parameters applied when a caller omits one.
type Defaults struct {
	Languages          []string
	RecognitionLevel   string
	LanguageCorrection bool
	SortReadingOrder   bool
	MinConfidence      float64
}

// builtinDefaults matches the helper's documented defaults.
func builtinDefaults() Defaults {
	return Defaults{
		Languages:          DefaultLanguages,
		RecognitionLevel:   LevelAccurate,
		LanguageCorrection: true,
		SortReadingOrder:   true,
		MinConfidence:      0.0,
	}
}

// request layers the caller's options over the defaults and produces the
// parameter set handed to the helper.
func (o Options) request(d Defaults) Request {
	req := Request{
		Languages:          o.Languages,
		RecognitionLevel:   o.RecognitionLevel,
		LanguageCorrection: d.LanguageCorrection,
		SortReadingOrder:   d.SortReadingOrder,
		MinConfidence:      d.MinConfidence,
	}
	if len(req.Languages) == 0 {
		req.Languages = d.Languages
	}
	if req.RecognitionLevel == "" {
		req.RecognitionLevel = d.RecognitionLevel
	}
	if o.LanguageCorrection != nil {
		req.LanguageCorrection = *o.LanguageCorrection
	}
	if o.SortReadingOrder != nil {
		req.SortReadingOrder = *o.SortReadingOrder
	}
	if o.MinConfidence != nil {
		req.MinConfidence = *o.MinConfidence
	}
	return req
}

// Service composes the recognition pipeline (path resolution, helper
// location, invocation, normalization) behind the four callable operations.
// It holds only process-wide constant configuration; calls are synchronous
// and share no mutable state.
type Service struct {
	locator  Locator
	compiler []string
	defaults Defaults
	logger   *slog.Logger
}

// Config holds Service construction parameters.
type Config struct {
	// Locator picks the helper executable.
	Locator Locator
	// Compiler is the toolchain prefix for CompileHelper (default: xcrun swiftc -O).
	Compiler []string
	// Defaults are the recognition parameters used when a call omits them.
	// Nil selects the built-in defaults.
	Defaults *Defaults
	// Logger is the structured logger to use.
	Logger *slog.Logger
}

// NewService creates a Service with the given configuration.
func NewService(cfg Config) *Service {
	if len(cfg.Compiler) == 0 {
		cfg.Compiler = DefaultCompiler
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	defaults := builtinDefaults()
	if cfg.Defaults != nil {
		defaults = *cfg.Defaults
		if len(defaults.Languages) == 0 {
			defaults.Languages = DefaultLanguages
		}
		if defaults.RecognitionLevel == "" {
			defaults.RecognitionLevel = LevelAccurate
		}
	}
	return &Service{
		locator:  cfg.Locator,
		compiler: cfg.Compiler,
		defaults: defaults,
		logger:   cfg.Logger,
	}
}

// OCRImage runs recognition for a single image and returns the canonical
// structured result.
func (s *Service) OCRImage(ctx context.Context, path string, opts Options) (map[string]any, error) {
	resolved, err := ResolveImagePath(path)
	if err != nil {
		return nil, err
	}

	prefix, err := s.locator.Command()
	if err != nil {
		return nil, err
	}

	req := opts.request(s.defaults)
	s.logger.Debug("running ocr helper",
		"path", resolved,
		"languages", strings.Join(req.Languages, ","),
		"recognition_level", req.RecognitionLevel,
	)
	return runHelper(ctx, prefix, resolved, req)
}

// OCRBatch runs the single-image pipeline over each path in order. A failure
// in one item is recorded against the caller's original path string and never
// aborts the remaining items. Items run strictly sequentially; one helper
// process must exit before the next is spawned.
func (s *Service) OCRBatch(ctx context.Context, paths []string, opts Options) *BatchResult {
	results := make([]map[string]any, 0, len(paths))
	batchErrors := make([]BatchError, 0)

	for _, path := range paths {
		result, err := s.OCRImage(ctx, path, opts)
		if err != nil {
			batchErrors = append(batchErrors, BatchError{Path: path, Error: err.Error()})
			continue
		}
		results = append(results, result)
	}

	return &BatchResult{
		Total:     len(paths),
		Succeeded: len(results),
		Failed:    len(batchErrors),
		Results:   results,
		Errors:    batchErrors,
	}
}

// OCRText runs recognition for a single image and returns only the full
// recognized text. The legacy fullText key is checked as a fallback in case
// an unnormalized document ever slips through.
func (s *Service) OCRText(ctx context.Context, path string, opts Options) (string, error) {
	result, err := s.OCRImage(ctx, path, opts)
	if err != nil {
		return "", err
	}
	if text, ok := result["full_text"]; ok && text != nil {
		return fmt.Sprint(text), nil
	}
	if text, ok := result["fullText"]; ok && text != nil {
		return fmt.Sprint(text), nil
	}
	return "", nil
}

// CompileResult reports a successful helper compilation.
type CompileResult struct {
	Binary string `json:"binary"`
	Status string `json:"status"`
}

// CompileHelper compiles the helper script into the native binary consumed by
// the Locator. This is a build-time convenience, not part of the recognition
// path; subsequent calls pick up the binary automatically.
func (s *Service) CompileHelper(ctx context.Context) (*CompileResult, error) {
	if _, err := os.Stat(s.locator.ScriptPath); err != nil {
		return nil, fmt.Errorf("%w: helper script not found: %s", ErrHelperMissing, s.locator.ScriptPath)
	}

	if err := os.MkdirAll(filepath.Dir(s.locator.BinPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create build directory: %w", err)
	}

	argv := make([]string, 0, len(s.compiler)+3)
	argv = append(argv, s.compiler...)
	argv = append(argv, s.locator.ScriptPath, "-o", s.locator.BinPath)

	s.logger.Info("compiling ocr helper", "script", s.locator.ScriptPath, "binary", s.locator.BinPath)
	_, stderr, err := runCommand(ctx, argv)
	if err != nil {
		msg := strings.TrimSpace(stderr)
		if msg == "" {
			msg = "swiftc failed"
		}
		return nil, fmt.Errorf("%w: %s", ErrCompilation, msg)
	}

	return &CompileResult{Binary: s.locator.BinPath, Status: "compiled"}, nil
}
