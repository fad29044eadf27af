package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackzampolin/visionocr/internal/ocr"
)

// Service is the recognition pipeline consumed by the OCR tools.
// *ocr.Service satisfies it; tests use a mock.
type Service interface {
	OCRImage(ctx context.Context, path string, opts ocr.Options) (map[string]any, error)
	OCRBatch(ctx context.Context, paths []string, opts ocr.Options) *ocr.BatchResult
	OCRText(ctx context.Context, path string, opts ocr.Options) (string, error)
	CompileHelper(ctx context.Context) (*ocr.CompileResult, error)
}

// Shared recognition properties for the three OCR tool schemas.
const recognitionProperties = `
    "languages": {
      "type": "array",
      "items": {"type": "string"},
      "description": "Recognition language identifiers in priority order (default: ja-JP, en-US)"
    },
    "recognition_level": {
      "type": "string",
      "enum": ["accurate", "fast"],
      "description": "Recognition quality level (default: accurate)"
    },
    "language_correction": {
      "type": "boolean",
      "description": "Apply language-model correction (default: true)"
    },
    "sort_reading_order": {
      "type": "boolean",
      "description": "Sort lines into natural reading order (default: true)"
    },
    "min_confidence": {
      "type": "number",
      "minimum": 0,
      "maximum": 1,
      "description": "Drop lines below this confidence (default: 0.0)"
    }`

var (
	ocrImageSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "path": {"type": "string", "description": "Path to the image file"},` + recognitionProperties + `
  },
  "required": ["path"],
  "additionalProperties": false
}`)

	ocrBatchSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "paths": {
      "type": "array",
      "items": {"type": "string"},
      "description": "Paths to the image files, processed in order"
    },` + recognitionProperties + `
  },
  "required": ["paths"],
  "additionalProperties": false
}`)

	compileHelperSchema = json.RawMessage(`{
  "type": "object",
  "properties": {},
  "additionalProperties": false
}`)
)

// ocrParams is the uniform argument shape shared by the OCR tools. Optional
// scalars are pointers so an absent argument falls back to the configured
// defaults rather than the type's zero value.
type ocrParams struct {
	Path               string   `json:"path"`
	Paths              []string `json:"paths"`
	Languages          []string `json:"languages"`
	RecognitionLevel   string   `json:"recognition_level"`
	LanguageCorrection *bool    `json:"language_correction"`
	SortReadingOrder   *bool    `json:"sort_reading_order"`
	MinConfidence      *float64 `json:"min_confidence"`
}

func (p ocrParams) options() ocr.Options {
	return ocr.Options{
		Languages:          p.Languages,
		RecognitionLevel:   p.RecognitionLevel,
		LanguageCorrection: p.LanguageCorrection,
		SortReadingOrder:   p.SortReadingOrder,
		MinConfidence:      p.MinConfidence,
	}
}

func decodeParams(args json.RawMessage) (ocrParams, error) {
	var p ocrParams
	if err := json.Unmarshal(args, &p); err != nil {
		return p, fmt.Errorf("failed to decode tool arguments: %w", err)
	}
	return p, nil
}

// All returns the four OCR tools backed by svc, in the order they are
// advertised to clients.
func All(svc Service) []*Tool {
	return []*Tool{
		{
			Name: "ocr_image",
			Description: "Run OCR for a single image with Apple Vision and return structured output " +
				"(lines, confidence, bounding boxes, full text).",
			InputSchema: ocrImageSchema,
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				p, err := decodeParams(args)
				if err != nil {
					return nil, err
				}
				return svc.OCRImage(ctx, p.Path, p.options())
			},
		},
		{
			Name: "ocr_batch",
			Description: "Run OCR for multiple images. Returns per-image results plus an error list " +
				"for files that failed.",
			InputSchema: ocrBatchSchema,
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				p, err := decodeParams(args)
				if err != nil {
					return nil, err
				}
				return svc.OCRBatch(ctx, p.Paths, p.options()), nil
			},
		},
		{
			Name: "ocr_text",
			Description: "Run OCR for a single image and return plain text only (newline-separated). " +
				"Useful when structured metadata is unnecessary.",
			InputSchema: ocrImageSchema,
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				p, err := decodeParams(args)
				if err != nil {
					return nil, err
				}
				return svc.OCRText(ctx, p.Path, p.options())
			},
		},
		{
			Name: "compile_helper",
			Description: "Compile the Swift helper to a native binary for faster OCR calls. " +
				"By default the server runs the Swift script directly.",
			InputSchema: compileHelperSchema,
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				return svc.CompileHelper(ctx)
			},
		},
	}
}

// NewRegistryFor builds a registry containing all OCR tools.
func NewRegistryFor(svc Service) (*Registry, error) {
	registry := NewRegistry()
	for _, t := range All(svc) {
		if err := registry.Register(t); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
