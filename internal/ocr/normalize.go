package ocr

// The helper has shipped two key-naming conventions over time. The mapping
// tables reconcile the legacy camelCase keys into the canonical snake_case
// schema guaranteed to callers.
var (
	topLevelRenames = map[string]string{
		"resolvedPath": "resolved_path",
		"lineCount":    "line_count",
		"fullText":     "full_text",
	}

	bboxRenames = map[string]string{
		"minX": "min_x",
		"minY": "min_y",
	}
)

// Normalize rewrites a raw helper document into the canonical schema. It is a
// pure, total transform: legacy keys are moved to their canonical names only
// when the canonical key is absent, unknown keys pass through unchanged, and
// a document missing every expected key comes back as-is. Non-object entries
// inside a lines sequence are dropped rather than surfaced as errors, since
// the rest of the document may still be usable.
func Normalize(payload map[string]any) map[string]any {
	normalized := make(map[string]any, len(payload))
	for k, v := range payload {
		normalized[k] = v
	}
	applyRenames(normalized, topLevelRenames)

	lines, ok := normalized["lines"].([]any)
	if !ok {
		return normalized
	}

	converted := make([]any, 0, len(lines))
	for _, entry := range lines {
		line, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		lineCopy := make(map[string]any, len(line))
		for k, v := range line {
			lineCopy[k] = v
		}
		if bbox, ok := lineCopy["bbox"].(map[string]any); ok {
			bboxCopy := make(map[string]any, len(bbox))
			for k, v := range bbox {
				bboxCopy[k] = v
			}
			applyRenames(bboxCopy, bboxRenames)
			lineCopy["bbox"] = bboxCopy
		}
		converted = append(converted, lineCopy)
	}
	normalized["lines"] = converted

	return normalized
}

// applyRenames moves each legacy key to its canonical name. An
// already-present canonical key is never overwritten.
func applyRenames(doc map[string]any, renames map[string]string) {
	for legacy, canonical := range renames {
		value, ok := doc[legacy]
		if !ok {
			continue
		}
		if _, exists := doc[canonical]; exists {
			continue
		}
		doc[canonical] = value
		delete(doc, legacy)
	}
}
