package ocr

// BatchError records one failed batch item, keyed by the original path string
// the caller passed in (not the resolved path) so errors stay traceable even
// when resolution itself failed.
type BatchError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// BatchResult aggregates recognition over multiple inputs. Counts are derived
// from the slice lengths, so succeeded+failed==total holds by construction.
type BatchResult struct {
	Total     int              `json:"total"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Results   []map[string]any `json:"results"`
	Errors    []BatchError     `json:"errors"`
}
