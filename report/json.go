package report

import (
	"encoding/json"
	"io"
)

// JSONWriter outputs composite reports as indented JSON.
type JSONWriter struct {
	output io.Writer
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{output: output}
}

// Write outputs the report as indented JSON followed by a newline.
func (w *JSONWriter) Write(c *Composite) error {
	enc := json.NewEncoder(w.output)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
