package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONFormatter handles JSON output formatting
type JSONFormatter struct {
	out    io.Writer
	pretty bool
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(out io.Writer, pretty bool) *JSONFormatter {
	return &JSONFormatter{
		out:    out,
		pretty: pretty,
	}
}

// Format formats data as JSON. A Table is emitted as a list of header-keyed rows.
func (f *JSONFormatter) Format(data interface{}) error {
	if t, ok := asTable(data); ok {
		data = t.Records()
	}

	enc := json.NewEncoder(f.out)
	enc.SetEscapeHTML(false)
	if f.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}
