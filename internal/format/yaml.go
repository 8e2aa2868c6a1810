package format

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter handles YAML output formatting
type YAMLFormatter struct {
	out io.Writer
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(out io.Writer) *YAMLFormatter {
	return &YAMLFormatter{out: out}
}

// Format formats data as YAML
func (f *YAMLFormatter) Format(data interface{}) error {
	if t, ok := asTable(data); ok {
		data = t.Records()
	}

	output, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	_, err = f.out.Write(output)
	return err
}
