package format

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// TextFormatter handles simple text output formatting
type TextFormatter struct {
	out io.Writer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(out io.Writer) *TextFormatter {
	return &TextFormatter{out: out}
}

// Format formats data as simple text
func (f *TextFormatter) Format(data interface{}) error {
	if data == nil {
		fmt.Fprintln(f.out, "No data")
		return nil
	}

	if t, ok := asTable(data); ok {
		return f.formatTable(t)
	}

	switch v := data.(type) {
	case map[string]interface{}:
		return f.formatSingleMap(v)
	case []interface{}:
		return f.formatInterfaceSlice(v)
	case string:
		fmt.Fprintln(f.out, v)
		return nil
	default:
		return f.formatReflection(data)
	}
}

// formatTable prints one block per row, "Header: value" per line
func (f *TextFormatter) formatTable(t Table) error {
	if len(t.Rows) == 0 && t.Empty != "" {
		fmt.Fprintln(f.out, t.Empty)
	}
	for i, row := range t.Rows {
		if i > 0 {
			fmt.Fprintln(f.out)
		}
		for j, h := range t.Headers {
			if j < len(row) {
				fmt.Fprintf(f.out, "%s: %s\n", h, stripANSI(row[j]))
			}
		}
	}
	if t.Footer != "" {
		fmt.Fprintln(f.out, t.Footer)
	}
	return nil
}

// formatSingleMap formats a single map as text
func (f *TextFormatter) formatSingleMap(data map[string]interface{}) error {
	for _, key := range sortedKeys(data) {
		fmt.Fprintf(f.out, "%s: %v\n", formatHeader(key), f.formatValue(data[key]))
	}
	return nil
}

// formatInterfaceSlice formats a slice of interfaces as text
func (f *TextFormatter) formatInterfaceSlice(data []interface{}) error {
	if len(data) == 0 {
		fmt.Fprintln(f.out, "No data")
		return nil
	}

	for i, item := range data {
		if m, ok := item.(map[string]interface{}); ok {
			if i > 0 {
				fmt.Fprintln(f.out)
			}
			fmt.Fprintf(f.out, "Item %d:\n", i+1)
			for _, key := range sortedKeys(m) {
				fmt.Fprintf(f.out, "  %s: %v\n", formatHeader(key), f.formatValue(m[key]))
			}
		} else {
			fmt.Fprintf(f.out, "%v\n", f.formatValue(item))
		}
	}

	return nil
}

// formatReflection uses reflection to format unknown types
func (f *TextFormatter) formatReflection(data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			fmt.Fprintln(f.out, "No data")
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		f.formatStruct(v, "")
		return nil
	case reflect.Slice:
		return f.formatSlice(v)
	default:
		fmt.Fprintf(f.out, "%v\n", data)
		return nil
	}
}

// formatStruct formats a struct as text, flattening embedded structs
func (f *TextFormatter) formatStruct(v reflect.Value, indent string) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			f.formatStruct(v.Field(i), indent)
			continue
		}
		fmt.Fprintf(f.out, "%s%s: %v\n", indent, splitCamel(field.Name), f.formatValue(v.Field(i).Interface()))
	}
}

// formatSlice formats a slice using reflection
func (f *TextFormatter) formatSlice(v reflect.Value) error {
	if v.Len() == 0 {
		fmt.Fprintln(f.out, "No data")
		return nil
	}

	for i := 0; i < v.Len(); i++ {
		item := reflect.Indirect(v.Index(i))
		if item.Kind() != reflect.Struct {
			fmt.Fprintf(f.out, "%v\n", f.formatValue(item.Interface()))
			continue
		}
		if i > 0 {
			fmt.Fprintln(f.out)
		}
		fmt.Fprintf(f.out, "Item %d:\n", i+1)
		f.formatStruct(item, "  ")
	}
	return nil
}

// formatValue formats a value for display
func (f *TextFormatter) formatValue(value interface{}) interface{} {
	if value == nil {
		return "N/A"
	}
	plain := &TableFormatter{}
	if s := plain.formatValue(value); strings.TrimSpace(s) != "" {
		return s
	}
	return "N/A"
}
