package format

import (
	"fmt"
	"io"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/soley/admin-cli/internal/models"
)

// Table is a pre-rendered grid: resource sections build one from their
// columns so every output format shows the same cells.
type Table struct {
	Headers []string
	Rows    [][]string
	Footer  string
	Empty   string
}

// Records returns the rows keyed by header, for structured output.
func (t Table) Records() []map[string]string {
	out := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			if i < len(row) {
				rec[h] = stripANSI(row[i])
			}
		}
		out = append(out, rec)
	}
	return out
}

func asTable(data interface{}) (Table, bool) {
	switch v := data.(type) {
	case Table:
		return v, true
	case *Table:
		if v != nil {
			return *v, true
		}
	}
	return Table{}, false
}

// TableFormatter handles table output formatting
type TableFormatter struct {
	out       io.Writer
	useColors bool
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(out io.Writer, useColors bool) *TableFormatter {
	return &TableFormatter{
		out:       out,
		useColors: useColors,
	}
}

// Format formats data as a table
func (f *TableFormatter) Format(data interface{}) error {
	if data == nil {
		fmt.Fprintln(f.out, "No data to display")
		return nil
	}

	if t, ok := asTable(data); ok {
		return f.formatTable(t)
	}

	switch v := data.(type) {
	case []map[string]interface{}:
		return f.formatMapSlice(v)
	case map[string]interface{}:
		return f.formatSingleMap(v)
	case []interface{}:
		return f.formatInterfaceSlice(v)
	default:
		return f.formatReflection(data)
	}
}

// NewTable returns a tablewriter configured like every other table of the CLI.
func NewTable(out io.Writer, headers []string, useColors bool) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	configureTable(table)
	setHeader(table, headers, useColors)
	return table
}

func (f *TableFormatter) formatTable(t Table) error {
	if len(t.Rows) == 0 {
		empty := t.Empty
		if empty == "" {
			empty = "No data to display"
		}
		fmt.Fprintln(f.out, empty)
	} else {
		table := NewTable(f.out, t.Headers, f.useColors)
		table.AppendBulk(t.Rows)
		table.Render()
	}
	if t.Footer != "" {
		fmt.Fprintln(f.out, t.Footer)
	}
	return nil
}

// formatMapSlice formats a slice of maps as a table, columns sorted by key
func (f *TableFormatter) formatMapSlice(data []map[string]interface{}) error {
	if len(data) == 0 {
		fmt.Fprintln(f.out, "No data to display")
		return nil
	}

	keys := sortedKeys(data[0])
	headers := make([]string, len(keys))
	for i, key := range keys {
		headers[i] = formatHeader(key)
	}

	table := NewTable(f.out, headers, f.useColors)

	for _, row := range data {
		values := make([]string, len(keys))
		for i, key := range keys {
			if val, exists := row[key]; exists {
				values[i] = f.formatValue(val)
			}
		}
		table.Append(values)
	}

	table.Render()
	return nil
}

// formatSingleMap formats a single map as a vertical table
func (f *TableFormatter) formatSingleMap(data map[string]interface{}) error {
	table := NewTable(f.out, []string{"Property", "Value"}, f.useColors)

	for _, key := range sortedKeys(data) {
		table.Append([]string{
			formatHeader(key),
			f.formatValue(data[key]),
		})
	}

	table.Render()
	return nil
}

// formatInterfaceSlice formats a slice of interfaces
func (f *TableFormatter) formatInterfaceSlice(data []interface{}) error {
	if len(data) == 0 {
		fmt.Fprintln(f.out, "No data to display")
		return nil
	}

	mapData := make([]map[string]interface{}, 0, len(data))
	for _, item := range data {
		m, ok := item.(map[string]interface{})
		if !ok {
			return f.formatSimpleList(data)
		}
		mapData = append(mapData, m)
	}

	return f.formatMapSlice(mapData)
}

// formatSimpleList formats a simple list of values
func (f *TableFormatter) formatSimpleList(data []interface{}) error {
	table := NewTable(f.out, []string{"Value"}, f.useColors)

	for _, item := range data {
		table.Append([]string{f.formatValue(item)})
	}

	table.Render()
	return nil
}

// formatReflection uses reflection to format unknown types
func (f *TableFormatter) formatReflection(data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			fmt.Fprintln(f.out, "No data to display")
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return f.formatStruct(v)
	case reflect.Slice:
		return f.formatSlice(v)
	default:
		fmt.Fprintf(f.out, "%v\n", data)
		return nil
	}
}

// formatStruct formats a struct as a vertical table; embedded structs are flattened
func (f *TableFormatter) formatStruct(v reflect.Value) error {
	table := NewTable(f.out, []string{"Field", "Value"}, f.useColors)

	appendFields(table, v, f.formatValue)

	table.Render()
	return nil
}

func appendFields(table *tablewriter.Table, v reflect.Value, value func(interface{}) string) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			appendFields(table, v.Field(i), value)
			continue
		}
		table.Append([]string{splitCamel(field.Name), value(v.Field(i).Interface())})
	}
}

// formatSlice formats a slice using reflection
func (f *TableFormatter) formatSlice(v reflect.Value) error {
	if v.Len() == 0 {
		fmt.Fprintln(f.out, "No data to display")
		return nil
	}

	data := make([]interface{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		data[i] = v.Index(i).Interface()
	}

	return f.formatInterfaceSlice(data)
}

// configureTable sets up table appearance
func configureTable(table *tablewriter.Table) {
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
}

// setHeader sets headers and, with colors, paints each one; tablewriter
// needs one color entry per header.
func setHeader(table *tablewriter.Table, headers []string, useColors bool) {
	table.SetHeader(headers)
	if !useColors {
		return
	}
	colors := make([]tablewriter.Colors, len(headers))
	for i := range colors {
		colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiBlueColor}
	}
	table.SetHeaderColor(colors...)
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatHeader converts snake_case to Title Case
func formatHeader(header string) string {
	words := strings.Split(header, "_")
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}

// splitCamel turns a Go field name into words: "ImageURL" -> "Image URL".
func splitCamel(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			prevUpper := runes[i-1] >= 'A' && runes[i-1] <= 'Z'
			if prevLower || (prevUpper && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// formatValue formats a value for display
func (f *TableFormatter) formatValue(value interface{}) string {
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", v)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32, float64:
		return fmt.Sprintf("%.2f", v)
	case bool:
		if f.useColors {
			if v {
				return color.GreenString("true")
			}
			return color.RedString("false")
		}
		return strconv.FormatBool(v)
	case time.Time:
		return Date(v)
	case *time.Time:
		if v == nil {
			return ""
		}
		return Date(*v)
	case models.Localized:
		return v.Get(models.FallbackLanguage, "")
	case *int:
		if v == nil {
			return "unlimited"
		}
		return strconv.Itoa(*v)
	case []string:
		return strings.Join(v, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
