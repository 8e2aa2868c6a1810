package format

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/soley/admin-cli/internal/config"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data interface{}) error
}

// Formats lists the accepted --output values.
var Formats = []string{"table", "json", "json-compact", "yaml", "text"}

// GetFormatter returns a formatter writing to out.
func GetFormatter(format string, out io.Writer, useColors bool) (Formatter, error) {
	switch format {
	case "table":
		return NewTableFormatter(out, useColors), nil
	case "json":
		return NewJSONFormatter(out, true), nil
	case "json-compact":
		return NewJSONFormatter(out, false), nil
	case "yaml":
		return NewYAMLFormatter(out), nil
	case "text":
		return NewTextFormatter(out), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Print formats and prints data to stdout using the configured output format
func Print(data interface{}) error {
	formatter, err := GetFormatter(config.GetOutputFormat(), os.Stdout, config.Get().Format.Colors)
	if err != nil {
		return err
	}
	return formatter.Format(data)
}

// IsStructured reports whether the configured format is machine readable.
// Commands print raw records instead of rendered columns in that case.
func IsStructured() bool {
	switch config.GetOutputFormat() {
	case "json", "json-compact", "yaml":
		return true
	default:
		return false
	}
}

// PrintSuccess prints a success message
func PrintSuccess(message string, args ...interface{}) {
	if config.Get().Format.Colors {
		color.Green(message, args...)
	} else {
		fmt.Printf(message+"\n", args...)
	}
}

// PrintError prints an error message to stderr
func PrintError(message string, args ...interface{}) {
	if config.Get().Format.Colors {
		fmt.Fprintln(os.Stderr, color.RedString(message, args...))
	} else {
		fmt.Fprintf(os.Stderr, "Error: "+message+"\n", args...)
	}
}

// PrintWarning prints a warning message
func PrintWarning(message string, args ...interface{}) {
	if config.Get().Format.Colors {
		color.Yellow(message, args...)
	} else {
		fmt.Printf("Warning: "+message+"\n", args...)
	}
}

// PrintInfo prints an info message
func PrintInfo(message string, args ...interface{}) {
	if config.Get().Format.Colors {
		color.Blue(message, args...)
	} else {
		fmt.Printf("Info: "+message+"\n", args...)
	}
}
