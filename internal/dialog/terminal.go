package dialog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// NewTerminal returns a Manager that prompts on in and writes to out.
// Only "y" or "yes" confirms; anything else, including EOF, dismisses.
func NewTerminal(in io.Reader, out io.Writer, colors bool) *Manager {
	reader := bufio.NewReader(in)

	prompt := func(_ context.Context, d Dialog) bool {
		paint(out, colors, d.Kind, "%s\n", d.Title)
		fmt.Fprintf(out, "%s [y/N]: ", d.Message)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}

	show := func(d Dialog) {
		prefix := "✓"
		if d.Kind != KindSuccess {
			prefix = "✗"
		}
		paint(out, colors, d.Kind, "%s %s: %s\n", prefix, d.Title, d.Message)
	}

	return NewManager(prompt, show)
}

func paint(out io.Writer, colors bool, kind Kind, format string, args ...any) {
	if !colors {
		fmt.Fprintf(out, format, args...)
		return
	}
	c := color.New(color.FgGreen)
	switch kind {
	case KindError:
		c = color.New(color.FgRed)
	case KindDanger:
		c = color.New(color.FgYellow, color.Bold)
	}
	c.Fprintf(out, format, args...)
}
