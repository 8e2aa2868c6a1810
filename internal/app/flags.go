package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/soley/admin-cli/internal/models"
)

// The Set helpers copy a flag into dst only when it was given, so update
// commands keep every value the operator did not mention.

func SetString(fs *pflag.FlagSet, name string, dst *string) {
	if fs.Changed(name) {
		*dst, _ = fs.GetString(name)
	}
}

func SetStrings(fs *pflag.FlagSet, name string, dst *[]string) {
	if fs.Changed(name) {
		*dst, _ = fs.GetStringSlice(name)
	}
}

func SetFloat(fs *pflag.FlagSet, name string, dst *float64) {
	if fs.Changed(name) {
		*dst, _ = fs.GetFloat64(name)
	}
}

func SetInt(fs *pflag.FlagSet, name string, dst *int) {
	if fs.Changed(name) {
		*dst, _ = fs.GetInt(name)
	}
}

func SetBool(fs *pflag.FlagSet, name string, dst *bool) {
	if fs.Changed(name) {
		*dst, _ = fs.GetBool(name)
	}
}

// SetTime parses a date flag given as RFC 3339 or YYYY-MM-DD (midnight UTC).
func SetTime(fs *pflag.FlagSet, name string, dst *time.Time) error {
	if !fs.Changed(name) {
		return nil
	}
	raw, _ := fs.GetString(name)
	t, err := ParseDate(raw)
	if err != nil {
		return fmt.Errorf("--%s: %w", name, err)
	}
	*dst = t
	return nil
}

// ParseDate accepts RFC 3339, "YYYY-MM-DD HH:MM" or "YYYY-MM-DD". An empty
// string yields the zero time.
func ParseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD or RFC 3339", raw)
}

// MergeLocalized copies the entries of a lang=value map flag into dst when
// the flag was given.
func MergeLocalized(cmd *cobra.Command, flag string, dst *models.Localized) error {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	entries, err := cmd.Flags().GetStringToString(flag)
	if err != nil {
		return err
	}
	if *dst == nil {
		*dst = models.Localized{}
	}
	for lang, v := range entries {
		(*dst)[models.NormalizeLanguage(lang)] = v
	}
	return nil
}
