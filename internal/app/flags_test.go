package app

import (
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/soley/admin-cli/internal/models"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"", time.Time{}},
		{"2025-03-01", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-03-01 18:30", time.Date(2025, 3, 1, 18, 30, 0, 0, time.UTC)},
		{"2025-03-01T10:00:00Z", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil || !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, %v", tt.in, got, err)
		}
	}
	if _, err := ParseDate("01/03/2025"); err == nil {
		t.Error("expected error for unsupported layout")
	}
}

func TestSettersOnlyApplyChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	fs := cmd.Flags()
	fs.String("image", "", "")
	fs.Int("sort", 0, "")
	fs.Bool("active", true, "")
	fs.String("start", "", "")
	fs.StringToString("name", nil, "")
	if err := fs.Parse([]string{"--sort", "4", "--active=false", "--start", "2025-01-02", "--name", "ES-es=Pizza,en=Pie"}); err != nil {
		t.Fatal(err)
	}

	image, sort, active := "keep.png", 1, true
	var start time.Time
	SetString(fs, "image", &image)
	SetInt(fs, "sort", &sort)
	SetBool(fs, "active", &active)
	if err := SetTime(fs, "start", &start); err != nil {
		t.Fatal(err)
	}
	if image != "keep.png" || sort != 4 || active || start.Day() != 2 {
		t.Errorf("image=%q sort=%d active=%v start=%v", image, sort, active, start)
	}

	name := models.Localized{"ca": "Pizza"}
	if err := MergeLocalized(cmd, "name", &name); err != nil {
		t.Fatal(err)
	}
	if name["es"] != "Pizza" || name["en"] != "Pie" || name["ca"] != "Pizza" {
		t.Errorf("name = %v", name)
	}
}
