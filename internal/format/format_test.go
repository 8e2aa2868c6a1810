package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/soley/admin-cli/internal/models"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "€0.00"},
		{9.5, "€9.50"},
		{1234.5, "€1,234.50"},
		{-3, "-€3.00"},
	}
	for _, tt := range tests {
		if got := Currency(tt.in); got != tt.want {
			t.Errorf("Currency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBadgeWithoutColors(t *testing.T) {
	if got := Badge(models.OrderOutForDelivery, false); got != "OUT FOR DELIVERY" {
		t.Errorf("Badge() = %q", got)
	}
	if got := Badge("", false); got != "UNKNOWN" {
		t.Errorf("Badge(\"\") = %q", got)
	}
}

func TestSplitCamel(t *testing.T) {
	for in, want := range map[string]string{
		"ImageURL":           "Image URL",
		"OrderNumber":        "Order Number",
		"ID":                 "ID",
		"SEOData":            "SEO Data",
		"IsOneTimePerDevice": "Is One Time Per Device",
	} {
		if got := splitCamel(in); got != want {
			t.Errorf("splitCamel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTableFormatterRendersRowsAndFooter(t *testing.T) {
	var buf bytes.Buffer
	tbl := Table{
		Headers: []string{"ID", "Name", "Price"},
		Rows:    [][]string{{"1", "Margherita", Currency(9.5)}},
		Footer:  "Page 1 of 1 (1 total)",
	}
	if err := NewTableFormatter(&buf, false).Format(tbl); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"NAME", "Margherita", "€9.50", "Page 1 of 1 (1 total)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTableFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf, false).Format(Table{Headers: []string{"ID"}, Empty: "No orders found"}); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "No orders found" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestJSONFormatterEmitsTableRecords(t *testing.T) {
	var buf bytes.Buffer
	tbl := Table{Headers: []string{"ID", "Status"}, Rows: [][]string{{"o1", "\x1b[33mPENDING\x1b[0m"}}}
	if err := NewJSONFormatter(&buf, false).Format(tbl); err != nil {
		t.Fatal(err)
	}

	var got []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if len(got) != 1 || got[0]["Status"] != "PENDING" || got[0]["ID"] != "o1" {
		t.Errorf("records = %v", got)
	}
}

func TestTextFormatterStruct(t *testing.T) {
	var buf bytes.Buffer
	cat := models.Category{ID: "c1", Name: models.NewLocalized("Pizza"), IsActive: true}
	if err := NewTextFormatter(&buf).Format(cat); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "ID: c1") || !strings.Contains(out, "Name: Pizza") {
		t.Errorf("output = %s", out)
	}
}

func TestGetFormatterRejectsUnknown(t *testing.T) {
	if _, err := GetFormatter("xml", &bytes.Buffer{}, false); err == nil {
		t.Error("GetFormatter(xml) succeeded")
	}
}
