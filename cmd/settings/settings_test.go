package settings

import (
	"reflect"
	"testing"
)

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"taxRate=12.5", "open=true", "maxTables=30", "name=Casa Soley", "note="})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"taxRate":   12.5,
		"open":      true,
		"maxTables": 30,
		"name":      "Casa Soley",
		"note":      "",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
	if k := keys(got); !reflect.DeepEqual(k, []string{"maxTables", "name", "note", "open", "taxRate"}) {
		t.Errorf("keys = %v", k)
	}
}

func TestParseAssignmentsRejectsMalformed(t *testing.T) {
	for _, arg := range []string{"novalue", "=x"} {
		if _, err := parseAssignments([]string{arg}); err == nil {
			t.Errorf("%q: expected error", arg)
		}
	}
}
