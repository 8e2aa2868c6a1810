package models

import (
	"encoding/json"
	"testing"
)

func TestLocalizedDecodesBothShapes(t *testing.T) {
	var item struct {
		Plain  Localized `json:"plain"`
		Object Localized `json:"object"`
		Null   Localized `json:"null"`
	}
	body := `{"plain":"Burger","object":{"en":"Salad","es":"Ensalada","rank":3},"null":null}`
	if err := json.Unmarshal([]byte(body), &item); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got := item.Plain.Name("es"); got != "Burger" {
		t.Errorf("plain Name(es) = %q", got)
	}
	if got := item.Object.Name("es"); got != "Ensalada" {
		t.Errorf("object Name(es) = %q", got)
	}
	if _, ok := item.Object["rank"]; ok {
		t.Error("non-string entry kept")
	}
	if got := item.Null.Description("en"); got != PlaceholderDescription {
		t.Errorf("null Description = %q", got)
	}
}

func TestLocalizedFallbacks(t *testing.T) {
	tests := []struct {
		name string
		l    Localized
		lang string
		want string
	}{
		{"requested language", Localized{"en": "Soup", "fr": "Soupe"}, "fr", "Soupe"},
		{"blank falls back to english", Localized{"en": "Soup", "fr": "  "}, "fr", "Soup"},
		{"missing english", Localized{"es": "Sopa"}, "ca", PlaceholderName},
		{"nil", nil, "en", PlaceholderName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.Name(tt.lang); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestLocalizedTrimmed(t *testing.T) {
	got := Localized{"en": " Tea ", "xx": "dropped"}.Trimmed()
	if len(got) != len(Languages) {
		t.Fatalf("len = %d, want %d", len(got), len(Languages))
	}
	if got["en"] != "Tea" || got["ar"] != "" {
		t.Errorf("Trimmed = %v", got)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := map[string]string{
		"":                "en",
		"es":              "es",
		"fr-CA":           "fr",
		"ca-ES,ca;q=0.9":  "ca",
		"de":              "en",
		"ar-SA":           "ar",
		"not a language!": "en",
	}
	for in, want := range tests {
		if got := NormalizeLanguage(in); got != want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCategoryRefShapes(t *testing.T) {
	var items []struct {
		Category CategoryRef `json:"category"`
	}
	body := `[{"category":"c1"},{"category":{"_id":"c2","name":{"en":"Drinks"}}},{"category":null}]`
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if items[0].Category.ID != "c1" || items[0].Category.Name != nil {
		t.Errorf("id form = %+v", items[0].Category)
	}
	if items[1].Category.ID != "c2" || items[1].Category.Name.Name("en") != "Drinks" {
		t.Errorf("object form = %+v", items[1].Category)
	}
	if items[2].Category.ID != "" {
		t.Errorf("null form = %+v", items[2].Category)
	}
}

func TestPageInfoNormalize(t *testing.T) {
	tests := []struct {
		in, want PageInfo
	}{
		{PageInfo{}, PageInfo{CurrentPage: 1, TotalPages: 1}},
		{PageInfo{CurrentPage: 5, TotalPages: 3, TotalItems: 30}, PageInfo{CurrentPage: 3, TotalPages: 3, TotalItems: 30}},
		{PageInfo{CurrentPage: -1, TotalPages: 2, TotalItems: -4}, PageInfo{CurrentPage: 1, TotalPages: 2}},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("Normalize(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestEnvelopes(t *testing.T) {
	var contacts ContactList
	body := `{"data":[{"_id":"m1","status":"pending"}],"pagination":{"page":2,"limit":10,"total":11,"pages":2}}`
	if err := json.Unmarshal([]byte(body), &contacts); err != nil {
		t.Fatal(err)
	}
	page := contacts.Page()
	if len(page.Items) != 1 || page.Info != (PageInfo{CurrentPage: 2, TotalPages: 2, TotalItems: 11}) {
		t.Errorf("contacts page = %+v", page)
	}

	var cats CategoryList
	if err := json.Unmarshal([]byte(`{"categories":[{"_id":"a"},{"_id":"b"}]}`), &cats); err != nil {
		t.Fatal(err)
	}
	if got := cats.Page().Info; got != (PageInfo{CurrentPage: 1, TotalPages: 1, TotalItems: 2}) {
		t.Errorf("legacy categories info = %+v", got)
	}

	var items FoodItemList
	if err := json.Unmarshal([]byte(`{"count":7,"currentPage":1,"totalPages":1}`), &items); err != nil {
		t.Fatal(err)
	}
	if p := items.Page(); p.Items == nil || p.Info.TotalItems != 7 {
		t.Errorf("items page = %+v", p)
	}
}
