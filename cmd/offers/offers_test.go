package offers

import (
	"reflect"
	"testing"

	"github.com/soley/admin-cli/internal/models"
)

func TestComboItemsSortedByID(t *testing.T) {
	got := comboItems(map[string]int{"f3": 1, "f1": 2, "f2": 1})
	want := []models.ComboItem{{FoodItem: "f1", Quantity: 2}, {FoodItem: "f2", Quantity: 1}, {FoodItem: "f3", Quantity: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v", got)
	}
	if got := comboItems(nil); len(got) != 0 {
		t.Errorf("empty map gave %+v", got)
	}
}
