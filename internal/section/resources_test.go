package section

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/soley/admin-cli/internal/api"
	"github.com/soley/admin-cli/internal/dialog"
	"github.com/soley/admin-cli/internal/forms"
	"github.com/soley/admin-cli/internal/models"
)

type orderBackend struct {
	mu      sync.Mutex
	lists   []string
	patches []map[string]string
}

func (b *orderBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/orders/getall":
		b.lists = append(b.lists, r.URL.RawQuery)
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		orders := []map[string]any{}
		for i := 0; i < 10; i++ {
			orders = append(orders, map[string]any{
				"_id":    fmt.Sprintf("o%d-%d", page, i),
				"total":  12.5,
				"status": "pending",
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"orders":      orders,
			"currentPage": page,
			"totalPages":  3,
			"totalOrders": 25,
		})
	case r.Method == http.MethodPatch:
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.patches = append(b.patches, body)
		_, _ = w.Write([]byte(`{"success":true}`))
	default:
		http.NotFound(w, r)
	}
}

func newOrders(t *testing.T) (*OrderSection, *orderBackend, *dialog.Manager) {
	t.Helper()
	backend := &orderBackend{}
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	notes := dialog.NewManager(nil, nil)
	sec := Orders(Deps{
		Client:   api.NewClient(api.Options{BaseURL: srv.URL, Token: "tok"}, nil),
		Notifier: notes,
		PageSize: 10,
	})
	t.Cleanup(sec.Close)
	return sec, backend, notes
}

func TestOrdersNextAtLastPageIsNoop(t *testing.T) {
	sec, backend, _ := newOrders(t)
	ctx := context.Background()

	if err := sec.List().Load(ctx, 2, ""); err != nil {
		t.Fatal(err)
	}
	if err := sec.List().Next(ctx); err != nil {
		t.Fatal(err)
	}
	if got := sec.List().Snapshot().Info.CurrentPage; got != 3 {
		t.Fatalf("current page = %d, want 3", got)
	}
	if err := sec.List().Next(ctx); err != nil {
		t.Fatal(err)
	}

	backend.mu.Lock()
	defer backend.mu.Unlock()
	if len(backend.lists) != 2 {
		t.Errorf("list requests = %v, want 2", backend.lists)
	}
	if backend.lists[1] != "limit=10&page=3" {
		t.Errorf("query = %q", backend.lists[1])
	}
}

func TestOrderStatusUpdate(t *testing.T) {
	sec, backend, notes := newOrders(t)
	ctx := context.Background()
	if err := sec.Mount(ctx); err != nil {
		t.Fatal(err)
	}

	if err := sec.UpdateStatus(ctx, "o1-0", forms.OrderStatusForm{Status: models.OrderReady}); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	backend.mu.Lock()
	defer backend.mu.Unlock()
	if len(backend.patches) != 1 {
		t.Fatalf("patches = %d", len(backend.patches))
	}
	if p := backend.patches[0]; p["status"] != "ready" || p["message"] != "Status updated to ready" {
		t.Errorf("patch body = %v", p)
	}
	if len(backend.lists) != 2 {
		t.Errorf("list requests = %d, want mount + one reload", len(backend.lists))
	}
	if n := notes.Notification(); n.Message != "Order status updated successfully" {
		t.Errorf("notification = %+v", n)
	}
}

func TestOrderRowsRenderCurrencyAndBadge(t *testing.T) {
	sec, _, _ := newOrders(t)
	if err := sec.Mount(context.Background()); err != nil {
		t.Fatal(err)
	}
	row := sec.Rows()[0]
	if row[4] != "€12.50" || row[5] != "PENDING" {
		t.Errorf("row = %v", row)
	}
}

func TestOfferValue(t *testing.T) {
	tests := []struct {
		offer models.Offer
		want  string
	}{
		{models.Offer{Type: models.OfferPercentage, Value: 15}, "15%"},
		{models.Offer{Type: models.OfferFixedAmount, Value: 5}, "€5.00"},
		{models.Offer{Type: models.OfferCombo, ComboPrice: 19.9}, "€19.90"},
		{models.Offer{Type: models.OfferFreeDelivery}, "free delivery"},
	}
	for _, tt := range tests {
		if got := OfferValue(tt.offer); got != tt.want {
			t.Errorf("OfferValue(%s) = %q, want %q", tt.offer.Type, got, tt.want)
		}
	}
	if got := Platforms(nil); got != "ALL" {
		t.Errorf("Platforms(nil) = %q", got)
	}
	if got := Platforms([]string{"web", "mobile"}); got != "WEB, MOBILE" {
		t.Errorf("Platforms() = %q", got)
	}
}
