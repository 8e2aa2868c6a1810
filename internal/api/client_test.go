package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/soley/admin-cli/internal/models"
	"github.com/soley/admin-cli/internal/utils"
)

type recorded struct {
	method, path, query string
	header              http.Header
	body                string
}

// newTestClient serves every request with handler and records it.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *[]recorded) {
	t.Helper()
	var reqs []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		reqs = append(reqs, recorded{r.Method, r.URL.Path, r.URL.RawQuery, r.Header.Clone(), string(body)})
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Options{
		BaseURL:   srv.URL + "/api/v1/",
		UploadURL: srv.URL + "/api/upload",
		Token:     "tok",
		Language:  "es-ES",
		DeviceID:  "device_1_abc",
		Timeout:   5 * time.Second,
	}, nil)
	return c, &reqs
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

func TestRequestSendsSessionHeaders(t *testing.T) {
	c, reqs := newTestClient(t, respond(200, `{}`))

	if err := c.Request(context.Background(), http.MethodGet, "/settings", nil, http.Header{"X-Trace": {"1"}}, nil); err != nil {
		t.Fatalf("Request: %v", err)
	}

	r := (*reqs)[0]
	if r.path != "/api/v1/settings" {
		t.Errorf("path = %q", r.path)
	}
	if got := r.header.Get("Authorization"); got != "Bearer tok" {
		t.Errorf("Authorization = %q", got)
	}
	if got := r.header.Get("Accept-Language"); got != "es" {
		t.Errorf("Accept-Language = %q", got)
	}
	if r.header.Get("X-Trace") != "1" || r.header.Get("Content-Type") != "application/json" {
		t.Errorf("headers = %v", r.header)
	}
}

func TestNoAuthorizationWithoutToken(t *testing.T) {
	c, reqs := newTestClient(t, respond(200, `{}`))
	c.SetToken("")

	_ = c.Request(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	if got := (*reqs)[0].header.Get("Authorization"); got != "" {
		t.Errorf("Authorization = %q", got)
	}
}

func TestErrorNormalization(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
		message string
	}{
		{"backend message", respond(409, `{"message":"Duplicate category"}`), 409, "Duplicate category"},
		{"error field", respond(400, `{"error":"bad input"}`), 400, "bad input"},
		{"no body", respond(500, ``), 500, DefaultErrorMessage},
		{"html body", respond(502, `<html>gateway</html>`), 502, DefaultErrorMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, tt.handler)
			err := c.Request(context.Background(), http.MethodGet, "/x", nil, nil, nil)

			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %T %v, want *Error", err, err)
			}
			if apiErr.StatusCode != tt.status || apiErr.Message != tt.message {
				t.Errorf("got (%d, %q), want (%d, %q)", apiErr.StatusCode, apiErr.Message, tt.status, tt.message)
			}
		})
	}
}

func TestTransportAndDecodeFailures(t *testing.T) {
	c := NewClient(Options{BaseURL: "http://127.0.0.1:1"}, nil)
	err := c.Request(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Message != DefaultErrorMessage || errors.Unwrap(err) == nil {
		t.Errorf("transport error = %v", err)
	}

	c2, _ := newTestClient(t, respond(200, `not json`))
	var out map[string]any
	err = c2.Request(context.Background(), http.MethodGet, "/x", nil, nil, &out)
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 0 || apiErr.Message != DefaultErrorMessage {
		t.Errorf("decode error = %v", err)
	}
}

func TestStatusHelpers(t *testing.T) {
	if !IsAuthError(newError(401, "", nil)) || !IsNotFoundError(newError(404, "", nil)) || !IsForbiddenError(newError(403, "", nil)) {
		t.Error("status helpers")
	}
	if IsAuthError(errors.New("plain")) {
		t.Error("plain error classified as auth")
	}
}

func TestSearchParameterPerEndpoint(t *testing.T) {
	c, reqs := newTestClient(t, respond(200, `{}`))
	ctx := context.Background()
	p := models.ListParams{Page: 2, Limit: 10, Search: " piz "}

	_, _ = c.ListFoodItems(ctx, p, FoodItemFilter{IncludeInactive: true})
	_, _ = c.ListOrders(ctx, p)
	_, _ = c.ListCategories(ctx, p)
	_, _ = c.ListContacts(ctx, p, "pending")

	want := []string{
		"includeInactive=true&lang=es&limit=10&page=2&q=piz",
		"limit=10&page=2&q=piz",
		"limit=10&page=2&search=piz",
		"limit=10&page=2&search=piz&status=pending",
	}
	for i, w := range want {
		if got := (*reqs)[i].query; got != w {
			t.Errorf("request %d (%s) query = %q, want %q", i, (*reqs)[i].path, got, w)
		}
	}
}

func TestListDecodesEnvelope(t *testing.T) {
	c, _ := newTestClient(t, respond(200, `{"orders":[{"_id":"o1","total":9.5}],"currentPage":3,"totalPages":2,"totalOrders":12}`))

	page, err := c.ListOrders(context.Background(), models.ListParams{Page: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Items) != 1 || page.Items[0].Total != 9.5 {
		t.Errorf("items = %+v", page.Items)
	}
	if page.Info != (models.PageInfo{CurrentPage: 2, TotalPages: 2, TotalItems: 12}) {
		t.Errorf("info = %+v", page.Info)
	}
}

func TestEntityUnwrapsKeyDataOrBare(t *testing.T) {
	bodies := []string{
		`{"success":true,"category":{"_id":"c1","name":"Pizza"}}`,
		`{"success":true,"data":{"_id":"c1","name":"Pizza"}}`,
		`{"_id":"c1","name":{"en":"Pizza"}}`,
	}
	for _, body := range bodies {
		c, _ := newTestClient(t, respond(200, body))
		cat, err := c.GetCategory(context.Background(), "c1")
		if err != nil {
			t.Fatalf("%s: %v", body, err)
		}
		if cat.ID != "c1" || cat.Name.Name("en") != "Pizza" {
			t.Errorf("%s: got %+v", body, cat)
		}
	}
}

func TestLogin(t *testing.T) {
	t.Run("superadmin", func(t *testing.T) {
		c, reqs := newTestClient(t, respond(200, `{"success":true,"token":"new","user":{"id":"u1","email":"a@b.co","role":"superadmin"}}`))
		c.SetToken("")

		resp, err := c.Login(context.Background(), "a@b.co", "pw")
		if err != nil {
			t.Fatal(err)
		}
		if resp.User.ID != "u1" || c.Token() != "new" {
			t.Errorf("resp = %+v, token = %q", resp, c.Token())
		}
		var body map[string]string
		_ = json.Unmarshal([]byte((*reqs)[0].body), &body)
		if body["email"] != "a@b.co" || body["password"] != "pw" || (*reqs)[0].path != "/api/v1/auth/login" {
			t.Errorf("request = %+v", (*reqs)[0])
		}
	})

	t.Run("other role rejected", func(t *testing.T) {
		c, _ := newTestClient(t, respond(200, `{"success":true,"token":"new","user":{"id":"u2","role":"admin"}}`))
		c.SetToken("")

		_, err := c.Login(context.Background(), "a@b.co", "pw")
		if err == nil || err.Error() != AccessDeniedMessage || !IsForbiddenError(err) {
			t.Errorf("err = %v", err)
		}
		if c.Token() != "" {
			t.Error("token installed for rejected role")
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		c, _ := newTestClient(t, respond(401, `{"success":false,"message":"Invalid credentials"}`))
		_, err := c.Login(context.Background(), "a@b.co", "bad")
		if err == nil || err.Error() != "Invalid credentials" {
			t.Errorf("err = %v", err)
		}
	})
}

func TestMutationBodies(t *testing.T) {
	c, reqs := newTestClient(t, respond(200, `{"success":true}`))
	ctx := context.Background()

	_ = c.UpdateOrderStatus(ctx, "o/1", "ready", "Status updated to ready")
	_ = c.UpdateStock(ctx, "f1", 3, StockAdd)
	_ = c.ReorderBanners(ctx, []BannerOrder{{ID: "b2", Order: 0}, {ID: "b1", Order: 1}})
	_ = c.ClaimOffer(ctx, "of1")
	_ = c.ToggleDelivery(ctx, false, "Closed")

	want := []struct{ method, path, body string }{
		{http.MethodPatch, "/api/v1/orders/o%2F1/status", `{"message":"Status updated to ready","status":"ready"}`},
		{http.MethodPatch, "/api/v1/food-items/f1/stock", `{"operation":"add","quantity":3}`},
		{http.MethodPost, "/api/v1/banners/reorder", `{"bannerOrders":[{"id":"b2","order":0},{"id":"b1","order":1}]}`},
		{http.MethodPost, "/api/v1/offer/of1/claim", `{"deviceId":"device_1_abc"}`},
		{http.MethodPatch, "/api/v1/settings/delivery/toggle", `{"disabledMessage":"Closed","isEnabled":false}`},
	}
	for i, w := range want {
		r := (*reqs)[i]
		if r.method != w.method || r.body != w.body {
			t.Errorf("request %d = %s %s %s, want %s %s", i, r.method, r.path, r.body, w.method, w.body)
		}
	}
}

func TestUploadImageValidatesFirst(t *testing.T) {
	c, reqs := newTestClient(t, respond(200, `{"url":"http://x/f.png","filename":"f.png"}`))

	_, err := c.UploadImage(context.Background(), "doc.pdf", "application/pdf", strings.NewReader("%PDF"))
	if !utils.IsValidationError(err) || err.Error() != "Only image files are allowed" {
		t.Fatalf("err = %v", err)
	}
	if len(*reqs) != 0 {
		t.Fatal("request sent for invalid file")
	}

	res, err := c.UploadImage(context.Background(), "f.png", "image/png", strings.NewReader("png"))
	if err != nil {
		t.Fatal(err)
	}
	if res.URL != "http://x/f.png" || (*reqs)[0].path != "/api/upload" {
		t.Errorf("res = %+v, path = %s", res, (*reqs)[0].path)
	}
	if !strings.HasPrefix((*reqs)[0].header.Get("Content-Type"), "multipart/form-data") {
		t.Errorf("content type = %q", (*reqs)[0].header.Get("Content-Type"))
	}
}
