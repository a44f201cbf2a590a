package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/luxesalon/salon-platform/pkg/logging"
)

func newTestRouter() http.Handler {
	handler := NewHandler(NewInMemoryRepository(), logging.Default())
	r := chi.NewRouter()
	r.Get("/catalog/services", handler.ListServices)
	r.Get("/catalog/services/{serviceID}", handler.GetService)
	r.Get("/catalog/stylists", handler.ListStylists)
	r.Get("/catalog/stylists/{stylistID}", handler.GetStylist)
	r.Get("/catalog/slots", handler.ListTimeSlots)
	return r
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestListEndpoints(t *testing.T) {
	h := newTestRouter()

	cases := []struct {
		path  string
		field string
		count int
	}{
		{"/catalog/services", "services", 4},
		{"/catalog/stylists", "stylists", 3},
		{"/catalog/slots", "slots", 7},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := get(t, h, tc.path)
			if w.Code != http.StatusOK {
				t.Fatalf("expected %d, got %d", http.StatusOK, w.Code)
			}
			var body map[string]json.RawMessage
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			var count int
			if err := json.Unmarshal(body["count"], &count); err != nil {
				t.Fatalf("decode count: %v", err)
			}
			if count != tc.count {
				t.Errorf("expected count %d, got %d", tc.count, count)
			}
			if _, ok := body[tc.field]; !ok {
				t.Errorf("expected %q field in response", tc.field)
			}
		})
	}
}

func TestGetServiceEndpoint(t *testing.T) {
	h := newTestRouter()

	w := get(t, h, "/catalog/services/s2")
	if w.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, w.Code)
	}
	var svc Service
	if err := json.NewDecoder(w.Body).Decode(&svc); err != nil {
		t.Fatalf("decode service: %v", err)
	}
	if svc.Name != "Beard Sculpting" || svc.PriceCents != 3000 {
		t.Errorf("unexpected service: %+v", svc)
	}

	w = get(t, h, "/catalog/services/unknown")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestGetStylistEndpoint(t *testing.T) {
	h := newTestRouter()

	w := get(t, h, "/catalog/stylists/st3")
	if w.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, w.Code)
	}
	var st Stylist
	if err := json.NewDecoder(w.Body).Decode(&st); err != nil {
		t.Fatalf("decode stylist: %v", err)
	}
	if st.Name != "Sarah Jenkins" || st.Role != "Esthetician" {
		t.Errorf("unexpected stylist: %+v", st)
	}

	w = get(t, h, "/catalog/stylists/unknown")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, w.Code)
	}
}
