package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/johnper68/twilio-bot-occipedido/internal/infrastructure/appsheet"
)

func catalogServer(t *testing.T, payload string) *appsheet.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tables/productos/Action" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	t.Cleanup(server.Close)
	return appsheet.NewClient(server.URL, "test-key", "es-CO", 2*time.Second)
}

func TestProductRepository_SearchByName(t *testing.T) {
	api := catalogServer(t, `{"value":[
		{"Nombre":"Sulfuric Acid","Precio":10000},
		{"Nombre":"Bleach","Precio":"3500"},
		{"Nombre":"Citric Acid","Precio":"$12,500"},
		{"Nombre":"","Precio":99},
		{"Precio":45}
	]}`)
	repo := NewProductAppSheetRepository(api)

	t.Run("case-insensitive substring match", func(t *testing.T) {
		products, err := repo.SearchByName(context.Background(), "  ACID ")
		if err != nil {
			t.Fatalf("SearchByName: %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(products))
		}
		if products[0].Name != "Sulfuric Acid" || products[0].UnitPrice != 10000 {
			t.Fatalf("unexpected first match: %+v", products[0])
		}
		if products[1].Name != "Citric Acid" || products[1].UnitPrice != 12500 {
			t.Fatalf("currency-prefixed price must parse: %+v", products[1])
		}
	})

	t.Run("no matches", func(t *testing.T) {
		products, err := repo.SearchByName(context.Background(), "caviar")
		if err != nil {
			t.Fatalf("SearchByName: %v", err)
		}
		if len(products) != 0 {
			t.Fatalf("expected no matches, got %d", len(products))
		}
	})

	t.Run("rows without a name are skipped", func(t *testing.T) {
		products, err := repo.SearchByName(context.Background(), "")
		if err != nil {
			t.Fatalf("SearchByName: %v", err)
		}
		for _, p := range products {
			if p.Name == "" {
				t.Fatalf("nameless row leaked into results: %+v", products)
			}
		}
	})
}

func TestProductRepository_CapsResults(t *testing.T) {
	api := catalogServer(t, `{"value":[
		{"Nombre":"Acid 1","Precio":1},
		{"Nombre":"Acid 2","Precio":2},
		{"Nombre":"Acid 3","Precio":3},
		{"Nombre":"Acid 4","Precio":4},
		{"Nombre":"Acid 5","Precio":5},
		{"Nombre":"Acid 6","Precio":6},
		{"Nombre":"Acid 7","Precio":7}
	]}`)
	repo := NewProductAppSheetRepository(api)

	products, err := repo.SearchByName(context.Background(), "acid")
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(products) != maxSearchResults {
		t.Fatalf("expected cap of %d, got %d", maxSearchResults, len(products))
	}
	// Store order is preserved: the first five rows win.
	if products[0].Name != "Acid 1" || products[4].Name != "Acid 5" {
		t.Fatalf("expected first five rows in store order, got %+v", products)
	}
}

func TestProductRepository_StoreError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)
	repo := NewProductAppSheetRepository(appsheet.NewClient(server.URL, "test-key", "es-CO", 2*time.Second))

	if _, err := repo.SearchByName(context.Background(), "acid"); err == nil {
		t.Fatal("expected error from failing store")
	}
}
