package appsheet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, "test-key", "es-CO", 2*time.Second)
}

func TestClient_Find(t *testing.T) {
	var captured struct {
		method string
		path   string
		key    string
		body   requestBody
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.key = r.Header.Get("ApplicationAccessKey")
		if err := json.NewDecoder(r.Body).Decode(&captured.body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":[{"Nombre":"Sulfuric Acid","Precio":10000},{"Nombre":"Citric Acid","Precio":"12500"}]}`))
	}))
	defer server.Close()

	rows, err := newTestClient(server.URL).Find(context.Background(), "productos")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	if captured.method != http.MethodPost {
		t.Fatalf("expected POST, got %s", captured.method)
	}
	if captured.path != "/tables/productos/Action" {
		t.Fatalf("unexpected path %q", captured.path)
	}
	if captured.key != "test-key" {
		t.Fatalf("expected access key header, got %q", captured.key)
	}
	if captured.body.Action != "Find" {
		t.Fatalf("expected Find action, got %q", captured.body.Action)
	}
	if captured.body.Properties.Locale != "es-CO" {
		t.Fatalf("expected locale es-CO, got %q", captured.body.Properties.Locale)
	}
	if len(captured.body.Rows) != 0 {
		t.Fatalf("Find must send no rows, got %d", len(captured.body.Rows))
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["Nombre"] != "Sulfuric Acid" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
}

func TestClient_Add(t *testing.T) {
	var body requestBody
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	err := newTestClient(server.URL).Add(context.Background(), "pedidos", map[string]any{"ID": "A1B2C3D4"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if body.Action != "Add" {
		t.Fatalf("expected Add action, got %q", body.Action)
	}
	if len(body.Rows) != 1 || body.Rows[0]["ID"] != "A1B2C3D4" {
		t.Fatalf("expected the single row, got %+v", body.Rows)
	}
}

func TestClient_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Find(context.Background(), "productos")
	if err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestClient_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value": not-json`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Find(context.Background(), "productos")
	if err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newTestClient(server.URL).Find(context.Background(), "productos")
	if err == nil {
		t.Fatal("expected error when the store is unreachable")
	}
}

func TestNewClientFromEnv(t *testing.T) {
	t.Run("missing base url", func(t *testing.T) {
		t.Setenv("APPSHEET_BASE_URL", "")
		t.Setenv("APPSHEET_API_KEY", "k")
		if _, err := NewClientFromEnv(); !errors.Is(err, ErrMissingBaseURL) {
			t.Fatalf("expected ErrMissingBaseURL, got %v", err)
		}
	})

	t.Run("missing access key", func(t *testing.T) {
		t.Setenv("APPSHEET_BASE_URL", "https://example.test/api")
		t.Setenv("APPSHEET_API_KEY", "")
		if _, err := NewClientFromEnv(); !errors.Is(err, ErrMissingAccessKey) {
			t.Fatalf("expected ErrMissingAccessKey, got %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("APPSHEET_BASE_URL", "https://example.test/api")
		t.Setenv("APPSHEET_API_KEY", "k")
		t.Setenv("APPSHEET_LOCALE", "")
		t.Setenv("APPSHEET_TIMEOUT_SECONDS", "")
		c, err := NewClientFromEnv()
		if err != nil {
			t.Fatalf("NewClientFromEnv: %v", err)
		}
		if c.Locale() != defaultLocale {
			t.Fatalf("expected default locale, got %q", c.Locale())
		}
		if c.httpClient.Timeout != defaultTimeoutSeconds*time.Second {
			t.Fatalf("expected default timeout, got %v", c.httpClient.Timeout)
		}
	})
}
