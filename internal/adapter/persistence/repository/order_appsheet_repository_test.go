package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/johnper68/twilio-bot-occipedido/internal/domain/entities"
	"github.com/johnper68/twilio-bot-occipedido/internal/infrastructure/appsheet"
)

type capturedAdd struct {
	path string
	rows []map[string]any
}

func orderServer(t *testing.T, calls *[]capturedAdd) *appsheet.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Action string           `json:"Action"`
			Rows   []map[string]any `json:"Rows"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body.Action != "Add" {
			t.Errorf("expected Add action, got %q", body.Action)
		}
		*calls = append(*calls, capturedAdd{path: r.URL.Path, rows: body.Rows})
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)
	return appsheet.NewClient(server.URL, "test-key", "es-CO", 2*time.Second)
}

func TestOrderRepository_CreateHeader(t *testing.T) {
	var calls []capturedAdd
	repo := NewOrderAppSheetRepository(orderServer(t, &calls))

	date := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)
	err := repo.CreateHeader(context.Background(), entities.OrderHeader{
		OrderID:      "A1B2C3D4",
		CustomerName: "Jane Doe",
		Address:      "123 Main St",
		Phone:        "3001234567",
		Date:         date,
		Total:        50000,
	})
	if err != nil {
		t.Fatalf("CreateHeader: %v", err)
	}

	if len(calls) != 1 {
		t.Fatalf("expected one store call, got %d", len(calls))
	}
	if calls[0].path != "/tables/pedidos/Action" {
		t.Fatalf("unexpected table path %q", calls[0].path)
	}
	row := calls[0].rows[0]
	if row["ID"] != "A1B2C3D4" || row["Nombre"] != "Jane Doe" || row["Telefono"] != "3001234567" {
		t.Fatalf("unexpected header row: %+v", row)
	}
	if row["Fecha"] != "2026-09-01" {
		t.Fatalf("expected calendar date, got %v", row["Fecha"])
	}
	if row["Total"] != float64(50000) {
		t.Fatalf("expected numeric total, got %v (%T)", row["Total"], row["Total"])
	}
}

func TestOrderRepository_CreateLine(t *testing.T) {
	var calls []capturedAdd
	repo := NewOrderAppSheetRepository(orderServer(t, &calls))

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	err := repo.CreateLine(context.Background(), entities.OrderLine{
		OrderID:     "A1B2C3D4",
		Date:        date,
		ProductName: "Sulfuric Acid",
		Quantity:    5,
		UnitPrice:   10000,
		LineTotal:   50000,
		Status:      entities.OrderLineStatusPending,
	})
	if err != nil {
		t.Fatalf("CreateLine: %v", err)
	}

	if len(calls) != 1 {
		t.Fatalf("expected one store call, got %d", len(calls))
	}
	if calls[0].path != "/tables/pedido_detalle/Action" {
		t.Fatalf("unexpected table path %q", calls[0].path)
	}
	row := calls[0].rows[0]
	if row["PedidoID"] != "A1B2C3D4" || row["Producto"] != "Sulfuric Acid" {
		t.Fatalf("unexpected line row: %+v", row)
	}
	if row["Estado"] != "Pending" {
		t.Fatalf("expected Pending status, got %v", row["Estado"])
	}
	if row["Subtotal"] != float64(50000) {
		t.Fatalf("expected numeric subtotal, got %v", row["Subtotal"])
	}
}

func TestOrderRepository_TableOverrides(t *testing.T) {
	t.Setenv("ORDERS_TABLE", "ordenes")

	var calls []capturedAdd
	repo := NewOrderAppSheetRepository(orderServer(t, &calls))

	if err := repo.CreateHeader(context.Background(), entities.OrderHeader{OrderID: "X"}); err != nil {
		t.Fatalf("CreateHeader: %v", err)
	}
	if calls[0].path != "/tables/ordenes/Action" {
		t.Fatalf("expected env-overridden table, got %q", calls[0].path)
	}
}
