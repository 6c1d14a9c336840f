package repository

import (
	"context"

	"github.com/johnper68/twilio-bot-occipedido/internal/domain/entities"
	"github.com/johnper68/twilio-bot-occipedido/internal/infrastructure/appsheet"
	"github.com/johnper68/twilio-bot-occipedido/internal/usecase/interfaces"
)

const (
	defaultOrdersTableName     = "pedidos"
	defaultOrderLinesTableName = "pedido_detalle"

	dateLayout = "2006-01-02"
)

// OrderAppSheetRepository persists order headers and lines in the AppSheet
// orders tables, one Add call per row.
//
// There is no transactional link between the two tables; the finalizer owns
// the insert ordering (header first, then lines) and the abort-on-failure
// behavior.
type OrderAppSheetRepository struct {
	api             *appsheet.Client
	ordersTable     string
	orderLinesTable string
}

var _ interfaces.IOrderRepository = (*OrderAppSheetRepository)(nil)

func NewOrderAppSheetRepository(api *appsheet.Client) *OrderAppSheetRepository {
	return &OrderAppSheetRepository{
		api:             api,
		ordersTable:     getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		orderLinesTable: getenvDefault("ORDER_LINES_TABLE", defaultOrderLinesTableName),
	}
}

func (r *OrderAppSheetRepository) CreateHeader(ctx context.Context, header entities.OrderHeader) error {
	return r.api.Add(ctx, r.ordersTable, map[string]any{
		"ID":        header.OrderID,
		"Nombre":    header.CustomerName,
		"Direccion": header.Address,
		"Telefono":  header.Phone,
		"Fecha":     header.Date.Format(dateLayout),
		"Total":     header.Total,
	})
}

func (r *OrderAppSheetRepository) CreateLine(ctx context.Context, line entities.OrderLine) error {
	return r.api.Add(ctx, r.orderLinesTable, map[string]any{
		"PedidoID": line.OrderID,
		"Fecha":    line.Date.Format(dateLayout),
		"Producto": line.ProductName,
		"Cantidad": line.Quantity,
		"Precio":   line.UnitPrice,
		"Subtotal": line.LineTotal,
		"Estado":   line.Status,
	})
}
