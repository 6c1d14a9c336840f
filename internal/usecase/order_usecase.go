package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/message"

	"github.com/johnper68/twilio-bot-occipedido/internal/domain/entities"
	"github.com/johnper68/twilio-bot-occipedido/internal/usecase/interfaces"
)

var ErrEmptyCart = errors.New("empty cart")

const orderIDLength = 8

// IOrderUseCase encapsulates order finalization: turning a confirmed cart
// into persisted records and producing the confirmation text.

type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, customer entities.CustomerData, cart []entities.CartLine) (string, error)
}

type OrderUseCase struct {
	repo    interfaces.IOrderRepository
	printer *message.Printer
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, locale string) *OrderUseCase {
	return &OrderUseCase{repo: repo, printer: newPrinter(locale)}
}

// PlaceOrder persists the header and then each line sequentially, one store
// call per row. Any insert failure aborts the remaining inserts and returns
// the error without touching the caller's cart, so the sender can retry;
// this can leave a header persisted with zero or partial lines.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, customer entities.CustomerData, cart []entities.CartLine) (string, error) {
	if len(cart) == 0 {
		return "", ErrEmptyCart
	}

	orderID := newOrderID()
	date := time.Now().UTC()
	total := 0.0
	for _, line := range cart {
		total += line.LineTotal
	}

	header := entities.OrderHeader{
		OrderID:      orderID,
		CustomerName: customer.Name,
		Address:      customer.Address,
		Phone:        customer.Phone,
		Date:         date,
		Total:        total,
	}

	log.Printf("[order][usecase] place start order_id=%s customer=%q lines=%d total=%.2f", orderID, customer.Name, len(cart), total)
	if err := u.repo.CreateHeader(ctx, header); err != nil {
		log.Printf("[order][usecase] header insert failed order_id=%s err=%v", orderID, err)
		return "", fmt.Errorf("create order header: %w", err)
	}

	lines := make([]entities.OrderLine, 0, len(cart))
	for i, cartLine := range cart {
		line := entities.OrderLine{
			OrderID:     orderID,
			Date:        date,
			ProductName: cartLine.ProductName,
			Quantity:    cartLine.Quantity,
			UnitPrice:   cartLine.UnitPrice,
			LineTotal:   cartLine.LineTotal,
			Status:      entities.OrderLineStatusPending,
		}
		if err := u.repo.CreateLine(ctx, line); err != nil {
			log.Printf("[order][usecase] line insert failed order_id=%s line=%d err=%v", orderID, i+1, err)
			return "", fmt.Errorf("create order line %d: %w", i+1, err)
		}
		lines = append(lines, line)
	}

	log.Printf("[order][usecase] place success order_id=%s lines=%d", orderID, len(lines))
	return u.buildSummary(header, lines), nil
}

func (u *OrderUseCase) buildSummary(header entities.OrderHeader, lines []entities.OrderLine) string {
	var b strings.Builder
	b.WriteString("🧾 *Resumen de tu pedido:*\n\n")
	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s x%s = %s\n", i+1, line.ProductName, formatQuantity(line.Quantity), formatMoney(u.printer, line.LineTotal))
	}
	fmt.Fprintf(&b, "\n💰 Total: %s\n", formatMoney(u.printer, header.Total))
	fmt.Fprintf(&b, "📦 Gracias por tu pedido, %s. Tu número de orden es %s.", header.CustomerName, header.OrderID)
	return b.String()
}

func newOrderID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return raw[:orderIDLength]
}
