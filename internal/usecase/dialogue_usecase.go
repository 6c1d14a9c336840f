package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/johnper68/twilio-bot-occipedido/internal/domain/entities"
	"github.com/johnper68/twilio-bot-occipedido/internal/usecase/interfaces"
)

// Dialogue keywords, matched case-insensitively after trimming.
const (
	keywordStart  = "pedido"
	keywordFinish = "fin"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Fixed reply texts. Free text collected from the sender is echoed nowhere
// except the final summary.
const (
	replyEmptyMessage     = "Mensaje vacío. Intenta nuevamente."
	replyWelcome          = "❓ Escribe *pedido* para comenzar tu pedido."
	replyAskName          = "👋 ¡Hola! Vamos a tomar tu pedido.\n\n✏️ Escribe tu nombre completo."
	replyAskAddress       = "🏠 Escribe tu dirección de entrega."
	replyAskPhone         = "📱 Escribe tu número de celular (10 dígitos)."
	replyInvalidPhone     = "❌ Número inválido. Debe tener exactamente 10 dígitos. Intenta nuevamente."
	replyAskProduct       = "🔎 Escribe el nombre del producto que buscas."
	replyNoMatches        = "⚠️ No se encontraron productos. Intenta con otra palabra."
	replyCatalogError     = "❌ Error al consultar productos. Intenta más tarde."
	replyInvalidSelection = "❌ Número inválido. Intenta nuevamente."
	replyInvalidQuantity  = "❌ Cantidad inválida. Escribe un número mayor que cero."
	replyCartEmpty        = "🛒 No agregaste ningún producto."
	replyOrderFailed      = "❌ Error al registrar tu pedido. Intenta más tarde."
)

// IDialogueUseCase is the per-turn entry point of the conversation state
// machine: one inbound message in, one reply text out.

type IDialogueUseCase interface {
	HandleMessage(ctx context.Context, senderID, body string) (string, error)
}

// DialogueUseCase walks a sender through the linear order dialogue:
// greeting -> name -> address -> phone -> product search -> quantity, looping
// on search until the finish keyword triggers the order finalizer.
//
// The transition function is total: every {stage, input class} pair produces
// a defined next stage and reply, and an unknown stage value is normalized
// back to idle instead of falling through silently.
type DialogueUseCase struct {
	sessions interfaces.ISessionStore
	products interfaces.IProductRepository
	orders   IOrderUseCase
	printer  *message.Printer
}

var _ IDialogueUseCase = (*DialogueUseCase)(nil)

func NewDialogueUseCase(sessions interfaces.ISessionStore, products interfaces.IProductRepository, orders IOrderUseCase, locale string) *DialogueUseCase {
	return &DialogueUseCase{
		sessions: sessions,
		products: products,
		orders:   orders,
		printer:  newPrinter(locale),
	}
}

// HandleMessage processes one turn. The session lock is held for the whole
// turn, store calls included, so turns from the same sender serialize.
// Validation failures and store failures answer with a safe reply and do not
// advance the stage; the returned error is reserved for conditions the
// caller cannot answer at all.
func (u *DialogueUseCase) HandleMessage(ctx context.Context, senderID, body string) (string, error) {
	raw := strings.TrimSpace(body)
	msg := strings.ToLower(raw)
	if msg == "" {
		return replyEmptyMessage, nil
	}

	s := u.sessions.Get(senderID)
	s.Lock()
	defer s.Unlock()

	log.Printf("[dialogue][usecase] turn sender=%s stage=%s", senderID, s.Stage)

	// Global overrides run before any stage logic.
	switch msg {
	case keywordFinish:
		return u.finish(ctx, s)
	case keywordStart:
		s.ResetData()
		s.Stage = entities.StageAwaitingName
		return replyAskName, nil
	}

	switch s.Stage {
	case entities.StageIdle:
		return replyWelcome, nil

	case entities.StageAwaitingName:
		s.Customer.Name = raw
		s.Stage = entities.StageAwaitingAddress
		return replyAskAddress, nil

	case entities.StageAwaitingAddress:
		s.Customer.Address = raw
		s.Stage = entities.StageAwaitingPhone
		return replyAskPhone, nil

	case entities.StageAwaitingPhone:
		if !phonePattern.MatchString(msg) {
			return replyInvalidPhone, nil
		}
		s.Customer.Phone = msg
		s.Stage = entities.StageAwaitingProductQuery
		return replyAskProduct, nil

	case entities.StageAwaitingProductQuery:
		return u.search(ctx, s, msg)

	case entities.StageAwaitingSelection:
		index, err := strconv.Atoi(msg)
		if err != nil || index < 1 || index > len(s.SearchResults) {
			return replyInvalidSelection, nil
		}
		selected := s.SearchResults[index-1]
		s.Selected = &selected
		s.Stage = entities.StageAwaitingQuantity
		return fmt.Sprintf("🔢 ¿Cuántas unidades de *%s* deseas?", selected.Name), nil

	case entities.StageAwaitingQuantity:
		// ParseFloat accepts "nan" and "inf"; neither is a valid quantity.
		quantity, err := strconv.ParseFloat(msg, 64)
		if err != nil || math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity <= 0 {
			return replyInvalidQuantity, nil
		}
		if s.Selected == nil {
			// Stage was reached without a selection; restart the search loop.
			s.Stage = entities.StageAwaitingProductQuery
			return replyAskProduct, nil
		}
		line := entities.CartLine{
			ProductName: s.Selected.Name,
			Quantity:    quantity,
			UnitPrice:   s.Selected.UnitPrice,
			LineTotal:   quantity * s.Selected.UnitPrice,
		}
		s.Cart = append(s.Cart, line)
		s.Selected = nil
		s.SearchResults = nil
		s.Stage = entities.StageAwaitingProductQuery
		return fmt.Sprintf("✅ Agregado: %s x%s.\n\n🔎 Escribe otro producto o *fin* para terminar.", line.ProductName, formatQuantity(line.Quantity)), nil

	default:
		log.Printf("[dialogue][usecase] unknown stage sender=%s stage=%q, resetting", senderID, s.Stage)
		s.ResetData()
		return replyWelcome, nil
	}
}

// finish runs the order finalizer. With an empty cart it never mutates the
// session. On persistence failure the cart and stage stay untouched so the
// sender can retry the finish keyword; on success the session is reset to
// its defaults.
func (u *DialogueUseCase) finish(ctx context.Context, s *entities.Session) (string, error) {
	if len(s.Cart) == 0 {
		return replyCartEmpty, nil
	}

	summary, err := u.orders.PlaceOrder(ctx, s.Customer, s.Cart)
	if err != nil {
		log.Printf("[dialogue][usecase] finalize failed sender=%s err=%v", s.SenderID, err)
		return replyOrderFailed, nil
	}

	s.ResetData()
	return summary, nil
}

func (u *DialogueUseCase) search(ctx context.Context, s *entities.Session, term string) (string, error) {
	products, err := u.products.SearchByName(ctx, term)
	if err != nil {
		log.Printf("[dialogue][usecase] catalog search failed sender=%s term=%q err=%v", s.SenderID, term, err)
		return replyCatalogError, nil
	}
	if len(products) == 0 {
		return replyNoMatches, nil
	}

	s.SearchResults = products
	s.Stage = entities.StageAwaitingSelection

	var b strings.Builder
	b.WriteString("📦 *Productos encontrados:*\n\n")
	for i, p := range products {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, p.Name, formatMoney(u.printer, p.UnitPrice))
	}
	b.WriteString("\n✏️ Escribe el número del producto para elegirlo.")
	return b.String(), nil
}
