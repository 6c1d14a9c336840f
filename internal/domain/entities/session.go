package entities

import "sync"

// Stage represents the position of a sender inside the order dialogue.
//
// Domain notes:
//   - The dialogue is linear: greeting -> name -> address -> phone ->
//     product search -> quantity, then back to product search or finish.
//   - Every transition lands on one of these values; unknown values are
//     normalized back to StageIdle by the dialogue use case.

type Stage string

const (
	StageIdle                 Stage = "idle"
	StageAwaitingName         Stage = "awaiting_name"
	StageAwaitingAddress      Stage = "awaiting_address"
	StageAwaitingPhone        Stage = "awaiting_phone"
	StageAwaitingProductQuery Stage = "awaiting_product_query"
	StageAwaitingSelection    Stage = "awaiting_selection"
	StageAwaitingQuantity     Stage = "awaiting_quantity"
)

// CustomerData holds the free-text customer fields collected during the
// dialogue. Name and address are accepted verbatim (trimmed only); the phone
// is validated to exactly 10 decimal digits before it is stored.
type CustomerData struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CartLine is a confirmed product selection. Lines are append-only: once a
// quantity is confirmed the line never changes until the whole cart is
// discarded by finalization or a restart.
type CartLine struct {
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// Session is the per-sender conversation state retained across webhook turns.
//
// Concurrency model:
//   - One Session per normalized sender id, created on first contact and kept
//     for the life of the process (no TTL).
//   - The embedded mutex serializes turns for the same sender; the dialogue
//     use case holds it for the whole turn, external store calls included.
//   - ResetData mutates in place so the pointer (and its mutex) stays stable
//     even across finalization resets.
type Session struct {
	sync.Mutex

	SenderID      string       `json:"sender_id"`
	Stage         Stage        `json:"stage"`
	Customer      CustomerData `json:"customer"`
	Cart          []CartLine   `json:"cart"`
	SearchResults []Product    `json:"search_results"`
	Selected      *Product     `json:"selected,omitempty"`
}

func NewSession(senderID string) *Session {
	return &Session{SenderID: senderID, Stage: StageIdle}
}

// ResetData restores the session to its initial defaults, keeping the sender
// id. Callers must hold the session lock.
func (s *Session) ResetData() {
	s.Stage = StageIdle
	s.Customer = CustomerData{}
	s.Cart = nil
	s.SearchResults = nil
	s.Selected = nil
}

// CartTotal sums the line totals of the cart.
func (s *Session) CartTotal() float64 {
	total := 0.0
	for _, line := range s.Cart {
		total += line.LineTotal
	}
	return total
}
