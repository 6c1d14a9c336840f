package entities

import "time"

// OrderLineStatusPending is the fixed status every persisted line starts
// with; downstream fulfillment owns any later transitions.
const OrderLineStatusPending = "Pending"

// OrderHeader is the persisted order record. It is created once at
// finalization and never mutated afterwards.
//
// Storage model (AppSheet orders table):
//   - ID: opaque random token generated at finalization
//   - Fecha: calendar date of the order
//   - Total: decimal sum of all line totals
type OrderHeader struct {
	OrderID      string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Date         time.Time `json:"date"`
	Total        float64   `json:"total"`
}

// OrderLine is the persisted form of a CartLine, carrying the foreign
// reference to the header. Consistency between header and lines is a design
// assumption, not a guarantee: a line insert can fail after the header was
// written.
type OrderLine struct {
	OrderID     string    `json:"order_id"`
	Date        time.Time `json:"date"`
	ProductName string    `json:"product_name"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	LineTotal   float64   `json:"line_total"`
	Status      string    `json:"status"`
}
