// Package checkout implements the simulated order placement flow: it
// validates the customer form, waits a fixed artificial processing delay,
// clears the session's cart, and emits an order event. Nothing is charged
// and no order record is persisted.
package checkout

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reservecold/storefront/internal/cart"
)

// Customer is the contact and delivery block of the checkout form.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Address string `json:"address"`
	Comment string `json:"comment,omitempty"`
}

// Order is the confirmation returned to the client. It exists only in the
// response and in the emitted event.
type Order struct {
	Number    string       `json:"number"`
	SessionID string       `json:"session_id"`
	Customer  Customer     `json:"customer"`
	Items     []cart.Entry `json:"items"`
	ItemCount int          `json:"item_count"`
	Total     int64        `json:"total"`
	PlacedAt  time.Time    `json:"placed_at"`
}

// NewOrderNumber generates a display order number like "RC-1A2B3C4D".
func NewOrderNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "RC-" + id[:8]
}
