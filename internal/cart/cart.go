// Package cart owns the shopping cart state for a browser session. All
// mutations flow through a single pure transition function over tagged
// commands; Total and ItemCount are recomputed in the same transition as
// every items change, never updated independently.
package cart

import "time"

// ProductSnapshot is the owned copy of a product taken when it enters the
// cart. Later catalog changes do not retroactively affect cart entries: the
// first-added snapshot wins, preserving price-at-add-time.
type ProductSnapshot struct {
	ID       string `json:"id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"image_url,omitempty"`
	Volume   string `json:"volume,omitempty"`
}

// Entry is a (product snapshot, quantity) pair. An entry present in the
// cart always has Quantity >= 1; a quantity that would drop to 0 or below
// removes the entry entirely.
type Entry struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

// State is the cart state. Items is ordered and unique by product id;
// Total and ItemCount are pure functions of Items.
type State struct {
	Items     []Entry `json:"items"`
	Total     int64   `json:"total"`
	ItemCount int     `json:"item_count"`
}

// Empty returns the empty cart state.
func Empty() State {
	return State{Items: []Entry{}}
}

// IsInCart reports whether an entry with the given product id is present.
func (s State) IsInCart(productID string) bool {
	return s.indexOf(productID) >= 0
}

// QuantityOf returns the quantity for the given product id, or 0 if absent.
func (s State) QuantityOf(productID string) int {
	if i := s.indexOf(productID); i >= 0 {
		return s.Items[i].Quantity
	}
	return 0
}

func (s State) indexOf(productID string) int {
	for i := range s.Items {
		if s.Items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// Command is a tagged cart mutation consumed by Apply.
type Command interface {
	isCommand()
}

// Add puts one unit of the product in the cart. If an entry with the same
// product id exists its quantity is incremented and the stored snapshot is
// kept; otherwise a new entry with quantity 1 is appended.
type Add struct {
	Product ProductSnapshot
}

// Remove deletes the entry with the given product id. Absent ids are a
// no-op, not an error.
type Remove struct {
	ProductID string
}

// SetQuantity sets the entry's quantity to exactly Quantity (absolute, not
// a delta). A non-positive quantity removes the entry; absent ids are a
// no-op.
type SetQuantity struct {
	ProductID string
	Quantity  int
}

// Clear resets the cart to empty.
type Clear struct{}

// Merge folds entries from another source (e.g. a saved cart) into this
// one: quantities combine for existing product ids, unknown ids append.
type Merge struct {
	Items []Entry
}

func (Add) isCommand()         {}
func (Remove) isCommand()      {}
func (SetQuantity) isCommand() {}
func (Clear) isCommand()       {}
func (Merge) isCommand()       {}

// Apply is the single transition function for cart state. It never fails:
// every command maps any valid state to a valid state. The input state is
// not mutated.
func Apply(s State, cmd Command) State {
	switch c := cmd.(type) {
	case Add:
		items := cloneItems(s.Items)
		if i := s.indexOf(c.Product.ID); i >= 0 {
			// Keep the stored snapshot; only the quantity changes.
			items[i].Quantity++
		} else {
			items = append(items, Entry{Product: c.Product, Quantity: 1})
		}
		return recompute(items)

	case Remove:
		i := s.indexOf(c.ProductID)
		if i < 0 {
			return s
		}
		items := make([]Entry, 0, len(s.Items)-1)
		items = append(items, s.Items[:i]...)
		items = append(items, s.Items[i+1:]...)
		return recompute(items)

	case SetQuantity:
		i := s.indexOf(c.ProductID)
		if i < 0 {
			return s
		}
		if c.Quantity <= 0 {
			return Apply(s, Remove{ProductID: c.ProductID})
		}
		items := cloneItems(s.Items)
		items[i].Quantity = c.Quantity
		return recompute(items)

	case Clear:
		return Empty()

	case Merge:
		if len(c.Items) == 0 {
			return s
		}
		items := cloneItems(s.Items)
		for _, incoming := range c.Items {
			if incoming.Quantity < 1 {
				continue
			}
			merged := false
			for i := range items {
				if items[i].Product.ID == incoming.Product.ID {
					items[i].Quantity += incoming.Quantity
					merged = true
					break
				}
			}
			if !merged {
				items = append(items, incoming)
			}
		}
		return recompute(items)

	default:
		return s
	}
}

func cloneItems(items []Entry) []Entry {
	out := make([]Entry, len(items))
	copy(out, items)
	return out
}

func recompute(items []Entry) State {
	s := State{Items: items}
	for _, e := range items {
		s.Total += e.Product.Price * int64(e.Quantity)
		s.ItemCount += e.Quantity
	}
	return s
}

// Session wraps a cart state with the persistence metadata the repository
// needs: the owning session key, an optimistic-locking version, and expiry.
type Session struct {
	SessionID string    `json:"session_id"`
	State     State     `json:"state"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
