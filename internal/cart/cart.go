// Package cart holds a single customer session's in-progress selection. The
// cart never talks to the order store; checkout hands its snapshot to the
// order service in one call.
package cart

import "backend/internal/models"

// Line is one distinct menu item in the cart. Name, UnitPrice and Image are
// frozen at add time; later catalog edits do not reach an open cart.
type Line struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// Snapshot is the quantity-less form AddItem takes from the catalog.
type Snapshot struct {
	ProductID string
	Name      string
	UnitPrice float64
	Image     string
}

// Cart is owned by exactly one customer session, so mutations are sequential
// and no locking is done here. Every mutation re-saves the lines through the
// store and notifies subscribers; the open flag is UI state and is neither
// saved nor restored.
type Cart struct {
	store       Store
	lines       []Line
	open        bool
	subscribers []func()
	onSaveErr   func(error)
}

// New builds a cart, rehydrating lines from the store when a previous session
// left a snapshot behind. A nil store gives a purely in-memory cart.
func New(store Store) *Cart {
	c := &Cart{store: store}
	if store != nil {
		if lines, err := store.Load(); err == nil {
			c.lines = lines
		}
	}
	return c
}

// OnSaveError registers a callback for store save failures. Saves never block
// or roll back a mutation.
func (c *Cart) OnSaveError(fn func(error)) {
	c.onSaveErr = fn
}

// Subscribe registers fn to run after every mutation.
func (c *Cart) Subscribe(fn func()) {
	c.subscribers = append(c.subscribers, fn)
}

// AddItem appends a new line with quantity 1, or bumps the quantity when a
// line for the same product already exists.
func (c *Cart) AddItem(s Snapshot) {
	for i := range c.lines {
		if c.lines[i].ProductID == s.ProductID {
			c.lines[i].Quantity++
			c.persist()
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: s.ProductID,
		Name:      s.Name,
		UnitPrice: s.UnitPrice,
		Quantity:  1,
		Image:     s.Image,
	})
	c.persist()
}

// RemoveItem drops the matching line. Removing an absent product is a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persist()
			return
		}
	}
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less removes
// the line, same as RemoveItem.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
	c.persist()
}

// ToggleOpen flips the drawer visibility. UI state only: nothing is saved.
func (c *Cart) ToggleOpen() {
	c.open = !c.open
	c.notify()
}

func (c *Cart) IsOpen() bool {
	return c.open
}

// Lines returns a copy in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalPrice is recomputed from the current lines on every call.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, l := range c.lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// TotalCount sums the quantities across all lines.
func (c *Cart) TotalCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Items converts the lines to order item snapshots for checkout.
func (c *Cart) Items() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, models.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.UnitPrice,
			Quantity:  l.Quantity,
			Image:     l.Image,
		})
	}
	return items
}

func (c *Cart) persist() {
	if c.store != nil {
		if err := c.store.Save(c.Lines()); err != nil && c.onSaveErr != nil {
			c.onSaveErr(err)
		}
	}
	c.notify()
}

func (c *Cart) notify() {
	for _, fn := range c.subscribers {
		fn()
	}
}
