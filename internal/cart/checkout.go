package cart

import (
	"context"
	"strings"

	"backend/internal/models"
	"backend/internal/orders"
)

// Form carries the customer-entered checkout fields.
type Form struct {
	Name      string
	Email     string
	Phone     string
	Address   string
	OrderType models.OrderType
	Notes     string
}

// OrderPlacer is what checkout submits to. *orders.Service satisfies it.
type OrderPlacer interface {
	Create(ctx context.Context, req orders.CreateRequest) (models.Order, error)
}

// Checkout validates locally, then submits exactly one creation request. On
// success the cart is cleared and the drawer closed. On any failure the cart
// is left untouched so the customer can retry, and the error is returned
// unchanged.
func Checkout(ctx context.Context, c *Cart, form Form, placer OrderPlacer) (models.Order, error) {
	if c.TotalCount() == 0 {
		return models.Order{}, orders.ValidationError{Field: "items", Message: "cart is empty"}
	}
	if strings.TrimSpace(form.Name) == "" {
		return models.Order{}, orders.ValidationError{Field: "customerName", Message: "customer name is required"}
	}
	if strings.TrimSpace(form.Email) == "" {
		return models.Order{}, orders.ValidationError{Field: "customerEmail", Message: "customer email is required"}
	}
	if strings.TrimSpace(form.Phone) == "" {
		return models.Order{}, orders.ValidationError{Field: "customerPhone", Message: "customer phone is required"}
	}
	if !form.OrderType.Valid() {
		return models.Order{}, orders.ValidationError{Field: "orderType", Message: "invalid order type"}
	}
	if form.OrderType == models.OrderTypeDelivery && strings.TrimSpace(form.Address) == "" {
		return models.Order{}, orders.ValidationError{Field: "customerAddress", Message: "address is required for delivery"}
	}

	order, err := placer.Create(ctx, orders.CreateRequest{
		Items:           c.Items(),
		CustomerName:    form.Name,
		CustomerEmail:   form.Email,
		CustomerPhone:   form.Phone,
		CustomerAddress: form.Address,
		TotalAmount:     c.TotalPrice(),
		OrderType:       form.OrderType,
		Notes:           form.Notes,
	})
	if err != nil {
		return models.Order{}, err
	}

	c.Clear()
	if c.IsOpen() {
		c.ToggleOpen()
	}
	return order, nil
}
