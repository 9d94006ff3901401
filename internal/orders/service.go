package orders

import (
	"context"
	"strings"
	"time"

	"backend/internal/models"
)

const maxNotesLength = 500

// Store is the persistence handle the service writes through. It is injected
// so the lifecycle rules can be tested without a running database.
type Store interface {
	Insert(ctx context.Context, order models.Order) (models.Order, error)
	FindByID(ctx context.Context, id string) (models.Order, error)
	// Find returns orders newest-first. The zero Status means no filter.
	Find(ctx context.Context, status models.Status) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.Status) (models.Order, error)
	Delete(ctx context.Context, id string) error
}

// CreateRequest carries everything the checkout submits. Status is accepted in
// the shape but never honored: a new order is always pending.
type CreateRequest struct {
	Items           []models.OrderItem
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	TotalAmount     float64
	OrderType       models.OrderType
	Notes           string
	Status          models.Status
}

// Service owns the order lifecycle: creation, reads, status transitions,
// deletion. Each operation maps to exactly one store call; validation failures
// never reach the store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, ValidationError{Field: "items", Message: "order must contain at least one item"}
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return models.Order{}, ValidationError{Field: "items", Message: "productId is required"}
		}
		if item.Quantity < 1 {
			return models.Order{}, ValidationError{Field: "items", Message: "quantity must be at least 1"}
		}
	}

	name := strings.TrimSpace(req.CustomerName)
	email := strings.ToLower(strings.TrimSpace(req.CustomerEmail))
	phone := strings.TrimSpace(req.CustomerPhone)
	if name == "" {
		return models.Order{}, ValidationError{Field: "customerName", Message: "customer name is required"}
	}
	if email == "" {
		return models.Order{}, ValidationError{Field: "customerEmail", Message: "customer email is required"}
	}
	if phone == "" {
		return models.Order{}, ValidationError{Field: "customerPhone", Message: "customer phone is required"}
	}

	if !req.OrderType.Valid() {
		return models.Order{}, ValidationError{Field: "orderType", Message: "invalid order type"}
	}
	if req.TotalAmount < 0 {
		return models.Order{}, ValidationError{Field: "totalAmount", Message: "total amount cannot be negative"}
	}
	if len(req.Notes) > maxNotesLength {
		return models.Order{}, ValidationError{Field: "notes", Message: "notes cannot exceed 500 characters"}
	}

	now := time.Now()
	order := models.Order{
		Items:           req.Items,
		CustomerName:    name,
		CustomerEmail:   email,
		CustomerPhone:   phone,
		CustomerAddress: strings.TrimSpace(req.CustomerAddress),
		TotalAmount:     req.TotalAmount,
		Status:          models.StatusPending, // any caller-supplied status is discarded
		OrderType:       req.OrderType,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return s.store.Insert(ctx, order)
}

func (s *Service) GetByID(ctx context.Context, id string) (models.Order, error) {
	return s.store.FindByID(ctx, id)
}

// ListByStatus returns orders newest-first, optionally filtered. An empty
// status lists everything.
func (s *Service) ListByStatus(ctx context.Context, status string) ([]models.Order, error) {
	filter := models.Status(strings.TrimSpace(status))
	if filter != "" && !filter.Valid() {
		return nil, ValidationError{Field: "status", Message: "unknown status"}
	}
	return s.store.Find(ctx, filter)
}

// UpdateStatus moves an order to a new state. Any of the six states may
// follow any other; terminality is not enforced here.
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (models.Order, error) {
	next := models.Status(strings.TrimSpace(status))
	if !next.Valid() {
		return models.Order{}, ValidationError{Field: "status", Message: "unknown status"}
	}
	return s.store.UpdateStatus(ctx, id, next)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
