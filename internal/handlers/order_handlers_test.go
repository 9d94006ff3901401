package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
	"backend/internal/orders"
)

type memStore struct {
	byID map[string]models.Order
}

func newMemStore() *memStore {
	return &memStore{byID: map[string]models.Order{}}
}

func (s *memStore) Insert(ctx context.Context, order models.Order) (models.Order, error) {
	order.ID = primitive.NewObjectID()
	s.byID[order.ID.Hex()] = order
	return order, nil
}

func (s *memStore) FindByID(ctx context.Context, id string) (models.Order, error) {
	order, ok := s.byID[id]
	if !ok {
		return models.Order{}, orders.ErrNotFound
	}
	return order, nil
}

func (s *memStore) Find(ctx context.Context, status models.Status) ([]models.Order, error) {
	out := make([]models.Order, 0)
	for _, order := range s.byID {
		if status == "" || order.Status == status {
			out = append(out, order)
		}
	}
	return out, nil
}

func (s *memStore) UpdateStatus(ctx context.Context, id string, status models.Status) (models.Order, error) {
	order, ok := s.byID[id]
	if !ok {
		return models.Order{}, orders.ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	s.byID[id] = order
	return order, nil
}

func (s *memStore) Delete(ctx context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return orders.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

func newOrderRouter(store orders.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := orders.NewService(store)

	r := gin.New()
	r.POST("/orders", CreateOrder(svc))
	r.GET("/admin/api/orders", GetOrders(svc))
	r.GET("/admin/api/orders/:id", GetOrder(svc))
	r.PUT("/admin/api/orders/:id/status", UpdateOrderStatus(svc))
	r.DELETE("/admin/api/orders/:id", DeleteOrder(svc))
	return r
}

func orderBody() map[string]interface{} {
	return map[string]interface{}{
		"items": []map[string]interface{}{
			{"productId": "A", "name": "Chicken Biryani", "price": 350, "quantity": 2, "image": "/images/food/biryani.png"},
		},
		"customerName":  "Asha Rao",
		"customerEmail": "asha@example.com",
		"customerPhone": "9876543210",
		"totalAmount":   700,
		"orderType":     "takeaway",
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderHandlerRejectsInvalidBody(t *testing.T) {
	r := newOrderRouter(newMemStore())

	req := httptest.NewRequest("POST", "/orders", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateOrderHandlerIgnoresSubmittedStatus(t *testing.T) {
	store := newMemStore()
	r := newOrderRouter(store)

	body := orderBody()
	body["status"] = "delivered"

	w := doJSON(t, r, "POST", "/orders", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data models.Order `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Status != models.StatusPending {
		t.Fatalf("expected pending, got %s", resp.Data.Status)
	}
}

func TestCreateOrderHandlerRejectsEmptyItems(t *testing.T) {
	store := newMemStore()
	r := newOrderRouter(store)

	body := orderBody()
	body["items"] = []map[string]interface{}{}

	w := doJSON(t, r, "POST", "/orders", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if len(store.byID) != 0 {
		t.Fatal("nothing should have been stored")
	}
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	store := newMemStore()
	r := newOrderRouter(store)

	w := doJSON(t, r, "POST", "/orders", orderBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}
	var created struct {
		Data models.Order `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	id := created.Data.ID.Hex()

	w = doJSON(t, r, "PUT", "/admin/api/orders/"+id+"/status", gin.H{"status": "bogus"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bogus status: expected 400, got %d", w.Code)
	}

	w = doJSON(t, r, "PUT", "/admin/api/orders/"+id+"/status", gin.H{"status": "confirmed"})
	if w.Code != http.StatusOK {
		t.Fatalf("confirmed: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", "/admin/api/orders/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	var got models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if got.Status != models.StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", got.Status)
	}

	missing := primitive.NewObjectID().Hex()
	w = doJSON(t, r, "PUT", "/admin/api/orders/"+missing+"/status", gin.H{"status": "confirmed"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing order: expected 404, got %d", w.Code)
	}
}

func TestDeleteOrderHandler(t *testing.T) {
	store := newMemStore()
	r := newOrderRouter(store)

	w := doJSON(t, r, "POST", "/orders", orderBody())
	var created struct {
		Data models.Order `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	id := created.Data.ID.Hex()

	w = doJSON(t, r, "DELETE", "/admin/api/orders/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, "DELETE", "/admin/api/orders/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestGetOrdersRejectsUnknownStatusFilter(t *testing.T) {
	r := newOrderRouter(newMemStore())

	w := doJSON(t, r, "GET", "/admin/api/orders?status=bogus", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
