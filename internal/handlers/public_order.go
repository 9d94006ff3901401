package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/models"
	"backend/internal/orders"
)

/* =========================
   REQUEST DTOs
========================= */

type createOrderItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required"`
	Image     string  `json:"image"`
}

type createOrderRequest struct {
	Items           []createOrderItemRequest `json:"items" binding:"required"`
	CustomerName    string                   `json:"customerName" binding:"required"`
	CustomerEmail   string                   `json:"customerEmail" binding:"required"`
	CustomerPhone   string                   `json:"customerPhone" binding:"required"`
	CustomerAddress string                   `json:"customerAddress"`
	TotalAmount     float64                  `json:"totalAmount"`
	OrderType       string                   `json:"orderType" binding:"required"`
	Notes           string                   `json:"notes"`
	// Status is accepted in the body but always overridden with pending.
	Status string `json:"status"`
}

/* =========================
   CREATE ORDER
========================= */

func CreateOrder(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, models.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
				Image:     item.Image,
			})
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		order, err := svc.Create(ctx, orders.CreateRequest{
			Items:           items,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			CustomerAddress: req.CustomerAddress,
			TotalAmount:     req.TotalAmount,
			OrderType:       models.OrderType(req.OrderType),
			Notes:           req.Notes,
			Status:          models.Status(req.Status),
		})
		if err != nil {
			respondOrderError(c, route, err)
			return
		}

		log.Printf("[%s] order created: %s", route, order.ID.Hex())
		c.JSON(http.StatusCreated, gin.H{
			"data":    order,
			"message": "order placed successfully",
		})
	}
}
