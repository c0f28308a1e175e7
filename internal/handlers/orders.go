package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/listview"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/upstream"
)

// OrdersView mirrors the COD orders table. Order status and payment
// status are edited independently, each through its own PATCH, and the
// row is only patched locally after the upstream confirms.
type OrdersView struct {
	client *upstream.Client
	cache  *listview.Cache[models.Order]
}

func NewOrdersView(client *upstream.Client) *OrdersView {
	return &OrdersView{
		client: client,
		cache:  listview.New[models.Order](),
	}
}

func (v *OrdersView) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "orders")

		if !v.cache.Loaded() || c.Query("refresh") != "" {
			orders, err := v.client.ListOrders(c.Request.Context())
			if err != nil {
				respondUpstream(c, "orders", err)
				return
			}
			v.cache.Fill(orders)
		}
		c.JSON(http.StatusOK, v.cache.Rows())
	}
}

type orderStatusRequest struct {
	OrderStatus string `json:"orderStatus" binding:"required"`
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

func (v *OrdersView) UpdateStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "order-status")

		var req orderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if !models.ValidOrderStatus(req.OrderStatus) {
			respondWithError(c, http.StatusBadRequest, "order-status", "invalid order status")
			return
		}

		id := c.Param("id")
		if err := v.client.UpdateOrderStatus(c.Request.Context(), id, req.OrderStatus); err != nil {
			// Failed change: the cached row keeps its previous value.
			respondUpstream(c, "order-status", err)
			return
		}

		v.cache.Patch(id, func(o *models.Order) {
			o.OrderStatus = req.OrderStatus
		})
		c.JSON(http.StatusOK, gin.H{"message": "Order Status updated to " + req.OrderStatus + "!"})
	}
}

func (v *OrdersView) UpdatePayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "payment-status")

		var req paymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if !models.ValidPaymentStatus(req.PaymentStatus) {
			respondWithError(c, http.StatusBadRequest, "payment-status", "invalid payment status")
			return
		}

		id := c.Param("id")
		if err := v.client.UpdatePaymentStatus(c.Request.Context(), id, req.PaymentStatus); err != nil {
			respondUpstream(c, "payment-status", err)
			return
		}

		v.cache.Patch(id, func(o *models.Order) {
			o.PaymentStatus = req.PaymentStatus
		})
		c.JSON(http.StatusOK, gin.H{"message": "Payment Status updated to " + req.PaymentStatus + "!"})
	}
}

func (v *OrdersView) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "order-delete")

		id := c.Param("id")
		if err := v.client.DeleteOrder(c.Request.Context(), id); err != nil {
			respondUpstream(c, "order-delete", err)
			return
		}

		v.cache.Remove(id)
		c.Status(http.StatusNoContent)
	}
}
