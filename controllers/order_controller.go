package controllers

import (
	"net/http"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders services.OrderService
}

func NewOrderController(orders services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// CreateOrder places a new order for the caller.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required order information"})
		return
	}

	order, svcErr := oc.orders.CreateOrder(c.Request.Context(), userID, &req)
	if svcErr != nil {
		abortServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// ListOrders returns the caller's orders, newest first.
func (oc *OrderController) ListOrders(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	orders, svcErr := oc.orders.ListOrders(c.Request.Context(), userID)
	if svcErr != nil {
		abortServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrder returns a single order owned by the caller.
func (oc *OrderController) GetOrder(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	order, svcErr := oc.orders.GetOrder(c.Request.Context(), userID, c.Param("id"))
	if svcErr != nil {
		abortServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// UpdateOrderStatus persists a fulfillment status tag on an owned order.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status"})
		return
	}

	order, svcErr := oc.orders.UpdateOrderStatus(c.Request.Context(), userID, c.Param("id"), req.Status)
	if svcErr != nil {
		abortServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
