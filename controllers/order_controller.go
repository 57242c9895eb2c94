package controllers

import (
	"net/http"
	"strconv"

	"admin-service/logger"
	"admin-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderController struct {
	service OrderServiceAPI
}

func NewOrderController(service OrderServiceAPI) *OrderController {
	return &OrderController{service: service}
}

func (oc *OrderController) GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("perPage", "50"))
	if perPage < 1 || perPage > 200 {
		perPage = 50
	}

	orders, err := oc.service.ListOrders(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Orders not found")
		return
	}

	total := len(orders)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":  orders[start:end],
		"total":   total,
		"page":    page,
		"perPage": perPage,
	})
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrder patches mutable order fields, typically status and
// payment status transitions made from the dashboard.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var req services.OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	if err := oc.service.UpdateOrder(c.Request.Context(), c.Param("id"), req); err != nil {
		handleServiceError(c, err, "Order not found")
		return
	}

	logger.Info(c.Request.Context(), "Order updated", zap.String("id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	if err := oc.service.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
