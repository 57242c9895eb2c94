package controllers

import (
	"net/http"

	"admin-service/logger"
	"admin-service/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CustomerController struct {
	service CustomerServiceAPI
}

func NewCustomerController(service CustomerServiceAPI) *CustomerController {
	return &CustomerController{service: service}
}

// GetCustomers returns the aggregated customer table: one row per
// customer with order count and total spend. The optional `q` query
// filters rows by user id or email.
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	query := c.Query("q")

	rows, err := cc.service.ListCustomerRows(c.Request.Context(), query)
	if err != nil {
		handleServiceError(c, err, "Customers not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customers": rows,
		"total":     len(rows),
	})
}

// GetCustomerByID returns one customer with its orders.
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	customer, orders, err := cc.service.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer": customer,
		"orders":   orders,
	})
}

// GetCustomerAddresses returns the addresses linked to a customer.
func (cc *CustomerController) GetCustomerAddresses(c *gin.Context) {
	addresses, err := cc.service.GetCustomerAddresses(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

// UpdateCustomer merge-patches a customer document.
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	var input struct {
		Email             *string `json:"email"`
		Name              *string `json:"name"`
		BillingAddressID  *string `json:"billing_address_id"`
		ShippingAddressID *string `json:"shipping_address_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	req := services.CustomerUpdateRequest{Email: input.Email, Name: input.Name}
	if input.BillingAddressID != nil {
		id, err := uuid.Parse(*input.BillingAddressID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid billing address id"})
			return
		}
		req.BillingAddressID = &id
	}
	if input.ShippingAddressID != nil {
		id, err := uuid.Parse(*input.ShippingAddressID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shipping address id"})
			return
		}
		req.ShippingAddressID = &id
	}

	if err := cc.service.UpdateCustomer(c.Request.Context(), c.Param("id"), req); err != nil {
		handleServiceError(c, err, "Customer not found")
		return
	}

	logger.Info(c.Request.Context(), "Customer updated", zap.String("id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"message": "Customer updated"})
}

// DeleteCustomer removes a customer document.
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	if err := cc.service.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Customer not found")
		return
	}

	logger.Info(c.Request.Context(), "Customer deleted", zap.String("id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
