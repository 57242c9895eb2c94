package controllers

import (
	"net/http"

	"admin-service/logger"
	"admin-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AddressController struct {
	service   AddressServiceAPI
	validator *RequestValidator
}

func NewAddressController(service AddressServiceAPI) *AddressController {
	return &AddressController{service: service, validator: NewRequestValidator()}
}

// GetAddresses lists addresses for the user given by the required
// `user_id` query parameter.
func (ac *AddressController) GetAddresses(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	addresses, err := ac.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "Addresses not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addresses, "total": len(addresses)})
}

func (ac *AddressController) CreateAddress(c *gin.Context) {
	var req services.AddressCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}
	if err := ac.validator.ValidateAddressRequest(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address, err := ac.service.CreateAddress(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Address not found")
		return
	}

	logger.Info(c.Request.Context(), "Address created", zap.String("id", address.ID.String()), zap.String("user_id", address.UserID))
	c.JSON(http.StatusCreated, address)
}

func (ac *AddressController) UpdateAddress(c *gin.Context) {
	var req services.AddressUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	if err := ac.service.UpdateAddress(c.Request.Context(), c.Param("id"), req); err != nil {
		handleServiceError(c, err, "Address not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address updated"})
}

func (ac *AddressController) DeleteAddress(c *gin.Context) {
	if err := ac.service.DeleteAddress(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Address not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}
