package controllers

import (
	"net/http"

	"admin-service/logger"
	"admin-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TagController struct {
	service   TagServiceAPI
	validator *RequestValidator
	cache     *CacheManager
}

func NewTagController(service TagServiceAPI, cache *CacheManager) *TagController {
	return &TagController{
		service:   service,
		validator: NewRequestValidator(),
		cache:     cache,
	}
}

func (tc *TagController) GetTags(c *gin.Context) {
	tags, err := tc.service.ListTags(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Tags not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags, "total": len(tags)})
}

func (tc *TagController) CreateTag(c *gin.Context) {
	var req services.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}
	if err := tc.validator.ValidateTagRequest(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	tag, err := tc.service.CreateTag(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Tag not found")
		return
	}

	// Tag names feed the product rows, so those caches are stale now.
	tc.cache.Invalidate(c.Request.Context())
	logger.Info(c.Request.Context(), "Tag created", zap.String("id", tag.ID.String()), zap.String("name", tag.Name))
	c.JSON(http.StatusCreated, tag)
}

func (tc *TagController) DeleteTag(c *gin.Context) {
	if err := tc.service.DeleteTag(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Tag not found")
		return
	}

	tc.cache.Invalidate(c.Request.Context())
	logger.Info(c.Request.Context(), "Tag deleted", zap.String("id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}
