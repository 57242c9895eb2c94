package controllers

import (
	"net/http"

	"admin-service/logger"
	"admin-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryController struct {
	service   CategoryServiceAPI
	validator *RequestValidator
	cache     *CacheManager
}

func NewCategoryController(service CategoryServiceAPI, cache *CacheManager) *CategoryController {
	return &CategoryController{
		service:   service,
		validator: NewRequestValidator(),
		cache:     cache,
	}
}

// GetCategories returns the aggregated category table: one row per
// category with its live product count. `q` filters by name.
func (cc *CategoryController) GetCategories(c *gin.Context) {
	rows, err := cc.service.ListCategoryRows(c.Request.Context(), c.Query("q"))
	if err != nil {
		handleServiceError(c, err, "Categories not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": rows,
		"total":      len(rows),
	})
}

func (cc *CategoryController) GetCategoryByID(c *gin.Context) {
	category, err := cc.service.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req services.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}
	if err := cc.validator.ValidateCategoryRequest(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	category, err := cc.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Category not found")
		return
	}

	// Category names feed the product rows, so those caches are stale now.
	cc.cache.Invalidate(c.Request.Context())
	logger.Info(c.Request.Context(), "Category created", zap.String("id", category.ID.String()), zap.String("name", category.Name))
	c.JSON(http.StatusCreated, category)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	var req services.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}
	if err := cc.validator.ValidateCategoryRequest(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	if err := cc.service.UpdateCategory(c.Request.Context(), c.Param("id"), req); err != nil {
		handleServiceError(c, err, "Category not found")
		return
	}

	cc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Category updated"})
}

// DeleteCategory refuses while products still reference the category;
// the guard re-checks the live store before the destructive call.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	if err := cc.service.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Category not found")
		return
	}

	cc.cache.Invalidate(c.Request.Context())
	logger.Info(c.Request.Context(), "Category deleted", zap.String("id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
