package controllers

import (
	"encoding/json"
	"net/http"

	"admin-service/apperrors"
	"admin-service/logger"
	"admin-service/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductController struct {
	service   ProductServiceAPI
	validator *RequestValidator
	cache     *CacheManager
}

func NewProductController(service ProductServiceAPI, cache *CacheManager) *ProductController {
	return &ProductController{
		service:   service,
		validator: NewRequestValidator(),
		cache:     cache,
	}
}

// GetProducts returns the denormalized product table: each product with
// its resolved category and tag names. `q` filters by name,
// description, or category name. Responses are cached per query until
// the next write.
func (pc *ProductController) GetProducts(c *gin.Context) {
	query := c.Query("q")

	if rows, ok := pc.cache.GetProductRows(c.Request.Context(), query); ok {
		c.JSON(http.StatusOK, gin.H{"products": rows, "total": len(rows), "cached": true})
		return
	}

	rows, err := pc.service.ListProductRows(c.Request.Context(), query)
	if err != nil {
		handleServiceError(c, err, "Products not found")
		return
	}

	pc.cache.SetProductRowsAsync(query, rows)
	c.JSON(http.StatusOK, gin.H{"products": rows, "total": len(rows)})
}

func (pc *ProductController) GetProductByID(c *gin.Context) {
	product, err := pc.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct accepts a multipart form: product fields plus optional
// image files, which are uploaded to the bucket before the document is
// written.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	var input struct {
		Name          string `form:"name" binding:"required"`
		Description   string `form:"description"`
		Price         string `form:"price" binding:"required"`
		Stock         string `form:"stock"`
		CategoryID    string `form:"category_id"`
		SubcategoryID string `form:"subcategory_id"`
		TagIDs        string `form:"tag_ids"` // JSON string array
	}
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	req := services.ProductCreateRequest{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
	}
	if input.CategoryID != "" {
		id, err := uuid.Parse(input.CategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}
		req.CategoryID = &id
	}
	if input.SubcategoryID != "" {
		id, err := uuid.Parse(input.SubcategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory id"})
			return
		}
		req.SubcategoryID = &id
	}
	if input.TagIDs != "" {
		var raw []string
		if err := json.Unmarshal([]byte(input.TagIDs), &raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "tag_ids must be a JSON string array"})
			return
		}
		for _, s := range raw {
			id, err := uuid.Parse(s)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag id"})
				return
			}
			req.TagIDs = append(req.TagIDs, id)
		}
	}

	images := c.Request.MultipartForm.File["images"]
	if err := pc.validator.ValidateImageUploads(images); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := pc.service.CreateProduct(c.Request.Context(), req, images)
	if err != nil {
		handleServiceError(c, err, "Product not found")
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	logger.Info(c.Request.Context(), "Product created", zap.String("id", product.ID.String()), zap.String("name", product.Name))
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct merge-patches a product document.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var input struct {
		Name          *string  `json:"name"`
		Description   *string  `json:"description"`
		Price         *string  `json:"price"`
		Stock         *string  `json:"stock"`
		CategoryID    *string  `json:"category_id"`
		SubcategoryID *string  `json:"subcategory_id"`
		TagIDs        []string `json:"tag_ids"`
		Images        []string `json:"images"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	req := services.ProductUpdateRequest{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Images:      input.Images,
	}
	if input.CategoryID != nil {
		id, err := uuid.Parse(*input.CategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}
		req.CategoryID = &id
	}
	if input.SubcategoryID != nil {
		id, err := uuid.Parse(*input.SubcategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory id"})
			return
		}
		req.SubcategoryID = &id
	}
	if input.TagIDs != nil {
		req.TagIDs = make([]uuid.UUID, 0, len(input.TagIDs))
		for _, s := range input.TagIDs {
			id, err := uuid.Parse(s)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag id"})
				return
			}
			req.TagIDs = append(req.TagIDs, id)
		}
	}

	if err := pc.service.UpdateProduct(c.Request.Context(), c.Param("id"), req); err != nil {
		handleServiceError(c, err, "Product not found")
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if err := pc.service.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Product not found")
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	logger.Info(c.Request.Context(), "Product deleted", zap.String("id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// GetPresignUpload returns a presigned PUT URL for a browser-direct
// image upload plus the public URL to store on the document afterwards.
func (pc *ProductController) GetPresignUpload(c *gin.Context) {
	params, err := pc.validator.ParsePresignParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uploadURL, key, publicURL, err := pc.service.PresignUpload(
		c.Request.Context(),
		params.Filename,
		params.ContentType,
		params.Expires,
	)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to generate presigned upload", err)
		c.Error(apperrors.Transport("Failed to generate presigned upload", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upload_url": uploadURL,
		"method":     "PUT",
		"key":        key,
		"public_url": publicURL,
		"expires_in": params.Expires,
	})
}
