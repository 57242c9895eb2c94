package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"sort"
	"strconv"

	"admin-service/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Validation constants
const (
	MaxUploadSize     = 50 * 1024 * 1024 // 50MB
	MaxPresignExpires = 3600             // seconds
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// RequestValidator handles input validation for the write endpoints.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// ValidateCategoryRequest checks a category create/update payload.
func (rv *RequestValidator) ValidateCategoryRequest(req services.CategoryCreateRequest) error {
	return rv.validate.Struct(req)
}

// ValidateTagRequest checks a tag create payload.
func (rv *RequestValidator) ValidateTagRequest(req services.TagCreateRequest) error {
	return rv.validate.Struct(req)
}

// ValidateAddressRequest checks an address create payload.
func (rv *RequestValidator) ValidateAddressRequest(req services.AddressCreateRequest) error {
	return rv.validate.Struct(req)
}

// ValidateImageUploads checks size and content type of multipart image
// uploads before anything is sent to the bucket.
func (rv *RequestValidator) ValidateImageUploads(files []*multipart.FileHeader) error {
	for _, f := range files {
		if f.Size > MaxUploadSize {
			return fmt.Errorf("file %q exceeds the %d byte upload limit", f.Filename, MaxUploadSize)
		}
		contentType := f.Header.Get("Content-Type")
		if !allowedImageTypes[contentType] {
			return fmt.Errorf("file %q has invalid content type %q; allowed: %v", f.Filename, contentType, allowedImageTypeList())
		}
	}
	return nil
}

// PresignParams holds validated presign query parameters.
type PresignParams struct {
	Filename    string
	ContentType string
	Expires     int64
}

// ParsePresignParams validates the presigned-upload query parameters.
func (rv *RequestValidator) ParsePresignParams(c *gin.Context) (*PresignParams, error) {
	filename := c.Query("filename")
	if filename == "" {
		return nil, errors.New("filename query parameter is required")
	}

	contentType := c.Query("contentType")
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("invalid content type %q; allowed: %v", contentType, allowedImageTypeList())
	}

	expires := int64(300)
	if expiresStr := c.Query("expires"); expiresStr != "" {
		parsed, err := strconv.ParseInt(expiresStr, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, errors.New("invalid expires value")
		}
		if parsed > MaxPresignExpires {
			parsed = MaxPresignExpires
		}
		expires = parsed
	}

	return &PresignParams{Filename: filename, ContentType: contentType, Expires: expires}, nil
}

func allowedImageTypeList() []string {
	out := make([]string, 0, len(allowedImageTypes))
	for t := range allowedImageTypes {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
