package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"productstore-backend/internal/domains/product"
	"productstore-backend/internal/shared/middleware"
	"productstore-backend/internal/shared/response"
	"productstore-backend/pkg/logger"
)

type ProductHandler struct {
	service product.Service
}

func NewProductHandler(svc product.Service) *ProductHandler {
	return &ProductHandler{service: svc}
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	var req product.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	req.SetDefaults()

	items, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// Cheapest handles GET /products/cheapest
func (h *ProductHandler) Cheapest(c *gin.Context) {
	items, err := h.service.Cheapest(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Cheapest products retrieved", items)
}

// GetByID handles GET /products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	dto, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product retrieved", dto)
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	userID, err := middleware.UserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req product.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.Create(c.Request.Context(), req, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Product created", dto)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	userID, err := middleware.UserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req product.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.Update(c.Request.Context(), id, req, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product updated", dto)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product deleted", nil)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return 0, false
	}
	return id, true
}

// handleError maps domain errors to the response envelope; infrastructure
// failures stay generic.
func (h *ProductHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", vErrs)
		return
	}

	switch product.GetHTTPStatusCode(err) {
	case http.StatusNotFound:
		response.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case http.StatusConflict:
		response.ErrorResponse(c, http.StatusConflict, "VERSION_CONFLICT", err.Error())
	case http.StatusBadRequest:
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_REFERENCE", err.Error())
	default:
		logger.Error("product handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
