package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"comanda/internal/delivery/http/response"
	"comanda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog-related handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// IngredientRequest represents the request body for creating or updating an ingredient
type IngredientRequest struct {
	Name      string         `json:"name" validate:"required"`
	ExtraCost lenientDecimal `json:"extra_cost"`
}

// ProductRequest represents the request body for creating or updating a product
type ProductRequest struct {
	Name          string         `json:"name" validate:"required"`
	Price         lenientDecimal `json:"price"`
	IngredientIDs []int64        `json:"ingredient_ids"`
}

// ListIngredients handles listing all ingredients
func (h *CatalogHandler) ListIngredients(c echo.Context) error {
	ingredients, err := h.catalogUC.ListIngredients(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredients, "Ingredients retrieved successfully")
}

// CreateIngredient handles creating a new ingredient
func (h *CatalogHandler) CreateIngredient(c echo.Context) error {
	var req IngredientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredient input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ingredient, err := h.catalogUC.CreateIngredient(c.Request().Context(), usecase.IngredientInput{
		Name:      req.Name,
		ExtraCost: req.ExtraCost.Decimal,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ingredient, "Ingredient created successfully")
}

// UpdateIngredient handles updating an existing ingredient
func (h *CatalogHandler) UpdateIngredient(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ingredient ID")
	}

	var req IngredientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredient input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.catalogUC.UpdateIngredient(c.Request().Context(), id, usecase.IngredientInput{
		Name:      req.Name,
		ExtraCost: req.ExtraCost.Decimal,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": id}, "Ingredient updated successfully")
}

// DeleteIngredient handles deleting an ingredient
func (h *CatalogHandler) DeleteIngredient(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ingredient ID")
	}

	if err := h.catalogUC.DeleteIngredient(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": id}, "Ingredient deleted successfully")
}

// ListProducts handles listing all products with their base ingredients
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// CreateProduct handles creating a new product
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), usecase.ProductInput{
		Name:          req.Name,
		Price:         req.Price.Decimal,
		IngredientIDs: req.IngredientIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles updating an existing product and its ingredient set
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.catalogUC.UpdateProduct(c.Request().Context(), id, usecase.ProductInput{
		Name:          req.Name,
		Price:         req.Price.Decimal,
		IngredientIDs: req.IngredientIDs,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": id}, "Product updated successfully")
}

// DeleteProduct handles deleting a product
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": id}, "Product deleted successfully")
}
