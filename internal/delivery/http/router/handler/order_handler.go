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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CartAddressRequest is the delivery address part of an order submission
type CartAddressRequest struct {
	Street    string `json:"street"`
	FloorApt  string `json:"floor_apt"`
	Reference string `json:"reference"`
}

// CartRemovedIngredientRequest marks a base ingredient left out of an item
type CartRemovedIngredientRequest struct {
	IngredientID int64  `json:"ingredient_id"`
	Name         string `json:"name"`
}

// CartExtraIngredientRequest is an ingredient added to an item
type CartExtraIngredientRequest struct {
	IngredientID int64          `json:"ingredient_id"`
	Name         string         `json:"name"`
	ExtraCost    lenientDecimal `json:"extra_cost"`
}

// CartItemRequest is one line of the submitted cart
type CartItemRequest struct {
	ProductID          int64                          `json:"product_id"`
	ProductName        string                         `json:"product_name"`
	BasePrice          lenientDecimal                 `json:"base_price"`
	Quantity           int                            `json:"quantity"`
	Note               string                         `json:"note"`
	RemovedIngredients []CartRemovedIngredientRequest `json:"removed_ingredients"`
	ExtraIngredients   []CartExtraIngredientRequest   `json:"extra_ingredients"`
}

// CreateOrderRequest represents the request body for submitting a cart.
// Any total the client computed for display is deliberately absent: the
// server re-derives the charge from the line items.
type CreateOrderRequest struct {
	Address        CartAddressRequest `json:"address"`
	Items          []CartItemRequest  `json:"items"`
	DiscountAmount lenientDecimal     `json:"discount_amount"`
	DiscountReason string             `json:"discount_reason"`
}

// ToggleDeliveredRequest represents the request body for the delivered flag
type ToggleDeliveredRequest struct {
	Delivered bool `json:"delivered"`
}

// CreateOrder handles submitting a new order
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	orderID, err := h.orderUC.CreateOrder(c.Request().Context(), toCartSubmission(req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"order_id": orderID}, "Order created successfully")
}

// ListOrders handles listing all retained orders as nested aggregates
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrder handles retrieving a single order aggregate
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ToggleDelivered handles flipping the delivered flag of an order
func (h *OrderHandler) ToggleDelivered(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req ToggleDeliveredRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivered input")
	}

	if err := h.orderUC.ToggleDelivered(c.Request().Context(), id, req.Delivered); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": id, "delivered": req.Delivered}, "Order updated successfully")
}

// DeleteOrder handles deleting an order
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": id}, "Order deleted successfully")
}

// toCartSubmission converts the HTTP request into the use case DTO.
func toCartSubmission(req CreateOrderRequest) usecase.CartSubmission {
	items := make([]usecase.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		removed := make([]usecase.CartRemovedIngredient, 0, len(item.RemovedIngredients))
		for _, ri := range item.RemovedIngredients {
			removed = append(removed, usecase.CartRemovedIngredient{
				IngredientID: ri.IngredientID,
				Name:         ri.Name,
			})
		}

		extras := make([]usecase.CartExtraIngredient, 0, len(item.ExtraIngredients))
		for _, ei := range item.ExtraIngredients {
			extras = append(extras, usecase.CartExtraIngredient{
				IngredientID: ei.IngredientID,
				Name:         ei.Name,
				ExtraCost:    ei.ExtraCost.Decimal,
			})
		}

		items = append(items, usecase.CartItem{
			ProductID:          item.ProductID,
			ProductName:        item.ProductName,
			BasePrice:          item.BasePrice.Decimal,
			Quantity:           item.Quantity,
			Note:               item.Note,
			RemovedIngredients: removed,
			ExtraIngredients:   extras,
		})
	}

	return usecase.CartSubmission{
		Address: usecase.CartAddress{
			Street:    req.Address.Street,
			FloorApt:  req.Address.FloorApt,
			Reference: req.Address.Reference,
		},
		Items:          items,
		DiscountAmount: req.DiscountAmount.Decimal,
		DiscountReason: req.DiscountReason,
	}
}
