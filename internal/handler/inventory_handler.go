package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"zerowastechef/internal/errors"
	"zerowastechef/internal/model"
	"zerowastechef/internal/service"
)

const dateLayout = "2006-01-02"

// InventoryHandler handles inventory endpoints.
type InventoryHandler struct {
	inventoryService service.InventoryService
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// AddItemRequest represents an add-item form submission.
type AddItemRequest struct {
	Name       string  `json:"name" form:"name" validate:"required"`
	Quantity   float64 `json:"quantity" form:"quantity" validate:"required,gt=0"`
	Unit       string  `json:"unit" form:"unit" validate:"required,oneof=kg g liters ml pieces others"`
	ExpiryDate string  `json:"expiry_date" form:"expiry_date" validate:"required,datetime=2006-01-02"`
}

// UpdateItemRequest represents an update-item form submission. Only quantity
// and expiry date are mutable.
type UpdateItemRequest struct {
	Quantity   float64 `json:"quantity" form:"quantity" validate:"required,gt=0"`
	ExpiryDate string  `json:"expiry_date" form:"expiry_date" validate:"required,datetime=2006-01-02"`
}

// AddItem godoc
// @Summary Add an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body AddItemRequest true "Item data"
// @Success 201 {object} model.InventoryItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /inventory [post]
// @Security BearerAuth
func (h *InventoryHandler) AddItem(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return err
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	expiry, err := time.Parse(dateLayout, req.ExpiryDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid expiry date")
	}

	item, err := h.inventoryService.AddItem(c.Request().Context(), acctID, req.Name, req.Quantity, req.Unit, expiry)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, item)
}

// ListItems godoc
// @Summary List inventory items with freshness status
// @Tags inventory
// @Produce json
// @Param status query string false "Filter by status" Enums(expired, expiring_soon, good)
// @Success 200 {array} model.ItemView
// @Failure 401 {object} errors.ErrorResponse
// @Router /inventory [get]
// @Security BearerAuth
func (h *InventoryHandler) ListItems(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return err
	}

	views, err := h.inventoryService.ListItems(c.Request().Context(), acctID, time.Now())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if status := c.QueryParam("status"); status != "" {
		filtered := make([]model.ItemView, 0, len(views))
		for _, v := range views {
			if v.Status == model.ExpiryStatus(status) {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}

	return c.JSON(http.StatusOK, views)
}

// UpdateItem godoc
// @Summary Update an item's quantity and expiry date
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body UpdateItemRequest true "Item data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /inventory/{id} [put]
// @Security BearerAuth
func (h *InventoryHandler) UpdateItem(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return err
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil || itemID < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	expiry, err := time.Parse(dateLayout, req.ExpiryDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid expiry date")
	}

	if err := h.inventoryService.UpdateItem(c.Request().Context(), acctID, uint(itemID), req.Quantity, expiry); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "item updated successfully",
	})
}

// DeleteItem godoc
// @Summary Delete an item by id
// @Tags inventory
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /inventory/{id} [delete]
// @Security BearerAuth
func (h *InventoryHandler) DeleteItem(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return err
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil || itemID < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	if err := h.inventoryService.DeleteItem(c.Request().Context(), acctID, uint(itemID)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "item deleted successfully",
	})
}

// DeleteItemByName godoc
// @Summary Delete all items with a given name
// @Tags inventory
// @Produce json
// @Param name path string true "Item name"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /inventory/name/{name} [delete]
// @Security BearerAuth
func (h *InventoryHandler) DeleteItemByName(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return err
	}

	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "item name required")
	}

	if err := h.inventoryService.DeleteItemByName(c.Request().Context(), acctID, name); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "item deleted successfully",
	})
}
