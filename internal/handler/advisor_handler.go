package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"zerowastechef/internal/errors"
	"zerowastechef/internal/service"
)

// AdvisorHandler handles recipe suggestion endpoints.
type AdvisorHandler struct {
	advisorService service.AdvisorService
}

// NewAdvisorHandler creates a new advisor handler.
func NewAdvisorHandler(advisorService service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService}
}

// SuggestRequest represents a recipe-suggestion form submission. Items, when
// given, restricts the prompt to those inventory item names.
type SuggestRequest struct {
	DietaryRestrictions []string `json:"dietary_restrictions" form:"dietary_restrictions"`
	PreferredCuisines   []string `json:"preferred_cuisines" form:"preferred_cuisines"`
	Items               []string `json:"items" form:"items"`
}

// SuggestResponse represents a recipe suggestion response.
type SuggestResponse struct {
	Suggestion string `json:"suggestion"`
}

// Suggest godoc
// @Summary Get recipe suggestions for the current inventory
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body SuggestRequest true "Preferences"
// @Success 200 {object} SuggestResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /recipes/suggest [post]
// @Security BearerAuth
func (h *AdvisorHandler) Suggest(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return err
	}

	var req SuggestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	suggestion, err := h.advisorService.Suggest(c.Request().Context(), acctID, req.DietaryRestrictions, req.PreferredCuisines, req.Items)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, SuggestResponse{Suggestion: suggestion})
}
