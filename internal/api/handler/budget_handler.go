package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qfnexora/finance-api/internal/core/ports"
)

type budgetRequest struct {
	Period        string  `json:"period"        validate:"required,oneof=weekly monthly yearly"`
	Amount        float64 `json:"amount"        validate:"required,gt=0"`
	Category      string  `json:"category"`
	StartDate     string  `json:"start_date"    validate:"required,datetime=2006-01-02"`
	EndDate       string  `json:"end_date"      validate:"required,datetime=2006-01-02"`
	Currency      string  `json:"currency"`
	Notifications bool    `json:"notifications"`
}

func (r budgetRequest) toInput() ports.BudgetInput {
	return ports.BudgetInput{
		Period:        r.Period,
		Amount:        r.Amount,
		Category:      r.Category,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Currency:      r.Currency,
		Notifications: r.Notifications,
	}
}

// BudgetHandler handles HTTP requests for budget operations.
type BudgetHandler struct {
	service ports.BudgetService
}

func NewBudgetHandler(service ports.BudgetService) *BudgetHandler {
	return &BudgetHandler{service: service}
}

// Create handles POST /budgets.
//
// @Summary      Create a budget
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      budgetRequest  true  "Budget details"
// @Success      201   {object}  domain.Budget
// @Failure      400   {object}  map[string]string
// @Router       /budgets [post]
func (h *BudgetHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req budgetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	budget, err := h.service.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, budget)
}

// List handles GET /budgets.
//
// @Summary      List own budgets
// @Tags         budgets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Budget
// @Router       /budgets [get]
func (h *BudgetHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	budgets, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, budgets)
}

// Get handles GET /budgets/:id.
//
// @Summary      Get one budget
// @Tags         budgets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Budget ID"
// @Success      200  {object}  domain.Budget
// @Failure      404  {object}  map[string]string
// @Router       /budgets/{id} [get]
func (h *BudgetHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	budget, err := h.service.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, budget)
}

// Update handles PUT /budgets/:id.
//
// @Summary      Update a budget
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Budget ID"
// @Param        body  body      budgetRequest  true  "Budget details"
// @Success      200   {object}  domain.Budget
// @Failure      404   {object}  map[string]string
// @Router       /budgets/{id} [put]
func (h *BudgetHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req budgetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	budget, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, budget)
}

// Delete handles DELETE /budgets/:id.
//
// @Summary      Delete a budget
// @Tags         budgets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Budget ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /budgets/{id} [delete]
func (h *BudgetHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "budget deleted"})
}
