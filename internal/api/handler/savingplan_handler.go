package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qfnexora/finance-api/internal/core/ports"
)

type savingPlanRequest struct {
	Title        string  `json:"title"         validate:"required"`
	Description  string  `json:"description"`
	TargetAmount float64 `json:"target_amount" validate:"required,gt=0"`
	StartDate    string  `json:"start_date"    validate:"required,datetime=2006-01-02"`
	EndDate      string  `json:"end_date"      validate:"required,datetime=2006-01-02"`
	AutoSave     bool    `json:"auto_save"`
	Frequency    string  `json:"frequency"     validate:"omitempty,oneof=daily weekly monthly"`
	Currency     string  `json:"currency"`
}

func (r savingPlanRequest) toInput() ports.SavingPlanInput {
	return ports.SavingPlanInput{
		Title:        r.Title,
		Description:  r.Description,
		TargetAmount: r.TargetAmount,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		AutoSave:     r.AutoSave,
		Frequency:    r.Frequency,
		Currency:     r.Currency,
	}
}

type depositRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Note   string  `json:"note"`
}

// SavingPlanHandler handles HTTP requests for saving-plan operations.
type SavingPlanHandler struct {
	service ports.SavingPlanService
}

func NewSavingPlanHandler(service ports.SavingPlanService) *SavingPlanHandler {
	return &SavingPlanHandler{service: service}
}

// Create handles POST /saving-plans.
//
// @Summary      Create a saving plan
// @Tags         saving-plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      savingPlanRequest  true  "Plan details"
// @Success      201   {object}  domain.SavingPlan
// @Failure      400   {object}  map[string]string
// @Router       /saving-plans [post]
func (h *SavingPlanHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req savingPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.service.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, plan)
}

// List handles GET /saving-plans.
//
// @Summary      List own saving plans
// @Tags         saving-plans
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.SavingPlan
// @Router       /saving-plans [get]
func (h *SavingPlanHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	plans, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

// Get handles GET /saving-plans/:id.
//
// @Summary      Get one saving plan
// @Tags         saving-plans
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Plan ID"
// @Success      200  {object}  domain.SavingPlan
// @Failure      404  {object}  map[string]string
// @Router       /saving-plans/{id} [get]
func (h *SavingPlanHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	plan, err := h.service.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// Update handles PUT /saving-plans/:id.
//
// @Summary      Update an in-progress saving plan
// @Tags         saving-plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Plan ID"
// @Param        body  body      savingPlanRequest  true  "Plan details"
// @Success      200   {object}  domain.SavingPlan
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /saving-plans/{id} [put]
func (h *SavingPlanHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req savingPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// Delete handles DELETE /saving-plans/:id.
//
// @Summary      Delete an in-progress saving plan
// @Tags         saving-plans
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Plan ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /saving-plans/{id} [delete]
func (h *SavingPlanHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "saving plan deleted"})
}

// AddDeposit handles POST /saving-plans/:id/deposits.
//
// @Summary      Add a manual deposit to a saving plan
// @Tags         saving-plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Plan ID"
// @Param        body  body      depositRequest  true  "Deposit amount and note"
// @Success      200   {object}  domain.SavingPlan
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /saving-plans/{id}/deposits [post]
func (h *SavingPlanHandler) AddDeposit(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req depositRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.service.AddDeposit(c.Request().Context(), userID, c.Param("id"), ports.DepositInput{
		Amount: req.Amount,
		Note:   req.Note,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}
