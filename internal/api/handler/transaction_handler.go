package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qfnexora/finance-api/internal/core/ports"
)

type transactionRequest struct {
	Type              string  `json:"type"        validate:"required,oneof=deposit withdrawal transfer"`
	Nature            string  `json:"nature"      validate:"required,oneof=income expense"`
	Amount            float64 `json:"amount"      validate:"required,gt=0"`
	Category          string  `json:"category"`
	Description       string  `json:"description"`
	Currency          string  `json:"currency"`
	Date              string  `json:"date"`
	RelatedSavingPlan string  `json:"related_saving_plan"`
	ReceiptURL        string  `json:"receipt_url"`
}

func (r transactionRequest) toInput() ports.TransactionInput {
	return ports.TransactionInput{
		Type:              r.Type,
		Nature:            r.Nature,
		Amount:            r.Amount,
		Category:          r.Category,
		Description:       r.Description,
		Currency:          r.Currency,
		Date:              r.Date,
		RelatedSavingPlan: r.RelatedSavingPlan,
		ReceiptURL:        r.ReceiptURL,
	}
}

// TransactionHandler handles HTTP requests for transaction operations.
type TransactionHandler struct {
	service ports.TransactionService
}

func NewTransactionHandler(service ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// Create handles POST /transactions.
//
// @Summary      Record a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      transactionRequest  true  "Transaction details"
// @Success      201   {object}  domain.Transaction
// @Failure      400   {object}  map[string]string
// @Router       /transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tx, err := h.service.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tx)
}

// List handles GET /transactions with optional nature/type/category filters.
//
// @Summary      List own transactions
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        nature    query     string  false  "income or expense"
// @Param        type      query     string  false  "deposit, withdrawal or transfer"
// @Param        category  query     string  false  "category name"
// @Success      200       {array}   domain.Transaction
// @Router       /transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	txs, err := h.service.List(c.Request().Context(), userID, ports.TransactionFilter{
		Nature:   c.QueryParam("nature"),
		Type:     c.QueryParam("type"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, txs)
}

// Get handles GET /transactions/:id.
//
// @Summary      Get one transaction
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Transaction ID"
// @Success      200  {object}  domain.Transaction
// @Failure      404  {object}  map[string]string
// @Router       /transactions/{id} [get]
func (h *TransactionHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	tx, err := h.service.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tx)
}

// Update handles PUT /transactions/:id.
//
// @Summary      Update a manual transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Transaction ID"
// @Param        body  body      transactionRequest  true  "Transaction details"
// @Success      200   {object}  domain.Transaction
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /transactions/{id} [put]
func (h *TransactionHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tx, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tx)
}

// Delete handles DELETE /transactions/:id.
//
// @Summary      Delete a manual transaction
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Transaction ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "transaction deleted"})
}
