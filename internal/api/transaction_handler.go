package api

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/AzmathBegum/finance-tracker/internal/apperr"
	"github.com/AzmathBegum/finance-tracker/internal/entity"
	"github.com/AzmathBegum/finance-tracker/internal/service"
)

type TransactionHandler struct {
	txService *service.TransactionService
}

func NewTransactionHandler(txService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txService: txService}
}

// createTransactionRequest deliberately has no id or owner field; whatever the
// caller sends for those is ignored and the owner comes from the token.
type createTransactionRequest struct {
	Amount      *decimal.Decimal       `json:"amount"`
	Type        entity.TransactionType `json:"type"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Date        entity.Date            `json:"date"`
}

type updateTransactionRequest struct {
	Amount      *decimal.Decimal        `json:"amount"`
	Type        *entity.TransactionType `json:"type"`
	Category    *string                 `json:"category"`
	Description *string                 `json:"description"`
	Date        *entity.Date            `json:"date"`
}

// List returns the caller's transactions --> GET /transactions
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	transactions, err := h.txService.List(c.Request().Context(), userID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(200, transactions)
}

// Create records a new transaction --> POST /transactions
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	req := createTransactionRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	if req.Amount == nil {
		return errorJSON(c, apperr.Validationf("amount is required"))
	}

	tx, err := h.txService.Create(c.Request().Context(), userID, service.CreateTransactionInput{
		Amount:      *req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(201, tx)
}

// Get returns one transaction --> GET /transactions/:id
func (h *TransactionHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	tx, err := h.txService.Get(c.Request().Context(), userID, id)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(200, tx)
}

// Update applies a partial payload --> PUT /transactions/:id
func (h *TransactionHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	req := updateTransactionRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	tx, err := h.txService.Update(c.Request().Context(), userID, id, service.UpdateTransactionInput{
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(200, tx)
}

// Delete removes a transaction --> DELETE /transactions/:id
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	if err := h.txService.Delete(c.Request().Context(), userID, id); err != nil {
		return errorJSON(c, err)
	}

	return c.NoContent(204)
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperr.Validationf("invalid id")
	}
	return id, nil
}
