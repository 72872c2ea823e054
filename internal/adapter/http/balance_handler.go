package http

import (
	"net/http"

	"microlend/internal/domain/ledger"

	"github.com/labstack/echo/v4"
)

// BalanceHandler is a thin surface over the value-transfer boundary so
// wallets can be funded in environments without the platform's rails.
type BalanceHandler struct{ ledger ledger.Transfers }

func NewBalanceHandler(l ledger.Transfers) *BalanceHandler { return &BalanceHandler{ledger: l} }

type depositReq struct {
	Account string `json:"account" validate:"required"`
	Amount  uint64 `json:"amount" validate:"required,gt=0"`
}

func (h *BalanceHandler) Deposit(c echo.Context) error {
	var req depositReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if err := h.ledger.Deposit(c.Request().Context(), ledger.Account(req.Account), req.Amount); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"account": req.Account, "credited": req.Amount})
}

func (h *BalanceHandler) GetBalance(c echo.Context) error {
	amount, err := h.ledger.Balance(c.Request().Context(), ledger.Account(c.Param("account")))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"account": c.Param("account"), "amount": amount})
}
