package http

import (
	"net/http"

	uc "microlend/internal/usecase/reputation"

	"github.com/labstack/echo/v4"
)

type ReputationHandler struct{ uc *uc.Usecase }

func NewReputationHandler(u *uc.Usecase) *ReputationHandler { return &ReputationHandler{uc: u} }

// CreateReputation onboards the calling borrower.
func (h *ReputationHandler) CreateReputation(c echo.Context) error {
	caller, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Actor-Id"})
	}
	dto, err := h.uc.Create(c.Request().Context(), caller)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ReputationHandler) GetReputation(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("borrower_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Unfreeze is authority-only; the usecase enforces the identity check.
func (h *ReputationHandler) Unfreeze(c echo.Context) error {
	caller, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Actor-Id"})
	}
	dto, err := h.uc.Unfreeze(c.Request().Context(), uc.UnfreezeInput{
		BorrowerID: c.Param("borrower_id"),
		CallerID:   caller,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
