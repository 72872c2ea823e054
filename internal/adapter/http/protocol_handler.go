package http

import (
	"net/http"

	uc "microlend/internal/usecase/protocol"

	"github.com/labstack/echo/v4"
)

type ProtocolHandler struct{ uc *uc.Usecase }

func NewProtocolHandler(u *uc.Usecase) *ProtocolHandler { return &ProtocolHandler{uc: u} }

type initializeReq struct {
	Authority       string `json:"authority" validate:"required,hex32"`
	OracleAuthority string `json:"oracle_authority" validate:"required,hex32"`
	ProtocolFeeBps  uint32 `json:"protocol_fee_bps" validate:"lte=1000"`
}

type updateConfigReq struct {
	OracleAuthority *string `json:"oracle_authority" validate:"omitempty,hex32"`
	ProtocolFeeBps  *uint32 `json:"protocol_fee_bps" validate:"omitempty,lte=1000"`
	IsPaused        *bool   `json:"is_paused"`
}

func (h *ProtocolHandler) Initialize(c echo.Context) error {
	var req initializeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	cfg, err := h.uc.Initialize(c.Request().Context(), uc.InitializeInput{
		Authority:       req.Authority,
		OracleAuthority: req.OracleAuthority,
		ProtocolFeeBps:  req.ProtocolFeeBps,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, cfg)
}

func (h *ProtocolHandler) GetConfig(c echo.Context) error {
	cfg, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, cfg)
}

func (h *ProtocolHandler) UpdateConfig(c echo.Context) error {
	caller, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Actor-Id"})
	}
	var req updateConfigReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	cfg, err := h.uc.Update(c.Request().Context(), uc.UpdateInput{
		CallerID:        caller,
		OracleAuthority: req.OracleAuthority,
		ProtocolFeeBps:  req.ProtocolFeeBps,
		IsPaused:        req.IsPaused,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, cfg)
}
