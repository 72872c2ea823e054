package http

import (
	"net/http"

	uc "microlend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *uc.Usecase }

func NewLoanHandler(u *uc.Usecase) *LoanHandler { return &LoanHandler{uc: u} }

type createLoanReq struct {
	LoanID             uint64 `json:"loan_id" validate:"required"`
	Amount             uint64 `json:"amount" validate:"required,gt=0"`
	DurationSeconds    int64  `json:"duration_seconds" validate:"required,gt=0"`
	MaxInterestRateBps uint32 `json:"max_interest_rate_bps" validate:"required,gt=0"`
}

type fundLoanReq struct {
	InterestRateBps uint32 `json:"interest_rate_bps" validate:"required,gt=0"`
}

// CreateLoan opens a request on behalf of the calling borrower.
func (h *LoanHandler) CreateLoan(c echo.Context) error {
	caller, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Actor-Id"})
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.CreateRequest(c.Request().Context(), uc.CreateRequestInput{
		BorrowerID:         caller,
		LoanID:             req.LoanID,
		Amount:             req.Amount,
		DurationSeconds:    req.DurationSeconds,
		MaxInterestRateBps: req.MaxInterestRateBps,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// FundLoan: the caller is the lender.
func (h *LoanHandler) FundLoan(c echo.Context) error {
	caller, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Actor-Id"})
	}
	loanID, err := parseLoanID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	var req fundLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Fund(c.Request().Context(), uc.FundInput{
		BorrowerID:      c.Param("borrower_id"),
		LoanID:          loanID,
		LenderID:        caller,
		InterestRateBps: req.InterestRateBps,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) transition(c echo.Context, run func(uc.ActorInput) (*uc.LoanDTO, error)) error {
	caller, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Actor-Id"})
	}
	loanID, err := parseLoanID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := run(uc.ActorInput{
		BorrowerID: c.Param("borrower_id"),
		LoanID:     loanID,
		CallerID:   caller,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) WithdrawLoan(c echo.Context) error {
	return h.transition(c, func(in uc.ActorInput) (*uc.LoanDTO, error) {
		return h.uc.Withdraw(c.Request().Context(), in)
	})
}

func (h *LoanHandler) RepayLoan(c echo.Context) error {
	return h.transition(c, func(in uc.ActorInput) (*uc.LoanDTO, error) {
		return h.uc.Repay(c.Request().Context(), in)
	})
}

func (h *LoanHandler) MarkDefault(c echo.Context) error {
	return h.transition(c, func(in uc.ActorInput) (*uc.LoanDTO, error) {
		return h.uc.MarkDefault(c.Request().Context(), in)
	})
}

func (h *LoanHandler) CancelLoan(c echo.Context) error {
	return h.transition(c, func(in uc.ActorInput) (*uc.LoanDTO, error) {
		return h.uc.Cancel(c.Request().Context(), in)
	})
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID, err := parseLoanID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), c.Param("borrower_id"), loanID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	out, err := h.uc.ListByBorrower(c.Request().Context(), c.Param("borrower_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
