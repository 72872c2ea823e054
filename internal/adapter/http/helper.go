package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"microlend/internal/domain/ledger"
	"microlend/internal/domain/loan"
	"microlend/internal/domain/protocol"
	"microlend/internal/domain/reputation"

	"github.com/labstack/echo/v4"
)

// actorID extracts the verified caller identity. Signature verification
// happens upstream; by the time a request lands here the platform has
// authenticated whoever this header names.
func actorID(c echo.Context) (string, bool) {
	id := strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Id"))
	return id, reHex32.MatchString(id)
}

func parseLoanID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("loan_id"), 10, 64)
}

// errStatus maps the domain's rejection kinds onto HTTP statuses:
// missing records 404, duplicates and wrong-state 409, identity 403,
// policy 422.
func errStatus(err error) int {
	switch {
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, reputation.ErrNotFound),
		errors.Is(err, protocol.ErrNotInitialized),
		errors.Is(err, ledger.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, loan.ErrAlreadyExists),
		errors.Is(err, reputation.ErrAlreadyExists),
		errors.Is(err, protocol.ErrAlreadyInitialized),
		errors.Is(err, loan.ErrInvalidState),
		errors.Is(err, loan.ErrNotYetDue):
		return http.StatusConflict
	case errors.Is(err, loan.ErrNotBorrower),
		errors.Is(err, loan.ErrNotLender),
		errors.Is(err, protocol.ErrNotAuthority),
		errors.Is(err, protocol.ErrNotOracle):
		return http.StatusForbidden
	case errors.Is(err, protocol.ErrPaused),
		errors.Is(err, protocol.ErrFeeTooHigh),
		errors.Is(err, reputation.ErrFrozen),
		errors.Is(err, reputation.ErrOverBorrowCap),
		errors.Is(err, loan.ErrDurationTooShort),
		errors.Is(err, loan.ErrDurationTooLong),
		errors.Is(err, loan.ErrRateBelowFloor),
		errors.Is(err, loan.ErrRateAboveCap),
		errors.Is(err, ledger.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func jsonError(c echo.Context, err error) error {
	return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
}
