package loan

import (
	domainLoan "microlend/internal/domain/loan"
)

type CreateRequestInput struct {
	BorrowerID         string `json:"borrower_id"`
	LoanID             uint64 `json:"loan_id"`
	Amount             uint64 `json:"amount"`
	DurationSeconds    int64  `json:"duration_seconds"`
	MaxInterestRateBps uint32 `json:"max_interest_rate_bps"`
}

type FundInput struct {
	BorrowerID      string
	LoanID          uint64
	LenderID        string
	InterestRateBps uint32
}

// ActorInput identifies a loan plus the caller for the transitions that
// carry no other payload (withdraw, repay, cancel, mark default).
type ActorInput struct {
	BorrowerID string
	LoanID     uint64
	CallerID   string
}

type LoanDTO struct {
	BorrowerID               string  `json:"borrower_id"`
	LoanID                   uint64  `json:"loan_id"`
	LenderID                 *string `json:"lender_id,omitempty"`
	Amount                   uint64  `json:"amount"`
	FundedAmount             uint64  `json:"funded_amount"`
	DurationSeconds          int64   `json:"duration_seconds"`
	MaxInterestRateBps       uint32  `json:"max_interest_rate_bps"`
	SuggestedInterestRateBps uint32  `json:"suggested_interest_rate_bps"`
	ActualInterestRateBps    uint32  `json:"actual_interest_rate_bps"`
	State                    string  `json:"state"`
	CreatedAt                int64   `json:"created_at"`
	FundedAt                 int64   `json:"funded_at,omitempty"`
	DueDate                  int64   `json:"due_date,omitempty"`
	RepaidAt                 int64   `json:"repaid_at,omitempty"`
	RepaidAmount             uint64  `json:"repaid_amount,omitempty"`
}

func toDTO(l *domainLoan.Loan) *LoanDTO {
	return &LoanDTO{
		BorrowerID:               l.BorrowerID,
		LoanID:                   l.LoanID,
		LenderID:                 l.LenderID,
		Amount:                   l.Amount,
		FundedAmount:             l.FundedAmount,
		DurationSeconds:          l.DurationSeconds,
		MaxInterestRateBps:       l.MaxInterestRateBps,
		SuggestedInterestRateBps: l.SuggestedInterestRateBps,
		ActualInterestRateBps:    l.ActualInterestRateBps,
		State:                    string(l.State),
		CreatedAt:                l.CreatedAt,
		FundedAt:                 l.FundedAt,
		DueDate:                  l.DueDate,
		RepaidAt:                 l.RepaidAt,
		RepaidAmount:             l.RepaidAmount,
	}
}
