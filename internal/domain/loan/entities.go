package loan

import "errors"

type State string

const (
	StateRequested State = "requested"
	StateFunded    State = "funded"
	StateActive    State = "active"
	StateRepaid    State = "repaid"
	StateDefaulted State = "defaulted"
	StateCancelled State = "cancelled"
)

// Terminal reports whether no further transition is accepted from s.
func (s State) Terminal() bool {
	switch s {
	case StateRepaid, StateDefaulted, StateCancelled:
		return true
	}
	return false
}

var (
	ErrNotFound      = errors.New("loan not found")
	ErrAlreadyExists = errors.New("loan already exists for this borrower and id")
	// ErrInvalidState: the loan is not in the source state the action requires.
	ErrInvalidState     = errors.New("loan is not in a valid state for this action")
	ErrNotYetDue        = errors.New("loan is not past its due date")
	ErrDurationTooShort = errors.New("loan duration is below the 1 day minimum")
	ErrDurationTooLong  = errors.New("loan duration exceeds the 1 year maximum")
	ErrRateBelowFloor   = errors.New("max interest rate is below the policy minimum")
	ErrRateAboveCap     = errors.New("interest rate exceeds the borrower's ceiling")
	ErrNotBorrower      = errors.New("caller is not the loan borrower")
	ErrNotLender        = errors.New("caller is not the loan lender")
)

// Loan is one borrower's loan, keyed by (borrower_id, loan_id). The lender
// is absent until the loan is funded. Domain timestamps are unix seconds.
type Loan struct {
	ID         uint64  `gorm:"primaryKey;column:id" json:"-"`
	BorrowerID string  `gorm:"size:32;uniqueIndex:ux_loans_borrower_loan" json:"borrower_id"`
	LoanID     uint64  `gorm:"column:loan_id;uniqueIndex:ux_loans_borrower_loan" json:"loan_id"`
	LenderID   *string `gorm:"size:32" json:"lender_id,omitempty"`

	Amount       uint64 `gorm:"not null" json:"amount"`
	FundedAmount uint64 `gorm:"not null;default:0" json:"funded_amount"`

	DurationSeconds          int64  `gorm:"not null" json:"duration_seconds"`
	MaxInterestRateBps       uint32 `gorm:"not null" json:"max_interest_rate_bps"`
	SuggestedInterestRateBps uint32 `gorm:"not null" json:"suggested_interest_rate_bps"`
	ActualInterestRateBps    uint32 `gorm:"not null;default:0" json:"actual_interest_rate_bps"`

	State State `gorm:"type:enum('requested','funded','active','repaid','defaulted','cancelled');default:'requested'" json:"state"`

	CreatedAt    int64  `gorm:"autoCreateTime" json:"created_at"`
	FundedAt     int64  `gorm:"not null;default:0" json:"funded_at"`
	DueDate      int64  `gorm:"not null;default:0" json:"due_date"`
	RepaidAt     int64  `gorm:"not null;default:0" json:"repaid_at"`
	RepaidAmount uint64 `gorm:"not null;default:0" json:"repaid_amount"`

	UpdatedAt int64 `gorm:"autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }
