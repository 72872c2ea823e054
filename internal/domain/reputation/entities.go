package reputation

import (
	"errors"

	"microlend/internal/policy"
)

var (
	ErrNotFound      = errors.New("reputation not found")
	ErrAlreadyExists = errors.New("reputation already exists for this borrower")
	ErrFrozen        = errors.New("reputation is frozen")
	ErrOverBorrowCap = errors.New("amount exceeds the tier borrow cap")
)

// Record is a borrower's portable credit history. CreditTier is always the
// derived function of CreditScore; SetScore keeps the two in sync.
type Record struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	BorrowerID string `gorm:"size:32;uniqueIndex:ux_reputations_borrower" json:"borrower_id"`

	CreditScore int         `gorm:"not null" json:"credit_score"`
	CreditTier  policy.Tier `gorm:"type:enum('A','B','C','D')" json:"credit_tier"`

	TotalLoans     uint32 `gorm:"not null;default:0" json:"total_loans"`
	ActiveLoans    uint32 `gorm:"not null;default:0" json:"active_loans"`
	CompletedLoans uint32 `gorm:"not null;default:0" json:"completed_loans"`
	DefaultedLoans uint32 `gorm:"not null;default:0" json:"defaulted_loans"`

	TotalBorrowed uint64 `gorm:"not null;default:0" json:"total_borrowed"`
	TotalRepaid   uint64 `gorm:"not null;default:0" json:"total_repaid"`

	OnTimePayments uint32 `gorm:"not null;default:0" json:"on_time_payments"`
	LatePayments   uint32 `gorm:"not null;default:0" json:"late_payments"`

	IsFrozen bool `gorm:"not null;default:false" json:"is_frozen"`

	CreatedAt   int64 `gorm:"autoCreateTime" json:"created_at"`
	LastUpdated int64 `gorm:"not null;default:0" json:"last_updated"`
}

func (Record) TableName() string { return "reputations" }

// SetScore clamps and stores the adjusted score and recomputes the tier.
func (r *Record) SetScore(delta int) {
	r.CreditScore = policy.AdjustScore(r.CreditScore, delta)
	r.CreditTier = policy.TierOf(r.CreditScore)
}

// ReleaseActiveLoan decrements the active counter, saturating at zero.
func (r *Record) ReleaseActiveLoan() {
	if r.ActiveLoans > 0 {
		r.ActiveLoans--
	}
}
