package mysql

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no MySQL ENUM columns) ---

type loanSQLite struct {
	ID                       uint64  `gorm:"primaryKey;column:id"`
	BorrowerID               string  `gorm:"size:32;column:borrower_id;uniqueIndex:ux_loans_borrower_loan"`
	LoanID                   uint64  `gorm:"column:loan_id;uniqueIndex:ux_loans_borrower_loan"`
	LenderID                 *string `gorm:"size:32;column:lender_id"`
	Amount                   uint64  `gorm:"column:amount"`
	FundedAmount             uint64  `gorm:"column:funded_amount"`
	DurationSeconds          int64   `gorm:"column:duration_seconds"`
	MaxInterestRateBps       uint32  `gorm:"column:max_interest_rate_bps"`
	SuggestedInterestRateBps uint32  `gorm:"column:suggested_interest_rate_bps"`
	ActualInterestRateBps    uint32  `gorm:"column:actual_interest_rate_bps"`
	State                    string  `gorm:"type:text;column:state"` // ← no enum
	CreatedAt                int64   `gorm:"column:created_at"`
	FundedAt                 int64   `gorm:"column:funded_at"`
	DueDate                  int64   `gorm:"column:due_date"`
	RepaidAt                 int64   `gorm:"column:repaid_at"`
	RepaidAmount             uint64  `gorm:"column:repaid_amount"`
	UpdatedAt                int64   `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type reputationSQLite struct {
	ID             uint64 `gorm:"primaryKey;column:id"`
	BorrowerID     string `gorm:"size:32;column:borrower_id;uniqueIndex:ux_reputations_borrower"`
	CreditScore    int    `gorm:"column:credit_score"`
	CreditTier     string `gorm:"type:text;column:credit_tier"` // ← no enum
	TotalLoans     uint32 `gorm:"column:total_loans"`
	ActiveLoans    uint32 `gorm:"column:active_loans"`
	CompletedLoans uint32 `gorm:"column:completed_loans"`
	DefaultedLoans uint32 `gorm:"column:defaulted_loans"`
	TotalBorrowed  uint64 `gorm:"column:total_borrowed"`
	TotalRepaid    uint64 `gorm:"column:total_repaid"`
	OnTimePayments uint32 `gorm:"column:on_time_payments"`
	LatePayments   uint32 `gorm:"column:late_payments"`
	IsFrozen       bool   `gorm:"column:is_frozen"`
	CreatedAt      int64  `gorm:"column:created_at"`
	LastUpdated    int64  `gorm:"column:last_updated"`
}

func (reputationSQLite) TableName() string { return "reputations" }

type configSQLite struct {
	ID               uint64 `gorm:"primaryKey;column:id"`
	Authority        string `gorm:"size:32;column:authority"`
	OracleAuthority  string `gorm:"size:32;column:oracle_authority"`
	ProtocolFeeBps   uint32 `gorm:"column:protocol_fee_bps"`
	TotalLoansIssued uint64 `gorm:"column:total_loans_issued"`
	TotalVolume      uint64 `gorm:"column:total_volume"`
	TotalDefaults    uint64 `gorm:"column:total_defaults"`
	IsPaused         bool   `gorm:"column:is_paused"`
	CreatedAt        int64  `gorm:"column:created_at"`
	UpdatedAt        int64  `gorm:"column:updated_at"`
}

func (configSQLite) TableName() string { return "protocol_config" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, not the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanSQLite{}, &reputationSQLite{}, &configSQLite{}, &Balance{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
