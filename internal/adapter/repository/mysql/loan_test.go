package mysql

import (
	"context"
	"errors"
	"testing"

	domain "microlend/internal/domain/loan"
	"microlend/pkg/id"
)

func makeLoan(borrowerID string, loanID uint64) *domain.Loan {
	return &domain.Loan{
		BorrowerID:               borrowerID,
		LoanID:                   loanID,
		Amount:                   5_000_000_000,
		DurationSeconds:          30 * 86400,
		MaxInterestRateBps:       2000,
		SuggestedInterestRateBps: 1010,
		State:                    domain.StateRequested,
		CreatedAt:                1_700_000_000,
	}
}

func TestLoanCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	borrower := id.NewID32()
	l := makeLoan(borrower, 1)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.Get(ctx, borrower, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.BorrowerID != borrower || got.LoanID != 1 {
		t.Fatalf("key mismatch: %+v", got)
	}
	if got.State != domain.StateRequested {
		t.Fatalf("state=%s", got.State)
	}
	if got.LenderID != nil {
		t.Fatalf("lender must be NULL before funding")
	}
}

func TestLoanCreate_DuplicateKey(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	borrower := id.NewID32()
	if err := repo.Create(ctx, makeLoan(borrower, 7)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, makeLoan(borrower, 7))
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("duplicate err=%v", err)
	}
	// same loan id under another borrower is fine
	if err := repo.Create(ctx, makeLoan(id.NewID32(), 7)); err != nil {
		t.Fatalf("Create other borrower: %v", err)
	}
}

func TestLoanGet_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.Get(context.Background(), id.NewID32(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err=%v", err)
	}
}

func TestLoanSave_PersistsTransition(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	borrower := id.NewID32()
	l := makeLoan(borrower, 3)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	lender := id.NewID32()
	l.LenderID = &lender
	l.State = domain.StateFunded
	l.FundedAmount = l.Amount
	l.ActualInterestRateBps = 1500
	l.FundedAt = 1_700_000_500
	l.DueDate = 1_700_000_500 + l.DurationSeconds
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get(ctx, borrower, 3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.State != domain.StateFunded || got.LenderID == nil || *got.LenderID != lender {
		t.Fatalf("transition not persisted: %+v", got)
	}
	if got.DueDate != 1_700_000_500+l.DurationSeconds {
		t.Fatalf("due_date=%d", got.DueDate)
	}
}

func TestLoanListByBorrower(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	borrower := id.NewID32()
	for _, loanID := range []uint64{5, 2, 9} {
		if err := repo.Create(ctx, makeLoan(borrower, loanID)); err != nil {
			t.Fatalf("Create %d: %v", loanID, err)
		}
	}
	_ = repo.Create(ctx, makeLoan(id.NewID32(), 1)) // someone else's loan

	got, err := repo.ListByBorrower(ctx, borrower)
	if err != nil {
		t.Fatalf("ListByBorrower: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len=%d", len(got))
	}
	// ordered by loan_id
	if got[0].LoanID != 2 || got[1].LoanID != 5 || got[2].LoanID != 9 {
		t.Fatalf("order: %v %v %v", got[0].LoanID, got[1].LoanID, got[2].LoanID)
	}
}
