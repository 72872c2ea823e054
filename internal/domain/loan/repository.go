package loan

import "context"

type Repository interface {
	// Create fails if a loan with the same (borrower_id, loan_id) exists.
	Create(ctx context.Context, l *Loan) error
	Get(ctx context.Context, borrowerID string, loanID uint64) (*Loan, error)
	// GetForUpdate locks the loan row for the current transaction.
	GetForUpdate(ctx context.Context, borrowerID string, loanID uint64) (*Loan, error)
	ListByBorrower(ctx context.Context, borrowerID string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
