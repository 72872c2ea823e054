package loanmock

import (
	"context"
	"errors"

	domain "microlend/internal/domain/loan"
)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock satisfying loan.Repository. Fill in only
// the fields a test needs.
type Repo struct {
	CreateFn         func(ctx context.Context, l *domain.Loan) error
	GetFn            func(ctx context.Context, borrowerID string, loanID uint64) (*domain.Loan, error)
	GetForUpdateFn   func(ctx context.Context, borrowerID string, loanID uint64) (*domain.Loan, error)
	ListByBorrowerFn func(ctx context.Context, borrowerID string) ([]domain.Loan, error)
	SaveFn           func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Get(ctx context.Context, borrowerID string, loanID uint64) (*domain.Loan, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, borrowerID, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetForUpdate(ctx context.Context, borrowerID string, loanID uint64) (*domain.Loan, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, borrowerID, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByBorrower(ctx context.Context, borrowerID string) ([]domain.Loan, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
