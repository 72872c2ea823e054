package mysql

import (
	"context"

	"microlend/internal/domain/loan"
	"microlend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func bindRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Loans:       &LoanRepository{db: tx},
		Reputations: &ReputationRepository{db: tx},
		Config:      &ProtocolRepository{db: tx},
		Ledger:      &BalanceRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(bindRepos(tx))
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, borrowerID string, loanID uint64, fn func(r uow.Repos, l *loan.Loan) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := bindRepos(tx)
		// lock the loan row up-front to prevent races
		l, err := r.Loans.GetForUpdate(ctx, borrowerID, loanID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}
