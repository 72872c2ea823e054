package uow

import (
	"context"

	"microlend/internal/domain/ledger"
	"microlend/internal/domain/loan"
	"microlend/internal/domain/protocol"
	"microlend/internal/domain/reputation"
)

// Repos bundles every repository bound to one transaction. Record
// mutations and ledger transfers made through the same Repos commit or
// roll back together.
type Repos struct {
	Loans       loan.Repository
	Reputations reputation.Repository
	Config      protocol.Repository
	Ledger      ledger.Transfers
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, borrowerID string, loanID uint64, fn func(r Repos, l *loan.Loan) error) error
}
