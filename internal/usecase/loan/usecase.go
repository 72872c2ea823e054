package loan

import (
	"context"
	"time"

	domainLoan "microlend/internal/domain/loan"
	"microlend/internal/domain/ledger"
	"microlend/internal/domain/protocol"
	"microlend/internal/domain/reputation"
	"microlend/internal/domain/uow"
	"microlend/internal/policy"
)

type Usecase struct {
	loans domainLoan.Repository
	uow   uow.UnitOfWork
	now   func() int64
}

// NewUsecase: the plain repo serves reads, the UoW serves transitions.
func NewUsecase(loans domainLoan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{
		loans: loans,
		uow:   tx,
		now:   func() int64 { return time.Now().UTC().Unix() },
	}
}

// guardState admits exactly one source state per transition. Every variant
// is listed so a new state cannot slip through an implicit default.
func guardState(s, from domainLoan.State) error {
	switch s {
	case domainLoan.StateRequested, domainLoan.StateFunded, domainLoan.StateActive,
		domainLoan.StateRepaid, domainLoan.StateDefaulted, domainLoan.StateCancelled:
		if s == from {
			return nil
		}
		return domainLoan.ErrInvalidState
	default:
		return domainLoan.ErrInvalidState
	}
}

// CreateRequest opens a loan in Requested state. No value moves yet.
func (u *Usecase) CreateRequest(ctx context.Context, in CreateRequestInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cfg, err := r.Config.Get(ctx)
		if err != nil {
			return err
		}
		if cfg.IsPaused {
			return protocol.ErrPaused
		}

		rep, err := r.Reputations.Get(ctx, in.BorrowerID)
		if err != nil {
			return err
		}
		if rep.IsFrozen {
			return reputation.ErrFrozen
		}
		if in.Amount > policy.MaxBorrow(rep.CreditTier) {
			return reputation.ErrOverBorrowCap
		}
		if in.DurationSeconds < policy.MinDurationSeconds {
			return domainLoan.ErrDurationTooShort
		}
		if in.DurationSeconds > policy.MaxDurationSeconds {
			return domainLoan.ErrDurationTooLong
		}

		floor := policy.MinimumRate(rep.CreditTier, in.DurationSeconds)
		if in.MaxInterestRateBps < floor {
			return domainLoan.ErrRateBelowFloor
		}

		l := &domainLoan.Loan{
			BorrowerID:               in.BorrowerID,
			LoanID:                   in.LoanID,
			Amount:                   in.Amount,
			DurationSeconds:          in.DurationSeconds,
			MaxInterestRateBps:       in.MaxInterestRateBps,
			SuggestedInterestRateBps: floor,
			State:                    domainLoan.StateRequested,
			CreatedAt:                u.now(),
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Fund moves the loan to Funded: the lender's principal goes to escrow and
// the due date is fixed once, at now + duration.
func (u *Usecase) Fund(ctx context.Context, in FundInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.BorrowerID, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		cfg, err := r.Config.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		if cfg.IsPaused {
			return protocol.ErrPaused
		}
		if err := guardState(l.State, domainLoan.StateRequested); err != nil {
			return err
		}
		if in.InterestRateBps > l.MaxInterestRateBps {
			return domainLoan.ErrRateAboveCap
		}

		rep, err := r.Reputations.GetForUpdate(ctx, l.BorrowerID)
		if err != nil {
			return err
		}

		if err := r.Ledger.Transfer(ctx, ledger.Wallet(in.LenderID), ledger.Escrow, l.Amount); err != nil {
			return err
		}

		now := u.now()
		lender := in.LenderID
		l.LenderID = &lender
		l.FundedAmount = l.Amount
		l.ActualInterestRateBps = in.InterestRateBps
		l.FundedAt = now
		l.DueDate = now + l.DurationSeconds
		l.State = domainLoan.StateFunded
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		rep.ActiveLoans++
		rep.TotalLoans++
		rep.TotalBorrowed += l.Amount
		rep.LastUpdated = now
		if err := r.Reputations.Save(ctx, rep); err != nil {
			return err
		}

		cfg.TotalLoansIssued++
		cfg.TotalVolume += l.Amount
		if err := r.Config.Save(ctx, cfg); err != nil {
			return err
		}

		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Withdraw releases escrowed principal to the borrower (Funded -> Active).
func (u *Usecase) Withdraw(ctx context.Context, in ActorInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.BorrowerID, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if in.CallerID != l.BorrowerID {
			return domainLoan.ErrNotBorrower
		}
		if err := guardState(l.State, domainLoan.StateFunded); err != nil {
			return err
		}

		if err := r.Ledger.Transfer(ctx, ledger.Escrow, ledger.Wallet(l.BorrowerID), l.FundedAmount); err != nil {
			return err
		}

		l.State = domainLoan.StateActive
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Repay settles an active loan. The fee is carved out of the lender's
// share: the borrower pays amount+interest, the lender receives that minus
// the fee, and the recorded repaid amount stays amount+interest.
func (u *Usecase) Repay(ctx context.Context, in ActorInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.BorrowerID, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if in.CallerID != l.BorrowerID {
			return domainLoan.ErrNotBorrower
		}
		if err := guardState(l.State, domainLoan.StateActive); err != nil {
			return err
		}
		if l.LenderID == nil {
			return domainLoan.ErrInvalidState
		}

		cfg, err := r.Config.Get(ctx)
		if err != nil {
			return err
		}

		interest := policy.ApplyBps(l.Amount, l.ActualInterestRateBps)
		fee := policy.ApplyBps(interest, cfg.ProtocolFeeBps)
		lenderAmount := l.Amount + interest - fee
		totalRepayment := l.Amount + interest

		if err := r.Ledger.Transfer(ctx, ledger.Wallet(l.BorrowerID), ledger.Wallet(*l.LenderID), lenderAmount); err != nil {
			return err
		}
		if fee > 0 {
			if err := r.Ledger.Transfer(ctx, ledger.Wallet(l.BorrowerID), ledger.Treasury, fee); err != nil {
				return err
			}
		}

		now := u.now()
		l.State = domainLoan.StateRepaid
		l.RepaidAt = now
		l.RepaidAmount = totalRepayment
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		rep, err := r.Reputations.GetForUpdate(ctx, l.BorrowerID)
		if err != nil {
			return err
		}
		// now == due date is still on time; only strictly past-due is late.
		if now > l.DueDate {
			rep.LatePayments++
			rep.SetScore(policy.DeltaLate)
		} else {
			rep.OnTimePayments++
			rep.SetScore(policy.DeltaOnTime)
		}
		rep.ReleaseActiveLoan()
		rep.CompletedLoans++
		rep.TotalRepaid += totalRepayment
		rep.LastUpdated = now
		if err := r.Reputations.Save(ctx, rep); err != nil {
			return err
		}

		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// MarkDefault is the oracle-only transition for past-due active loans. It
// freezes the borrower's reputation until the authority unfreezes it.
func (u *Usecase) MarkDefault(ctx context.Context, in ActorInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.BorrowerID, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		cfg, err := r.Config.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		if in.CallerID != cfg.OracleAuthority {
			return protocol.ErrNotOracle
		}
		if err := guardState(l.State, domainLoan.StateActive); err != nil {
			return err
		}
		now := u.now()
		if now <= l.DueDate {
			return domainLoan.ErrNotYetDue
		}

		l.State = domainLoan.StateDefaulted
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		rep, err := r.Reputations.GetForUpdate(ctx, l.BorrowerID)
		if err != nil {
			return err
		}
		rep.ReleaseActiveLoan()
		rep.DefaultedLoans++
		rep.SetScore(policy.DeltaDefault)
		rep.IsFrozen = true
		rep.LastUpdated = now
		if err := r.Reputations.Save(ctx, rep); err != nil {
			return err
		}

		cfg.TotalDefaults++
		if err := r.Config.Save(ctx, cfg); err != nil {
			return err
		}

		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Cancel retires an unfunded request (Requested -> Cancelled).
func (u *Usecase) Cancel(ctx context.Context, in ActorInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.BorrowerID, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if in.CallerID != l.BorrowerID {
			return domainLoan.ErrNotBorrower
		}
		if err := guardState(l.State, domainLoan.StateRequested); err != nil {
			return err
		}
		l.State = domainLoan.StateCancelled
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, borrowerID string, loanID uint64) (*LoanDTO, error) {
	l, err := u.loans.Get(ctx, borrowerID, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) ListByBorrower(ctx context.Context, borrowerID string) ([]LoanDTO, error) {
	loans, err := u.loans.ListByBorrower(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, *toDTO(&loans[i]))
	}
	return out, nil
}
