package reputation

import (
	"context"
	"time"

	"microlend/internal/domain/protocol"
	domainRep "microlend/internal/domain/reputation"
	"microlend/internal/domain/uow"
	"microlend/internal/policy"
)

type Usecase struct {
	reps domainRep.Repository
	uow  uow.UnitOfWork
	now  func() int64
}

func NewUsecase(reps domainRep.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{
		reps: reps,
		uow:  tx,
		now:  func() int64 { return time.Now().UTC().Unix() },
	}
}

type UnfreezeInput struct {
	BorrowerID string
	CallerID   string
}

type RecordDTO struct {
	BorrowerID     string `json:"borrower_id"`
	CreditScore    int    `json:"credit_score"`
	CreditTier     string `json:"credit_tier"`
	TotalLoans     uint32 `json:"total_loans"`
	ActiveLoans    uint32 `json:"active_loans"`
	CompletedLoans uint32 `json:"completed_loans"`
	DefaultedLoans uint32 `json:"defaulted_loans"`
	TotalBorrowed  uint64 `json:"total_borrowed"`
	TotalRepaid    uint64 `json:"total_repaid"`
	OnTimePayments uint32 `json:"on_time_payments"`
	LatePayments   uint32 `json:"late_payments"`
	IsFrozen       bool   `json:"is_frozen"`
	CreatedAt      int64  `json:"created_at"`
	LastUpdated    int64  `json:"last_updated"`
}

func toDTO(r *domainRep.Record) *RecordDTO {
	return &RecordDTO{
		BorrowerID:     r.BorrowerID,
		CreditScore:    r.CreditScore,
		CreditTier:     string(r.CreditTier),
		TotalLoans:     r.TotalLoans,
		ActiveLoans:    r.ActiveLoans,
		CompletedLoans: r.CompletedLoans,
		DefaultedLoans: r.DefaultedLoans,
		TotalBorrowed:  r.TotalBorrowed,
		TotalRepaid:    r.TotalRepaid,
		OnTimePayments: r.OnTimePayments,
		LatePayments:   r.LatePayments,
		IsFrozen:       r.IsFrozen,
		CreatedAt:      r.CreatedAt,
		LastUpdated:    r.LastUpdated,
	}
}

// Create onboards a borrower with the neutral starting score. One record
// per borrower; duplicates are rejected by the storage key.
func (u *Usecase) Create(ctx context.Context, borrowerID string) (*RecordDTO, error) {
	now := u.now()
	rec := &domainRep.Record{
		BorrowerID:  borrowerID,
		CreditScore: policy.InitialScore,
		CreditTier:  policy.TierOf(policy.InitialScore),
		CreatedAt:   now,
		LastUpdated: now,
	}
	if err := u.reps.Create(ctx, rec); err != nil {
		return nil, err
	}
	return toDTO(rec), nil
}

func (u *Usecase) Get(ctx context.Context, borrowerID string) (*RecordDTO, error) {
	rec, err := u.reps.Get(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	return toDTO(rec), nil
}

// Unfreeze clears the default freeze without touching score or tier. It is
// the deliberate rehabilitation path and only the config authority may
// take it.
func (u *Usecase) Unfreeze(ctx context.Context, in UnfreezeInput) (*RecordDTO, error) {
	var dto *RecordDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cfg, err := r.Config.Get(ctx)
		if err != nil {
			return err
		}
		if in.CallerID != cfg.Authority {
			return protocol.ErrNotAuthority
		}

		rec, err := r.Reputations.GetForUpdate(ctx, in.BorrowerID)
		if err != nil {
			return err
		}
		rec.IsFrozen = false
		rec.LastUpdated = u.now()
		if err := r.Reputations.Save(ctx, rec); err != nil {
			return err
		}
		dto = toDTO(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
