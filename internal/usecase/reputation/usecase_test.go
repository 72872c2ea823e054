package reputation

import (
	"context"
	"errors"
	"testing"

	"microlend/internal/domain/protocol"
	domainRep "microlend/internal/domain/reputation"
	"microlend/internal/domain/uow"
	"microlend/internal/policy"
	"microlend/internal/testutil/protocolmock"
	"microlend/internal/testutil/reputationmock"
	"microlend/internal/testutil/uowmock"
)

const (
	borrowerID  = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	authorityID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func TestCreate_StartsAtNeutralScore(t *testing.T) {
	var created *domainRep.Record
	reps := &reputationmock.Repo{
		CreateFn: func(ctx context.Context, r *domainRep.Record) error {
			created = r
			return nil
		},
	}
	u := NewUsecase(reps, uowmock.New())
	u.now = func() int64 { return 42 }

	dto, err := u.Create(context.Background(), borrowerID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dto.CreditScore != policy.InitialScore {
		t.Fatalf("score=%d", dto.CreditScore)
	}
	if dto.CreditTier != string(policy.TierC) {
		t.Fatalf("tier=%s", dto.CreditTier)
	}
	if dto.IsFrozen {
		t.Fatalf("new record must not be frozen")
	}
	if created == nil || created.CreatedAt != 42 || created.LastUpdated != 42 {
		t.Fatalf("timestamps: %+v", created)
	}
}

func TestCreate_DuplicateBorrower(t *testing.T) {
	reps := &reputationmock.Repo{
		CreateFn: func(ctx context.Context, r *domainRep.Record) error {
			return domainRep.ErrAlreadyExists
		},
	}
	u := NewUsecase(reps, uowmock.New())
	if _, err := u.Create(context.Background(), borrowerID); !errors.Is(err, domainRep.ErrAlreadyExists) {
		t.Fatalf("err=%v", err)
	}
}

func TestUnfreeze(t *testing.T) {
	newWorld := func(frozen *domainRep.Record) uow.Repos {
		return uow.Repos{
			Reputations: &reputationmock.Repo{
				GetForUpdateFn: func(ctx context.Context, b string) (*domainRep.Record, error) {
					if b != borrowerID {
						return nil, domainRep.ErrNotFound
					}
					return frozen, nil
				},
				SaveFn: func(ctx context.Context, r *domainRep.Record) error { return nil },
			},
			Config: &protocolmock.Repo{
				GetFn: func(ctx context.Context) (*protocol.Config, error) {
					return &protocol.Config{Authority: authorityID}, nil
				},
			},
		}
	}

	t.Run("authority clears freeze, score untouched", func(t *testing.T) {
		rec := &domainRep.Record{
			BorrowerID:  borrowerID,
			CreditScore: 350,
			CreditTier:  policy.TierOf(350),
			IsFrozen:    true,
		}
		u := NewUsecase(nil, uowmock.Passthrough(newWorld(rec)))
		u.now = func() int64 { return 99 }

		dto, err := u.Unfreeze(context.Background(), UnfreezeInput{
			BorrowerID: borrowerID, CallerID: authorityID,
		})
		if err != nil {
			t.Fatalf("Unfreeze: %v", err)
		}
		if dto.IsFrozen {
			t.Fatalf("still frozen")
		}
		if dto.CreditScore != 350 || dto.CreditTier != string(policy.TierD) {
			t.Fatalf("unfreeze must not alter score/tier: %+v", dto)
		}
		if dto.LastUpdated != 99 {
			t.Fatalf("last_updated=%d", dto.LastUpdated)
		}
	})

	t.Run("non-authority rejected", func(t *testing.T) {
		rec := &domainRep.Record{BorrowerID: borrowerID, IsFrozen: true}
		u := NewUsecase(nil, uowmock.Passthrough(newWorld(rec)))
		_, err := u.Unfreeze(context.Background(), UnfreezeInput{
			BorrowerID: borrowerID, CallerID: borrowerID,
		})
		if !errors.Is(err, protocol.ErrNotAuthority) {
			t.Fatalf("err=%v", err)
		}
	})
}
