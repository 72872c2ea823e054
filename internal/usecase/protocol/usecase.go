package protocol

import (
	"context"

	domainProto "microlend/internal/domain/protocol"
	"microlend/internal/domain/uow"
	"microlend/internal/policy"
)

type Usecase struct {
	config domainProto.Repository
	uow    uow.UnitOfWork
}

func NewUsecase(config domainProto.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{config: config, uow: tx}
}

type InitializeInput struct {
	Authority       string `json:"authority"`
	OracleAuthority string `json:"oracle_authority"`
	ProtocolFeeBps  uint32 `json:"protocol_fee_bps"`
}

// UpdateInput patches the config: nil fields are left untouched.
type UpdateInput struct {
	CallerID        string
	OracleAuthority *string `json:"oracle_authority"`
	ProtocolFeeBps  *uint32 `json:"protocol_fee_bps"`
	IsPaused        *bool   `json:"is_paused"`
}

// Initialize creates the singleton config. A second call collides on the
// storage key and maps to ErrAlreadyInitialized.
func (u *Usecase) Initialize(ctx context.Context, in InitializeInput) (*domainProto.Config, error) {
	if in.ProtocolFeeBps > policy.MaxFeeBps {
		return nil, domainProto.ErrFeeTooHigh
	}
	cfg := &domainProto.Config{
		ID:              domainProto.SingletonID,
		Authority:       in.Authority,
		OracleAuthority: in.OracleAuthority,
		ProtocolFeeBps:  in.ProtocolFeeBps,
	}
	if err := u.config.Create(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (u *Usecase) Get(ctx context.Context) (*domainProto.Config, error) {
	return u.config.Get(ctx)
}

// Update is authority-only; each field is independently optional.
func (u *Usecase) Update(ctx context.Context, in UpdateInput) (*domainProto.Config, error) {
	var out *domainProto.Config
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cfg, err := r.Config.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		if in.CallerID != cfg.Authority {
			return domainProto.ErrNotAuthority
		}
		if in.ProtocolFeeBps != nil {
			if *in.ProtocolFeeBps > policy.MaxFeeBps {
				return domainProto.ErrFeeTooHigh
			}
			cfg.ProtocolFeeBps = *in.ProtocolFeeBps
		}
		if in.OracleAuthority != nil {
			cfg.OracleAuthority = *in.OracleAuthority
		}
		if in.IsPaused != nil {
			cfg.IsPaused = *in.IsPaused
		}
		if err := r.Config.Save(ctx, cfg); err != nil {
			return err
		}
		out = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
