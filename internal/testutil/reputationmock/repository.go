package reputationmock

import (
	"context"
	"errors"

	domain "microlend/internal/domain/reputation"
)

var errUnimplemented = errors.New("reputationmock: method not implemented")

// Repo is a function-backed mock satisfying reputation.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, r *domain.Record) error
	GetFn          func(ctx context.Context, borrowerID string) (*domain.Record, error)
	GetForUpdateFn func(ctx context.Context, borrowerID string) (*domain.Record, error)
	SaveFn         func(ctx context.Context, r *domain.Record) error
}

func (m *Repo) Create(ctx context.Context, r *domain.Record) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) Get(ctx context.Context, borrowerID string) (*domain.Record, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, borrowerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetForUpdate(ctx context.Context, borrowerID string) (*domain.Record, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, borrowerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, r *domain.Record) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
