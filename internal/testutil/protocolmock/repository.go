package protocolmock

import (
	"context"
	"errors"

	domain "microlend/internal/domain/protocol"
)

var errUnimplemented = errors.New("protocolmock: method not implemented")

// Repo is a function-backed mock satisfying protocol.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, c *domain.Config) error
	GetFn          func(ctx context.Context) (*domain.Config, error)
	GetForUpdateFn func(ctx context.Context) (*domain.Config, error)
	SaveFn         func(ctx context.Context, c *domain.Config) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Config) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) Get(ctx context.Context) (*domain.Config, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetForUpdate(ctx context.Context) (*domain.Config, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, c *domain.Config) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
