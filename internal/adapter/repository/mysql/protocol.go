package mysql

import (
	"context"
	"errors"

	protoDomain "microlend/internal/domain/protocol"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProtocolRepository struct{ db *gorm.DB }

func NewProtocolRepository(db *gorm.DB) *ProtocolRepository {
	return &ProtocolRepository{db: db}
}

func (r *ProtocolRepository) Create(ctx context.Context, c *protoDomain.Config) error {
	c.ID = protoDomain.SingletonID
	err := r.db.WithContext(ctx).Create(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return protoDomain.ErrAlreadyInitialized
	}
	return err
}

func (r *ProtocolRepository) Save(ctx context.Context, c *protoDomain.Config) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ProtocolRepository) Get(ctx context.Context) (*protoDomain.Config, error) {
	var out protoDomain.Config
	err := r.db.WithContext(ctx).
		Where("id = ?", protoDomain.SingletonID).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, protoDomain.ErrNotInitialized
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ProtocolRepository) GetForUpdate(ctx context.Context) (*protoDomain.Config, error) {
	var out protoDomain.Config
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", protoDomain.SingletonID).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, protoDomain.ErrNotInitialized
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
