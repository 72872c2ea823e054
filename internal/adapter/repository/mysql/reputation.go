package mysql

import (
	"context"
	"errors"

	repDomain "microlend/internal/domain/reputation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReputationRepository struct{ db *gorm.DB }

func NewReputationRepository(db *gorm.DB) *ReputationRepository {
	return &ReputationRepository{db: db}
}

func (r *ReputationRepository) Create(ctx context.Context, rec *repDomain.Record) error {
	err := r.db.WithContext(ctx).Create(rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repDomain.ErrAlreadyExists
	}
	return err
}

func (r *ReputationRepository) Save(ctx context.Context, rec *repDomain.Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *ReputationRepository) Get(ctx context.Context, borrowerID string) (*repDomain.Record, error) {
	var out repDomain.Record
	err := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ReputationRepository) GetForUpdate(ctx context.Context, borrowerID string) (*repDomain.Record, error) {
	var out repDomain.Record
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("borrower_id = ?", borrowerID).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
