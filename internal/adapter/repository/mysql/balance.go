package mysql

import (
	"context"
	"errors"

	"microlend/internal/domain/ledger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Balance backs the ledger.Transfers boundary with a plain balances table.
// Production deployments swap this for the platform's native rails; the
// debit/credit here still rides the operation's transaction.
type Balance struct {
	AccountID string `gorm:"primaryKey;size:64;column:account_id"`
	Amount    uint64 `gorm:"not null;default:0"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (Balance) TableName() string { return "balances" }

type BalanceRepository struct{ db *gorm.DB }

func NewBalanceRepository(db *gorm.DB) *BalanceRepository { return &BalanceRepository{db: db} }

func (r *BalanceRepository) Transfer(ctx context.Context, from, to ledger.Account, amount uint64) error {
	if amount == 0 {
		return nil
	}
	var src Balance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_id = ?", string(from)).
		First(&src).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.ErrAccountNotFound
	}
	if err != nil {
		return err
	}
	if src.Amount < amount {
		return ledger.ErrInsufficientFunds
	}
	src.Amount -= amount
	if err := r.db.WithContext(ctx).Save(&src).Error; err != nil {
		return err
	}
	return r.credit(ctx, to, amount)
}

func (r *BalanceRepository) Deposit(ctx context.Context, to ledger.Account, amount uint64) error {
	return r.credit(ctx, to, amount)
}

func (r *BalanceRepository) Balance(ctx context.Context, a ledger.Account) (uint64, error) {
	var out Balance
	err := r.db.WithContext(ctx).
		Where("account_id = ?", string(a)).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ledger.ErrAccountNotFound
	}
	if err != nil {
		return 0, err
	}
	return out.Amount, nil
}

func (r *BalanceRepository) credit(ctx context.Context, to ledger.Account, amount uint64) error {
	var dst Balance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_id = ?", string(to)).
		First(&dst).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		dst = Balance{AccountID: string(to), Amount: amount}
		return r.db.WithContext(ctx).Create(&dst).Error
	case err != nil:
		return err
	}
	dst.Amount += amount
	return r.db.WithContext(ctx).Save(&dst).Error
}
