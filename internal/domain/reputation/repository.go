package reputation

import "context"

type Repository interface {
	// Create fails if the borrower already has a record.
	Create(ctx context.Context, r *Record) error
	Get(ctx context.Context, borrowerID string) (*Record, error)
	// GetForUpdate locks the record row for the current transaction.
	GetForUpdate(ctx context.Context, borrowerID string) (*Record, error)
	Save(ctx context.Context, r *Record) error
}
