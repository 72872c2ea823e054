package protocol

import "context"

type Repository interface {
	// Create fails if the singleton row already exists.
	Create(ctx context.Context, c *Config) error
	Get(ctx context.Context) (*Config, error)
	// GetForUpdate locks the singleton row for the current transaction.
	GetForUpdate(ctx context.Context) (*Config, error)
	Save(ctx context.Context, c *Config) error
}
