// Package ledger is the boundary to the platform's value-transfer rails.
// The core only ever asks for atomic moves between named balances; custody
// and settlement mechanics live outside.
package ledger

import (
	"context"
	"errors"
)

var (
	ErrInsufficientFunds = errors.New("insufficient balance for transfer")
	ErrAccountNotFound   = errors.New("balance account not found")
)

// Account names a custodial balance. Wallets use the owner's 32-hex
// identity; the protocol's own balances use the reserved names below.
type Account string

const (
	// Escrow holds principal between funding and borrower withdrawal.
	Escrow Account = "protocol:escrow"
	// Treasury collects protocol fees.
	Treasury Account = "protocol:treasury"
)

func Wallet(identity string) Account { return Account(identity) }

// Transfers moves value between balances. Each call is all-or-nothing;
// when invoked inside a unit of work it commits with the rest of the
// operation or not at all.
type Transfers interface {
	Transfer(ctx context.Context, from, to Account, amount uint64) error
	Deposit(ctx context.Context, to Account, amount uint64) error
	Balance(ctx context.Context, a Account) (uint64, error)
}
