package ledgermock

import (
	"context"
	"sync"

	"microlend/internal/domain/ledger"
)

// Move records one executed transfer, in call order.
type Move struct {
	From   ledger.Account
	To     ledger.Account
	Amount uint64
}

// Ledger is an in-memory ledger.Transfers with recorded moves. Accounts
// spring into existence on Deposit; Transfer enforces funds like the real
// adapter.
type Ledger struct {
	mu       sync.Mutex
	balances map[ledger.Account]uint64
	Moves    []Move

	// TransferErr short-circuits Transfer when set.
	TransferErr error
}

var _ ledger.Transfers = (*Ledger)(nil)

func New() *Ledger {
	return &Ledger{balances: make(map[ledger.Account]uint64)}
}

func (l *Ledger) Transfer(ctx context.Context, from, to ledger.Account, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.TransferErr != nil {
		return l.TransferErr
	}
	if l.balances[from] < amount {
		return ledger.ErrInsufficientFunds
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	l.Moves = append(l.Moves, Move{From: from, To: to, Amount: amount})
	return nil
}

func (l *Ledger) Deposit(ctx context.Context, to ledger.Account, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[to] += amount
	return nil
}

func (l *Ledger) Balance(ctx context.Context, a ledger.Account) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.balances[a]
	if !ok {
		return 0, ledger.ErrAccountNotFound
	}
	return b, nil
}
