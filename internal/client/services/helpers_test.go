package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/loankeeper/internal/client/models"
	"github.com/dmitrijs2005/loankeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/loankeeper/internal/logging"
)

var fixedNow = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestAuth(store kv.Store, codec SecretCodec) *authService {
	a := NewAuthService(store, codec, logging.Discard()).(*authService)
	a.now = fixedClock
	return a
}

func newTestLedger(store kv.Store) *ledgerService {
	s := NewLedgerService(store, logging.Discard()).(*ledgerService)
	s.now = fixedClock
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return s
}

func sampleLoan() models.LoanInput {
	return models.LoanInput{
		Name:            "A",
		OriginalBalance: "1000",
		CurrentBalance:  "1000",
		InterestRate:    "5",
		MinPayment:      "50",
	}
}

// failingStore wraps a store and fails selected operations.
type failingStore struct {
	kv.Store
	getErr error
	setErr error
}

var errBoom = errors.New("storage unavailable")

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Store.Get(ctx, key)
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.Set(ctx, key, value)
}

func (f *failingStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.SetMany(ctx, entries)
}
