package domain

import "context"

// AccountRepository is the persistence contract for the account snapshot.
// The whole collection is rewritten as a unit on every change; the store owns
// no business rules beyond the uniqueness check on insert.
type AccountRepository interface {
	// LoadAll returns the full mapping keyed by account number. A missing
	// snapshot yields an empty mapping; an unparseable one yields
	// ErrCorruptStore.
	LoadAll(ctx context.Context) (map[string]*Account, error)

	// Get returns a single account or ErrRecordNotFound.
	Get(ctx context.Context, accountNumber string) (*Account, error)

	// Save inserts or replaces one account. With allowUpdate false an
	// existing account number yields ErrDuplicateKey and nothing is written.
	Save(ctx context.Context, account *Account, allowUpdate bool) error

	// SaveAll replaces the entire snapshot with the given mapping.
	SaveAll(ctx context.Context, accounts map[string]*Account) error

	// Update runs fn over the loaded mapping and persists the result, all
	// under one exclusive lock so the load-mutate-save cycle cannot
	// interleave with another writer. If fn returns an error nothing is
	// written.
	Update(ctx context.Context, fn func(accounts map[string]*Account) error) error

	// Delete removes an account entirely. Missing accounts yield
	// ErrRecordNotFound.
	Delete(ctx context.Context, accountNumber string) error
}
