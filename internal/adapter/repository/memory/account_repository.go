// Package memory provides in-process repository implementations used by the
// service tests.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/api-sage/retail-bank-cli/internal/domain"
)

type AccountRepository struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: map[string]*domain.Account{}}
}

// clone keeps stored state isolated from caller mutations, matching the
// reload-from-disk behavior of the file store.
func clone(account *domain.Account) *domain.Account {
	return domain.HydrateAccount(account.Snapshot())
}

func (r *AccountRepository) LoadAll(_ context.Context) (map[string]*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]*domain.Account, len(r.accounts))
	for number, account := range r.accounts {
		out[number] = clone(account)
	}
	return out, nil
}

func (r *AccountRepository) Get(_ context.Context, accountNumber string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountNumber]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return clone(account), nil
}

func (r *AccountRepository) Save(_ context.Context, account *domain.Account, allowUpdate bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.AccountNumber]; exists && !allowUpdate {
		return domain.ErrDuplicateKey
	}
	r.accounts[account.AccountNumber] = clone(account)
	return nil
}

func (r *AccountRepository) SaveAll(_ context.Context, accounts map[string]*domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make(map[string]*domain.Account, len(accounts))
	for number, account := range accounts {
		next[number] = clone(account)
	}
	r.accounts = next
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, fn func(accounts map[string]*domain.Account) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	working := make(map[string]*domain.Account, len(r.accounts))
	for number, account := range r.accounts {
		working[number] = clone(account)
	}
	if err := fn(working); err != nil {
		return err
	}
	r.accounts = working
	return nil
}

func (r *AccountRepository) Delete(_ context.Context, accountNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[accountNumber]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(r.accounts, accountNumber)
	return nil
}

type AdminRepository struct {
	mu     sync.Mutex
	admins []domain.Admin
}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{}
}

func (r *AdminRepository) LoadAll(_ context.Context) ([]domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Admin, len(r.admins))
	copy(out, r.admins)
	return out, nil
}

func (r *AdminRepository) Save(_ context.Context, admin domain.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.admins {
		if strings.EqualFold(existing.Username, admin.Username) {
			return domain.ErrDuplicateAdmin
		}
	}
	r.admins = append(r.admins, admin)
	return nil
}

func (r *AdminRepository) HasAny(_ context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.admins) > 0, nil
}
