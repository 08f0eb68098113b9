// Package filestore persists the bank state as single-file JSON snapshots,
// rewritten as a unit on every change. Writes go to a temp file in the same
// directory followed by a rename, so a crash mid-write never corrupts the
// previously committed snapshot. An exclusive flock spans every
// load-mutate-save cycle; concurrent processes that bypass the lock still
// race last-writer-wins, which is an accepted limitation of the single-writer
// design.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/shopspring/decimal"

	"github.com/api-sage/retail-bank-cli/internal/domain"
)

// accountRecord mirrors the on-disk schema. Field names match the original
// data files so existing snapshots keep loading.
type accountRecord struct {
	ID          string          `json:"id,omitempty"`
	Holder      string          `json:"holder"`
	Gender      string          `json:"gender,omitempty"`
	DOB         string          `json:"DOB,omitempty"`
	Address     string          `json:"address,omitempty"`
	Mobile      string          `json:"mobile,omitempty"`
	Email       string          `json:"email,omitempty"`
	AccountType string          `json:"account_type,omitempty"`
	Status      string          `json:"status,omitempty"`
	KYC         bool            `json:"KYC,omitempty"`
	BranchCode  string          `json:"branch_code,omitempty"`
	OpeningDate string          `json:"opening_date,omitempty"`
	PIN         string          `json:"pin"`
	Balance     decimal.Decimal `json:"balance"`
	History     []string        `json:"history"`
}

type AccountRepository struct {
	path string
	mu   sync.Mutex
	lock *flock.Flock
}

func NewAccountRepository(path string) (*AccountRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}

	return &AccountRepository{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

func (r *AccountRepository) acquire(ctx context.Context) (func(), error) {
	r.mu.Lock()
	if _, err := r.lock.TryLockContext(ctx, lockRetryDelay); err != nil {
		r.mu.Unlock()
		return nil, fmt.Errorf("acquire snapshot lock: %w", err)
	}
	return func() {
		_ = r.lock.Unlock()
		r.mu.Unlock()
	}, nil
}

func (r *AccountRepository) LoadAll(ctx context.Context) (map[string]*domain.Account, error) {
	release, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return r.loadLocked()
}

func (r *AccountRepository) Get(ctx context.Context, accountNumber string) (*domain.Account, error) {
	accounts, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	account, ok := accounts[accountNumber]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return account, nil
}

func (r *AccountRepository) Save(ctx context.Context, account *domain.Account, allowUpdate bool) error {
	return r.Update(ctx, func(accounts map[string]*domain.Account) error {
		if _, exists := accounts[account.AccountNumber]; exists && !allowUpdate {
			return domain.ErrDuplicateKey
		}
		accounts[account.AccountNumber] = account
		return nil
	})
}

func (r *AccountRepository) SaveAll(ctx context.Context, accounts map[string]*domain.Account) error {
	release, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return r.saveLocked(accounts)
}

func (r *AccountRepository) Update(ctx context.Context, fn func(accounts map[string]*domain.Account) error) error {
	release, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	accounts, err := r.loadLocked()
	if err != nil {
		return err
	}
	if err := fn(accounts); err != nil {
		return err
	}
	return r.saveLocked(accounts)
}

func (r *AccountRepository) Delete(ctx context.Context, accountNumber string) error {
	return r.Update(ctx, func(accounts map[string]*domain.Account) error {
		if _, ok := accounts[accountNumber]; !ok {
			return domain.ErrRecordNotFound
		}
		delete(accounts, accountNumber)
		return nil
	})
}

func (r *AccountRepository) loadLocked() (map[string]*domain.Account, error) {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return map[string]*domain.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read account snapshot: %w", err)
	}
	if len(raw) == 0 {
		return map[string]*domain.Account{}, nil
	}

	var records map[string]accountRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode account snapshot %s: %v: %w", r.path, err, domain.ErrCorruptStore)
	}

	accounts := make(map[string]*domain.Account, len(records))
	for accountNumber, rec := range records {
		accounts[accountNumber] = domain.HydrateAccount(recordToSnapshot(accountNumber, rec))
	}
	return accounts, nil
}

func (r *AccountRepository) saveLocked(accounts map[string]*domain.Account) error {
	records := make(map[string]accountRecord, len(accounts))
	for accountNumber, account := range accounts {
		records[accountNumber] = snapshotToRecord(account.Snapshot())
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode account snapshot: %w", err)
	}
	return writeFileAtomic(r.path, raw)
}

// recordToSnapshot upgrades legacy reduced records (pin, holder, balance,
// history only) to the canonical schema on the way in.
func recordToSnapshot(accountNumber string, rec accountRecord) domain.AccountSnapshot {
	accountType := rec.AccountType
	if accountType == "" {
		accountType = string(domain.AccountTypeSavings)
	}
	status := rec.Status
	if status == "" {
		status = string(domain.AccountStatusActive)
	}
	history := rec.History
	if history == nil {
		history = []string{}
	}

	return domain.AccountSnapshot{
		ID:            rec.ID,
		AccountNumber: accountNumber,
		Holder:        rec.Holder,
		Gender:        rec.Gender,
		DOB:           rec.DOB,
		Address:       rec.Address,
		Mobile:        rec.Mobile,
		Email:         rec.Email,
		Type:          domain.AccountType(accountType),
		Status:        domain.AccountStatus(status),
		KYC:           rec.KYC,
		BranchCode:    rec.BranchCode,
		OpeningDate:   rec.OpeningDate,
		PIN:           rec.PIN,
		Balance:       rec.Balance,
		History:       history,
	}
}

func snapshotToRecord(snap domain.AccountSnapshot) accountRecord {
	return accountRecord{
		ID:          snap.ID,
		Holder:      snap.Holder,
		Gender:      snap.Gender,
		DOB:         snap.DOB,
		Address:     snap.Address,
		Mobile:      snap.Mobile,
		Email:       snap.Email,
		AccountType: string(snap.Type),
		Status:      string(snap.Status),
		KYC:         snap.KYC,
		BranchCode:  snap.BranchCode,
		OpeningDate: snap.OpeningDate,
		PIN:         snap.PIN,
		Balance:     snap.Balance,
		History:     snap.History,
	}
}
