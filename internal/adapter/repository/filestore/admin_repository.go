package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"

	"github.com/api-sage/retail-bank-cli/internal/domain"
)

type adminRecord struct {
	ID           string `json:"id,omitempty"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Role         string `json:"role"`
}

type AdminRepository struct {
	path string
	mu   sync.Mutex
	lock *flock.Flock
}

func NewAdminRepository(path string) (*AdminRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create admin directory: %w", err)
	}

	return &AdminRepository{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

func (r *AdminRepository) acquire(ctx context.Context) (func(), error) {
	r.mu.Lock()
	if _, err := r.lock.TryLockContext(ctx, lockRetryDelay); err != nil {
		r.mu.Unlock()
		return nil, fmt.Errorf("acquire admin lock: %w", err)
	}
	return func() {
		_ = r.lock.Unlock()
		r.mu.Unlock()
	}, nil
}

func (r *AdminRepository) LoadAll(ctx context.Context) ([]domain.Admin, error) {
	release, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return r.loadLocked()
}

func (r *AdminRepository) Save(ctx context.Context, admin domain.Admin) error {
	release, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	admins, err := r.loadLocked()
	if err != nil {
		return err
	}
	for _, existing := range admins {
		if strings.EqualFold(existing.Username, admin.Username) {
			return domain.ErrDuplicateAdmin
		}
	}
	admins = append(admins, admin)

	records := make([]adminRecord, 0, len(admins))
	for _, a := range admins {
		records = append(records, adminRecord{
			ID:           a.ID,
			Username:     a.Username,
			PasswordHash: a.PasswordHash,
			Role:         string(a.Role),
		})
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode admin list: %w", err)
	}
	return writeFileAtomic(r.path, raw)
}

func (r *AdminRepository) HasAny(ctx context.Context) (bool, error) {
	admins, err := r.LoadAll(ctx)
	if err != nil {
		return false, err
	}
	return len(admins) > 0, nil
}

func (r *AdminRepository) loadLocked() ([]domain.Admin, error) {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []domain.Admin{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read admin list: %w", err)
	}
	if len(raw) == 0 {
		return []domain.Admin{}, nil
	}

	var records []adminRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode admin list %s: %v: %w", r.path, err, domain.ErrCorruptStore)
	}

	admins := make([]domain.Admin, 0, len(records))
	for _, rec := range records {
		admins = append(admins, domain.Admin{
			ID:           rec.ID,
			Username:     rec.Username,
			PasswordHash: rec.PasswordHash,
			Role:         domain.AdminRole(rec.Role),
		})
	}
	return admins, nil
}
