package filestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/retail-bank-cli/internal/domain"
)

func newTestAccountRepository(t *testing.T) (*AccountRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.json")
	repo, err := NewAccountRepository(path)
	require.NoError(t, err)
	return repo, path
}

func makeAccount(t *testing.T, accountNumber string, balance int64) *domain.Account {
	t.Helper()
	account, err := domain.NewAccount("id-"+accountNumber, accountNumber, "Jane Doe", domain.AccountTypeSavings, "1234", decimal.NewFromInt(balance))
	require.NoError(t, err)
	return account
}

func TestAccountRepositoryRoundTrip(t *testing.T) {
	t.Parallel()
	repo, _ := newTestAccountRepository(t)
	ctx := context.Background()

	account := makeAccount(t, "ACC1", 5000)
	account.Mobile = "9876543210"
	account.Email = "jane@example.com"
	account.KYC = true
	require.NoError(t, account.Deposit(decimal.NewFromInt(123)))
	require.NoError(t, repo.Save(ctx, account, false))

	loaded, err := repo.Get(ctx, "ACC1")
	require.NoError(t, err)
	assert.Equal(t, account.Holder, loaded.Holder)
	assert.Equal(t, account.Mobile, loaded.Mobile)
	assert.Equal(t, account.KYC, loaded.KYC)
	assert.Equal(t, account.Type, loaded.Type)
	assert.Equal(t, account.Status, loaded.Status)
	assert.True(t, loaded.Balance().Equal(account.Balance()))
	assert.Equal(t, account.History(), loaded.History())
	assert.True(t, loaded.VerifyPIN("1234"))
}

func TestAccountRepositoryLoadAll(t *testing.T) {
	t.Parallel()
	repo, _ := newTestAccountRepository(t)
	ctx := context.Background()

	t.Run("missing file yields empty map", func(t *testing.T) {
		accounts, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, accounts)
	})

	t.Run("returns every saved account", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, makeAccount(t, "ACC1", 5000), false))
		require.NoError(t, repo.Save(ctx, makeAccount(t, "ACC2", 3000), false))

		accounts, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		assert.Len(t, accounts, 2)
		assert.Contains(t, accounts, "ACC1")
		assert.Contains(t, accounts, "ACC2")
	})
}

func TestAccountRepositorySaveDuplicate(t *testing.T) {
	t.Parallel()
	repo, _ := newTestAccountRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, makeAccount(t, "ACC1", 5000), false))

	err := repo.Save(ctx, makeAccount(t, "ACC1", 9000), false)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	// The first record survives the rejected write.
	loaded, err := repo.Get(ctx, "ACC1")
	require.NoError(t, err)
	assert.True(t, loaded.Balance().Equal(decimal.NewFromInt(5000)))

	require.NoError(t, repo.Save(ctx, makeAccount(t, "ACC1", 9000), true))
	loaded, err = repo.Get(ctx, "ACC1")
	require.NoError(t, err)
	assert.True(t, loaded.Balance().Equal(decimal.NewFromInt(9000)))
}

func TestAccountRepositoryCorruptFile(t *testing.T) {
	t.Parallel()
	repo, path := newTestAccountRepository(t)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := repo.LoadAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorruptStore)
}

func TestAccountRepositoryLegacyRecordUpgrade(t *testing.T) {
	t.Parallel()
	repo, path := newTestAccountRepository(t)

	legacy := `{
  "123456": {
    "pin": "4321",
    "holder": "Old Holder",
    "balance": 750.5,
    "history": ["[2021-01-01 10:00:00] Deposited: 750.50, Balance: 750.50"]
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	loaded, err := repo.Get(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, "Old Holder", loaded.Holder)
	assert.Equal(t, domain.AccountTypeSavings, loaded.Type)
	assert.Equal(t, domain.AccountStatusActive, loaded.Status)
	assert.True(t, loaded.Balance().Equal(decimal.NewFromFloat(750.5)))
	assert.Len(t, loaded.History(), 1)
	assert.True(t, loaded.VerifyPIN("4321"))
}

func TestAccountRepositoryUpdate(t *testing.T) {
	t.Parallel()
	repo, _ := newTestAccountRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, makeAccount(t, "ACC1", 5000), false))

	t.Run("persists mutations made inside the callback", func(t *testing.T) {
		err := repo.Update(ctx, func(accounts map[string]*domain.Account) error {
			return accounts["ACC1"].Deposit(decimal.NewFromInt(100))
		})
		require.NoError(t, err)

		loaded, err := repo.Get(ctx, "ACC1")
		require.NoError(t, err)
		assert.True(t, loaded.Balance().Equal(decimal.NewFromInt(5100)))
	})

	t.Run("callback error discards the cycle", func(t *testing.T) {
		boom := errors.New("boom")
		err := repo.Update(ctx, func(accounts map[string]*domain.Account) error {
			require.NoError(t, accounts["ACC1"].Deposit(decimal.NewFromInt(999)))
			return boom
		})
		assert.ErrorIs(t, err, boom)

		loaded, err := repo.Get(ctx, "ACC1")
		require.NoError(t, err)
		assert.True(t, loaded.Balance().Equal(decimal.NewFromInt(5100)))
	})
}

func TestAccountRepositoryDelete(t *testing.T) {
	t.Parallel()
	repo, _ := newTestAccountRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, makeAccount(t, "ACC1", 5000), false))
	require.NoError(t, repo.Delete(ctx, "ACC1"))

	_, err := repo.Get(ctx, "ACC1")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "ACC1"), domain.ErrRecordNotFound)
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")

	require.NoError(t, writeFileAtomic(path, []byte("first")))
	require.NoError(t, writeFileAtomic(path, []byte("second")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(raw))

	// No temp files should survive a successful write.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
