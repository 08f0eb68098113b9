package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/retail-bank-cli/internal/domain"
)

func newTestAdminRepository(t *testing.T) (*AdminRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "admins.json")
	repo, err := NewAdminRepository(path)
	require.NoError(t, err)
	return repo, path
}

func makeAdmin(t *testing.T, username string, role domain.AdminRole) domain.Admin {
	t.Helper()
	admin, err := domain.NewAdmin("id-"+username, username, "s3cret", role)
	require.NoError(t, err)
	return admin
}

func TestAdminRepositorySaveAndLoad(t *testing.T) {
	t.Parallel()
	repo, _ := newTestAdminRepository(t)
	ctx := context.Background()

	hasAny, err := repo.HasAny(ctx)
	require.NoError(t, err)
	assert.False(t, hasAny)

	require.NoError(t, repo.Save(ctx, makeAdmin(t, "root", domain.AdminRoleSupreme)))
	require.NoError(t, repo.Save(ctx, makeAdmin(t, "teller", domain.AdminRoleStandard)))

	admins, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "root", admins[0].Username)
	assert.Equal(t, domain.AdminRoleSupreme, admins[0].Role)
	assert.True(t, admins[0].VerifyPassword("s3cret"))

	hasAny, err = repo.HasAny(ctx)
	require.NoError(t, err)
	assert.True(t, hasAny)
}

func TestAdminRepositoryDuplicateUsername(t *testing.T) {
	t.Parallel()
	repo, _ := newTestAdminRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, makeAdmin(t, "root", domain.AdminRoleSupreme)))

	err := repo.Save(ctx, makeAdmin(t, "ROOT", domain.AdminRoleStandard))
	assert.ErrorIs(t, err, domain.ErrDuplicateAdmin, "usernames compare case-insensitively")

	admins, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}

func TestAdminRepositoryLegacyPlaintextRecords(t *testing.T) {
	t.Parallel()
	repo, path := newTestAdminRepository(t)

	legacy := `[{"username": "root", "password": "plain-pass", "role": "supreme"}]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	admins, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.True(t, admins[0].VerifyPassword("plain-pass"))
	assert.False(t, admins[0].VerifyPassword("wrong"))
}

func TestAdminRepositoryCorruptFile(t *testing.T) {
	t.Parallel()
	repo, path := newTestAdminRepository(t)

	require.NoError(t, os.WriteFile(path, []byte("[broken"), 0o600))

	_, err := repo.LoadAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorruptStore)
}
