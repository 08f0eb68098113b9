package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/retail-bank-cli/internal/domain"
)

func TestNewAdmin(t *testing.T) {
	t.Parallel()

	t.Run("hashes password", func(t *testing.T) {
		admin, err := domain.NewAdmin("id-1", "root", "s3cret", domain.AdminRoleSupreme)
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret", admin.PasswordHash)
		assert.True(t, admin.VerifyPassword("s3cret"))
		assert.False(t, admin.VerifyPassword("wrong"))
	})

	t.Run("legacy plaintext records still log in", func(t *testing.T) {
		admin := domain.Admin{ID: "id-1", Username: "root", PasswordHash: "plain-pass", Role: domain.AdminRoleSupreme}
		assert.True(t, admin.VerifyPassword("plain-pass"))
		assert.False(t, admin.VerifyPassword("wrong"))
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := domain.NewAdmin("id-1", "", "s3cret", domain.AdminRoleStandard)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		_, err := domain.NewAdmin("id-1", "root", "", domain.AdminRoleStandard)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := domain.NewAdmin("id-1", "root", "s3cret", domain.AdminRole("owner"))
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}
