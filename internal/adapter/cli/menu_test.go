package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/retail-bank-cli/internal/adapter/repository/memory"
	"github.com/api-sage/retail-bank-cli/internal/domain"
	"github.com/api-sage/retail-bank-cli/internal/usecase/services"
)

func newTestMenu(t *testing.T, input string, withAdmin bool) (*Menu, *bytes.Buffer) {
	t.Helper()

	accountRepo := memory.NewAccountRepository()
	adminRepo := memory.NewAdminRepository()
	if withAdmin {
		admin, err := domain.NewAdmin("id-root", "root", "s3cret", domain.AdminRoleSupreme)
		require.NoError(t, err)
		require.NoError(t, adminRepo.Save(context.Background(), admin))
	}

	out := &bytes.Buffer{}
	menu := NewMenu(
		services.NewAccountService(accountRepo, "0001"),
		services.NewTransferService(accountRepo),
		services.NewAdminService(adminRepo, accountRepo),
		strings.NewReader(input),
		out,
	)
	return menu, out
}

func TestMenuRun(t *testing.T) {
	t.Parallel()

	t.Run("exit choice ends the session", func(t *testing.T) {
		menu, out := newTestMenu(t, "4\n", true)
		require.NoError(t, menu.Run(context.Background()))
		assert.Contains(t, out.String(), "Session end")
	})

	t.Run("closed input ends the session", func(t *testing.T) {
		menu, out := newTestMenu(t, "", true)
		require.NoError(t, menu.Run(context.Background()))
		assert.Contains(t, out.String(), "Session end")
	})

	t.Run("invalid choice then closed input still terminates", func(t *testing.T) {
		menu, out := newTestMenu(t, "9\n", true)
		require.NoError(t, menu.Run(context.Background()))
		assert.Contains(t, out.String(), "Session end")
	})

	t.Run("bootstrap fails cleanly when input ends before an admin exists", func(t *testing.T) {
		menu, _ := newTestMenu(t, "", false)
		err := menu.Run(context.Background())
		require.Error(t, err)
	})
}
