package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/retail-bank-cli/internal/adapter/cli/models"
	"github.com/api-sage/retail-bank-cli/internal/adapter/repository/memory"
	"github.com/api-sage/retail-bank-cli/internal/domain"
	"github.com/api-sage/retail-bank-cli/internal/usecase/services"
)

func validOpenRequest() models.OpenAccountRequest {
	return models.OpenAccountRequest{
		Holder:         "Jane Doe",
		Gender:         "Female",
		DOB:            "1990-05-20",
		Address:        "12 Main Street",
		Mobile:         "9876543210",
		Email:          "jane@example.com",
		AccountType:    "Savings",
		KYC:            true,
		PIN:            "1234",
		InitialDeposit: "5000",
	}
}

func seedAccount(t *testing.T, repo *memory.AccountRepository, accountNumber string, accountType domain.AccountType, balance int64) {
	t.Helper()
	account, err := domain.NewAccount("id-"+accountNumber, accountNumber, "Jane Doe", accountType, "1234", decimal.NewFromInt(balance))
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), account, false))
}

func TestAccountServiceOpenAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("opens with defaulted branch code", func(t *testing.T) {
		repo := memory.NewAccountRepository()
		svc := services.NewAccountService(repo, "0001")

		resp, err := svc.OpenAccount(ctx, validOpenRequest())
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Regexp(t, `^ACC\d+$`, resp.Data.AccountNumber)
		assert.Equal(t, "Jane Doe", resp.Data.Holder)
		assert.Equal(t, "Savings", resp.Data.AccountType)
		assert.Equal(t, "Active", resp.Data.Status)
		assert.Equal(t, "5000.00", resp.Data.Balance)

		stored, err := repo.Get(ctx, resp.Data.AccountNumber)
		require.NoError(t, err)
		assert.Equal(t, "0001", stored.BranchCode)
		assert.True(t, stored.VerifyPIN("1234"))
		assert.Empty(t, stored.History())
	})

	t.Run("rejects malformed pin without persisting", func(t *testing.T) {
		repo := memory.NewAccountRepository()
		svc := services.NewAccountService(repo, "0001")

		req := validOpenRequest()
		req.PIN = "12"
		resp, err := svc.OpenAccount(ctx, req)
		require.Error(t, err)
		assert.False(t, resp.Success)

		accounts, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, accounts)
	})

	t.Run("accepts an explicit zero initial deposit", func(t *testing.T) {
		repo := memory.NewAccountRepository()
		svc := services.NewAccountService(repo, "0001")

		req := validOpenRequest()
		req.InitialDeposit = "0"
		resp, err := svc.OpenAccount(ctx, req)
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "0.00", resp.Data.Balance)
	})

	t.Run("rejects negative initial deposit", func(t *testing.T) {
		repo := memory.NewAccountRepository()
		svc := services.NewAccountService(repo, "0001")

		req := validOpenRequest()
		req.InitialDeposit = "-10"
		resp, err := svc.OpenAccount(ctx, req)
		require.Error(t, err)
		assert.False(t, resp.Success)
	})
}

func TestAccountServiceAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	svc := services.NewAccountService(repo, "0001")
	seedAccount(t, repo, "ACC1000", domain.AccountTypeSavings, 5000)

	t.Run("accepts correct pin", func(t *testing.T) {
		resp, err := svc.Authenticate(ctx, models.LoginRequest{AccountNumber: "ACC1000", PIN: "1234"})
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "ACC1000", resp.Data.AccountNumber)
		assert.Equal(t, "5000.00", resp.Data.Balance)
	})

	t.Run("rejects wrong pin", func(t *testing.T) {
		resp, err := svc.Authenticate(ctx, models.LoginRequest{AccountNumber: "ACC1000", PIN: "9999"})
		require.Error(t, err)
		assert.False(t, resp.Success)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, models.LoginRequest{AccountNumber: "ACC9999", PIN: "1234"})
		assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	})
}

func TestAccountServiceDeposit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("credits and persists", func(t *testing.T) {
		repo := memory.NewAccountRepository()
		svc := services.NewAccountService(repo, "0001")
		seedAccount(t, repo, "ACC1000", domain.AccountTypeSavings, 5000)

		resp, err := svc.Deposit(ctx, models.DepositRequest{AccountNumber: "ACC1000", Amount: "750"})
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "5750.00", resp.Data.Balance)

		stored, err := repo.Get(ctx, "ACC1000")
		require.NoError(t, err)
		assert.True(t, stored.Balance().Equal(decimal.NewFromInt(5750)))
		assert.Len(t, stored.History(), 1)
	})

	t.Run("fixed deposit refusal leaves store untouched", func(t *testing.T) {
		repo := memory.NewAccountRepository()
		svc := services.NewAccountService(repo, "0001")
		seedAccount(t, repo, "ACC2000", domain.AccountTypeFixedDeposit, 10000)

		resp, err := svc.Deposit(ctx, models.DepositRequest{AccountNumber: "ACC2000", Amount: "100"})
		assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)
		assert.False(t, resp.Success)

		stored, err := repo.Get(ctx, "ACC2000")
		require.NoError(t, err)
		assert.True(t, stored.Balance().Equal(decimal.NewFromInt(10000)))
		assert.Empty(t, stored.History())
	})

	t.Run("non-numeric amount", func(t *testing.T) {
		repo := memory.NewAccountRepository()
		svc := services.NewAccountService(repo, "0001")

		resp, err := svc.Deposit(ctx, models.DepositRequest{AccountNumber: "ACC1000", Amount: "abc"})
		require.Error(t, err)
		assert.False(t, resp.Success)
	})
}

func TestAccountServiceWithdraw(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("debits and persists", func(t *testing.T) {
		repo := memory.NewAccountRepository()
		svc := services.NewAccountService(repo, "0001")
		seedAccount(t, repo, "ACC1000", domain.AccountTypeSavings, 5000)

		resp, err := svc.Withdraw(ctx, models.WithdrawRequest{AccountNumber: "ACC1000", Amount: "900"})
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "4100.00", resp.Data.Balance)
	})

	t.Run("minimum balance violation leaves store untouched", func(t *testing.T) {
		repo := memory.NewAccountRepository()
		svc := services.NewAccountService(repo, "0001")
		seedAccount(t, repo, "ACC1000", domain.AccountTypeSavings, 2000)

		resp, err := svc.Withdraw(ctx, models.WithdrawRequest{AccountNumber: "ACC1000", Amount: "1500"})
		assert.ErrorIs(t, err, domain.ErrMinimumBalance)
		assert.False(t, resp.Success)

		stored, err := repo.Get(ctx, "ACC1000")
		require.NoError(t, err)
		assert.True(t, stored.Balance().Equal(decimal.NewFromInt(2000)))
		assert.Empty(t, stored.History())
	})
}

func TestAccountServiceGetBalanceAndHistory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	svc := services.NewAccountService(repo, "0001")
	seedAccount(t, repo, "ACC1000", domain.AccountTypeCurrent, 5000)

	_, err := svc.Deposit(ctx, models.DepositRequest{AccountNumber: "ACC1000", Amount: "750"})
	require.NoError(t, err)
	_, err = svc.Withdraw(ctx, models.WithdrawRequest{AccountNumber: "ACC1000", Amount: "750"})
	require.NoError(t, err)

	balance, err := svc.GetBalance(ctx, "ACC1000")
	require.NoError(t, err)
	assert.Equal(t, "5000.00", balance.Data.Balance)

	history, err := svc.GetHistory(ctx, "ACC1000")
	require.NoError(t, err)
	require.Len(t, history.Data.Entries, 2)
	assert.Contains(t, history.Data.Entries[0], "Deposited: 750.00")
	assert.Contains(t, history.Data.Entries[1], "Withdrew: 750.00")

	_, err = svc.GetBalance(ctx, "ACC9999")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestAccountServiceGetRestrictions(t *testing.T) {
	t.Parallel()
	svc := services.NewAccountService(memory.NewAccountRepository(), "0001")

	resp, err := svc.GetRestrictions("Fixed Deposit")
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.Restrictions)

	resp, err = svc.GetRestrictions("Premium")
	require.Error(t, err)
	assert.False(t, resp.Success)
}
