package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-bank-cli/internal/adapter/cli/models"
	"github.com/api-sage/retail-bank-cli/internal/commons"
)

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error)
	Authenticate(ctx context.Context, req models.LoginRequest) (commons.Response[models.AccountSummary], error)
	Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.DepositResponse], error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.WithdrawResponse], error)
	GetBalance(ctx context.Context, accountNumber string) (commons.Response[models.BalanceResponse], error)
	GetHistory(ctx context.Context, accountNumber string) (commons.Response[models.HistoryResponse], error)
	GetRestrictions(accountType string) (commons.Response[models.RestrictionsResponse], error)
}
