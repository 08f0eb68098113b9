package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-bank-cli/internal/adapter/cli/models"
	"github.com/api-sage/retail-bank-cli/internal/commons"
)

type AdminService interface {
	HasAnyAdmin(ctx context.Context) (bool, error)
	CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (commons.Response[models.AdminResponse], error)
	Authenticate(ctx context.Context, req models.AdminLoginRequest) (commons.Response[models.AdminResponse], error)
	ListAccounts(ctx context.Context) (commons.Response[[]models.AccountSummary], error)
	DeleteAccount(ctx context.Context, req models.DeleteAccountRequest) (commons.Response[models.AccountSummary], error)
	RenameHolder(ctx context.Context, req models.RenameHolderRequest) (commons.Response[models.AccountSummary], error)
	ResetPIN(ctx context.Context, req models.ResetPINRequest) (commons.Response[models.AccountSummary], error)
	SetStatus(ctx context.Context, req models.SetStatusRequest) (commons.Response[models.AccountSummary], error)
}
