package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/api-sage/retail-bank-cli/internal/adapter/cli/models"
	"github.com/api-sage/retail-bank-cli/internal/commons"
	"github.com/api-sage/retail-bank-cli/internal/domain"
	"github.com/api-sage/retail-bank-cli/internal/logger"
)

type AdminService struct {
	adminRepo   domain.AdminRepository
	accountRepo domain.AccountRepository
}

func NewAdminService(adminRepo domain.AdminRepository, accountRepo domain.AccountRepository) *AdminService {
	return &AdminService{
		adminRepo:   adminRepo,
		accountRepo: accountRepo,
	}
}

func (s *AdminService) HasAnyAdmin(ctx context.Context) (bool, error) {
	return s.adminRepo.HasAny(ctx)
}

func (s *AdminService) CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (commons.Response[models.AdminResponse], error) {
	logger.Info("admin service create admin request", logger.Fields{
		"username": req.Username,
	})

	if err := req.Validate(); err != nil {
		logger.Error("admin service create admin validation failed", err, nil)
		return commons.ErrorResponse[models.AdminResponse]("validation failed", err.Error()), err
	}

	role := domain.AdminRole(strings.TrimSpace(req.Role))
	if role == "" {
		role = domain.AdminRoleStandard
	}

	admin, err := domain.NewAdmin(uuid.NewString(), strings.TrimSpace(req.Username), req.Password, role)
	if err != nil {
		logger.Error("admin service create admin rejected", err, nil)
		return commons.ErrorResponse[models.AdminResponse]("validation failed", err.Error()), err
	}

	if err := s.adminRepo.Save(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrDuplicateAdmin) {
			return commons.ErrorResponse[models.AdminResponse]("validation failed", "Admin already exists"), err
		}
		logger.Error("admin service create admin save failed", err, logger.Fields{
			"username": admin.Username,
		})
		return commons.ErrorResponse[models.AdminResponse]("failed to create admin", "Unable to create admin right now"), err
	}

	logger.Info("admin service create admin success", logger.Fields{
		"username": admin.Username,
		"role":     string(admin.Role),
	})

	return commons.SuccessResponse("admin created successfully", models.AdminResponse{
		Username: admin.Username,
		Role:     string(admin.Role),
	}), nil
}

func (s *AdminService) Authenticate(ctx context.Context, req models.AdminLoginRequest) (commons.Response[models.AdminResponse], error) {
	logger.Info("admin service login request", logger.Fields{
		"username": req.Username,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AdminResponse]("validation failed", err.Error()), err
	}

	admins, err := s.adminRepo.LoadAll(ctx)
	if err != nil {
		logger.Error("admin service login load failed", err, nil)
		return commons.ErrorResponse[models.AdminResponse]("failed to log in", "Unable to log in right now"), err
	}

	username := strings.TrimSpace(req.Username)
	for _, admin := range admins {
		if strings.EqualFold(admin.Username, username) && admin.VerifyPassword(req.Password) {
			logger.Info("admin service login success", logger.Fields{
				"username": admin.Username,
			})
			return commons.SuccessResponse("logged in successfully", models.AdminResponse{
				Username: admin.Username,
				Role:     string(admin.Role),
			}), nil
		}
	}

	err = fmt.Errorf("invalid admin credentials")
	logger.Warn("admin service login rejected", logger.Fields{
		"username": username,
	})
	return commons.ErrorResponse[models.AdminResponse]("login failed", err.Error()), err
}

func (s *AdminService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountSummary], error) {
	accounts, err := s.accountRepo.LoadAll(ctx)
	if err != nil {
		logger.Error("admin service list accounts failed", err, nil)
		return commons.ErrorResponse[[]models.AccountSummary]("failed to list accounts", "Unable to list accounts right now"), err
	}

	summaries := make([]models.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, toSummary(account))
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].AccountNumber < summaries[j].AccountNumber
	})

	return commons.SuccessResponse("accounts fetched successfully", summaries), nil
}

func (s *AdminService) DeleteAccount(ctx context.Context, req models.DeleteAccountRequest) (commons.Response[models.AccountSummary], error) {
	logger.Info("admin service delete account request", logger.Fields{
		"accountNumber": req.AccountNumber,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AccountSummary]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	account, err := s.accountRepo.Get(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountSummary]("Account not found"), err
		}
		return commons.ErrorResponse[models.AccountSummary]("failed to delete account", "Unable to delete account right now"), err
	}

	// Hard delete, no tombstone. Deleted accounts leave no audit trail.
	if err := s.accountRepo.Delete(ctx, accountNumber); err != nil {
		logger.Error("admin service delete account failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.AccountSummary]("failed to delete account", "Unable to delete account right now"), err
	}

	logger.Info("admin service delete account success", logger.Fields{
		"accountNumber": accountNumber,
	})

	return commons.SuccessResponse("account deleted successfully", toSummary(account)), nil
}

func (s *AdminService) RenameHolder(ctx context.Context, req models.RenameHolderRequest) (commons.Response[models.AccountSummary], error) {
	logger.Info("admin service rename holder request", logger.Fields{
		"accountNumber": req.AccountNumber,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AccountSummary]("validation failed", err.Error()), err
	}

	return s.mutateAccount(ctx, req.AccountNumber, "rename holder", func(account *domain.Account) error {
		account.Holder = strings.TrimSpace(req.NewHolder)
		return nil
	})
}

func (s *AdminService) ResetPIN(ctx context.Context, req models.ResetPINRequest) (commons.Response[models.AccountSummary], error) {
	logger.Info("admin service reset pin request", logger.Fields{
		"accountNumber": req.AccountNumber,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AccountSummary]("validation failed", err.Error()), err
	}

	return s.mutateAccount(ctx, req.AccountNumber, "reset PIN", func(account *domain.Account) error {
		return account.SetPIN(req.NewPIN)
	})
}

// SetStatus is unconditional: any status is reachable from any other, and the
// change takes effect on the next transaction attempt.
func (s *AdminService) SetStatus(ctx context.Context, req models.SetStatusRequest) (commons.Response[models.AccountSummary], error) {
	logger.Info("admin service set status request", logger.Fields{
		"accountNumber": req.AccountNumber,
		"status":        req.Status,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AccountSummary]("validation failed", err.Error()), err
	}

	return s.mutateAccount(ctx, req.AccountNumber, "set status", func(account *domain.Account) error {
		account.Status = domain.AccountStatus(strings.TrimSpace(req.Status))
		return nil
	})
}

func (s *AdminService) mutateAccount(ctx context.Context, accountNumber, operation string, fn func(*domain.Account) error) (commons.Response[models.AccountSummary], error) {
	accountNumber = strings.TrimSpace(accountNumber)

	var summary models.AccountSummary
	err := s.accountRepo.Update(ctx, func(accounts map[string]*domain.Account) error {
		account, ok := accounts[accountNumber]
		if !ok {
			return domain.ErrRecordNotFound
		}
		if err := fn(account); err != nil {
			return err
		}
		summary = toSummary(account)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountSummary]("Account not found"), err
		}
		if errors.Is(err, domain.ErrInvalidArgument) {
			return commons.ErrorResponse[models.AccountSummary]("validation failed", err.Error()), err
		}
		logger.Error("admin service "+operation+" failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.AccountSummary]("failed to "+operation, "Unable to "+operation+" right now"), err
	}

	logger.Info("admin service "+operation+" success", logger.Fields{
		"accountNumber": accountNumber,
	})

	return commons.SuccessResponse(operation+" successful", summary), nil
}
