package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/api-sage/retail-bank-cli/internal/adapter/cli/models"
	"github.com/api-sage/retail-bank-cli/internal/commons"
	"github.com/api-sage/retail-bank-cli/internal/domain"
	"github.com/api-sage/retail-bank-cli/internal/logger"
	"github.com/api-sage/retail-bank-cli/internal/validation"
)

const openAccountAttempts = 3

type AccountService struct {
	accountRepo domain.AccountRepository
	branchCode  string
}

func NewAccountService(accountRepo domain.AccountRepository, branchCode string) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		branchCode:  strings.TrimSpace(branchCode),
	}
}

func (s *AccountService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error) {
	logger.Info("account service open account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service open account validation failed", err, nil)
		return commons.ErrorResponse[models.OpenAccountResponse]("validation failed", err.Error()), err
	}

	initialDeposit := decimal.Zero
	if strings.TrimSpace(req.InitialDeposit) != "" {
		parsed, err := validation.OpeningDeposit(req.InitialDeposit)
		if err != nil {
			return commons.ErrorResponse[models.OpenAccountResponse]("validation failed", err.Error()), err
		}
		initialDeposit = parsed
	}

	branchCode := strings.TrimSpace(req.BranchCode)
	if branchCode == "" {
		branchCode = s.branchCode
	}

	var account *domain.Account
	var saveErr error
	for attempt := 0; attempt < openAccountAttempts; attempt++ {
		account, saveErr = domain.NewAccount(
			uuid.NewString(),
			generateAccountNumber(),
			strings.TrimSpace(req.Holder),
			domain.AccountType(strings.TrimSpace(req.AccountType)),
			req.PIN,
			initialDeposit,
		)
		if saveErr != nil {
			logger.Error("account service open account rejected", saveErr, nil)
			return commons.ErrorResponse[models.OpenAccountResponse]("validation failed", saveErr.Error()), saveErr
		}

		account.Gender = strings.TrimSpace(req.Gender)
		account.DOB = strings.TrimSpace(req.DOB)
		account.Address = strings.TrimSpace(req.Address)
		account.Mobile = strings.TrimSpace(req.Mobile)
		account.Email = strings.TrimSpace(req.Email)
		account.KYC = req.KYC
		account.BranchCode = branchCode

		saveErr = s.accountRepo.Save(ctx, account, false)
		if !errors.Is(saveErr, domain.ErrDuplicateKey) {
			break
		}
	}
	if saveErr != nil {
		logger.Error("account service open account save failed", saveErr, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return commons.ErrorResponse[models.OpenAccountResponse]("failed to open account", "Unable to open account right now"), saveErr
	}

	response := models.OpenAccountResponse{
		AccountNumber: account.AccountNumber,
		Holder:        account.Holder,
		AccountType:   string(account.Type),
		Status:        string(account.Status),
		Balance:       account.Balance().StringFixed(2),
		OpeningDate:   account.OpeningDate,
	}

	logger.Info("account service open account success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"accountType":   response.AccountType,
	})

	return commons.SuccessResponse("account opened successfully", response), nil
}

func (s *AccountService) Authenticate(ctx context.Context, req models.LoginRequest) (commons.Response[models.AccountSummary], error) {
	logger.Info("account service login request", logger.Fields{
		"accountNumber": req.AccountNumber,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AccountSummary]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.Get(ctx, strings.TrimSpace(req.AccountNumber))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountSummary]("Account not found"), err
		}
		logger.Error("account service login load failed", err, nil)
		return commons.ErrorResponse[models.AccountSummary]("failed to log in", "Unable to log in right now"), err
	}

	if !account.VerifyPIN(req.PIN) {
		err := fmt.Errorf("incorrect PIN")
		logger.Warn("account service login incorrect pin", logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return commons.ErrorResponse[models.AccountSummary]("login failed", err.Error()), err
	}

	return commons.SuccessResponse("logged in successfully", toSummary(account)), nil
}

func (s *AccountService) Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.DepositResponse], error) {
	logger.Info("account service deposit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.DepositResponse]("validation failed", err.Error()), err
	}

	amount, err := validation.Amount(req.Amount)
	if err != nil {
		return commons.ErrorResponse[models.DepositResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	var balance decimal.Decimal
	err = s.accountRepo.Update(ctx, func(accounts map[string]*domain.Account) error {
		account, ok := accounts[accountNumber]
		if !ok {
			return domain.ErrRecordNotFound
		}
		if err := account.Deposit(amount); err != nil {
			return err
		}
		balance = account.Balance()
		return nil
	})
	if err != nil {
		return transactionError[models.DepositResponse](err, "deposit"), err
	}

	logger.Info("account service deposit success", logger.Fields{
		"accountNumber": accountNumber,
		"amount":        amount.StringFixed(2),
	})

	return commons.SuccessResponse("deposit successful", models.DepositResponse{
		AccountNumber: accountNumber,
		Amount:        amount.StringFixed(2),
		Balance:       balance.StringFixed(2),
	}), nil
}

func (s *AccountService) Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.WithdrawResponse], error) {
	logger.Info("account service withdraw request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.WithdrawResponse]("validation failed", err.Error()), err
	}

	amount, err := validation.Amount(req.Amount)
	if err != nil {
		return commons.ErrorResponse[models.WithdrawResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	var balance decimal.Decimal
	err = s.accountRepo.Update(ctx, func(accounts map[string]*domain.Account) error {
		account, ok := accounts[accountNumber]
		if !ok {
			return domain.ErrRecordNotFound
		}
		if err := account.Withdraw(amount); err != nil {
			return err
		}
		balance = account.Balance()
		return nil
	})
	if err != nil {
		return transactionError[models.WithdrawResponse](err, "withdrawal"), err
	}

	logger.Info("account service withdraw success", logger.Fields{
		"accountNumber": accountNumber,
		"amount":        amount.StringFixed(2),
	})

	return commons.SuccessResponse("withdrawal successful", models.WithdrawResponse{
		AccountNumber: accountNumber,
		Amount:        amount.StringFixed(2),
		Balance:       balance.StringFixed(2),
	}), nil
}

func (s *AccountService) GetBalance(ctx context.Context, accountNumber string) (commons.Response[models.BalanceResponse], error) {
	if err := validation.AccountNumber(accountNumber); err != nil {
		return commons.ErrorResponse[models.BalanceResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.Get(ctx, strings.TrimSpace(accountNumber))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.BalanceResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.BalanceResponse]("failed to get balance", "Unable to get balance right now"), err
	}

	return commons.SuccessResponse("balance fetched successfully", models.BalanceResponse{
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance().StringFixed(2),
	}), nil
}

func (s *AccountService) GetHistory(ctx context.Context, accountNumber string) (commons.Response[models.HistoryResponse], error) {
	if err := validation.AccountNumber(accountNumber); err != nil {
		return commons.ErrorResponse[models.HistoryResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.Get(ctx, strings.TrimSpace(accountNumber))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.HistoryResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.HistoryResponse]("failed to get history", "Unable to get history right now"), err
	}

	return commons.SuccessResponse("history fetched successfully", models.HistoryResponse{
		AccountNumber: account.AccountNumber,
		Entries:       account.History(),
	}), nil
}

func (s *AccountService) GetRestrictions(accountType string) (commons.Response[models.RestrictionsResponse], error) {
	if err := validation.AccountType(accountType); err != nil {
		return commons.ErrorResponse[models.RestrictionsResponse]("validation failed", err.Error()), err
	}

	trimmed := strings.TrimSpace(accountType)
	return commons.SuccessResponse("restrictions fetched successfully", models.RestrictionsResponse{
		AccountType:  trimmed,
		Restrictions: domain.RestrictionsFor(domain.AccountType(trimmed)),
	}), nil
}

// transactionError maps domain failures onto the envelope the menus render.
func transactionError[T any](err error, operation string) commons.Response[T] {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return commons.ErrorResponse[T]("Account not found")
	case errors.Is(err, domain.ErrAccountNotActive),
		errors.Is(err, domain.ErrUnsupportedOperation),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrLimitExceeded),
		errors.Is(err, domain.ErrMinimumBalance),
		errors.Is(err, domain.ErrInvalidArgument):
		return commons.ErrorResponse[T]("transaction failed", err.Error())
	default:
		return commons.ErrorResponse[T]("failed to process "+operation, "Unable to process "+operation+" right now")
	}
}

func toSummary(account *domain.Account) models.AccountSummary {
	return models.AccountSummary{
		AccountNumber: account.AccountNumber,
		Holder:        account.Holder,
		AccountType:   string(account.Type),
		Status:        string(account.Status),
		Balance:       account.Balance().StringFixed(2),
		KYC:           account.KYC,
		BranchCode:    account.BranchCode,
		OpeningDate:   account.OpeningDate,
	}
}

func generateAccountNumber() string {
	return fmt.Sprintf("ACC%d", time.Now().UnixMicro())
}
