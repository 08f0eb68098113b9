package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/retail-bank-cli/internal/adapter/cli/models"
	"github.com/api-sage/retail-bank-cli/internal/commons"
	"github.com/api-sage/retail-bank-cli/internal/domain"
	"github.com/api-sage/retail-bank-cli/internal/logger"
	"github.com/api-sage/retail-bank-cli/internal/validation"
)

type TransferService struct {
	accountRepo domain.AccountRepository
}

func NewTransferService(accountRepo domain.AccountRepository) *TransferService {
	return &TransferService{accountRepo: accountRepo}
}

var transferRefCounter uint32

// Transfer moves funds between two accounts. Both sides are loaded, validated
// and mutated inside a single Update cycle, so either both balances and both
// history entries commit in one snapshot write, or nothing does.
func (s *TransferService) Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("transfer service transfer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transfer service transfer validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	amount, err := validation.Amount(req.Amount)
	if err != nil {
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	fromNumber := strings.TrimSpace(req.FromAccountNumber)
	toNumber := strings.TrimSpace(req.ToAccountNumber)
	reference := generateTransferReference()

	var senderBalance decimal.Decimal
	err = s.accountRepo.Update(ctx, func(accounts map[string]*domain.Account) error {
		sender, ok := accounts[fromNumber]
		if !ok {
			return fmt.Errorf("sender: %w", domain.ErrRecordNotFound)
		}
		recipient, ok := accounts[toNumber]
		if !ok {
			return fmt.Errorf("recipient: %w", domain.ErrRecordNotFound)
		}
		if err := sender.TransferTo(recipient, amount); err != nil {
			return err
		}
		senderBalance = sender.Balance()
		return nil
	})
	if err != nil {
		logger.Error("transfer service transfer failed", err, logger.Fields{
			"reference":         reference,
			"fromAccountNumber": fromNumber,
			"toAccountNumber":   toNumber,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Account not found", err.Error()), err
		}
		return transactionError[models.TransferResponse](err, "transfer"), err
	}

	logger.Info("transfer service transfer success", logger.Fields{
		"reference":         reference,
		"fromAccountNumber": fromNumber,
		"toAccountNumber":   toNumber,
		"amount":            amount.StringFixed(2),
	})

	return commons.SuccessResponse("transfer successful", models.TransferResponse{
		Reference:         reference,
		FromAccountNumber: fromNumber,
		ToAccountNumber:   toNumber,
		Amount:            amount.StringFixed(2),
		SenderBalance:     senderBalance.StringFixed(2),
	}), nil
}

func generateTransferReference() string {
	now := time.Now().UTC()
	counter := atomic.AddUint32(&transferRefCounter, 1) % 10000
	return now.Format("20060102150405") + fmt.Sprintf("%04d", counter)
}
