package models

import (
	"errors"
	"strings"

	"github.com/api-sage/retail-bank-cli/internal/validation"
)

type DepositRequest struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
}

func (r DepositRequest) Validate() error {
	var errs []string

	if err := validation.AccountNumber(r.AccountNumber); err != nil {
		errs = append(errs, err.Error())
	}
	if _, err := validation.Amount(r.Amount); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type DepositResponse struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
}

type WithdrawRequest struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
}

func (r WithdrawRequest) Validate() error {
	var errs []string

	if err := validation.AccountNumber(r.AccountNumber); err != nil {
		errs = append(errs, err.Error())
	}
	if _, err := validation.Amount(r.Amount); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type WithdrawResponse struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
}

type TransferRequest struct {
	FromAccountNumber string `json:"fromAccountNumber"`
	ToAccountNumber   string `json:"toAccountNumber"`
	Amount            string `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if err := validation.AccountNumber(r.FromAccountNumber); err != nil {
		errs = append(errs, "sender: "+err.Error())
	}
	if err := validation.AccountNumber(r.ToAccountNumber); err != nil {
		errs = append(errs, "recipient: "+err.Error())
	}
	if strings.TrimSpace(r.FromAccountNumber) != "" &&
		strings.TrimSpace(r.FromAccountNumber) == strings.TrimSpace(r.ToAccountNumber) {
		errs = append(errs, "sender and recipient cannot be the same account")
	}
	if _, err := validation.Amount(r.Amount); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransferResponse struct {
	Reference         string `json:"reference"`
	FromAccountNumber string `json:"fromAccountNumber"`
	ToAccountNumber   string `json:"toAccountNumber"`
	Amount            string `json:"amount"`
	SenderBalance     string `json:"senderBalance"`
}
