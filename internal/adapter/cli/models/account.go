// Package models defines the request and response shapes exchanged between
// the menu handlers and the services, with the format validation each request
// carries.
package models

import (
	"errors"
	"strings"

	"github.com/api-sage/retail-bank-cli/internal/validation"
)

type OpenAccountRequest struct {
	Holder         string `json:"holder"`
	Gender         string `json:"gender"`
	DOB            string `json:"dob"`
	Address        string `json:"address"`
	Mobile         string `json:"mobile"`
	Email          string `json:"email"`
	AccountType    string `json:"accountType"`
	BranchCode     string `json:"branchCode"`
	KYC            bool   `json:"kyc"`
	PIN            string `json:"pin"`
	InitialDeposit string `json:"initialDeposit"`
}

func (r OpenAccountRequest) Validate() error {
	var errs []string

	if err := validation.HolderName(r.Holder); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validation.Gender(r.Gender); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validation.Date(r.DOB); err != nil {
		errs = append(errs, "date of birth: "+err.Error())
	}
	if strings.TrimSpace(r.Address) == "" {
		errs = append(errs, "address is required")
	}
	if err := validation.Mobile(r.Mobile); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validation.Email(r.Email); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validation.AccountType(r.AccountType); err != nil {
		errs = append(errs, err.Error())
	}
	// Empty branch code falls back to the configured default.
	if strings.TrimSpace(r.BranchCode) != "" {
		if err := validation.BranchCode(r.BranchCode); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if err := validation.PIN(r.PIN); err != nil {
		errs = append(errs, err.Error())
	}
	if strings.TrimSpace(r.InitialDeposit) != "" {
		if _, err := validation.OpeningDeposit(r.InitialDeposit); err != nil {
			errs = append(errs, "initial deposit: "+err.Error())
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type OpenAccountResponse struct {
	AccountNumber string `json:"accountNumber"`
	Holder        string `json:"holder"`
	AccountType   string `json:"accountType"`
	Status        string `json:"status"`
	Balance       string `json:"balance"`
	OpeningDate   string `json:"openingDate"`
}

type LoginRequest struct {
	AccountNumber string `json:"accountNumber"`
	PIN           string `json:"pin"`
}

func (r LoginRequest) Validate() error {
	var errs []string

	if err := validation.AccountNumber(r.AccountNumber); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validation.PIN(r.PIN); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// AccountSummary is the listing view of an account. It never carries the PIN.
type AccountSummary struct {
	AccountNumber string `json:"accountNumber"`
	Holder        string `json:"holder"`
	AccountType   string `json:"accountType"`
	Status        string `json:"status"`
	Balance       string `json:"balance"`
	KYC           bool   `json:"kyc"`
	BranchCode    string `json:"branchCode"`
	OpeningDate   string `json:"openingDate"`
}

type BalanceResponse struct {
	AccountNumber string `json:"accountNumber"`
	Balance       string `json:"balance"`
}

type HistoryResponse struct {
	AccountNumber string   `json:"accountNumber"`
	Entries       []string `json:"entries"`
}

type RestrictionsResponse struct {
	AccountType  string   `json:"accountType"`
	Restrictions []string `json:"restrictions"`
}
