package models

import (
	"errors"
	"strings"

	"github.com/api-sage/retail-bank-cli/internal/validation"
)

type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r CreateAdminRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Username) == "" {
		errs = append(errs, "username is required")
	}
	if len(r.Password) < 4 {
		errs = append(errs, "password must be at least 4 characters")
	}
	switch strings.TrimSpace(r.Role) {
	case "", "supreme", "standard":
	default:
		errs = append(errs, "role must be supreme or standard")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r AdminLoginRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Username) == "" {
		errs = append(errs, "username is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type AdminResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type RenameHolderRequest struct {
	AccountNumber string `json:"accountNumber"`
	NewHolder     string `json:"newHolder"`
}

func (r RenameHolderRequest) Validate() error {
	var errs []string

	if err := validation.AccountNumber(r.AccountNumber); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validation.HolderName(r.NewHolder); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type ResetPINRequest struct {
	AccountNumber string `json:"accountNumber"`
	NewPIN        string `json:"newPin"`
}

func (r ResetPINRequest) Validate() error {
	var errs []string

	if err := validation.AccountNumber(r.AccountNumber); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validation.PIN(r.NewPIN); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type SetStatusRequest struct {
	AccountNumber string `json:"accountNumber"`
	Status        string `json:"status"`
}

func (r SetStatusRequest) Validate() error {
	var errs []string

	if err := validation.AccountNumber(r.AccountNumber); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validation.AccountStatus(r.Status); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type DeleteAccountRequest struct {
	AccountNumber string `json:"accountNumber"`
}

func (r DeleteAccountRequest) Validate() error {
	if err := validation.AccountNumber(r.AccountNumber); err != nil {
		return err
	}
	return nil
}
