// Package validation holds the format predicates the presentation layer runs
// before anything reaches the domain. Every predicate returns nil for valid
// input and a human-readable error otherwise; malformed input is an expected
// condition, never a panic.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/api-sage/retail-bank-cli/internal/domain"
)

var validate = validator.New()

var holderNamePattern = regexp.MustCompile(`^[A-Za-z ]+$`)
var accountTokenPattern = regexp.MustCompile(`^ACC\d+$`)
var digitsPattern = regexp.MustCompile(`^\d+$`)

// AccountNumber accepts the canonical ACC<timestamp> token and, for records
// that predate it, the legacy sequential 6-digit scheme.
func AccountNumber(accountNumber string) error {
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return fmt.Errorf("account number is required")
	}
	if accountTokenPattern.MatchString(accountNumber) {
		return nil
	}
	if len(accountNumber) == 6 && digitsPattern.MatchString(accountNumber) {
		return nil
	}
	return fmt.Errorf("account number must be an ACC token or a 6-digit number")
}

func PIN(pin string) error {
	if len(pin) != 4 || !digitsPattern.MatchString(pin) {
		return fmt.Errorf("PIN must be exactly 4 digits")
	}
	return nil
}

func HolderName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("holder name cannot be empty")
	}
	if !holderNamePattern.MatchString(name) {
		return fmt.Errorf("holder name must contain only letters and spaces")
	}
	return nil
}

// Amount parses a monetary amount and requires it to be strictly positive.
func Amount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount must be numeric")
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero")
	}
	return amount.Round(2), nil
}

// OpeningDeposit parses the opening balance. Unlike Amount it allows zero:
// accounts may open with nothing in them.
func OpeningDeposit(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount must be numeric")
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount cannot be negative")
	}
	return amount.Round(2), nil
}

func Date(raw string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(raw)); err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	return nil
}

func Mobile(mobile string) error {
	mobile = strings.TrimSpace(mobile)
	if len(mobile) != 10 || !digitsPattern.MatchString(mobile) {
		return fmt.Errorf("mobile number must be exactly 10 digits")
	}
	return nil
}

func Email(email string) error {
	if err := validate.Var(strings.TrimSpace(email), "required,email"); err != nil {
		return fmt.Errorf("email address is not valid")
	}
	return nil
}

func Gender(gender string) error {
	switch strings.TrimSpace(gender) {
	case "Male", "Female", "Other":
		return nil
	}
	return fmt.Errorf("gender must be Male, Female or Other")
}

func BranchCode(code string) error {
	code = strings.TrimSpace(code)
	if len(code) < 4 || len(code) > 6 || !digitsPattern.MatchString(code) {
		return fmt.Errorf("branch code must be 4 to 6 digits")
	}
	return nil
}

func AccountType(raw string) error {
	for _, t := range domain.AccountTypes() {
		if string(t) == strings.TrimSpace(raw) {
			return nil
		}
	}
	return fmt.Errorf("account type must be one of Savings, Current, Fixed Deposit, Recurring Deposit")
}

func AccountStatus(raw string) error {
	for _, s := range domain.AccountStatuses() {
		if string(s) == strings.TrimSpace(raw) {
			return nil
		}
	}
	return fmt.Errorf("status must be one of Active, Inactive, Suspended, Closed, Frozen")
}
