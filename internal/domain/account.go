package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeSavings          AccountType = "Savings"
	AccountTypeCurrent          AccountType = "Current"
	AccountTypeFixedDeposit     AccountType = "Fixed Deposit"
	AccountTypeRecurringDeposit AccountType = "Recurring Deposit"
)

type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "Active"
	AccountStatusInactive  AccountStatus = "Inactive"
	AccountStatusSuspended AccountStatus = "Suspended"
	AccountStatusClosed    AccountStatus = "Closed"
	AccountStatusFrozen    AccountStatus = "Frozen"
)

// Per-transaction ceilings by account type. A zero ceiling means the type
// does not transact at all.
var transactionLimits = map[AccountType]decimal.Decimal{
	AccountTypeSavings:          decimal.NewFromInt(50_000),
	AccountTypeCurrent:          decimal.NewFromInt(1_000_000),
	AccountTypeFixedDeposit:     decimal.Zero,
	AccountTypeRecurringDeposit: decimal.Zero,
}

// Savings accounts must retain at least this much after any withdrawal or
// outgoing transfer.
var savingsMinimumBalance = decimal.NewFromInt(1_000)

// Account is the unit of ownership of funds. The pin, balance and history
// fields are deliberately unexported: every legal mutation goes through a
// method that enforces the transaction rules, and serialization goes through
// Snapshot/HydrateAccount rather than direct field access.
type Account struct {
	ID            string
	AccountNumber string
	Holder        string
	Gender        string
	DOB           string
	Address       string
	Mobile        string
	Email         string
	Type          AccountType
	Status        AccountStatus
	KYC           bool
	BranchCode    string
	OpeningDate   string

	pin     string
	balance decimal.Decimal
	history []string
}

// AccountSnapshot is the serializable view of an Account. It is the only way
// the pin leaves the entity and exists solely for the store to persist and
// rehydrate accounts.
type AccountSnapshot struct {
	ID            string
	AccountNumber string
	Holder        string
	Gender        string
	DOB           string
	Address       string
	Mobile        string
	Email         string
	Type          AccountType
	Status        AccountStatus
	KYC           bool
	BranchCode    string
	OpeningDate   string
	PIN           string
	Balance       decimal.Decimal
	History       []string
}

func isFourDigitPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, ch := range pin {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// NewAccount opens an account with status Active and an empty history. The
// caller is expected to have validated descriptive fields already; the rules
// enforced here are the ones with money on the line.
func NewAccount(id, accountNumber, holder string, accountType AccountType, pin string, initialBalance decimal.Decimal) (*Account, error) {
	if accountNumber == "" {
		return nil, fmt.Errorf("account number is required: %w", ErrInvalidArgument)
	}
	if holder == "" {
		return nil, fmt.Errorf("holder name is required: %w", ErrInvalidArgument)
	}
	if !isFourDigitPIN(pin) {
		return nil, fmt.Errorf("pin must be exactly 4 digits: %w", ErrInvalidArgument)
	}
	if _, ok := transactionLimits[accountType]; !ok {
		return nil, fmt.Errorf("unknown account type %q: %w", accountType, ErrInvalidArgument)
	}
	if initialBalance.IsNegative() {
		return nil, fmt.Errorf("initial balance cannot be negative: %w", ErrInvalidArgument)
	}

	return &Account{
		ID:            id,
		AccountNumber: accountNumber,
		Holder:        holder,
		Type:          accountType,
		Status:        AccountStatusActive,
		OpeningDate:   time.Now().Format("2006-01-02"),
		pin:           pin,
		balance:       initialBalance.Round(2),
		history:       []string{},
	}, nil
}

// HydrateAccount rebuilds an account from a persisted snapshot without
// re-running opening validation, so historical records that predate current
// rules still load.
func HydrateAccount(snap AccountSnapshot) *Account {
	history := make([]string, len(snap.History))
	copy(history, snap.History)

	return &Account{
		ID:            snap.ID,
		AccountNumber: snap.AccountNumber,
		Holder:        snap.Holder,
		Gender:        snap.Gender,
		DOB:           snap.DOB,
		Address:       snap.Address,
		Mobile:        snap.Mobile,
		Email:         snap.Email,
		Type:          snap.Type,
		Status:        snap.Status,
		KYC:           snap.KYC,
		BranchCode:    snap.BranchCode,
		OpeningDate:   snap.OpeningDate,
		pin:           snap.PIN,
		balance:       snap.Balance,
		history:       history,
	}
}

// Snapshot returns the serializable view of the account, including the pin.
func (a *Account) Snapshot() AccountSnapshot {
	history := make([]string, len(a.history))
	copy(history, a.history)

	return AccountSnapshot{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		Holder:        a.Holder,
		Gender:        a.Gender,
		DOB:           a.DOB,
		Address:       a.Address,
		Mobile:        a.Mobile,
		Email:         a.Email,
		Type:          a.Type,
		Status:        a.Status,
		KYC:           a.KYC,
		BranchCode:    a.BranchCode,
		OpeningDate:   a.OpeningDate,
		PIN:           a.pin,
		Balance:       a.balance,
		History:       history,
	}
}

func (a *Account) checkActive() error {
	if a.Status != AccountStatusActive {
		return fmt.Errorf("account status is %s: %w", a.Status, ErrAccountNotActive)
	}
	return nil
}

func (a *Account) checkLimit(amount decimal.Decimal) error {
	limit, ok := transactionLimits[a.Type]
	if !ok {
		limit = transactionLimits[AccountTypeSavings]
	}
	// A zero ceiling blocks the type entirely.
	if limit.IsZero() {
		return fmt.Errorf("%s accounts do not transact: %w", a.Type, ErrLimitExceeded)
	}
	if amount.GreaterThan(limit) {
		return fmt.Errorf("%s account transaction limit is %s: %w", a.Type, limit.StringFixed(2), ErrLimitExceeded)
	}
	return nil
}

// checkDebit covers the rules shared by withdrawals and outgoing transfers:
// positive amount, sufficient funds, per-type ceiling and the Savings
// minimum-balance floor.
func (a *Account) checkDebit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientBalance
	}
	if err := a.checkLimit(amount); err != nil {
		return err
	}
	if a.Type == AccountTypeSavings && a.balance.Sub(amount).LessThan(savingsMinimumBalance) {
		return fmt.Errorf("savings account requires minimum balance of %s: %w",
			savingsMinimumBalance.StringFixed(2), ErrMinimumBalance)
	}
	return nil
}

func (a *Account) appendHistory(action string) {
	a.history = append(a.history, fmt.Sprintf("[%s] %s", time.Now().Format("2006-01-02 15:04:05"), action))
}

// Deposit credits the account. Fixed Deposit accounts accept no deposits
// after opening; Recurring Deposit accounts are blocked by their zero
// transaction ceiling.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := a.checkActive(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if a.Type == AccountTypeFixedDeposit {
		return fmt.Errorf("fixed deposit accounts cannot accept deposits after opening: %w", ErrUnsupportedOperation)
	}
	if err := a.checkLimit(amount); err != nil {
		return err
	}

	a.balance = a.balance.Add(amount)
	a.appendHistory(fmt.Sprintf("Deposited: %s, Balance: %s", amount.StringFixed(2), a.balance.StringFixed(2)))
	return nil
}

// Withdraw debits the account subject to the type rules.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := a.checkActive(); err != nil {
		return err
	}
	if a.Type == AccountTypeFixedDeposit || a.Type == AccountTypeRecurringDeposit {
		return fmt.Errorf("%s accounts do not allow withdrawals before maturity: %w", a.Type, ErrUnsupportedOperation)
	}
	if err := a.checkDebit(amount); err != nil {
		return err
	}

	a.balance = a.balance.Sub(amount)
	a.appendHistory(fmt.Sprintf("Withdrew: %s, Balance: %s", amount.StringFixed(2), a.balance.StringFixed(2)))
	return nil
}

// TransferTo moves amount from this account to target. Every precondition on
// both sides is checked before either balance moves, so a failure leaves both
// accounts untouched; on success both balances and both histories are updated
// together and the net delta across the pair is zero.
func (a *Account) TransferTo(target *Account, amount decimal.Decimal) error {
	if target == nil {
		return fmt.Errorf("target account is required: %w", ErrInvalidArgument)
	}
	if target.AccountNumber == a.AccountNumber {
		return fmt.Errorf("cannot transfer to the same account: %w", ErrInvalidArgument)
	}
	if err := a.checkActive(); err != nil {
		return err
	}
	if err := target.checkActive(); err != nil {
		return fmt.Errorf("recipient: %w", err)
	}
	if a.Type == AccountTypeFixedDeposit || a.Type == AccountTypeRecurringDeposit {
		return fmt.Errorf("%s accounts do not allow transfers: %w", a.Type, ErrUnsupportedOperation)
	}
	if target.Type == AccountTypeFixedDeposit {
		return fmt.Errorf("cannot transfer to fixed deposit accounts: %w", ErrUnsupportedOperation)
	}
	if err := a.checkDebit(amount); err != nil {
		return err
	}

	a.balance = a.balance.Sub(amount)
	a.appendHistory(fmt.Sprintf("Transferred: %s to %s, Balance: %s",
		amount.StringFixed(2), target.AccountNumber, a.balance.StringFixed(2)))

	target.balance = target.balance.Add(amount)
	target.appendHistory(fmt.Sprintf("Received: %s from %s, Balance: %s",
		amount.StringFixed(2), a.AccountNumber, target.balance.StringFixed(2)))
	return nil
}

// VerifyPIN reports whether candidate matches the account pin. It does not
// mutate the account or write history.
func (a *Account) VerifyPIN(candidate string) bool {
	return a.pin == candidate
}

// SetPIN is an administrative override.
func (a *Account) SetPIN(newPIN string) error {
	if !isFourDigitPIN(newPIN) {
		return fmt.Errorf("pin must be exactly 4 digits: %w", ErrInvalidArgument)
	}
	a.pin = newPIN
	return nil
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// History returns a copy of the append-only audit trail in order.
func (a *Account) History() []string {
	out := make([]string, len(a.history))
	copy(out, a.history)
	return out
}

// RestrictionsFor describes the user-facing rules for an account type.
func RestrictionsFor(accountType AccountType) []string {
	switch accountType {
	case AccountTypeSavings:
		return []string{
			"Deposits: allowed",
			"Withdrawals: allowed",
			"Transfers: allowed",
			"Minimum balance: 1,000.00",
			"Max transaction: 50,000.00",
		}
	case AccountTypeCurrent:
		return []string{
			"Deposits: allowed",
			"Withdrawals: allowed",
			"Transfers: allowed",
			"No minimum balance",
			"Max transaction: 1,000,000.00",
		}
	case AccountTypeFixedDeposit:
		return []string{
			"No additional deposits",
			"No withdrawals before maturity",
			"No transfers allowed",
			"Locked until maturity date",
		}
	case AccountTypeRecurringDeposit:
		return []string{
			"Fixed monthly deposits only",
			"No withdrawals before maturity",
			"No transfers allowed",
			"Locked until maturity date",
		}
	default:
		return nil
	}
}

// AccountTypes lists the supported account types in display order.
func AccountTypes() []AccountType {
	return []AccountType{
		AccountTypeSavings,
		AccountTypeCurrent,
		AccountTypeFixedDeposit,
		AccountTypeRecurringDeposit,
	}
}

// AccountStatuses lists the supported statuses. All transitions are
// administrative and unconditional.
func AccountStatuses() []AccountStatus {
	return []AccountStatus{
		AccountStatusActive,
		AccountStatusInactive,
		AccountStatusSuspended,
		AccountStatusClosed,
		AccountStatusFrozen,
	}
}
