package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrInvalidArgument = errors.New("Invalid argument")
var ErrAccountNotActive = errors.New("Account is not active")
var ErrUnsupportedOperation = errors.New("Operation not allowed for this account type")
var ErrInvalidAmount = errors.New("Amount must be positive")
var ErrInsufficientBalance = errors.New("Insufficient balance")
var ErrLimitExceeded = errors.New("Transaction limit exceeded")
var ErrMinimumBalance = errors.New("Minimum balance requirement not met")
var ErrDuplicateKey = errors.New("Account number already exists")
var ErrCorruptStore = errors.New("Account store is corrupt")
var ErrDuplicateAdmin = errors.New("Admin already exists")
