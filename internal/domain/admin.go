package domain

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type AdminRole string

const (
	AdminRoleSupreme  AdminRole = "supreme"
	AdminRoleStandard AdminRole = "standard"
)

// Admin is an operator of the administrative menu. Passwords are stored as
// bcrypt hashes; the plaintext never leaves the constructor.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	Role         AdminRole
}

func NewAdmin(id, username, password string, role AdminRole) (Admin, error) {
	if username == "" {
		return Admin{}, fmt.Errorf("admin username is required: %w", ErrInvalidArgument)
	}
	if password == "" {
		return Admin{}, fmt.Errorf("admin password is required: %w", ErrInvalidArgument)
	}
	if role != AdminRoleSupreme && role != AdminRoleStandard {
		return Admin{}, fmt.Errorf("unknown admin role %q: %w", role, ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Admin{}, fmt.Errorf("hash admin password: %w", err)
	}

	return Admin{
		ID:           id,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}, nil
}

// VerifyPassword reports whether candidate matches the stored credential.
// Admin files written before hashing hold the plaintext itself; those records
// compare directly so they keep logging in.
func (a Admin) VerifyPassword(candidate string) bool {
	if strings.HasPrefix(a.PasswordHash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(a.PasswordHash), []byte(candidate)) == 1
}
