package domain

import "context"

// AdminRepository persists the administrator list, loaded in full and
// rewritten in full on each creation.
type AdminRepository interface {
	LoadAll(ctx context.Context) ([]Admin, error)

	// Save appends an admin. A username collision yields ErrDuplicateAdmin.
	Save(ctx context.Context, admin Admin) error

	// HasAny reports whether at least one admin exists. The presentation
	// layer uses this to decide whether to run the supreme-admin bootstrap.
	HasAny(ctx context.Context) (bool, error)
}
