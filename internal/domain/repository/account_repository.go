// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cryofood/internal/domain/entity"
)

// ErrAccountNotFound is returned when no account has the requested identifier.
var ErrAccountNotFound = errors.New("account not found")

// ErrAccountExists is returned by Create when the identifier is already taken.
var ErrAccountExists = errors.New("account already exists")

// AccountRepository is the credential store.
type AccountRepository interface {
	// FindByIdentifier returns ErrAccountNotFound when the identifier is unknown.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error)

	// List returns every account ordered by identifier.
	List(ctx context.Context) ([]*entity.Account, error)

	Count(ctx context.Context) (int64, error)

	// Create inserts a new account. An existing identifier yields ErrAccountExists
	// and leaves the stored account untouched.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateSecretHash replaces the stored hash in a single statement.
	UpdateSecretHash(ctx context.Context, identifier, secretHash string) error

	Delete(ctx context.Context, identifier string) error
}
