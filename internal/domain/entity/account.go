// Package entity contains the core business objects of the project.
package entity

import "time"

// Account is a set of credentials allowed to operate the service.
// Identifier is the primary key and never changes after creation.
type Account struct {
	Identifier string    // Login name submitted with every request.
	SecretHash string    // Salted one-way hash of the secret. Never leaves the service.
	CreatedAt  time.Time // Bookkeeping only.
	UpdatedAt  time.Time // Bookkeeping only, moves on secret rotation.
}
