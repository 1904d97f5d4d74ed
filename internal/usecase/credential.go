// Package usecase contains the application-specific business rules.
// Every operation that touches accounts or inventory takes the caller's
// Credential and re-validates it before doing anything else.
package usecase

import "context"

// Credential is the identifier/secret pair submitted with a request.
type Credential struct {
	Identifier string
	Secret     string
}

// Authorizer decides whether a credential pair is currently valid.
type Authorizer interface {
	// Authorize returns false for an unknown identifier or a wrong secret. The
	// error is non-nil only for storage faults.
	Authorize(ctx context.Context, identifier, secret string) (bool, error)
}
