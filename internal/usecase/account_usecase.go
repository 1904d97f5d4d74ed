package usecase

import "context"

// AccountUsecase manages the accounts allowed to use the service.
type AccountUsecase interface {
	// CheckCredential succeeds when cred is valid and has no other effect.
	CheckCredential(ctx context.Context, cred Credential) error

	// ListAccounts returns every identifier in ascending order.
	ListAccounts(ctx context.Context, cred Credential) ([]string, error)

	// AddAccount creates an account. An identifier already in use is rejected.
	AddAccount(ctx context.Context, cred Credential, identifier, secret string) error

	// RotatePassword replaces the secret of an existing account.
	RotatePassword(ctx context.Context, cred Credential, identifier, newSecret string) error

	// DeleteAccount removes an account other than the caller's own.
	DeleteAccount(ctx context.Context, cred Credential, identifier string) error
}

// BootstrapUsecase seeds the credential store on first start.
type BootstrapUsecase interface {
	// EnsureDefaultAccount creates the configured default account when no
	// account exists. It reports whether an account was created.
	EnsureDefaultAccount(ctx context.Context) (bool, error)
}
