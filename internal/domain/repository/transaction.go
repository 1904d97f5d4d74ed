package repository

import "context"

// TransactionManager lets the use case layer run several repository calls atomically
// without depending on a specific DB driver.
type TransactionManager interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	NewAccountRepository() AccountRepository
	NewFoodItemRepository() FoodItemRepository
}
