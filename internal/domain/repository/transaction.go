package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// Use cases run multi-step work through it without depending on a specific driver.
type TransactionManager interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns repositories bound to one transaction.
type RepositoryFactory interface {
	NewCategoryRepository() CategoryRepository
	NewProductRepository() ProductRepository
	NewLocationRepository() LocationRepository
	NewPurchaseRepository() PurchaseRepository
	NewReviewRepository() ReviewRepository
	NewUserRepository() UserRepository
	NewIntegrityGateway() IntegrityGateway
}
