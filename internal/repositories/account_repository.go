package repositories

import "bank/internal/models"

// AccountRepository defines the interface for account data access.
type AccountRepository interface {
	Create(account *models.Account) error
	GetByUniqueID(uniqueID string) (*models.Account, error)
	// Deposit adds amount to the account balance and returns the new balance.
	Deposit(uniqueID string, amount int64) (int64, error)
	// Withdraw subtracts amount from the account balance and returns the new
	// balance. The check and the update are a single atomic step, so the
	// balance can never go negative even under concurrent withdrawals.
	Withdraw(uniqueID string, amount int64) (int64, error)
	Delete(uniqueID string) error
}
