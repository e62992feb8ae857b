package repositories

import (
	"fmt"
	"sync"

	"bank/internal/models"
)

// MockAccountRepository is an in-memory implementation of AccountRepository.
type MockAccountRepository struct {
	accounts map[string]models.Account
	emails   map[string]bool
	mu       sync.RWMutex
}

// NewMockAccountRepository creates a new instance of MockAccountRepository.
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]models.Account),
		emails:   make(map[string]bool),
	}
}

// Create adds a new account, enforcing the same uniqueness rules as the
// real table.
func (r *MockAccountRepository) Create(account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emails[account.Email] {
		return models.ErrDuplicateEmail
	}
	if _, ok := r.accounts[account.UniqueID]; ok {
		return fmt.Errorf("%w: duplicate unique_id %s", models.ErrConstraintViolation, account.UniqueID)
	}
	account.ID = uint(len(r.accounts) + 1)
	r.accounts[account.UniqueID] = *account
	r.emails[account.Email] = true
	return nil
}

// GetByUniqueID returns an account by its unique ID.
func (r *MockAccountRepository) GetByUniqueID(uniqueID string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[uniqueID]
	if !ok {
		return nil, models.ErrAccountNotFound
	}
	return &account, nil
}

// Deposit adds amount to the account balance.
func (r *MockAccountRepository) Deposit(uniqueID string, amount int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[uniqueID]
	if !ok {
		return 0, models.ErrAccountNotFound
	}
	account.Balance += amount
	r.accounts[uniqueID] = account
	return account.Balance, nil
}

// Withdraw subtracts amount from the account balance. The check and the
// update happen under the same lock, matching the atomicity of the SQL
// conditional update.
func (r *MockAccountRepository) Withdraw(uniqueID string, amount int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[uniqueID]
	if !ok {
		return 0, models.ErrAccountNotFound
	}
	if account.Balance < amount {
		return 0, models.ErrInsufficientBalance
	}
	account.Balance -= amount
	r.accounts[uniqueID] = account
	return account.Balance, nil
}

// Delete removes an account by its unique ID.
func (r *MockAccountRepository) Delete(uniqueID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[uniqueID]
	if !ok {
		return models.ErrAccountNotFound
	}
	delete(r.emails, account.Email)
	delete(r.accounts, uniqueID)
	return nil
}
