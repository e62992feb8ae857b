package repositories

import (
	"errors"
	"fmt"
	"strings"

	"bank/internal/models"

	"gorm.io/gorm"
)

// GORMAccountRepository is a GORM implementation of AccountRepository.
type GORMAccountRepository struct {
	db *gorm.DB
}

// NewGORMAccountRepository creates a new instance of GORMAccountRepository.
func NewGORMAccountRepository(db *gorm.DB) *GORMAccountRepository {
	return &GORMAccountRepository{
		db: db,
	}
}

// Create inserts a new account. Constraint violations on the email column
// are reported as models.ErrDuplicateEmail; any other constraint failure
// (e.g. a unique_id collision) as models.ErrConstraintViolation.
func (r *GORMAccountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "unique") && strings.Contains(msg, "email") {
			return models.ErrDuplicateEmail
		}
		if strings.Contains(msg, "unique") || strings.Contains(msg, "constraint") {
			return fmt.Errorf("%w: %v", models.ErrConstraintViolation, err)
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByUniqueID retrieves an account by its unique ID.
func (r *GORMAccountRepository) GetByUniqueID(uniqueID string) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, "unique_id = ?", uniqueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account %s: %w", uniqueID, err)
	}
	return &account, nil
}

// Deposit adds amount to the account balance and returns the new balance.
func (r *GORMAccountRepository) Deposit(uniqueID string, amount int64) (int64, error) {
	var balance int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Account{}).
			Where("unique_id = ?", uniqueID).
			UpdateColumn("balance", gorm.Expr("balance + ?", amount))
		if res.Error != nil {
			return fmt.Errorf("failed to deposit into account %s: %w", uniqueID, res.Error)
		}
		if res.RowsAffected == 0 {
			return models.ErrAccountNotFound
		}
		return tx.Model(&models.Account{}).
			Where("unique_id = ?", uniqueID).
			Select("balance").
			Scan(&balance).Error
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// Withdraw subtracts amount from the account balance. The sufficiency check
// is part of the UPDATE's WHERE clause, so two concurrent withdrawals can
// never both drain the same funds; the affected-row count tells losers apart
// from missing accounts.
func (r *GORMAccountRepository) Withdraw(uniqueID string, amount int64) (int64, error) {
	var balance int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Account{}).
			Where("unique_id = ? AND balance >= ?", uniqueID, amount).
			UpdateColumn("balance", gorm.Expr("balance - ?", amount))
		if res.Error != nil {
			return fmt.Errorf("failed to withdraw from account %s: %w", uniqueID, res.Error)
		}
		if res.RowsAffected == 0 {
			var account models.Account
			if err := tx.First(&account, "unique_id = ?", uniqueID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.ErrAccountNotFound
				}
				return fmt.Errorf("failed to get account %s: %w", uniqueID, err)
			}
			return models.ErrInsufficientBalance
		}
		return tx.Model(&models.Account{}).
			Where("unique_id = ?", uniqueID).
			Select("balance").
			Scan(&balance).Error
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// Delete removes an account by its unique ID.
func (r *GORMAccountRepository) Delete(uniqueID string) error {
	res := r.db.Delete(&models.Account{}, "unique_id = ?", uniqueID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete account %s: %w", uniqueID, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrAccountNotFound
	}
	return nil
}
