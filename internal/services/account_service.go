package services

import (
	"fmt"
	"log"

	"bank/internal/models"
	"bank/internal/notifier"
	"bank/internal/repositories"

	"github.com/google/uuid"
)

// Balance actions accepted by UpdateBalance. Anything else is rejected
// instead of falling through to a withdrawal.
const (
	ActionDeposit  = "deposit"
	ActionWithdraw = "withdraw"
)

// AccountService handles business logic for account management.
type AccountService struct {
	accountRepo repositories.AccountRepository
	notif       notifier.Notifier
}

// NewAccountService creates a new AccountService. The notifier may be nil,
// in which case credential notifications are skipped.
func NewAccountService(accountRepo repositories.AccountRepository, notif notifier.Notifier) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		notif:       notif,
	}
}

// CreateAccount creates a new account with a freshly generated unique ID and
// the given opening balance, then notifies the owner of their credential.
// The returned bool reports whether the notification went out; a failed
// notification never fails or rolls back the creation.
func (s *AccountService) CreateAccount(username, email string, amount int64) (*models.Account, bool, error) {
	account := &models.Account{
		// First 8 characters of a random UUID. A collision would surface as
		// a constraint violation on insert; it is not retried.
		UniqueID: uuid.New().String()[:8],
		Username: username,
		Email:    email,
		Balance:  amount,
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, false, err
	}

	notified := false
	if s.notif != nil {
		event := notifier.Event{
			Email:    account.Email,
			UniqueID: account.UniqueID,
			Username: account.Username,
			Balance:  account.Balance,
		}
		if err := s.notif.AccountCreated(event); err != nil {
			log.Printf("Warning: failed to send credential notification for account %s: %v", account.UniqueID, err)
		} else {
			notified = true
		}
	} else {
		log.Println("Notifier is not configured. Skipping credential notification.")
	}

	return account, notified, nil
}

// UpdateBalance applies a deposit or withdrawal to the account and returns
// the resulting balance.
func (s *AccountService) UpdateBalance(uniqueID, action string, amount int64) (int64, error) {
	switch action {
	case ActionDeposit:
		return s.accountRepo.Deposit(uniqueID, amount)
	case ActionWithdraw:
		return s.accountRepo.Withdraw(uniqueID, amount)
	default:
		return 0, fmt.Errorf("%w: %s", models.ErrUnknownAction, action)
	}
}

// DeleteAccount permanently removes the account.
func (s *AccountService) DeleteAccount(uniqueID string) error {
	return s.accountRepo.Delete(uniqueID)
}

// GetBalance returns the current balance of the account.
func (s *AccountService) GetBalance(uniqueID string) (int64, error) {
	account, err := s.accountRepo.GetByUniqueID(uniqueID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}
