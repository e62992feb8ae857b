package services_test

import (
	"fmt"
	"testing"

	"bank/internal/models"
	"bank/internal/notifier"
	"bank/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of repositories.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(account *models.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByUniqueID(uniqueID string) (*models.Account, error) {
	args := m.Called(uniqueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) Deposit(uniqueID string, amount int64) (int64, error) {
	args := m.Called(uniqueID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) Withdraw(uniqueID string, amount int64) (int64, error) {
	args := m.Called(uniqueID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) Delete(uniqueID string) error {
	args := m.Called(uniqueID)
	return args.Error(0)
}

// MockNotifier is a mock implementation of notifier.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) AccountCreated(event notifier.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func TestAccountService_CreateAccount(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	mockNotif := new(MockNotifier)
	service := services.NewAccountService(mockRepo, mockNotif)

	mockRepo.On("Create", mock.AnythingOfType("*models.Account")).Return(nil).Once()
	mockNotif.On("AccountCreated", mock.AnythingOfType("notifier.Event")).Return(nil).Once()

	account, notified, err := service.CreateAccount("alice", "a@x.com", 100)

	assert.NoError(t, err)
	assert.True(t, notified)
	assert.Len(t, account.UniqueID, 8)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, "a@x.com", account.Email)
	assert.Equal(t, int64(100), account.Balance)
	mockRepo.AssertExpectations(t)
	mockNotif.AssertExpectations(t)
}

func TestAccountService_CreateAccount_FreshUniqueIDs(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := services.NewAccountService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Account")).Return(nil).Times(10)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		account, _, err := service.CreateAccount("user", fmt.Sprintf("user%d@x.com", i), 0)
		assert.NoError(t, err)
		assert.Len(t, account.UniqueID, 8)
		assert.False(t, seen[account.UniqueID], "unique_id %s issued twice", account.UniqueID)
		seen[account.UniqueID] = true
	}
	mockRepo.AssertExpectations(t)
}

func TestAccountService_CreateAccount_NotificationFailureIsNonFatal(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	mockNotif := new(MockNotifier)
	service := services.NewAccountService(mockRepo, mockNotif)

	mockRepo.On("Create", mock.AnythingOfType("*models.Account")).Return(nil).Once()
	mockNotif.On("AccountCreated", mock.AnythingOfType("notifier.Event")).Return(fmt.Errorf("smtp unreachable")).Once()

	account, notified, err := service.CreateAccount("bob", "b@x.com", 50)

	// The account is created even though the email never went out.
	assert.NoError(t, err)
	assert.False(t, notified)
	assert.NotNil(t, account)
	mockRepo.AssertExpectations(t)
	mockNotif.AssertExpectations(t)
}

func TestAccountService_CreateAccount_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	mockNotif := new(MockNotifier)
	service := services.NewAccountService(mockRepo, mockNotif)

	mockRepo.On("Create", mock.AnythingOfType("*models.Account")).Return(models.ErrDuplicateEmail).Once()

	account, notified, err := service.CreateAccount("carol", "taken@x.com", 10)

	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
	assert.False(t, notified)
	assert.Nil(t, account)
	// No notification goes out for a failed creation.
	mockNotif.AssertNotCalled(t, "AccountCreated", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAccountService_UpdateBalance(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := services.NewAccountService(mockRepo, nil)

	mockRepo.On("Deposit", "abcd1234", int64(30)).Return(int64(130), nil).Once()
	balance, err := service.UpdateBalance("abcd1234", "deposit", 30)
	assert.NoError(t, err)
	assert.Equal(t, int64(130), balance)

	mockRepo.On("Withdraw", "abcd1234", int64(60)).Return(int64(70), nil).Once()
	balance, err = service.UpdateBalance("abcd1234", "withdraw", 60)
	assert.NoError(t, err)
	assert.Equal(t, int64(70), balance)

	mockRepo.On("Withdraw", "abcd1234", int64(1000)).Return(int64(0), models.ErrInsufficientBalance).Once()
	_, err = service.UpdateBalance("abcd1234", "withdraw", 1000)
	assert.ErrorIs(t, err, models.ErrInsufficientBalance)

	mockRepo.AssertExpectations(t)
}

func TestAccountService_UpdateBalance_UnknownAction(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := services.NewAccountService(mockRepo, nil)

	_, err := service.UpdateBalance("abcd1234", "transfer", 10)

	assert.ErrorIs(t, err, models.ErrUnknownAction)
	// An unknown action must not touch the balance.
	mockRepo.AssertNotCalled(t, "Deposit", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Withdraw", mock.Anything, mock.Anything)
}

func TestAccountService_DeleteAccount(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := services.NewAccountService(mockRepo, nil)

	mockRepo.On("Delete", "abcd1234").Return(nil).Once()
	err := service.DeleteAccount("abcd1234")
	assert.NoError(t, err)

	mockRepo.On("Delete", "missing0").Return(models.ErrAccountNotFound).Once()
	err = service.DeleteAccount("missing0")
	assert.ErrorIs(t, err, models.ErrAccountNotFound)

	mockRepo.AssertExpectations(t)
}

func TestAccountService_GetBalance(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := services.NewAccountService(mockRepo, nil)

	mockRepo.On("GetByUniqueID", "abcd1234").Return(&models.Account{UniqueID: "abcd1234", Balance: 70}, nil).Once()
	balance, err := service.GetBalance("abcd1234")
	assert.NoError(t, err)
	assert.Equal(t, int64(70), balance)

	mockRepo.On("GetByUniqueID", "missing0").Return(nil, models.ErrAccountNotFound).Once()
	_, err = service.GetBalance("missing0")
	assert.ErrorIs(t, err, models.ErrAccountNotFound)

	mockRepo.AssertExpectations(t)
}
