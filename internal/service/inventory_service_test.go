package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"zerowastechef/internal/errors"
	"zerowastechef/internal/model"
)

// MockInventoryRepository is a mock implementation of InventoryRepository.
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Create(ctx context.Context, item *model.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) ListByAccount(ctx context.Context, accountID uint) ([]model.InventoryItem, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) UpdateItem(ctx context.Context, accountID, itemID uint, quantity float64, expiry time.Time) (int64, error) {
	args := m.Called(ctx, accountID, itemID, quantity, expiry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) DeleteByID(ctx context.Context, accountID, itemID uint) (int64, error) {
	args := m.Called(ctx, accountID, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) DeleteByName(ctx context.Context, accountID uint, name string) (int64, error) {
	args := m.Called(ctx, accountID, name)
	return args.Get(0).(int64), args.Error(1)
}

func newTestInventoryService(repo *MockInventoryRepository) InventoryService {
	// nil cache degrades to misses; service behavior is unchanged
	return NewInventoryService(repo, NewExpiryClassifier(), nil)
}

func TestInventoryService_AddItem(t *testing.T) {
	mockRepo := new(MockInventoryRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.InventoryItem")).
		Run(func(args mock.Arguments) {
			item := args.Get(1).(*model.InventoryItem)
			item.ItemID = 1
		}).Return(nil)

	service := newTestInventoryService(mockRepo)
	item, err := service.AddItem(context.Background(), 42, "Milk", 1.0, "liters", date("2024-06-09"))

	assert.NoError(t, err)
	assert.Equal(t, uint(42), item.AccountID)
	assert.Equal(t, uint(1), item.ItemID)
	assert.Equal(t, "Milk", item.Name)
	mockRepo.AssertExpectations(t)
}

func TestInventoryService_ListItems(t *testing.T) {
	today := date("2024-06-10")
	mockRepo := new(MockInventoryRepository)
	mockRepo.On("ListByAccount", mock.Anything, uint(42)).Return([]model.InventoryItem{
		{AccountID: 42, ItemID: 1, Name: "Milk", Quantity: 1, Unit: "liters", ExpiryDate: date("2024-06-09")},
		{AccountID: 42, ItemID: 2, Name: "Yogurt", Quantity: 500, Unit: "ml", ExpiryDate: date("2024-06-12")},
		{AccountID: 42, ItemID: 3, Name: "Rice", Quantity: 2, Unit: "kg", ExpiryDate: date("2024-06-20")},
	}, nil)

	service := newTestInventoryService(mockRepo)
	views, err := service.ListItems(context.Background(), 42, today)

	assert.NoError(t, err)
	assert.Len(t, views, 3)

	assert.Equal(t, model.StatusExpired, views[0].Status)
	assert.Equal(t, -1, views[0].DaysToExpiry)
	assert.Equal(t, "2024-06-09", views[0].ExpiryDate)

	assert.Equal(t, model.StatusExpiringSoon, views[1].Status)
	assert.Equal(t, model.StatusGood, views[2].Status)
	mockRepo.AssertExpectations(t)
}

func TestInventoryService_UpdateItem(t *testing.T) {
	tests := []struct {
		name          string
		rowsAffected  int64
		expectedError error
	}{
		{"existing item", 1, nil},
		{"missing item", 0, errors.ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expiry := date("2024-07-01")
			mockRepo := new(MockInventoryRepository)
			mockRepo.On("UpdateItem", mock.Anything, uint(42), uint(7), 2.5, expiry).
				Return(tt.rowsAffected, nil)

			service := newTestInventoryService(mockRepo)
			err := service.UpdateItem(context.Background(), 42, 7, 2.5, expiry)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestInventoryService_DeleteItem(t *testing.T) {
	mockRepo := new(MockInventoryRepository)
	mockRepo.On("DeleteByID", mock.Anything, uint(42), uint(1)).Return(int64(1), nil)
	mockRepo.On("DeleteByID", mock.Anything, uint(42), uint(99)).Return(int64(0), nil)

	service := newTestInventoryService(mockRepo)

	assert.NoError(t, service.DeleteItem(context.Background(), 42, 1))
	assert.ErrorIs(t, service.DeleteItem(context.Background(), 42, 99), errors.ErrItemNotFound)
	mockRepo.AssertExpectations(t)
}

func TestInventoryService_DeleteItemByName(t *testing.T) {
	mockRepo := new(MockInventoryRepository)
	mockRepo.On("DeleteByName", mock.Anything, uint(42), "Milk").Return(int64(2), nil)
	mockRepo.On("DeleteByName", mock.Anything, uint(42), "Caviar").Return(int64(0), nil)

	service := newTestInventoryService(mockRepo)

	assert.NoError(t, service.DeleteItemByName(context.Background(), 42, "Milk"))
	assert.ErrorIs(t, service.DeleteItemByName(context.Background(), 42, "Caviar"), errors.ErrItemNotFound)
	mockRepo.AssertExpectations(t)
}
