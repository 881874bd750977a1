package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"zerowastechef/internal/cache"
	"zerowastechef/internal/errors"
	"zerowastechef/internal/model"
	"zerowastechef/internal/repository"
)

const inventoryCacheTTL = 5 * time.Minute

// InventoryService exposes account-scoped inventory operations. Items are
// annotated with their freshness status at read time; the status is derived
// from the evaluation date and never stored.
type InventoryService interface {
	AddItem(ctx context.Context, accountID uint, name string, quantity float64, unit string, expiry time.Time) (*model.InventoryItem, error)
	ListItems(ctx context.Context, accountID uint, today time.Time) ([]model.ItemView, error)
	UpdateItem(ctx context.Context, accountID, itemID uint, quantity float64, expiry time.Time) error
	DeleteItem(ctx context.Context, accountID, itemID uint) error
	DeleteItemByName(ctx context.Context, accountID uint, name string) error
}

type inventoryService struct {
	repo       repository.InventoryRepository
	classifier *ExpiryClassifier
	cache      *cache.Client
}

// NewInventoryService builds an InventoryService with repository, classifier
// and cache.
func NewInventoryService(repo repository.InventoryRepository, classifier *ExpiryClassifier, cache *cache.Client) InventoryService {
	return &inventoryService{
		repo:       repo,
		classifier: classifier,
		cache:      cache,
	}
}

func (s *inventoryService) cacheKey(accountID uint) string {
	return fmt.Sprintf("inventory:%d", accountID)
}

// AddItem inserts a new item; the repository assigns the per-account item id.
func (s *inventoryService) AddItem(ctx context.Context, accountID uint, name string, quantity float64, unit string, expiry time.Time) (*model.InventoryItem, error) {
	item := &model.InventoryItem{
		AccountID:  accountID,
		Name:       name,
		Quantity:   quantity,
		Unit:       unit,
		ExpiryDate: expiry,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(accountID))
	return item, nil
}

// ListItems returns the account's items with freshness derived against today.
func (s *inventoryService) ListItems(ctx context.Context, accountID uint, today time.Time) ([]model.ItemView, error) {
	items, err := s.fetchItems(ctx, accountID)
	if err != nil {
		return nil, err
	}

	views := make([]model.ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, model.ItemView{
			ItemID:       item.ItemID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
			ExpiryDate:   item.ExpiryDate.Format("2006-01-02"),
			Status:       s.classifier.Classify(item.ExpiryDate, today),
			DaysToExpiry: s.classifier.DaysToExpiry(item.ExpiryDate, today),
		})
	}
	return views, nil
}

// UpdateItem overwrites quantity and expiry date of an existing item.
func (s *inventoryService) UpdateItem(ctx context.Context, accountID, itemID uint, quantity float64, expiry time.Time) error {
	affected, err := s.repo.UpdateItem(ctx, accountID, itemID, quantity, expiry)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if affected == 0 {
		return errors.ErrItemNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(accountID))
	return nil
}

// DeleteItem removes a single item by its per-account id.
func (s *inventoryService) DeleteItem(ctx context.Context, accountID, itemID uint) error {
	affected, err := s.repo.DeleteByID(ctx, accountID, itemID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if affected == 0 {
		return errors.ErrItemNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(accountID))
	return nil
}

// DeleteItemByName removes every item with the given name in the account's
// scope.
func (s *inventoryService) DeleteItemByName(ctx context.Context, accountID uint, name string) error {
	affected, err := s.repo.DeleteByName(ctx, accountID, name)
	if err != nil {
		return fmt.Errorf("delete item by name: %w", err)
	}
	if affected == 0 {
		return errors.ErrItemNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(accountID))
	return nil
}

// fetchItems loads raw items with a short-lived cache in front of the store.
// Only raw rows are cached; freshness is always recomputed per request.
func (s *inventoryService) fetchItems(ctx context.Context, accountID uint) ([]model.InventoryItem, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(accountID)); data != nil {
		var cached []model.InventoryItem
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(accountID), payload, inventoryCacheTTL)
	}
	return items, nil
}
