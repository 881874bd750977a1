package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"zerowastechef/internal/model"
)

// InventoryRepository defines inventory persistence operations. Every query
// is scoped by account: item ids restart at 1 per account, so an id alone
// never identifies a row.
type InventoryRepository interface {
	// Create assigns the next per-account item id (max existing + 1) and
	// inserts the record. Both steps run in one transaction so concurrent
	// adds for the same account cannot allocate duplicate ids.
	Create(ctx context.Context, item *model.InventoryItem) error
	ListByAccount(ctx context.Context, accountID uint) ([]model.InventoryItem, error)
	// UpdateItem overwrites quantity and expiry date, returning the number
	// of rows affected.
	UpdateItem(ctx context.Context, accountID, itemID uint, quantity float64, expiry time.Time) (int64, error)
	// DeleteByID removes a single item, returning the number of rows affected.
	DeleteByID(ctx context.Context, accountID, itemID uint) (int64, error)
	// DeleteByName removes every item with the given display name in the
	// account's scope (names are not unique), returning the rows affected.
	DeleteByName(ctx context.Context, accountID uint, name string) (int64, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository builds a GORM-backed repository.
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxID uint
		if err := tx.Model(&model.InventoryItem{}).
			Where("account_id = ?", item.AccountID).
			Select("COALESCE(MAX(item_id), 0)").
			Scan(&maxID).Error; err != nil {
			return err
		}
		item.ItemID = maxID + 1
		return tx.Create(item).Error
	})
}

func (r *inventoryRepository) ListByAccount(ctx context.Context, accountID uint) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("item_id").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, accountID, itemID uint, quantity float64, expiry time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.InventoryItem{}).
		Where("account_id = ? AND item_id = ?", accountID, itemID).
		Updates(map[string]interface{}{
			"quantity":    quantity,
			"expiry_date": expiry,
		})
	return res.RowsAffected, res.Error
}

func (r *inventoryRepository) DeleteByID(ctx context.Context, accountID, itemID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("account_id = ? AND item_id = ?", accountID, itemID).
		Delete(&model.InventoryItem{})
	return res.RowsAffected, res.Error
}

func (r *inventoryRepository) DeleteByName(ctx context.Context, accountID uint, name string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("account_id = ? AND item_name = ?", accountID, name).
		Delete(&model.InventoryItem{})
	return res.RowsAffected, res.Error
}
