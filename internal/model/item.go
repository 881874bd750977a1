package model

import "time"

// Units lists the accepted inventory units.
var Units = []string{"kg", "g", "liters", "ml", "pieces", "others"}

// ExpiryStatus is the freshness classification derived from an item's expiry
// date at read time. It is never persisted.
type ExpiryStatus string

const (
	StatusExpired      ExpiryStatus = "expired"
	StatusExpiringSoon ExpiryStatus = "expiring_soon"
	StatusGood         ExpiryStatus = "good"
)

// InventoryItem is a perishable good tracked per account. ItemID is assigned
// per account (max existing + 1), so items are only addressable together with
// their owning account.
type InventoryItem struct {
	AccountID  uint      `json:"-" gorm:"primaryKey;autoIncrement:false"`
	ItemID     uint      `json:"item_id" gorm:"primaryKey;autoIncrement:false"`
	Name       string    `json:"name" gorm:"column:item_name;size:255;not null;index"`
	Quantity   float64   `json:"quantity" gorm:"not null"`
	Unit       string    `json:"unit" gorm:"size:32;not null"`
	ExpiryDate time.Time `json:"expiry_date" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName keeps the historical table name.
func (InventoryItem) TableName() string { return "inventory" }

// ItemView is an InventoryItem annotated with its derived freshness status
// for display.
type ItemView struct {
	ItemID       uint         `json:"item_id"`
	Name         string       `json:"name"`
	Quantity     float64      `json:"quantity"`
	Unit         string       `json:"unit"`
	ExpiryDate   string       `json:"expiry_date"` // YYYY-MM-DD
	Status       ExpiryStatus `json:"status"`
	DaysToExpiry int          `json:"days_to_expiry"`
}
