package models

import "github.com/shopspring/decimal"

// DefaultSourceCode is the inventory source every installation starts with.
const DefaultSourceCode = "default"

// Source is a physical or logical inventory location.
type Source struct {
	SourceCode string `gorm:"column:source_code;primaryKey;size:255" json:"source_code"`
	Name       string `gorm:"size:255;not null"                     json:"name"`
	Enabled    bool   `gorm:"not null"                              json:"enabled"`
}

func (Source) TableName() string { return "inventory_source" }

// SourceItemStatus is the stock status of a SKU at a source.
type SourceItemStatus uint8

const (
	SourceItemOutOfStock SourceItemStatus = 0
	SourceItemInStock    SourceItemStatus = 1
)

func (s SourceItemStatus) IsValid() bool {
	return s == SourceItemOutOfStock || s == SourceItemInStock
}

// SourceItem is the quantity of a SKU at a source. (SourceCode, SKU) is
// unique.
type SourceItem struct {
	SourceItemID uint             `gorm:"column:source_item_id;primaryKey;autoIncrement"            json:"source_item_id,omitempty"`
	SourceCode   string           `gorm:"column:source_code;size:255;not null;uniqueIndex:idx_source_sku" json:"source_code" validate:"required,max=255"`
	SKU          string           `gorm:"column:sku;size:64;not null;uniqueIndex:idx_source_sku"   json:"sku"         validate:"required,max=64"`
	Quantity     decimal.Decimal  `gorm:"column:quantity;type:decimal(12,4);not null;default:0"    json:"quantity"    validate:"gte=0,lte=99999999.9999"`
	Status       SourceItemStatus `gorm:"column:status;not null;default:0"                         json:"status"`
}

func (SourceItem) TableName() string { return "inventory_source_item" }
