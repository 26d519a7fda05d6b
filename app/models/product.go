package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product type identifiers.
const (
	TypeSimple       = "simple"
	TypeVirtual      = "virtual"
	TypeConfigurable = "configurable"
	TypeBundle       = "bundle"
	TypeGrouped      = "grouped"
)

// Visibility controls where a product is listed in the storefront.
type Visibility uint8

const (
	VisibilityNotVisible Visibility = 1
	VisibilityInCatalog  Visibility = 2
	VisibilityInSearch   Visibility = 3
	VisibilityBoth       Visibility = 4
)

func (v Visibility) IsValid() bool {
	return v >= VisibilityNotVisible && v <= VisibilityBoth
}

// Status enables or disables a product.
type Status uint8

const (
	StatusEnabled  Status = 1
	StatusDisabled Status = 2
)

func (s Status) IsValid() bool {
	return s == StatusEnabled || s == StatusDisabled
}

// Product is a catalog product. SKU and URLKey are unique.
type Product struct {
	ID             uint            `gorm:"column:entity_id;primaryKey"                json:"id"`
	SKU            string          `gorm:"column:sku;size:64;uniqueIndex;not null"    json:"sku"              validate:"required,max=64"`
	TypeID         string          `gorm:"column:type_id;size:32;not null"            json:"type_id"          validate:"required,in=simple|virtual|configurable|bundle|grouped"`
	AttributeSetID uint            `gorm:"column:attribute_set_id;not null;index"     json:"attribute_set_id" validate:"required"`
	Name           string          `gorm:"size:255;not null"                          json:"name"             validate:"required,max=255"`
	Price          decimal.Decimal `gorm:"type:decimal(12,4);not null"                json:"price"            validate:"gte=0,lte=99999999.9999"`
	URLKey         string          `gorm:"column:url_key;size:255;uniqueIndex"        json:"url_key"          validate:"nullable,slug,max=255"`
	Visibility     Visibility      `gorm:"not null"                                   json:"visibility"`
	Status         Status          `gorm:"not null"                                   json:"status"`
	StockItem      *StockItem      `gorm:"foreignKey:ProductID;references:ID"         json:"stock_item,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (Product) TableName() string { return "catalog_product_entity" }

// StockItem holds the legacy per-product stock flags.
type StockItem struct {
	ItemID               uint `gorm:"column:item_id;primaryKey"      json:"item_id"`
	ProductID            uint `gorm:"uniqueIndex;not null"           json:"product_id"`
	UseConfigManageStock bool `gorm:"not null"                       json:"use_config_manage_stock"`
	IsQtyDecimal         bool `gorm:"not null"                       json:"is_qty_decimal"`
	IsInStock            bool `gorm:"not null"                       json:"is_in_stock"`
}

func (StockItem) TableName() string { return "cataloginventory_stock_item" }
