package models

import "time"

// Category is a catalog category.
type Category struct {
	ID        uint      `gorm:"column:entity_id;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;index"     json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string { return "catalog_category_entity" }

// CategoryProduct links a product to a category.
type CategoryProduct struct {
	EntityID   uint `gorm:"column:entity_id;primaryKey"                      json:"id"`
	CategoryID uint `gorm:"not null;uniqueIndex:idx_category_product,priority:1" json:"category_id"`
	ProductID  uint `gorm:"not null;uniqueIndex:idx_category_product,priority:2;index" json:"product_id"`
	Position   int  `gorm:"not null;default:0"                               json:"position"`
}

func (CategoryProduct) TableName() string { return "catalog_category_product" }
