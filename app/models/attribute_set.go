package models

// EntityTypeProduct is the entity type of catalog products.
const EntityTypeProduct = "catalog_product"

// AttributeSet groups product attributes. Exactly one set per entity type
// is the default.
type AttributeSet struct {
	ID         uint   `gorm:"column:attribute_set_id;primaryKey" json:"id"`
	EntityType string `gorm:"size:64;not null;index"             json:"entity_type"`
	Name       string `gorm:"size:255;not null"                  json:"name"`
	IsDefault  bool   `gorm:"not null"                           json:"is_default"`
}

func (AttributeSet) TableName() string { return "eav_attribute_set" }
