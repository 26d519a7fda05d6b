// Package models holds the GORM models of the catalog and inventory tables.
package models

// All returns every model in creation order, for AutoMigrate.
func All() []any {
	return []any{
		&AttributeSet{},
		&Product{},
		&StockItem{},
		&Category{},
		&CategoryProduct{},
		&Source{},
		&SourceItem{},
	}
}
