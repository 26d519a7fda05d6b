// Package patches contains the schema and data patches shipped with the
// catalog. Register wires them into a patch.Registry; the patch runner
// decides which of them still have to run.
package patches

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalogpatch/app/repositories"
	"github.com/shashiranjanraj/catalogpatch/pkg/appstate"
	"github.com/shashiranjanraj/catalogpatch/pkg/event"
	"github.com/shashiranjanraj/catalogpatch/pkg/patch"
)

// Patch names as recorded in patch_list.
const (
	NameCreateCatalogTables    = "catalog/schema/create_catalog_tables"
	NameAddDefaultAttributeSet = "catalog/schema/add_default_attribute_set"
	NameAddDefaultSource       = "inventory/data/add_default_source"
	NameAddNewProduct          = "catalog/data/add_new_product"
)

// Deps are the shared collaborators of the shipped patches.
type Deps struct {
	DB     *gorm.DB
	State  *appstate.State
	Events *event.Dispatcher
}

// Register adds every shipped patch to reg.
func Register(reg *patch.Registry, deps Deps) {
	reg.RegisterSchema(NameCreateCatalogTables, NewCreateCatalogTables(deps.DB))
	reg.RegisterSchema(NameAddDefaultAttributeSet, NewAddDefaultAttributeSet(deps.DB))

	reg.RegisterData(NameAddDefaultSource, NewAddDefaultSource(repositories.NewSourceRepository(deps.DB)))

	products := repositories.NewProductRepository(deps.DB, deps.Events)
	categories := repositories.NewCategoryRepository(deps.DB)
	reg.RegisterData(NameAddNewProduct, NewAddNewProduct(
		products,
		repositories.NewAttributeSetRepository(deps.DB),
		categories,
		repositories.NewSourceItemsSave(deps.DB, deps.Events),
		repositories.NewCategoryLinkManagement(deps.DB, products, categories, deps.Events),
		deps.State,
	))
}
