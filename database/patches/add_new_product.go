package patches

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/catalogpatch/app/models"
	"github.com/shashiranjanraj/catalogpatch/pkg/appstate"
	"github.com/shashiranjanraj/catalogpatch/pkg/logger"
)

const (
	sampleSKU  = "sample-product"
	sampleName = "Sample Product"
)

var (
	samplePrice      = decimal.RequireFromString("9.99")
	sampleQuantity   = decimal.NewFromInt(100)
	sampleCategories = []string{"Men", "Women"}
)

// ProductRepository looks products up and persists them.
type ProductRepository interface {
	IDBySKU(ctx context.Context, sku string) (uint, error)
	Save(ctx context.Context, p *models.Product) (*models.Product, error)
}

// AttributeSetProvider resolves the default attribute set of an entity type.
type AttributeSetProvider interface {
	DefaultAttributeSetID(ctx context.Context, entityType string) (uint, error)
}

// CategoryFinder resolves category IDs by exact name.
type CategoryFinder interface {
	IDsByNames(ctx context.Context, names []string) ([]uint, error)
}

// SourceItemsSaver persists source items.
type SourceItemsSaver interface {
	Execute(ctx context.Context, items []models.SourceItem) error
}

// CategoryLinker assigns a product to categories.
type CategoryLinker interface {
	AssignProductToCategories(ctx context.Context, sku string, categoryIDs []uint) error
}

// AreaEmulator runs a callback inside an execution area.
type AreaEmulator interface {
	EmulateAreaCode(ctx context.Context, area string, fn func(context.Context) error) error
}

// AddNewProduct creates the sample product, stocks it at the default source
// and links it to the Men and Women categories.
//
// The product is only created when no product with its SKU exists. If an
// earlier run saved the product and then failed, running again does not add
// the missing source item or category links.
type AddNewProduct struct {
	products      ProductRepository
	attributeSets AttributeSetProvider
	categories    CategoryFinder
	sourceItems   SourceItemsSaver
	links         CategoryLinker
	area          AreaEmulator
}

func NewAddNewProduct(
	products ProductRepository,
	attributeSets AttributeSetProvider,
	categories CategoryFinder,
	sourceItems SourceItemsSaver,
	links CategoryLinker,
	area AreaEmulator,
) *AddNewProduct {
	return &AddNewProduct{
		products:      products,
		attributeSets: attributeSets,
		categories:    categories,
		sourceItems:   sourceItems,
		links:         links,
		area:          area,
	}
}

// Apply runs the patch in the admin area. Collaborator errors are returned
// as they are.
func (p *AddNewProduct) Apply(ctx context.Context) error {
	return p.area.EmulateAreaCode(ctx, appstate.AreaAdminhtml, p.execute)
}

func (p *AddNewProduct) execute(ctx context.Context) error {
	log := logger.WithCtx(ctx)

	id, err := p.products.IDBySKU(ctx, sampleSKU)
	if err != nil {
		return err
	}
	if id != 0 {
		log.Info("product already exists, skipping", "sku", sampleSKU, "id", id)
		return nil
	}

	setID, err := p.attributeSets.DefaultAttributeSetID(ctx, models.EntityTypeProduct)
	if err != nil {
		return err
	}

	product, err := p.products.Save(ctx, &models.Product{
		TypeID:         models.TypeSimple,
		AttributeSetID: setID,
		Name:           sampleName,
		SKU:            sampleSKU,
		Price:          samplePrice,
		URLKey:         sampleSKU,
		Visibility:     models.VisibilityBoth,
		Status:         models.StatusEnabled,
		StockItem: &models.StockItem{
			UseConfigManageStock: true,
			IsQtyDecimal:         false,
			IsInStock:            true,
		},
	})
	if err != nil {
		return err
	}

	if product == nil || product.SKU == "" {
		return nil
	}

	categoryIDs, err := p.categories.IDsByNames(ctx, sampleCategories)
	if err != nil {
		return err
	}

	err = p.sourceItems.Execute(ctx, []models.SourceItem{{
		SourceCode: models.DefaultSourceCode,
		SKU:        product.SKU,
		Quantity:   sampleQuantity,
		Status:     models.SourceItemInStock,
	}})
	if err != nil {
		return err
	}

	return p.links.AssignProductToCategories(ctx, product.SKU, categoryIDs)
}

func (p *AddNewProduct) Dependencies() []string { return []string{} }

func (p *AddNewProduct) Aliases() []string { return []string{} }
