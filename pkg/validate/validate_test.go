package validate_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/catalogpatch/pkg/validate"
)

type productInput struct {
	SKU    string          `json:"sku"     validate:"required,max=64"`
	Name   string          `json:"name"    validate:"required,max=255"`
	TypeID string          `json:"type_id" validate:"required,in=simple|virtual"`
	URLKey string          `json:"url_key" validate:"nullable,slug"`
	Price  decimal.Decimal `json:"price"   validate:"gte=0"`
	Weight float64         `json:"weight"  validate:"gte=0,lte=1000"`
}

func validInput() productInput {
	return productInput{
		SKU:    "sample-product",
		Name:   "Sample Product",
		TypeID: "simple",
		URLKey: "sample-product",
		Price:  decimal.RequireFromString("9.99"),
		Weight: 1.5,
	}
}

func TestValidInput(t *testing.T) {
	if errs := validate.Struct(validInput()); validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})
	if _, ok := errs["sku"]; !ok {
		t.Error("expected sku to be required")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["url_key"]; ok {
		t.Error("expected empty nullable url_key to be skipped")
	}
}

func TestMaxLength(t *testing.T) {
	in := validInput()
	in.SKU = strings.Repeat("x", 65)
	errs := validate.Struct(in)
	if _, ok := errs["sku"]; !ok {
		t.Errorf("expected sku length error, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	in := validInput()
	in.TypeID = "bundle"
	if _, ok := validate.Struct(in)["type_id"]; !ok {
		t.Error("expected type_id outside the list to fail")
	}
	in.TypeID = "virtual"
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		t.Errorf("expected virtual to pass, got: %v", errs)
	}
}

func TestSlugRule(t *testing.T) {
	for _, bad := range []string{"Sample Product", "sample--product", "-sample", "sample_product"} {
		in := validInput()
		in.URLKey = bad
		if _, ok := validate.Struct(in)["url_key"]; !ok {
			t.Errorf("expected %q to fail slug rule", bad)
		}
	}
}

func TestDecimalBounds(t *testing.T) {
	in := validInput()
	in.Price = decimal.RequireFromString("-0.01")
	if _, ok := validate.Struct(in)["price"]; !ok {
		t.Error("expected negative decimal price to fail")
	}
}

func TestNumericBounds(t *testing.T) {
	in := validInput()
	in.Weight = 1001
	if _, ok := validate.Struct(in)["weight"]; !ok {
		t.Error("expected weight > 1000 to fail")
	}
}

func TestUnknownRule(t *testing.T) {
	type withMin struct {
		Name string `json:"name" validate:"min=2"`
	}
	if _, ok := validate.Struct(withMin{Name: "x"})["name"]; !ok {
		t.Error("expected unknown rule min to be reported")
	}
}

func TestNonStruct(t *testing.T) {
	if errs := validate.Struct("not a struct"); validate.HasErrors(errs) {
		t.Errorf("expected no errors for non-struct, got: %v", errs)
	}
}
