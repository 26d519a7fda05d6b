// Package patch applies and tracks one-time schema and data patches.
//
// Patches are registered by name on a Registry and applied by a Runner,
// which records every applied patch in the patch_list table so it never
// runs twice:
//
//	reg := patch.NewRegistry()
//	reg.RegisterSchema("catalog/schema/create_catalog_tables", &CreateCatalogTables{db: db})
//	reg.RegisterData("catalog/data/add_new_product", addNewProduct)
//
//	summary, err := patch.NewRunner(db, reg, events).Apply(ctx)
//
// Schema patches always run before data patches. Within a kind, a patch
// runs after everything named by its Dependencies, otherwise in
// registration order.
package patch

import (
	"context"
	"fmt"
	"time"
)

// Kind separates patches that change the schema from patches that change
// data.
type Kind string

const (
	KindSchema Kind = "schema"
	KindData   Kind = "data"
)

// Patch is a one-time change to the database.
type Patch interface {
	// Apply performs the change. It is called at most once per database
	// unless the patch is reverted.
	Apply(ctx context.Context) error
	// Dependencies names the patches that must be applied first.
	Dependencies() []string
	// Aliases names the patch used to be registered under. A patch whose
	// alias is recorded counts as applied.
	Aliases() []string
}

// Revertable is implemented by patches that can be undone.
type Revertable interface {
	Revert(ctx context.Context) error
}

// Record is a row of the tracking table.
type Record struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"uniqueIndex;size:255;not null"`
	Kind      Kind      `gorm:"size:16;not null"`
	Batch     int       `gorm:"not null;index"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

func (Record) TableName() string { return "patch_list" }

type entry struct {
	name  string
	kind  Kind
	patch Patch
}

// Registry holds patches in registration order. It is not safe for
// concurrent registration; wire it up before running.
type Registry struct {
	entries []entry
	index   map[string]int
}

func NewRegistry() *Registry {
	return &Registry{index: map[string]int{}}
}

// RegisterSchema adds a schema patch. It panics on an empty or duplicate
// name.
func (r *Registry) RegisterSchema(name string, p Patch) {
	r.register(name, KindSchema, p)
}

// RegisterData adds a data patch. It panics on an empty or duplicate name.
func (r *Registry) RegisterData(name string, p Patch) {
	r.register(name, KindData, p)
}

func (r *Registry) register(name string, kind Kind, p Patch) {
	if name == "" {
		panic("patch: register with empty name")
	}
	if p == nil {
		panic(fmt.Sprintf("patch: register %s: nil patch", name))
	}
	if _, dup := r.index[name]; dup {
		panic(fmt.Sprintf("patch: %s registered twice", name))
	}

	r.index[name] = len(r.entries)
	r.entries = append(r.entries, entry{name: name, kind: kind, patch: p})
}

// Names returns the registered patch names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

func (r *Registry) lookup(name string) (entry, bool) {
	i, ok := r.index[name]
	if !ok {
		return entry{}, false
	}
	return r.entries[i], true
}
