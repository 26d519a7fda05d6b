// Package event provides a synchronous event dispatcher.
//
// Repositories and the patch runner fire events after a write succeeds;
// metrics and cache invalidation subscribe to them.
package event

import (
	"context"
	"sync"
	"time"
)

// Name identifies an event.
type Name string

const (
	PatchApplied          Name = "patch.applied"
	PatchFailed           Name = "patch.failed"
	ProductSaved          Name = "catalog.product.saved"
	CategoryLinksAssigned Name = "catalog.category_links.assigned"
	SourceItemsSaved      Name = "inventory.source_items.saved"
)

// PatchPayload accompanies PatchApplied and PatchFailed.
type PatchPayload struct {
	Name     string
	Kind     string
	Duration time.Duration
	Err      error
}

// ProductPayload accompanies ProductSaved.
type ProductPayload struct {
	ID      uint
	SKU     string
	Created bool
}

// CategoryLinksPayload accompanies CategoryLinksAssigned.
type CategoryLinksPayload struct {
	SKU         string
	CategoryIDs []uint
}

// SourceItemsPayload accompanies SourceItemsSaved. Count is the number of
// items written; SKUs holds each distinct SKU once.
type SourceItemsPayload struct {
	SKUs  []string
	Count int
}

// Handler receives an event payload.
type Handler func(ctx context.Context, payload any)

// Dispatcher fans events out to listeners. A nil *Dispatcher is valid and
// drops every event.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Name][]Handler
}

func New() *Dispatcher {
	return &Dispatcher{handlers: map[Name][]Handler{}}
}

// Listen registers a handler for the given event name.
func (d *Dispatcher) Listen(name Name, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = append(d.handlers[name], handler)
}

// Fire dispatches an event synchronously to all registered listeners in
// registration order.
func (d *Dispatcher) Fire(ctx context.Context, name Name, payload any) {
	if d == nil {
		return
	}

	d.mu.RLock()
	hs := make([]Handler, len(d.handlers[name]))
	copy(hs, d.handlers[name])
	d.mu.RUnlock()

	for _, h := range hs {
		h(ctx, payload)
	}
}

// Flush removes all listeners.
func (d *Dispatcher) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = map[Name][]Handler{}
}
