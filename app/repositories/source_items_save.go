package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/catalogpatch/app/catalogerr"
	"github.com/shashiranjanraj/catalogpatch/app/models"
	"github.com/shashiranjanraj/catalogpatch/pkg/collection"
	"github.com/shashiranjanraj/catalogpatch/pkg/event"
	"github.com/shashiranjanraj/catalogpatch/pkg/logger"
	"github.com/shashiranjanraj/catalogpatch/pkg/validate"
)

// SourceItemsSave persists source items in batches.
type SourceItemsSave struct {
	db     *gorm.DB
	events *event.Dispatcher
}

func NewSourceItemsSave(db *gorm.DB, events *event.Dispatcher) *SourceItemsSave {
	return &SourceItemsSave{db: db, events: events}
}

// Execute validates every item and then upserts the batch on
// (source_code, sku). Nothing is written unless the whole batch is valid.
func (s *SourceItemsSave) Execute(ctx context.Context, items []models.SourceItem) error {
	const op = "SourceItemsSave.Execute"

	if len(items) == 0 {
		return fmt.Errorf("%s: %w", op, &catalogerr.InputError{Field: "source_items", Reason: "[]"})
	}

	if err := s.validate(ctx, items); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "source_code"}, {Name: "sku"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "status"}),
	}).Create(&items).Error
	if err != nil {
		return fmt.Errorf("%s: %w", op, &catalogerr.SaveError{Entity: "source items", Err: err})
	}

	skus := collection.Unique(collection.Map(items, func(i models.SourceItem) string { return i.SKU }))
	logger.WithCtx(ctx).Info("source items saved", "count", len(items), "skus", skus)
	s.events.Fire(ctx, event.SourceItemsSaved, event.SourceItemsPayload{SKUs: skus, Count: len(items)})

	return nil
}

func (s *SourceItemsSave) validate(ctx context.Context, items []models.SourceItem) error {
	codes := collection.Unique(collection.Map(items, func(i models.SourceItem) string { return i.SourceCode }))

	var known []string
	err := s.db.WithContext(ctx).
		Model(&models.Source{}).
		Where("source_code IN ?", codes).
		Pluck("source_code", &known).Error
	if err != nil {
		return err
	}
	sources := collection.Set(known)

	fields := map[string]string{}
	for i, item := range items {
		prefix := fmt.Sprintf("items[%d].", i)

		for field, msg := range validate.Struct(item) {
			fields[prefix+field] = msg
		}
		if !item.Status.IsValid() {
			fields[prefix+"status"] = fmt.Sprintf("The status %d is invalid.", item.Status)
		}
		if item.SourceCode != "" && !sources[item.SourceCode] {
			fields[prefix+"source_code"] = fmt.Sprintf("Source %q does not exist.", item.SourceCode)
		}
	}

	if validate.HasErrors(fields) {
		return &catalogerr.ValidationError{Entity: "source items", Fields: fields}
	}
	return nil
}
