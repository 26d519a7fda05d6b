package patch

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalogpatch/pkg/collection"
	"github.com/shashiranjanraj/catalogpatch/pkg/event"
	"github.com/shashiranjanraj/catalogpatch/pkg/logger"
)

// Summary describes what a Runner call did.
type Summary struct {
	Batch int
	// Applied lists patches whose Apply ran, in order.
	Applied []string
	// Aliased lists patches recorded without running because one of their
	// aliases was already recorded.
	Aliased []string
	// Reverted lists patches whose Revert ran, in order.
	Reverted []string
	// Skipped lists recorded patches that could not be reverted.
	Skipped []string
}

// Status is the state of one registered patch.
type Status struct {
	Name      string
	Kind      Kind
	Applied   bool
	Batch     int
	AppliedAt time.Time
}

// Runner applies, reverts and reports registered patches.
type Runner struct {
	db     *gorm.DB
	reg    *Registry
	events *event.Dispatcher
	out    io.Writer
}

func NewRunner(db *gorm.DB, reg *Registry, events *event.Dispatcher) *Runner {
	return &Runner{db: db, reg: reg, events: events, out: io.Discard}
}

// SetOutput makes the runner print progress lines to w.
func (r *Runner) SetOutput(w io.Writer) {
	r.out = w
}

// EnsureTable creates the tracking table if it does not exist.
func (r *Runner) EnsureTable(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&Record{})
}

// Pending returns the names of patches that are neither recorded nor
// covered by a recorded alias, in the order Apply would run them.
func (r *Runner) Pending(ctx context.Context) ([]string, error) {
	if err := r.EnsureTable(ctx); err != nil {
		return nil, fmt.Errorf("patch: ensure table: %w", err)
	}

	applied, err := r.appliedNames(ctx)
	if err != nil {
		return nil, err
	}

	pending, aliased := r.split(applied)
	ordered, err := plan(r.reg, pending, applied)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(aliased)+len(ordered))
	for _, e := range aliased {
		names = append(names, e.name)
	}
	for _, e := range ordered {
		names = append(names, e.name)
	}
	return names, nil
}

// Apply runs every pending patch in a single batch. It stops at the first
// failing patch; patches applied before it stay recorded.
func (r *Runner) Apply(ctx context.Context) (Summary, error) {
	var summary Summary

	if err := r.EnsureTable(ctx); err != nil {
		return summary, fmt.Errorf("patch: ensure table: %w", err)
	}

	applied, err := r.appliedNames(ctx)
	if err != nil {
		return summary, err
	}

	pending, aliased := r.split(applied)
	ordered, err := plan(r.reg, pending, applied)
	if err != nil {
		return summary, err
	}

	if len(ordered) == 0 && len(aliased) == 0 {
		logger.WithCtx(ctx).Info("patch: nothing to apply")
		fmt.Fprintln(r.out, "Nothing to apply.")
		return summary, nil
	}

	batch, err := r.nextBatch(ctx)
	if err != nil {
		return summary, err
	}
	summary.Batch = batch

	for _, e := range aliased {
		if err := r.record(ctx, e, batch); err != nil {
			return summary, err
		}
		logger.WithCtx(ctx).Info("patch: recorded via alias", "name", e.name)
		fmt.Fprintf(r.out, "  = Aliased:  %s\n", e.name)
		summary.Aliased = append(summary.Aliased, e.name)
	}

	for _, e := range ordered {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("patch: %s: %w", e.name, err)
		}

		fmt.Fprintf(r.out, "  ▶ Applying: %s\n", e.name)
		if err := r.apply(ctx, e); err != nil {
			fmt.Fprintf(r.out, "  ✗ Failed:   %s\n", e.name)
			return summary, err
		}
		if err := r.record(ctx, e, batch); err != nil {
			return summary, err
		}
		fmt.Fprintf(r.out, "  ✅ Applied:  %s\n", e.name)
		summary.Applied = append(summary.Applied, e.name)
	}

	logger.WithCtx(ctx).Info("patch: done", "applied", len(summary.Applied), "aliased", len(summary.Aliased), "batch", batch)
	return summary, nil
}

func (r *Runner) apply(ctx context.Context, e entry) error {
	log := logger.WithCtx(ctx).With("patch", e.name, "kind", string(e.kind))
	log.Info("patch: applying")

	start := time.Now()
	err := e.patch.Apply(logger.InjectLogger(ctx, log))
	payload := event.PatchPayload{Name: e.name, Kind: string(e.kind), Duration: time.Since(start), Err: err}

	if err != nil {
		log.Error("patch: failed", "error", err, "duration", payload.Duration)
		r.events.Fire(ctx, event.PatchFailed, payload)
		return fmt.Errorf("patch: %s apply: %w", e.name, err)
	}

	log.Info("patch: applied", "duration", payload.Duration)
	r.events.Fire(ctx, event.PatchApplied, payload)
	return nil
}

// Revert undoes the most recent batch in reverse order. Patches that do not
// implement Revertable are left recorded and reported in Summary.Skipped.
func (r *Runner) Revert(ctx context.Context) (Summary, error) {
	var summary Summary

	if err := r.EnsureTable(ctx); err != nil {
		return summary, fmt.Errorf("patch: ensure table: %w", err)
	}

	batch, err := r.nextBatch(ctx)
	if err != nil {
		return summary, err
	}
	batch--
	if batch == 0 {
		fmt.Fprintln(r.out, "Nothing to revert.")
		return summary, nil
	}
	summary.Batch = batch

	var records []Record
	err = r.db.WithContext(ctx).
		Where("batch = ?", batch).
		Order("id desc").
		Find(&records).Error
	if err != nil {
		return summary, fmt.Errorf("patch: load batch %d: %w", batch, err)
	}

	for _, rec := range records {
		e, ok := r.reg.lookup(rec.Name)
		if !ok {
			return summary, fmt.Errorf("patch: cannot revert %s: not registered", rec.Name)
		}

		rv, ok := e.patch.(Revertable)
		if !ok {
			logger.WithCtx(ctx).Warn("patch: not revertable, skipping", "name", rec.Name)
			fmt.Fprintf(r.out, "  - Skipped:  %s (not revertable)\n", rec.Name)
			summary.Skipped = append(summary.Skipped, rec.Name)
			continue
		}

		fmt.Fprintf(r.out, "  ◀ Reverting: %s\n", rec.Name)
		log := logger.WithCtx(ctx).With("patch", rec.Name)
		if err := rv.Revert(logger.InjectLogger(ctx, log)); err != nil {
			return summary, fmt.Errorf("patch: %s revert: %w", rec.Name, err)
		}

		if err := r.db.WithContext(ctx).Delete(&rec).Error; err != nil {
			return summary, fmt.Errorf("patch: forget %s: %w", rec.Name, err)
		}

		log.Info("patch: reverted")
		fmt.Fprintf(r.out, "  ✅ Reverted: %s\n", rec.Name)
		summary.Reverted = append(summary.Reverted, rec.Name)
	}

	return summary, nil
}

// Status reports every registered patch in registration order.
func (r *Runner) Status(ctx context.Context) ([]Status, error) {
	if err := r.EnsureTable(ctx); err != nil {
		return nil, fmt.Errorf("patch: ensure table: %w", err)
	}

	var records []Record
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("patch: load records: %w", err)
	}

	byName := collection.KeyBy(records, func(rec Record) string { return rec.Name })

	statuses := make([]Status, len(r.reg.entries))
	for i, e := range r.reg.entries {
		s := Status{Name: e.name, Kind: e.kind}
		if rec, ok := byName[e.name]; ok {
			s.Applied = true
			s.Batch = rec.Batch
			s.AppliedAt = rec.AppliedAt
		}
		statuses[i] = s
	}
	return statuses, nil
}

func (r *Runner) appliedNames(ctx context.Context) (map[string]bool, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&Record{}).Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("patch: load records: %w", err)
	}

	applied := make(map[string]bool, len(names))
	for _, n := range names {
		applied[n] = true
	}
	return applied, nil
}

// split separates unrecorded entries into those that must run and those
// already covered by a recorded alias.
func (r *Runner) split(applied map[string]bool) (pending, aliased []entry) {
	for _, e := range r.reg.entries {
		if applied[e.name] {
			continue
		}
		if slices.ContainsFunc(e.patch.Aliases(), func(a string) bool { return applied[a] }) {
			aliased = append(aliased, e)
			continue
		}
		pending = append(pending, e)
	}
	return pending, aliased
}

func (r *Runner) record(ctx context.Context, e entry, batch int) error {
	rec := Record{Name: e.name, Kind: e.kind, Batch: batch}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("patch: record %s: %w", e.name, err)
	}
	return nil
}

func (r *Runner) nextBatch(ctx context.Context) (int, error) {
	var batch int
	err := r.db.WithContext(ctx).
		Model(&Record{}).
		Select("COALESCE(MAX(batch), 0) + 1").
		Scan(&batch).Error
	if err != nil {
		return 0, fmt.Errorf("patch: next batch: %w", err)
	}
	return batch, nil
}
