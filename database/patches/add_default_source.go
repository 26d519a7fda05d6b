package patches

import (
	"context"

	"github.com/shashiranjanraj/catalogpatch/app/models"
)

// SourceProvider creates the default inventory source when it is missing.
type SourceProvider interface {
	EnsureDefaultSource(ctx context.Context) (*models.Source, error)
}

// AddDefaultSource creates the "default" inventory source that stock is
// assigned to unless a product says otherwise.
type AddDefaultSource struct {
	sources SourceProvider
}

func NewAddDefaultSource(sources SourceProvider) *AddDefaultSource {
	return &AddDefaultSource{sources: sources}
}

func (p *AddDefaultSource) Apply(ctx context.Context) error {
	_, err := p.sources.EnsureDefaultSource(ctx)
	return err
}

func (p *AddDefaultSource) Dependencies() []string { return []string{} }

func (p *AddDefaultSource) Aliases() []string { return []string{} }
