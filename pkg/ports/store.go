package ports

import (
	"context"

	"github.com/plin1112/mcell/pkg/domain"
)

// SiteStore persists descriptors of validated release sites so that tooling
// and other workers can inspect the catalog of a run.
type SiteStore interface {
	// Save persists the record under record.Name, replacing any previous one.
	Save(ctx context.Context, record domain.SiteRecord) error

	// Load retrieves a record by site name.
	// Returns domain.ErrSiteNotFound if the site does not exist.
	Load(ctx context.Context, name string) (*domain.SiteRecord, error)

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of every stored site.
	List(ctx context.Context) ([]string, error)

	// Find returns the records matching filter, sorted by name.
	Find(ctx context.Context, filter domain.SiteFilter) ([]domain.SiteRecord, error)
}
