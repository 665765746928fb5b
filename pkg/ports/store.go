package ports

import (
	"context"

	"github.com/aretw0/mamdani/pkg/domain"
)

// RecordStore defines the interface for persisting evaluation records.
type RecordStore interface {
	// Save persists the record under its ID, replacing any previous version.
	Save(ctx context.Context, record *domain.Record) error

	// Load retrieves a record by ID.
	// Returns domain.ErrRecordNotFound if the record does not exist.
	Load(ctx context.Context, id string) (*domain.Record, error)

	// List returns the IDs of the stored records, oldest first.
	List(ctx context.Context) ([]string, error)

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error
}
