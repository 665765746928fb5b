package ports

import (
	"context"

	"github.com/aretw0/mamdani/pkg/schema"
)

// DocumentLoader defines how the engine retrieves its pipeline document.
// This allows the source (file, memory, remote) to be decoupled from compilation.
type DocumentLoader interface {
	// Load returns a freshly decoded document. Callers may mutate the result.
	Load(ctx context.Context) (*schema.Document, error)
}

// Watchable defines an interface for loaders that can notify about source changes.
// This is typically used for hot-reload in long running servers.
type Watchable interface {
	// Watch returns a channel that is signaled when the underlying document changes.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
