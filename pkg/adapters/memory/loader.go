package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/aretw0/mamdani/pkg/schema"
)

// Loader implements ports.DocumentLoader over an in-process document.
// Safe for concurrent use.
type Loader struct {
	mu  sync.RWMutex
	doc *schema.Document
}

// NewLoader creates a loader serving a copy of doc.
func NewLoader(doc *schema.Document) *Loader {
	l := &Loader{}
	l.Set(doc)
	return l
}

// NewLoaderFromBytes decodes raw data in the given format.
// This improves DX for tests that keep documents inline.
func NewLoaderFromBytes(data []byte, format schema.Format) (*Loader, error) {
	doc, err := schema.Decode(data, format)
	if err != nil {
		return nil, err
	}
	return NewLoader(doc), nil
}

// Set replaces the served document.
func (l *Loader) Set(doc *schema.Document) {
	var copied *schema.Document
	if doc != nil {
		copied = doc.Clone()
	}
	l.mu.Lock()
	l.doc = copied
	l.mu.Unlock()
}

// Load returns a copy of the current document.
func (l *Loader) Load(ctx context.Context) (*schema.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.doc == nil {
		return nil, errors.New("memory loader: no document")
	}
	return l.doc.Clone(), nil
}
