package repository

import (
	"context"
	"time"
)

// DocumentStore is the generic record database the ledger runs against:
// named collections of documents with store-assigned ids and audit
// timestamps. Write operations stamp updatedAt (and createdAt on create)
// server-side; callers never set those fields.
type DocumentStore interface {
	// Create inserts a record and returns the assigned document id.
	Create(ctx context.Context, collection string, record interface{}) (string, error)

	// Update applies patch to an existing document. Returns ErrNotFound when
	// no document matches id.
	Update(ctx context.Context, collection, id string, patch interface{}) error

	// Delete removes a document. Returns ErrNotFound when no document
	// matches id.
	Delete(ctx context.Context, collection, id string) error

	// GetAll decodes every document in the collection into out, which must
	// be a pointer to a slice.
	GetAll(ctx context.Context, collection string, out interface{}) error

	// GetByID decodes a single document into out. Returns ErrNotFound when
	// no document matches id.
	GetByID(ctx context.Context, collection, id string, out interface{}) error

	// GetByDateRange decodes documents whose dateField falls within
	// [start, end], most recent first, into out.
	GetByDateRange(ctx context.Context, collection, dateField string, start, end time.Time, out interface{}) error
}
