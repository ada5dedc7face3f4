package domain

import (
	"context"
	"errors"
)

var (
	ErrDocumentNotFound = errors.New("journal document not found")
	ErrPersistence      = errors.New("journal persistence failure")
)

// DocumentStore is the opaque key-value persistence collaborator. The whole
// entry collection lives under a single key as one serialized document,
// read once at startup and fully overwritten on every mutation.
type DocumentStore interface {
	// Read returns the raw serialized collection, or ErrDocumentNotFound
	// when nothing has been written yet.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the stored document wholesale.
	Write(ctx context.Context, document []byte) error
}
