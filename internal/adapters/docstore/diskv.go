package docstore

import (
	"context"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
)

// documentKey is the single key the whole journal lives under, shared by
// every backend.
const documentKey = "zenhabit_entries"

// DiskvStore is the default persistence backend: one JSON document in a
// local diskv directory.
type DiskvStore struct {
	d *diskv.Diskv
}

var _ domain.DocumentStore = (*DiskvStore)(nil)

func NewDiskvStore(basePath string) *DiskvStore {
	return &DiskvStore{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
	}
}

func (s *DiskvStore) Read(ctx context.Context) ([]byte, error) {
	if !s.d.Has(documentKey) {
		return nil, domain.ErrDocumentNotFound
	}

	raw, err := s.d.Read(documentKey)
	if err != nil {
		return nil, fmt.Errorf("read journal document: %w", err)
	}
	return raw, nil
}

func (s *DiskvStore) Write(ctx context.Context, document []byte) error {
	if err := s.d.Write(documentKey, document); err != nil {
		return fmt.Errorf("write journal document: %w", err)
	}
	return nil
}
