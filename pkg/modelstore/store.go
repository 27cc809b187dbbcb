package modelstore

import (
	"context"
	"fmt"
	"os"
)

// Store fetches a serialized artifact from wherever it lives. Fetching
// happens once at startup; the pipeline itself never touches a store.
type Store interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// LocalStore reads an artifact from the filesystem.
type LocalStore struct {
	Path string
}

// Fetch reads the artifact file into memory.
func (s LocalStore) Fetch(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact %s: %w", s.Path, err)
	}
	return data, nil
}
