package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"smeta/internal/usecase/interfaces"
)

// DocumentFileRepository keeps each slot in <dir>/<slot>.json. Writes go
// through a temporary file and a rename so a reader never sees half a
// document.
type DocumentFileRepository struct {
	dir string
}

var _ interfaces.IDocumentRepository = (*DocumentFileRepository)(nil)

func NewDocumentFileRepository(dir string) *DocumentFileRepository {
	return &DocumentFileRepository{dir: dir}
}

func (r *DocumentFileRepository) path(slot string) string {
	return filepath.Join(r.dir, slot+".json")
}

func (r *DocumentFileRepository) Load(_ context.Context, slot string) ([]byte, error) {
	raw, err := os.ReadFile(r.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (r *DocumentFileRepository) Save(ctx context.Context, slot string, document []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(r.dir, slot+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(document); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path(slot))
}
