package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentFileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing slot", func(t *testing.T) {
		repo := NewDocumentFileRepository(t.TempDir())
		raw, err := repo.Load(ctx, "nothing")
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("save creates the directory and overwrites", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")
		repo := NewDocumentFileRepository(dir)

		require.NoError(t, repo.Save(ctx, "slot-1", []byte(`{"notes":"a"}`)))
		require.NoError(t, repo.Save(ctx, "slot-1", []byte(`{"notes":"b"}`)))

		raw, err := repo.Load(ctx, "slot-1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"notes":"b"}`, string(raw))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "slot-1.json", entries[0].Name())
	})

	t.Run("slots are independent", func(t *testing.T) {
		repo := NewDocumentFileRepository(t.TempDir())
		require.NoError(t, repo.Save(ctx, "a", []byte("1")))
		require.NoError(t, repo.Save(ctx, "b", []byte("2")))

		raw, _ := repo.Load(ctx, "a")
		assert.Equal(t, "1", string(raw))
	})

	t.Run("cancelled context", func(t *testing.T) {
		repo := NewDocumentFileRepository(t.TempDir())
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, repo.Save(cctx, "a", []byte("1")), context.Canceled)
	})
}
