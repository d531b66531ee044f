package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocal(t *testing.T) {
	_, err := NewLocal("")
	assert.Error(t, err)

	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestLocalStorage_PutGetDelete(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "files_manager")
	s, err := NewLocal(root)
	require.NoError(t, err)
	ctx := context.Background()

	// root is created on demand, and a second Put into an existing root is fine
	info, err := s.Put(ctx, "k1", strings.NewReader("hello"), PutObjectOptions{Size: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size)
	_, err = s.Put(ctx, "k2", strings.NewReader("world"), PutObjectOptions{Size: 5})
	require.NoError(t, err)

	rc, got, err := s.Get(ctx, "k1")
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, "hello", string(b))
	assert.Equal(t, int64(5), got.Size)

	require.NoError(t, s.Delete(ctx, "k1"))
	_, _, err = s.Get(ctx, "k1")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	// deleting twice is not an error
	assert.NoError(t, s.Delete(ctx, "k1"))
}

func TestLocalStorage_GetMissing(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocal(root)
	require.NoError(t, err)
	ctx := context.Background()

	_, _, err = s.Get(ctx, "never-written")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	_, err = s.Put(ctx, "k", strings.NewReader("x"), PutObjectOptions{Size: 1})
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(root, "k")))

	_, _, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Put(ctx, "../outside", strings.NewReader("x"), PutObjectOptions{Size: 1})
	assert.Error(t, err)

	_, _, err = s.Get(ctx, "../../etc/passwd")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
