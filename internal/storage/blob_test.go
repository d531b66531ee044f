package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"filesmanager/internal/storage"
	storeMocks "filesmanager/internal/storage/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBlobStore_RoundTrip(t *testing.T) {
	backend, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	blobs := storage.NewBlobStore(backend)
	ctx := context.Background()

	h1, err := blobs.Store(ctx, []byte("hello"))
	require.NoError(t, err)
	h2, err := blobs.Store(ctx, []byte("hello"))
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
	_, err = uuid.Parse(h1)
	assert.NoError(t, err)

	data, err := blobs.Retrieve(ctx, h1)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	require.NoError(t, blobs.Delete(ctx, h1))
	_, err = blobs.Retrieve(ctx, h1)
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

func TestBlobStore_BackendErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("store failure is wrapped", func(t *testing.T) {
		m := new(storeMocks.MockStorage)
		m.On("Put", ctx, mock.Anything, mock.Anything, mock.MatchedBy(func(o storage.PutObjectOptions) bool {
			return o.Size == 3
		})).Return(storage.ObjectInfo{}, errors.New("disk full"))

		_, err := storage.NewBlobStore(m).Store(ctx, []byte("abc"))

		assert.EqualError(t, err, "store blob: disk full")
		m.AssertExpectations(t)
	})

	t.Run("retrieve passes not found through", func(t *testing.T) {
		m := new(storeMocks.MockStorage)
		m.On("Get", ctx, "gone").Return(nil, storage.ObjectInfo{}, storage.ErrObjectNotFound)

		_, err := storage.NewBlobStore(m).Retrieve(ctx, "gone")

		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
		m.AssertExpectations(t)
	})

	t.Run("retrieve reads the stream", func(t *testing.T) {
		m := new(storeMocks.MockStorage)
		m.On("Get", ctx, "h").Return(io.NopCloser(strings.NewReader("payload")), storage.ObjectInfo{Key: "h"}, nil)

		data, err := storage.NewBlobStore(m).Retrieve(ctx, "h")

		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))
	})
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"a.txt":       "text/plain; charset=utf-8",
		"photo.png":   "image/png",
		"page.html":   "text/html; charset=utf-8",
		"noextension": "application/octet-stream",
		"weird.zzzq":  "application/octet-stream",
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, storage.ContentType(name))
		})
	}
}
