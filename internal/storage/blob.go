package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"

	"github.com/google/uuid"
)

const defaultContentType = "application/octet-stream"

// BlobStore stores the content of file and image nodes under generated,
// collision-free names. Handles are opaque and never shown to clients.
type BlobStore struct {
	backend Storage
}

func NewBlobStore(backend Storage) *BlobStore {
	return &BlobStore{backend: backend}
}

// Store writes data under a fresh name and returns its handle.
func (b *BlobStore) Store(ctx context.Context, data []byte) (string, error) {
	handle := uuid.NewString()
	_, err := b.backend.Put(ctx, handle, bytes.NewReader(data), PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: defaultContentType,
	})
	if err != nil {
		return "", fmt.Errorf("store blob: %w", err)
	}
	return handle, nil
}

// Retrieve reads a whole blob. A missing blob yields ErrObjectNotFound.
func (b *BlobStore) Retrieve(ctx context.Context, handle string) ([]byte, error) {
	rc, _, err := b.backend.Get(ctx, handle)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return data, nil
}

// Delete removes a blob. Used to undo a Store whose metadata never landed.
func (b *BlobStore) Delete(ctx context.Context, handle string) error {
	return b.backend.Delete(ctx, handle)
}

// ContentType derives a MIME type from the declared file name only.
func ContentType(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return defaultContentType
}
