package repository

import (
	"context"
	"errors"

	"filesmanager/internal/model"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// FileRepository persists FileNode records. It holds no access rules and no
// hierarchy validation; callers decide who may see or change what.
type FileRepository interface {
	// Create inserts a node and returns it with the identifier assigned by the store.
	Create(ctx context.Context, node *model.FileNode) (*model.FileNode, error)

	// FindByID returns a node including its blob reference, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.FileNode, error)

	// ListByParent returns the direct children of parent owned by ownerID in
	// insertion order. Blob references are not selected.
	ListByParent(ctx context.Context, ownerID string, parent model.ParentRef, pq PageQuery) ([]model.FileNode, error)

	// UpdateVisibility sets is_public and returns the updated node, or ErrNotFound.
	UpdateVisibility(ctx context.Context, id string, isPublic bool) (*model.FileNode, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}
