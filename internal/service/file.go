package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"filesmanager/internal/access"
	"filesmanager/internal/model"
	"filesmanager/internal/repository"
	"filesmanager/internal/storage"
)

// PageSize is the fixed window of List.
const PageSize = 20

// CreateFileInput is an upload request after transport decoding.
type CreateFileInput struct {
	Name     string
	Type     string
	ParentID model.ParentRef
	IsPublic bool
	Data     []byte
}

// FileContent is the payload of a content fetch.
type FileContent struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileService owns the file hierarchy: validation on create, read masking,
// paging and visibility changes. requesterID is access.Anonymous when the
// caller has no session.
type FileService interface {
	Create(ctx context.Context, ownerID string, in CreateFileInput) (*model.FileNode, error)
	Get(ctx context.Context, id, requesterID string) (*model.FileNode, error)
	List(ctx context.Context, ownerID string, parent model.ParentRef, page int) ([]model.FileNode, error)
	SetVisibility(ctx context.Context, id, requesterID string, isPublic bool) (*model.FileNode, error)
	Content(ctx context.Context, id, requesterID string) (*FileContent, error)
}

type fileService struct {
	repo  repository.FileRepository
	blobs *storage.BlobStore
}

// NewFileService constructs a new FileService.
func NewFileService(repo repository.FileRepository, blobs *storage.BlobStore) FileService {
	return &fileService{repo: repo, blobs: blobs}
}

// Identifiers are UUIDs; anything else cannot name a stored record.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// lookup fetches a node and hides it unless allow accepts the requester.
func (s *fileService) lookup(ctx context.Context, id, requesterID string, allow func(string, *model.FileNode) bool) (*model.FileNode, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	node, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find file: %w", err)
	}
	if !allow(requesterID, node) {
		return nil, ErrNotFound
	}
	return node, nil
}

func (s *fileService) Create(ctx context.Context, ownerID string, in CreateFileInput) (*model.FileNode, error) {
	if in.Name == "" {
		return nil, ErrMissingName
	}
	kind, ok := model.ParseKind(in.Type)
	if !ok {
		return nil, ErrInvalidKind
	}
	if kind.HasContent() && len(in.Data) == 0 {
		return nil, ErrMissingData
	}

	if !in.ParentID.IsRoot() {
		// A parent the owner cannot read is reported as missing.
		parent, err := s.lookup(ctx, in.ParentID.ID(), ownerID, access.CanRead)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
		if parent.Kind != model.KindFolder {
			return nil, ErrParentNotFolder
		}
	}

	node := &model.FileNode{
		OwnerID:  ownerID,
		Name:     in.Name,
		Kind:     kind,
		ParentID: in.ParentID,
		IsPublic: in.IsPublic,
	}
	if kind.HasContent() {
		handle, err := s.blobs.Store(ctx, in.Data)
		if err != nil {
			return nil, err
		}
		node.BlobRef = handle
	}

	stored, err := s.repo.Create(ctx, node)
	if err != nil {
		if node.BlobRef == "" {
			return nil, fmt.Errorf("db save failed: %w", err)
		}
		// Rollback: the record never landed, so the blob is unreachable.
		if delErr := s.blobs.Delete(ctx, node.BlobRef); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *fileService) Get(ctx context.Context, id, requesterID string) (*model.FileNode, error) {
	return s.lookup(ctx, id, requesterID, access.CanRead)
}

// List returns page (0-based) of ownerID's direct children of parent.
// Pages past the end are empty, not errors.
func (s *fileService) List(ctx context.Context, ownerID string, parent model.ParentRef, page int) ([]model.FileNode, error) {
	if page < 0 {
		page = 0
	}
	// Offsets past MaxInt cannot address any row.
	if page > math.MaxInt/PageSize {
		return []model.FileNode{}, nil
	}
	if !parent.IsRoot() && !validID(parent.ID()) {
		return []model.FileNode{}, nil
	}
	items, err := s.repo.ListByParent(ctx, ownerID, parent, repository.PageQuery{
		Limit:  PageSize,
		Offset: page * PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	if items == nil {
		items = []model.FileNode{}
	}
	return items, nil
}

// SetVisibility is owner-only even for public nodes.
func (s *fileService) SetVisibility(ctx context.Context, id, requesterID string, isPublic bool) (*model.FileNode, error) {
	if _, err := s.lookup(ctx, id, requesterID, access.CanMutate); err != nil {
		return nil, err
	}
	node, err := s.repo.UpdateVisibility(ctx, id, isPublic)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update visibility: %w", err)
	}
	return node, nil
}

// Content checks visibility before kind, so a private folder is NotFound
// to strangers rather than ErrFolderHasNoContent.
func (s *fileService) Content(ctx context.Context, id, requesterID string) (*FileContent, error) {
	node, err := s.lookup(ctx, id, requesterID, access.CanRead)
	if err != nil {
		return nil, err
	}
	if node.Kind == model.KindFolder {
		return nil, ErrFolderHasNoContent
	}
	data, err := s.blobs.Retrieve(ctx, node.BlobRef)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &FileContent{
		Name:        node.Name,
		ContentType: storage.ContentType(node.Name),
		Data:        data,
	}, nil
}
