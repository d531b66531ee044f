package mocks

import (
	"context"

	"filesmanager/internal/model"
	"filesmanager/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) Create(ctx context.Context, node *model.FileNode) (*model.FileNode, error) {
	args := m.Called(ctx, node)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileNode), args.Error(1)
}

func (m *MockFileRepository) FindByID(ctx context.Context, id string) (*model.FileNode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileNode), args.Error(1)
}

func (m *MockFileRepository) ListByParent(ctx context.Context, ownerID string, parent model.ParentRef, pq repository.PageQuery) ([]model.FileNode, error) {
	args := m.Called(ctx, ownerID, parent, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FileNode), args.Error(1)
}

func (m *MockFileRepository) UpdateVisibility(ctx context.Context, id string, isPublic bool) (*model.FileNode, error) {
	args := m.Called(ctx, id, isPublic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileNode), args.Error(1)
}
