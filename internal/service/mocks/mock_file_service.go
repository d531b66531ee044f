package mocks

import (
	"context"

	"filesmanager/internal/model"
	"filesmanager/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Create(ctx context.Context, ownerID string, in service.CreateFileInput) (*model.FileNode, error) {
	args := m.Called(ctx, ownerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileNode), args.Error(1)
}

func (m *MockFileService) Get(ctx context.Context, id, requesterID string) (*model.FileNode, error) {
	args := m.Called(ctx, id, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileNode), args.Error(1)
}

func (m *MockFileService) List(ctx context.Context, ownerID string, parent model.ParentRef, page int) ([]model.FileNode, error) {
	args := m.Called(ctx, ownerID, parent, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FileNode), args.Error(1)
}

func (m *MockFileService) SetVisibility(ctx context.Context, id, requesterID string, isPublic bool) (*model.FileNode, error) {
	args := m.Called(ctx, id, requesterID, isPublic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileNode), args.Error(1)
}

func (m *MockFileService) Content(ctx context.Context, id, requesterID string) (*service.FileContent, error) {
	args := m.Called(ctx, id, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FileContent), args.Error(1)
}
