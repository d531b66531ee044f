package mocks

import (
	"context"

	"filesmanager/internal/model"
	"filesmanager/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockFilesManager struct {
	mock.Mock
}

func (m *MockFilesManager) Connect(ctx context.Context, email, password string) (*model.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockFilesManager) Disconnect(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockFilesManager) Me(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockFilesManager) Authenticate(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockFilesManager) Upload(ctx context.Context, token string, in service.CreateFileInput) (*model.FileNode, error) {
	args := m.Called(ctx, token, in)
	return fileNode(args)
}

func (m *MockFilesManager) Show(ctx context.Context, token, id string) (*model.FileNode, error) {
	args := m.Called(ctx, token, id)
	return fileNode(args)
}

func (m *MockFilesManager) Index(ctx context.Context, token string, parent model.ParentRef, page int) ([]model.FileNode, error) {
	args := m.Called(ctx, token, parent, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FileNode), args.Error(1)
}

func (m *MockFilesManager) Publish(ctx context.Context, token, id string) (*model.FileNode, error) {
	args := m.Called(ctx, token, id)
	return fileNode(args)
}

func (m *MockFilesManager) Unpublish(ctx context.Context, token, id string) (*model.FileNode, error) {
	args := m.Called(ctx, token, id)
	return fileNode(args)
}

func (m *MockFilesManager) Data(ctx context.Context, token, id string) (*service.FileContent, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FileContent), args.Error(1)
}

func fileNode(args mock.Arguments) (*model.FileNode, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileNode), args.Error(1)
}
