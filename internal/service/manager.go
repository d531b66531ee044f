package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"filesmanager/internal/access"
	"filesmanager/internal/model"
	"filesmanager/internal/repository"
	"filesmanager/internal/session"
)

const tracerName = "filesmanager/internal/service"

// FilesManager is the request-facing API. Every file operation except Data
// requires a valid session token and fails with ErrUnauthenticated otherwise.
type FilesManager interface {
	// Connect checks credentials and opens a session.
	Connect(ctx context.Context, email, password string) (*model.Session, error)
	// Disconnect closes the session behind token.
	Disconnect(ctx context.Context, token string) error
	// Me returns the account behind token.
	Me(ctx context.Context, token string) (*model.User, error)
	// Authenticate only checks token. Transports call it before rejecting a
	// malformed request so an unauthenticated caller always sees ErrUnauthenticated.
	Authenticate(ctx context.Context, token string) error

	Upload(ctx context.Context, token string, in CreateFileInput) (*model.FileNode, error)
	Show(ctx context.Context, token, id string) (*model.FileNode, error)
	Index(ctx context.Context, token string, parent model.ParentRef, page int) ([]model.FileNode, error)
	Publish(ctx context.Context, token, id string) (*model.FileNode, error)
	Unpublish(ctx context.Context, token, id string) (*model.FileNode, error)

	// Data returns file content. A missing or invalid token is not an error
	// here; it only limits the caller to public files.
	Data(ctx context.Context, token, id string) (*FileContent, error)
}

type filesManager struct {
	sessions session.Store
	users    repository.UserRepository
	files    FileService
	tracer   trace.Tracer
}

// NewFilesManager wires the session store, account lookup and file service together.
func NewFilesManager(sessions session.Store, users repository.UserRepository, files FileService) FilesManager {
	return &filesManager{
		sessions: sessions,
		users:    users,
		files:    files,
		tracer:   otel.Tracer(tracerName),
	}
}

func (m *filesManager) start(ctx context.Context, op string) (context.Context, trace.Span) {
	return m.tracer.Start(ctx, "FilesManager."+op)
}

// finish ends span, flagging only failures the caller did not cause.
func finish(span trace.Span, err error) {
	var ve *ValidationError
	if err != nil && !errors.Is(err, ErrUnauthenticated) && !errors.Is(err, ErrNotFound) &&
		!errors.Is(err, ErrFolderHasNoContent) && !errors.As(err, &ve) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (m *filesManager) authenticate(ctx context.Context, token string) (string, error) {
	userID, err := m.sessions.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrInvalidToken) {
			return "", ErrUnauthenticated
		}
		return "", err
	}
	return userID, nil
}

func (m *filesManager) Connect(ctx context.Context, email, password string) (sess *model.Session, err error) {
	ctx, span := m.start(ctx, "Connect")
	defer func() { finish(span, err) }()

	if email == "" {
		return nil, ErrUnauthenticated
	}
	user, err := m.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrUnauthenticated
	}
	return m.sessions.Issue(ctx, user.ID)
}

func (m *filesManager) Disconnect(ctx context.Context, token string) (err error) {
	ctx, span := m.start(ctx, "Disconnect")
	defer func() { finish(span, err) }()

	if _, err = m.authenticate(ctx, token); err != nil {
		return err
	}
	return m.sessions.Revoke(ctx, token)
}

func (m *filesManager) Me(ctx context.Context, token string) (user *model.User, err error) {
	ctx, span := m.start(ctx, "Me")
	defer func() { finish(span, err) }()

	userID, err := m.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	user, err = m.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (m *filesManager) Authenticate(ctx context.Context, token string) (err error) {
	ctx, span := m.start(ctx, "Authenticate")
	defer func() { finish(span, err) }()

	_, err = m.authenticate(ctx, token)
	return err
}

func (m *filesManager) Upload(ctx context.Context, token string, in CreateFileInput) (node *model.FileNode, err error) {
	ctx, span := m.start(ctx, "Upload")
	defer func() { finish(span, err) }()

	userID, err := m.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return m.files.Create(ctx, userID, in)
}

func (m *filesManager) Show(ctx context.Context, token, id string) (node *model.FileNode, err error) {
	ctx, span := m.start(ctx, "Show")
	defer func() { finish(span, err) }()

	userID, err := m.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return m.files.Get(ctx, id, userID)
}

func (m *filesManager) Index(ctx context.Context, token string, parent model.ParentRef, page int) (items []model.FileNode, err error) {
	ctx, span := m.start(ctx, "Index")
	defer func() { finish(span, err) }()

	userID, err := m.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return m.files.List(ctx, userID, parent, page)
}

func (m *filesManager) Publish(ctx context.Context, token, id string) (*model.FileNode, error) {
	return m.setVisibility(ctx, "Publish", token, id, true)
}

func (m *filesManager) Unpublish(ctx context.Context, token, id string) (*model.FileNode, error) {
	return m.setVisibility(ctx, "Unpublish", token, id, false)
}

func (m *filesManager) setVisibility(ctx context.Context, op, token, id string, value bool) (node *model.FileNode, err error) {
	ctx, span := m.start(ctx, op)
	defer func() { finish(span, err) }()

	userID, err := m.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return m.files.SetVisibility(ctx, id, userID, value)
}

func (m *filesManager) Data(ctx context.Context, token, id string) (content *FileContent, err error) {
	ctx, span := m.start(ctx, "Data")
	defer func() { finish(span, err) }()

	requesterID := access.Anonymous
	if token != "" {
		userID, err := m.authenticate(ctx, token)
		switch {
		case err == nil:
			requesterID = userID
		case !errors.Is(err, ErrUnauthenticated):
			return nil, err
		}
	}
	return m.files.Content(ctx, id, requesterID)
}
