package postgres

import (
	"context"
	"database/sql"
	"errors"

	"filesmanager/internal/model"
	"filesmanager/internal/repository"
)

// FilePostgres is a PostgreSQL implementation of repository.FileRepository.
// The root of a hierarchy is stored as a NULL parent_id.
type FilePostgres struct {
	db *sql.DB
}

// NewFilePostgres creates a new FilePostgres repository.
func NewFilePostgres(db *sql.DB) *FilePostgres {
	return &FilePostgres{db: db}
}

var _ repository.FileRepository = (*FilePostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFile(s rowScanner, withBlob bool) (*model.FileNode, error) {
	var (
		n        model.FileNode
		kind     string
		parentID sql.NullString
		blobRef  sql.NullString
	)
	dest := []any{&n.ID, &n.OwnerID, &n.Name, &kind, &parentID, &n.IsPublic}
	if withBlob {
		dest = append(dest, &blobRef)
	}
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	n.Kind = model.Kind(kind)
	if parentID.Valid {
		n.ParentID = model.ParentID(parentID.String)
	}
	n.BlobRef = blobRef.String
	return &n, nil
}

func parentArg(p model.ParentRef) sql.NullString {
	if p.IsRoot() {
		return sql.NullString{}
	}
	return sql.NullString{String: p.ID(), Valid: true}
}

func blobArg(ref string) sql.NullString {
	return sql.NullString{String: ref, Valid: ref != ""}
}

// Create inserts a new file row and returns the stored record.
func (r *FilePostgres) Create(ctx context.Context, node *model.FileNode) (*model.FileNode, error) {
	const q = `
		INSERT INTO files (user_id, name, type, parent_id, is_public, blob_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, type, parent_id, is_public, blob_ref
	`
	row := r.db.QueryRowContext(ctx, q,
		node.OwnerID,
		node.Name,
		string(node.Kind),
		parentArg(node.ParentID),
		node.IsPublic,
		blobArg(node.BlobRef),
	)
	return scanFile(row, true)
}

// FindByID fetches a single file by its ID.
func (r *FilePostgres) FindByID(ctx context.Context, id string) (*model.FileNode, error) {
	const q = `
		SELECT id, user_id, name, type, parent_id, is_public, blob_ref
		FROM files
		WHERE id = $1
	`
	n, err := scanFile(r.db.QueryRowContext(ctx, q, id), true)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

// ListByParent returns one page of an owner's direct children of parent.
func (r *FilePostgres) ListByParent(ctx context.Context, ownerID string, parent model.ParentRef, pq repository.PageQuery) ([]model.FileNode, error) {
	const q = `
		SELECT id, user_id, name, type, parent_id, is_public
		FROM files
		WHERE user_id = $1 AND parent_id IS NOT DISTINCT FROM $2
		ORDER BY seq ASC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.QueryContext(ctx, q, ownerID, parentArg(parent), pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.FileNode, 0)
	for rows.Next() {
		n, err := scanFile(rows, false)
		if err != nil {
			return nil, err
		}
		items = append(items, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateVisibility flips is_public on one row.
func (r *FilePostgres) UpdateVisibility(ctx context.Context, id string, isPublic bool) (*model.FileNode, error) {
	const q = `
		UPDATE files SET is_public = $2
		WHERE id = $1
		RETURNING id, user_id, name, type, parent_id, is_public, blob_ref
	`
	n, err := scanFile(r.db.QueryRowContext(ctx, q, id, isPublic), true)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return n, nil
}
