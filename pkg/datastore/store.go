// Package datastore persists named collections of JSON documents in PostgreSQL.
package datastore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	apperrors "github.com/chainsafe/canton-identity/pkg/app/errors"
)

var (
	ErrObjectNotFound  = errors.New("object not found")
	ErrObjectExists    = errors.New("object already exists")
	ErrInvalidName     = errors.New("collection name must not be empty")
	ErrInvalidObjectID = errors.New("object id must not be empty")
)

// Store hands out collections backed by the data_objects table.
type Store struct {
	db bun.IDB
}

// NewStore creates a new postgres implementation of the data store
func NewStore(db bun.IDB) *Store {
	return &Store{db: db}
}

// GetCollection returns the collection with the given name. Collections are
// implicit, they exist as soon as an object is added to them.
func (s *Store) GetCollection(_ context.Context, name string) (*Collection, error) {
	if name == "" {
		return nil, apperrors.BadRequestError(ErrInvalidName, "collection name must not be empty")
	}
	return &Collection{db: s.db, name: name}, nil
}

// Collection is a keyed set of JSON documents.
type Collection struct {
	db   bun.IDB
	name string
}

// Name returns the collection name
func (c *Collection) Name() string {
	return c.name
}

// Get decodes the object stored under id into dst.
func (c *Collection) Get(ctx context.Context, id string, dst any) error {
	dao := new(ObjectDao)
	err := c.db.NewSelect().
		Model(dao).
		Where("collection = ?", c.name).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.notFound(id)
		}
		return fmt.Errorf("failed to get object: %w", err)
	}

	if err := json.Unmarshal([]byte(dao.Object), dst); err != nil {
		return fmt.Errorf("failed to decode object %s/%s: %w", c.name, id, err)
	}
	return nil
}

// Exists reports whether an object is stored under id.
func (c *Collection) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := c.db.NewSelect().
		Model((*ObjectDao)(nil)).
		Where("collection = ?", c.name).
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check object exists: %w", err)
	}
	return exists, nil
}

// Add stores object under id. Adding an id that is already present is a conflict.
func (c *Collection) Add(ctx context.Context, id string, object any) error {
	if id == "" {
		return apperrors.BadRequestError(ErrInvalidObjectID, "object id must not be empty")
	}

	raw, err := json.Marshal(object)
	if err != nil {
		return fmt.Errorf("failed to encode object %s/%s: %w", c.name, id, err)
	}

	_, err = c.db.NewInsert().
		Model(&ObjectDao{Collection: c.name, ID: id, Object: string(raw)}).
		Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			return apperrors.ConflictError(ErrObjectExists,
				fmt.Sprintf("Failed to add object with ID '%s' in collection with ID '%s' as the object already exists", id, c.name))
		}
		return fmt.Errorf("failed to add object: %w", err)
	}
	return nil
}

// Remove deletes the object stored under id.
func (c *Collection) Remove(ctx context.Context, id string) error {
	res, err := c.db.NewDelete().
		Model((*ObjectDao)(nil)).
		Where("collection = ?", c.name).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	if n == 0 {
		return c.notFound(id)
	}
	return nil
}

func (c *Collection) notFound(id string) error {
	return apperrors.ResourceNotFoundError(ErrObjectNotFound,
		fmt.Sprintf("Object with ID '%s' in collection with ID '%s' does not exist", id, c.name))
}
