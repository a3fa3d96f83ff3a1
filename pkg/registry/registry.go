// Package registry stores ledger participants and resolves them by fully-qualified type and id.
package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	apperrors "github.com/chainsafe/canton-identity/pkg/app/errors"
	"github.com/chainsafe/canton-identity/pkg/participant"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrParticipantExists   = errors.New("participant already exists")
	ErrUnsupportedType     = errors.New("unsupported registry type")
)

// Manager hands out registries bound to a single fully-qualified participant type.
type Manager struct {
	db bun.IDB
}

// NewManager creates a registry manager backed by the participants table
func NewManager(db bun.IDB) *Manager {
	return &Manager{db: db}
}

// Get returns the registry of the given resource type for fqType, e.g.
// Get(ctx, "Participant", "org.doge.Doge"). Only participant registries exist.
func (m *Manager) Get(_ context.Context, registryType, fqType string) (*Registry, error) {
	if registryType != participant.ResourceType {
		return nil, apperrors.NotSupportedError(ErrUnsupportedType,
			fmt.Sprintf("Registry type '%s' is not supported", registryType))
	}

	namespace, typ, err := participant.ParseFullyQualifiedType(fqType)
	if err != nil {
		return nil, apperrors.BadRequestError(err, fmt.Sprintf("Invalid participant type '%s'", fqType))
	}

	return &Registry{db: m.db, namespace: namespace, typ: typ}, nil
}

// GetParticipant resolves a participant by its fully-qualified identifier.
func (m *Manager) GetParticipant(ctx context.Context, fqi string) (*participant.Participant, error) {
	ident, err := participant.Parse(fqi)
	if err != nil {
		return nil, apperrors.BadRequestError(err, fmt.Sprintf("Invalid participant identifier '%s'", fqi))
	}

	reg, err := m.Get(ctx, participant.ResourceType, ident.FullyQualifiedType())
	if err != nil {
		return nil, err
	}
	return reg.Get(ctx, ident.ID)
}

// AddParticipant registers p in the registry of its type.
func (m *Manager) AddParticipant(ctx context.Context, p *participant.Participant) error {
	if p == nil || p.Type == "" || p.ID == "" {
		return apperrors.BadRequestError(participant.ErrInvalidIdentifier, "participant type and id are required")
	}

	reg, err := m.Get(ctx, participant.ResourceType, p.FullyQualifiedType())
	if err != nil {
		return err
	}
	return reg.Add(ctx, p.ID)
}

// Registry resolves participants of one fully-qualified type.
type Registry struct {
	db        bun.IDB
	namespace string
	typ       string
}

// FullyQualifiedType returns the type the registry is bound to
func (r *Registry) FullyQualifiedType() string {
	return (&participant.Participant{Namespace: r.namespace, Type: r.typ}).FullyQualifiedType()
}

// Get returns the participant with the given id.
func (r *Registry) Get(ctx context.Context, id string) (*participant.Participant, error) {
	dao := new(ParticipantDao)
	err := r.db.NewSelect().
		Model(dao).
		Where("namespace = ?", r.namespace).
		Where("type = ?", r.typ).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ResourceNotFoundError(ErrParticipantNotFound,
				fmt.Sprintf("Participant '%s' does not exist", r.fqi(id)))
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return fromParticipantDao(dao), nil
}

// Exists reports whether a participant with the given id is registered.
func (r *Registry) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*ParticipantDao)(nil)).
		Where("namespace = ?", r.namespace).
		Where("type = ?", r.typ).
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check participant exists: %w", err)
	}
	return exists, nil
}

// Add registers a participant with the given id.
func (r *Registry) Add(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.BadRequestError(participant.ErrInvalidIdentifier, "participant id is required")
	}

	_, err := r.db.NewInsert().
		Model(toParticipantDao(participant.New(r.namespace, r.typ, id))).
		Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			return apperrors.ConflictError(ErrParticipantExists,
				fmt.Sprintf("Participant '%s' already exists", r.fqi(id)))
		}
		return fmt.Errorf("failed to add participant: %w", err)
	}
	return nil
}

func (r *Registry) fqi(id string) string {
	return participant.New(r.namespace, r.typ, id).FullyQualifiedIdentifier()
}
