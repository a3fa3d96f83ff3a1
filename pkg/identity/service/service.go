package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/canton-identity/pkg/app/errors"
	"github.com/chainsafe/canton-identity/pkg/identity"
	"github.com/chainsafe/canton-identity/pkg/participant"
)

var (
	ErrMappingExists   = errors.New("identity mapping already exists")
	ErrMappingNotFound = errors.New("identity mapping not found")
	ErrInvalidUserID   = errors.New("user ID must not be empty")
)

// DataCollection is a keyed collection of JSON documents.
//
//go:generate mockery --name DataCollection --output mocks --outpkg mocks --filename mock_data_collection.go --with-expecter
type DataCollection interface {
	Get(ctx context.Context, id string, dst any) error
	Exists(ctx context.Context, id string) (bool, error)
	Add(ctx context.Context, id string, object any) error
	Remove(ctx context.Context, id string) error
}

// DataService hands out named collections.
//
//go:generate mockery --name DataService --output mocks --outpkg mocks --filename mock_data_service.go --with-expecter
type DataService interface {
	GetCollection(ctx context.Context, name string) (DataCollection, error)
}

// Registry resolves participants of a single fully-qualified type by id.
//
//go:generate mockery --name Registry --output mocks --outpkg mocks --filename mock_registry.go --with-expecter
type Registry interface {
	Get(ctx context.Context, id string) (*participant.Participant, error)
}

// RegistryManager resolves a registry by resource type and fully-qualified type.
//
//go:generate mockery --name RegistryManager --output mocks --outpkg mocks --filename mock_registry_manager.go --with-expecter
type RegistryManager interface {
	Get(ctx context.Context, registryType, id string) (Registry, error)
}

// Service maps external user IDs onto ledger participants.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	AddIdentityMapping(ctx context.Context, ref participant.Ref, userID string) error
	RemoveIdentityMapping(ctx context.Context, userID string) error
	GetParticipant(ctx context.Context, userID string) (*participant.Participant, error)
}

type identityManager struct {
	data       DataService
	registries RegistryManager
	logger     *zap.Logger
}

// NewService creates the identity manager over the given data service and registry manager.
func NewService(data DataService, registries RegistryManager, logger *zap.Logger) Service {
	return &identityManager{
		data:       data,
		registries: registries,
		logger:     logger,
	}
}

// AddIdentityMapping maps userID onto the participant named by ref.
//
// The participant must resolve through its registry; resolution errors are
// returned as they are. A user ID that is already mapped yields a conflict.
// The uniqueness check and the write are not atomic, a concurrent add for the
// same user ID is rejected by the collection itself.
func (m *identityManager) AddIdentityMapping(ctx context.Context, ref participant.Ref, userID string) error {
	if userID == "" {
		return apperrors.BadRequestError(ErrInvalidUserID, "user ID must not be empty")
	}
	if ref == nil {
		return apperrors.BadRequestError(participant.ErrInvalidIdentifier, "participant must not be empty")
	}

	p, err := m.resolve(ctx, ref.FullyQualifiedIdentifier())
	if err != nil {
		return err
	}
	fqi := p.FullyQualifiedIdentifier()

	coll, err := m.collection(ctx)
	if err != nil {
		return err
	}

	exists, err := coll.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check identity mapping: %w", err)
	}
	if exists {
		return apperrors.ConflictError(ErrMappingExists, fmt.Sprintf("Found an existing mapping for user ID '%s'", userID))
	}

	if err := coll.Add(ctx, userID, identity.NewMapping(fqi)); err != nil {
		if apperrors.Is(err, apperrors.CategoryDataConflict) {
			return apperrors.ConflictError(ErrMappingExists, fmt.Sprintf("Found an existing mapping for user ID '%s'", userID))
		}
		return fmt.Errorf("failed to add identity mapping: %w", err)
	}

	m.logger.Debug("Identity mapping added",
		zap.String("user_id", userID),
		zap.String("participant", fqi))
	return nil
}

// RemoveIdentityMapping deletes the mapping for userID. Removing a user ID that
// is not mapped is not an error and performs no write.
func (m *identityManager) RemoveIdentityMapping(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.BadRequestError(ErrInvalidUserID, "user ID must not be empty")
	}

	coll, err := m.collection(ctx)
	if err != nil {
		return err
	}

	exists, err := coll.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check identity mapping: %w", err)
	}
	if !exists {
		return nil
	}

	if err := coll.Remove(ctx, userID); err != nil {
		// Lost a race with another remove.
		if apperrors.Is(err, apperrors.CategoryResourceNotFound) {
			return nil
		}
		return fmt.Errorf("failed to remove identity mapping: %w", err)
	}

	m.logger.Debug("Identity mapping removed", zap.String("user_id", userID))
	return nil
}

// GetParticipant returns the participant that userID is mapped to.
func (m *identityManager) GetParticipant(ctx context.Context, userID string) (*participant.Participant, error) {
	if userID == "" {
		return nil, apperrors.BadRequestError(ErrInvalidUserID, "user ID must not be empty")
	}

	coll, err := m.collection(ctx)
	if err != nil {
		return nil, err
	}

	notMapped := apperrors.ResourceNotFoundError(ErrMappingNotFound,
		fmt.Sprintf("No existing participant mapping for user ID '%s'", userID))

	exists, err := coll.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check identity mapping: %w", err)
	}
	if !exists {
		return nil, notMapped
	}

	var mapping identity.Mapping
	if err := coll.Get(ctx, userID, &mapping); err != nil {
		if apperrors.Is(err, apperrors.CategoryResourceNotFound) {
			return nil, notMapped
		}
		return nil, fmt.Errorf("failed to get identity mapping: %w", err)
	}

	return m.resolve(ctx, mapping.Participant)
}

// resolve parses fqi and looks the participant up in the registry for its type.
func (m *identityManager) resolve(ctx context.Context, fqi string) (*participant.Participant, error) {
	ident, err := participant.Parse(fqi)
	if err != nil {
		return nil, apperrors.BadRequestError(err, fmt.Sprintf("invalid participant identifier '%s'", fqi))
	}

	reg, err := m.registries.Get(ctx, participant.ResourceType, ident.FullyQualifiedType())
	if err != nil {
		return nil, err
	}

	return reg.Get(ctx, ident.ID)
}

func (m *identityManager) collection(ctx context.Context) (DataCollection, error) {
	coll, err := m.data.GetCollection(ctx, identity.CollectionName)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection %s: %w", identity.CollectionName, err)
	}
	return coll, nil
}
