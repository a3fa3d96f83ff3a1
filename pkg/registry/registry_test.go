package registry

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/chainsafe/canton-identity/pkg/app/errors"
	"github.com/chainsafe/canton-identity/pkg/participant"
	"github.com/chainsafe/canton-identity/pkg/pgutil"
	mghelper "github.com/chainsafe/canton-identity/pkg/pgutil/migrations"
)

func setupManager(t *testing.T) (context.Context, *Manager) {
	t.Helper()

	ctx := context.Background()
	db := pgutil.SetupTestDB(t)

	if err := mghelper.CreateSchema(ctx, db, &ParticipantDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return ctx, NewManager(db)
}

func TestManager_Get_UnsupportedType(t *testing.T) {
	m := NewManager(nil)

	_, err := m.Get(context.Background(), "Asset", "org.doge.Doge")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if !apperrors.Is(err, apperrors.CategoryNotSupported) {
		t.Fatalf("expected CategoryNotSupported, got %v", apperrors.CategoryOf(err))
	}
}

func TestManager_Get_InvalidType(t *testing.T) {
	m := NewManager(nil)

	_, err := m.Get(context.Background(), participant.ResourceType, "org.doge.")
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError, got %v", err)
	}
}

func TestManager_GetParticipant_InvalidFQI(t *testing.T) {
	m := NewManager(nil)

	_, err := m.GetParticipant(context.Background(), "org.doge.Doge")
	if !errors.Is(err, participant.ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
	}
}

func TestRegistry_AddGetExists(t *testing.T) {
	ctx, m := setupManager(t)

	reg, err := m.Get(ctx, participant.ResourceType, "org.doge.Doge")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if reg.FullyQualifiedType() != "org.doge.Doge" {
		t.Fatalf("unexpected type %q", reg.FullyQualifiedType())
	}

	_, err = reg.Get(ctx, "DOGE_1")
	if !errors.Is(err, ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) || svcErr.Message != "Participant 'org.doge.Doge#DOGE_1' does not exist" {
		t.Fatalf("unexpected error %v", err)
	}

	if err := reg.Add(ctx, "DOGE_1"); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	exists, err := reg.Exists(ctx, "DOGE_1")
	if err != nil {
		t.Fatalf("Exists() failed: %v", err)
	}
	if !exists {
		t.Fatal("expected DOGE_1 to exist")
	}

	p, err := reg.Get(ctx, "DOGE_1")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if p.FullyQualifiedIdentifier() != "org.doge.Doge#DOGE_1" {
		t.Fatalf("unexpected participant %s", p.FullyQualifiedIdentifier())
	}

	err = reg.Add(ctx, "DOGE_1")
	if !errors.Is(err, ErrParticipantExists) {
		t.Fatalf("expected ErrParticipantExists, got %v", err)
	}
}

func TestRegistry_TypesAreIsolated(t *testing.T) {
	ctx, m := setupManager(t)

	if err := m.AddParticipant(ctx, participant.New("org.doge", "Doge", "X")); err != nil {
		t.Fatalf("AddParticipant() failed: %v", err)
	}

	other, err := m.Get(ctx, participant.ResourceType, "org.cat.Cat")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	exists, err := other.Exists(ctx, "X")
	if err != nil {
		t.Fatalf("Exists() failed: %v", err)
	}
	if exists {
		t.Fatal("participant leaked across types")
	}

	p, err := m.GetParticipant(ctx, "org.doge.Doge#X")
	if err != nil {
		t.Fatalf("GetParticipant() failed: %v", err)
	}
	if p.Namespace != "org.doge" || p.Type != "Doge" || p.ID != "X" {
		t.Fatalf("unexpected participant %+v", p)
	}
}
