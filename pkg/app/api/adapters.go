package api

import (
	"context"

	"github.com/chainsafe/canton-identity/pkg/datastore"
	identityservice "github.com/chainsafe/canton-identity/pkg/identity/service"
	"github.com/chainsafe/canton-identity/pkg/registry"
)

type dataService struct {
	store *datastore.Store
}

// NewDataService exposes the postgres document store as the identity service's DataService
func NewDataService(store *datastore.Store) identityservice.DataService {
	return &dataService{store: store}
}

func (d *dataService) GetCollection(ctx context.Context, name string) (identityservice.DataCollection, error) {
	col, err := d.store.GetCollection(ctx, name)
	if err != nil {
		return nil, err
	}
	return col, nil
}

type registryManager struct {
	manager *registry.Manager
}

// NewRegistryManager exposes the participant registry as the identity service's RegistryManager
func NewRegistryManager(manager *registry.Manager) identityservice.RegistryManager {
	return &registryManager{manager: manager}
}

func (m *registryManager) Get(ctx context.Context, registryType, id string) (identityservice.Registry, error) {
	reg, err := m.manager.Get(ctx, registryType, id)
	if err != nil {
		return nil, err
	}
	return reg, nil
}
