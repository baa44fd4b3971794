package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kasirku/kasir-api/internal/domain/entity"
	"github.com/kasirku/kasir-api/internal/domain/repository"
	"github.com/kasirku/kasir-api/pkg/apperror"
)

// StoreService handles store-related operations
type StoreService struct {
	storeRepo repository.StoreRepository
}

// NewStoreService creates a new store service
func NewStoreService(storeRepo repository.StoreRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo}
}

// CreateStoreInput represents the create store input
type CreateStoreInput struct {
	OwnerID uuid.UUID
	Name    string
	Address *string
	Phone   *string
}

// CreateStore creates a new store for the owner
func (s *StoreService) CreateStore(ctx context.Context, input *CreateStoreInput) (*entity.Store, error) {
	store := &entity.Store{
		OwnerID: input.OwnerID,
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
	}

	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// GetStore retrieves a store owned by the given user
func (s *StoreService) GetStore(ctx context.Context, ownerID, storeID uuid.UUID) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil || store.OwnerID != ownerID {
		return nil, apperror.NewNotFoundError("Store")
	}
	return store, nil
}

// ListStores returns every store owned by the user
func (s *StoreService) ListStores(ctx context.Context, ownerID uuid.UUID) ([]entity.Store, error) {
	return s.storeRepo.ListByOwner(ctx, ownerID)
}

// UpdateStoreInput represents the update store input
type UpdateStoreInput struct {
	OwnerID uuid.UUID
	StoreID uuid.UUID
	Name    string
	Address *string
	Phone   *string
}

// UpdateStore updates a store owned by the given user
func (s *StoreService) UpdateStore(ctx context.Context, input *UpdateStoreInput) (*entity.Store, error) {
	store, err := s.GetStore(ctx, input.OwnerID, input.StoreID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		store.Name = input.Name
	}
	if input.Address != nil {
		store.Address = input.Address
	}
	if input.Phone != nil {
		store.Phone = input.Phone
	}

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// DeleteStore deletes a store owned by the given user
func (s *StoreService) DeleteStore(ctx context.Context, ownerID, storeID uuid.UUID) error {
	store, err := s.GetStore(ctx, ownerID, storeID)
	if err != nil {
		return err
	}
	return s.storeRepo.Delete(ctx, store.ID)
}
