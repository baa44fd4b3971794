package repository

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	// StoreIDKey is the context key for the current store ID
	StoreIDKey ctxKey = "store_id"
	// StoreOwnerKey is the context key for the current store's owner ID
	StoreOwnerKey ctxKey = "store_owner_id"
)

// WithStore adds the current store scope to the context. The store ID
// scopes product queries; the owner ID scopes receipt queries.
func WithStore(ctx context.Context, storeID, ownerID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, StoreIDKey, storeID)
	return context.WithValue(ctx, StoreOwnerKey, ownerID)
}

// GetStoreID extracts the current store ID from context
func GetStoreID(ctx context.Context) (uuid.UUID, bool) {
	storeID, ok := ctx.Value(StoreIDKey).(uuid.UUID)
	return storeID, ok
}

// GetStoreOwnerID extracts the current store's owner ID from context
func GetStoreOwnerID(ctx context.Context) (uuid.UUID, bool) {
	ownerID, ok := ctx.Value(StoreOwnerKey).(uuid.UUID)
	return ownerID, ok
}
