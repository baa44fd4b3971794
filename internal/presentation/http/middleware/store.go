package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kasirku/kasir-api/internal/domain/repository"
	infraRepo "github.com/kasirku/kasir-api/internal/infrastructure/repository"
	"github.com/kasirku/kasir-api/internal/presentation/http/dto/response"
)

// StoreMiddleware resolves the X-Store-ID header, verifies the
// authenticated user owns that store, and threads the store scope into
// the request context for services and repositories.
//
// Requests without the header pass through unscoped; store-scoped
// handlers then fall back to their zero/empty defaults instead of
// erroring, keeping the dashboard renderable before a store is chosen.
func StoreMiddleware(storeRepo repository.StoreRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("X-Store-ID")
		if header == "" {
			c.Next()
			return
		}

		storeID, err := uuid.Parse(header)
		if err != nil {
			response.BadRequest(c, "Invalid store ID")
			c.Abort()
			return
		}

		store, err := storeRepo.GetByID(c.Request.Context(), storeID)
		if err != nil || store == nil {
			response.ErrorWithCode(c, 404, "Store not found")
			c.Abort()
			return
		}

		userIDVal, exists := c.Get("user_id")
		if exists {
			userID, ok := userIDVal.(uuid.UUID)
			if ok && userID != uuid.Nil && store.OwnerID != userID {
				response.Forbidden(c, "Access denied to this store")
				c.Abort()
				return
			}
		}

		c.Set("store_id", store.ID)
		c.Set("store_owner_id", store.OwnerID)

		ctx := infraRepo.WithStore(c.Request.Context(), store.ID, store.OwnerID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireStore ensures a valid store scope exists on the request
func RequireStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID, exists := c.Get("store_id")
		if !exists {
			response.BadRequest(c, "Store context required")
			c.Abort()
			return
		}

		id, ok := storeID.(uuid.UUID)
		if !ok || id == uuid.Nil {
			response.BadRequest(c, "Invalid store context")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetStoreID retrieves the store ID from gin context
func GetStoreID(c *gin.Context) uuid.UUID {
	storeID, exists := c.Get("store_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := storeID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// GetStoreOwnerID retrieves the store owner's user ID from gin context
func GetStoreOwnerID(c *gin.Context) uuid.UUID {
	ownerID, exists := c.Get("store_owner_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := ownerID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
