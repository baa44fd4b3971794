package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kasirku/kasir-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

type fakeStoreRepo struct {
	stores map[uuid.UUID]*entity.Store
}

func (f *fakeStoreRepo) Create(ctx context.Context, store *entity.Store) error { return nil }

func (f *fakeStoreRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	return f.stores[id], nil
}

func (f *fakeStoreRepo) Update(ctx context.Context, store *entity.Store) error { return nil }

func (f *fakeStoreRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeStoreRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Store, error) {
	return nil, nil
}

func storeTestRouter(repo *fakeStoreRepo, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/scoped", func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set("user_id", userID)
		}
	}, StoreMiddleware(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"store_id": GetStoreID(c).String()})
	})
	return r
}

func TestStoreMiddlewareNoHeaderPassesThrough(t *testing.T) {
	r := storeTestRouter(&fakeStoreRepo{}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), uuid.Nil.String())
}

func TestStoreMiddlewareInvalidID(t *testing.T) {
	r := storeTestRouter(&fakeStoreRepo{}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	req.Header.Set("X-Store-ID", "not-a-uuid")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStoreMiddlewareUnknownStore(t *testing.T) {
	r := storeTestRouter(&fakeStoreRepo{stores: map[uuid.UUID]*entity.Store{}}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	req.Header.Set("X-Store-ID", uuid.New().String())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStoreMiddlewareOwnershipEnforced(t *testing.T) {
	storeID := uuid.New()
	repo := &fakeStoreRepo{stores: map[uuid.UUID]*entity.Store{
		storeID: {ID: storeID, OwnerID: uuid.New()},
	}}
	r := storeTestRouter(repo, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	req.Header.Set("X-Store-ID", storeID.String())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStoreMiddlewareOwnerGetsScope(t *testing.T) {
	storeID := uuid.New()
	ownerID := uuid.New()
	repo := &fakeStoreRepo{stores: map[uuid.UUID]*entity.Store{
		storeID: {ID: storeID, OwnerID: ownerID},
	}}
	r := storeTestRouter(repo, ownerID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	req.Header.Set("X-Store-ID", storeID.String())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), storeID.String())
}

func TestRequireStoreWithoutScope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", RequireStore(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
