package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDecideAccess(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		isAdmin       bool
		isApproved    bool
		want          AccessDecision
	}{
		{"unauthenticated", false, false, false, AccessDenied},
		{"unauthenticated admin claim ignored", false, true, true, AccessDenied},
		{"unapproved user", true, false, false, AccessAwaitingApproval},
		{"approved user", true, false, true, AccessGranted},
		{"admin bypasses approval", true, true, false, AccessGranted},
		{"approved admin", true, true, true, AccessGranted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecideAccess(tt.authenticated, tt.isAdmin, tt.isApproved)
			assert.Equal(t, tt.want, got)
		})
	}
}

func approvalTestRouter(setUser func(c *gin.Context)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", func(c *gin.Context) {
		if setUser != nil {
			setUser(c)
		}
	}, RequireApproval(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireApprovalWithoutUser(t *testing.T) {
	r := approvalTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireApprovalUnapprovedUser(t *testing.T) {
	r := approvalTestRouter(func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Set("user_is_admin", false)
		c.Set("user_is_approved", false)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "awaiting approval")
}

func TestRequireApprovalApprovedUser(t *testing.T) {
	r := approvalTestRouter(func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Set("user_is_admin", false)
		c.Set("user_is_approved", true)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireApprovalAdminBypass(t *testing.T) {
	r := approvalTestRouter(func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Set("user_is_admin", true)
		c.Set("user_is_approved", false)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Set("user_is_admin", false)
	}, RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
