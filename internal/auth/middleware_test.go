package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProtectedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(secret))
	router.GET("/protected", func(c *gin.Context) {
		userID, _ := GetUserID(c)
		token, _ := GetToken(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "has_token": token != ""})
	})
	router.GET("/owner", RequireRole(RoleOwner), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestMiddleware_ValidToken(t *testing.T) {
	router := setupProtectedRouter(testSecret)
	tokenString := signTestToken(t, validClaims(time.Hour), testSecret)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"has_token":true`)
}

func TestMiddleware_MissingHeader(t *testing.T) {
	router := setupProtectedRouter(testSecret)

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_BadScheme(t *testing.T) {
	router := setupProtectedRouter(testSecret)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	router := setupProtectedRouter(testSecret)
	tokenString := signTestToken(t, validClaims(-time.Minute), testSecret)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestRequireRole(t *testing.T) {
	router := setupProtectedRouter(testSecret)

	ownerClaims := validClaims(time.Hour)
	ownerClaims.Role = RoleOwner

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"owner allowed", signTestToken(t, ownerClaims, testSecret), http.StatusOK},
		{"member forbidden", signTestToken(t, validClaims(time.Hour), testSecret), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/owner", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
