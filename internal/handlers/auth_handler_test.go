package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-shop/internal/config"
	"github.com/BruksfildServices01/barber-shop/internal/middleware"
	"github.com/BruksfildServices01/barber-shop/internal/models"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := &config.Config{JWTSecret: "test-secret"}

	authHandler := NewAuthHandler(db, cfg)
	meHandler := NewMeHandler(db)

	r := gin.New()
	r.POST("/api/auth/signup", authHandler.Signup)
	r.POST("/api/auth/signin", authHandler.Signin)

	secured := r.Group("/api")
	secured.Use(middleware.AuthMiddleware(cfg))
	secured.GET("/me", meHandler.GetMe)

	return r, db
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupAndSignin(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := postJSON(t, r, "/api/auth/signup", gin.H{
		"fullname": "Joana Cliente",
		"username": "Joana",
		"password": "secret123",
		"role":     "client",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Token string `json:"token"`
		User  struct {
			Username string      `json:"username"`
			Role     models.Role `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Token)
	assert.Equal(t, "joana", created.User.Username)
	assert.Equal(t, models.RoleClient, created.User.Role)

	// Username é case-insensitive no login.
	w = postJSON(t, r, "/api/auth/signin", gin.H{
		"username": "JOANA",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignupMissingFieldCreatesNothing(t *testing.T) {
	r, db := setupAuthRouter(t)

	w := postJSON(t, r, "/api/auth/signup", gin.H{
		"fullname": "Sem Senha",
		"username": "semsenha",
		"role":     "client",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSignupShortPassword(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := postJSON(t, r, "/api/auth/signup", gin.H{
		"fullname": "Joana",
		"username": "joana",
		"password": "12345",
		"role":     "client",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupInvalidRole(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := postJSON(t, r, "/api/auth/signup", gin.H{
		"fullname": "Joana",
		"username": "joana",
		"password": "secret123",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupDuplicateUsername(t *testing.T) {
	r, db := setupAuthRouter(t)

	w := postJSON(t, r, "/api/auth/signup", gin.H{
		"fullname": "Joana",
		"username": "joana",
		"password": "secret123",
		"role":     "client",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/auth/signup", gin.H{
		"fullname": "Outra Joana",
		"username": "Joana",
		"password": "secret456",
		"role":     "barber",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSigninWrongPassword(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := postJSON(t, r, "/api/auth/signup", gin.H{
		"fullname": "Joana",
		"username": "joana",
		"password": "secret123",
		"role":     "client",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/auth/signin", gin.H{
		"username": "joana",
		"password": "errada123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, r, "/api/auth/signin", gin.H{
		"username": "ninguem",
		"password": "qualquer1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeRequiresToken(t *testing.T) {
	r, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token emitido no signup abre a rota.
	signup := postJSON(t, r, "/api/auth/signup", gin.H{
		"fullname": "Joana",
		"username": "joana",
		"password": "secret123",
		"role":     "client",
	})
	require.Equal(t, http.StatusCreated, signup.Code)

	var created struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(signup.Body.Bytes(), &created))

	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+created.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
