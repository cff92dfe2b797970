package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"tasks-pro/taskspro/database"
	"tasks-pro/taskspro/models"
	"tasks-pro/taskspro/services"
)

type MockAuthService struct{}

func (m *MockAuthService) Login(db *database.Database, email, password string) (string, error) {
	if email == "user@tasks-pro.com" && password == "user123" {
		return "signed-token", nil
	}
	return "", services.ErrInvalidCredentials
}

func (m *MockAuthService) Register(db *database.Database, email, password string) (models.User, error) {
	if email == "taken@tasks-pro.com" {
		return models.User{}, services.ErrEmailTaken
	}
	return models.User{ID: uuid.New(), Email: email, Role: models.RoleUser}, nil
}

func (m *MockAuthService) ValidateToken(tokenString string) (*services.JWTClaims, error) {
	return nil, services.ErrInvalidToken
}

func (m *MockAuthService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *MockAuthService) ComparePasswords(hashedPassword, password string) error {
	return nil
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterAuthRoutes(router, &database.Database{}, &MockAuthService{})
	return router
}

func TestLoginRoute(t *testing.T) {
	router := setupAuthRouter()

	t.Run("valid credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/login",
			bytes.NewBufferString(`{"email":"user@tasks-pro.com","password":"user123"}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "signed-token")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/login",
			bytes.NewBufferString(`{"email":"user@tasks-pro.com","password":"wrong"}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/login",
			bytes.NewBufferString(`{"email":"not-an-email"}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRegisterRoute(t *testing.T) {
	router := setupAuthRouter()

	t.Run("new account", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register",
			bytes.NewBufferString(`{"email":"new@tasks-pro.com","password":"secret1"}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "new@tasks-pro.com")
		assert.Contains(t, w.Body.String(), string(models.RoleUser))
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register",
			bytes.NewBufferString(`{"email":"taken@tasks-pro.com","password":"secret1"}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("short password", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register",
			bytes.NewBufferString(`{"email":"new@tasks-pro.com","password":"abc"}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
