package controllers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-service/controllers"
	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// --- Mock UserService ---

type mockUserService struct {
	signupFn func(ctx context.Context, email, password, name string) (*models.UserProfile, *services.ServiceError)
	loginFn  func(ctx context.Context, email, password string) (string, *models.UserProfile, *services.ServiceError)
	getFn    func(ctx context.Context, userID string) (*models.UserProfile, *services.ServiceError)
	updateFn func(ctx context.Context, userID string, updates *models.UpdateProfileRequest) (*models.UserProfile, *services.ServiceError)
}

func (m *mockUserService) Signup(ctx context.Context, email, password, name string) (*models.UserProfile, *services.ServiceError) {
	return m.signupFn(ctx, email, password, name)
}
func (m *mockUserService) Login(ctx context.Context, email, password string) (string, *models.UserProfile, *services.ServiceError) {
	return m.loginFn(ctx, email, password)
}
func (m *mockUserService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, *services.ServiceError) {
	return m.getFn(ctx, userID)
}
func (m *mockUserService) UpdateProfile(ctx context.Context, userID string, updates *models.UpdateProfileRequest) (*models.UserProfile, *services.ServiceError) {
	return m.updateFn(ctx, userID, updates)
}

func setupAuthRouter(svc services.UserService) *gin.Engine {
	r := gin.New()
	ac := controllers.NewAuthController(svc)
	r.POST("/auth/signup", ac.Signup)
	r.POST("/auth/login", ac.Login)
	return r
}

func TestSignup_ReturnsPublicProfileSubset(t *testing.T) {
	svc := &mockUserService{
		signupFn: func(_ context.Context, email, _, name string) (*models.UserProfile, *services.ServiceError) {
			return &models.UserProfile{ID: "u1", Email: email, Name: name, Addresses: []models.Address{}}, nil
		},
	}
	r := setupAuthRouter(svc)

	req, _ := http.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString(`{"email":"a@x.com","password":"secret1","name":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"u1"`)
	assert.Contains(t, w.Body.String(), `"email":"a@x.com"`)
	// The profile's address list is not part of the signup response.
	assert.NotContains(t, w.Body.String(), "addresses")
}

func TestSignup_ValidationErrorMapsTo400(t *testing.T) {
	svc := &mockUserService{
		signupFn: func(_ context.Context, _, _, _ string) (*models.UserProfile, *services.ServiceError) {
			return nil, &services.ServiceError{StatusCode: 400, Message: "Missing required fields"}
		},
	}
	r := setupAuthRouter(svc)

	req, _ := http.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
}

func TestLogin_ReturnsToken(t *testing.T) {
	svc := &mockUserService{
		loginFn: func(_ context.Context, _, _ string) (string, *models.UserProfile, *services.ServiceError) {
			return "signed-token", &models.UserProfile{ID: "u1"}, nil
		},
	}
	r := setupAuthRouter(svc)

	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"a@x.com","password":"secret1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed-token")
}

func TestLogin_MissingFieldsIs400(t *testing.T) {
	svc := &mockUserService{}
	r := setupAuthRouter(svc)

	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
