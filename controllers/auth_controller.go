package controllers

import (
	"net/http"

	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

// SignupRequest is the POST /auth/signup payload.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the POST /auth/login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	users services.UserService
}

func NewAuthController(users services.UserService) *AuthController {
	return &AuthController{users: users}
}

// Signup registers a new credential and writes the initial profile.
func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	profile, svcErr := ac.users.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if svcErr != nil {
		abortServiceError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":    profile.ID,
			"email": profile.Email,
			"name":  profile.Name,
		},
	})
}

// Login verifies credentials and returns a bearer token with the profile.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	token, profile, svcErr := ac.users.Login(c.Request.Context(), req.Email, req.Password)
	if svcErr != nil {
		abortServiceError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token, "user": profile})
}
