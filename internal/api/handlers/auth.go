package handlers

import (
	"net/http"

	"bookmark-manager-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	service *auth.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *auth.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /auth/register
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param account body auth.RegisterRequest true "Account data"
// @Success 201 {object} auth.TokenResponse "Account created, token issued"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	token, err := h.service.Register(&req)
	if err != nil {
		respondError(c, err, "Failed to register")
		return
	}

	c.JSON(http.StatusCreated, token)
}

// Login handles POST /auth/login
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body auth.LoginRequest true "Credentials"
// @Success 200 {object} auth.TokenResponse "Token issued"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	token, err := h.service.Login(&req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, token)
}
