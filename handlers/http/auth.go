package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-server/auth"
	"booking-server/usecases"
)

type AuthHandler struct {
	useCase *usecases.AuthUseCase
	tokens  *auth.TokenService
	// serviceKey gates the bootstrap user listing; empty disables it.
	serviceKey string
}

func NewAuthHandler(useCase *usecases.AuthUseCase, tokens *auth.TokenService, serviceKey string) *AuthHandler {
	return &AuthHandler{useCase: useCase, tokens: tokens, serviceKey: serviceKey}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup handles POST /api/v1/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.useCase.Signup(req.Email, req.Password, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "accessToken": token})
}

// Login handles POST /api/v1/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.useCase.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "accessToken": token})
}

// GetUser handles GET /api/v1/user
func (h *AuthHandler) GetUser(c *gin.Context) {
	user := CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	})
}

type profileRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateProfile handles PATCH /api/v1/user/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.useCase.UpdateProfile(CurrentUser(c).ID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ListUsers handles GET /api/v1/users (admin only, enforced by middleware)
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.useCase.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ListAllUsers handles GET /api/v1/users/all, the service-credentialed
// bootstrap listing used to discover demo admin accounts.
func (h *AuthHandler) ListAllUsers(c *gin.Context) {
	if h.serviceKey == "" || c.GetHeader("X-Service-Key") != h.serviceKey {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	users, err := h.useCase.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
