package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/middleware"
	"ledgerbook/internal/models"
	"ledgerbook/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService     services.UserServicer
	categoryService services.CategoryServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, categoryService services.CategoryServicer) *AuthHandler {
	return &AuthHandler{userService: userService, categoryService: categoryService}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name             string          `json:"name" binding:"required,max=100"`
	Email            string          `json:"email" binding:"required,email,max=255"`
	Password         string          `json:"password" binding:"required,min=8,max=128"`
	UserType         models.UserType `json:"user_type" binding:"omitempty,user_type"`
	OrganizationName string          `json:"organization_name" binding:"max=200"`
	OrganizationID   string          `json:"organization_id" binding:"max=100"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles user signup. New users get the default category set so
// they can start recording transactions immediately.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.CreateUser(req.Email, req.Password, req.Name, req.UserType, req.OrganizationName, req.OrganizationID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.SeedDefaultCategories(user.ID); err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"name":      user.Name,
			"user_type": user.UserType,
		},
	})
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.GetUserByEmail(req.Email)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	if !h.userService.VerifyPassword(user, req.Password) {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"name":      user.Name,
			"user_type": user.UserType,
		},
	})
}

// GetProfile returns the authenticated user's profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
