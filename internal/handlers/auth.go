package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"medingen-server/internal/config"
	"medingen-server/internal/middleware"
	"medingen-server/internal/models"
	"medingen-server/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

// CredentialsRequest represents the request body for registration and login.
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	// Check if the username is already taken
	var existingUser models.User
	err := h.DB.Where("username = ?", req.Username).First(&existingUser).Error
	if err == nil {
		utils.Conflict(c, "Username already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.InternalServerError(c, "Database error")
		return
	}

	user := models.User{Username: req.Username}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password")
		return
	}

	if err := h.DB.Create(&user).Error; err != nil {
		utils.InternalServerError(c, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"id":      user.ID,
	})
}

// LoginResponse represents the response body for successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
}

// Login verifies credentials and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var user models.User
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Unauthorized(c, "Invalid credentials")
		} else {
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	accessToken, err := utils.GenerateAccessToken(&user, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: accessToken,
		UserID:      user.ID,
		Username:    user.Username,
	})
}

// GetProfile handles fetching the currently authenticated user's profile.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, user.Sanitize())
}
