package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"civic-reporter-be/models"
	"civic-reporter-be/store"
	authUtils "civic-reporter-be/utils"
)

// Demo credential pairs that work without registration.
var demoUsers = map[string]struct {
	Password string
	Role     string
	FullName string
}{
	"admin":    {Password: "admin123", Role: models.RoleAdmin, FullName: "Demo Admin"},
	"citizen1": {Password: "pass123", Role: models.RoleCitizen, FullName: "Demo Citizen"},
}

type AuthController struct {
	Store store.Store
	Log   *slog.Logger
}

func NewAuthController(s store.Store, log *slog.Logger) *AuthController {
	return &AuthController{Store: s, Log: log}
}

// Register handles user registration
func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		FullName string `json:"full_name" binding:"required,max=100"`
		Role     string `json:"role" binding:"omitempty,oneof=citizen admin"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := input.Role
	if role == "" {
		role = models.RoleCitizen
	}

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		FullName:  input.FullName,
		Role:      role,
		Password:  input.Password,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := user.HashPassword(); err != nil {
		ac.Log.Error("hashing password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ac.Store.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
			return
		}
		ac.Log.Error("creating user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"full_name":  user.FullName,
		"role":       user.Role,
		"is_active":  user.IsActive,
		"created_at": user.CreatedAt,
	})
}

// Login authenticates demo credentials or a registered user and
// returns a bearer token.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if demo, ok := demoUsers[input.Username]; ok && demo.Password == input.Password {
		token, err := authUtils.GenerateToken(input.Username, demo.Role)
		if err != nil {
			ac.Log.Error("generating token", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"access_token": token,
			"token_type":   "bearer",
			"role":         demo.Role,
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := ac.Store.GetUserByUsername(ctx, input.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if !user.IsActive || !user.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := authUtils.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		ac.Log.Error("generating token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"role":         user.Role,
	})
}

// Me returns the authenticated user's record.
func (ac *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	id := userID.(string)

	if demo, ok := demoUsers[id]; ok {
		c.JSON(http.StatusOK, gin.H{
			"username":  id,
			"full_name": demo.FullName,
			"role":      demo.Role,
			"is_active": true,
		})
		return
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := ac.Store.GetUser(ctx, objectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"full_name":  user.FullName,
		"role":       user.Role,
		"is_active":  user.IsActive,
		"created_at": user.CreatedAt,
	})
}
