package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/wanderplan/trip-planner-api/internal/auth"
	"github.com/wanderplan/trip-planner-api/internal/models"
	"github.com/wanderplan/trip-planner-api/internal/services"
)

// AuthController handles signup and login.
// No token or session is issued; login answers with the user payload only and
// the frontend keeps its own state.
type AuthController struct {
	userService services.UserService
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(userService services.UserService) *AuthController {
	return &AuthController{userService: userService}
}

// Signup handles POST /api/signup
func (ac *AuthController) Signup(ctx *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		respondStoreError(ctx, http.StatusInternalServerError, "Failed to hash password", err)
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
	}
	if user.Role == "" {
		user.Role = "user"
	}

	if err := ac.userService.CreateUser(user); err != nil {
		if errors.Is(err, services.ErrEmailExists) {
			respondError(ctx, http.StatusBadRequest, "Email already exists")
			return
		}
		log.WithError(err).Error("Signup failed")
		respondStoreError(ctx, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    user,
	})
}

// Login handles POST /api/login
func (ac *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := ac.userService.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(ctx, http.StatusBadRequest, "User not found")
			return
		}
		log.WithError(err).Error("Login lookup failed")
		respondStoreError(ctx, http.StatusInternalServerError, "Failed to look up user", err)
		return
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		respondError(ctx, http.StatusBadRequest, "Invalid password")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
