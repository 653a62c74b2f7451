package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wanderplan/trip-planner-api/internal/services"
)

// UserController handles the admin user-management endpoints
type UserController interface {
	// GetAllUsers retrieves all users
	GetAllUsers(ctx *gin.Context)
	// UpdateUser updates a user's name, email or role
	UpdateUser(ctx *gin.Context)
	// DeleteUser deletes a user by its ID
	DeleteUser(ctx *gin.Context)
}

type userController struct {
	service services.UserService
}

// NewUserController creates a new instance of UserController
func NewUserController(service services.UserService) UserController {
	return &userController{service: service}
}

// GetAllUsers godoc
// @Summary List all users
// @Description Get every registered user. Password hashes are never serialized.
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/users [get]
func (c *userController) GetAllUsers(ctx *gin.Context) {
	users, err := c.service.GetAllUsers()
	if err != nil {
		respondStoreError(ctx, http.StatusInternalServerError, "Failed to retrieve users", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
	})
}

// UpdateUser godoc
// @Summary Update a user
// @Description Update a user's name, email or role by ID
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/users/{id} [put]
func (c *userController) UpdateUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
		Role  *string `json:"role"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := c.service.UpdateUser(id, services.UserPatch{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(ctx, http.StatusNotFound, "User not found")
			return
		}
		respondStoreError(ctx, http.StatusInternalServerError, "Failed to update user", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Delete a user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/users/{id} [delete]
func (c *userController) DeleteUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := c.service.DeleteUser(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(ctx, http.StatusNotFound, "User not found")
			return
		}
		respondStoreError(ctx, http.StatusInternalServerError, "Failed to delete user", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// parseIDParam reads the :id path parameter as an unsigned integer
func parseIDParam(ctx *gin.Context) (uint, error) {
	raw := ctx.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
