package services

import (
	"errors"
	"strings"

	"github.com/wanderplan/trip-planner-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrEmailExists is returned when creating a user whose email is already taken
	ErrEmailExists = errors.New("email already exists")
	// ErrUserNotFound is returned when no user matches the given id or email
	ErrUserNotFound = errors.New("user not found")
)

// UserPatch carries the optional fields of a user update.
// Nil fields are left untouched.
type UserPatch struct {
	Name  *string
	Email *string
	Role  *string
}

// UserService provides methods to interact with the user store
type UserService interface {
	// CreateUser persists a new user, failing with ErrEmailExists on a duplicate email
	CreateUser(user *models.User) error
	// GetUserByEmail retrieves a user by email (case-insensitive)
	GetUserByEmail(email string) (*models.User, error)
	// GetAllUsers retrieves every user
	GetAllUsers() ([]models.User, error)
	// UpdateUser applies a patch to the user with the given id
	UpdateUser(id uint, patch UserPatch) (*models.User, error)
	// DeleteUser removes the user with the given id
	DeleteUser(id uint) error
}

// userService is the implementation of the UserService interface
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) CreateUser(user *models.User) error {
	user.Email = normalizeEmail(user.Email)

	// Check-then-insert, as the API has always behaved. The uniqueIndex on
	// email is the backstop for two concurrent signups racing past this check.
	var existing models.User
	if err := s.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.db.Create(user).Error
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userService) UpdateUser(id uint, patch UserPatch) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = normalizeEmail(*patch.Email)
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) DeleteUser(id uint) error {
	result := s.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// normalizeEmail lowercases an email so uniqueness and lookups are
// case-insensitive regardless of how the client spelled it
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
