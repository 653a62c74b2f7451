package services

import (
	"errors"
	"strings"

	"github.com/wanderplan/trip-planner-api/internal/models"
	"gorm.io/gorm"
)

// ErrTripNotFound is returned when no trip matches the given id
var ErrTripNotFound = errors.New("trip not found")

// TripPatch carries the optional fields of a trip update.
// Nil fields are left untouched.
type TripPatch struct {
	TripName      *string
	Destination   *string
	FromDate      *string
	ToDate        *string
	People        *int
	Accommodation *string
	Transport     *string
	Budget        *float64
	Activities    *[]string
}

// TripService provides methods to interact with the trip store
type TripService interface {
	// CreateTrip persists a new trip
	CreateTrip(trip *models.Trip) error
	// GetTripsByEmail retrieves the trips owned by the given email, newest first
	GetTripsByEmail(email string) ([]models.Trip, error)
	// GetAllTrips retrieves every trip
	GetAllTrips() ([]models.Trip, error)
	// UpdateTrip applies a patch to the trip with the given id
	UpdateTrip(id uint, patch TripPatch) (*models.Trip, error)
	// DeleteTrip removes the trip with the given id
	DeleteTrip(id uint) error
}

// tripService is the implementation of the TripService interface
type tripService struct {
	db *gorm.DB
}

// NewTripService creates a new instance of TripService
func NewTripService(db *gorm.DB) TripService {
	return &tripService{db: db}
}

func (s *tripService) CreateTrip(trip *models.Trip) error {
	trip.Email = strings.ToLower(strings.TrimSpace(trip.Email))
	return s.db.Create(trip).Error
}

func (s *tripService) GetTripsByEmail(email string) ([]models.Trip, error) {
	var trips []models.Trip
	err := s.db.
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (s *tripService) GetAllTrips() ([]models.Trip, error) {
	var trips []models.Trip
	if err := s.db.Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (s *tripService) UpdateTrip(id uint, patch TripPatch) (*models.Trip, error) {
	var trip models.Trip
	if err := s.db.First(&trip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	applyTripPatch(&trip, patch)

	if err := s.db.Save(&trip).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (s *tripService) DeleteTrip(id uint) error {
	result := s.db.Delete(&models.Trip{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTripNotFound
	}
	return nil
}

// applyTripPatch copies the non-nil patch fields onto the trip.
// Date strings are parsed as calendar dates; an unparseable value leaves
// the stored date unchanged.
func applyTripPatch(trip *models.Trip, patch TripPatch) {
	if patch.TripName != nil {
		trip.TripName = *patch.TripName
	}
	if patch.Destination != nil {
		trip.Destination = *patch.Destination
	}
	if patch.FromDate != nil {
		if d, err := models.ParseDate(*patch.FromDate); err == nil {
			trip.FromDate = d
		}
	}
	if patch.ToDate != nil {
		if d, err := models.ParseDate(*patch.ToDate); err == nil {
			trip.ToDate = d
		}
	}
	if patch.People != nil {
		trip.People = *patch.People
	}
	if patch.Accommodation != nil {
		trip.Accommodation = *patch.Accommodation
	}
	if patch.Transport != nil {
		trip.Transport = *patch.Transport
	}
	if patch.Budget != nil {
		trip.Budget = *patch.Budget
	}
	if patch.Activities != nil {
		trip.Activities = *patch.Activities
	}
}
