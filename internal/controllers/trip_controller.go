package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/wanderplan/trip-planner-api/internal/models"
	"github.com/wanderplan/trip-planner-api/internal/services"
)

// TripController handles HTTP requests related to trips
type TripController interface {
	// CreateTrip saves a new trip
	CreateTrip(ctx *gin.Context)
	// GetTripsByEmail lists the trips owned by an email, newest first
	GetTripsByEmail(ctx *gin.Context)
	// UpdateTrip updates an existing trip
	UpdateTrip(ctx *gin.Context)
	// DeleteTrip deletes a trip by its ID
	DeleteTrip(ctx *gin.Context)
}

type tripController struct {
	service services.TripService
}

// NewTripController creates a new instance of TripController
func NewTripController(service services.TripService) TripController {
	return &tripController{service: service}
}

// createTripRequest is the POST /api/trips payload. Only email, tripName and
// destination are required; everything else mirrors the planner form and may
// be absent.
type createTripRequest struct {
	Email         string   `json:"email" binding:"required,email"`
	TripName      string   `json:"tripName" binding:"required"`
	Destination   string   `json:"destination" binding:"required"`
	FromDate      string   `json:"fromDate"`
	ToDate        string   `json:"toDate"`
	People        int      `json:"people"`
	Accommodation string   `json:"accommodation"`
	Transport     string   `json:"transport"`
	Budget        float64  `json:"budget"`
	Activities    []string `json:"activities"`
}

// CreateTrip godoc
// @Summary Save a trip
// @Description Save a planned trip for a user
// @Tags trips
// @Accept json
// @Produce json
// @Param trip body createTripRequest true "Trip payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/trips [post]
func (c *tripController) CreateTrip(ctx *gin.Context) {
	var req createTripRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Email, trip name and destination are required")
		return
	}

	trip := &models.Trip{
		Email:         req.Email,
		TripName:      req.TripName,
		Destination:   req.Destination,
		FromDate:      parseDateOrZero(req.FromDate),
		ToDate:        parseDateOrZero(req.ToDate),
		People:        req.People,
		Accommodation: req.Accommodation,
		Transport:     req.Transport,
		Budget:        req.Budget,
		Activities:    req.Activities,
	}

	if err := c.service.CreateTrip(trip); err != nil {
		log.WithError(err).Error("Failed to save trip")
		respondStoreError(ctx, http.StatusInternalServerError, "Failed to save trip", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"trip":    trip,
	})
}

// GetTripsByEmail godoc
// @Summary List a user's trips
// @Description Get all trips owned by an email, newest first
// @Tags trips
// @Produce json
// @Param email path string true "Owner email"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/trips/{email} [get]
func (c *tripController) GetTripsByEmail(ctx *gin.Context) {
	email := ctx.Param("email")

	trips, err := c.service.GetTripsByEmail(email)
	if err != nil {
		respondStoreError(ctx, http.StatusInternalServerError, "Failed to retrieve trips", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"trips":   trips,
	})
}

// UpdateTrip godoc
// @Summary Update a trip
// @Description Update a trip by ID
// @Tags trips
// @Accept json
// @Produce json
// @Param id path int true "Trip ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/trips/{id} [put]
func (c *tripController) UpdateTrip(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	var req struct {
		TripName      *string   `json:"tripName"`
		Destination   *string   `json:"destination"`
		FromDate      *string   `json:"fromDate"`
		ToDate        *string   `json:"toDate"`
		People        *int      `json:"people"`
		Accommodation *string   `json:"accommodation"`
		Transport     *string   `json:"transport"`
		Budget        *float64  `json:"budget"`
		Activities    *[]string `json:"activities"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	trip, err := c.service.UpdateTrip(id, services.TripPatch{
		TripName:      req.TripName,
		Destination:   req.Destination,
		FromDate:      req.FromDate,
		ToDate:        req.ToDate,
		People:        req.People,
		Accommodation: req.Accommodation,
		Transport:     req.Transport,
		Budget:        req.Budget,
		Activities:    req.Activities,
	})
	if err != nil {
		if errors.Is(err, services.ErrTripNotFound) {
			respondError(ctx, http.StatusNotFound, "Trip not found")
			return
		}
		respondStoreError(ctx, http.StatusInternalServerError, "Failed to update trip", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"trip":    trip,
	})
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Delete a trip by ID
// @Tags trips
// @Produce json
// @Param id path int true "Trip ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/trips/{id} [delete]
func (c *tripController) DeleteTrip(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	if err := c.service.DeleteTrip(id); err != nil {
		if errors.Is(err, services.ErrTripNotFound) {
			respondError(ctx, http.StatusNotFound, "Trip not found")
			return
		}
		respondStoreError(ctx, http.StatusInternalServerError, "Failed to delete trip", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// parseDateOrZero parses an optional calendar date, falling back to the zero
// time when the field is absent or malformed. The zero value later takes the
// documented fallback branches in reporting.
func parseDateOrZero(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		log.WithField("value", raw).Warn("Ignoring unparseable trip date")
		return time.Time{}
	}
	return d
}
