package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wanderplan/trip-planner-api/internal/reporting"
	"github.com/wanderplan/trip-planner-api/internal/services"
)

// StatsController serves the admin statistics endpoint. It fetches full
// user and trip snapshots and hands them to the reporting package; nothing
// is cached between requests.
type StatsController struct {
	userService services.UserService
	tripService services.TripService

	// now is swappable so tests can pin the fallback clock
	now func() time.Time
}

// NewStatsController creates a new instance of StatsController
func NewStatsController(userService services.UserService, tripService services.TripService) *StatsController {
	return &StatsController{
		userService: userService,
		tripService: tripService,
		now:         time.Now,
	}
}

// GetStats godoc
// @Summary Admin statistics
// @Description Aggregate counts: users per role, signups per month and day, and the five most recent trips
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/stats [get]
func (sc *StatsController) GetStats(ctx *gin.Context) {
	users, err := sc.userService.GetAllUsers()
	if err != nil {
		respondStoreError(ctx, http.StatusInternalServerError, "Failed to retrieve users", err)
		return
	}

	trips, err := sc.tripService.GetAllTrips()
	if err != nil {
		respondStoreError(ctx, http.StatusInternalServerError, "Failed to retrieve trips", err)
		return
	}

	report := reporting.BuildReport(users, trips, sc.now())

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   report,
	})
}
