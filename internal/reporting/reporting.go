// Package reporting derives the admin statistics payload from point-in-time
// snapshots of the user and trip collections. Every function here is pure:
// no I/O, no mutation of its inputs, no errors. The clock is passed in so
// the missing-timestamp fallback stays deterministic under test.
package reporting

import (
	"sort"
	"time"

	"github.com/wanderplan/trip-planner-api/internal/models"
)

const (
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

// MonthCount is one monthly signup bucket
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// DayCount is one daily signup bucket
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// TripSummary is the projection of a trip shown in the recent-trips list
type TripSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// Report is the full statistics payload returned by GET /api/stats.
// It is recomputed on every request and never persisted.
type Report struct {
	TotalUsers     int            `json:"totalUsers"`
	TotalTrips     int            `json:"totalTrips"`
	Roles          map[string]int `json:"roles"`
	MonthlySignups []MonthCount   `json:"monthlySignups"`
	DailyActivity  []DayCount     `json:"dailyActivity"`
	RecentTrips    []TripSummary  `json:"recentTrips"`
}

// BuildReport assembles the aggregate report from complete user and trip
// snapshots. now anchors the fallback bucket for records without a creation
// timestamp.
func BuildReport(users []models.User, trips []models.Trip, now time.Time) Report {
	return Report{
		TotalUsers:     len(users),
		TotalTrips:     len(trips),
		Roles:          RoleDistribution(users),
		MonthlySignups: MonthlySignups(users, now),
		DailyActivity:  DailySignups(users, now),
		RecentTrips:    RecentTrips(trips, now),
	}
}

// RoleDistribution counts users per role. A missing role counts as "user",
// matching the signup default.
func RoleDistribution(users []models.User) map[string]int {
	roles := make(map[string]int, 4)
	for _, u := range users {
		role := u.Role
		if role == "" {
			role = "user"
		}
		roles[role]++
	}
	return roles
}

// MonthlySignups buckets users by signup month ("2006-01"), sorted ascending.
// A user without a creation timestamp is counted in the current month rather
// than dropped.
func MonthlySignups(users []models.User, now time.Time) []MonthCount {
	buckets := signupBuckets(users, now, monthLayout)
	out := make([]MonthCount, 0, len(buckets))
	for month, count := range buckets {
		out = append(out, MonthCount{Month: month, Count: count})
	}
	// Lexicographic order is chronological for the fixed-width key
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// DailySignups buckets users by signup day ("2006-01-02"), sorted ascending,
// with the same current-period fallback as MonthlySignups.
func DailySignups(users []models.User, now time.Time) []DayCount {
	buckets := signupBuckets(users, now, dayLayout)
	out := make([]DayCount, 0, len(buckets))
	for day, count := range buckets {
		out = append(out, DayCount{Date: day, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// signupBuckets groups users by their creation timestamp formatted with the
// given layout. The zero time means the record never carried a timestamp;
// those users are bucketed at now.
func signupBuckets(users []models.User, now time.Time, layout string) map[string]int {
	buckets := make(map[string]int)
	for _, u := range users {
		createdAt := u.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		buckets[createdAt.Format(layout)]++
	}
	return buckets
}

// RecentTrips returns the five most recently created trips, newest first,
// projected down to the summary fields. Trips without a creation timestamp
// are normalized to now and kept — unlike the signup summaries, no trip is
// ever excluded here.
func RecentTrips(trips []models.Trip, now time.Time) []TripSummary {
	type dated struct {
		trip      models.Trip
		createdAt time.Time
	}

	normalized := make([]dated, len(trips))
	for i, t := range trips {
		createdAt := t.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		normalized[i] = dated{trip: t, createdAt: createdAt}
	}

	// Stable sort keeps tie order consistent within a single call
	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].createdAt.After(normalized[j].createdAt)
	})

	limit := len(normalized)
	if limit > 5 {
		limit = 5
	}

	out := make([]TripSummary, limit)
	for i := 0; i < limit; i++ {
		out[i] = TripSummary{
			ID:          normalized[i].trip.ID,
			Name:        normalized[i].trip.TripName,
			Destination: normalized[i].trip.Destination,
			Date:        normalized[i].createdAt.Format(dayLayout),
		}
	}
	return out
}
