package reporting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderplan/trip-planner-api/internal/models"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func userAt(role string, createdAt time.Time) models.User {
	return models.User{Role: role, CreatedAt: createdAt}
}

func tripAt(id uint, name string, createdAt time.Time) models.Trip {
	return models.Trip{ID: id, TripName: name, Destination: "Lisbon", CreatedAt: createdAt}
}

func TestRoleDistribution(t *testing.T) {
	users := []models.User{
		userAt("admin", testNow),
		userAt("user", testNow),
		userAt("user", testNow),
		userAt("", testNow), // missing role counts as "user"
	}

	roles := RoleDistribution(users)

	assert.Equal(t, map[string]int{"admin": 1, "user": 3}, roles)

	// Counts always sum to the list length
	total := 0
	for _, n := range roles {
		total += n
	}
	assert.Equal(t, len(users), total)
}

func TestRoleDistributionEmpty(t *testing.T) {
	assert.Empty(t, RoleDistribution(nil))
}

func TestMonthlySignups(t *testing.T) {
	users := []models.User{
		userAt("user", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		userAt("user", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
		userAt("user", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)),
	}

	months := MonthlySignups(users, testNow)

	require.Len(t, months, 2)
	// Ascending by month key
	assert.Equal(t, MonthCount{Month: "2023-12", Count: 1}, months[0])
	assert.Equal(t, MonthCount{Month: "2024-01", Count: 2}, months[1])
}

func TestMonthlySignupsMissingTimestampFallsBackToNow(t *testing.T) {
	users := []models.User{
		userAt("admin", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		userAt("user", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
		userAt("user", time.Time{}), // no signup timestamp
	}

	roles := RoleDistribution(users)
	assert.Equal(t, map[string]int{"admin": 1, "user": 2}, roles)

	months := MonthlySignups(users, testNow)
	require.Len(t, months, 2)
	assert.Equal(t, MonthCount{Month: "2024-01", Count: 2}, months[0])
	assert.Equal(t, MonthCount{Month: "2024-06", Count: 1}, months[1])
}

func TestSignupBucketCountsSumToUsers(t *testing.T) {
	var users []models.User
	for i := 0; i < 37; i++ {
		users = append(users, userAt("user", testNow.AddDate(0, -(i%7), -(i%11))))
	}

	monthTotal := 0
	for _, m := range MonthlySignups(users, testNow) {
		monthTotal += m.Count
	}
	assert.Equal(t, len(users), monthTotal)

	dayTotal := 0
	for _, d := range DailySignups(users, testNow) {
		dayTotal += d.Count
	}
	assert.Equal(t, len(users), dayTotal)
}

func TestDailySignupsSortedAscending(t *testing.T) {
	users := []models.User{
		userAt("user", time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)),
		userAt("user", time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)),
		userAt("user", time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)),
		userAt("user", time.Date(2024, 3, 9, 9, 30, 0, 0, time.UTC)),
	}

	days := DailySignups(users, testNow)

	require.Len(t, days, 3)
	assert.Equal(t, "2024-02-28", days[0].Date)
	assert.Equal(t, "2024-03-01", days[1].Date)
	assert.Equal(t, DayCount{Date: "2024-03-09", Count: 2}, days[2])
}

func TestRecentTripsCapsAtFive(t *testing.T) {
	var trips []models.Trip
	for i := 1; i <= 8; i++ {
		trips = append(trips, tripAt(uint(i), fmt.Sprintf("trip-%d", i), testNow.AddDate(0, 0, -i)))
	}

	recent := RecentTrips(trips, testNow)

	require.Len(t, recent, 5)
	// Newest first: trip-1 was created one day ago, trip-5 five days ago
	for i, want := range []string{"trip-1", "trip-2", "trip-3", "trip-4", "trip-5"} {
		assert.Equal(t, want, recent[i].Name)
	}
}

func TestRecentTripsLengthIsMinOfFive(t *testing.T) {
	for n := 0; n <= 6; n++ {
		var trips []models.Trip
		for i := 1; i <= n; i++ {
			trips = append(trips, tripAt(uint(i), "t", testNow))
		}
		want := n
		if want > 5 {
			want = 5
		}
		assert.Len(t, RecentTrips(trips, testNow), want)
	}
}

func TestRecentTripsMissingTimestampRetained(t *testing.T) {
	trips := []models.Trip{
		tripAt(1, "old", testNow.AddDate(0, -2, 0)),
		tripAt(2, "undated", time.Time{}),
		tripAt(3, "recent", testNow.AddDate(0, 0, -1)),
	}

	recent := RecentTrips(trips, testNow)

	require.Len(t, recent, 3)
	// The undated trip normalizes to now and therefore sorts first
	assert.Equal(t, "undated", recent[0].Name)
	assert.Equal(t, testNow.Format("2006-01-02"), recent[0].Date)
	assert.Equal(t, "recent", recent[1].Name)
	assert.Equal(t, "old", recent[2].Name)
}

func TestRecentTripsOrderingNonIncreasing(t *testing.T) {
	trips := []models.Trip{
		tripAt(1, "a", testNow.AddDate(0, 0, -3)),
		tripAt(2, "b", testNow.AddDate(0, 0, -1)),
		tripAt(3, "c", testNow.AddDate(0, 0, -1)), // tie with b
		tripAt(4, "d", testNow.AddDate(0, 0, -2)),
	}

	first := RecentTrips(trips, testNow)
	second := RecentTrips(trips, testNow)

	// Ties break consistently across calls over the same snapshot
	assert.Equal(t, first, second)
	assert.Equal(t, "b", first[0].Name)
	assert.Equal(t, "c", first[1].Name)
	assert.Equal(t, "d", first[2].Name)
	assert.Equal(t, "a", first[3].Name)
}

func TestRecentTripsDoesNotMutateInput(t *testing.T) {
	trips := []models.Trip{
		tripAt(1, "a", testNow.AddDate(0, 0, -3)),
		tripAt(2, "b", testNow.AddDate(0, 0, -1)),
		tripAt(3, "undated", time.Time{}),
	}

	RecentTrips(trips, testNow)

	assert.Equal(t, uint(1), trips[0].ID)
	assert.Equal(t, uint(2), trips[1].ID)
	assert.True(t, trips[2].CreatedAt.IsZero())
}

func TestBuildReport(t *testing.T) {
	users := []models.User{
		userAt("admin", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		userAt("user", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
	}
	trips := []models.Trip{
		tripAt(1, "Lisbon weekend", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	report := BuildReport(users, trips, testNow)

	assert.Equal(t, 2, report.TotalUsers)
	assert.Equal(t, 1, report.TotalTrips)
	assert.Equal(t, map[string]int{"admin": 1, "user": 1}, report.Roles)
	require.Len(t, report.MonthlySignups, 1)
	assert.Equal(t, MonthCount{Month: "2024-01", Count: 2}, report.MonthlySignups[0])
	require.Len(t, report.DailyActivity, 2)
	require.Len(t, report.RecentTrips, 1)
	assert.Equal(t, TripSummary{ID: 1, Name: "Lisbon weekend", Destination: "Lisbon", Date: "2024-02-01"}, report.RecentTrips[0])
}
