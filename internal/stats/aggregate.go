package stats

import (
	"math"
	"time"

	"example.com/recap/internal/domain"
)

// Options parameterises one aggregation run.
type Options struct {
	// Year is the recap target year, or 0 when all activities are in scope.
	// It only affects the active-day percentage denominator and the
	// completed-in-year challenge count; activity filtering happens upstream.
	Year int
	// Now is the processing time, threaded in explicitly so the current
	// streak is deterministic under test.
	Now time.Time
}

// Aggregate reduces the activity collection and auxiliary records into a
// ProcessedStats. It never fails: every section missing its supporting data
// degrades to a documented zero or absent state.
func Aggregate(activities []domain.Activity, aux domain.Auxiliary, opts Options) *ProcessedStats {
	var movingSeconds, distance, elevGain, elevLoss, calories, steps float64
	caloriesCount := 0

	for _, a := range activities {
		movingSeconds += a.MovingTime
		distance += a.Distance
		elevGain += a.ElevationGain
		elevLoss += a.ElevationLoss
		calories += a.Calories
		steps += a.TotalSteps
		if a.Calories > 0 {
			caloriesCount++
		}
	}

	records := calculateRecords(activities)

	var userMaxHR float64
	if aux.Preferences != nil {
		userMaxHR = aux.Preferences.MaxHR
	}

	s := &ProcessedStats{
		Profile:     aux.Profile,
		Preferences: aux.Preferences,

		TotalActivities:        len(activities),
		TotalHours:             roundInt(movingSeconds / 3600),
		TotalDistance:          roundInt(distance),
		TotalElevation:         roundInt(elevGain),
		TotalElevationLoss:     roundInt(elevLoss),
		TotalCalories:          roundInt(calories),
		TotalSteps:             roundInt(steps),
		ActivitiesWithCalories: caloriesCount,
		TrailFactor:            calculateTrailFactor(activities),
		TopEmojis:              extractTopEmojis(activities),

		ActivitiesByType: groupByType(activities),
		DailyActivities:  calculateDailyActivities(activities),

		HeartRateZones:     calculateHeartRateZones(activities, userMaxHR),
		TimeOfDay:          calculateTimeOfDay(activities),
		TemperatureRecords: calculateTemperatureRecords(activities),
		ConsistencyStreak:  calculateConsistencyStreak(activities, opts.Year, opts.Now),
		PowerStats:         calculatePowerStats(activities),

		LongestActivityByDistance: records.longestByDistance,
		LongestActivityByDuration: records.longestByDuration,
		LongestActivity:           records.longestByDistance,
		FastestActivity:           records.fastest,
		AverageSpeed:              math.Round(records.averageSpeed*10) / 10,
		TotalActiveDays:           countActiveDays(activities),

		ActivitiesByMonth:     groupByMonth(activities),
		ActivitiesByDayOfWeek: groupByDayOfWeek(activities),

		Comments:       aux.Comments,
		Social:         aux.Social,
		FollowerStats:  FollowerStats{Total: len(aux.Followers)},
		ChallengeStats: calculateChallengeStats(aux.Challenges, opts.Year),
		Logins:         aux.Logins,
	}

	if s.Comments == nil {
		s.Comments = []domain.Comment{}
	}

	return s
}

// groupByType buckets by exact activity-type string. Time sums use moving
// time, not elapsed, so paused duration never inflates totals.
func groupByType(activities []domain.Activity) map[string]TypeStats {
	grouped := make(map[string]TypeStats)
	for _, a := range activities {
		g := grouped[a.Type]
		g.Count++
		g.TotalDistance += a.Distance
		g.TotalTime += a.MovingTime
		g.TotalElevation += a.ElevationGain
		grouped[a.Type] = g
	}
	return grouped
}

// calculateTrailFactor returns the percentage of total distance covered on
// trail-flagged activities, rounded; 0 when no distance was recorded at all.
func calculateTrailFactor(activities []domain.Activity) int {
	var total, trail float64
	for _, a := range activities {
		total += a.Distance
		if a.IsTrail {
			trail += a.Distance
		}
	}
	if total == 0 {
		return 0
	}
	return roundInt(trail / total * 100)
}

func calculateDailyActivities(activities []domain.Activity) map[string]int {
	daily := make(map[string]int)
	for _, a := range activities {
		daily[dayKey(a.Date)]++
	}
	return daily
}

func countActiveDays(activities []domain.Activity) int {
	days := make(map[string]struct{})
	for _, a := range activities {
		days[dayKey(a.Date)] = struct{}{}
	}
	return len(days)
}

func calculateChallengeStats(challenges []domain.Challenge, year int) ChallengeStats {
	cs := ChallengeStats{Total: len(challenges)}
	for _, c := range challenges {
		if !c.Completed {
			continue
		}
		cs.Completed++
		if year == 0 || c.DateJoined.Year() == year {
			cs.CompletedInYear++
		}
	}
	return cs
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
