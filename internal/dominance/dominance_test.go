package dominance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/recap/internal/stats"
)

func TestClassifyMountainSeason(t *testing.T) {
	s := &stats.ProcessedStats{
		TotalActivities: 100,
		TotalDistance:   1500,
		TotalElevation:  30000, // 20 m of gain per km
		TrailFactor:     45,
		ActivitiesByType: map[string]stats.TypeStats{
			"Trail Running": {Count: 60},
			"Running":       {Count: 40},
		},
	}

	result := Classify(s)

	require.Equal(t, ArchetypeSummits, result.Profile)
	require.Equal(t, "L'Âme des Cimes", result.Title)
	require.Equal(t, "Grimpeur Élite", result.Theme.Badge.Label)
	require.Equal(t, 100, result.Confidence)
}

func TestClassifyIntensitySeason(t *testing.T) {
	s := &stats.ProcessedStats{
		TotalActivities: 100,
		TotalDistance:   500,
		TotalHours:      38, // just over 13 km/h average
		PowerStats:      &stats.PowerStats{AveragePower: 230},
		ActivitiesByType: map[string]stats.TypeStats{
			"HIIT":    {Count: 25},
			"Workout": {Count: 15},
			"Running": {Count: 60},
		},
	}

	result := Classify(s)

	require.Equal(t, ArchetypeWarMachine, result.Profile)
	// 50 intensity share, 30 power, 20 speed
	require.Equal(t, 100, result.Confidence)
}

func TestClassifyRegularRunner(t *testing.T) {
	s := &stats.ProcessedStats{
		TotalActivities: 200,
		ActivitiesByType: map[string]stats.TypeStats{
			"Running": {Count: 180},
			"Walking": {Count: 20},
		},
		ConsistencyStreak: stats.ConsistencyStreak{
			LongestStreak:        21,
			ActiveDaysPercentage: 65,
		},
	}

	result := Classify(s)

	require.Equal(t, ArchetypeMetronome, result.Profile)
	// 40 running share, 20 active days, 10 streak
	require.Equal(t, 70, result.Confidence)
}

func TestClassifyVarietySeason(t *testing.T) {
	s := &stats.ProcessedStats{
		TotalActivities: 120,
		TotalDistance:   2400,
		ActivitiesByType: map[string]stats.TypeStats{
			"Running":    {Count: 30},
			"Ride":       {Count: 30},
			"Swim":       {Count: 20},
			"Hike":       {Count: 20},
			"Kayaking":   {Count: 10},
			"Windsurf":   {Count: 5},
			"Bouldering": {Count: 5},
		},
		ActivitiesByMonth: map[string]stats.MonthStats{
			"Janvier": {}, "Février": {}, "Mars": {}, "Avril": {},
			"Mai": {}, "Juin": {}, "Juillet": {}, "Août": {},
			"Septembre": {}, "Octobre": {},
		},
		ActivitiesByDayOfWeek: map[string]stats.DayOfWeekStats{
			"Lundi": {}, "Mardi": {}, "Mercredi": {}, "Jeudi": {},
			"Vendredi": {}, "Samedi": {}, "Dimanche": {},
		},
	}

	result := Classify(s)

	require.Equal(t, ArchetypeExplorer, result.Profile)
	// 30 variety, 30 distance, 20 months, 10 day coverage
	require.Equal(t, 90, result.Confidence)
}

func TestClassifyEmptySeasonDefaultsToMetronome(t *testing.T) {
	result := Classify(&stats.ProcessedStats{})

	require.Equal(t, ArchetypeMetronome, result.Profile)
	require.Equal(t, "Le Métronome", result.Title)
	require.Zero(t, result.Confidence)
	require.Equal(t, "#FC4C02", result.Theme.Colors.Primary)
}

func TestClassifyTieKeepsEarlierRule(t *testing.T) {
	// Summits scores 30 via trail share; explorer scores 30 via five
	// activity types. Equal scores must not displace the earlier rule.
	s := &stats.ProcessedStats{
		TotalActivities: 10,
		TrailFactor:     5,
		ActivitiesByType: map[string]stats.TypeStats{
			"Running":  {Count: 3},
			"Ride":     {Count: 3},
			"Swim":     {Count: 2},
			"Kayaking": {Count: 1},
			"Rowing":   {Count: 1},
		},
	}

	result := Classify(s)

	require.Equal(t, ArchetypeSummits, result.Profile)
	require.Equal(t, 30, result.Confidence)
}

func TestClassifyAnyTrailShareScoresFullTier(t *testing.T) {
	s := &stats.ProcessedStats{
		TotalActivities:  50,
		TrailFactor:      1,
		ActivitiesByType: map[string]stats.TypeStats{"Ride": {Count: 50}},
	}

	result := Classify(s)

	require.Equal(t, ArchetypeSummits, result.Profile)
	require.Equal(t, 30, result.Confidence)
}
