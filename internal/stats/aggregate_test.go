package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/recap/internal/domain"
)

var testNow = time.Date(2025, time.July, 1, 12, 0, 0, 0, time.Local)

func act(day int, month time.Month, mutate ...func(*domain.Activity)) domain.Activity {
	a := domain.Activity{
		Date:       time.Date(2025, month, day, 9, 0, 0, 0, time.Local),
		Type:       "Running",
		Distance:   10,
		MovingTime: 3600,
	}
	for _, m := range mutate {
		m(&a)
	}
	return a
}

func TestAggregateTotalsAndTypeGrouping(t *testing.T) {
	activities := []domain.Activity{
		act(1, time.January, func(a *domain.Activity) {
			a.ElevationGain = 100
			a.ElevationLoss = 90
			a.Calories = 500
		}),
		act(2, time.January, func(a *domain.Activity) {
			a.Type = "Ride"
			a.Distance = 40
			a.MovingTime = 7200
			a.ElevationGain = 300
		}),
	}

	s := Aggregate(activities, domain.Auxiliary{}, Options{Year: 2025, Now: testNow})

	require.Equal(t, 2, s.TotalActivities)
	require.Equal(t, 3, s.TotalHours)
	require.Equal(t, 50, s.TotalDistance)
	require.Equal(t, 400, s.TotalElevation)
	require.Equal(t, 90, s.TotalElevationLoss)
	require.Equal(t, 500, s.TotalCalories)
	require.Equal(t, 1, s.ActivitiesWithCalories)
	require.Equal(t, 2, s.TotalActiveDays)

	// Each row contributes to its type bucket exactly once.
	require.Len(t, s.ActivitiesByType, 2)
	running := s.ActivitiesByType["Running"]
	require.Equal(t, 1, running.Count)
	require.InDelta(t, 10, running.TotalDistance, 1e-9)
	require.InDelta(t, 3600, running.TotalTime, 1e-9)
	require.InDelta(t, 100, running.TotalElevation, 1e-9)
}

func TestAggregateIdempotent(t *testing.T) {
	activities := []domain.Activity{
		act(1, time.January, func(a *domain.Activity) { a.AverageHeartRate = 150 }),
		act(2, time.February, func(a *domain.Activity) { a.AveragePower = 220 }),
		act(3, time.March, func(a *domain.Activity) { a.Name = "Sortie 🔥" }),
	}
	aux := domain.Auxiliary{Social: domain.Social{TotalKudos: 12}}
	opts := Options{Year: 2025, Now: testNow}

	first := Aggregate(activities, aux, opts)
	second := Aggregate(activities, aux, opts)
	require.Equal(t, first, second)
}

func TestHeartRateZonesSumToRoughly100(t *testing.T) {
	activities := []domain.Activity{
		act(1, time.January, func(a *domain.Activity) { a.AverageHeartRate = 100 }), // zone 1 (<114)
		act(2, time.January, func(a *domain.Activity) { a.AverageHeartRate = 120 }), // zone 2 [114,133)
		act(3, time.January, func(a *domain.Activity) { a.AverageHeartRate = 140 }), // zone 3 [133,152)
		act(4, time.January, func(a *domain.Activity) { a.AverageHeartRate = 160 }), // zone 4 [152,171)
		act(5, time.January, func(a *domain.Activity) { a.AverageHeartRate = 180 }), // zone 5 [171,999)
		act(6, time.January, func(a *domain.Activity) { a.AverageHeartRate = 175 }), // zone 5
	}

	zones := Aggregate(activities, domain.Auxiliary{}, Options{Now: testNow}).HeartRateZones
	require.Len(t, zones, 5)

	sum := 0
	total := 0
	for _, z := range zones {
		sum += z.Percentage
		total += z.Count
	}
	require.Equal(t, 6, total)
	require.InDelta(t, 100, sum, 1.0, "zone percentages sum to 100 within rounding")
	require.Equal(t, 2, zones[4].Count)
}

func TestHeartRateZonesUseConfiguredMaxHR(t *testing.T) {
	// 150 bpm is zone 3 against the 190 default but zone 5 for maxHR 160.
	activities := []domain.Activity{
		act(1, time.January, func(a *domain.Activity) { a.AverageHeartRate = 150 }),
	}

	aux := domain.Auxiliary{Preferences: &domain.Preferences{MaxHR: 160}}
	zones := Aggregate(activities, aux, Options{Now: testNow}).HeartRateZones
	require.Equal(t, 1, zones[4].Count)

	zones = Aggregate(activities, domain.Auxiliary{}, Options{Now: testNow}).HeartRateZones
	require.Equal(t, 1, zones[2].Count)
}

func TestHeartRateZonesEmptyWithoutData(t *testing.T) {
	activities := []domain.Activity{act(1, time.January)}
	zones := Aggregate(activities, domain.Auxiliary{}, Options{Now: testNow}).HeartRateZones
	require.NotNil(t, zones)
	require.Empty(t, zones)
}

func TestTimeOfDayNightWrapsMidnight(t *testing.T) {
	at := func(hour int) domain.Activity {
		return act(1, time.January, func(a *domain.Activity) {
			a.Date = time.Date(2025, time.January, 1, hour, 30, 0, 0, time.Local)
		})
	}

	d := Aggregate([]domain.Activity{
		at(6), at(11), // morning
		at(12),        // midday
		at(15),        // afternoon
		at(19), at(21), // evening
		at(23), at(0), at(4), // night
	}, domain.Auxiliary{}, Options{Now: testNow}).TimeOfDay

	require.Equal(t, 2, d.Morning)
	require.Equal(t, 1, d.Midday)
	require.Equal(t, 1, d.Afternoon)
	require.Equal(t, 2, d.Evening)
	require.Equal(t, 3, d.Night)
}

func TestConsistencyStreakGapBreaksRun(t *testing.T) {
	days := []int{1, 2, 3, 5, 6, 7, 8}
	activities := make([]domain.Activity, 0, len(days))
	for _, d := range days {
		activities = append(activities, act(d, time.March))
	}

	streak := Aggregate(activities, domain.Auxiliary{}, Options{Year: 2025, Now: testNow}).ConsistencyStreak
	require.Equal(t, 4, streak.LongestStreak, "days 5-8, not the full span")
	require.Zero(t, streak.CurrentStreak, "last active day is far from now")
	require.Equal(t, 52, streak.TotalWeeksActive)
	require.Equal(t, 2, streak.ActiveDaysPercentage, "7 of 365 days")
}

func TestConsistencyStreakCurrent(t *testing.T) {
	now := time.Date(2025, time.March, 9, 8, 0, 0, 0, time.Local)
	activities := []domain.Activity{
		act(5, time.March), act(6, time.March), act(7, time.March), act(8, time.March),
	}

	streak := Aggregate(activities, domain.Auxiliary{}, Options{Year: 2025, Now: now}).ConsistencyStreak
	require.Equal(t, 4, streak.CurrentStreak, "streak ending yesterday is still current")

	later := time.Date(2025, time.March, 12, 8, 0, 0, 0, time.Local)
	streak = Aggregate(activities, domain.Auxiliary{}, Options{Year: 2025, Now: later}).ConsistencyStreak
	require.Zero(t, streak.CurrentStreak)
}

func TestConsistencyStreakAllTimePeriod(t *testing.T) {
	activities := []domain.Activity{act(1, time.January), act(10, time.January)}
	streak := Aggregate(activities, domain.Auxiliary{}, Options{Now: testNow}).ConsistencyStreak
	require.Equal(t, 20, streak.ActiveDaysPercentage, "2 active of 10 days first-to-last")
	require.Equal(t, 1, streak.TotalWeeksActive)
}

func TestTrailFactorExtremes(t *testing.T) {
	noDistance := []domain.Activity{
		act(1, time.January, func(a *domain.Activity) { a.Distance = 0; a.ElapsedTime = 600 }),
	}
	require.Zero(t, Aggregate(noDistance, domain.Auxiliary{}, Options{Now: testNow}).TrailFactor)

	allTrail := []domain.Activity{
		act(1, time.January, func(a *domain.Activity) { a.IsTrail = true }),
		act(2, time.January, func(a *domain.Activity) { a.IsTrail = true; a.Distance = 25 }),
	}
	require.Equal(t, 100, Aggregate(allTrail, domain.Auxiliary{}, Options{Now: testNow}).TrailFactor)

	half := []domain.Activity{
		act(1, time.January, func(a *domain.Activity) { a.IsTrail = true }),
		act(2, time.January),
	}
	require.Equal(t, 50, Aggregate(half, domain.Auxiliary{}, Options{Now: testNow}).TrailFactor)
}

func TestRecordsIndependentReductions(t *testing.T) {
	activities := []domain.Activity{
		act(1, time.January, func(a *domain.Activity) { a.Name = "long"; a.Distance = 42; a.MovingTime = 4 * 3600 }),
		act(2, time.January, func(a *domain.Activity) { a.Name = "slow"; a.Distance = 12; a.MovingTime = 6 * 3600 }),
		act(3, time.January, func(a *domain.Activity) { a.Name = "fast"; a.Distance = 20; a.MovingTime = 3600 }),
	}

	s := Aggregate(activities, domain.Auxiliary{}, Options{Now: testNow})
	require.Equal(t, "long", s.LongestActivityByDistance.ActivityName)
	require.Equal(t, "slow", s.LongestActivityByDuration.ActivityName)
	require.Equal(t, "fast", s.FastestActivity.ActivityName)
	require.Equal(t, s.LongestActivityByDistance, s.LongestActivity)
	require.InDelta(t, 20, s.FastestActivity.AverageSpeed, 1e-9)

	// 74 km over 11 h.
	require.InDelta(t, 6.7, s.AverageSpeed, 1e-9)
}

func TestRecordsNilWithoutQualifyingActivities(t *testing.T) {
	activities := []domain.Activity{
		act(1, time.January, func(a *domain.Activity) { a.Distance = 0; a.ElapsedTime = 600; a.MovingTime = 0 }),
		act(2, time.January, func(a *domain.Activity) { a.MovingTime = 0 }),
	}

	s := Aggregate(activities, domain.Auxiliary{}, Options{Now: testNow})
	require.Nil(t, s.LongestActivityByDistance)
	require.Nil(t, s.LongestActivityByDuration)
	require.Nil(t, s.FastestActivity)
	require.Zero(t, s.AverageSpeed)
}

func TestTemperatureRecords(t *testing.T) {
	activities := []domain.Activity{
		act(1, time.January, func(a *domain.Activity) { a.AverageTemperature = -4.6 }),
		act(2, time.July, func(a *domain.Activity) { a.Type = "Ride"; a.AverageTemperature = 31.2 }),
		act(3, time.April, func(a *domain.Activity) { a.AverageTemperature = 12 }),
		act(4, time.April), // no temp data
	}

	tr := Aggregate(activities, domain.Auxiliary{}, Options{Now: testNow}).TemperatureRecords
	require.Equal(t, 3, tr.ActivitiesWithTemp)
	require.Equal(t, -5, tr.Coldest.Temperature)
	require.Equal(t, 31, tr.Hottest.Temperature)
	require.Equal(t, "Ride", tr.Hottest.ActivityType)
	require.Equal(t, 13, tr.AverageTemperature)
}

func TestTemperatureRecordsAbsent(t *testing.T) {
	tr := Aggregate([]domain.Activity{act(1, time.January)}, domain.Auxiliary{}, Options{Now: testNow}).TemperatureRecords
	require.Zero(t, tr.ActivitiesWithTemp)
	require.Zero(t, tr.Coldest.Temperature)
	require.Zero(t, tr.Hottest.Temperature)
}

func TestPowerStats(t *testing.T) {
	s := Aggregate([]domain.Activity{act(1, time.January)}, domain.Auxiliary{}, Options{Now: testNow})
	require.Nil(t, s.PowerStats)

	activities := []domain.Activity{
		act(1, time.January, func(a *domain.Activity) { a.AveragePower = 180 }),
		act(2, time.January, func(a *domain.Activity) { a.AveragePower = 221 }),
		act(3, time.January),
	}
	s = Aggregate(activities, domain.Auxiliary{}, Options{Now: testNow})
	require.NotNil(t, s.PowerStats)
	require.Equal(t, 201, s.PowerStats.AveragePower)
	require.Equal(t, 221, s.PowerStats.PeakPower)
	require.Equal(t, 2, s.PowerStats.TotalActivitiesWithPower)
}

func TestTopEmojis(t *testing.T) {
	named := func(name string) domain.Activity {
		return act(1, time.January, func(a *domain.Activity) { a.Name = name })
	}

	s := Aggregate([]domain.Activity{
		named("Sortie 🔥"),
		named("Encore 🔥 et 💪"),
		named("Matinale 🔥 💪 ⛰️"),
		named("Repos 🎉"),
	}, domain.Auxiliary{}, Options{Now: testNow})

	require.Equal(t, []string{"🔥", "💪", "⛰"}, s.TopEmojis)
}

func TestTopEmojisEmptyWithoutEmoji(t *testing.T) {
	s := Aggregate([]domain.Activity{act(1, time.January)}, domain.Auxiliary{}, Options{Now: testNow})
	require.Empty(t, s.TopEmojis)
}

func TestTemporalBuckets(t *testing.T) {
	activities := []domain.Activity{
		act(6, time.January),  // Monday
		act(13, time.January), // Monday
		act(5, time.July, func(a *domain.Activity) { a.Distance = 21 }), // Saturday
	}

	s := Aggregate(activities, domain.Auxiliary{}, Options{Year: 2025, Now: testNow})

	require.Len(t, s.ActivitiesByMonth, 2)
	january := s.ActivitiesByMonth["Janvier"]
	require.Equal(t, 2, january.Count)
	require.Equal(t, 1, january.MonthNumber)
	require.InDelta(t, 20, january.TotalDistance, 1e-9)

	require.Len(t, s.ActivitiesByDayOfWeek, 2)
	monday := s.ActivitiesByDayOfWeek["Lundi"]
	require.Equal(t, 2, monday.Count)
	require.Zero(t, monday.DayNumber)
	require.Equal(t, "Lundi Motivation! 💪", monday.Message)
	require.Equal(t, "💼", monday.Emoji)

	saturday := s.ActivitiesByDayOfWeek["Samedi"]
	require.Equal(t, 5, saturday.DayNumber)
}

func TestChallengeAndSocialPassThrough(t *testing.T) {
	aux := domain.Auxiliary{
		Social:    domain.Social{TotalMessages: 4, TotalClubs: 2, TotalKudos: 120},
		Followers: []domain.Follower{{AthleteID: "1"}, {AthleteID: "2"}},
		Challenges: []domain.Challenge{
			{Name: "a", Completed: true, DateJoined: time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local)},
			{Name: "b", Completed: true, DateJoined: time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)},
			{Name: "c", Completed: false, DateJoined: time.Date(2025, 3, 2, 0, 0, 0, 0, time.Local)},
		},
		Logins: domain.Logins{PeakHour: 7, PeakDay: "Lundi", TotalLogins: 40},
	}

	s := Aggregate([]domain.Activity{act(1, time.January)}, aux, Options{Year: 2025, Now: testNow})

	require.Equal(t, 120, s.Social.TotalKudos)
	require.Equal(t, 2, s.FollowerStats.Total)
	require.Equal(t, 3, s.ChallengeStats.Total)
	require.Equal(t, 2, s.ChallengeStats.Completed)
	require.Equal(t, 1, s.ChallengeStats.CompletedInYear)
	require.Equal(t, "Lundi", s.Logins.PeakDay)
}

func TestAggregateEmptyAuxiliaryDefaults(t *testing.T) {
	s := Aggregate([]domain.Activity{act(1, time.January)}, domain.Auxiliary{}, Options{Now: testNow})

	require.Nil(t, s.Profile)
	require.Nil(t, s.Preferences)
	require.NotNil(t, s.Comments)
	require.Empty(t, s.Comments)
	require.Zero(t, s.Social.TotalKudos)
	require.Zero(t, s.FollowerStats.Total)
	require.Zero(t, s.Logins.TotalLogins)
}
