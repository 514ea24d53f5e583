// Package stats reduces a normalized activity collection plus the auxiliary
// export records into one comprehensive ProcessedStats object. Aggregation is
// a pure function of its inputs: the processing clock is passed in, nothing
// is cached, and the result is never mutated after construction.
package stats

import (
	"time"

	"example.com/recap/internal/domain"
)

// ProcessedStats is the single aggregator output. Optional sections use
// pointers (nil means "no supporting data") and every degraded section
// carries a companion count the presentation layer checks before rendering.
// JSON field names match what the slideshow consumes.
type ProcessedStats struct {
	Profile     *domain.Profile     `json:"profile,omitempty"`
	Preferences *domain.Preferences `json:"preferences,omitempty"`

	TotalActivities        int     `json:"totalActivities"`
	TotalHours             int     `json:"totalHours"` // moving time, excludes pauses
	TotalDistance          int     `json:"totalDistance"`
	TotalElevation         int     `json:"totalElevation"`
	TotalElevationLoss     int     `json:"totalElevationLoss"`
	TotalCalories          int     `json:"totalCalories"`
	TotalSteps             int     `json:"totalSteps"`
	ActivitiesWithCalories int     `json:"activitiesWithCalories"`
	TrailFactor            int     `json:"trailFactor"` // percentage of distance on trails
	TopEmojis              []string `json:"topEmojis"`

	ActivitiesByType map[string]TypeStats `json:"activitiesByType"`
	DailyActivities  map[string]int       `json:"dailyActivities"` // YYYY-MM-DD -> count

	HeartRateZones     []HeartRateZone       `json:"heartRateZones"`
	TimeOfDay          TimeOfDayDistribution `json:"timeOfDayDistribution"`
	TemperatureRecords TemperatureRecords    `json:"temperatureRecords"`
	ConsistencyStreak  ConsistencyStreak     `json:"consistencyStreak"`
	PowerStats         *PowerStats           `json:"powerStats,omitempty"`

	LongestActivityByDistance *ActivityRecord `json:"longestActivityByDistance,omitempty"`
	LongestActivityByDuration *ActivityRecord `json:"longestActivityByDuration,omitempty"`
	LongestActivity           *ActivityRecord `json:"longestActivity,omitempty"` // alias of longest by distance
	FastestActivity           *ActivityRecord `json:"fastestActivity,omitempty"`
	AverageSpeed              float64         `json:"averageSpeed"` // km/h, one decimal
	TotalActiveDays           int             `json:"totalActiveDays"`

	ActivitiesByMonth     map[string]MonthStats     `json:"activitiesByMonth"`
	ActivitiesByDayOfWeek map[string]DayOfWeekStats `json:"activitiesByDayOfWeek"`

	Comments       []domain.Comment `json:"comments"`
	Social         domain.Social    `json:"social"`
	FollowerStats  FollowerStats    `json:"followerStats"`
	ChallengeStats ChallengeStats   `json:"challengeStats"`
	Logins         domain.Logins    `json:"logins"`
}

// TypeStats accumulates per-activity-type totals. Time is moving time.
type TypeStats struct {
	Count          int     `json:"count"`
	TotalDistance  float64 `json:"totalDistance"`
	TotalTime      float64 `json:"totalTime"`
	TotalElevation float64 `json:"totalElevation"`
}

// HeartRateZone is one intensity band with its share of HR-bearing
// activities.
type HeartRateZone struct {
	Zone       string `json:"zone"`
	Percentage int    `json:"percentage"`
	Count      int    `json:"count"`
	Color      string `json:"color"`
}

// TimeOfDayDistribution buckets activities by local start hour. Night wraps
// past midnight.
type TimeOfDayDistribution struct {
	Morning   int `json:"morning"`   // 5h-12h
	Midday    int `json:"midday"`    // 12h-14h
	Afternoon int `json:"afternoon"` // 14h-18h
	Evening   int `json:"evening"`   // 18h-22h
	Night     int `json:"night"`     // 22h-5h
}

// TemperatureReading pins an extreme to its activity.
type TemperatureReading struct {
	Temperature  int       `json:"temperature"`
	Date         time.Time `json:"date"`
	ActivityType string    `json:"activityType"`
}

// TemperatureRecords holds the coldest and hottest outings. When
// ActivitiesWithTemp is 0 the remaining fields are zero values and the
// feature is suppressed by the visibility policy.
type TemperatureRecords struct {
	Coldest            TemperatureReading `json:"coldest"`
	Hottest            TemperatureReading `json:"hottest"`
	AverageTemperature int                `json:"averageTemperature"`
	ActivitiesWithTemp int                `json:"activitiesWithTemp"`
}

// ConsistencyStreak captures calendar-day regularity.
type ConsistencyStreak struct {
	LongestStreak        int `json:"longestStreak"`
	CurrentStreak        int `json:"currentStreak"`
	TotalWeeksActive     int `json:"totalWeeksActive"`
	ActiveDaysPercentage int `json:"activeDaysPercentage"`
}

// PowerStats summarises the activities that recorded average power.
type PowerStats struct {
	AveragePower             int `json:"averagePower"`
	PeakPower                int `json:"peakPower"`
	TotalActivitiesWithPower int `json:"totalActivitiesWithPower"`
}

// ActivityRecord is one record-holding activity.
type ActivityRecord struct {
	Distance     float64   `json:"distance"` // km
	Duration     float64   `json:"duration"` // moving time, seconds
	Date         time.Time `json:"date"`
	ActivityType string    `json:"activityType"`
	ActivityName string    `json:"activityName"`
	AverageSpeed float64   `json:"averageSpeed"` // km/h
}

// MonthStats is one calendar-month bucket, keyed by French month name.
type MonthStats struct {
	Month          string  `json:"month"`
	MonthNumber    int     `json:"monthNumber"` // 1-12
	Count          int     `json:"count"`
	TotalDistance  float64 `json:"totalDistance"`
	TotalTime      float64 `json:"totalTime"`
	TotalElevation float64 `json:"totalElevation"`
}

// DayOfWeekStats is one weekday bucket, keyed by French day name, with the
// fixed motivational label and emoji for that day.
type DayOfWeekStats struct {
	Day           string  `json:"day"`
	DayNumber     int     `json:"dayNumber"` // 0=Lundi .. 6=Dimanche
	Count         int     `json:"count"`
	TotalDistance float64 `json:"totalDistance"`
	TotalTime     float64 `json:"totalTime"`
	Message       string  `json:"message"`
	Emoji         string  `json:"emoji"`
}

// FollowerStats passes the follower count through. The export carries no
// follow dates, so no per-year split exists.
type FollowerStats struct {
	Total int `json:"total"`
}

// ChallengeStats summarises challenge participation. CompletedInYear counts
// challenges joined in the target year and flagged completed; without a
// target year it equals Completed.
type ChallengeStats struct {
	Total           int `json:"total"`
	Completed       int `json:"completed"`
	CompletedInYear int `json:"completedInYear"`
}
