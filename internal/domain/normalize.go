package domain

import (
	"strings"
	"time"

	"example.com/recap/internal/parse"
)

// trailKeywords mark an activity type as trail-based via case-insensitive
// substring match, covering French and English variants.
var trailKeywords = []string{
	"trail", "randonnée", "hike", "hiking", "trek", "mountain",
	"sentier", "chemin", "montagne", "gravel",
}

// IsTrailType reports whether an activity type string denotes trail terrain.
func IsTrailType(activityType string) bool {
	lower := strings.ToLower(activityType)
	for _, kw := range trailKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Normalize maps raw rows through the value parsers into Activities and
// applies the drop policy, in order: rows whose date cannot be parsed, rows
// dated strictly after now, and rows with zero distance and zero elapsed
// time. The returned count is the number of rows dropped. now is the
// processing time and is threaded in explicitly so callers control the
// future-date cutoff.
func Normalize(rows []RawActivity, now time.Time) ([]Activity, int) {
	activities := make([]Activity, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		date, ok := parse.Date(row.Date)
		if !ok || date.After(now) {
			dropped++
			continue
		}

		activityType := strings.TrimSpace(row.ActivityType)
		if activityType == "" {
			activityType = "Unknown"
		}

		movingRaw := row.MovingTime
		if strings.TrimSpace(movingRaw) == "" {
			// Some exports omit moving time entirely; elapsed is the
			// closest available measure.
			movingRaw = row.ElapsedTime
		}

		a := Activity{
			Date:          date,
			Type:          activityType,
			Name:          strings.TrimSpace(row.ActivityName),
			Distance:      parse.Distance(row.Distance),
			ElapsedTime:   parse.Duration(row.ElapsedTime),
			MovingTime:    parse.Duration(movingRaw),
			ElevationGain: parse.Number(row.ElevationGain),
			ElevationLoss: parse.Number(row.ElevationLoss),
			IsTrail:       IsTrailType(activityType),

			Calories:           parse.Number(row.Calories),
			AverageHeartRate:   parse.Number(row.AverageHeartRate),
			AveragePower:       parse.Number(row.AveragePower),
			AverageTemperature: parse.Number(row.AverageTemperature),
			TotalSteps:         parse.Number(row.TotalSteps),
		}

		if a.Distance <= 0 && a.ElapsedTime <= 0 {
			dropped++
			continue
		}

		activities = append(activities, a)
	}

	return activities, dropped
}

// FilterByYear keeps activities whose local-time year equals year. The
// empty-result fallback (use the unfiltered set) is a caller policy, not
// implemented here.
func FilterByYear(activities []Activity, year int) []Activity {
	filtered := make([]Activity, 0, len(activities))
	for _, a := range activities {
		if a.Date.Year() == year {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
