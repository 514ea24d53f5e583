// Package visibility decides which optional recap sections have enough data
// behind them to be worth rendering. Sections without a rule are always
// visible; a rule hides its section when any measured value is absent or
// below the rule's threshold.
package visibility

import "example.com/recap/internal/stats"

// Feature names an optional recap section.
type Feature string

const (
	FeatureIntensity       Feature = "intensity"
	FeaturePower           Feature = "power"
	FeatureWeather         Feature = "weather"
	FeatureEmoji           Feature = "emoji"
	FeatureSocialButterfly Feature = "social-butterfly"
	FeatureGravity         Feature = "gravity"
	FeatureTrail           Feature = "trail"
	FeatureCalorie         Feature = "calorie"
	FeatureEngine          Feature = "engine"
)

// measure reads one value off the statistics. ok is false when the
// underlying data was never recorded, which hides the section regardless of
// threshold.
type measure func(*stats.ProcessedStats) (value float64, ok bool)

type rule struct {
	threshold float64
	measures  []measure
}

// rules maps each gated feature to the data it needs. A feature absent from
// this table is always visible.
var rules = map[Feature]rule{
	FeatureIntensity: {threshold: 1, measures: []measure{
		func(s *stats.ProcessedStats) (float64, bool) {
			return float64(len(s.HeartRateZones)), true
		},
	}},
	FeaturePower: {threshold: 1, measures: []measure{
		func(s *stats.ProcessedStats) (float64, bool) {
			if s.PowerStats == nil {
				return 0, false
			}
			return float64(s.PowerStats.AveragePower), true
		},
	}},
	FeatureWeather: {threshold: 5, measures: []measure{
		func(s *stats.ProcessedStats) (float64, bool) {
			return float64(s.TemperatureRecords.ActivitiesWithTemp), true
		},
	}},
	FeatureEmoji: {threshold: 1, measures: []measure{
		func(s *stats.ProcessedStats) (float64, bool) {
			return float64(len(s.TopEmojis)), true
		},
	}},
	FeatureSocialButterfly: {threshold: 1, measures: []measure{
		func(s *stats.ProcessedStats) (float64, bool) {
			return float64(s.FollowerStats.Total), true
		},
		func(s *stats.ProcessedStats) (float64, bool) {
			return float64(s.ChallengeStats.Completed), true
		},
	}},
	FeatureGravity: {threshold: 1, measures: []measure{
		func(s *stats.ProcessedStats) (float64, bool) {
			return float64(s.TotalElevationLoss), true
		},
	}},
	FeatureTrail: {threshold: 0.01, measures: []measure{
		func(s *stats.ProcessedStats) (float64, bool) {
			return float64(s.TrailFactor), true
		},
	}},
	FeatureCalorie: {threshold: 1, measures: []measure{
		func(s *stats.ProcessedStats) (float64, bool) {
			return float64(s.TotalCalories), true
		},
	}},
	FeatureEngine: {threshold: 1, measures: []measure{
		func(s *stats.ProcessedStats) (float64, bool) {
			if s.Preferences == nil {
				return 0, false
			}
			return s.Preferences.FTP, true
		},
		func(s *stats.ProcessedStats) (float64, bool) {
			if s.Preferences == nil {
				return 0, false
			}
			return s.Preferences.MaxHR, true
		},
	}},
}

// features lists every gated feature in presentation order so callers get a
// stable slice.
var features = []Feature{
	FeatureIntensity,
	FeaturePower,
	FeatureGravity,
	FeatureTrail,
	FeatureCalorie,
	FeatureWeather,
	FeatureEmoji,
	FeatureEngine,
	FeatureSocialButterfly,
}

// Visible reports whether the named feature has enough backing data to show.
// Unknown features default to visible.
func Visible(f Feature, s *stats.ProcessedStats) bool {
	r, gated := rules[f]
	if !gated {
		return true
	}
	for _, m := range r.measures {
		v, ok := m(s)
		if !ok || v < r.threshold {
			return false
		}
	}
	return true
}

// VisibleFeatures evaluates every gated feature and returns those that pass,
// in presentation order. The slice is never nil.
func VisibleFeatures(s *stats.ProcessedStats) []Feature {
	out := make([]Feature, 0, len(features))
	for _, f := range features {
		if Visible(f, s) {
			out = append(out, f)
		}
	}
	return out
}

// HasMinimumData reports whether the statistics describe at least one real
// activity with distance and duration. Exports below this bar cannot produce
// a meaningful recap.
func HasMinimumData(s *stats.ProcessedStats) bool {
	return s.TotalActivities > 0 && s.TotalDistance > 0 && s.TotalHours > 0
}
