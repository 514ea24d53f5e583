package stats

import "example.com/recap/internal/domain"

// defaultMaxHR is used when the preferences member is missing or carries no
// configured maximum heart rate.
const defaultMaxHR = 190

// zoneSpec defines the five intensity bands as fractions of max HR.
var zoneSpecs = []struct {
	name  string
	low   float64 // inclusive
	high  float64 // exclusive; <0 means unbounded
	color string
}{
	{"Zone 1 (Recovery)", 0, 0.60, "#94A3B8"},
	{"Zone 2 (Easy)", 0.60, 0.70, "#60A5FA"},
	{"Zone 3 (Aerobic)", 0.70, 0.80, "#34D399"},
	{"Zone 4 (Threshold)", 0.80, 0.90, "#FBBF24"},
	{"Zone 5 (Max)", 0.90, -1, "#FC4C02"},
}

// calculateHeartRateZones buckets HR-bearing activities into the five bands.
// Percentages are shares of the activities that recorded a heart rate, so a
// data-sparse export still produces meaningful proportions. With zero
// HR-bearing activities the result is an empty list, not zero-filled zones.
func calculateHeartRateZones(activities []domain.Activity, userMaxHR float64) []HeartRateZone {
	withHR := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if a.AverageHeartRate > 0 {
			withHR = append(withHR, a)
		}
	}
	if len(withHR) == 0 {
		return []HeartRateZone{}
	}

	maxHR := userMaxHR
	if maxHR <= 0 {
		maxHR = defaultMaxHR
	}

	type band struct {
		min, max int
		count    int
	}
	bands := make([]band, len(zoneSpecs))
	for i, spec := range zoneSpecs {
		bands[i].min = roundInt(maxHR * spec.low)
		if spec.high < 0 {
			bands[i].max = 999
		} else {
			bands[i].max = roundInt(maxHR * spec.high)
		}
	}

	for _, a := range withHR {
		hr := a.AverageHeartRate
		for i := range bands {
			if hr >= float64(bands[i].min) && hr < float64(bands[i].max) {
				bands[i].count++
				break
			}
		}
	}

	zones := make([]HeartRateZone, len(zoneSpecs))
	for i, spec := range zoneSpecs {
		zones[i] = HeartRateZone{
			Zone:       spec.name,
			Percentage: roundInt(float64(bands[i].count) / float64(len(withHR)) * 100),
			Count:      bands[i].count,
			Color:      spec.color,
		}
	}
	return zones
}
