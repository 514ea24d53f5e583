package stats

import (
	"sort"
	"time"

	"example.com/recap/internal/domain"
)

// calculateTimeOfDay buckets each activity by its local start hour. Hours
// 22-23 and 0-4 both land in Night, wrapping past midnight.
func calculateTimeOfDay(activities []domain.Activity) TimeOfDayDistribution {
	var d TimeOfDayDistribution
	for _, a := range activities {
		hour := a.Date.Hour()
		switch {
		case hour >= 5 && hour < 12:
			d.Morning++
		case hour >= 12 && hour < 14:
			d.Midday++
		case hour >= 14 && hour < 18:
			d.Afternoon++
		case hour >= 18 && hour < 22:
			d.Evening++
		default:
			d.Night++
		}
	}
	return d
}

// dayMessages carries the fixed motivational label per weekday, keyed by
// French day name.
var dayMessages = map[string]string{
	"Lundi":    "Lundi Motivation! 💪",
	"Mardi":    "Mardi Puissance! ⚡",
	"Mercredi": "Mercredi Mi-semaine! 🔥",
	"Jeudi":    "Jeudi Détermination! 🎯",
	"Vendredi": "Vendredi Liberté! 🎉",
	"Samedi":   "Samedi Aventure! 🏔️",
	"Dimanche": "Dimanche Récupération! 🌅",
}

var dayEmojis = map[string]string{
	"Lundi":    "💼",
	"Mardi":    "⚡",
	"Mercredi": "🔥",
	"Jeudi":    "🎯",
	"Vendredi": "🎉",
	"Samedi":   "🏔️",
	"Dimanche": "🌅",
}

func groupByMonth(activities []domain.Activity) map[string]MonthStats {
	grouped := make(map[string]MonthStats)
	for _, a := range activities {
		name := domain.MonthName(a.Date.Month())
		m, ok := grouped[name]
		if !ok {
			m = MonthStats{Month: name, MonthNumber: int(a.Date.Month())}
		}
		m.Count++
		m.TotalDistance += a.Distance
		m.TotalTime += a.MovingTime
		m.TotalElevation += a.ElevationGain
		grouped[name] = m
	}
	return grouped
}

func groupByDayOfWeek(activities []domain.Activity) map[string]DayOfWeekStats {
	grouped := make(map[string]DayOfWeekStats)
	for _, a := range activities {
		name := domain.WeekdayName(a.Date.Weekday())
		d, ok := grouped[name]
		if !ok {
			d = DayOfWeekStats{
				Day:       name,
				DayNumber: domain.WeekdayMondayIndex(a.Date.Weekday()),
				Message:   dayMessages[name],
				Emoji:     dayEmojis[name],
			}
		}
		d.Count++
		d.TotalDistance += a.Distance
		d.TotalTime += a.MovingTime
		grouped[name] = d
	}
	return grouped
}

// calculateConsistencyStreak derives streaks from the set of distinct
// calendar days with at least one activity. The current streak only survives
// when the most recent active day is within one day of now ("today or
// yesterday"); timezone drift near midnight follows the local dates as-is.
func calculateConsistencyStreak(activities []domain.Activity, year int, now time.Time) ConsistencyStreak {
	if len(activities) == 0 {
		return ConsistencyStreak{}
	}

	daySet := make(map[string]struct{})
	for _, a := range activities {
		daySet[dayKey(a.Date)] = struct{}{}
	}

	days := make([]time.Time, 0, len(daySet))
	for key := range daySet {
		d, err := time.Parse("2006-01-02", key)
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, trailing := 1, 1
	for i := 1; i < len(days); i++ {
		if diffDays(days[i-1], days[i]) == 1 {
			trailing++
		} else {
			if trailing > longest {
				longest = trailing
			}
			trailing = 1
		}
	}
	if trailing > longest {
		longest = trailing
	}

	current := 0
	lastDay := days[len(days)-1]
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if diffDays(lastDay, nowDay) <= 1 {
		current = trailing
	}

	var periodDays int
	if year != 0 {
		periodDays = 365
		if isLeapYear(year) {
			periodDays = 366
		}
	} else {
		periodDays = diffDays(days[0], days[len(days)-1]) + 1
	}

	return ConsistencyStreak{
		LongestStreak:        longest,
		CurrentStreak:        current,
		TotalWeeksActive:     periodDays / 7,
		ActiveDaysPercentage: roundInt(float64(len(days)) / float64(periodDays) * 100),
	}
}

func diffDays(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
