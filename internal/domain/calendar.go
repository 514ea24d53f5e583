package domain

import "time"

// The recap is rendered in French; month and weekday bucket keys follow the
// source export's locale.

var frenchMonths = [...]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

var frenchWeekdays = [...]string{
	"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi",
}

// MonthName returns the French name for a month.
func MonthName(m time.Month) string {
	return frenchMonths[int(m)-1]
}

// WeekdayName returns the French name for a weekday.
func WeekdayName(d time.Weekday) string {
	return frenchWeekdays[int(d)]
}

// WeekdayMondayIndex numbers weekdays Monday-first: Lundi is 0, Dimanche 6.
func WeekdayMondayIndex(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d) - 1
}
