// Package dominance assigns one of four behavioural archetypes to a season
// of activity. Each archetype has an additive scoring rule evaluated
// independently against the finalized statistics; the strictly highest score
// wins and its theme drives the presentation. Classification is a pure
// function of its input and cheap enough to call per render: it touches only
// the per-type map and a handful of scalars, never the activity list.
package dominance

import "example.com/recap/internal/stats"

// Archetype identifies a behavioural profile.
type Archetype string

const (
	// ArchetypeSummits rewards vertical gain and trail share.
	ArchetypeSummits Archetype = "ame-des-cimes"
	// ArchetypeWarMachine rewards intensity work, power, and speed.
	ArchetypeWarMachine Archetype = "machine-de-guerre"
	// ArchetypeMetronome rewards running share and relentless regularity.
	ArchetypeMetronome Archetype = "metronome"
	// ArchetypeExplorer rewards variety and covered ground.
	ArchetypeExplorer Archetype = "explorateur"
)

// ThemeColors is the palette attached to an archetype.
type ThemeColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

// ThemeGradients carries the background and glow-overlay gradients.
type ThemeGradients struct {
	Main    string `json:"main"`
	Overlay string `json:"overlay"`
}

// ThemeBadge is the small emblem shown with the archetype.
type ThemeBadge struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

// Theme bundles everything the presentation layer needs to style a recap for
// one archetype.
type Theme struct {
	Name      string         `json:"name"`
	Colors    ThemeColors    `json:"colors"`
	Gradients ThemeGradients `json:"gradients"`
	Badge     ThemeBadge     `json:"badge"`
}

// Result is the classifier output: the winning archetype, its display
// strings and theme, and the winning score clamped to [0,100].
type Result struct {
	Profile     Archetype `json:"profile"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Theme       Theme     `json:"theme"`
	Confidence  int       `json:"confidence"`
}

// defaultArchetype is returned when no rule scores above zero; there is no
// "unclassified" state.
const defaultArchetype = ArchetypeMetronome

// rules is the static ordered rule list. Order matters only for strict-tie
// resolution: an archetype later in the list must score strictly higher than
// the current leader to take over.
var rules = []struct {
	archetype Archetype
	score     func(*stats.ProcessedStats) int
}{
	{ArchetypeSummits, scoreSummits},
	{ArchetypeWarMachine, scoreWarMachine},
	{ArchetypeMetronome, scoreMetronome},
	{ArchetypeExplorer, scoreExplorer},
}

// Classify inspects the processed statistics and returns the dominant
// archetype. Deterministic and re-entrant: identical input yields identical
// output.
func Classify(s *stats.ProcessedStats) Result {
	winner := defaultArchetype
	best := 0

	for _, rule := range rules {
		if score := rule.score(s); score > best {
			winner = rule.archetype
			best = score
		}
	}

	confidence := best
	if confidence > 100 {
		confidence = 100
	}

	return Result{
		Profile:     winner,
		Title:       titles[winner],
		Description: descriptions[winner],
		Theme:       themes[winner],
		Confidence:  confidence,
	}
}

func scoreSummits(s *stats.ProcessedStats) int {
	score := 0

	if s.TotalDistance > 0 {
		ratio := float64(s.TotalElevation) / float64(s.TotalDistance)
		switch {
		case ratio > 15: // more than 15 m of gain per km
			score += 40
		case ratio > 10:
			score += 20
		}
	}

	// TrailFactor is a whole percentage, so any nonzero trail share
	// clears both bars and the +15 tier is unreachable.
	switch {
	case float64(s.TrailFactor) > 0.3:
		score += 30
	case float64(s.TrailFactor) > 0.15:
		score += 15
	}

	if s.TotalActivities > 0 {
		trailRunning := float64(s.ActivitiesByType["Trail Running"].Count)
		total := float64(s.TotalActivities)
		switch {
		case trailRunning > total*0.5:
			score += 30
		case trailRunning > total*0.3:
			score += 15
		}
	}

	return score
}

func scoreWarMachine(s *stats.ProcessedStats) int {
	score := 0

	if s.TotalActivities > 0 {
		intensity := float64(s.ActivitiesByType["HIIT"].Count + s.ActivitiesByType["Workout"].Count)
		total := float64(s.TotalActivities)
		switch {
		case intensity > total*0.3:
			score += 50
		case intensity > total*0.2:
			score += 25
		}
	}

	if s.PowerStats != nil {
		switch {
		case s.PowerStats.AveragePower > 200:
			score += 30
		case s.PowerStats.AveragePower > 150:
			score += 15
		}
	}

	if s.TotalHours > 0 {
		avgSpeed := float64(s.TotalDistance) / float64(s.TotalHours)
		switch {
		case avgSpeed > 12:
			score += 20
		case avgSpeed > 10:
			score += 10
		}
	}

	return score
}

func scoreMetronome(s *stats.ProcessedStats) int {
	score := 0

	if s.TotalActivities > 0 {
		runningPct := float64(s.ActivitiesByType["Running"].Count) / float64(s.TotalActivities)
		switch {
		case runningPct > 0.8:
			score += 40
		case runningPct > 0.6:
			score += 20
		}
	}

	switch {
	case s.ConsistencyStreak.ActiveDaysPercentage > 80:
		score += 40
	case s.ConsistencyStreak.ActiveDaysPercentage > 60:
		score += 20
	}

	switch {
	case s.ConsistencyStreak.LongestStreak > 30:
		score += 20
	case s.ConsistencyStreak.LongestStreak > 14:
		score += 10
	}

	return score
}

func scoreExplorer(s *stats.ProcessedStats) int {
	score := 0

	switch variety := len(s.ActivitiesByType); {
	case variety >= 5:
		score += 30
	case variety >= 3:
		score += 15
	}

	switch {
	case s.TotalDistance > 2000:
		score += 30
	case s.TotalDistance > 1000:
		score += 15
	}

	switch months := len(s.ActivitiesByMonth); {
	case months >= 10:
		score += 20
	case months >= 6:
		score += 10
	}

	if len(s.ActivitiesByDayOfWeek) == 7 {
		score += 10
	}

	return score
}
