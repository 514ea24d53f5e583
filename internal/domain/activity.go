// Package domain defines the canonical activity model produced by
// normalization and the auxiliary records decoded from the side-channel
// export members.
package domain

import "time"

// RawActivity is one line of the source activity table, captured verbatim.
// Every field is a string in an unspecified locale; the normalizer runs the
// value parsers over it exactly once, after which the raw row is discarded.
type RawActivity struct {
	Date               string
	ActivityType       string
	ActivityName       string
	Distance           string
	ElapsedTime        string
	MovingTime         string
	ElevationGain      string
	ElevationLoss      string
	Calories           string
	AverageHeartRate   string
	AveragePower       string
	AverageTemperature string
	TotalSteps         string
}

// Activity is the canonical workout record. Instances are created once during
// normalization and are immutable thereafter. Every Activity that reaches an
// aggregate has a valid Date (local time components) and some measurable
// movement (Distance > 0 or ElapsedTime > 0).
//
// The sensor fields (Calories, AverageHeartRate, AveragePower,
// AverageTemperature, TotalSteps) use 0 to mean "not recorded"; aggregates
// that care about them filter on > 0.
type Activity struct {
	Date          time.Time
	Type          string
	Name          string
	Distance      float64 // km
	ElapsedTime   float64 // seconds, includes pauses
	MovingTime    float64 // seconds, excludes pauses
	ElevationGain float64 // m
	ElevationLoss float64 // m
	IsTrail       bool

	Calories           float64
	AverageHeartRate   float64
	AveragePower       float64
	AverageTemperature float64
	TotalSteps         float64
}

// Profile holds the athlete identity row from profile.csv.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	City      string `json:"city"`
	Bio       string `json:"bio"`
	Email     string `json:"email"`
	Gender    string `json:"gender,omitempty"`
}

// Preferences holds training thresholds from general_preferences.csv.
type Preferences struct {
	FTP       float64 `json:"ftp"`   // functional threshold power, watts
	MaxHR     float64 `json:"maxHR"` // bpm
	BirthDate string  `json:"birthDate,omitempty"`
}

// Comment is one received comment.
type Comment struct {
	Date time.Time `json:"date"`
	Text string    `json:"text"`
}

// Social aggregates message, club, and kudos counts.
type Social struct {
	TotalMessages int `json:"totalMessages"`
	TotalClubs    int `json:"totalClubs"`
	TotalKudos    int `json:"totalKudos"`
}

// Logins summarises the login history member.
type Logins struct {
	PeakHour    int    `json:"peakHour"`
	PeakDay     string `json:"peakDay"`
	TotalLogins int    `json:"totalLogins"`
}

// Follower is one row of followers.csv. The export carries no follow date.
type Follower struct {
	AthleteID string
	Status    string
}

// Challenge is one row of global_challenges.csv.
type Challenge struct {
	Name       string
	DateJoined time.Time
	Completed  bool
}

// Auxiliary bundles every side-channel record set decoded from the archive.
// A missing member file leaves the corresponding field at its zero value;
// absence is never an error.
type Auxiliary struct {
	Profile     *Profile
	Preferences *Preferences
	Comments    []Comment
	Social      Social
	Logins      Logins
	Followers   []Follower
	Challenges  []Challenge
}
