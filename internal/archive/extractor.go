// Package archive opens a fitness export ZIP and decodes its known member
// files into typed record sets. Member absence is never an error: the
// corresponding output field stays at its zero value and the pipeline
// degrades to fewer optional features.
package archive

import (
	"archive/zip"
	"context"
	"encoding/json"
	"io"
	"log"
	"strings"

	"example.com/recap/internal/domain"
	"example.com/recap/internal/parse"
)

// Member file names the extractor looks for inside the export.
const (
	memberActivities  = "activities.csv"
	memberProfile     = "profile.csv"
	memberPreferences = "general_preferences.csv"
	memberComments    = "comments.csv"
	memberReactions   = "reactions.csv"
	memberLogins      = "logins.csv"
	memberFollowers   = "followers.csv"
	memberChallenges  = "global_challenges.csv"
	memberMessaging   = "messaging.json"
	memberMemberships = "memberships.csv"
)

// Export is the full decoded archive: the raw activity rows awaiting
// normalization plus every auxiliary record set.
type Export struct {
	RawActivities []domain.RawActivity
	Aux           domain.Auxiliary
}

// Option configures optional behaviour for the Extractor.
type Option func(*Extractor)

// WithLogger overrides the logger used for member-level diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// Extractor decodes export archives. The zero configuration logs to the
// process default logger.
type Extractor struct {
	logger *log.Logger
}

// New constructs an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		logger: log.New(log.Writer(), "[archive] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract opens the archive and decodes every known member. year scopes the
// social record sets (comments, kudos, logins, challenges) to that calendar
// year; pass 0 to keep everything. Activities are never year-scoped here —
// the year filter with its fallback policy applies downstream.
//
// The only error returned is a failure to open the archive itself. Individual
// member decode failures are logged and absorbed, leaving that member's
// records empty. The context is checked between members so extraction of
// large archives can be cancelled or timed out.
func (e *Extractor) Extract(ctx context.Context, r io.ReaderAt, size int64, year int) (*Export, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	export := &Export{}

	steps := []struct {
		member string
		decode func([]byte)
	}{
		{memberProfile, export.decodeProfile},
		{memberPreferences, export.decodePreferences},
		{memberComments, func(b []byte) { export.decodeComments(b, year) }},
		{memberMessaging, export.decodeMessaging},
		{memberMemberships, export.decodeMemberships},
		{memberReactions, func(b []byte) { export.decodeReactions(b, year) }},
		{memberLogins, func(b []byte) { export.decodeLogins(b, year) }},
		{memberFollowers, export.decodeFollowers},
		{memberChallenges, func(b []byte) { export.decodeChallenges(b, year) }},
		{memberActivities, export.decodeActivities},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, found, err := readMember(zr, step.member)
		if err != nil {
			e.logger.Printf("skipping member %s: %v", step.member, err)
			continue
		}
		if !found {
			continue
		}
		step.decode(content)
	}

	return export, nil
}

func readMember(zr *zip.Reader, name string) ([]byte, bool, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, true, err
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, true, err
		}
		return content, true, nil
	}
	return nil, false, nil
}

func (x *Export) decodeProfile(content []byte) {
	t, err := decodeTable(content)
	if err != nil || len(t.rows) == 0 {
		return
	}

	firstName := t.column("Prénom", "First Name")
	lastName := t.column("Nom", "Last Name")
	city := t.column("Ville", "City")
	bio := t.column("Description", "Bio")
	email := t.column("Adresse e-mail", "Email")
	gender := t.column("Sexe", "Gender")

	row := t.rows[0]
	x.Aux.Profile = &domain.Profile{
		FirstName: value(row, firstName),
		LastName:  value(row, lastName),
		City:      value(row, city),
		Bio:       value(row, bio),
		Email:     value(row, email),
		Gender:    value(row, gender),
	}
}

func (x *Export) decodePreferences(content []byte) {
	t, err := decodeTable(content)
	if err != nil || len(t.rows) == 0 {
		return
	}

	ftp := t.column("Seuil fonctionnel de puissance", "Functional Threshold Power")
	maxHR := t.column("Fréquence cardiaque maximale", "Max Heart Rate")
	birth := t.column("Date de naissance", "Date of Birth")

	row := t.rows[0]
	x.Aux.Preferences = &domain.Preferences{
		FTP:       parse.Number(value(row, ftp)),
		MaxHR:     parse.Number(value(row, maxHR)),
		BirthDate: value(row, birth),
	}
}

func (x *Export) decodeComments(content []byte, year int) {
	t, err := decodeTable(content)
	if err != nil {
		return
	}

	dateCol := t.column("Date du commentaire", "Comment Date")
	textCol := t.column("Commenter", "Comment")

	for _, row := range t.rows {
		text := value(row, textCol)
		if text == "" {
			continue
		}
		date, ok := parse.Date(value(row, dateCol))
		if year != 0 && (!ok || date.Year() != year) {
			continue
		}
		x.Aux.Comments = append(x.Aux.Comments, domain.Comment{Date: date, Text: text})
	}
}

func (x *Export) decodeMessaging(content []byte) {
	var messages []json.RawMessage
	if err := json.Unmarshal(content, &messages); err != nil {
		return
	}
	x.Aux.Social.TotalMessages = len(messages)
}

func (x *Export) decodeMemberships(content []byte) {
	t, err := decodeTable(content)
	if err != nil {
		return
	}
	x.Aux.Social.TotalClubs = len(t.rows)
}

func (x *Export) decodeReactions(content []byte, year int) {
	t, err := decodeTable(content)
	if err != nil {
		return
	}

	dateCol := t.column("Date de réaction", "Reaction Date", "Date")

	kudos := 0
	for _, row := range t.rows {
		if year != 0 {
			date, ok := parse.Date(value(row, dateCol))
			if !ok || date.Year() != year {
				continue
			}
		}
		kudos++
	}
	x.Aux.Social.TotalKudos = kudos
}

func (x *Export) decodeLogins(content []byte, year int) {
	t, err := decodeTable(content)
	if err != nil {
		return
	}

	dateCol := t.column("Date et heure de connexion", "Date de connexion", "Login Date")

	hourCounts := make(map[int]int)
	dayCounts := make(map[string]int)
	total := 0

	for _, row := range t.rows {
		date, ok := parse.Date(value(row, dateCol))
		if !ok {
			continue
		}
		if year != 0 && date.Year() != year {
			continue
		}
		total++
		hourCounts[date.Hour()]++
		dayCounts[domain.WeekdayName(date.Weekday())]++
	}

	x.Aux.Logins.TotalLogins = total
	x.Aux.Logins.PeakHour = peakInt(hourCounts)
	x.Aux.Logins.PeakDay = peakString(dayCounts)
}

func (x *Export) decodeFollowers(content []byte) {
	t, err := decodeTable(content)
	if err != nil {
		return
	}

	idCol := t.column("ID de l'athlète abonné(e)", "Follower Athlete ID")
	statusCol := t.column("Statut d'abonnement", "Following Status")

	for _, row := range t.rows {
		id := value(row, idCol)
		if id == "" {
			continue
		}
		x.Aux.Followers = append(x.Aux.Followers, domain.Follower{
			AthleteID: id,
			Status:    value(row, statusCol),
		})
	}
}

func (x *Export) decodeChallenges(content []byte, year int) {
	t, err := decodeTable(content)
	if err != nil {
		return
	}

	nameCol := t.column("Nom", "Name")
	joinedCol := t.column("Date d'inscription", "Join Date")
	completedCol := t.column("Terminé", "Completed")

	for _, row := range t.rows {
		name := value(row, nameCol)
		if name == "" {
			continue
		}
		joined, ok := parse.Date(value(row, joinedCol))
		if year != 0 && (!ok || joined.Year() != year) {
			continue
		}
		x.Aux.Challenges = append(x.Aux.Challenges, domain.Challenge{
			Name:       name,
			DateJoined: joined,
			Completed:  strings.EqualFold(value(row, completedCol), "true"),
		})
	}
}

func (x *Export) decodeActivities(content []byte) {
	t, err := decodeTable(content)
	if err != nil {
		return
	}

	date := t.column("Activity Date", "Date de l'activité", "Date")
	name := t.column("Activity Name", "Nom de l'activité", "Nom")
	typ := t.column("Activity Type", "Type d'activité", "Type")
	elapsed := t.column("Elapsed Time", "Temps écoulé")
	moving := t.column("Moving Time", "Durée de déplacement")
	distance := t.column("Distance")
	elevGain := t.column("Elevation Gain", "Dénivelé positif", "Elevation")
	elevLoss := t.column("Elevation Loss", "Dénivelé négatif")
	calories := t.column("Calories")
	avgHR := t.column("Average Heart Rate", "Fréquence cardiaque moyenne", "Avg HR")
	avgPower := t.column("Average Power", "Puissance moyenne", "Avg Power")
	avgTemp := t.column("Average Temperature", "Température moyenne", "Avg Temp")
	steps := t.column("Total Steps", "Nombre total de pas")

	for _, row := range t.rows {
		x.RawActivities = append(x.RawActivities, domain.RawActivity{
			Date:               value(row, date),
			ActivityType:       value(row, typ),
			ActivityName:       value(row, name),
			Distance:           value(row, distance),
			ElapsedTime:        value(row, elapsed),
			MovingTime:         value(row, moving),
			ElevationGain:      value(row, elevGain),
			ElevationLoss:      value(row, elevLoss),
			Calories:           value(row, calories),
			AverageHeartRate:   value(row, avgHR),
			AveragePower:       value(row, avgPower),
			AverageTemperature: value(row, avgTemp),
			TotalSteps:         value(row, steps),
		})
	}
}

func peakInt(counts map[int]int) int {
	peak, best := 0, 0
	for k, n := range counts {
		if n > best || (n == best && best > 0 && k < peak) {
			peak, best = k, n
		}
	}
	return peak
}

func peakString(counts map[string]int) string {
	peak, best := "", 0
	for k, n := range counts {
		if n > best || (n == best && best > 0 && k < peak) {
			peak, best = k, n
		}
	}
	return peak
}
