// Package pipeline runs one export archive end to end: extraction,
// normalization, year scoping, aggregation, classification, and the
// visibility pass over the finished statistics.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"example.com/recap/internal/archive"
	"example.com/recap/internal/domain"
	"example.com/recap/internal/dominance"
	"example.com/recap/internal/observability"
	"example.com/recap/internal/stats"
	"example.com/recap/internal/visibility"
)

var (
	// ErrUnreadableArchive means the upload is not a readable zip archive.
	ErrUnreadableArchive = errors.New("unreadable export archive")
	// ErrNoActivities means the archive opened but no usable activity rows
	// survived normalization.
	ErrNoActivities = errors.New("export contains no usable activities")
)

// Report is the complete recap for one export.
type Report struct {
	ID              uuid.UUID             `json:"id"`
	GeneratedAt     time.Time             `json:"generatedAt"`
	Year            int                   `json:"year,omitempty"`
	Stats           *stats.ProcessedStats `json:"stats"`
	Dominance       dominance.Result      `json:"dominance"`
	VisibleFeatures []visibility.Feature  `json:"visibleFeatures"`
}

// Options scope one processing run. Year selects the recap year; 0 means
// all time. Now anchors future-date filtering and streak recency; the zero
// value falls back to the wall clock.
type Options struct {
	Year int
	Now  time.Time
}

// Option configures optional behaviour for the Processor.
type Option func(*Processor)

// WithLogger overrides the logger used for run diagnostics. The extractor
// inherits it.
func WithLogger(logger *log.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// Processor turns export archives into recap reports. Safe for concurrent
// use.
type Processor struct {
	logger    *log.Logger
	extractor *archive.Extractor
}

// New constructs a Processor.
func New(opts ...Option) *Processor {
	p := &Processor{
		logger: log.New(log.Writer(), "[pipeline] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.extractor = archive.New(archive.WithLogger(p.logger))
	return p
}

// Process reads the archive from r and builds the full recap. The returned
// error is ErrUnreadableArchive or ErrNoActivities (possibly wrapped) for
// input problems, or the context error when cancelled mid-extraction.
//
// When opts.Year matches no activities the run falls back to the full
// activity set in all-time mode, so an export with data only outside the
// target year still produces a recap.
func (p *Processor) Process(ctx context.Context, r io.ReaderAt, size int64, opts Options) (*Report, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	start := time.Now()

	export, err := p.extractor.Extract(ctx, r, size, opts.Year)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		observability.RecordExportFailed("unreadable_archive")
		return nil, fmt.Errorf("%w: %v", ErrUnreadableArchive, err)
	}

	activities, dropped := domain.Normalize(export.RawActivities, now)
	observability.RecordRowsDropped(dropped)
	if dropped > 0 {
		p.logger.Printf("dropped %d invalid activity rows out of %d", dropped, len(export.RawActivities))
	}

	if len(activities) == 0 {
		observability.RecordExportFailed("no_activities")
		return nil, ErrNoActivities
	}

	year := opts.Year
	if year != 0 {
		scoped := domain.FilterByYear(activities, year)
		if len(scoped) == 0 {
			p.logger.Printf("no activities in %d, using all %d activities", year, len(activities))
			year = 0
		} else {
			activities = scoped
		}
	}

	processed := stats.Aggregate(activities, export.Aux, stats.Options{Year: year, Now: now})
	result := dominance.Classify(processed)

	report := &Report{
		ID:              uuid.New(),
		GeneratedAt:     now,
		Year:            year,
		Stats:           processed,
		Dominance:       result,
		VisibleFeatures: visibility.VisibleFeatures(processed),
	}

	observability.RecordExportProcessed(time.Since(start))
	p.logger.Printf("processed export %s: %d activities, profile %s (%d%%)",
		report.ID, processed.TotalActivities, result.Profile, result.Confidence)

	return report, nil
}
