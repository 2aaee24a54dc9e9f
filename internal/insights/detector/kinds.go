package detector

import (
	"context"
	"errors"
	"math"
	"time"

	"insight-mailer/internal/store"

	"github.com/google/uuid"
)

const (
	defaultGrowthPeriod = 7 * 24 * time.Hour
	defaultWindow       = 30 * 24 * time.Hour
)

// GrowthTrend finds the track whose plays grew the most against the previous period.
type GrowthTrend struct {
	store            MetricsStore
	clock            Clock
	period           time.Duration
	minPreviousPlays int
}

func (d *GrowthTrend) Kind() string {
	return store.InsightKindGrowthTrend
}

func (d *GrowthTrend) Detect(ctx context.Context, userID uuid.UUID) (*Candidate, error) {
	now := d.clock()
	period := d.period
	if period <= 0 {
		period = defaultGrowthPeriod
	}

	growth, err := d.store.GetTopTrackGrowth(ctx, userID, now, period, d.minPreviousPlays)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, &DataUnavailableError{Kind: d.Kind(), UserID: userID, Err: err}
	}
	if growth.PreviousPlays <= d.minPreviousPlays || growth.CurrentPlays <= growth.PreviousPlays {
		return nil, nil
	}

	rate := float64(growth.CurrentPlays-growth.PreviousPlays) / float64(growth.PreviousPlays) * 100
	return &Candidate{
		UserID: userID,
		Kind:   d.Kind(),
		Payload: map[string]any{
			"song_title":          growth.SongTitle,
			"artist":              growth.Artist,
			"current_week_plays":  growth.CurrentPlays,
			"previous_week_plays": growth.PreviousPlays,
			"growth_rate":         round2(rate),
		},
		DetectedAt: now,
	}, nil
}

// ArtistFocus fires when one artist dominates the listening window.
type ArtistFocus struct {
	store    MetricsStore
	clock    Clock
	window   time.Duration
	minPlays int
	minShare float64
}

func (d *ArtistFocus) Kind() string {
	return store.InsightKindArtistFocus
}

func (d *ArtistFocus) Detect(ctx context.Context, userID uuid.UUID) (*Candidate, error) {
	now := d.clock()
	since := now.Add(-windowOrDefault(d.window))

	share, err := d.store.GetTopArtistShare(ctx, userID, since, now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, &DataUnavailableError{Kind: d.Kind(), UserID: userID, Err: err}
	}
	if share.TotalPlays == 0 || share.ArtistPlays < d.minPlays {
		return nil, nil
	}
	ratio := float64(share.ArtistPlays) / float64(share.TotalPlays)
	if ratio < d.minShare {
		return nil, nil
	}

	return &Candidate{
		UserID: userID,
		Kind:   d.Kind(),
		Payload: map[string]any{
			"artist":       share.Artist,
			"artist_plays": share.ArtistPlays,
			"total_plays":  share.TotalPlays,
			"share":        round2(ratio * 100),
			"window_days":  int(windowOrDefault(d.window).Hours() / 24),
		},
		DetectedAt: now,
	}, nil
}

// Diversity reports a wide listening range over the window.
type Diversity struct {
	store      MetricsStore
	clock      Clock
	window     time.Duration
	minArtists int
}

func (d *Diversity) Kind() string {
	return store.InsightKindDiversity
}

func (d *Diversity) Detect(ctx context.Context, userID uuid.UUID) (*Candidate, error) {
	now := d.clock()
	since := now.Add(-windowOrDefault(d.window))

	div, err := d.store.GetListeningDiversity(ctx, userID, since, now)
	if err != nil {
		return nil, &DataUnavailableError{Kind: d.Kind(), UserID: userID, Err: err}
	}
	if div.TotalPlays == 0 || div.DistinctArtists < d.minArtists {
		return nil, nil
	}

	return &Candidate{
		UserID: userID,
		Kind:   d.Kind(),
		Payload: map[string]any{
			"distinct_artists": div.DistinctArtists,
			"distinct_tracks":  div.DistinctTracks,
			"total_plays":      div.TotalPlays,
			"window_days":      int(windowOrDefault(d.window).Hours() / 24),
		},
		DetectedAt: now,
	}, nil
}

func windowOrDefault(w time.Duration) time.Duration {
	if w <= 0 {
		return defaultWindow
	}
	return w
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
