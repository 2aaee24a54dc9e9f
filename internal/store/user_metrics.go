package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const userColumns = `id, email, full_name, status, created_at`

const sqlListActiveUsers = `
SELECT ` + userColumns + `
FROM users
WHERE status = 'active'
ORDER BY created_at ASC
`

// ListActiveUsers returns every user eligible for insight emails
func (s *Store) ListActiveUsers(ctx context.Context) ([]User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	users := []User{}
	if err := s.db.SelectContext(ctx, &users, sqlListActiveUsers); err != nil {
		return nil, fmt.Errorf("failed to list active users: %w", err)
	}
	return users, nil
}

// GetUsersByIDs returns the users with the given ids; unknown ids are ignored
func (s *Store) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]User, error) {
	if len(ids) == 0 {
		return []User{}, nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query, args, err := sq.Select(userColumns).
		From("users").
		Where(sq.Eq{"id": ids}).
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	users := []User{}
	if err := s.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

const sqlGetUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

// GetUserByID retrieves a user by ID
func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var user User
	if err := s.db.GetContext(ctx, &user, sqlGetUserByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

const sqlGetTopTrackGrowth = `
WITH current_period AS (
    SELECT song_title, artist, COUNT(*) AS plays
    FROM plays
    WHERE user_id = $1 AND played_at >= $2 AND played_at < $3
    GROUP BY song_title, artist
), previous_period AS (
    SELECT song_title, artist, COUNT(*) AS plays
    FROM plays
    WHERE user_id = $1 AND played_at >= $4 AND played_at < $2
    GROUP BY song_title, artist
)
SELECT c.song_title, c.artist, c.plays AS current_plays, p.plays AS previous_plays
FROM current_period c
JOIN previous_period p ON p.song_title = c.song_title AND p.artist = c.artist
WHERE p.plays > $5 AND c.plays > p.plays
ORDER BY (c.plays::float8 / p.plays) DESC, c.plays DESC, c.song_title ASC, c.artist ASC
LIMIT 1
`

// GetTopTrackGrowth returns the fastest growing track between the period ending at now
// and the one before it. Tracks with minPreviousPlays or fewer previous plays are ignored.
func (s *Store) GetTopTrackGrowth(ctx context.Context, userID uuid.UUID, now time.Time, period time.Duration, minPreviousPlays int) (TrackGrowth, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	currentStart := now.Add(-period)
	previousStart := currentStart.Add(-period)

	var growth TrackGrowth
	err := s.db.GetContext(ctx, &growth, sqlGetTopTrackGrowth, userID, currentStart, now, previousStart, minPreviousPlays)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackGrowth{}, ErrNotFound
		}
		return TrackGrowth{}, fmt.Errorf("failed to get track growth: %w", err)
	}
	return growth, nil
}

const sqlGetTopArtistShare = `
SELECT artist, COUNT(*) AS artist_plays, (SUM(COUNT(*)) OVER ())::int AS total_plays
FROM plays
WHERE user_id = $1 AND played_at >= $2 AND played_at < $3
GROUP BY artist
ORDER BY artist_plays DESC, artist ASC
LIMIT 1
`

// GetTopArtistShare returns the most played artist and the window's total plays
func (s *Store) GetTopArtistShare(ctx context.Context, userID uuid.UUID, since, until time.Time) (ArtistShare, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var share ArtistShare
	err := s.db.GetContext(ctx, &share, sqlGetTopArtistShare, userID, since, until)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ArtistShare{}, ErrNotFound
		}
		return ArtistShare{}, fmt.Errorf("failed to get artist share: %w", err)
	}
	return share, nil
}

const sqlGetListeningDiversity = `
SELECT COUNT(DISTINCT artist) AS distinct_artists,
       COUNT(DISTINCT song_title || '|' || artist) AS distinct_tracks,
       COUNT(*) AS total_plays
FROM plays
WHERE user_id = $1 AND played_at >= $2 AND played_at < $3
`

// GetListeningDiversity counts distinct artists and tracks in a window
func (s *Store) GetListeningDiversity(ctx context.Context, userID uuid.UUID, since, until time.Time) (ListeningDiversity, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var d ListeningDiversity
	if err := s.db.GetContext(ctx, &d, sqlGetListeningDiversity, userID, since, until); err != nil {
		return ListeningDiversity{}, fmt.Errorf("failed to get listening diversity: %w", err)
	}
	return d, nil
}

const sqlGetPlayTotals = `
SELECT COUNT(*) AS total_plays,
       COUNT(*) FILTER (WHERE played_at >= $2) AS weekly_plays,
       COUNT(*) FILTER (WHERE played_at >= $3 AND played_at < $2) AS previous_week_plays,
       COUNT(*) FILTER (WHERE played_at >= $4) AS monthly_plays,
       COUNT(DISTINCT song_title || '|' || artist) FILTER (WHERE played_at >= $4) AS discovery_count,
       COUNT(*) FILTER (WHERE played_at >= $4 AND EXTRACT(DOW FROM played_at) IN (0, 6)) AS weekend_plays,
       COUNT(*) FILTER (WHERE played_at >= $4 AND EXTRACT(DOW FROM played_at) NOT IN (0, 6)) AS weekday_plays
FROM plays
WHERE user_id = $1 AND played_at < $5
`

const sqlGetTopSong = `
SELECT song_title FROM plays
WHERE user_id = $1 AND played_at >= $2 AND played_at < $3
GROUP BY song_title, artist
ORDER BY COUNT(*) DESC, song_title ASC
LIMIT 1
`

const sqlGetTopArtist = `
SELECT artist FROM plays
WHERE user_id = $1 AND played_at >= $2 AND played_at < $3
GROUP BY artist
ORDER BY COUNT(*) DESC, artist ASC
LIMIT 1
`

const sqlGetPeakHour = `
SELECT EXTRACT(HOUR FROM played_at)::int AS hour FROM plays
WHERE user_id = $1 AND played_at >= $2 AND played_at < $3
GROUP BY 1
ORDER BY COUNT(*) DESC, 1 ASC
LIMIT 1
`

const sqlGetFavoriteGenre = `
SELECT genre FROM plays
WHERE user_id = $1 AND played_at >= $2 AND played_at < $3 AND genre IS NOT NULL AND genre <> ''
GROUP BY genre
ORDER BY COUNT(*) DESC, genre ASC
LIMIT 1
`

type playTotals struct {
	TotalPlays        int `db:"total_plays"`
	WeeklyPlays       int `db:"weekly_plays"`
	PreviousWeekPlays int `db:"previous_week_plays"`
	MonthlyPlays      int `db:"monthly_plays"`
	DiscoveryCount    int `db:"discovery_count"`
	WeekendPlays      int `db:"weekend_plays"`
	WeekdayPlays      int `db:"weekday_plays"`
}

// minutes of listening attributed to a single play
const averagePlayMinutes = 3.5

// GetUserMetrics builds the listening snapshot used by custom prompts
func (s *Store) GetUserMetrics(ctx context.Context, userID uuid.UUID, now time.Time) (UserMetrics, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return UserMetrics{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	weekStart := now.AddDate(0, 0, -7)
	previousWeekStart := now.AddDate(0, 0, -14)
	monthStart := now.AddDate(0, -1, 0)

	var totals playTotals
	if err := s.db.GetContext(ctx, &totals, sqlGetPlayTotals, userID, weekStart, previousWeekStart, monthStart, now); err != nil {
		return UserMetrics{}, fmt.Errorf("failed to get play totals: %w", err)
	}

	metrics := UserMetrics{
		User:           user,
		TotalPlays:     totals.TotalPlays,
		WeeklyPlays:    totals.WeeklyPlays,
		MonthlyPlays:   totals.MonthlyPlays,
		DiscoveryCount: totals.DiscoveryCount,
		WeekendPlays:   totals.WeekendPlays,
		WeekdayPlays:   totals.WeekdayPlays,
		ListeningHours: round1(float64(totals.TotalPlays) * averagePlayMinutes / 60),
	}
	if totals.PreviousWeekPlays > 0 {
		delta := float64(totals.WeeklyPlays-totals.PreviousWeekPlays) / float64(totals.PreviousWeekPlays)
		metrics.GrowthRate = round1(delta * 100)
	}

	if metrics.TopSong, err = s.optionalString(ctx, sqlGetTopSong, userID, monthStart, now); err != nil {
		return UserMetrics{}, fmt.Errorf("failed to get top song: %w", err)
	}
	if metrics.TopArtist, err = s.optionalString(ctx, sqlGetTopArtist, userID, monthStart, now); err != nil {
		return UserMetrics{}, fmt.Errorf("failed to get top artist: %w", err)
	}
	if metrics.FavoriteGenre, err = s.optionalString(ctx, sqlGetFavoriteGenre, userID, monthStart, now); err != nil {
		return UserMetrics{}, fmt.Errorf("failed to get favorite genre: %w", err)
	}

	var hour int
	err = s.db.GetContext(ctx, &hour, sqlGetPeakHour, userID, monthStart, now)
	switch {
	case err == nil:
		metrics.PeakHour = &hour
	case errors.Is(err, sql.ErrNoRows):
	default:
		return UserMetrics{}, fmt.Errorf("failed to get peak hour: %w", err)
	}

	return metrics, nil
}

func (s *Store) optionalString(ctx context.Context, query string, args ...interface{}) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
