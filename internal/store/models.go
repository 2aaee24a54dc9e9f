package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	return json.Unmarshal(bytes, j)
}

type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	FullName  *string   `db:"full_name" json:"full_name,omitempty"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DisplayName returns the full name, falling back to the email address.
func (u User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Email
}

type EmailDraft struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	UserID            uuid.UUID  `db:"user_id" json:"user_id"`
	RecipientEmail    string     `db:"recipient_email" json:"recipient_email"`
	Kind              string     `db:"kind" json:"kind"`
	PeriodKey         string     `db:"period_key" json:"period_key"`
	Subject           string     `db:"subject" json:"subject"`
	BodyHTML          string     `db:"body_html" json:"body_html"`
	InsightData       JSONB      `db:"insight_data" json:"insight_data,omitempty"`
	DeepLink          *string    `db:"deep_link" json:"deep_link,omitempty"`
	Status            string     `db:"status" json:"status"`
	RetryCount        int        `db:"retry_count" json:"retry_count"`
	NextAttemptAt     *time.Time `db:"next_attempt_at" json:"next_attempt_at,omitempty"`
	LastError         *string    `db:"last_error" json:"last_error,omitempty"`
	ProviderMessageID *string    `db:"provider_message_id" json:"provider_message_id,omitempty"`
	ApprovedAt        *time.Time `db:"approved_at" json:"approved_at,omitempty"`
	ApprovedBy        *string    `db:"approved_by" json:"approved_by,omitempty"`
	QueuedAt          *time.Time `db:"queued_at" json:"queued_at,omitempty"`
	SentAt            *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

type ProviderConfig struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Role          string    `db:"role" json:"role"`
	ProviderName  string    `db:"provider_name" json:"provider_name"`
	APIKey        string    `db:"api_key" json:"-"`
	APIURL        *string   `db:"api_url" json:"api_url,omitempty"`
	ModelName     *string   `db:"model_name" json:"model_name,omitempty"`
	MaxTokens     int       `db:"max_tokens" json:"max_tokens"`
	Temperature   float64   `db:"temperature" json:"temperature"`
	SenderAddress *string   `db:"sender_address" json:"sender_address,omitempty"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

type PromptTemplate struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Kind      string    `db:"kind" json:"kind"`
	Content   string    `db:"content" json:"content"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TrackGrowth compares a track's plays in two consecutive periods.
type TrackGrowth struct {
	SongTitle     string `db:"song_title"`
	Artist        string `db:"artist"`
	CurrentPlays  int    `db:"current_plays"`
	PreviousPlays int    `db:"previous_plays"`
}

// ArtistShare is the top artist's share of a user's plays in a window.
type ArtistShare struct {
	Artist      string `db:"artist"`
	ArtistPlays int    `db:"artist_plays"`
	TotalPlays  int    `db:"total_plays"`
}

// ListeningDiversity counts distinct artists and tracks in a window.
type ListeningDiversity struct {
	DistinctArtists int `db:"distinct_artists"`
	DistinctTracks  int `db:"distinct_tracks"`
	TotalPlays      int `db:"total_plays"`
}

// UserMetrics is the snapshot used to fill custom prompt variables.
type UserMetrics struct {
	User           User
	TopSong        string
	TopArtist      string
	TotalPlays     int
	WeeklyPlays    int
	MonthlyPlays   int
	GrowthRate     float64
	ListeningHours float64
	DiscoveryCount int
	WeekendPlays   int
	WeekdayPlays   int
	PeakHour       *int
	FavoriteGenre  string
}
