package detector

//go:generate go run go.uber.org/mock/mockgen@latest -source=detector.go -destination=mocks_test.go -package=detector

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"insight-mailer/internal/store"

	"github.com/google/uuid"
)

var (
	ErrDataUnavailable = errors.New("insight data unavailable")
	ErrUnknownKind     = errors.New("unknown insight kind")
)

// DataUnavailableError wraps a failed query. It is retryable at the next pass.
type DataUnavailableError struct {
	Kind   string
	UserID uuid.UUID
	Err    error
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("%s data unavailable for user %s: %v", e.Kind, e.UserID, e.Err)
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Err
}

func (e *DataUnavailableError) Is(target error) bool {
	return target == ErrDataUnavailable
}

// Candidate is a detected insight. It is never persisted on its own.
type Candidate struct {
	UserID     uuid.UUID
	Kind       string
	Payload    map[string]any
	DetectedAt time.Time
}

// Detector produces at most one candidate of its kind for a user. A nil candidate with a nil
// error means the data was insufficient.
type Detector interface {
	Kind() string
	Detect(ctx context.Context, userID uuid.UUID) (*Candidate, error)
}

// MetricsStore defines the listening queries detectors run
type MetricsStore interface {
	GetTopTrackGrowth(ctx context.Context, userID uuid.UUID, now time.Time, period time.Duration, minPreviousPlays int) (store.TrackGrowth, error)
	GetTopArtistShare(ctx context.Context, userID uuid.UUID, since, until time.Time) (store.ArtistShare, error)
	GetListeningDiversity(ctx context.Context, userID uuid.UUID, since, until time.Time) (store.ListeningDiversity, error)
}

// Clock returns the detection instant.
type Clock func() time.Time

// Registry holds one detector per kind.
type Registry struct {
	mu        sync.RWMutex
	detectors map[string]Detector
}

func NewRegistry(detectors ...Detector) *Registry {
	r := &Registry{detectors: make(map[string]Detector)}
	for _, d := range detectors {
		r.Register(d)
	}
	return r
}

// Register adds d, replacing any detector of the same kind.
func (r *Registry) Register(d Detector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors[d.Kind()] = d
}

func (r *Registry) Get(kind string) (Detector, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.detectors[kind]
	return d, ok
}

// Kinds returns the registered kinds in lexical order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.detectors))
	for k := range r.detectors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Detect runs the detector registered for kind.
func (r *Registry) Detect(ctx context.Context, userID uuid.UUID, kind string) (*Candidate, error) {
	d, ok := r.Get(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return d.Detect(ctx, userID)
}

// Config holds detector thresholds
type Config struct {
	GrowthPeriod           time.Duration
	GrowthMinPreviousPlays int
	ArtistFocusMinPlays    int
	ArtistFocusMinShare    float64
	DiversityMinArtists    int
	Window                 time.Duration
}

// NewDefaultRegistry registers the built-in detectors.
func NewDefaultRegistry(metrics MetricsStore, cfg Config, clock Clock) *Registry {
	if clock == nil {
		clock = time.Now
	}
	return NewRegistry(
		&GrowthTrend{store: metrics, clock: clock, period: cfg.GrowthPeriod, minPreviousPlays: cfg.GrowthMinPreviousPlays},
		&ArtistFocus{store: metrics, clock: clock, window: cfg.Window, minPlays: cfg.ArtistFocusMinPlays, minShare: cfg.ArtistFocusMinShare},
		&Diversity{store: metrics, clock: clock, window: cfg.Window, minArtists: cfg.DiversityMinArtists},
	)
}
