package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ScheduleConfig controls the dispatch scheduler. It is loaded once at startup
// and never mutated afterwards.
type ScheduleConfig struct {
	IntervalMinutes             int         `yaml:"interval_minutes"`
	CheckHours                  []int       `yaml:"check_hours"`
	Timezone                    string      `yaml:"timezone"`
	Retry                       RetryConfig `yaml:"retry"`
	BatchSize                   int         `yaml:"batch_size"`
	Workers                     int         `yaml:"workers"`
	SendTimeoutSeconds          int         `yaml:"send_timeout_seconds"`
	StaleAfterMinutes           int         `yaml:"stale_after_minutes"`
	DeadLetterInvalidRecipients bool        `yaml:"dead_letter_invalid_recipients"`
}

// RetryConfig bounds redelivery of failed sends
type RetryConfig struct {
	MaxAttempts  int `yaml:"max_attempts"`
	DelayMinutes int `yaml:"delay_minutes"`
}

// Interval returns the tick interval of the dispatch job
func (c ScheduleConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMinutes) * time.Minute
}

// SendTimeout bounds a single transport call
func (c ScheduleConfig) SendTimeout() time.Duration {
	return time.Duration(c.SendTimeoutSeconds) * time.Second
}

// StaleAfter is how long a claim may stay queued before it is recovered. Zero disables recovery.
func (c ScheduleConfig) StaleAfter() time.Duration {
	return time.Duration(c.StaleAfterMinutes) * time.Minute
}

// MaxPassDuration is the longest a healthy dispatch pass can hold a claim: every worker
// sending its share of a full batch with each send running into the timeout.
func (c ScheduleConfig) MaxPassDuration() time.Duration {
	if c.Workers <= 0 {
		return 0
	}
	rounds := (c.BatchSize + c.Workers - 1) / c.Workers
	return time.Duration(rounds) * c.SendTimeout()
}

// RetryDelay is the wait before a failed send becomes dispatch-ready again
func (c RetryConfig) RetryDelay() time.Duration {
	return time.Duration(c.DelayMinutes) * time.Minute
}

// Location resolves the configured timezone used for check hours
func (c ScheduleConfig) Location() (*time.Location, error) {
	return loadLocation(c.Timezone)
}

// Validate checks the schedule invariants
func (c ScheduleConfig) Validate() error {
	if c.IntervalMinutes <= 0 {
		return fmt.Errorf("%w: schedule interval must be positive", ErrInvalidConfig)
	}
	if len(c.CheckHours) == 0 {
		return fmt.Errorf("%w: schedule check hours must list at least one hour", ErrInvalidConfig)
	}
	if err := validateHours(c.CheckHours); err != nil {
		return err
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("%w: retry max attempts must be at least 1", ErrInvalidConfig)
	}
	if c.Retry.DelayMinutes < 0 {
		return fmt.Errorf("%w: retry delay must not be negative", ErrInvalidConfig)
	}
	if c.BatchSize <= 0 || c.Workers <= 0 {
		return fmt.Errorf("%w: dispatch batch size and workers must be positive", ErrInvalidConfig)
	}
	if c.SendTimeoutSeconds <= 0 {
		return fmt.Errorf("%w: send timeout must be positive", ErrInvalidConfig)
	}
	if c.StaleAfterMinutes < 0 {
		return fmt.Errorf("%w: stale claim age must not be negative", ErrInvalidConfig)
	}
	if c.StaleAfterMinutes > 0 && c.StaleAfter() <= c.MaxPassDuration() {
		return fmt.Errorf("%w: stale claim age %s must exceed the longest dispatch pass %s",
			ErrInvalidConfig, c.StaleAfter(), c.MaxPassDuration())
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// GenerationConfig controls batch insight generation
type GenerationConfig struct {
	Workers           int
	LLMTimeoutSeconds int
	Period            string
	IntervalHours     int
	CheckHours        []int
	Kinds             []string
	LinkBaseURL       string
}

// LLMTimeout bounds a single completion call
func (c GenerationConfig) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}

// Interval returns how often the generation job runs; zero disables it
func (c GenerationConfig) Interval() time.Duration {
	return time.Duration(c.IntervalHours) * time.Hour
}

// DetectorConfig holds the thresholds used by insight detectors
type DetectorConfig struct {
	GrowthMinPreviousPlays int
	ArtistFocusMinPlays    int
	ArtistFocusMinShare    float64
	DiversityMinArtists    int
	WindowDays             int
}

func loadSchedule(s *ScheduleConfig) error {
	var err error
	if s.IntervalMinutes, err = getInt("SCHEDULE_INTERVAL_MINUTES", 60); err != nil {
		return err
	}
	if s.CheckHours, err = parseHours(getEnvWithDefault("SCHEDULE_CHECK_HOURS", "9,12,15,18")); err != nil {
		return err
	}
	s.Timezone = getEnvWithDefault("SCHEDULE_TIMEZONE", "UTC")
	if s.Retry.MaxAttempts, err = getInt("RETRY_MAX_ATTEMPTS", 3); err != nil {
		return err
	}
	if s.Retry.DelayMinutes, err = getInt("RETRY_DELAY_MINUTES", 30); err != nil {
		return err
	}
	if s.BatchSize, err = getInt("DISPATCH_BATCH_SIZE", 100); err != nil {
		return err
	}
	if s.Workers, err = getInt("DISPATCH_WORKERS", 5); err != nil {
		return err
	}
	if s.SendTimeoutSeconds, err = getInt("DISPATCH_SEND_TIMEOUT_SECONDS", 30); err != nil {
		return err
	}
	if s.StaleAfterMinutes, err = getInt("DISPATCH_STALE_AFTER_MINUTES", 60); err != nil {
		return err
	}
	if s.DeadLetterInvalidRecipients, err = getBool("DEAD_LETTER_INVALID_RECIPIENTS", true); err != nil {
		return err
	}

	if path := os.Getenv("SCHEDULE_CONFIG_FILE"); path != "" {
		if err := LoadScheduleFile(path, s); err != nil {
			return err
		}
	}

	return s.Validate()
}

// LoadScheduleFile overlays the keys present in a YAML file on top of s.
func LoadScheduleFile(path string, s *ScheduleConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read schedule file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("failed to parse schedule file %s: %w", path, err)
	}
	return nil
}

func loadGeneration(g *GenerationConfig) error {
	var err error
	if g.Workers, err = getInt("GENERATION_WORKERS", 5); err != nil {
		return err
	}
	if g.LLMTimeoutSeconds, err = getInt("GENERATION_LLM_TIMEOUT_SECONDS", 60); err != nil {
		return err
	}
	if g.IntervalHours, err = getInt("GENERATION_INTERVAL_HOURS", 0); err != nil {
		return err
	}
	if g.CheckHours, err = parseHours(os.Getenv("GENERATION_CHECK_HOURS")); err != nil {
		return err
	}
	g.Period = getEnvWithDefault("GENERATION_PERIOD", "weekly")
	switch g.Period {
	case "daily", "weekly", "monthly":
	default:
		return fmt.Errorf("%w: GENERATION_PERIOD must be daily, weekly or monthly", ErrInvalidConfig)
	}
	g.Kinds = splitList(getEnvWithDefault("GENERATION_KINDS", "growth_trend,artist_focus,diversity"))
	g.LinkBaseURL = getEnvWithDefault("INSIGHT_LINK_BASE_URL", "https://songmetrix.com.br")
	if g.Workers <= 0 || g.LLMTimeoutSeconds <= 0 {
		return fmt.Errorf("%w: generation workers and timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

func loadDetector(d *DetectorConfig) error {
	var err error
	if d.GrowthMinPreviousPlays, err = getInt("GROWTH_MIN_PREVIOUS_PLAYS", 5); err != nil {
		return err
	}
	if d.ArtistFocusMinPlays, err = getInt("ARTIST_FOCUS_MIN_PLAYS", 20); err != nil {
		return err
	}
	if d.ArtistFocusMinShare, err = getFloat("ARTIST_FOCUS_MIN_SHARE", 0.4); err != nil {
		return err
	}
	if d.DiversityMinArtists, err = getInt("DIVERSITY_MIN_ARTISTS", 10); err != nil {
		return err
	}
	if d.WindowDays, err = getInt("INSIGHT_WINDOW_DAYS", 30); err != nil {
		return err
	}
	return nil
}

func parseHours(raw string) ([]int, error) {
	parts := splitList(raw)
	hours := make([]int, 0, len(parts))
	for _, p := range parts {
		h, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid hour %q", ErrInvalidConfig, p)
		}
		hours = append(hours, h)
	}
	if err := validateHours(hours); err != nil {
		return nil, err
	}
	return hours, nil
}

func validateHours(hours []int) error {
	for _, h := range hours {
		if h < 0 || h > 23 {
			return fmt.Errorf("%w: hour %d out of range 0-23", ErrInvalidConfig, h)
		}
	}
	return nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q: %v", ErrInvalidConfig, name, err)
	}
	return loc, nil
}
