package providers

//go:generate go run go.uber.org/mock/mockgen@latest -source=registry.go -destination=mocks_test.go -package=providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"insight-mailer/internal/clients/llm"
	"insight-mailer/internal/clients/mail"
	"insight-mailer/internal/observability"
	"insight-mailer/internal/store"

	"github.com/google/uuid"
)

// ChangeChannel is the redis channel used to tell other processes that an active provider changed.
const ChangeChannel = "insight-mailer:providers"

// ProviderStore defines the database operations required by the Registry
type ProviderStore interface {
	CreateProviderConfig(ctx context.Context, params store.CreateProviderConfigParams) (store.ProviderConfig, error)
	GetProviderConfigByID(ctx context.Context, id uuid.UUID) (store.ProviderConfig, error)
	ListProviderConfigs(ctx context.Context, role string) ([]store.ProviderConfig, error)
	ListActiveProviderConfigs(ctx context.Context, role string) ([]store.ProviderConfig, error)
	UpdateProviderConfig(ctx context.Context, id uuid.UUID, params store.UpdateProviderConfigParams) (store.ProviderConfig, error)
	DeleteProviderConfig(ctx context.Context, id uuid.UUID) error
	ActivateProviderConfig(ctx context.Context, id uuid.UUID) (store.ProviderConfig, error)
}

// Notifier broadcasts provider changes between processes.
type Notifier interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	Subscribe(ctx context.Context, channel string, handler func(ctx context.Context, payload []byte)) error
}

// ChangeEvent tells subscribers that the active provider of Role may have changed.
type ChangeEvent struct {
	Role       string    `json:"role"`
	ProviderID uuid.UUID `json:"provider_id"`
}

type CompleterFactory func(ctx context.Context, cfg store.ProviderConfig) (llm.Completer, error)

type TransportFactory func(cfg store.ProviderConfig) (mail.Transport, error)

// DefaultUnsharedCacheTTL bounds how long a registry without a notifier serves a cached
// provider that another process may have replaced.
const DefaultUnsharedCacheTTL = 30 * time.Second

type cachedConfig struct {
	cfg       store.ProviderConfig
	fetchedAt time.Time
}

type Registry struct {
	store        ProviderStore
	notifier     Notifier
	logger       *observability.Logger
	newCompleter CompleterFactory
	newTransport TransportFactory
	cacheTTL     time.Duration
	clock        func() time.Time

	// generation is bumped by every invalidation; a lookup only fills the cache
	// when the generation it started under is still current.
	mu         sync.RWMutex
	cache      map[string]cachedConfig
	generation map[string]uint64

	subsMu sync.Mutex
	subs   map[int]chan ChangeEvent
	nextID int
}

type Option func(*Registry)

// WithNotifier publishes and receives provider changes through n.
func WithNotifier(n Notifier) Option {
	return func(r *Registry) {
		r.notifier = n
	}
}

// WithCacheTTL expires cached active providers after ttl. Zero keeps them until invalidated.
func WithCacheTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		r.cacheTTL = ttl
	}
}

func WithClock(clock func() time.Time) Option {
	return func(r *Registry) {
		r.clock = clock
	}
}

func WithCompleterFactory(f CompleterFactory) Option {
	return func(r *Registry) {
		r.newCompleter = f
	}
}

func WithTransportFactory(f TransportFactory) Option {
	return func(r *Registry) {
		r.newTransport = f
	}
}

// New creates a registry. defaultSender is used by mail transports whose config has no sender address.
// Without a notifier, changes made by other processes are only seen once a cached entry expires, so
// the cache TTL defaults to DefaultUnsharedCacheTTL.
func New(providerStore ProviderStore, defaultSender string, logger *observability.Logger, opts ...Option) *Registry {
	r := &Registry{
		store:      providerStore,
		logger:     logger,
		clock:      time.Now,
		cacheTTL:   -1,
		cache:      make(map[string]cachedConfig),
		generation: make(map[string]uint64),
		subs:       make(map[int]chan ChangeEvent),
	}
	r.newCompleter = func(ctx context.Context, cfg store.ProviderConfig) (llm.Completer, error) {
		return llm.New(ctx, cfg, logger)
	}
	r.newTransport = func(cfg store.ProviderConfig) (mail.Transport, error) {
		return mail.New(cfg, defaultSender, logger)
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cacheTTL < 0 {
		r.cacheTTL = 0
		if r.notifier == nil {
			r.cacheTTL = DefaultUnsharedCacheTTL
		}
	}
	return r
}

func validateRole(role string) error {
	switch role {
	case store.ProviderRoleLLM, store.ProviderRoleMailTransport:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
}

// GetActive returns the active configuration for role.
func (r *Registry) GetActive(ctx context.Context, role string) (store.ProviderConfig, error) {
	if err := validateRole(role); err != nil {
		return store.ProviderConfig{}, err
	}

	r.mu.RLock()
	entry, ok := r.cache[role]
	gen := r.generation[role]
	r.mu.RUnlock()
	if ok && (r.cacheTTL == 0 || r.clock().Sub(entry.fetchedAt) < r.cacheTTL) {
		return entry.cfg, nil
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "role", Value: role})

	configs, err := r.store.ListActiveProviderConfigs(ctx, role)
	if err != nil {
		r.logger.Error(ctx, "failed to list active provider configs", err)
		return store.ProviderConfig{}, fmt.Errorf("failed to resolve active %s provider: %w", role, err)
	}
	if len(configs) == 0 {
		return store.ProviderConfig{}, &NoActiveProviderError{Role: role}
	}
	if len(configs) > 1 {
		ids := make([]string, len(configs))
		for i, c := range configs {
			ids[i] = c.ID.String()
		}
		r.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "provider_ids", Value: strings.Join(ids, ",")},
		), "multiple active providers, using the most recently created")
	}

	cfg := configs[0]
	r.mu.Lock()
	if r.generation[role] == gen {
		r.cache[role] = cachedConfig{cfg: cfg, fetchedAt: r.clock()}
	}
	r.mu.Unlock()

	return cfg, nil
}

// SetActive activates a configuration and deactivates every other one of the same role.
func (r *Registry) SetActive(ctx context.Context, id uuid.UUID) (store.ProviderConfig, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "provider_id", Value: id.String()})

	cfg, err := r.store.ActivateProviderConfig(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			r.logger.Error(ctx, "failed to activate provider config", err)
		}
		return store.ProviderConfig{}, err
	}

	r.logger.Info(observability.WithFields(ctx, observability.Field{Key: "role", Value: cfg.Role}),
		fmt.Sprintf("activated %s provider %s", cfg.Role, cfg.ProviderName))
	r.changed(ctx, ChangeEvent{Role: cfg.Role, ProviderID: cfg.ID})
	return cfg, nil
}

// CreateRequest describes a new provider configuration
type CreateRequest struct {
	Role          string
	ProviderName  string
	APIKey        string
	APIURL        *string
	ModelName     *string
	MaxTokens     *int
	Temperature   *float64
	SenderAddress *string
	IsActive      bool
}

const (
	defaultMaxTokens   = 1000
	defaultTemperature = 0.7
)

// Create stores a configuration; an active one replaces the current active provider of its role.
func (r *Registry) Create(ctx context.Context, req CreateRequest) (store.ProviderConfig, error) {
	if err := validateRole(req.Role); err != nil {
		return store.ProviderConfig{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "role", Value: req.Role})

	params := store.CreateProviderConfigParams{
		Role:          req.Role,
		ProviderName:  strings.ToLower(req.ProviderName),
		APIKey:        req.APIKey,
		APIURL:        req.APIURL,
		ModelName:     req.ModelName,
		MaxTokens:     defaultMaxTokens,
		Temperature:   defaultTemperature,
		SenderAddress: req.SenderAddress,
		IsActive:      req.IsActive,
	}
	if req.MaxTokens != nil {
		params.MaxTokens = *req.MaxTokens
	}
	if req.Temperature != nil {
		params.Temperature = *req.Temperature
	}

	cfg, err := r.store.CreateProviderConfig(ctx, params)
	if err != nil {
		r.logger.Error(ctx, "failed to create provider config", err)
		return store.ProviderConfig{}, err
	}

	if cfg.IsActive {
		r.changed(ctx, ChangeEvent{Role: cfg.Role, ProviderID: cfg.ID})
	}
	return cfg, nil
}

// Update changes the fields set in params.
func (r *Registry) Update(ctx context.Context, id uuid.UUID, params store.UpdateProviderConfigParams) (store.ProviderConfig, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "provider_id", Value: id.String()})

	cfg, err := r.store.UpdateProviderConfig(ctx, id, params)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			r.logger.Error(ctx, "failed to update provider config", err)
		}
		return store.ProviderConfig{}, err
	}

	if cfg.IsActive {
		r.changed(ctx, ChangeEvent{Role: cfg.Role, ProviderID: cfg.ID})
	}
	return cfg, nil
}

// Delete removes a configuration. Deleting the active one leaves its role without a provider.
func (r *Registry) Delete(ctx context.Context, id uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "provider_id", Value: id.String()})

	cfg, err := r.store.GetProviderConfigByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.store.DeleteProviderConfig(ctx, id); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			r.logger.Error(ctx, "failed to delete provider config", err)
		}
		return err
	}

	if cfg.IsActive {
		r.logger.Warn(ctx, fmt.Sprintf("deleted the active %s provider", cfg.Role))
		r.changed(ctx, ChangeEvent{Role: cfg.Role, ProviderID: cfg.ID})
	}
	return nil
}

func (r *Registry) Get(ctx context.Context, id uuid.UUID) (store.ProviderConfig, error) {
	return r.store.GetProviderConfigByID(ctx, id)
}

// List returns every configuration, optionally filtered by role.
func (r *Registry) List(ctx context.Context, role string) ([]store.ProviderConfig, error) {
	if role != "" {
		if err := validateRole(role); err != nil {
			return nil, err
		}
	}
	return r.store.ListProviderConfigs(ctx, role)
}

// TestConnection checks the credentials of an llm configuration against its backend.
func (r *Registry) TestConnection(ctx context.Context, id uuid.UUID) error {
	cfg, err := r.store.GetProviderConfigByID(ctx, id)
	if err != nil {
		return err
	}
	if cfg.Role != store.ProviderRoleLLM {
		return ErrTestUnsupported
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "provider_id", Value: cfg.ID.String()},
		observability.Field{Key: "provider_name", Value: cfg.ProviderName},
	)

	completer, err := r.newCompleter(ctx, cfg)
	if err != nil {
		return err
	}
	defer completer.Close()

	if err := completer.Check(ctx); err != nil {
		r.logger.InfoWithError(ctx, "provider connection test failed", err)
		return err
	}
	return nil
}

// ActiveCompleter builds a client for the active llm configuration. Callers must Close it.
func (r *Registry) ActiveCompleter(ctx context.Context) (llm.Completer, store.ProviderConfig, error) {
	cfg, err := r.GetActive(ctx, store.ProviderRoleLLM)
	if err != nil {
		return nil, store.ProviderConfig{}, err
	}
	completer, err := r.newCompleter(ctx, cfg)
	if err != nil {
		return nil, store.ProviderConfig{}, fmt.Errorf("failed to build llm client for %s: %w", cfg.ProviderName, err)
	}
	return completer, cfg, nil
}

// ActiveTransport builds a client for the active mail transport configuration.
func (r *Registry) ActiveTransport(ctx context.Context) (mail.Transport, error) {
	cfg, err := r.GetActive(ctx, store.ProviderRoleMailTransport)
	if err != nil {
		return nil, err
	}
	transport, err := r.newTransport(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build mail transport for %s: %w", cfg.ProviderName, err)
	}
	return transport, nil
}

// Invalidate drops the cached active configuration of role.
func (r *Registry) Invalidate(role string) {
	r.mu.Lock()
	delete(r.cache, role)
	r.generation[role]++
	r.mu.Unlock()
}

// Subscribe returns a channel of change events and a function that cancels the subscription.
// Events are dropped for subscribers that are not keeping up.
func (r *Registry) Subscribe() (<-chan ChangeEvent, func()) {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()

	id := r.nextID
	r.nextID++
	ch := make(chan ChangeEvent, 8)
	r.subs[id] = ch

	return ch, func() {
		r.subsMu.Lock()
		defer r.subsMu.Unlock()
		if sub, ok := r.subs[id]; ok {
			delete(r.subs, id)
			close(sub)
		}
	}
}

// Listen applies change events published by other processes until ctx is done.
func (r *Registry) Listen(ctx context.Context) error {
	if r.notifier == nil {
		return nil
	}
	return r.notifier.Subscribe(ctx, ChangeChannel, func(ctx context.Context, payload []byte) {
		var event ChangeEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			r.logger.Error(ctx, "failed to decode provider change event", err)
			return
		}
		r.Invalidate(event.Role)
		r.fanOut(event)
	})
}

func (r *Registry) changed(ctx context.Context, event ChangeEvent) {
	r.Invalidate(event.Role)
	r.fanOut(event)

	if r.notifier == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		r.logger.Error(ctx, "failed to encode provider change event", err)
		return
	}
	if err := r.notifier.Publish(ctx, ChangeChannel, payload); err != nil {
		r.logger.InfoWithError(ctx, "failed to publish provider change event", err)
	}
}

func (r *Registry) fanOut(event ChangeEvent) {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	for _, ch := range r.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
