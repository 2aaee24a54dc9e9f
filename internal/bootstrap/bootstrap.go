package bootstrap

import (
	"context"
	"fmt"
	"time"

	"insight-mailer/internal/config"
	"insight-mailer/internal/observability"
	"insight-mailer/internal/store"

	authHandler "insight-mailer/internal/auth/handler"
	authProcessor "insight-mailer/internal/auth/processor"
	kafkaClient "insight-mailer/internal/clients/kafka"
	redisClient "insight-mailer/internal/clients/redis"
	"insight-mailer/internal/dispatcher"
	draftsHandler "insight-mailer/internal/drafts/handler"
	draftsProcessor "insight-mailer/internal/drafts/processor"
	"insight-mailer/internal/insights/composer"
	"insight-mailer/internal/insights/detector"
	"insight-mailer/internal/insights/generator"
	"insight-mailer/internal/jobs"
	"insight-mailer/internal/providers"
	providersHandler "insight-mailer/internal/providers/handler"
	"insight-mailer/internal/scheduler"

	"github.com/hibiken/asynq"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Pipeline
	Registry      *providers.Registry
	Drafts        *draftsProcessor.DraftProcessor
	Dispatcher    *dispatcher.Dispatcher
	Generator     *generator.Generator
	DispatchJob   *scheduler.DispatchJob
	GenerationJob *scheduler.GenerationJob
	JobHandlers   *jobs.Handlers

	// Handlers
	AuthHandler      authHandler.Handler
	DraftsHandler    draftsHandler.Handler
	ProvidersHandler providersHandler.Handler

	// Manual triggers, backed by asynq when redis is enabled
	Trigger      jobs.Trigger
	JobClient    *jobs.Client
	LocalTrigger *jobs.LocalTrigger

	// Clients (for cleanup)
	Redis         *redisClient.Client
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger, store.WithQueryTimeout(cfg.Database.QueryTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := deps.Store.Ping(ctx); err != nil {
		return nil, err
	}

	// Initialize clients
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	}, logger)

	// Provider registry
	var registryOpts []providers.Option
	if deps.Redis.IsEnabled() {
		registryOpts = append(registryOpts, providers.WithNotifier(deps.Redis))
	} else {
		logger.Warn(ctx, fmt.Sprintf("redis disabled, provider changes from other processes apply within %s",
			providers.DefaultUnsharedCacheTTL))
		registryOpts = append(registryOpts, providers.WithCacheTTL(providers.DefaultUnsharedCacheTTL))
	}
	deps.Registry = providers.New(&deps.Store, cfg.Services.DefaultEmailSender, logger, registryOpts...)

	// Draft lifecycle
	var draftOpts []draftsProcessor.Option
	if deps.KafkaProducer != nil {
		draftOpts = append(draftOpts, draftsProcessor.WithEvents(deps.KafkaProducer))
	}
	deps.Drafts = draftsProcessor.New(&deps.Store, draftsProcessor.RetryPolicy{
		MaxAttempts:                 cfg.Schedule.Retry.MaxAttempts,
		Delay:                       cfg.Schedule.Retry.RetryDelay(),
		DeadLetterInvalidRecipients: cfg.Schedule.DeadLetterInvalidRecipients,
	}, logger, draftOpts...)

	deps.Dispatcher = dispatcher.New(deps.Registry, deps.Drafts, cfg.Schedule.SendTimeout(), logger)

	// Insight generation
	detectors := detector.NewDefaultRegistry(&deps.Store, detector.Config{
		GrowthPeriod:           periodLength(cfg.Generation.Period),
		GrowthMinPreviousPlays: cfg.Detector.GrowthMinPreviousPlays,
		ArtistFocusMinPlays:    cfg.Detector.ArtistFocusMinPlays,
		ArtistFocusMinShare:    cfg.Detector.ArtistFocusMinShare,
		DiversityMinArtists:    cfg.Detector.DiversityMinArtists,
		Window:                 time.Duration(cfg.Detector.WindowDays) * 24 * time.Hour,
	}, nil)
	contentComposer := composer.New(deps.Registry, &deps.Store, logger, composer.WithTimeout(cfg.Generation.LLMTimeout()))
	deps.Generator = generator.New(&deps.Store, detectors, contentComposer, deps.Drafts, deps.Registry, generator.Config{
		Workers:     cfg.Generation.Workers,
		Period:      cfg.Generation.Period,
		LinkBaseURL: cfg.Generation.LinkBaseURL,
	}, logger)

	// Jobs
	deps.DispatchJob = scheduler.NewDispatchJob(deps.Drafts, deps.Dispatcher, scheduler.DispatchConfig{
		Interval:   cfg.Schedule.Interval(),
		BatchSize:  cfg.Schedule.BatchSize,
		Workers:    cfg.Schedule.Workers,
		StaleAfter: cfg.Schedule.StaleAfter(),
	}, logger)
	deps.GenerationJob = scheduler.NewGenerationJob(deps.Generator, cfg.Generation.Kinds, cfg.Generation.Interval())
	deps.JobHandlers = jobs.NewHandlers(deps.DispatchJob, deps.Generator, logger)

	if deps.Redis.IsEnabled() {
		deps.JobClient = jobs.NewClient(RedisClientOpt(cfg.Redis), logger)
		deps.Trigger = deps.JobClient
	} else {
		deps.LocalTrigger = jobs.NewLocalTrigger(deps.DispatchJob, deps.Generator, logger)
		deps.Trigger = deps.LocalTrigger
	}

	// Handlers
	authProc := authProcessor.New(cfg.Admin.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)
	deps.DraftsHandler = draftsHandler.New(deps.Drafts, deps.Dispatcher, deps.Generator, deps.Trigger, logger)
	deps.ProvidersHandler = providersHandler.New(deps.Registry, logger)

	return deps, nil
}

// RedisClientOpt builds the asynq connection options from the redis config
func RedisClientOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func periodLength(period string) time.Duration {
	switch period {
	case "daily":
		return 24 * time.Hour
	case "monthly":
		return 30 * 24 * time.Hour
	default:
		return 7 * 24 * time.Hour
	}
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.LocalTrigger != nil {
		d.LocalTrigger.Wait()
	}
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.InfoWithError(ctx, "failed to close job client", err)
		}
	}
	if err := d.KafkaProducer.Close(); err != nil {
		d.Logger.InfoWithError(ctx, "failed to close kafka producer", err)
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.InfoWithError(ctx, "failed to close redis client", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.InfoWithError(ctx, "failed to close database", err)
	}
}
