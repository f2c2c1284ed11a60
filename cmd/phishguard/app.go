package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/ressKim-io/phishguard/internal/adapter/client"
	"github.com/ressKim-io/phishguard/internal/infrastructure/config"
	"github.com/ressKim-io/phishguard/internal/infrastructure/logger"
	"github.com/ressKim-io/phishguard/internal/infrastructure/metrics"
	"github.com/ressKim-io/phishguard/internal/usecase"
)

// app is the wired controller shared by every subcommand
type app struct {
	cfg          *config.Config
	log          *zap.Logger
	registry     *prometheus.Registry
	submissionUC usecase.SubmissionUsecase
}

// newApp loads configuration and wires the controller.
// A quiet app logs only when a log file is configured, so terminal output stays clean.
func newApp(quiet bool) (*app, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	policy, err := usecase.ParseStalePolicy(cfg.UI.StaleResponses)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := zap.NewNop()
	if !quiet || cfg.Log.File != "" {
		log, err = logger.NewLogger(&cfg.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	predictClient := client.NewPredictClient(cfg.Classifier.Endpoint, cfg.Classifier.Timeout, log)

	submissionUC, err := usecase.NewSubmissionUsecase(
		client.NewPhishingClassifier(predictClient),
		usecase.SubmissionOptions{
			DetailsToggle: cfg.UI.DetailsToggle,
			StalePolicy:   policy,
		},
		log,
		metrics.New(registry),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize controller: %w", err)
	}

	log.Info("Controller ready",
		zap.String("endpoint", cfg.Classifier.Endpoint),
		zap.String("stale_responses", string(policy)),
		zap.Bool("details_toggle", cfg.UI.DetailsToggle),
	)

	return &app{
		cfg:          cfg,
		log:          log,
		registry:     registry,
		submissionUC: submissionUC,
	}, nil
}

func (a *app) close() {
	_ = a.log.Sync()
}
