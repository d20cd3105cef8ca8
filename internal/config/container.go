package config

import (
	"fmt"

	"pdf-summary-agent/internal/domain"
	"pdf-summary-agent/internal/service"
	"pdf-summary-agent/pkg/executor"
	"pdf-summary-agent/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	Extractor      domain.TextExtractor
	ModelClient    domain.ModelClient
	Speech         domain.SpeechAnnouncer
	UploadStore    domain.UploadStore
	SummaryService domain.SummaryService
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	config, err := NewConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	appLogger := logger.NewLogger(config.GetLogLevel())

	policy, err := service.ParseStatusPolicy(config.GetStatusPolicy())
	if err != nil {
		return nil, err
	}
	if policy == service.StatusPolicyLegacy {
		appLogger.Warn("Legacy status policy enabled, model responses will always be reported as absent")
	}

	extractor := service.NewPDFExtractor(appLogger)
	modelClient := service.NewOllamaClient(config.GetOllamaURL(), config.GetModelName(), policy, appLogger)
	speech := service.NewSpeechAnnouncer(config.GetSpeechCommand(), config.GetSpeechArgs(), executor.New(), appLogger)
	uploadStore := service.NewFileUploadStore(config.GetTempUploadPath(), config.GetMaxFileSize(), appLogger)

	summaryService := service.NewSummaryService(
		uploadStore,
		extractor,
		modelClient,
		speech,
		config.GetMaxPromptChars(),
		appLogger,
	)

	return &Container{
		Config:         config,
		Logger:         appLogger,
		Extractor:      extractor,
		ModelClient:    modelClient,
		Speech:         speech,
		UploadStore:    uploadStore,
		SummaryService: summaryService,
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetSummaryService returns the session driver
func (c *Container) GetSummaryService() domain.SummaryService {
	return c.SummaryService
}
