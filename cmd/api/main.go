package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"productivity-assistant/config"
	_ "productivity-assistant/docs" // Swagger docs
	aiHTTP "productivity-assistant/internal/ai/delivery/http"
	aiUC "productivity-assistant/internal/ai/usecase"
	chatHTTP "productivity-assistant/internal/chat/delivery/http"
	"productivity-assistant/internal/httpserver"
	"productivity-assistant/internal/middleware"
	noteInmem "productivity-assistant/internal/note/repository/inmem"
	"productivity-assistant/internal/session"
	taskInmem "productivity-assistant/internal/task/repository/inmem"
	"productivity-assistant/pkg/gcalendar"
	"productivity-assistant/pkg/llmprovider"
	"productivity-assistant/pkg/log"
)

// @title       Productivity Assistant API
// @description AI orchestration and conversation session backend for a personal productivity assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Productivity Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Model gateway: providers behind the fallback manager
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	logger.Infof(ctx, "Initialized %d LLM provider(s)", len(providers))

	managerCfg, err := buildManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Invalid LLM config: %v", err)
		return
	}
	gateway := llmprovider.NewManager(providers, managerCfg, logger)

	// 4. Repositories and session store
	taskRepo := taskInmem.New()
	noteRepo := noteInmem.New()
	sessions := session.NewStore()

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. AI UseCase
	uc := aiUC.New(
		logger,
		gateway,
		sessions,
		taskRepo,
		noteRepo,
		calendarClient,
		cfg.GoogleCalendar.CalendarID,
		cfg.GoogleCalendar.Timezone,
	)

	// 7. Delivery handlers and middleware
	mw := middleware.New(logger, cfg)
	aiHandler := aiHTTP.New(logger, uc)
	chatHandler := chatHTTP.New(logger, uc)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		AIHandler:   aiHandler,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// buildManagerConfig parses the duration strings from config into the
// manager's typed config.
func buildManagerConfig(cfg *config.LLMConfig) (*llmprovider.Config, error) {
	retryDelay, err := time.ParseDuration(cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("invalid llm.retry_delay %q: %w", cfg.RetryDelay, err)
	}

	maxTotalTimeout, err := time.ParseDuration(cfg.MaxTotalTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid llm.max_total_timeout %q: %w", cfg.MaxTotalTimeout, err)
	}

	return &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotalTimeout,
	}, nil
}
