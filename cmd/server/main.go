package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"golang.org/x/sync/errgroup"

	"agendados/internal/config"
	"agendados/internal/handler"
	"agendados/internal/logger"
	"agendados/internal/notify/noop"
	sesnotify "agendados/internal/notify/ses"
	"agendados/internal/port"
	"agendados/internal/repository/postgres"
	"agendados/internal/router"
	"agendados/internal/schedule"
	"agendados/internal/service"
	s3storage "agendados/internal/storage/s3"
)

const shutdownTimeout = 10 * time.Second

// @title Agendados API
// @version 1.0
// @description Dictation-driven client scheduling for field sales agents.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	agentRepo := postgres.NewAgentRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	holidayRepo := postgres.NewHolidayRepo(db)

	// Initialize storage and delivery
	s3Client, err := s3storage.NewS3Client(ctx, &cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	settings, err := service.SettingsFromConfig(cfg.Schedule.Timezone, cfg.Schedule.DaysAhead, cfg.Schedule.OpenTime, cfg.Schedule.CloseTime)
	if err != nil {
		return fmt.Errorf("invalid schedule config: %w", err)
	}
	clock := schedule.SystemClock{Location: settings.Location}

	notifier, err := newNotifier(ctx, cfg.Notify, settings.Location, log)
	if err != nil {
		return fmt.Errorf("failed to initialize notifier: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(agentRepo, cfg.JWT)
	scheduleSvc := service.NewScheduleService(holidayRepo, clock, settings)
	dictationSvc := service.NewDictationService(scheduleSvc)
	clientSvc := service.NewClientService(clientRepo, scheduleSvc)
	exportSvc := service.NewExportService(clientRepo, s3Client, clock, service.ExportSettings{
		Bucket:        cfg.S3.Bucket,
		PresignExpiry: cfg.S3.PresignExpiry,
		Location:      settings.Location,
	})

	// Initialize handlers
	r := router.Setup(authSvc, router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		Dictation: handler.NewDictationHandler(dictationSvc),
		Client:    handler.NewClientHandler(clientSvc),
		Schedule:  handler.NewScheduleHandler(scheduleSvc),
		Export:    handler.NewExportHandler(exportSvc),
		Health:    handler.NewHealthHandler(db),
	}, cfg.CORS.AllowedOrigins, log)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting", "addr", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.Reminder.Enabled {
		worker := service.NewReminderWorker(clientRepo, agentRepo, notifier, clock, service.ReminderConfig{
			PollInterval: time.Duration(cfg.Reminder.PollIntervalSecs) * time.Second,
			BatchSize:    cfg.Reminder.BatchSize,
			Concurrency:  cfg.Reminder.Concurrency,
		}, log)
		g.Go(func() error {
			worker.Start(gctx)
			return nil
		})
	}

	return g.Wait()
}

func newNotifier(ctx context.Context, cfg config.NotifyConfig, loc *time.Location, log *slog.Logger) (port.Notifier, error) {
	switch cfg.Provider {
	case "ses":
		return sesnotify.NewSESNotifier(ctx, cfg.Region, cfg.FromAddress, cfg.FromName, loc)
	case "", "noop":
		return noop.NewNoopNotifier(log, loc), nil
	default:
		return nil, fmt.Errorf("unknown notify provider %q", cfg.Provider)
	}
}
