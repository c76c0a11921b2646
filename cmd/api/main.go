package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/wealthpath/calendar/docs"
	"github.com/wealthpath/calendar/internal/config"
	"github.com/wealthpath/calendar/internal/handler"
	"github.com/wealthpath/calendar/internal/logger"
	"github.com/wealthpath/calendar/internal/metrics"
	"github.com/wealthpath/calendar/internal/scheduler"
	"github.com/wealthpath/calendar/internal/service"
	"github.com/wealthpath/calendar/pkg/datetime"
)

// @title WealthPath Calendar API
// @version 1.0
// @description Calendar date-time toolkit: wall-clock aware construction, DST resolution, arithmetic, ISO-8601 and locale strings.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@wealthpath.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup structured logger
	log := logger.New(os.Stdout, cfg.Env)
	slog.SetDefault(log)

	locale, err := datetime.LocaleByName(cfg.Calendar.Locale)
	if err != nil {
		log.Error("Unknown locale, falling back to C", slog.String("locale", cfg.Calendar.Locale))
		locale = datetime.LocaleC
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := []datetime.Option{
		datetime.WithLogger(log),
		datetime.WithMetrics(metrics.New(registry)),
		datetime.WithLocale(locale),
		datetime.WithRegistryCapacity(cfg.Calendar.RegistryCapacity),
	}
	if cfg.Calendar.ExclusiveTZOwner {
		opts = append(opts, datetime.WithExclusiveTZOwner())
	}
	cal := datetime.NewCalendar(opts...)

	if name := cfg.Calendar.LocalWallClock; name != "" {
		if err := cal.SetLocal(name); err != nil {
			log.Error("Failed to set local wall-clock", slog.String("name", name), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Initialize services and handlers
	calendarService := service.NewCalendarService(cal, cfg.Calendar.MaxRecurrences)
	calendarHandler := handler.NewCalendarHandler(calendarService)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(handler.RequestIDMiddleware)
	r.Use(handler.WallClockMiddleware)
	// CORS - allow frontend origin from env or default
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", handler.RequestIDHeader},
		ExposedHeaders:   []string{handler.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		// Health check
		// @Summary Health check
		// @Description Check if the API is running
		// @Tags health
		// @Produce json
		// @Success 200 {object} map[string]string
		// @Router /health [get]
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})

		calendarHandler.Routes(r)
	})

	// Periodically drop cached zone rules so tzdata updates are picked up
	var refreshScheduler *scheduler.Scheduler
	if cfg.ZoneRefresh.Enabled {
		schedCfg := scheduler.Config{
			Schedule: cfg.ZoneRefresh.Schedule,
			Timeout:  cfg.ZoneRefresh.Timeout,
			Enabled:  cfg.ZoneRefresh.Enabled,
		}
		refreshScheduler = scheduler.New(schedCfg, cal, log)
		if err := refreshScheduler.Start(); err != nil {
			log.Error("Failed to start zone refresh scheduler", slog.String("error", err.Error()))
		} else {
			log.Info("Zone refresh scheduler started",
				slog.String("schedule", cfg.ZoneRefresh.Schedule),
				slog.Duration("timeout", cfg.ZoneRefresh.Timeout),
			)
		}
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	// Create server
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("Shutting down server...")

		// Stop scheduler first
		if refreshScheduler != nil {
			ctx := refreshScheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error("Server shutdown error", slog.String("error", err.Error()))
		}
	}()

	log.Info("Server starting",
		slog.String("port", port),
		slog.String("local", calendarService.GetLocal(context.Background()).Name),
		slog.String("locale", locale.Name),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("Server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
