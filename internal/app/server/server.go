package server

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rms/internal/domain/booking"
	"rms/internal/domain/fleet"
	"rms/internal/domain/interval"
	"rms/internal/domain/reports"
	"rms/internal/platform/config"
	"rms/internal/platform/db"
	"rms/internal/platform/metrics"
	"rms/internal/transport/http/api"
	authhandler "rms/internal/transport/http/handlers/auth"
	bookinghandler "rms/internal/transport/http/handlers/booking"
	fleethandler "rms/internal/transport/http/handlers/fleet"
	reportshandler "rms/internal/transport/http/handlers/reports"
	"rms/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	DB     *pgxpool.Pool
	Router http.Handler
}

// New wires the application. The holiday calendar snapshot is built exactly
// once here and injected everywhere, so every count, conflict check and
// segmentation in one process run sees the same holiday table.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect failed: %w", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			return nil, fmt.Errorf("migrations failed: %w", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			return nil, fmt.Errorf("seed failed: %w", err)
		}
	}

	companyDates, err := db.HolidayDates(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("holiday load failed: %w", err)
	}
	calendar, err := interval.NewCalendar(cfg.HolidayJurisdiction, cfg.HolidayFromYear, cfg.HolidayToYear, companyDates)
	if err != nil {
		return nil, fmt.Errorf("calendar build failed: %w", err)
	}
	slog.Info("holiday calendar loaded", "version", calendar.Version())
	counter := interval.NewCounter(calendar, nil)

	bookingService := booking.NewService(booking.NewStore(pool), counter)
	fleetService := fleet.NewService(fleet.NewStore(pool), counter)
	reportsService := reports.NewService(bookingService)

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(collector))
	}
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(pool, cfg.JWTSecret, cfg.TokenTTL)
		r.Post("/auth/login", authHandler.HandleLogin)

		bookinghandler.NewHandler(bookingService).RegisterRoutes(r)
		fleethandler.NewHandler(fleetService).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService).RegisterRoutes(r)
	})

	return &App{Config: cfg, DB: pool, Router: router}, nil
}

func Run() {
	cfg := config.Load()

	app, err := New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.DB.Close()

	log.Printf("RMS server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
