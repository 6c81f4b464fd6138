package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/applications"
	"recruit-backend/internal/backend"
	"recruit-backend/internal/companies"
	"recruit-backend/internal/evaluation"
	"recruit-backend/internal/jobpostings"
	"recruit-backend/internal/review"
	"recruit-backend/internal/services/health"
	"recruit-backend/internal/shared/config"
	"recruit-backend/internal/shared/metrics"
	"recruit-backend/internal/shared/server"
	"recruit-backend/internal/shared/server/middleware"
	"recruit-backend/internal/shared/storage/db"
	"recruit-backend/internal/shared/telemetry"
)

const (
	modeUpstream = "upstream"
	modeLocal    = "local"
)

// App holds shared dependencies.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	DB           *sql.DB
	Mode         string
	Backend      *backend.Client
	Companies    *companies.Service
	JobPostings  *jobpostings.Service
	Applications *applications.Service
	Review       *review.Service
	Sessions     *review.SessionStore
}

// Build prepares shared dependencies and the router. With UPSTREAM_API_URL set
// the review service talks to the remote recruiting API; otherwise the
// recruiting contract is served in-process from Postgres or memory.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	app := &App{Config: cfg, Sessions: review.NewSessionStore()}

	var src review.Source
	if cfg.UpstreamAPIURL != "" {
		client, err := backend.NewClient(cfg.UpstreamAPIURL, backend.Options{
			Timeout:        cfg.UpstreamTimeout,
			BreakerEnabled: cfg.BreakerEnabled,
		})
		if err != nil {
			return nil, err
		}
		app.Mode = modeUpstream
		app.Backend = client
		src = client
	} else {
		sqlDB, err := buildDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.Mode = modeLocal
		app.DB = sqlDB
		buildLocalServices(app)
		src = localSource{
			postings:     app.JobPostings,
			applications: app.Applications,
		}
	}

	app.Review = review.NewService(src)
	app.Review.Rules = evaluation.ScoreRules{
		DefaultMax:     cfg.DefaultTotalScore,
		DefaultPassing: cfg.DefaultPassingScore,
	}
	app.Review.Location = cfg.Location()

	deps := server.RouterDeps{
		Config:        cfg,
		ReviewHandler: review.NewHandler(app.Review, app.Sessions),
		RateLimiter:   middleware.NewRateLimiter(nil),
	}
	if app.DB != nil {
		deps.Health = health.NewService(app.Mode, app.DB)
	} else {
		deps.Health = health.NewService(app.Mode, nil)
	}
	if app.Mode == modeLocal {
		deps.CompanyHandler = companies.NewHandler(app.Companies)
		deps.JobPostingHandler = jobpostings.NewHandler(app.JobPostings)
		deps.ApplicationHandler = applications.NewHandler(app.Applications)
	}
	app.Router = server.NewRouter(deps)

	telemetry.Info("bootstrap.ready", map[string]any{
		"mode":     app.Mode,
		"database": app.DB != nil,
		"env":      cfg.Env,
	})
	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_fallback", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL or UPSTREAM_API_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_fallback", map[string]any{"reason": "connect failed", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	metrics.RegisterDB(sqlDB, "recruit")
	return sqlDB, nil
}

func buildLocalServices(app *App) {
	var (
		companyRepo companies.Repo
		postingRepo jobpostings.Repo
		appRepo     applications.Repo
	)
	if app.DB != nil {
		companyRepo = &companies.PGRepo{DB: app.DB}
		postingRepo = &jobpostings.PGRepo{DB: app.DB}
		appRepo = &applications.PGRepo{DB: app.DB}
	} else {
		companyRepo = companies.NewMemoryRepo()
		postingRepo = jobpostings.NewMemoryRepo()
		appRepo = applications.NewMemoryRepo()
	}

	app.Companies = &companies.Service{Repo: companyRepo}
	app.JobPostings = &jobpostings.Service{Repo: postingRepo, Companies: app.Companies}
	app.Applications = &applications.Service{Repo: appRepo, Postings: app.JobPostings}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
