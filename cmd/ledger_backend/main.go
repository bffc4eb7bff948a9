package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	portssvc "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/handlers"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/middleware"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/platform/config"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/repositories/database/pgsql"
	"github.com/victoryfullpower/cpprimavera-sub002/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Debt & Receipt Ledger API
// @version 1.0
// @description Catalog, debt ledger, receipt engine and report queries for market stand billing.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limit)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(newCORSMiddleware(cfg))

	rateLimiter, err := newRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to build rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(rateLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, buildServices(dbPool, cfg))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices wires repositories into services and collects them into the
// container the handlers consume.
func buildServices(dbPool *pgxpool.Pool, cfg *config.Config) *portssvc.ServiceContainer {
	clientRepo := pgsql.NewClientRepository(dbPool)
	standRepo := pgsql.NewStandRepository(dbPool)
	conceptRepo := pgsql.NewConceptRepository(dbPool)
	methodRepo := pgsql.NewPaymentMethodRepository(dbPool)
	userRepo := pgsql.NewUserRepository(dbPool)
	debtRepo := pgsql.NewDebtRepository(dbPool)
	incomeRepo := pgsql.NewIncomeReceiptRepository(dbPool)
	expenseRepo := pgsql.NewExpenseReceiptRepository(dbPool)
	reportingRepo := pgsql.NewReportingRepository(dbPool)

	return &portssvc.ServiceContainer{
		Client:         services.NewClientService(clientRepo),
		Stand:          services.NewStandService(standRepo, clientRepo),
		Concept:        services.NewConceptService(conceptRepo),
		PaymentMethod:  services.NewPaymentMethodService(methodRepo),
		User:           services.NewUserService(userRepo),
		Debt:           services.NewDebtService(debtRepo, standRepo, conceptRepo),
		IncomeReceipt:  services.NewIncomeReceiptService(incomeRepo, debtRepo, standRepo, methodRepo, conceptRepo),
		ExpenseReceipt: services.NewExpenseReceiptService(expenseRepo, conceptRepo),
		Reporting:      services.NewReportingService(reportingRepo, cfg.ReportLocation),
	}
}

// runMigrations applies all pending schema migrations before the server
// accepts traffic. Uses a separate database/sql connection via the pgx
// stdlib driver, as the migrate postgres driver requires one.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", upErr.Error()))
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func newRateLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	return limiter.New(memorystore.NewStore(), rate), nil
}

func newCORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	return cors.New(corsConfig)
}
