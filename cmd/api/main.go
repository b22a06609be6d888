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

	"github.com/cmlabs-crm/crm-backend-go/internal/config"
	"github.com/cmlabs-crm/crm-backend-go/internal/domain/communication"
	"github.com/cmlabs-crm/crm-backend-go/internal/domain/company"
	"github.com/cmlabs-crm/crm-backend-go/internal/domain/user"
	appHTTP "github.com/cmlabs-crm/crm-backend-go/internal/handler/http"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/database"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-crm/crm-backend-go/internal/repository/postgresql"
	"github.com/cmlabs-crm/crm-backend-go/internal/repository/sqlite"
	serviceAuth "github.com/cmlabs-crm/crm-backend-go/internal/service/auth"
	serviceCommunication "github.com/cmlabs-crm/crm-backend-go/internal/service/communication"
	serviceCompany "github.com/cmlabs-crm/crm-backend-go/internal/service/company"
)

type repositories struct {
	transactor     database.Transactor
	users          user.UserRepository
	companies      company.CompanyRepository
	communications communication.CommunicationRepository
	methods        communication.MethodRepository
	close          func()
}

// openRepositories connects to the configured store and brings its schema up to date.
func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("connect sqlite: %w", err)
		}
		if err := database.MigrateSQLite(db); err != nil {
			db.Close()
			return nil, err
		}
		return &repositories{
			transactor:     sqlite.NewTransactor(db),
			users:          sqlite.NewUserRepository(db),
			companies:      sqlite.NewCompanyRepository(db),
			communications: sqlite.NewCommunicationRepository(db),
			methods:        sqlite.NewMethodRepository(db),
			close:          func() { _ = db.Close() },
		}, nil

	default:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := database.MigratePostgres(db); err != nil {
			db.Close()
			return nil, err
		}
		return &repositories{
			transactor:     postgresql.NewTransactor(db),
			users:          postgresql.NewUserRepository(db),
			companies:      postgresql.NewCompanyRepository(db),
			communications: postgresql.NewCommunicationRepository(db),
			methods:        postgresql.NewMethodRepository(db),
			close:          db.Close,
		}, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Error initializing database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer repos.close()

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		slog.Error("Error initializing JWT service", "error", err)
		os.Exit(1)
	}

	authService := serviceAuth.NewAuthService(repos.users, JWTService)
	companyService := serviceCompany.NewCompanyService(repos.transactor, repos.companies)
	communicationService := serviceCommunication.NewCommunicationService(repos.transactor, repos.communications, repos.methods)

	if _, err := communicationService.EnsureDefaultMethods(ctx); err != nil {
		slog.Error("Error seeding communication methods", "error", err)
		os.Exit(1)
	}

	authHandler := appHTTP.NewAuthHandler(authService)
	companyHandler := appHTTP.NewCompanyHandler(companyService)
	communicationHandler := appHTTP.NewCommunicationHandler(communicationService)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		companyHandler,
		communicationHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("Server running", "addr", "http://localhost"+server.Addr, "driver", cfg.Database.Driver)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
	}
}
