package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clovera/admin-api/internal"
	"github.com/clovera/admin-api/internal/auth"
	"github.com/clovera/admin-api/internal/core/events"
	"github.com/clovera/admin-api/internal/dashboard"
	"github.com/clovera/admin-api/internal/issue"
	"github.com/clovera/admin-api/internal/notification"
	"github.com/clovera/admin-api/internal/patient"
	"github.com/clovera/admin-api/internal/store"
	"github.com/clovera/admin-api/internal/transport/rest"
	"github.com/clovera/admin-api/internal/user"
	"github.com/clovera/admin-api/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server serving the admin console API`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config       *internal.Config
	Logger       *slog.Logger
	Router       *chi.Mux
	Gate         *auth.Gate
	SessionStore *auth.SessionStore
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	// Single-shot restore of the persisted admin session; guards defer
	// until it completes.
	go deps.Gate.Restore()

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	env := "development"
	if config.Observability.Logging.Format == "json" {
		env = "production"
	}
	logger.Init(env)
	log := logger.L()

	sessionStore, err := auth.NewSessionStore(config.Session.StorePath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	bus := events.NewEventBus(log)
	notification.NewNotifier(log).Register(bus)

	tokens := auth.NewJWTTokenGenerator(config.Session.TokenSecret, config.Session.TokenDuration)
	gate := auth.NewGate(auth.CredentialFromConfig(config.Admin), sessionStore, tokens, bus, log)

	dataStore, err := store.NewSeeded()
	if err != nil {
		return nil, fmt.Errorf("failed to seed entity store: %w", err)
	}

	userService := user.NewService(dataStore.Users(), bus, log)
	patientService := patient.NewService(dataStore.Patients(), log)
	issueService := issue.NewService(dataStore.Issues(), bus, log)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(
		router,
		sessionStore,
		auth.NewHandler(gate),
		user.NewHandler(userService),
		patient.NewHandler(patientService),
		issue.NewHandler(issueService),
		dashboard.NewHandler(dataStore),
		log,
	)

	return &Dependencies{
		Config:       config,
		Logger:       log,
		Router:       router,
		Gate:         gate,
		SessionStore: sessionStore,
	}, nil
}
