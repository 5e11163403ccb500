package handlers

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"adforge/internal/config"
	"adforge/internal/logger"
	"adforge/internal/persistence"
	"adforge/internal/server"
)

// NewServeCmd creates the serve command for starting the HTTP server
func NewServeCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the adforge HTTP server.

The server provides:
  • POST /api/generate       multi-format content generation
  • POST /api/strategy       full marketing strategy
  • POST /api/ideas          ranked viral campaign ideas
  • POST /api/score          virality scoring
  • GET  /api/formats        supported output formats
  • GET  /api/providers      configured AI providers

A database is optional. With DATABASE_URL set, campaigns and generated
content are persisted and browsable under /api/campaigns.

Examples:
  # Start server on default port 8080
  adforge serve

  # Start on custom port
  adforge serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port, host)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "HTTP server port (default from config: 8080)")
	cmd.Flags().StringVar(&host, "host", "", "HTTP server host (default from config: 0.0.0.0)")

	return cmd
}

func runServe(ctx context.Context, port int, host string) error {
	log := logger.Get()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override server config from flags if provided
	serverCfg := cfg.Server
	if port != 0 {
		serverCfg.Port = port
	}
	if host != "" {
		serverCfg.Host = host
	}

	// Database is optional; without it the server still generates, it just
	// does not persist results.
	var db persistence.Database
	if cfg.Database.URL != "" {
		log.Info("Connecting to database")
		pg, err := persistence.NewPostgresDB(cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w\n\n"+
				"Make sure PostgreSQL is running and the connection string is correct.\n"+
				"Run 'adforge migrate up' to initialize the database schema.", err)
		}
		defer pg.Close()
		db = pg
		log.Info("Database connection successful")
	} else {
		log.Warn("No database configured, results will not be persisted")
	}

	registry, generator, scorer := buildPipeline(cfg)
	srv := server.New(generator, scorer, registry, db, serverCfg)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info(fmt.Sprintf("Server listening on http://%s:%d", serverCfg.Host, serverCfg.Port))
		log.Info("Press Ctrl+C to stop")
		serverErrors <- srv.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info("Server shutdown initiated", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed, forcing close", "error", err)
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		log.Info("Server stopped successfully")
	}

	return nil
}
