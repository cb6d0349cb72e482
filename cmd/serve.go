package cmd

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

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/continha/internal/api"
	"github.com/abhisek/continha/internal/config"
	"github.com/abhisek/continha/internal/csvlog"
	"github.com/abhisek/continha/internal/difficulty"
	"github.com/abhisek/continha/internal/llm"
	"github.com/abhisek/continha/internal/problemgen"
	"github.com/abhisek/continha/internal/session"
	"github.com/abhisek/continha/internal/solver"
	"github.com/abhisek/continha/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tutor HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		slog.SetDefault(logger)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		csvPath, dbPath, err := resolvePaths(cmd)
		if err != nil {
			return err
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		recorder := session.MultiRecorder{csvlog.New(csvPath), st}

		// Model provider is optional: without one the tutor still runs,
		// with heuristic difficulty and no expression solver.
		var predictor difficulty.Predictor = difficulty.Heuristic{}
		var solverSvc *solver.Service
		provider, err := llm.NewProviderFromEnv(cmd.Context(), logger)
		if err != nil {
			logger.Info("model provider not configured, using heuristic difficulty", "reason", err.Error())
		} else {
			predictor = difficulty.NewLLMPredictor(provider)
			solverSvc = solver.NewService(provider)
		}

		engine := session.NewEngine(
			problemgen.New(problemgen.DefaultRanges()),
			difficulty.NewPolicy(predictor, logger),
			recorder,
			logger,
		)

		handler := api.NewHandler(session.NewRegistry(), engine, solverSvc, logger)
		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           api.NewRouter(handler, cfg.AllowedOrigins),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server listening", "port", cfg.Port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("serve: %w", err)
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

// loadConfig loads .env (when present) and the environment config.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		// No .env file is the normal case outside development.
		slog.Debug("no .env file found")
	}
	return config.Load()
}
