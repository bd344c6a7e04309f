package cli

import (
	"context"
	"ctchen222/tictactoe-engine/internal/api/controller"
	"ctchen222/tictactoe-engine/internal/api/service"
	"ctchen222/tictactoe-engine/internal/bot"
	"ctchen222/tictactoe-engine/internal/config"
	"ctchen222/tictactoe-engine/internal/hub"
	"ctchen222/tictactoe-engine/internal/logger"
	"ctchen222/tictactoe-engine/internal/random"
	"ctchen222/tictactoe-engine/internal/server"
	"ctchen222/tictactoe-engine/internal/telemetry"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and WebSocket play server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file (env: TICTACTOE_*)")

	return cmd
}

// buildServer wires the hub, controllers and gin engine from cfg.
func buildServer(cfg *config.Config) (*server.Server, *hub.Hub, error) {
	difficulty, err := bot.ParseDifficulty(cfg.Bot.Difficulty)
	if err != nil {
		return nil, nil, err
	}

	rnd := random.New(cfg.Bot.Seed)
	h := hub.NewHub(bot.NewMoveCalculator(rnd), hub.Options{
		BotDelay:          cfg.Bot.Delay,
		DefaultDifficulty: difficulty,
	})

	roomController := controller.NewRoomController(h)
	boardController := controller.NewBoardController(service.NewBoardService(rnd))

	return server.NewServer(h, roomController, boardController), h, nil
}

func runServer(ctx context.Context, cfg *config.Config) error {
	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv, h, err := buildServer(cfg)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "http server started", "http.addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ListenAndServe: %w", err)
		}
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h.Shutdown(shutdownCtx)
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server exiting")
	return nil
}
