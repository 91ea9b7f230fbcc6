package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/souravmalhi93-eng/Vaani-backend/internal/bot"
	"github.com/souravmalhi93-eng/Vaani-backend/internal/config"
	"github.com/souravmalhi93-eng/Vaani-backend/internal/llm"
	"github.com/souravmalhi93-eng/Vaani-backend/internal/logging"
	"github.com/souravmalhi93-eng/Vaani-backend/internal/server"
	"github.com/souravmalhi93-eng/Vaani-backend/internal/telegram"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the webhook relay server",
	Long:  `Starts the HTTP server that receives Telegram webhook updates and relays replies from the configured completion provider.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; the environment itself is authoritative.
		_ = godotenv.Load()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger := logging.New(cfg.LogLevel)

		providers, err := llm.FromConfig(cfg.Providers)
		if err != nil {
			return fmt.Errorf("building providers: %w", err)
		}
		router := llm.NewRouter(providers, logger)
		if !router.Configured() {
			logger.Warn().Msg("no provider credentials found; replies will be a fixed notice")
		} else {
			logger.Info().Str("primary", providers[0].Name()).Int("active", len(providers)).Msg("providers ready")
		}

		client := telegram.NewClient(cfg.Telegram.BaseURL, cfg.Telegram.Token)
		handler := bot.NewHandler(router, client, logger)

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAll,
		}, handler, logger)

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("server error: %w", err)
		case sig := <-sigCh:
			logger.Info().Str("signal", sig.String()).Msg("shutting down")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
