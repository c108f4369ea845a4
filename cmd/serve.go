package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"resistor-scan/internal/config"
	httpapi "resistor-scan/internal/http"
	"resistor-scan/internal/service"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP analysis service",
		Long: `Starts an HTTP service that accepts resistor photos as multipart
uploads on POST /api/v1/analyze and responds with the detected bands and
the decoded resistance value as JSON.`,
		Example: `  # Start on the default address :8080
  resistor-scan serve

  # Custom address and config file
  resistor-scan serve --addr :9000 --config config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			level, err := zerolog.ParseLevel(cfg.Log.Level)
			if err != nil {
				level = zerolog.InfoLevel
			}
			log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

			gin.SetMode(gin.ReleaseMode)
			analyzer := service.NewAnalyzer(cfg.Detection.Params(), log)
			handler := httpapi.NewHandler(analyzer, log, cfg.Server.MaxUploadBytes)
			router := httpapi.NewRouter(handler)

			server := &http.Server{
				Addr:    cfg.Server.Addr,
				Handler: router,
			}

			serverErr := make(chan error, 1)
			go func() {
				log.Info().Str("addr", cfg.Server.Addr).Msg("listening")
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			select {
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("server shutdown failed")
					return err
				}
				log.Info().Msg("server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}
