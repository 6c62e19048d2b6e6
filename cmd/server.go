package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/config"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/server"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the sunburn simulation server",
	Long:  `Start the HTTP server exposing the sunburn risk simulation, the live ozone lookup and the risk timeline CSV export.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()

	log.Info("Starting sunburn simulation server",
		zap.String("config_path", configPath),
		zap.Bool("ozone_lookup_enabled", cfg.Ozone.Enabled),
		zap.Bool("telemetry_enabled", cfg.Telemetry.Enabled),
		zap.Int("server_port", cfg.Server.Port))

	srv := server.NewServer(log.Logger, tele)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		log.Error("Server error", zap.Error(err))
		return err
	case <-cmd.Context().Done():
		log.Info("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(); err != nil {
			log.Error("Error during server shutdown", zap.Error(err))
			return err
		}

		if tele != nil {
			if err := tele.Shutdown(shutdownCtx); err != nil {
				log.Warn("Error during telemetry shutdown", zap.Error(err))
			}
		}

		log.Info("Server shutdown complete")
		return nil
	}
}
