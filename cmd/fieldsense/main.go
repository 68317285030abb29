package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fieldsense/fieldsense/internal/profile"
	"github.com/fieldsense/fieldsense/plugin/ai"
	apiv1 "github.com/fieldsense/fieldsense/server/router/api/v1"
	"github.com/fieldsense/fieldsense/server/runner/embedding"
	"github.com/fieldsense/fieldsense/store"
	"github.com/fieldsense/fieldsense/store/db"
)

const version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:   "fieldsense",
	Short: "Duplicate detection for custom metadata fields",
	RunE: func(_ *cobra.Command, _ []string) error {
		serverProfile := &profile.Profile{
			Mode:    viper.GetString("mode"),
			Addr:    viper.GetString("addr"),
			Port:    viper.GetInt("port"),
			Data:    viper.GetString("data"),
			Driver:  viper.GetString("driver"),
			DSN:     viper.GetString("dsn"),
			Version: version,
		}
		serverProfile.FromEnv()
		if err := serverProfile.Validate(); err != nil {
			return err
		}
		return run(serverProfile)
	},
}

func init() {
	rootCmd.PersistentFlags().String("mode", "dev", `server mode, can be "dev" or "prod"`)
	rootCmd.PersistentFlags().String("addr", "", "address of the server")
	rootCmd.PersistentFlags().Int("port", 8082, "port of the server")
	rootCmd.PersistentFlags().String("data", ".", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", `database driver, can be "sqlite" or "postgres"`)
	rootCmd.PersistentFlags().String("dsn", "", "database source name (DSN)")

	for _, flag := range []string{"mode", "addr", "port", "data", "driver", "dsn"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
	viper.SetEnvPrefix("fieldsense")
	viper.AutomaticEnv()
}

func run(serverProfile *profile.Profile) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbDriver, err := db.NewDBDriver(serverProfile)
	if err != nil {
		return fmt.Errorf("failed to create db driver: %w", err)
	}
	storeInstance := store.New(dbDriver, serverProfile)
	defer storeInstance.Close()

	if err := dbDriver.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Use(echomiddleware.Recover())

	apiService := apiv1.NewAPIV1Service(serverProfile, storeInstance)
	apiService.Register(echoServer)

	// Background field embedding only makes sense with vector storage.
	if serverProfile.IsAIEnabled() && serverProfile.Driver == "postgres" {
		cfg := ai.NewConfigFromProfile(serverProfile)
		embeddingService, err := ai.NewEmbeddingService(&cfg)
		if err != nil {
			slog.Warn("embedding runner disabled", "error", err)
		} else {
			go embedding.NewRunner(storeInstance, embeddingService).Run(ctx)
		}
	}

	address := fmt.Sprintf("%s:%d", serverProfile.Addr, serverProfile.Port)
	go func() {
		slog.Info("fieldsense server started",
			"version", serverProfile.Version,
			"address", address,
			"mode", serverProfile.Mode,
			"driver", serverProfile.Driver)
		if err := echoServer.Start(address); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped unexpectedly", "error", err)
			cancel()
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigCh:
		slog.Info("shutting down")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := echoServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down server gracefully", "error", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
