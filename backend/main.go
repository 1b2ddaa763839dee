package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vedaverse/backend/config"
	"vedaverse/backend/progress"
	"vedaverse/backend/routes"
	"vedaverse/backend/storage"
	"vedaverse/backend/utils"
)

var envFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "vedaverse",
		Short: "Vedaverse learner progress service",
		RunE:  runServe,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "path to the .env file")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the stored progress record and its overview",
			RunE:  runShow,
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Replace the stored progress record with the default one",
			RunE:  runReset,
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the dependencies shared by every command.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	storage storage.Storage
	store   *progress.Store
}

func bootstrap(ctx context.Context) (*app, error) {
	// Load configuration
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(utils.LoggerConfig{
		Format:       cfg.LogFormat,
		Level:        cfg.LogLevel,
		EnableColors: cfg.LogFormat == "text",
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing logger: %w", err)
	}

	// Initialize storage
	st, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s storage: %w", cfg.StorageDriver, err)
	}

	store, err := progress.New(ctx, st,
		progress.WithKey(cfg.ProgressKey),
		progress.WithLessonMinutes(cfg.LessonMinutes),
		progress.WithLogger(logger),
	)
	if err != nil {
		st.Close()
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, storage: st, store: store}, nil
}

func (a *app) close() {
	if err := a.storage.Close(); err != nil {
		a.logger.Warn("closing storage", zap.Error(err))
	}
	_ = a.logger.Sync()
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	// Create Fiber app
	server := fiber.New(fiber.Config{
		AppName:               "vedaverse",
		DisableStartupMessage: true,
	})

	// Setup routes
	routes.SetupRoutes(server, a.store, a.cfg, a.logger)

	go func() {
		<-ctx.Done()
		a.logger.Info("shutting down")
		if err := server.Shutdown(); err != nil {
			a.logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	a.logger.Info("starting server",
		zap.String("port", a.cfg.ServerPort),
		zap.String("storage", a.cfg.StorageDriver),
		zap.String("key", a.cfg.ProgressKey))
	return server.Listen(":" + a.cfg.ServerPort)
}

func runShow(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	out, err := json.MarshalIndent(fiber.Map{
		"progress": a.store.Progress(),
		"overview": a.store.Overview(),
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func runReset(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	if _, err := a.store.Reset(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "progress %q reset to defaults\n", a.cfg.ProgressKey)
	return nil
}
