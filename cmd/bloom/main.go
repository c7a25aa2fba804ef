package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/warmlittlelight/bloom/internal/achievements"
	"github.com/warmlittlelight/bloom/internal/config"
	"github.com/warmlittlelight/bloom/internal/storage"
	"go.uber.org/zap"
)

var BUILD_VERSION = "dev"

type rootOptions struct {
	configPath string
}

// app is the wired-up engine a subcommand runs against
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	gateway *storage.SQLiteGateway
	engine  *achievements.Engine
}

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bloom:", err)
		os.Exit(1)
	}
}

// NewRootCommand creates the root command for the bloom CLI
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "bloom",
		Short:   "Bloom achievement engine",
		Long:    "Developer CLI for Bloom's achievement tracking and progress engine.",
		Version: BUILD_VERSION,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/bloom/config.yaml)")

	cmd.AddCommand(NewTrackCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewProgressCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewUnseenCommand(opts))
	cmd.AddCommand(NewResetCommand(opts))

	return cmd
}

// newApp loads config and wires an engine over the configured database.
// Callers must close the returned app.
func newApp(rootOpts *rootOptions) (*app, error) {
	configPath := rootOpts.configPath
	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.EnsureUserID() {
		// Saving the minted id is best-effort
		_ = config.Save(cfg, configPath)
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, err
	}

	logger, err := initializeLogger(cfg)
	if err != nil {
		return nil, err
	}

	gateway, err := storage.NewSQLiteGateway(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	engine := achievements.New(achievements.DefaultCatalog(), gateway, achievements.WithLogger(logger))

	return &app{
		cfg:     cfg,
		logger:  logger,
		gateway: gateway,
		engine:  engine,
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
	_ = a.gateway.Close()
}

func initializeLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	loggerConfig.OutputPaths = []string{cfg.LogFile}
	return loggerConfig.Build()
}
