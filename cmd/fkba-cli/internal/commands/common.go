package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/store"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/persistence"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// DefaultConfigPath is used when neither --config nor CONFIG_PATH is set.
const DefaultConfigPath = "configs/rest-app.yaml"

var (
	successColor = color.New(color.Bold, color.FgHiGreen)
	warnColor    = color.New(color.FgHiYellow)
	labelColor   = color.New(color.FgHiCyan)
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// runtime holds the configuration and database shared by the commands.
type runtime struct {
	cfg    *config.RestConfig
	db     *gorm.DB
	store  store.Store
	loc    *time.Location
	logger logger.Logger
}

func configPath(cmd *cobra.Command) string {
	if path, err := cmd.Flags().GetString("config"); err == nil && path != "" {
		return path
	}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return DefaultConfigPath
}

// openRuntime loads the configuration and connects to the database.
func openRuntime(cmd *cobra.Command) (*runtime, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	cfg, err := config.InitializeRestConfig(configPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	st, err := persistence.NewGormStore(db, loggerInstance)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return &runtime{cfg: cfg, db: db, store: st, loc: loc, logger: loggerInstance}, nil
}

func (rt *runtime) close() {
	if err := persistence.CloseDB(rt.db); err != nil {
		rt.logger.Warn("Failed to close database", "error", err)
	}
}

// AddConfigFlag registers the persistent --config flag on the root command.
func AddConfigFlag(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the YAML configuration (defaults to CONFIG_PATH or "+DefaultConfigPath+")")
}
