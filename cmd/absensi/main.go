// Command absensi imports attendance logs and queries stored records from the shell.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Angger-Raka/aplikasi-absensi/config"
	"github.com/Angger-Raka/aplikasi-absensi/internal/repository"
	"github.com/Angger-Raka/aplikasi-absensi/internal/service"
	"github.com/Angger-Raka/aplikasi-absensi/pkg/database"
	applogger "github.com/Angger-Raka/aplikasi-absensi/pkg/logger"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "absensi",
		Short:         "Attendance log import and query tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")

	cmd.AddCommand(
		newImportCmd(&opts),
		newExtractCmd(&opts),
		newRecordsCmd(&opts),
		newRecapCmd(&opts),
		newViolationsCmd(&opts),
		newDepartmentsCmd(&opts),
		newImportsCmd(&opts),
	)
	return cmd
}

// app is the wiring shared by every subcommand.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	svc    *service.Service
	close  func()
}

// loadConfig reads config and builds the logger; the CLI logs to stderr only.
func loadConfig(opts *rootOptions) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return cfg, logger, nil
}

// openApp connects the store and wires services. A store that cannot be
// opened aborts the command.
func openApp(opts *rootOptions) (*app, error) {
	cfg, logger, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(db, cfg.Database.Driver, logger); err != nil {
		_ = database.Close(db)
		return nil, err
	}

	locker, closeLocker := service.NewDateLockerFromConfig(cfg, logger)
	svc := service.NewService(repository.NewRepository(db), locker, logger)

	return &app{
		cfg:    cfg,
		logger: logger,
		db:     db,
		svc:    svc,
		close: func() {
			closeLocker()
			_ = database.Close(db)
			_ = logger.Sync()
		},
	}, nil
}
