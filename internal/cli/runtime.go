package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yannix2/medmind/internal/config"
	"github.com/yannix2/medmind/internal/db"
	"github.com/yannix2/medmind/internal/importer"
	"github.com/yannix2/medmind/internal/logging"
	"github.com/yannix2/medmind/internal/services"
	"gorm.io/gorm"
)

type runtime struct {
	config   config.Config
	logger   *logrus.Logger
	database *gorm.DB
	repos    *db.Repositories
	health   *services.HealthService
}

func (options *rootOptions) openRuntime() (*runtime, error) {
	cfg, err := config.Load(config.LoadOptions{
		EnvFile:    options.envFile,
		ConfigFile: options.configFile,
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if options.dbPath != "" {
		cfg.DBPath = options.dbPath
	}

	logger, err := logging.NewWithOutput(options.logOutput, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	if err := logging.AttachHooks(logger, logging.HookConfig{
		ElkEnable:      cfg.Log.ElkEnable,
		ElkURL:         cfg.Log.ElkURL,
		ElkIndex:       cfg.Log.ElkIndex,
		LogstashEnable: cfg.Log.LogstashEnable,
		LogstashURL:    cfg.Log.LogstashURL,
	}); err != nil {
		return nil, fmt.Errorf("attach log hooks: %w", err)
	}

	database, err := db.OpenSQLite(cfg.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	repos := db.NewRepositories(database)
	return &runtime{
		config:   cfg,
		logger:   logger,
		database: database,
		repos:    repos,
		health:   services.NewHealthService(repos.EatingDays, repos.ActivityDays, repos.Profiles),
	}, nil
}

func (rt *runtime) importer() *importer.Importer {
	return importer.New(rt.repos.EatingDays, rt.repos.ActivityDays, rt.repos.Profiles, rt.logger)
}

func (rt *runtime) Close() error {
	sqlDB, err := rt.database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
