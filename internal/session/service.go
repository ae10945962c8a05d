package session

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"sessionsheets/config"
)

var ErrNotConfigured = config.ErrNotConfigured

type ServiceSync struct {
	logger *zap.Logger
	store  config.Store
	open   Opener
}

func NewServiceSync(logger *zap.Logger, store config.Store, open Opener) *ServiceSync {
	return &ServiceSync{
		logger: logger,
		store:  store,
		open:   open,
	}
}

// SyncCSV uploads the whole file to an empty worksheet, otherwise appends
// only the last row. Failures are reported in the Result, never returned.
func (s *ServiceSync) SyncCSV(ctx context.Context, csvPath string) Result {
	logger := s.logger.With(zap.String("csv", csvPath))

	cfg, err := s.store.Load()
	if errors.Is(err, config.ErrNotConfigured) {
		logger.Debug("sync skipped, configuration not found", zap.String("config", s.store.Path))
		return Result{Status: StatusNotConfigured, Err: err}
	}
	if err != nil {
		logger.Error("failed to load configuration", zap.Error(err))
		return Result{Status: StatusFailed, Err: err}
	}
	if !cfg.Enabled {
		logger.Debug("sync skipped, disabled in configuration")
		return Result{Status: StatusDisabled}
	}

	rows, err := ReadRows(csvPath)
	if err != nil {
		logger.Error("failed to read csv", zap.Error(err))
		return Result{Status: StatusFailed, Err: err}
	}
	if len(rows) == 0 {
		logger.Debug("csv has no rows")
		return Result{Status: StatusEmpty}
	}

	logger = logger.With(zap.String("sheet", cfg.SheetID), zap.String("worksheet", cfg.WorksheetName))

	repo, err := s.open(ctx, cfg)
	if err != nil {
		logger.Error("failed to open worksheet", zap.Error(err))
		return Result{Status: StatusFailed, Err: err}
	}

	existing, err := repo.Values(ctx)
	if err != nil {
		logger.Error("failed to read worksheet", zap.Error(err))
		return Result{Status: StatusFailed, Err: err}
	}

	if len(existing) == 0 {
		if err := repo.Overwrite(ctx, rows); err != nil {
			logger.Error("failed to upload csv", zap.Error(err))
			return Result{Status: StatusFailed, Err: err}
		}
		logger.Info("uploaded csv to empty worksheet", zap.Int("rows", len(rows)))
		return Result{Status: StatusSynced, Mode: ModeBulk, Synced: len(rows) - 1}
	}

	newest := rows[len(rows)-1]
	if err := repo.Append(ctx, newest); err != nil {
		logger.Error("failed to append newest session", zap.Error(err))
		return Result{Status: StatusFailed, Err: err}
	}

	logger.Info("appended newest session", zap.Int("existingRows", len(existing)))
	return Result{Status: StatusSynced, Mode: ModeAppend, Synced: 1}
}

// Check opens the configured worksheet without touching its data.
func (s *ServiceSync) Check(ctx context.Context) (Report, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return Report{}, err
	}
	return s.CheckConfig(ctx, cfg)
}

// CheckConfig is Check for a config the caller has already loaded.
func (s *ServiceSync) CheckConfig(ctx context.Context, cfg config.Config) (Report, error) {
	repo, err := s.open(ctx, cfg)
	if err != nil {
		s.logger.Error("connection check failed", zap.String("sheet", cfg.SheetID), zap.Error(err))
		return Report{}, err
	}

	report, err := repo.Describe(ctx)
	if err != nil {
		return Report{}, err
	}

	s.logger.Debug("connection check passed", zap.String("title", report.Title), zap.String("worksheet", report.Worksheet))
	return report, nil
}
