package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"sessionsheets/config"
	googleClient "sessionsheets/internal/client/google"
)

type RepositorySheets struct {
	logger    *zap.Logger
	client    *googleClient.Client
	worksheet googleClient.Worksheet
}

func NewRepositorySheets(logger *zap.Logger, client *googleClient.Client, worksheet googleClient.Worksheet) *RepositorySheets {
	return &RepositorySheets{
		logger:    logger,
		client:    client,
		worksheet: worksheet,
	}
}

// OpenSheets returns an Opener backed by the Google Sheets API.
func OpenSheets(logger *zap.Logger) Opener {
	return func(ctx context.Context, cfg config.Config) (Repository, error) {
		client, err := googleClient.NewGoogleClient(ctx, cfg.CredentialsPath, cfg.SheetID)
		if err != nil {
			return nil, err
		}
		return OpenWorksheet(ctx, logger, client, cfg.WorksheetName)
	}
}

func OpenWorksheet(ctx context.Context, logger *zap.Logger, client *googleClient.Client, name string) (*RepositorySheets, error) {
	ws, err := client.Worksheet(ctx, name)
	if err != nil {
		return nil, err
	}

	logger.Debug("worksheet resolved",
		zap.String("spreadsheet", ws.Spreadsheet),
		zap.String("worksheet", ws.Title),
		zap.Int64("rows", ws.Rows),
		zap.Int64("columns", ws.Columns))

	return NewRepositorySheets(logger, client, ws), nil
}

func (r *RepositorySheets) Describe(ctx context.Context) (Report, error) {
	return Report{
		Title:     r.worksheet.Spreadsheet,
		Worksheet: r.worksheet.Title,
		Rows:      r.worksheet.Rows,
		Columns:   r.worksheet.Columns,
	}, nil
}

func (r *RepositorySheets) Values(ctx context.Context) ([][]interface{}, error) {
	return r.client.ReadAll(ctx, r.worksheet.Title)
}

func (r *RepositorySheets) Overwrite(ctx context.Context, rows [][]string) error {
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		values = append(values, toValues(row))
	}

	writeRange := googleClient.CellRange(r.worksheet.Title, "A1")
	if err := r.client.UpdateRange(ctx, writeRange, values); err != nil {
		return fmt.Errorf("unable to write rows to sheet: %w", err)
	}

	r.logger.Debug("wrote rows to sheet", zap.String("range", writeRange), zap.Int("rows", len(values)))
	return nil
}

func (r *RepositorySheets) Append(ctx context.Context, row []string) error {
	if err := r.client.AppendRow(ctx, r.worksheet.Title, toValues(row)); err != nil {
		return fmt.Errorf("unable to append row to sheet: %w", err)
	}

	r.logger.Debug("appended row to sheet", zap.String("worksheet", r.worksheet.Title), zap.Int("fields", len(row)))
	return nil
}

func toValues(row []string) []interface{} {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	return values
}
