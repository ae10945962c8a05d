package session

import (
	"context"

	"sessionsheets/config"
)

// Repository is one remote worksheet.
type Repository interface {
	Describe(ctx context.Context) (Report, error)
	Values(ctx context.Context) ([][]interface{}, error)
	Overwrite(ctx context.Context, rows [][]string) error
	Append(ctx context.Context, row []string) error
}

// Opener authenticates and resolves the configured worksheet. It is only
// called once a sync or check actually needs the remote side.
type Opener func(ctx context.Context, cfg config.Config) (Repository, error)

type Report struct {
	Title     string
	Worksheet string
	Rows      int64
	Columns   int64
}
