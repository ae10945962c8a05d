package google

import (
	"context"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Scopes requested for the service account: spreadsheet and drive access.
var Scopes = []string{sheets.SpreadsheetsScope, drive.DriveScope}

type Client struct {
	Service       *sheets.Service
	SpreadsheetID string
}

// NewGoogleClient authenticates with a service account key file.
func NewGoogleClient(ctx context.Context, serviceAccountPath, spreadsheetID string) (*Client, error) {
	b, err := os.ReadFile(serviceAccountPath)
	if err != nil {
		return nil, &Error{Op: "read service account file", Kind: KindCredentials, Err: err}
	}

	config, err := google.JWTConfigFromJSON(b, Scopes...)
	if err != nil {
		return nil, &Error{Op: "parse service account file", Kind: KindCredentials, Err: err}
	}

	return NewClient(ctx, spreadsheetID, option.WithHTTPClient(config.Client(ctx)))
}

func NewClient(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*Client, error) {
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, &Error{Op: "create sheets service", Kind: KindCredentials, Err: err}
	}

	return &Client{
		Service:       srv,
		SpreadsheetID: spreadsheetID,
	}, nil
}
