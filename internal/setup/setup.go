package setup

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"sessionsheets/config"
)

var ErrCredentialsNotFound = errors.New("service account file not found")

const (
	PromptCredentials = "Enter path to service account JSON file: "
	PromptSheetURL    = "Enter Google Sheet URL: "
	PromptWorksheet   = "Enter worksheet name (default: " + config.DefaultWorksheet + "): "
)

const banner = `=== Google Sheets Integration Setup ===

This will configure the hook to sync session data to Google Sheets.

Prerequisites:
1. Create a Google Cloud project and enable the Google Sheets API
2. Create service account credentials (JSON key file)
3. Share your Google Sheet with the service account email

Follow the guide: https://developers.google.com/workspace/guides/create-credentials#service-account

`

type Answers struct {
	CredentialsPath string
	SheetURL        string
	WorksheetName   string
}

// SheetID takes the path component after /d/ in a sheet URL. Anything
// without /d/ is treated as the identifier itself.
func SheetID(raw string) string {
	_, rest, ok := strings.Cut(raw, "/d/")
	if !ok {
		return raw
	}
	id, _, _ := strings.Cut(rest, "/")
	return id
}

func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func BuildConfig(a Answers) config.Config {
	worksheet := strings.TrimSpace(a.WorksheetName)
	if worksheet == "" {
		worksheet = config.DefaultWorksheet
	}

	return config.Config{
		CredentialsPath: a.CredentialsPath,
		SheetID:         SheetID(strings.TrimSpace(a.SheetURL)),
		WorksheetName:   worksheet,
		Enabled:         true,
	}
}

// Collect asks the three setup questions in order. The credentials file
// is expanded and must exist before the next question is asked.
func Collect(p Prompter) (Answers, error) {
	creds, err := p.Prompt(PromptCredentials)
	if err != nil {
		return Answers{}, err
	}

	creds, err = ExpandHome(strings.TrimSpace(creds))
	if err != nil {
		return Answers{}, err
	}
	if _, err := os.Stat(creds); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Answers{}, fmt.Errorf("%w: %s", ErrCredentialsNotFound, creds)
		}
		return Answers{}, fmt.Errorf("unable to stat %s: %w", creds, err)
	}

	url, err := p.Prompt(PromptSheetURL)
	if err != nil {
		return Answers{}, err
	}

	worksheet, err := p.Prompt(PromptWorksheet)
	if err != nil {
		return Answers{}, err
	}

	return Answers{
		CredentialsPath: creds,
		SheetURL:        strings.TrimSpace(url),
		WorksheetName:   strings.TrimSpace(worksheet),
	}, nil
}

func Run(p Prompter, out io.Writer, store config.Store, program string) (config.Config, error) {
	fmt.Fprint(out, banner)

	answers, err := Collect(p)
	if err != nil {
		return config.Config{}, err
	}

	cfg := BuildConfig(answers)
	if err := store.Save(cfg); err != nil {
		return config.Config{}, err
	}

	fmt.Fprintf(out, "\nConfiguration saved to: %s\n", store.Path)
	fmt.Fprintf(out, "\nTest the integration:\n  %s --test\n", program)
	return cfg, nil
}
