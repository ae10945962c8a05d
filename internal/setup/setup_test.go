package setup

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sessionsheets/config"
)

type scripted struct {
	answers []string
	asked   []string
}

func (s *scripted) Prompt(label string) (string, error) {
	s.asked = append(s.asked, label)
	if len(s.answers) == 0 {
		return "", errors.New("no more answers")
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func credentialsFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sa.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"service_account"}`), 0o600))
	return path
}

func TestSheetID(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{"https://docs.google.com/spreadsheets/d/abc123/edit", "abc123"},
		{"https://docs.google.com/spreadsheets/d/abc123", "abc123"},
		{"1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{"https://example.com/sheet/abc", "https://example.com/sheet/abc"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SheetID(tt.raw), tt.raw)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/keys/sa.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "keys", "sa.json"), got)

	got, err = ExpandHome("/abs/sa.json")
	require.NoError(t, err)
	assert.Equal(t, "/abs/sa.json", got)

	got, err = ExpandHome("~other/sa.json")
	require.NoError(t, err)
	assert.Equal(t, "~other/sa.json", got)
}

func TestBuildConfig(t *testing.T) {
	cfg := BuildConfig(Answers{
		CredentialsPath: "/keys/sa.json",
		SheetURL:        "https://docs.google.com/spreadsheets/d/abc123/edit",
		WorksheetName:   "Sessions",
	})

	assert.Equal(t, config.Config{
		CredentialsPath: "/keys/sa.json",
		SheetID:         "abc123",
		WorksheetName:   "Sessions",
		Enabled:         true,
	}, cfg)
}

func TestBuildConfigDefaultWorksheet(t *testing.T) {
	cfg := BuildConfig(Answers{CredentialsPath: "/keys/sa.json", SheetURL: "abc123", WorksheetName: "  "})

	assert.Equal(t, "Sheet1", cfg.WorksheetName)
	assert.Equal(t, "abc123", cfg.SheetID)
}

func TestCollectAsksInOrder(t *testing.T) {
	creds := credentialsFile(t)
	p := &scripted{answers: []string{"  " + creds + "  ", "https://docs.google.com/spreadsheets/d/abc123/edit", ""}}

	a, err := Collect(p)
	require.NoError(t, err)
	assert.Equal(t, []string{PromptCredentials, PromptSheetURL, PromptWorksheet}, p.asked)
	assert.Equal(t, Answers{CredentialsPath: creds, SheetURL: "https://docs.google.com/spreadsheets/d/abc123/edit"}, a)
}

func TestCollectExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "sa.json"), []byte("{}"), 0o600))

	a, err := Collect(&scripted{answers: []string{"~/sa.json", "abc", "Log"}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "sa.json"), a.CredentialsPath)
}

func TestCollectMissingCredentialsStopsEarly(t *testing.T) {
	p := &scripted{answers: []string{"/does/not/exist.json", "abc", "Log"}}

	_, err := Collect(p)
	require.ErrorIs(t, err, ErrCredentialsNotFound)
	assert.Contains(t, err.Error(), "/does/not/exist.json")
	assert.Equal(t, []string{PromptCredentials}, p.asked)
}

func TestRunSavesEnabledConfig(t *testing.T) {
	creds := credentialsFile(t)
	store := config.NewStore(filepath.Join(t.TempDir(), ".claude", "google-sheets-config.json"))
	in := strings.NewReader(creds + "\nhttps://docs.google.com/spreadsheets/d/abc123/edit\n\n")
	var out bytes.Buffer

	cfg, err := Run(NewLinePrompter(in, &out), &out, store, "sessionsheets")
	require.NoError(t, err)

	want := config.Config{CredentialsPath: creds, SheetID: "abc123", WorksheetName: "Sheet1", Enabled: true}
	assert.Equal(t, want, cfg)

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, saved)

	assert.Contains(t, out.String(), "=== Google Sheets Integration Setup ===")
	assert.Contains(t, out.String(), "Follow the guide: https://developers.google.com/workspace/guides/create-credentials#service-account")
	assert.Contains(t, out.String(), PromptWorksheet)
	assert.Contains(t, out.String(), "Configuration saved to: "+store.Path)
	assert.Contains(t, out.String(), "sessionsheets --test")
}

func TestRunMissingCredentialsWritesNothing(t *testing.T) {
	store := config.NewStore(filepath.Join(t.TempDir(), "google-sheets-config.json"))
	in := strings.NewReader("/nope.json\nabc\n\n")

	_, err := Run(NewLinePrompter(in, &bytes.Buffer{}), &bytes.Buffer{}, store, "sessionsheets")
	require.ErrorIs(t, err, ErrCredentialsNotFound)

	_, err = store.Load()
	assert.ErrorIs(t, err, config.ErrNotConfigured)
}

func TestLinePrompter(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("first\r\nlast"), &out)

	a, err := p.Prompt("one: ")
	require.NoError(t, err)
	assert.Equal(t, "first", a)

	a, err = p.Prompt("two: ")
	require.NoError(t, err)
	assert.Equal(t, "last", a)

	_, err = p.Prompt("three: ")
	require.Error(t, err)
	assert.Equal(t, "one: two: three: ", out.String())
}
