package session

import "fmt"

type Status int

const (
	StatusSynced Status = iota
	StatusNotConfigured
	StatusDisabled
	StatusEmpty
	StatusFailed
)

type Mode int

const (
	ModeNone Mode = iota
	// whole CSV written at A1 of an empty worksheet
	ModeBulk
	// newest CSV row appended
	ModeAppend
)

type Result struct {
	Status Status
	Mode   Mode
	Synced int
	Err    error
}

func (r Result) OK() bool {
	return r.Status == StatusSynced
}

func (r Result) Message() string {
	switch r.Status {
	case StatusSynced:
		if r.Mode == ModeAppend {
			return "Synced 1 session to Google Sheets"
		}
		return fmt.Sprintf("Synced %d sessions to Google Sheets", r.Synced)
	case StatusNotConfigured:
		return "Google Sheets sync is not configured"
	case StatusDisabled:
		return "Google Sheets sync is disabled"
	case StatusEmpty:
		return "CSV file has no rows, nothing to sync"
	default:
		return fmt.Sprintf("Google Sheets sync failed: %v", r.Err)
	}
}
