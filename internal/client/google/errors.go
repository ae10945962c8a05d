package google

import (
	"errors"
	"net"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

type Kind int

const (
	KindRemote Kind = iota
	KindCredentials
	KindAuth
	KindNotFound
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindCredentials:
		return "credentials"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not found"
	case KindNetwork:
		return "network"
	default:
		return "remote"
	}
}

// Error is returned by every Client operation.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

var (
	ErrCredentials = &Error{Kind: KindCredentials}
	ErrAuth        = &Error{Kind: KindAuth}
	ErrNotFound    = &Error{Kind: KindNotFound}
	ErrNetwork     = &Error{Kind: KindNetwork}
	ErrRemote      = &Error{Kind: KindRemote}
)

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels above, so errors.Is(err, ErrNotFound) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf reports the failure kind of err, KindRemote when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindRemote
}

func classify(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &Error{Op: op, Kind: KindAuth, Err: err}
		case http.StatusNotFound:
			return &Error{Op: op, Kind: KindNotFound, Err: err}
		default:
			return &Error{Op: op, Kind: KindRemote, Err: err}
		}
	}

	// token exchange rejected, wrapped in *url.Error by the http client
	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		return &Error{Op: op, Kind: KindAuth, Err: err}
	}

	var nerr net.Error
	if errors.As(err, &nerr) {
		return &Error{Op: op, Kind: KindNetwork, Err: err}
	}

	return &Error{Op: op, Kind: KindRemote, Err: err}
}
