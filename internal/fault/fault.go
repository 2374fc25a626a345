// Package fault defines the fatal error kinds of a coverage run.
//
// Every kind aborts the whole run. None of them is retried and none is
// downgraded to a per-file warning: a partial coverage number would be a
// misleading gate decision.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal error.
type Kind int

// Error kinds.
const (
	// Pattern is a syntactically invalid glob pattern.
	Pattern Kind = iota + 1

	// Filesystem is an unreadable path or directory.
	Filesystem

	// Dialect is a file extension not mapped to a known source dialect.
	Dialect

	// Parse is source text the parser could not tokenize.
	Parse

	// Config is an invalid configuration value.
	Config
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case Pattern:
		return "pattern"
	case Filesystem:
		return "filesystem"
	case Dialect:
		return "dialect"
	case Parse:
		return "parse"
	case Config:
		return "config"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a fatal error of a given Kind about a subject (a pattern, a
// path or a config key).
type Error struct {
	Kind    Kind
	Subject string
	Err     error
}

func (e *Error) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Subject, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an *Error of the given kind.
func New(kind Kind, subject string, err error) *Error {
	return &Error{Kind: kind, Subject: subject, Err: err}
}

// Newf is New with a formatted cause.
func Newf(kind Kind, subject, format string, args ...any) *Error {
	return New(kind, subject, fmt.Errorf(format, args...))
}

// Is reports whether any error in err's chain is an *Error of kind.
func Is(err error, kind Kind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}
