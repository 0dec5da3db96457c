package domain

import (
	"errors"
	"fmt"

	m "obsportable.dev/pkg/obsportable/internal/model"
)

var (
	// ErrSourceVanished reports a media file that passed classification but
	// was gone by the time it was copied.
	ErrSourceVanished = errors.New("source file vanished")
	// ErrSourceUnreadable reports a media file that exists but could not be
	// read (locked, permission denied).
	ErrSourceUnreadable = errors.New("source file unreadable")
	// ErrDestinationUnwritable reports an assets directory or asset file that
	// could not be created or written.
	ErrDestinationUnwritable = errors.New("destination unwritable")
)

// CopyError describes a failed asset copy.
type CopyError struct {
	Source      m.Path
	Destination m.Path
	Kind        error
	Err         error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s to %s: %v: %v", e.Source, e.Destination, e.Kind, e.Err)
}

// Unwrap exposes both the failure kind and the underlying cause.
func (e *CopyError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// DocumentError ties a rewrite failure to the scene file being processed.
type DocumentError struct {
	Document m.Path
	Err      error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %s: %v", e.Document, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
