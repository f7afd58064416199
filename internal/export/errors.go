package export

import "errors"

var (
	// ErrArchiveMissing indicates neither the export archive nor an already
	// extracted export directory was found.
	ErrArchiveMissing = errors.New("export archive not found")
	// ErrMissingSource indicates a required source table is absent.
	ErrMissingSource = errors.New("export table not found")
)
