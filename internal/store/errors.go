package store

import "errors"

// Sentinel errors returned (wrapped) by Store operations.
var (
	ErrNotFound         = errors.New("record not found")
	ErrExists           = errors.New("record already exists")
	ErrSourceNotFound   = errors.New("source file not found")
	ErrTextNotFound     = errors.New("text file not found")
	ErrMetadataNotFound = errors.New("metadata file not found")
	ErrInvalidID        = errors.New("invalid record id")
	ErrEmpty            = errors.New("shelf is empty")
)
