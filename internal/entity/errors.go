package entity

import "errors"

var (
	// Acquisition errors
	ErrBadStatus     = errors.New("image fetch returned non-success status")
	ErrUndecodable   = errors.New("image data cannot be decoded")
	ErrSourceMissing = errors.New("image source not found")

	// Text errors
	ErrEmptyTitle = errors.New("title must not be empty")
	ErrNoFont     = errors.New("no usable font found")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)
