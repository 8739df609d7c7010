package pipeline

import "errors"

var (
	// ErrInvalidInput is returned for submissions the caller has to fix. Nothing is written.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConfiguration is returned when a storage or index target is not configured. Nothing is written.
	ErrConfiguration = errors.New("configuration error")
	// ErrBlobWrite is returned when the image could not be stored. No record is written.
	ErrBlobWrite = errors.New("failed to store image")
	ErrNotFound  = errors.New("upload not found")
)
