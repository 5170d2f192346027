package shorturl

import "errors"

var (
	// ErrMissingConfiguration indicates the shortener host or API key is not set. No request was sent.
	ErrMissingConfiguration = errors.New("missing shortener configuration")

	// ErrInvalidInput indicates the user input was rejected before any request was sent.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRequestFailure covers every failure of the creation call: transport, status, or body.
	ErrRequestFailure = errors.New("short URL request failed")

	// ErrImageFetchFailure indicates the QR code image could not be retrieved.
	ErrImageFetchFailure = errors.New("QR code image fetch failed")

	// ErrLocalIoFailure indicates the QR code image could not be stored locally.
	ErrLocalIoFailure = errors.New("local I/O failed")
)
