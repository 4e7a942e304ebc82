package model

import "errors"

// Builder precondition errors. All are raised synchronously by the add
// operation that violates them; a rejected add leaves the card unchanged.
var (
	// ErrNoSection is returned when a widget is added before any section exists.
	ErrNoSection = errors.New("card has no sections, add a section first")

	// ErrSectionIndex is returned when an explicit section index is outside
	// [0, len(sections)).
	ErrSectionIndex = errors.New("section index out of range")

	// ErrMissingURL is returned for a button with no destination URL.
	ErrMissingURL = errors.New("button requires a url to open")

	// ErrMissingButtonContent is returned for a button with neither text nor
	// an image URL.
	ErrMissingButtonContent = errors.New("button requires text or an image url")

	// ErrMissingWebhook is returned when delivery is attempted with no webhook
	// URL resolvable from the call or the sender's configuration.
	ErrMissingWebhook = errors.New("no webhook url configured")
)
