package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedProvider is returned when an unknown provider id is requested
	ErrUnsupportedProvider = errors.New("unsupported AI provider")

	// ErrMissingAPIKey is returned when the selected provider has no API key configured
	ErrMissingAPIKey = errors.New("API key not configured")

	// ErrEmptyPrompt is returned when an empty prompt is submitted
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrEmptyResponse is returned when the vendor accepted the request but
	// produced no usable text
	ErrEmptyResponse = errors.New("empty response from provider")

	// ErrContentBlocked is returned when the vendor's safety filter blocked the
	// content. Distinct from ErrEmptyResponse so callers can surface a content
	// policy message instead of a retry suggestion.
	ErrContentBlocked = errors.New("content blocked by provider safety filter")
)

// VendorError carries a non-2xx vendor response verbatim for diagnostics.
type VendorError struct {
	Provider string
	Status   int
	Message  string
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.Status, e.Message)
}
