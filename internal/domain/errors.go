package domain

import "errors"

var (
	// ErrExtractionUnavailable is returned when the vision extraction
	// service cannot be reached or keeps failing
	ErrExtractionUnavailable = errors.New("label extraction unavailable")

	// ErrMalformedResponse is returned when the extraction service
	// replied but its output could not be parsed into label facts
	ErrMalformedResponse = errors.New("malformed extraction response")

	// ErrSearchUnavailable is returned when the web search service
	// cannot be reached or returned no usable results
	ErrSearchUnavailable = errors.New("web search unavailable")

	// ErrMissingSession is returned when no captured image exists for
	// a session key
	ErrMissingSession = errors.New("no captured image for session")

	// ErrInvalidInput is returned when request parameters are
	// structurally invalid (e.g. no image supplied)
	ErrInvalidInput = errors.New("invalid input")

	// ErrGeminiAPI is returned when the Gemini API request fails
	ErrGeminiAPI = errors.New("gemini API request failed")

	// ErrSessionStoreUnavailable is returned when the session store
	// cannot serve a request
	ErrSessionStoreUnavailable = errors.New("session store unavailable")
)
