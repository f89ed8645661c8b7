package domain

import "errors"

var (
	// ErrNotConfigured is returned when a required credential is missing.
	// This is the only error that crosses the pipeline boundary as a failure.
	ErrNotConfigured = errors.New("completion service is not configured")

	// ErrUpstreamFailure is returned when an external provider call fails
	// (network error, timeout or non-2xx status)
	ErrUpstreamFailure = errors.New("upstream provider request failed")

	// ErrMalformedResponse is returned when the model backend output cannot
	// be parsed into the expected JSON shape
	ErrMalformedResponse = errors.New("malformed completion response")

	// ErrNoResults is returned when no search provider produced any results
	ErrNoResults = errors.New("no search providers available")

	// ErrNoPrograms is returned when the program corpus is empty
	ErrNoPrograms = errors.New("no programs in corpus")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
