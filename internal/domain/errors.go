package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNoResults indicates a search matched no titles
	ErrNoResults = errors.New("no movies found")

	// ErrMovieNotFound indicates the requested identifier does not exist
	ErrMovieNotFound = errors.New("movie not found")

	// ErrServerOffline indicates the movie database is unreachable
	ErrServerOffline = errors.New("movie database is unreachable")

	// ErrAuthFailed indicates the API key was rejected
	ErrAuthFailed = errors.New("api key is invalid")

	// ErrUnexpectedStatus indicates a non-OK HTTP response
	ErrUnexpectedStatus = errors.New("unexpected status code")
)
