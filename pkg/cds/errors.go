package cds

import (
	"errors"
	"fmt"
)

// Sentinel errors for CDS operations. All of them are recoverable: they are
// collected and returned to callers, never panicked on.
var (
	// ErrInvalidHost is returned when the configured CDS host is not a
	// valid URL.
	ErrInvalidHost = errors.New("cds: invalid host URL")

	// ErrNoLocales is returned when a fetch is issued with no locale
	// codes at all.
	ErrNoLocales = errors.New("cds: no locale codes to fetch")

	// ErrRequestFailed is returned when a request could not complete or
	// its response could not be decoded.
	ErrRequestFailed = errors.New("cds: request failed")

	// ErrInvalidResponse is returned when the service answers with a
	// body that does not match the protocol.
	ErrInvalidResponse = errors.New("cds: invalid response")

	// ErrMaxRetriesReached is returned when the retry budget for a
	// not-ready resource or an unresolved push job is exhausted.
	ErrMaxRetriesReached = errors.New("cds: retry budget exhausted")

	// ErrEmptyResponse is returned when the service answers 200 with an
	// empty body.
	ErrEmptyResponse = errors.New("cds: empty response body")

	// ErrSerializationFailed is returned when the push payload cannot be
	// encoded.
	ErrSerializationFailed = errors.New("cds: failed to serialize source strings")

	// ErrNothingToPush is returned when a push is issued with zero
	// source strings.
	ErrNothingToPush = errors.New("cds: nothing to push")

	// ErrFailedJobRequest is returned when a push job status request
	// itself fails; polling stops without retrying it.
	ErrFailedJobRequest = errors.New("cds: job status request failed")
)

// ServerError reports a non-2xx status from the service.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("cds: server responded with status %d", e.StatusCode)
}

// LocaleError ties a fetch failure to the locale it occurred for.
type LocaleError struct {
	Locale string
	Err    error
}

func (e *LocaleError) Error() string {
	return fmt.Sprintf("locale %q: %v", e.Locale, e.Err)
}

func (e *LocaleError) Unwrap() error {
	return e.Err
}

// JobError is one per-item error reported by a resolved push job.
type JobError struct {
	Status string            `json:"status"`
	Code   string            `json:"code"`
	Title  string            `json:"title"`
	Detail string            `json:"detail"`
	Source map[string]string `json:"source"`
}

func (e *JobError) Error() string {
	return fmt.Sprintf("cds: job error %s: %s", e.Code, e.Title)
}

// WarningType classifies non-fatal push conditions.
type WarningType string

const (
	// WarningDuplicateKey marks two source strings colliding on the same
	// key; the later one wins.
	WarningDuplicateKey WarningType = "duplicate_key"

	// WarningEmptyKey marks a source string submitted with an empty or
	// whitespace-only key.
	WarningEmptyKey WarningType = "empty_key"
)

// Warning is a non-fatal condition detected while preparing a push. It
// always accompanies the primary result, never replaces it.
type Warning struct {
	Type    WarningType
	Key     string
	Message string
}
