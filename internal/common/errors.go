// Package common defines shared constants and sentinel errors used across
// the legalassist client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Submission guard errors (query lifecycle flow control).
	ErrEmptyQuestion      = errors.New("question is empty")
	ErrSubmissionInFlight = errors.New("another submission is in flight")

	// Corpus sync errors.
	ErrSyncRejected = errors.New("sync rejected by server")
)
