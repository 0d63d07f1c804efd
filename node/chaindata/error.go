// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The basecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"fmt"
)

// ErrorCode identifies a kind of consensus failure.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrInvalidProofOfWork indicates the claimed or actual work fails the
	// target and limit checks: the compact target overflowed, is zero,
	// exceeds the configured limit, or the proof hash is above the target.
	ErrInvalidProofOfWork ErrorCode = iota

	// ErrFuturisticTimestamp indicates the header timestamp is further
	// into the future than the allowed skew.
	ErrFuturisticTimestamp

	// ErrCheckpointsFailed indicates the header hash conflicts with a
	// hard-coded checkpoint at its height.
	ErrCheckpointsFailed

	// ErrInvalidBlockVersion indicates the header version is below the
	// currently enforced minimum.
	ErrInvalidBlockVersion

	// ErrTimestampTooEarly indicates the header timestamp is not strictly
	// after the median time of the recent header window.
	ErrTimestampTooEarly

	// ErrIncorrectProofOfWork indicates the header bits field does not
	// match the contextually required work value.
	ErrIncorrectProofOfWork
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidProofOfWork:   "ErrInvalidProofOfWork",
	ErrFuturisticTimestamp:  "ErrFuturisticTimestamp",
	ErrCheckpointsFailed:    "ErrCheckpointsFailed",
	ErrInvalidBlockVersion:  "ErrInvalidBlockVersion",
	ErrTimestampTooEarly:    "ErrTimestampTooEarly",
	ErrIncorrectProofOfWork: "ErrIncorrectProofOfWork",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation.  It is used to indicate that
// processing of a block header failed due to one of the many validation
// rules.  The caller can use type assertions to determine if a failure was
// specifically due to a rule violation and access the ErrorCode field to
// ascertain the specific reason for the rule violation.
type RuleError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// NewRuleError creates a RuleError given a set of arguments.
func NewRuleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}

// IsErrorCode reports whether err is a RuleError carrying the provided
// ErrorCode.
func IsErrorCode(err error, c ErrorCode) bool {
	ruleErr, ok := err.(RuleError)
	return ok && ruleErr.ErrorCode == c
}
