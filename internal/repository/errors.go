// Package repository owns the two persisted collections — user
// accounts and property listings — and defines the sentinel errors
// callers use to distinguish failure kinds. Every operation either
// completes and persists or returns one of these sentinels with the
// in-memory state unchanged; the presentation layer translates each
// kind into user-facing text.
package repository

import "errors"

// ErrDuplicateIdentity is returned by Register when an existing
// account already holds the submitted mobile number or email address.
// The two collision kinds are deliberately not distinguished.
var ErrDuplicateIdentity = errors.New("mobile or email already registered")

// ErrNotFound is returned by Authenticate when no account has the
// submitted mobile number.
var ErrNotFound = errors.New("no account with this mobile number")

// ErrWrongPassword is returned by Authenticate when the account
// exists but the password does not match. Kept separate from
// ErrNotFound because callers present different feedback for each.
var ErrWrongPassword = errors.New("incorrect password")

// ErrNoMatch is returned by ResetPassword when no account matches the
// full name, mobile and email triple exactly.
var ErrNoMatch = errors.New("account details do not match")

// ErrPersistenceFailed wraps a durable-store write that did not
// succeed. The mutation that triggered it is rolled back; memory and
// storage stay consistent with the pre-call state.
var ErrPersistenceFailed = errors.New("persistence failed")

// ErrCorruptData is returned at construction when a stored collection
// blob cannot be decoded. Loading proceeds no further; starting with
// a silently empty collection would mask data loss.
var ErrCorruptData = errors.New("corrupt stored data")
