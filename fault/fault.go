// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InternalError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrBlockNumberOutOfRange     = InvalidError("block number out of range")
	ErrConfigurationNotTable     = InvalidError("configuration did not return a table")
	ErrInvalidAccountCount       = InvalidError("invalid account count")
	ErrInvalidBlockSize          = InvalidError("invalid block size")
	ErrInvalidHotFraction        = InvalidError("hot fraction must be in [0, 1]")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidPlanShape          = RecordError("plan cells do not match the plan header")
	ErrInvalidPlanVersion        = InvalidError("invalid plan version")
	ErrInvalidRoundCount         = InvalidError("round count must be at least 2")
	ErrInvalidShardCount         = InvalidError("shard count must be at least 1")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrInvalidWorkerCount        = InvalidError("worker count must be at least 1")
	ErrLocationNotRegistered     = InternalError("storage location has no session id")
	ErrLocationOutOfRange        = InternalError("storage location id has no tracker")
	ErrMissingSenderId           = InternalError("transaction has no sender id")
	ErrNilTransaction            = InvalidError("nil transaction in block")
	ErrNotInitialised            = NotFoundError("not initialised")
	ErrPlanMismatch              = RecordError("plan digest differs from recorded digest")
	ErrPlanNotFound              = NotFoundError("plan not found")
	ErrPlanValueOutOfRange       = InvalidError("plan value out of range")
	ErrSenderOutOfRange          = InternalError("sender id out of range")
	ErrTransactionNotScheduled   = InternalError("transaction was not scheduled")
	ErrTransactionScheduledTwice = InternalError("transaction scheduled more than once")
	ErrTruncatedPlan             = LengthError("plan data is truncated")
	ErrTrailingPlanData          = LengthError("plan has trailing data")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InternalError) Error() string { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInternal(e error) bool { _, ok := e.(InternalError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
