package service

import "errors"

var (
	// ErrInvalidArgument is returned for malformed input such as blank names,
	// non-positive amounts or ids outside the group.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyExists is returned when a member name is already taken in the group.
	ErrAlreadyExists = errors.New("already exists")

	// ErrFailedPrecondition is returned when the ledger's current state forbids the change,
	// e.g. deleting a member an expense still refers to.
	ErrFailedPrecondition = errors.New("failed precondition")
)
