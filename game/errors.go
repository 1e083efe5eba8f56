package game

import (
	"errors"
)

var (
	// ErrInvalidArgument marks malformed input: cell syntax, hand indices, argument counts.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIllegalState marks a well-formed command that the current game state forbids.
	ErrIllegalState = errors.New("illegal game state")
)

// ruleError carries a user-facing message and matches its kind with errors.Is.
type ruleError struct {
	kind error
	msg  string
}

func (e *ruleError) Error() string { return e.msg }
func (e *ruleError) Unwrap() error { return e.kind }

func invalidArgument(msg string) error {
	return &ruleError{kind: ErrInvalidArgument, msg: msg}
}

func illegalState(msg string) error {
	return &ruleError{kind: ErrIllegalState, msg: msg}
}
