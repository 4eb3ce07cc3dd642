package types

import (
	"errors"
	"fmt"
)

// Dictionary parsing errors.
var (
	ErrMissingType = errors.New(`"word" field has no following "type" field`)
	ErrNotArray    = errors.New("dictionary root must be a JSON array")
	ErrNotObject   = errors.New("dictionary records must be JSON objects")
	ErrValueType   = errors.New("field value must be a JSON string")
)

// Word bank lifecycle errors.
var (
	ErrBankDetached = errors.New("word bank is detached")
	ErrBankAttached = errors.New("word bank is already attached")
)

// ParseError reports a structurally malformed dictionary, with the source
// path and a byte-offset location hint when one is available.
type ParseError struct {
	Path   string
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("parse %s: offset %d: %v", e.Path, e.Offset, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
