package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds shared by every layer. Concrete errors wrap one of these so
// callers can classify them with errors.Is.
var (
	ErrNotFound            = errors.New("record not found")
	ErrUnknownField        = errors.New("unknown field")
	ErrFormat              = errors.New("invalid format")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrIO                  = errors.New("io error")
	ErrParse               = errors.New("parse error")
)

// UnknownFieldError lists payload keys outside an entity's allowed set.
type UnknownFieldError struct {
	Fields []string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownField, strings.Join(e.Fields, ", "))
}

func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}

// FormatError reports a value that does not match the expected layout.
type FormatError struct {
	Value  string
	Layout string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q does not match %s", ErrFormat, e.Value, e.Layout)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
