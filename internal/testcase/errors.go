package testcase

import (
	"errors"
	"fmt"

	"tagcat/internal/domain"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("malformed tag specification")
	// ErrInvalidTag is matched by every *InvalidTagError.
	ErrInvalidTag = errors.New("invalid tag")
)

// ParseError reports a tag specification with unbalanced brackets.
type ParseError struct {
	Location domain.SourceLocation // Declaration site, empty when tokenizing standalone
	Spec     string                // The full tag specification
	Offset   int                   // Byte offset of the offending or unterminated bracket
	Message  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s in tag specification %q at offset %d", e.Message, e.Spec, e.Offset)
	if e.Location.File != "" {
		return msg + " (" + e.Location.String() + ")"
	}
	return msg
}

// Is lets errors.Is match ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// InvalidTagError reports an ordinary tag that uses reserved naming.
type InvalidTagError struct {
	Location domain.SourceLocation
	Tag      string
}

// Error implements the error interface.
func (e *InvalidTagError) Error() string {
	msg := fmt.Sprintf("tag name [%s] is not allowed: tag names starting with non alphanumeric characters are reserved", e.Tag)
	if e.Location.File != "" {
		return msg + " (" + e.Location.String() + ")"
	}
	return msg
}

// Is lets errors.Is match ErrInvalidTag.
func (e *InvalidTagError) Is(target error) bool {
	return target == ErrInvalidTag
}
