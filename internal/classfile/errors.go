package classfile

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=LimitKind -output=limitkind_string.go

// LimitKind names the format limit that was exceeded.
type LimitKind int

const (
	LimitUTF8Length LimitKind = iota
	LimitPoolSize
	LimitFieldCount
)

// ErrConsumed is returned when a Builder is used after it was serialized.
var ErrConsumed = errors.New("classfile: builder already serialized")

// LimitError reports input too large for the class-file format.
type LimitError struct {
	Kind LimitKind
	// Limit is the maximum the format allows.
	Limit int
	// Actual is the offending size, when known.
	Actual int
}

func (e *LimitError) Error() string {
	switch e.Kind {
	case LimitUTF8Length:
		return fmt.Sprintf("utf8 data too long: %d bytes, limit is %d", e.Actual, e.Limit)
	case LimitPoolSize:
		return fmt.Sprintf("too many constants: pool IDs are limited to %#x", e.Limit)
	case LimitFieldCount:
		return fmt.Sprintf("too many fields: limit is %d", e.Limit)
	default:
		return fmt.Sprintf("class file limit exceeded: %v", e.Kind)
	}
}

// DecodeError reports a malformed class file.
type DecodeError struct {
	Offset int
	Msg    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode class file at byte %d: %s", e.Offset, e.Msg)
}
