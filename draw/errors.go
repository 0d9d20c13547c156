package draw

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a compositor error (§7). Callers
// switch on Kind rather than matching message text.
type Kind int

const (
	_ Kind = iota
	// ErrMalformedStream covers truncated buffers, unknown opcodes, and
	// delta-coord overflow.
	ErrMalformedStream
	// ErrUnknownImage means an id was not found in the image store.
	ErrUnknownImage
	// ErrUnknownFont means a font id has no glyph table.
	ErrUnknownFont
	// ErrOutOfRange covers glyph indices >= n, out-of-bounds rectangles,
	// and wrong channel byte counts.
	ErrOutOfRange
	// ErrAllocationFailure covers surface or glyph table allocation
	// failures.
	ErrAllocationFailure
	// ErrDisplayInvariant covers attempts to free id 0 or resize it to a
	// non-positive extent.
	ErrDisplayInvariant
)

func (k Kind) String() string {
	switch k {
	case ErrMalformedStream:
		return "MalformedStream"
	case ErrUnknownImage:
		return "UnknownImage"
	case ErrUnknownFont:
		return "UnknownFont"
	case ErrOutOfRange:
		return "OutOfRange"
	case ErrAllocationFailure:
		return "AllocationFailure"
	case ErrDisplayInvariant:
		return "DisplayInvariant"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every compositor operation that
// can fail. It carries a Kind so callers can recover from specific
// failures (§7) and an optional diagnostic string.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// Is reports whether target names the same Kind, so callers can write
// errors.Is(err, draw.SentinelUnknownImage) style checks against the
// sentinel values below.
func (e *Error) Is(target error) bool {
	var k *kindSentinel
	if errors.As(target, &k) {
		return e.Kind == k.kind
	}
	return false
}

type kindSentinel struct{ kind Kind }

func (s *kindSentinel) Error() string { return s.kind.String() }

func newError(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Sentinels usable with errors.Is(err, draw.SentinelUnknownImage) etc.
var (
	SentinelMalformedStream  = &kindSentinel{ErrMalformedStream}
	SentinelUnknownImage     = &kindSentinel{ErrUnknownImage}
	SentinelUnknownFont      = &kindSentinel{ErrUnknownFont}
	SentinelOutOfRange       = &kindSentinel{ErrOutOfRange}
	SentinelAllocationFailed = &kindSentinel{ErrAllocationFailure}
	SentinelDisplayInvariant = &kindSentinel{ErrDisplayInvariant}
)
