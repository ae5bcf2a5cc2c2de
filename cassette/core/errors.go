package core

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedSerializer indicates a lookup for a name that is neither
	// registered nor a built-in the registry knows how to construct.
	ErrUnrecognizedSerializer = errors.New("core: unrecognized serializer")
	// ErrDependencyUnavailable indicates a built-in serializer could not be
	// constructed because its optional engine is not available.
	ErrDependencyUnavailable = errors.New("core: serializer dependency unavailable")
)

// EncodingHint is appended to encoding failures surfaced from Serialize.
const EncodingHint = "Note: enabling the `preserve_exact_body_bytes` option will base64 encode " +
	"body bytes instead of persisting them as raw text, which prevents this error."

// SyntaxHint is appended to parse failures caused by unresolved templating
// markers surfaced from Deserialize.
const SyntaxHint = "Note: the input still contains unresolved `<% ... %>` templating directives. " +
	"This error is usually caused by the `erb` option not being enabled, so the directives " +
	"were never evaluated before deserialization."

// EncodingError reports a string value whose bytes are invalid for the
// format's text encoding. Unwrap exposes the underlying library error (when
// one exists) so callers matching on the original kind are unaffected.
type EncodingError struct {
	Detail string
	Err    error
}

func (e *EncodingError) Error() string {
	detail := e.Detail
	if detail == "" && e.Err != nil {
		detail = e.Err.Error()
	}
	return fmt.Sprintf("%s\n%s", detail, EncodingHint)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// SyntaxError reports a parse failure on input that still carries templating
// markers. Unwrap exposes the backend's native parse error.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s\n%s", e.Err.Error(), SyntaxHint)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
