package core

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Templating delimiters an external preprocessor would have evaluated.
var (
	markerOpen  = []byte("<%")
	markerClose = []byte("%>")
)

// WithHints wraps a serializer so that the two recognized failure classes
// carry operator guidance. Encoding failures gain the
// `preserve_exact_body_bytes` hint; parse failures on input that still holds
// templating markers gain the `erb` hint. Every other error passes through
// untouched. Wrapping is idempotent: an already-hinted error is never
// re-wrapped, so nesting (the compressed backend delegates to a hinted yaml
// backend) stays safe.
func WithHints(s Serializer) Serializer {
	return &hintedSerializer{inner: s}
}

type hintedSerializer struct {
	inner Serializer
}

func (h *hintedSerializer) FileExtension() string { return h.inner.FileExtension() }

func (h *hintedSerializer) Serialize(hash Hash) ([]byte, error) {
	// Go encoders coerce rather than reject invalid text (encoding/json
	// substitutes U+FFFD silently), so the encoding check runs up front and
	// uniformly across backends.
	if err := validateEncoding(hash); err != nil {
		return nil, err
	}

	data, err := h.inner.Serialize(hash)
	if err != nil {
		return nil, enrichEncodingError(err)
	}
	return data, nil
}

func (h *hintedSerializer) Deserialize(data []byte) (Hash, error) {
	hash, err := h.inner.Deserialize(data)
	if err != nil {
		return nil, enrichSyntaxError(data, err)
	}
	return hash, nil
}

func validateEncoding(hash Hash) error {
	return walkStrings(hash, "", func(path, s string) error {
		if utf8.ValidString(s) {
			return nil
		}
		return &EncodingError{
			Detail: fmt.Sprintf("core: invalid UTF-8 byte sequence in string at %q", path),
		}
	})
}

func walkStrings(value any, path string, fn func(path, s string) error) error {
	switch v := value.(type) {
	case string:
		return fn(path, v)
	case Hash:
		for key, child := range v {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			if err := walkStrings(child, childPath, fn); err != nil {
				return err
			}
		}
	case []any:
		for i, child := range v {
			if err := walkStrings(child, fmt.Sprintf("%s[%d]", path, i), fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func enrichEncodingError(err error) error {
	var encErr *EncodingError
	if errors.As(err, &encErr) {
		return err
	}
	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return err
	}
	// Backends that do reject invalid text report it in their own words.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "invalid utf-8") || strings.Contains(msg, "invalid utf8") {
		return &EncodingError{Err: err}
	}
	return err
}

func enrichSyntaxError(data []byte, err error) error {
	var encErr *EncodingError
	if errors.As(err, &encErr) {
		return err
	}
	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return err
	}
	if bytes.Contains(data, markerOpen) && bytes.Contains(data, markerClose) {
		return &SyntaxError{Err: err}
	}
	return err
}
