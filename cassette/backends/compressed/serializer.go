// Package compressedserializer persists cassette hashes as zlib-compressed
// YAML, for fixtures whose recorded bodies are too large to keep as plain
// text.
package compressedserializer

import (
	"bytes"
	"compress/zlib"
	"io"

	yamlserializer "github.com/balvig/vcr/cassette/backends/yaml"
	"github.com/balvig/vcr/cassette/core"
)

const fileExtension = "zz"

// Serializer wraps the YAML backend with zlib compression.
type Serializer struct {
	// inner carries the hint wrapper so parse failures (and their marker
	// hints) are raised against the inflated text, not the compressed bytes.
	inner core.Serializer
}

// New constructs a compressed serializer instance.
func New() *Serializer {
	return &Serializer{inner: core.WithHints(yamlserializer.New())}
}

// FileExtension returns "zz".
func (s *Serializer) FileExtension() string {
	return fileExtension
}

// Serialize encodes the hash as YAML and deflates the result.
func (s *Serializer) Serialize(hash core.Hash) ([]byte, error) {
	plain, err := s.inner.Serialize(hash)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(plain); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserialize inflates the input and decodes the resulting YAML document.
func (s *Serializer) Deserialize(data []byte) (core.Hash, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var plain bytes.Buffer
	if _, err := io.Copy(&plain, r); err != nil {
		return nil, err
	}
	return s.inner.Deserialize(plain.Bytes())
}
