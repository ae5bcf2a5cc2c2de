// Package jsonserializer persists cassette hashes as JSON. Objects are
// encoded with sorted keys so re-recorded fixtures diff deterministically.
package jsonserializer

import (
	"bytes"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/balvig/vcr/cassette/core"
)

const fileExtension = "json"

// Serializer encodes hashes as canonical JSON.
type Serializer struct{}

// New constructs a JSON serializer instance.
func New() *Serializer {
	return &Serializer{}
}

// FileExtension returns "json".
func (s *Serializer) FileExtension() string {
	return fileExtension
}

// Serialize encodes the hash as a canonical JSON document.
func (s *Serializer) Serialize(hash core.Hash) ([]byte, error) {
	return marshalCanonical(hash)
}

// Deserialize decodes a JSON document into a hash. Numbers are decoded
// deferred and normalized so integers survive the round trip as integers.
func (s *Serializer) Deserialize(data []byte) (core.Hash, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	return core.NormalizeHash(value)
}

func marshalCanonical(value any) ([]byte, error) {
	switch v := value.(type) {
	case core.Hash:
		if v == nil {
			return []byte("null"), nil
		}
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		var buf bytes.Buffer
		buf.Grow(len(keys) * 32) // heuristic
		buf.WriteByte('{')
		for idx, key := range keys {
			if idx > 0 {
				buf.WriteByte(',')
			}
			keyBytes, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}
			buf.Write(keyBytes)
			buf.WriteByte(':')
			child, err := marshalCanonical(v[key])
			if err != nil {
				return nil, err
			}
			buf.Write(child)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case []any:
		if v == nil {
			return []byte("null"), nil
		}
		var buf bytes.Buffer
		buf.Grow(len(v) * 16)
		buf.WriteByte('[')
		for idx, item := range v {
			if idx > 0 {
				buf.WriteByte(',')
			}
			child, err := marshalCanonical(item)
			if err != nil {
				return nil, err
			}
			buf.Write(child)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case nil:
		return []byte("null"), nil
	default:
		return json.Marshal(v)
	}
}
