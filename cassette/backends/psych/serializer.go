// Package psychserializer persists cassette hashes as YAML through the
// JSON-bridge engine (sigs.k8s.io/yaml). The engine is optional: builds can
// swap it out, and construction reports a distinct dependency error when it
// is not available rather than leaving the name unrecognized.
package psychserializer

import (
	encjson "encoding/json"
	"fmt"

	yaml "sigs.k8s.io/yaml"

	"github.com/balvig/vcr/cassette/core"
)

const fileExtension = "yml"

// engine is the subset of the YAML engine the serializer relies on.
type engine interface {
	Marshal(value any) ([]byte, error)
	Unmarshal(data []byte, out any) error
}

// loadEngine resolves the optional engine at construction time. Swapped in
// tests to exercise the unavailable-dependency path.
var loadEngine = func() (engine, error) {
	return sigsEngine{}, nil
}

type sigsEngine struct{}

func (sigsEngine) Marshal(value any) ([]byte, error) {
	return yaml.Marshal(value)
}

func (sigsEngine) Unmarshal(data []byte, out any) error {
	return yaml.Unmarshal(data, out, func(d *encjson.Decoder) *encjson.Decoder {
		d.UseNumber()
		return d
	})
}

// Serializer encodes hashes with the JSON-bridge YAML engine.
type Serializer struct {
	engine engine
}

// New constructs a psych serializer, loading the optional engine. It returns
// an error wrapping core.ErrDependencyUnavailable when the engine cannot be
// loaded.
func New() (*Serializer, error) {
	e, err := loadEngine()
	if err != nil {
		return nil, fmt.Errorf("psych: %w: %v", core.ErrDependencyUnavailable, err)
	}
	return &Serializer{engine: e}, nil
}

// FileExtension returns "yml".
func (s *Serializer) FileExtension() string {
	return fileExtension
}

// Serialize encodes the hash as a YAML document.
func (s *Serializer) Serialize(hash core.Hash) ([]byte, error) {
	return s.engine.Marshal(hash)
}

// Deserialize decodes a YAML document into a hash. The bridge decodes
// numbers as json.Number, so the result is normalized before returning.
func (s *Serializer) Deserialize(data []byte) (core.Hash, error) {
	var value any
	if err := s.engine.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return core.NormalizeHash(value)
}
