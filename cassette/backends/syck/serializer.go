// Package syckserializer persists cassette hashes with the legacy YAML
// engine (gopkg.in/yaml.v2). It exists so cassettes recorded under that
// engine stay readable and writable; new recordings should prefer the
// default yaml backend.
package syckserializer

import (
	yaml "gopkg.in/yaml.v2"

	"github.com/balvig/vcr/cassette/core"
)

const fileExtension = "yml"

// Serializer encodes hashes with gopkg.in/yaml.v2.
type Serializer struct{}

// New constructs a legacy-engine YAML serializer instance.
func New() *Serializer {
	return &Serializer{}
}

// FileExtension returns "yml".
func (s *Serializer) FileExtension() string {
	return fileExtension
}

// Serialize encodes the hash as a YAML document.
func (s *Serializer) Serialize(hash core.Hash) ([]byte, error) {
	return yaml.Marshal(hash)
}

// Deserialize decodes a YAML document into a hash. The legacy engine decodes
// mappings as map[interface{}]interface{}, so the result is normalized back
// into the canonical hash form.
func (s *Serializer) Deserialize(data []byte) (core.Hash, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return core.NormalizeHash(value)
}
