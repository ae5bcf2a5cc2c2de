// Package yamlserializer persists cassette hashes as YAML documents. It is
// the default format for recorded fixtures.
package yamlserializer

import (
	yaml "gopkg.in/yaml.v3"

	"github.com/balvig/vcr/cassette/core"
)

const fileExtension = "yml"

// Serializer encodes hashes with gopkg.in/yaml.v3.
type Serializer struct{}

// New constructs a YAML serializer instance.
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

// Deserialize decodes a YAML document into a hash.
func (s *Serializer) Deserialize(data []byte) (core.Hash, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return core.NormalizeHash(value)
}
