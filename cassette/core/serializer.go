package core

// Hash is the structured value serializers convert to and from. Keys are
// strings; values are nil, bool, int, float64, string, nested Hash values
// (as map[string]any), or []any sequences thereof.
type Hash = map[string]any

// Serializer converts a recorded interaction hash to a persistable byte
// representation and back. Implementations are stateless; a single instance
// is shared by every caller that looks it up through a registry.
type Serializer interface {
	// FileExtension returns the extension (without leading dot) used when
	// naming files written in this format.
	FileExtension() string
	Serialize(hash Hash) ([]byte, error)
	Deserialize(data []byte) (Hash, error)
}
