package core

import "fmt"

// jsonNumber matches json.Number-style deferred numerics without importing a
// specific JSON package.
type jsonNumber interface {
	Int64() (int64, error)
	Float64() (float64, error)
}

// NormalizeValue rewrites decoder-specific shapes into the canonical Hash
// form: map[interface{}]interface{} keys become strings, deferred numbers
// and wide integer types collapse to int when they fit (float64 otherwise),
// and sequences are normalized element-wise. Scalars already in canonical
// form pass through unchanged.
func NormalizeValue(value any) any {
	switch v := value.(type) {
	case Hash:
		for key, child := range v {
			v[key] = NormalizeValue(child)
		}
		return v
	case map[any]any:
		hash := make(Hash, len(v))
		for key, child := range v {
			s, ok := key.(string)
			if !ok {
				s = fmt.Sprint(key)
			}
			hash[s] = NormalizeValue(child)
		}
		return hash
	case []any:
		for i, child := range v {
			v[i] = NormalizeValue(child)
		}
		return v
	case jsonNumber:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		f, err := v.Float64()
		if err != nil {
			return value
		}
		return f
	case int64:
		if v >= int64(minInt) && v <= int64(maxInt) {
			return int(v)
		}
		return v
	case uint64:
		if v <= uint64(maxInt) {
			return int(v)
		}
		return v
	default:
		return value
	}
}

// NormalizeHash applies NormalizeValue and asserts the result is a Hash.
func NormalizeHash(value any) (Hash, error) {
	if value == nil {
		return nil, nil
	}
	normalized := NormalizeValue(value)
	hash, ok := normalized.(Hash)
	if !ok {
		return nil, fmt.Errorf("core: expected a mapping at the document root, got %T", value)
	}
	return hash, nil
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)
