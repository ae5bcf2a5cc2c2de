package benchmarks

import (
	"strings"
	"testing"

	"github.com/balvig/vcr/cassette/core"
	"github.com/balvig/vcr/cassette/registry"
)

func benchInteractions() core.Hash {
	return core.Hash{
		"http_interactions": []any{
			core.Hash{
				"request": core.Hash{
					"method": "GET",
					"uri":    "http://example.com/widgets?page=2",
					"headers": core.Hash{
						"Accept": []any{"application/json"},
					},
					"body": nil,
				},
				"response": core.Hash{
					"status": 200,
					"headers": core.Hash{
						"Content-Type": []any{"application/json"},
						"Cache-Control": []any{
							"max-age=0, private, must-revalidate",
						},
					},
					"body": strings.Repeat(`{"id":1,"name":"widget"},`, 64),
				},
			},
		},
		"recorded_with": "vcr",
	}
}

func benchmarkSerialize(b *testing.B, name string) {
	s, err := registry.New().Get(name)
	if err != nil {
		b.Fatalf("Get(%q) returned error: %v", name, err)
	}
	hash := benchInteractions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Serialize(hash); err != nil {
			b.Fatalf("Serialize returned error: %v", err)
		}
	}
}

func benchmarkDeserialize(b *testing.B, name string) {
	s, err := registry.New().Get(name)
	if err != nil {
		b.Fatalf("Get(%q) returned error: %v", name, err)
	}
	data, err := s.Serialize(benchInteractions())
	if err != nil {
		b.Fatalf("Serialize returned error: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Deserialize(data); err != nil {
			b.Fatalf("Deserialize returned error: %v", err)
		}
	}
}

func BenchmarkYAMLSerialize(b *testing.B) { benchmarkSerialize(b, registry.YAML) }

func BenchmarkYAMLDeserialize(b *testing.B) { benchmarkDeserialize(b, registry.YAML) }

func BenchmarkSyckSerialize(b *testing.B) { benchmarkSerialize(b, registry.Syck) }

func BenchmarkSyckDeserialize(b *testing.B) { benchmarkDeserialize(b, registry.Syck) }

func BenchmarkPsychSerialize(b *testing.B) { benchmarkSerialize(b, registry.Psych) }

func BenchmarkPsychDeserialize(b *testing.B) { benchmarkDeserialize(b, registry.Psych) }

func BenchmarkJSONSerialize(b *testing.B) { benchmarkSerialize(b, registry.JSON) }

func BenchmarkJSONDeserialize(b *testing.B) { benchmarkDeserialize(b, registry.JSON) }

func BenchmarkCompressedSerialize(b *testing.B) { benchmarkSerialize(b, registry.Compressed) }

func BenchmarkCompressedDeserialize(b *testing.B) { benchmarkDeserialize(b, registry.Compressed) }
