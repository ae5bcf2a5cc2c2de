package yamlserializer

import (
	"reflect"
	"testing"

	"github.com/balvig/vcr/cassette/core"
)

func sampleInteractions() core.Hash {
	return core.Hash{
		"http_interactions": []any{
			core.Hash{
				"request": core.Hash{
					"method": "GET",
					"uri":    "http://example.com/widgets",
					"body":   nil,
				},
				"response": core.Hash{
					"status": 200,
					"headers": core.Hash{
						"Content-Type": []any{"application/json"},
					},
					"body": `{"widgets":[]}`,
				},
			},
		},
		"recorded_with": "vcr",
		"elapsed":       1.5,
		"replayed":      true,
	}
}

func TestRoundTrip(t *testing.T) {
	s := New()

	data, err := s.Serialize(sampleInteractions())
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}

	restored, err := s.Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize returned error: %v", err)
	}
	if !reflect.DeepEqual(restored, sampleInteractions()) {
		t.Fatalf("round-trip mismatch:\ngot:  %#v\nwant: %#v", restored, sampleInteractions())
	}
}

func TestFileExtension(t *testing.T) {
	if got := New().FileExtension(); got != "yml" {
		t.Fatalf("expected extension %q, got %q", "yml", got)
	}
}

func TestDeserializeRejectsMalformedDocument(t *testing.T) {
	if _, err := New().Deserialize([]byte("key: value\n\tbroken: true\n")); err == nil {
		t.Fatalf("expected parse error for tab-indented document")
	}
}

func TestDeserializeRejectsSequenceRoot(t *testing.T) {
	if _, err := New().Deserialize([]byte("- a\n- b\n")); err == nil {
		t.Fatalf("expected error for non-mapping document root")
	}
}
