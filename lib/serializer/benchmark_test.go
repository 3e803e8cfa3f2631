package serializer

import (
	"testing"

	"github.com/avarner/serbench/lib/document"
)

// benchmarkDocuments returns the two size variants used for benchmarking
func benchmarkDocuments() map[string]document.Document {
	return map[string]document.Document{
		"Small": document.NewSample(document.SmallContentSize),
		"Large": document.NewSample(document.LargeContentSize),
	}
}

// BenchmarkSerialize benchmarks serialization for all implementations with both size variants
func BenchmarkSerialize(b *testing.B) {
	docs := benchmarkDocuments()

	for name, factory := range testSerializers {
		for docName, doc := range docs {
			b.Run(name+"_"+docName, func(b *testing.B) {
				s := factory()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_, err := s.Serialize(doc)
					if err != nil {
						b.Fatalf("Failed to serialize: %v", err)
					}
				}
			})
		}
	}
}

// BenchmarkDeserialize benchmarks deserialization for all implementations
// with both size variants. Input bytes are produced once per serializer
// outside the timed loop and shared across iterations.
func BenchmarkDeserialize(b *testing.B) {
	docs := benchmarkDocuments()
	serializedData := make(map[string]map[string][]byte)

	// Pre-serialize all documents with all serializers
	for name, factory := range testSerializers {
		s := factory()
		serializedData[name] = make(map[string][]byte)

		for docName, doc := range docs {
			data, err := s.Serialize(doc)
			if err != nil {
				b.Fatalf("Failed to serialize %s with %s: %v", docName, name, err)
			}
			serializedData[name][docName] = data
		}
	}

	// Benchmark deserialization
	for name, factory := range testSerializers {
		for docName := range docs {
			b.Run(name+"_"+docName, func(b *testing.B) {
				s := factory()
				data := serializedData[name][docName]
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					var doc document.Document
					err := s.Deserialize(data, &doc)
					if err != nil {
						b.Fatalf("Failed to deserialize: %v", err)
					}
				}
			})
		}
	}
}

// BenchmarkSize measures and reports the serialized size for both size variants
func BenchmarkSize(b *testing.B) {
	docs := benchmarkDocuments()

	for name, factory := range testSerializers {
		s := factory()

		for docName, doc := range docs {
			b.Run(name+"_"+docName, func(b *testing.B) {
				data, err := s.Serialize(doc)
				if err != nil {
					b.Fatalf("Failed to serialize: %v", err)
				}

				// Report the size as a custom metric
				b.ReportMetric(float64(len(data)), "bytes")

				// Minimal loop to satisfy benchmark requirements
				for i := 0; i < b.N; i++ {
					_ = data
				}
			})
		}
	}
}
