// Package serializer provides the document serialization pipelines this
// benchmark suite compares. It defines a common interface and multiple
// implementations for serializing and deserializing the shared Document
// type.
//
// The package focuses on:
//   - Providing a consistent interface for different serialization formats
//   - Pairing the same format with different codec engines so that both
//     format overhead and engine overhead become visible in measurements
//   - Keeping every implementation a thin adapter over its library
//
// Key Components:
//
//   - ISerializer: Core interface that all serializer implementations must
//     satisfy.
//
//   - codecSerializerImpl: CBOR and MessagePack serializers driven by the
//     go/codec reflection engine. The CBOR handle keeps the self-describing
//     map layout; the msgpack handle encodes structs as positional arrays.
//
//   - msgpackSerializerImpl: MessagePack implementation using the
//     vmihailenco msgpack framework, encoding structs as positional arrays
//     so its wire layout matches the go/codec msgpack serializer.
//
//   - cborSerializerImpl: CBOR implementation using fxamacker/cbor, as an
//     independent second CBOR pipeline.
//
//   - gobSerializerImpl: Implementation using Go's built-in gob encoding,
//     kept as a stdlib baseline.
//
//   - jsonSerializerImpl: Implementation using JSON encoding, kept as a
//     human-readable baseline.
//
// Round-trip compatibility holds only within one serializer: bytes
// produced by one format must not be fed to another format's Deserialize.
// The two msgpack serializers intentionally share a wire layout; all
// other pairings are incompatible.
//
// Thread Safety:
//
//	All serializer implementations are stateless and safe for concurrent
//	use across multiple goroutines without additional synchronization.
//
// Usage:
//
//	Serializers are typically created once and reused:
//
//	  s, err := serializer.Get("msgpack")
//	  data, err := s.Serialize(doc)
//	  var decoded document.Document
//	  err = s.Deserialize(data, &decoded)
package serializer
