// Package document defines the fixed data shape shared by all serializer
// implementations and benchmarks: a Document with an ordered author list
// and a raw byte payload.
//
// The package focuses on:
//   - Providing immutable value types with stable field sets across codecs
//   - Generating deterministic sample documents for tests and benchmarks
//   - Isolating random content generation behind an injectable source
//
// Both sample variants share the same identity and author fields and
// differ only in content length: 0 bytes (small) and 1 MiB (large).
package document
