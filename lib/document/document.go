package document

// --------------------------------------------------------------------------
// Data Types
// --------------------------------------------------------------------------

// Person represents one author entry of a Document.
// Instances are value objects and are never mutated after construction.
type Person struct {
	_msgpack struct{} `msgpack:",as_array"`

	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Document is the fixed data shape all serializers are measured against.
// It combines a few small text fields with a raw byte payload so that both
// field-overhead and bulk-throughput characteristics show up in results.
// Instances are value objects and are never mutated after construction.
type Document struct {
	// _msgpack switches the msgpack framework to positional (array)
	// struct encoding, matching the compact binary layout produced by
	// the go/codec msgpack serializer.
	_msgpack struct{} `msgpack:",as_array"`

	ID      uint64   `json:"id"`
	Name    string   `json:"name"`
	Authors []Person `json:"authors"`
	Content []byte   `json:"content"`
}
