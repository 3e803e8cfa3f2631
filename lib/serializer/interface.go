package serializer

import "github.com/avarner/serbench/lib/document"

// ISerializer is the interface for all document serializers
type ISerializer interface {
	// Serialize serializes a Document into a byte array
	// It returns the serialized byte array and an error if any
	Serialize(doc document.Document) ([]byte, error)
	// Deserialize deserializes a byte array into a Document
	// It takes a byte array and a pointer to a Document as parameters
	// It returns an error if any
	Deserialize(b []byte, doc *document.Document) error
}
