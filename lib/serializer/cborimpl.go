package serializer

import (
	"github.com/avarner/serbench/lib/document"
	"github.com/fxamacker/cbor/v2"
)

// NewCBORSerializer creates a new serializer using CBOR encoding.
// Field names are taken from the json struct tags, so the output stays
// self-describing and comparable with the go/codec CBOR serializer.
func NewCBORSerializer() ISerializer {
	return &cborSerializerImpl{}
}

// cborSerializerImpl implements the ISerializer interface using cbor encoding
type cborSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (c cborSerializerImpl) Serialize(doc document.Document) ([]byte, error) {
	return cbor.Marshal(doc)
}

func (c cborSerializerImpl) Deserialize(b []byte, doc *document.Document) error {
	return cbor.Unmarshal(b, doc)
}
