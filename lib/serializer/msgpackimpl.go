package serializer

import (
	"github.com/avarner/serbench/lib/document"
	"github.com/vmihailenco/msgpack/v5"
)

// NewMsgpackSerializer creates a new serializer using the msgpack
// framework. Documents are encoded as positional arrays (see the
// as_array tag on the document types), so the wire layout matches the
// go/codec msgpack serializer.
func NewMsgpackSerializer() ISerializer {
	return &msgpackSerializerImpl{}
}

// msgpackSerializerImpl implements the ISerializer interface using msgpack encoding
type msgpackSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (m msgpackSerializerImpl) Serialize(doc document.Document) ([]byte, error) {
	return msgpack.Marshal(doc)
}

func (m msgpackSerializerImpl) Deserialize(b []byte, doc *document.Document) error {
	return msgpack.Unmarshal(b, doc)
}
