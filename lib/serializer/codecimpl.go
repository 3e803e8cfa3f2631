package serializer

import (
	"github.com/avarner/serbench/lib/document"
	"github.com/ugorji/go/codec"
)

// The two serializers in this file share the go/codec reflection engine
// and differ only in the format handle they hand it: CBOR keeps the
// self-describing map layout while the msgpack handle is switched to
// positional struct arrays, the same layout the msgpack framework
// serializer produces.

// NewCodecCBORSerializer creates a new serializer using CBOR encoding
// driven by the go/codec engine
func NewCodecCBORSerializer() ISerializer {
	return &codecSerializerImpl{handle: &codec.CborHandle{}}
}

// NewCodecMsgpackSerializer creates a new serializer using MessagePack
// encoding driven by the go/codec engine
func NewCodecMsgpackSerializer() ISerializer {
	h := &codec.MsgpackHandle{}
	h.StructToArray = true
	return &codecSerializerImpl{handle: h}
}

// codecSerializerImpl implements the ISerializer interface using the
// go/codec engine with a configurable format handle
type codecSerializerImpl struct {
	handle codec.Handle
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (c codecSerializerImpl) Serialize(doc document.Document) ([]byte, error) {
	var b []byte
	enc := codec.NewEncoderBytes(&b, c.handle)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return b, nil
}

func (c codecSerializerImpl) Deserialize(b []byte, doc *document.Document) error {
	dec := codec.NewDecoderBytes(b, c.handle)
	return dec.Decode(doc)
}
