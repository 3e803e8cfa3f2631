package serializer

import (
	"encoding/json"

	"github.com/avarner/serbench/lib/document"
)

// NewJSONSerializer creates a new serializer using json encoding
func NewJSONSerializer() ISerializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements the ISerializer interface using json encoding
type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) Serialize(doc document.Document) ([]byte, error) {
	return json.Marshal(doc)
}

func (j jsonSerializerImpl) Deserialize(b []byte, doc *document.Document) error {
	return json.Unmarshal(b, doc)
}
