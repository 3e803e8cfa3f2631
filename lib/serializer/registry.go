package serializer

import (
	"fmt"
	"sort"

	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Serializer Registry
// --------------------------------------------------------------------------

// registry maps serializer names to factory functions. All built-in
// serializers are registered at package init; the map stays safe for
// concurrent lookups from tests and CLI commands.
var registry = xsync.NewMapOf[string, func() ISerializer]()

func init() {
	registry.Store("cbor", NewCBORSerializer)
	registry.Store("cbor-codec", NewCodecCBORSerializer)
	registry.Store("msgpack", NewMsgpackSerializer)
	registry.Store("msgpack-codec", NewCodecMsgpackSerializer)
	registry.Store("gob", NewGOBSerializer)
	registry.Store("json", NewJSONSerializer)
}

// Get returns a new serializer instance for the given name,
// or an error if no serializer is registered under that name
func Get(name string) (ISerializer, error) {
	factory, ok := registry.Load(name)
	if !ok {
		return nil, fmt.Errorf("invalid serializer %s (available: %v)", name, Names())
	}
	return factory(), nil
}

// Names returns the names of all registered serializers in sorted order
func Names() []string {
	names := make([]string, 0, registry.Size())
	registry.Range(func(name string, _ func() ISerializer) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}
