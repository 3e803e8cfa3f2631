package document

import (
	"math/rand"
	"sync"
	"time"
)

// --------------------------------------------------------------------------
// Sample Data Generation
// --------------------------------------------------------------------------

const (
	// SmallContentSize is the content length of the small sample variant.
	SmallContentSize = 0
	// LargeContentSize is the content length of the large sample variant (1 MiB).
	LargeContentSize = 1 << 20
)

var (
	// process-wide random source for sample content; *rand.Rand is not
	// safe for concurrent use, so access is serialized
	sampleMu  sync.Mutex
	sampleRng = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// NewSample returns a Document with two fixed authors and contentSize
// random content bytes drawn from the process-wide random source.
func NewSample(contentSize int) Document {
	sampleMu.Lock()
	defer sampleMu.Unlock()
	return NewSampleFrom(sampleRng, contentSize)
}

// NewSampleFrom is like NewSample but draws the content bytes from the
// given source, so callers can seed it for reproducible documents.
func NewSampleFrom(rng *rand.Rand, contentSize int) Document {
	content := make([]byte, contentSize)
	rng.Read(content)

	return Document{
		ID:   829472904,
		Name: "stuff.txt",
		Authors: []Person{
			{ID: 1, Name: "Alice", Email: "alice@example.com"},
			{ID: 2, Name: "Bob", Email: "bob@example.com"},
		},
		Content: content,
	}
}
