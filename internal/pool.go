package internal

import (
	"sync"

	"github.com/zeebo/xxh3"
)

// HasherPool holds reusable xxh3 hashers. Hashers taken from the pool must be Reset before use.
var HasherPool = sync.Pool{
	New: func() interface{} {
		return xxh3.New()
	},
}
