package sink

import (
	"strings"
	"sync"
)

// LogBuffer is the unbounded, append-only live log.
type LogBuffer struct {
	mu  sync.Mutex
	buf strings.Builder
}

// Append adds text to the end of the log.
func (b *LogBuffer) Append(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.WriteString(text)
}

// String returns the whole log.
func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Len returns the log size in bytes.
func (b *LogBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}
