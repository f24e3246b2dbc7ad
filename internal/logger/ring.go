package logger

import (
	"bytes"
	"sync"
)

// DefaultRingSize is the number of lines a Ring keeps when no size is given.
const DefaultRingSize = 1000

// Ring is a bounded io.Writer that keeps the most recent log lines. When
// full, the oldest line is dropped.
type Ring struct {
	mu      sync.Mutex
	limit   int
	lines   []string
	partial []byte
}

// NewRing creates a ring holding up to limit lines (DefaultRingSize when
// limit is not positive).
func NewRing(limit int) *Ring {
	if limit <= 0 {
		limit = DefaultRingSize
	}
	return &Ring{limit: limit, lines: make([]string, 0, min(limit, 64))}
}

// Write splits p into lines. A trailing fragment without newline is held
// until the rest of the line arrives.
func (r *Ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := append(r.partial, p...)
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		r.add(string(bytes.TrimRight(data[:i], "\r")))
		data = data[i+1:]
	}
	r.partial = append([]byte(nil), data...)
	return len(p), nil
}

func (r *Ring) add(line string) {
	if len(r.lines) == r.limit {
		copy(r.lines, r.lines[1:])
		r.lines[len(r.lines)-1] = line
		return
	}
	r.lines = append(r.lines, line)
}

// Tail returns up to n of the most recent lines, oldest first.
func (r *Ring) Tail(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 0 {
		return nil
	}
	start := max(0, len(r.lines)-n)
	out := make([]string, len(r.lines)-start)
	copy(out, r.lines[start:])
	return out
}

// Len returns the number of complete lines held.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lines)
}
