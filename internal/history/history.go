// Package history keeps a bounded, newest-first log of completed
// calculations. Records are immutable once created and live only as long
// as the owning UI session; nothing is persisted.
package history

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity is the number of records retained before the oldest is
// evicted.
const DefaultCapacity = 50

// Record is one completed calculation.
type Record struct {
	ID         string
	Expression string
	Result     string
	At         time.Time
}

// Log is a fixed-capacity ring buffer of Records. Adding past capacity
// evicts the oldest record in O(1); there is no re-slicing or copying per
// insertion. Log is not safe for concurrent use, matching the
// single-writer command stream that feeds it.
type Log struct {
	buf  []Record
	head int // index of the newest record, -1 when empty
	size int
	now  func() time.Time
}

// New creates an empty log. Capacities below 1 fall back to
// DefaultCapacity.
func New(capacity int) *Log {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Log{
		buf:  make([]Record, capacity),
		head: -1,
		now:  time.Now,
	}
}

// Add creates a record with a fresh ID and the current time, prepends it,
// and returns it. The oldest record is evicted once the log is full.
func (l *Log) Add(expression, result string) Record {
	rec := Record{
		ID:         uuid.NewString(),
		Expression: expression,
		Result:     result,
		At:         l.now(),
	}
	l.head = (l.head + 1) % len(l.buf)
	l.buf[l.head] = rec
	if l.size < len(l.buf) {
		l.size++
	}
	return rec
}

// Record implements engine.Recorder.
func (l *Log) Record(expression, result string) {
	l.Add(expression, result)
}

// Len returns the number of retained records.
func (l *Log) Len() int { return l.size }

// Cap returns the log's fixed capacity.
func (l *Log) Cap() int { return len(l.buf) }

// Clear empties the log.
func (l *Log) Clear() {
	clear(l.buf)
	l.head = -1
	l.size = 0
}

// All returns a newest-first snapshot. Mutating the returned slice does
// not affect the log.
func (l *Log) All() []Record {
	out := make([]Record, 0, l.size)
	for i := 0; i < l.size; i++ {
		out = append(out, l.buf[(l.head-i+len(l.buf))%len(l.buf)])
	}
	return out
}
