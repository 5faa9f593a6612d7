// Package history keeps the time-decaying trail of a moving point (cursor or weapon tip)
package history

import (
	"iter"

	"github.com/lixenwraith/swordplay/vmath"
)

// State is the gesture state a sample was recorded under
type State uint8

const (
	StateIdle State = iota
	StateAttack
	StateDefend
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAttack:
		return "attack"
	case StateDefend:
		return "defend"
	default:
		return "unknown"
	}
}

// Sample is one recorded position; never mutated after Append
type Sample struct {
	Position vmath.Vec2 // Relative to the player
	World    vmath.Vec2 // Player position + Position at record time
	Time     float64    // Seconds since simulation start
	State    State
}

const minCapacity = 16

// Buffer is a growable ring deque ordered by time
// Appends go to the back, pruning removes from the front
type Buffer struct {
	buf  []Sample
	head int // Index of the oldest sample
	size int
}

// NewBuffer creates an empty buffer with room for capacity samples before growing
func NewBuffer(capacity int) *Buffer {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	return &Buffer{buf: make([]Sample, capacity)}
}

func (b *Buffer) Len() int {
	return b.size
}

// At returns the i-th sample counting from the oldest; panics when out of range
func (b *Buffer) At(i int) Sample {
	if i < 0 || i >= b.size {
		panic("history: index out of range")
	}
	return b.buf[(b.head+i)%len(b.buf)]
}

// First returns the oldest sample
func (b *Buffer) First() (Sample, bool) {
	if b.size == 0 {
		return Sample{}, false
	}
	return b.buf[b.head], true
}

// Last returns the newest sample
func (b *Buffer) Last() (Sample, bool) {
	if b.size == 0 {
		return Sample{}, false
	}
	return b.At(b.size - 1), true
}

// Append adds s at the back in amortized O(1)
// A timestamp earlier than the newest sample is raised to it, keeping time non-decreasing
func (b *Buffer) Append(s Sample) {
	if last, ok := b.Last(); ok && s.Time < last.Time {
		s.Time = last.Time
	}
	if b.size == len(b.buf) {
		b.grow()
	}
	b.buf[(b.head+b.size)%len(b.buf)] = s
	b.size++
}

// Prune drops leading samples with now - t >= horizon and returns how many were removed
func (b *Buffer) Prune(now, horizon float64) int {
	removed := 0
	for b.size > 0 && now-b.buf[b.head].Time >= horizon {
		b.buf[b.head] = Sample{}
		b.head = (b.head + 1) % len(b.buf)
		b.size--
		removed++
	}
	if b.size == 0 {
		b.head = 0
	}
	return removed
}

func (b *Buffer) Clear() {
	clear(b.buf)
	b.head = 0
	b.size = 0
}

// All iterates oldest to newest
func (b *Buffer) All() iter.Seq2[int, Sample] {
	return func(yield func(int, Sample) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(i, b.At(i)) {
				return
			}
		}
	}
}

// Backward iterates newest to oldest, indices still count from the oldest
func (b *Buffer) Backward() iter.Seq2[int, Sample] {
	return func(yield func(int, Sample) bool) {
		for i := b.size - 1; i >= 0; i-- {
			if !yield(i, b.At(i)) {
				return
			}
		}
	}
}

// Samples copies the contents oldest to newest
func (b *Buffer) Samples() []Sample {
	out := make([]Sample, 0, b.size)
	for _, s := range b.All() {
		out = append(out, s)
	}
	return out
}

// LastRun finds the most recent contiguous run of samples recorded under state
// Samples newer than the run (other states) are skipped
func (b *Buffer) LastRun(state State) (start, end int, ok bool) {
	end = -1
	for i, s := range b.Backward() {
		if end < 0 {
			if s.State == state {
				end = i
			}
			continue
		}
		if s.State != state {
			return i + 1, end, true
		}
	}
	if end < 0 {
		return 0, 0, false
	}
	return 0, end, true
}

// RunStart returns the index of the first sample of the trailing run of state
// ok is false when the newest sample was not recorded under state
func (b *Buffer) RunStart(state State) (int, bool) {
	start := b.size
	for i, s := range b.Backward() {
		if s.State != state {
			break
		}
		start = i
	}
	return start, start < b.size
}

func (b *Buffer) grow() {
	next := make([]Sample, max(len(b.buf)*2, minCapacity))
	for i := 0; i < b.size; i++ {
		next[i] = b.At(i)
	}
	b.buf = next
	b.head = 0
}
