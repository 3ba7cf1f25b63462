package keyframe

import (
	"fmt"
	"sort"
)

// Keyframe is a single (time, value) pair. Times are in the timeline's time
// unit (milliseconds when driven by an Animation).
type Keyframe[V any] struct {
	Time  uint32
	Value V
}

// Table is an immutable sequence of keyframes sorted ascending by time.
// Keyframes with equal times keep their input order.
type Table[V any] struct {
	keys []Keyframe[V]
}

// NewTable pairs times and values element-wise and stable-sorts the result by
// time. Both slices must be non-empty and of equal length. Values are copied,
// so later changes to the caller's slices do not affect the table.
func NewTable[V any](times []uint32, values []V) (*Table[V], error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("times: %w", ErrInvalidArgument)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("values: %w", ErrInvalidArgument)
	}
	if len(times) != len(values) {
		return nil, fmt.Errorf("%d times, %d values: %w", len(times), len(values), ErrLengthMismatch)
	}

	keys := make([]Keyframe[V], len(times))
	for i := range times {
		keys[i] = Keyframe[V]{Time: times[i], Value: values[i]}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].Time < keys[j].Time
	})
	return &Table[V]{keys: keys}, nil
}

// Len returns the number of keyframes.
func (t *Table[V]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// At returns the i-th keyframe in time order.
func (t *Table[V]) At(i int) Keyframe[V] {
	return t.keys[i]
}

// Front returns the earliest keyframe.
func (t *Table[V]) Front() Keyframe[V] {
	return t.keys[0]
}

// Back returns the latest keyframe.
func (t *Table[V]) Back() Keyframe[V] {
	return t.keys[len(t.keys)-1]
}

// Times returns a copy of the sorted keyframe times.
func (t *Table[V]) Times() []uint32 {
	times := make([]uint32, len(t.keys))
	for i, k := range t.keys {
		times[i] = k.Time
	}
	return times
}

// Locate returns the index of the keyframe active at time tm: the highest
// index whose time is <= tm. Times before the first keyframe clamp to 0 and
// times at or past the last keyframe clamp to Len()-1.
func (t *Table[V]) Locate(tm uint32) int {
	i := sort.Search(len(t.keys), func(i int) bool {
		return t.keys[i].Time > tm
	})
	if i == 0 {
		return 0
	}
	return i - 1
}
