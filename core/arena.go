package core

import "fmt"

// Arena is a growable, contiguous buffer of fixed-layout records. Slots
// are addressed by index, and indices stay valid across growth, so the
// generation pipeline can hand them out freely while it is still
// appending. Clear keeps the backing storage so the next generation
// cycle reuses the same memory instead of reallocating.
type Arena[T any] struct {
	slots     []T
	count     int
	increment int
}

// NewArena creates an arena with the given initial capacity. The arena
// grows in multiples of growthIncrement once the initial capacity is
// exhausted. Non-positive sizes are a programmer error.
func NewArena[T any](initialCapacity, growthIncrement int) *Arena[T] {
	if initialCapacity <= 0 {
		panic(fmt.Sprintf("core: arena initial capacity must be positive, got %d", initialCapacity))
	}
	if growthIncrement <= 0 {
		panic(fmt.Sprintf("core: arena growth increment must be positive, got %d", growthIncrement))
	}
	return &Arena[T]{
		slots:     make([]T, initialCapacity),
		increment: growthIncrement,
	}
}

// Allocate reserves the next slot and returns its index. The slot is
// zero-valued. Allocate never fails; it grows the buffer when full.
//
// The returned index is stable, but pointers obtained through At are
// only valid until the next growth. Callers that interleave Allocate
// and At should Reserve the full count up front.
func (a *Arena[T]) Allocate() int {
	if a.count == len(a.slots) {
		a.grow(0)
	}
	i := a.count
	a.count++
	return i
}

// At returns a pointer to the slot at index i, which must have been
// returned by a previous Allocate since the last Clear.
func (a *Arena[T]) At(i int) *T {
	if i < 0 || i >= a.count {
		panic(fmt.Sprintf("core: arena index %d out of range [0,%d)", i, a.count))
	}
	return &a.slots[i]
}

// Set copies v into the slot at index i.
func (a *Arena[T]) Set(i int, v T) {
	*a.At(i) = v
}

// Clear resets the occupied count to zero. Storage is retained on
// purpose: regeneration happens every time a parameter changes, and
// keeping the peak allocation avoids churn on the next pass.
func (a *Arena[T]) Clear() {
	a.count = 0
}

// Span returns a read-only view over the occupied slots [0,count).
// The view is invalidated by the next Allocate or Clear.
func (a *Arena[T]) Span() []T {
	return a.slots[:a.count:a.count]
}

// Len returns the number of occupied slots.
func (a *Arena[T]) Len() int { return a.count }

// Cap returns the current slot capacity.
func (a *Arena[T]) Cap() int { return len(a.slots) }

// Reserve grows the arena so at least n slots are available without
// further reallocation. Occupied slots are preserved. Reserving before
// a generation pass makes the whole pass grow-free, which keeps
// pointers from At valid throughout.
func (a *Arena[T]) Reserve(n int) {
	if n <= len(a.slots) {
		return
	}
	a.grow(n)
}

// grow resizes the backing buffer. The new capacity is the larger of
// half-again growth and one increment, rounded up to a multiple of the
// increment, and never below want.
func (a *Arena[T]) grow(want int) {
	target := len(a.slots) + len(a.slots)/2
	if m := len(a.slots) + a.increment; m > target {
		target = m
	}
	if want > target {
		target = want
	}
	if rem := target % a.increment; rem != 0 {
		target += a.increment - rem
	}
	grown := make([]T, target)
	copy(grown, a.slots[:a.count])
	a.slots = grown
}
