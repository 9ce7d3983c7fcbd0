// File: iterator.go
// Title: Bidirectional Code Point Iterator
// Description: Implements the bidirectional iterator over the code points
//              of a String. The iterator holds the shared payload, caches
//              the last decoded code point, and never underflows or
//              overruns the byte block.
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial implementation

package text

// Iterator walks the code points of a String in either direction.
// An iterator at offset Len() is the end iterator; dereferencing it
// yields 0. Two iterators are equal when they refer to the same shared
// payload at the same byte offset.
type Iterator struct {
	p      *payload
	offset int

	// Cache of the code point at offset; width 0 means not decoded yet.
	cp    rune
	width int
}

// Begin returns an iterator at the first code point
func (s String) Begin() Iterator {
	return Iterator{p: s.pl()}
}

// End returns the past-the-end iterator
func (s String) End() Iterator {
	p := s.pl()
	return Iterator{p: p, offset: len(p.bytes)}
}

// Offset returns the current byte offset into the UTF-8 storage
func (it Iterator) Offset() int {
	return it.offset
}

// AtBegin reports whether the iterator is at the first code point
func (it Iterator) AtBegin() bool {
	return it.offset == 0
}

// AtEnd reports whether the iterator is past the last code point
func (it Iterator) AtEnd() bool {
	return it.p == nil || it.offset >= len(it.p.bytes)
}

// Equal reports whether two iterators refer to the same payload and offset
func (it Iterator) Equal(other Iterator) bool {
	return it.p == other.p && it.offset == other.offset
}

func (it *Iterator) decode() {
	if it.width != 0 {
		return
	}
	if it.AtEnd() {
		it.cp = 0
		return
	}
	it.cp, it.width = decodeAt(it.p.bytes, it.offset)
}

// Rune returns the code point at the current position, or 0 at the end.
// The value is cached, so repeated dereference after an advance is O(1).
func (it *Iterator) Rune() rune {
	it.decode()
	return it.cp
}

// Next advances to the following code point. It reports false, without
// moving, when the iterator is already at the end.
func (it *Iterator) Next() bool {
	if it.AtEnd() {
		return false
	}
	it.decode()
	it.offset += it.width
	it.cp = 0
	it.width = 0
	return true
}

// Prev retreats to the preceding code point, scanning backwards over
// continuation bytes to find its lead byte. It reports false, without
// moving, when the iterator is already at the beginning.
func (it *Iterator) Prev() bool {
	if it.offset == 0 || it.p == nil {
		return false
	}
	it.offset = leadOffset(it.p.bytes, it.offset)
	it.cp = 0
	it.width = 0
	return true
}

// Advance moves the iterator forward n code points, stopping at the end.
// It returns the number of positions actually moved.
func (it *Iterator) Advance(n int) int {
	moved := 0
	for moved < n && it.Next() {
		moved++
	}
	return moved
}

// Retreat moves the iterator backward n code points, stopping at the
// beginning. It returns the number of positions actually moved.
func (it *Iterator) Retreat(n int) int {
	moved := 0
	for moved < n && it.Prev() {
		moved++
	}
	return moved
}
