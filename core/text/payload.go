// File: payload.go
// Title: Shared String Payload
// Description: Implements the shared immutable payload behind text.String:
//              one validated UTF-8 byte block plus lazily computed, atomically
//              cached measurements (UTF-16 length, UTF-32 length, printable
//              length, content hash).
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial implementation

package text

import (
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"github.com/plinth-go/plinth/core/codepoint"
	"github.com/plinth-go/plinth/core/utf"
)

// payload is the shared storage behind one or more String handles.
// The byte block is written once at construction and never mutated.
// Handles share payloads freely across goroutines; the lazy caches are
// written through atomics so readers never observe a torn value.
type payload struct {
	bytes []byte // validated UTF-8, never mutated after construction

	// Lazy caches. Each slot stores value+1 so that zero means
	// "not yet computed"; writes are idempotent because every writer
	// derives the same value from the same immutable bytes.
	utf16Len atomic.Uint64
	utf32Len atomic.Uint64
	printLen atomic.Uint64
	hash     atomic.Uint64
}

// emptyPayload is the process-wide unique payload for the empty string.
var emptyPayload = &payload{}

// cached reads a lazy slot, computing and publishing it on first use.
func cached(slot *atomic.Uint64, compute func() uint64) uint64 {
	if v := slot.Load(); v != 0 {
		return v - 1
	}
	v := compute()
	slot.Store(v + 1)
	return v
}

func (p *payload) utf8Len() int {
	return len(p.bytes)
}

func (p *payload) lenUTF16() int {
	return int(cached(&p.utf16Len, func() uint64 {
		var n uint64
		for i := 0; i < len(p.bytes); {
			cp, width := decodeAt(p.bytes, i)
			n += uint64(utf.RuneLenUTF16(cp))
			i += width
		}
		return n
	}))
}

func (p *payload) lenUTF32() int {
	return int(cached(&p.utf32Len, func() uint64 {
		var n uint64
		for i := 0; i < len(p.bytes); {
			_, width := decodeAt(p.bytes, i)
			n++
			i += width
		}
		return n
	}))
}

func (p *payload) lenPrint() int {
	return int(cached(&p.printLen, func() uint64 {
		var n uint64
		for i := 0; i < len(p.bytes); {
			cp, width := decodeAt(p.bytes, i)
			if codepoint.IsPrintable(cp) {
				n++
			}
			i += width
		}
		return n
	}))
}

func (p *payload) contentHash() uint64 {
	return cached(&p.hash, func() uint64 {
		return xxhash.Sum64(p.bytes)
	})
}

// decodeAt decodes the code point whose lead byte is at offset i.
// The payload bytes are validated at construction, so decoding cannot
// fail here; the function trusts the encoding.
func decodeAt(b []byte, i int) (cp rune, width int) {
	b0 := b[i]
	switch {
	case b0 < 0x80:
		return rune(b0), 1
	case b0&0xE0 == 0xC0:
		return rune(b0&0x1F)<<6 | rune(b[i+1]&0x3F), 2
	case b0&0xF0 == 0xE0:
		return rune(b0&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F), 3
	default:
		return rune(b0&0x07)<<18 | rune(b[i+1]&0x3F)<<12 |
			rune(b[i+2]&0x3F)<<6 | rune(b[i+3]&0x3F), 4
	}
}

// leadOffset returns the offset of the lead byte of the code point that
// ends just before offset i, scanning backwards over continuation bytes.
func leadOffset(b []byte, i int) int {
	j := i - 1
	for j > 0 && b[j]&0xC0 == 0x80 {
		j--
	}
	return j
}
