// File: utf.go
// Title: Stateful UTF Codecs
// Description: Implements stateful unit-at-a-time converters between UTF-8,
//              UTF-16, and UTF-32, plus single code point encoders. The
//              converters are the validation authority for the text layer:
//              every string constructor routes its input through them.
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

package utf

import (
	"github.com/plinth-go/plinth/core/codepoint"
)

// Status reports the outcome of feeding one unit to a converter
type Status int

const (
	// StatusProduced means a complete code point is available
	StatusProduced Status = iota

	// StatusNeedMore means the converter consumed the unit and needs more input
	StatusNeedMore

	// StatusError means the unit is not valid in the current state
	StatusError
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusProduced:
		return "produced"
	case StatusNeedMore:
		return "need-more"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Decoder converts a UTF-8 byte stream into code points one byte at a time
type Decoder struct {
	cp   rune // Accumulated code point bits
	need int  // Continuation bytes still expected
	min  rune // Smallest code point the sequence may legally encode
}

// TryConvert feeds one byte to the decoder. When the byte completes a
// sequence the decoded code point is returned with StatusProduced.
// Overlong encodings, surrogates, and stray continuation bytes are errors;
// the decoder must be Reset after an error.
func (d *Decoder) TryConvert(b byte) (rune, Status) {
	if d.need == 0 {
		switch {
		case b < 0x80:
			return rune(b), StatusProduced
		case b&0xE0 == 0xC0:
			d.cp = rune(b & 0x1F)
			d.need = 1
			d.min = 0x80
			return 0, StatusNeedMore
		case b&0xF0 == 0xE0:
			d.cp = rune(b & 0x0F)
			d.need = 2
			d.min = 0x800
			return 0, StatusNeedMore
		case b&0xF8 == 0xF0:
			d.cp = rune(b & 0x07)
			d.need = 3
			d.min = 0x10000
			return 0, StatusNeedMore
		default:
			// Continuation byte or invalid lead byte (0xF8..0xFF)
			return 0, StatusError
		}
	}

	if b&0xC0 != 0x80 {
		return 0, StatusError
	}

	d.cp = d.cp<<6 | rune(b&0x3F)
	d.need--
	if d.need > 0 {
		return 0, StatusNeedMore
	}

	cp := d.cp
	if cp < d.min || !codepoint.IsValid(cp) {
		return 0, StatusError
	}
	return cp, StatusProduced
}

// Pending reports whether the decoder holds a partial sequence
func (d *Decoder) Pending() bool {
	return d.need > 0
}

// Reset discards any partial state, typically after an error
func (d *Decoder) Reset() {
	d.cp = 0
	d.need = 0
	d.min = 0
}

// UTF16Decoder converts a UTF-16 code unit stream into code points,
// combining surrogate pairs
type UTF16Decoder struct {
	high    rune
	pending bool
}

// TryConvert feeds one 16-bit unit to the decoder. Lone surrogates are
// errors; a high surrogate yields StatusNeedMore until its low partner
// arrives.
func (d *UTF16Decoder) TryConvert(u uint16) (rune, Status) {
	cp := rune(u)
	if d.pending {
		if !codepoint.IsLowSurrogate(cp) {
			return 0, StatusError
		}
		d.pending = false
		return 0x10000 + (d.high-0xD800)<<10 + (cp - 0xDC00), StatusProduced
	}

	switch {
	case codepoint.IsHighSurrogate(cp):
		d.high = cp
		d.pending = true
		return 0, StatusNeedMore
	case codepoint.IsLowSurrogate(cp):
		return 0, StatusError
	default:
		return cp, StatusProduced
	}
}

// Pending reports whether the decoder holds an unpaired high surrogate
func (d *UTF16Decoder) Pending() bool {
	return d.pending
}

// Reset discards any partial state, typically after an error
func (d *UTF16Decoder) Reset() {
	d.high = 0
	d.pending = false
}

// UTF32Decoder validates a UTF-32 unit stream. Each unit is a complete
// code point; the decoder only rejects surrogates and out-of-range values.
type UTF32Decoder struct{}

// TryConvert validates one 32-bit unit
func (d *UTF32Decoder) TryConvert(u rune) (rune, Status) {
	if !codepoint.IsValid(u) {
		return 0, StatusError
	}
	return u, StatusProduced
}

// Pending always reports false; UTF-32 has no multi-unit sequences
func (d *UTF32Decoder) Pending() bool {
	return false
}

// Reset is a no-op for the stateless UTF-32 decoder
func (d *UTF32Decoder) Reset() {}

// RuneLenUTF8 returns the number of bytes the UTF-8 encoding of cp
// occupies, or -1 for an invalid code point
func RuneLenUTF8(cp rune) int {
	switch {
	case !codepoint.IsValid(cp):
		return -1
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp < 0x10000:
		return 3
	default:
		return 4
	}
}

// RuneLenUTF16 returns the number of 16-bit units the UTF-16 encoding of
// cp occupies, or -1 for an invalid code point
func RuneLenUTF16(cp rune) int {
	switch {
	case !codepoint.IsValid(cp):
		return -1
	case cp < 0x10000:
		return 1
	default:
		return 2
	}
}

// AppendUTF8 appends the UTF-8 encoding of cp to dst. The caller must
// pass a valid code point.
func AppendUTF8(dst []byte, cp rune) []byte {
	switch {
	case cp < 0x80:
		return append(dst, byte(cp))
	case cp < 0x800:
		return append(dst, 0xC0|byte(cp>>6), 0x80|byte(cp&0x3F))
	case cp < 0x10000:
		return append(dst, 0xE0|byte(cp>>12), 0x80|byte(cp>>6&0x3F), 0x80|byte(cp&0x3F))
	default:
		return append(dst,
			0xF0|byte(cp>>18), 0x80|byte(cp>>12&0x3F),
			0x80|byte(cp>>6&0x3F), 0x80|byte(cp&0x3F))
	}
}

// AppendUTF16 appends the UTF-16 encoding of cp to dst, producing a
// surrogate pair for code points above the BMP. The caller must pass a
// valid code point.
func AppendUTF16(dst []uint16, cp rune) []uint16 {
	if cp < 0x10000 {
		return append(dst, uint16(cp))
	}
	cp -= 0x10000
	return append(dst, uint16(0xD800+cp>>10), uint16(0xDC00+cp&0x3FF))
}
