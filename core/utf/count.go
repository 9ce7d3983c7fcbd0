// File: count.go
// Title: Encoding Pre-Count Helpers
// Description: Implements validating length pre-computation between the
//              UTF encodings. The text layer uses these to size payload
//              allocations exactly before any output is produced.
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

package utf

import (
	perror "github.com/plinth-go/plinth/core/error"
)

func invalidAt(encoding string, pos int) *perror.Error {
	return perror.Newf("input is not valid %s at offset %d", encoding, pos).
		WithCode(perror.CodeInvalidEncoding).
		WithPosition(pos)
}

// Counts holds the size of one string in every encoding the library
// measures: UTF-8 bytes, UTF-16 units, and UTF-32 code points.
type Counts struct {
	UTF8  int
	UTF16 int
	UTF32 int
}

// CountUTF8 validates a UTF-8 byte slice and returns its size in all
// three encodings. Malformed sequences fail with INVALID_ENCODING and
// the byte offset of the offending lead byte.
func CountUTF8(b []byte) (Counts, error) {
	var c Counts
	var d Decoder
	start := 0
	for i := 0; i < len(b); i++ {
		if !d.Pending() {
			start = i
		}
		cp, status := d.TryConvert(b[i])
		switch status {
		case StatusError:
			d.Reset()
			return Counts{}, invalidAt("UTF-8", start)
		case StatusProduced:
			c.UTF8 += RuneLenUTF8(cp)
			c.UTF16 += RuneLenUTF16(cp)
			c.UTF32++
		}
	}
	if d.Pending() {
		d.Reset()
		return Counts{}, invalidAt("UTF-8", start)
	}
	return c, nil
}

// CountUTF16 validates a UTF-16 unit slice and returns its size in all
// three encodings. Lone surrogates fail with INVALID_ENCODING and the
// unit offset of the offending unit.
func CountUTF16(units []uint16) (Counts, error) {
	var c Counts
	var d UTF16Decoder
	start := 0
	for i, u := range units {
		if !d.Pending() {
			start = i
		}
		cp, status := d.TryConvert(u)
		switch status {
		case StatusError:
			d.Reset()
			return Counts{}, invalidAt("UTF-16", start)
		case StatusProduced:
			c.UTF8 += RuneLenUTF8(cp)
			c.UTF16 += RuneLenUTF16(cp)
			c.UTF32++
		}
	}
	if d.Pending() {
		d.Reset()
		return Counts{}, invalidAt("UTF-16", start)
	}
	return c, nil
}

// CountUTF32 validates a UTF-32 unit slice and returns its size in all
// three encodings. Surrogate and out-of-range values fail with
// INVALID_ENCODING and the unit offset of the offending unit.
func CountUTF32(cps []rune) (Counts, error) {
	var c Counts
	var d UTF32Decoder
	for i, u := range cps {
		cp, status := d.TryConvert(u)
		if status == StatusError {
			return Counts{}, invalidAt("UTF-32", i)
		}
		c.UTF8 += RuneLenUTF8(cp)
		c.UTF16 += RuneLenUTF16(cp)
		c.UTF32++
	}
	return c, nil
}

// Valid reports whether b is entirely well-formed UTF-8
func Valid(b []byte) bool {
	_, err := CountUTF8(b)
	return err == nil
}
