// File: wide_unix.go
// Title: Wide Character Definition (non-Windows)
// Description: On POSIX platforms a wide character is a UTF-32 code point.
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

//go:build !windows

package utf

// Wide is the platform wide character type: UTF-32 on POSIX platforms.
type Wide = rune

// CountWide validates a wide character slice and returns its size in all
// three encodings.
func CountWide(units []Wide) (Counts, error) {
	return CountUTF32(units)
}

// DecodeWide converts a wide character slice to code points, validating
// as it goes.
func DecodeWide(units []Wide) ([]rune, error) {
	if _, err := CountUTF32(units); err != nil {
		return nil, err
	}
	out := make([]rune, len(units))
	copy(out, units)
	return out, nil
}

// AppendWide appends the wide encoding of cp to dst. The caller must
// pass a valid code point.
func AppendWide(dst []Wide, cp rune) []Wide {
	return append(dst, cp)
}
