// File: wide_windows.go
// Title: Wide Character Definition (Windows)
// Description: On Windows a wide character is a UTF-16 code unit.
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

//go:build windows

package utf

// Wide is the platform wide character type: UTF-16 on Windows.
type Wide = uint16

// CountWide validates a wide character slice and returns its size in all
// three encodings.
func CountWide(units []Wide) (Counts, error) {
	return CountUTF16(units)
}

// DecodeWide converts a wide character slice to code points, combining
// surrogate pairs and validating as it goes.
func DecodeWide(units []Wide) ([]rune, error) {
	c, err := CountUTF16(units)
	if err != nil {
		return nil, err
	}
	out := make([]rune, 0, c.UTF32)
	var d UTF16Decoder
	for _, u := range units {
		cp, status := d.TryConvert(u)
		if status == StatusProduced {
			out = append(out, cp)
		}
	}
	return out, nil
}

// AppendWide appends the wide encoding of cp to dst. The caller must
// pass a valid code point.
func AppendWide(dst []Wide, cp rune) []Wide {
	return AppendUTF16(dst, cp)
}
