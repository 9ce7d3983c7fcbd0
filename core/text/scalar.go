// File: scalar.go
// Title: Integer Parsing
// Description: Implements radix-aware integer parsing over String values
//              with overflow rejection and structured failure reporting.
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial implementation

package text

import (
	"errors"
	"strconv"

	perror "github.com/plinth-go/plinth/core/error"
)

func checkRadix(radix int, op string) error {
	if radix < 2 || radix > 36 {
		return perror.Newf("radix %d is outside the supported range [2, 36]", radix).
			WithCode(perror.CodeValueOutOfRange).
			WithOperation(op)
	}
	return nil
}

func numErr(s String, radix int, err error, op string) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
		return perror.Newf("value '%s' overflows the target type in radix %d", s.String(), radix).
			WithCode(perror.CodeValueOutOfRange).
			WithOperation(op)
	}
	return perror.Newf("value '%s' is not a valid integer in radix %d", s.String(), radix).
		WithCode(perror.CodeInvalidFormat).
		WithOperation(op)
}

// ParseInt64 parses the string as a signed 64-bit integer in the given
// radix (2 to 36). A leading '+' or '-' is accepted; overflow and
// malformed input fail with a structured error, never a panic.
func (s String) ParseInt64(radix int) (int64, error) {
	if err := checkRadix(radix, "text.ParseInt64"); err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s.String(), radix, 64)
	if err != nil {
		return 0, numErr(s, radix, err, "text.ParseInt64")
	}
	return v, nil
}

// ParseInt32 parses the string as a signed 32-bit integer in the given radix
func (s String) ParseInt32(radix int) (int32, error) {
	if err := checkRadix(radix, "text.ParseInt32"); err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s.String(), radix, 32)
	if err != nil {
		return 0, numErr(s, radix, err, "text.ParseInt32")
	}
	return int32(v), nil
}

// ParseUint64 parses the string as an unsigned 64-bit integer in the
// given radix. Sign characters are rejected for unsigned targets.
func (s String) ParseUint64(radix int) (uint64, error) {
	if err := checkRadix(radix, "text.ParseUint64"); err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s.String(), radix, 64)
	if err != nil {
		return 0, numErr(s, radix, err, "text.ParseUint64")
	}
	return v, nil
}

// ParseUint32 parses the string as an unsigned 32-bit integer in the given radix
func (s String) ParseUint32(radix int) (uint32, error) {
	if err := checkRadix(radix, "text.ParseUint32"); err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s.String(), radix, 32)
	if err != nil {
		return 0, numErr(s, radix, err, "text.ParseUint32")
	}
	return uint32(v), nil
}
