// File: stream.go
// Title: Byte-Stream Collaborator
// Description: Implements the exact-count read/write contract over any
//              io.Reader/io.Writer pair and the variable-length size
//              prefix codec built on it.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package stream

import (
	"io"

	perror "github.com/plinth-go/plinth/core/error"
)

// Reader is the consuming half of the byte-stream contract: TryRead
// fills buf completely or fails.
type Reader interface {
	TryRead(buf []byte) error
}

// Writer is the producing half: TryWrite emits all of buf or fails
type Writer interface {
	TryWrite(buf []byte) error
}

// ioReader adapts an io.Reader to the exact-count contract
type ioReader struct {
	r io.Reader
}

// NewReader wraps an io.Reader in the exact-count contract
func NewReader(r io.Reader) Reader {
	return &ioReader{r: r}
}

func (a *ioReader) TryRead(buf []byte) error {
	if _, err := io.ReadFull(a.r, buf); err != nil {
		return perror.Wrap(err, "reading from stream").
			WithCode(perror.CodeEnvironmentError).
			WithOperation("stream.TryRead")
	}
	return nil
}

// ioWriter adapts an io.Writer to the exact-count contract
type ioWriter struct {
	w io.Writer
}

// NewWriter wraps an io.Writer in the exact-count contract
func NewWriter(w io.Writer) Writer {
	return &ioWriter{w: w}
}

func (a *ioWriter) TryWrite(buf []byte) error {
	n, err := a.w.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return perror.Wrap(err, "writing to stream").
			WithCode(perror.CodeEnvironmentError).
			WithOperation("stream.TryWrite")
	}
	return nil
}

// Size-prefix encoding: one byte below lengthMarkerBase encodes itself;
// lengthMarkerBase+k introduces a big-endian length field of k+2 bytes.
// Markers 0xFA..0xFE cover 2..6 byte fields; 0xFF always introduces the
// full 8-byte field.
const (
	lengthMarkerBase = 0xFA
	maxLengthBytes   = 8
)

// WriteSize emits a size prefix in the variable-length encoding
func WriteSize(w Writer, size uint64) error {
	if size < lengthMarkerBase {
		return w.TryWrite([]byte{byte(size)})
	}

	// count the bytes the value needs, minimum 2
	n := 0
	for v := size; v != 0; v >>= 8 {
		n++
	}
	if n < 2 {
		n = 2
	}
	marker := lengthMarkerBase + n - 2
	if marker > 0xFF-1 { // 8-byte values share the top marker
		marker = 0xFF
		n = maxLengthBytes
	}

	buf := make([]byte, 1+n)
	buf[0] = byte(marker)
	for i := n; i >= 1; i-- {
		buf[i] = byte(size)
		size >>= 8
	}
	return w.TryWrite(buf)
}

// ReadSize decodes a size prefix written by WriteSize
func ReadSize(r Reader) (uint64, error) {
	var lead [1]byte
	if err := r.TryRead(lead[:]); err != nil {
		return 0, err
	}
	if lead[0] < lengthMarkerBase {
		return uint64(lead[0]), nil
	}

	n := int(lead[0]-lengthMarkerBase) + 2
	if lead[0] == 0xFF {
		n = maxLengthBytes
	}
	buf := make([]byte, n)
	if err := r.TryRead(buf); err != nil {
		return 0, err
	}
	var size uint64
	for _, b := range buf {
		size = size<<8 | uint64(b)
	}
	return size, nil
}

// WriteBytes emits a size prefix followed by the payload
func WriteBytes(w Writer, payload []byte) error {
	if err := WriteSize(w, uint64(len(payload))); err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	return w.TryWrite(payload)
}

// ReadBytes decodes a size prefix and reads that many payload bytes.
// maxSize guards against hostile prefixes; zero means no limit.
func ReadBytes(r Reader, maxSize uint64) ([]byte, error) {
	size, err := ReadSize(r)
	if err != nil {
		return nil, err
	}
	if maxSize > 0 && size > maxSize {
		return nil, perror.Newf("size prefix %d exceeds the limit of %d bytes", size, maxSize).
			WithCode(perror.CodeValueOutOfRange).
			WithOperation("stream.ReadBytes")
	}
	if size == 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	if err := r.TryRead(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
