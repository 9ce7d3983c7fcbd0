// File: stream_test.go
// Title: Byte-Stream Tests
// Description: Tests for the exact-count adapters and the size-prefix
//              codec round-trips and boundaries.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package stream

import (
	"bytes"
	"testing"

	perror "github.com/plinth-go/plinth/core/error"
)

func TestTryReadExactCount(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2, 3}))

	buf := make([]byte, 3)
	if err := r.TryRead(buf); err != nil {
		t.Fatalf("TryRead failed: %v", err)
	}
	if !bytes.Equal(buf, []byte{1, 2, 3}) {
		t.Errorf("buf = %v", buf)
	}

	// the stream is drained: any further read must fail, not shorten
	if err := r.TryRead(buf[:1]); err == nil {
		t.Error("TryRead on a drained stream succeeded")
	}
}

func TestTryReadShortInput(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2}))
	if err := r.TryRead(make([]byte, 3)); err == nil {
		t.Error("TryRead beyond the input succeeded")
	}
}

func TestSizeRoundTrip(t *testing.T) {
	sizes := []uint64{
		0, 1, 0xF9, // one-byte self-encoding boundary
		0xFA, 0xFF, 0x100, 0xFFFF, // two-byte field
		0x10000, 0xFFFFFF, // three-byte field
		0x1000000, // four
		1 << 40, 1 << 55, // six- and eight-byte fields
		^uint64(0),
	}

	for _, size := range sizes {
		var buf bytes.Buffer
		if err := WriteSize(NewWriter(&buf), size); err != nil {
			t.Fatalf("WriteSize(%#x) failed: %v", size, err)
		}
		got, err := ReadSize(NewReader(&buf))
		if err != nil {
			t.Fatalf("ReadSize after WriteSize(%#x) failed: %v", size, err)
		}
		if got != size {
			t.Errorf("round-trip of %#x yielded %#x", size, got)
		}
	}
}

func TestSizeEncodingWidth(t *testing.T) {
	tests := []struct {
		size uint64
		want int // total encoded bytes
	}{
		{0x00, 1},
		{0xF9, 1},
		{0xFA, 3}, // marker + minimum two-byte field
		{0xFFFF, 3},
		{0x10000, 4},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		if err := WriteSize(NewWriter(&buf), tt.size); err != nil {
			t.Fatalf("WriteSize(%#x) failed: %v", tt.size, err)
		}
		if buf.Len() != tt.want {
			t.Errorf("WriteSize(%#x) emitted %d bytes, want %d", tt.size, buf.Len(), tt.want)
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	payloads := [][]byte{
		nil,
		[]byte("x"),
		bytes.Repeat([]byte("payload"), 100),
	}

	for _, payload := range payloads {
		var buf bytes.Buffer
		if err := WriteBytes(NewWriter(&buf), payload); err != nil {
			t.Fatalf("WriteBytes failed: %v", err)
		}
		got, err := ReadBytes(NewReader(&buf), 0)
		if err != nil {
			t.Fatalf("ReadBytes failed: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("round-trip of %d bytes yielded %d bytes", len(payload), len(got))
		}
	}
}

func TestReadBytesLimit(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBytes(NewWriter(&buf), bytes.Repeat([]byte("a"), 1000)); err != nil {
		t.Fatal(err)
	}
	_, err := ReadBytes(NewReader(&buf), 100)
	if !perror.HasCode(err, perror.CodeValueOutOfRange) {
		t.Errorf("code = %v, want %s", perror.GetCode(err), perror.CodeValueOutOfRange)
	}
}
