// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Fixed is the set of fixed-width integers Read can extract.
type Fixed interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~uint64 | ~int64
}

// Reader extracts fixed-width fields from a byte stream in file order and
// keeps track of how many bytes were consumed.
type Reader struct {
	r     io.Reader
	order binary.ByteOrder
	off   int64
	tmp   [8]byte
}

// NewReader returns a little-endian Reader, the byte order of RIFF files.
func NewReader(r io.Reader) *Reader {
	return NewReaderOrder(r, binary.LittleEndian)
}

func NewReaderOrder(r io.Reader, order binary.ByteOrder) *Reader {
	return &Reader{r: r, order: order}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 { return r.off }

// bytesChunk bounds the up-front allocation of Bytes; the buffer grows
// only as data actually arrives.
const bytesChunk = 64 << 10

// Bytes reads exactly n bytes. A declared length larger than the stream
// costs no more memory than the bytes that are really there.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d at offset %d", ErrTruncatedData, n, r.off)
	}

	var buf bytes.Buffer
	buf.Grow(min(n, bytesChunk))
	got, err := buf.ReadFrom(io.LimitReader(r.r, int64(n)))
	r.off += got
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if got < int64(n) {
		return nil, fmt.Errorf("%w: want %d bytes at offset %d, got %d",
			ErrTruncatedData, n, r.off-got, got)
	}
	return buf.Bytes(), nil
}

func (r *Reader) fill(buf []byte) error {
	n, err := io.ReadFull(r.r, buf)
	r.off += int64(n)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: want %d bytes at offset %d, got %d",
			ErrTruncatedData, len(buf), r.off-int64(n), n)
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Read reads exactly sizeof(T) bytes and decodes them as T. It fails with
// ErrTruncatedData when the stream ends early.
func Read[T Fixed](r *Reader) (T, error) {
	var v T
	size := binary.Size(v)
	buf := r.tmp[:size]
	if err := r.fill(buf); err != nil {
		return v, err
	}
	if _, err := binary.Decode(buf, r.order, &v); err != nil {
		return v, fmt.Errorf("%w", err)
	}
	return v, nil
}
