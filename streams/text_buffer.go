package streams

import (
	"sync"
	"unicode/utf8"
)

const (
	// initial capacity served from the inline array
	inlineCapacity = 128
	// buffers grown beyond this are not kept for reuse
	maxPooledCapacity = 64 * 1024
)

// A growable text accumulator used while formatting values. A buffer
// starts out writing into its inline array and moves to a heap backed
// slice only when the text outgrows it. Buffers are scoped to a single
// format call: acquire one, defer its Release and do not retain it.
type TextBuffer struct {
	inline [inlineCapacity]byte
	buf    []byte
}

var textBufferPool = sync.Pool{
	New: func() interface{} {
		b := &TextBuffer{}
		b.buf = b.inline[:0]
		return b
	},
}

func AcquireTextBuffer() *TextBuffer {
	return textBufferPool.Get().(*TextBuffer)
}

// Release returns the buffer to the pool. The buffer
// and any slice obtained from Bytes() must not be
// used after it has been released.
func (b *TextBuffer) Release() {
	if cap(b.buf) > maxPooledCapacity {
		b.buf = b.inline[:0]
	} else {
		b.buf = b.buf[:0]
	}
	textBufferPool.Put(b)
}

func (b *TextBuffer) Len() int {
	return len(b.buf)
}

func (b *TextBuffer) Cap() int {
	return cap(b.buf)
}

// Spilled returns whether the text has outgrown the inline array.
func (b *TextBuffer) Spilled() bool {
	return cap(b.buf) > inlineCapacity
}

func (b *TextBuffer) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

func (b *TextBuffer) WriteRune(r rune) (int, error) {
	if r < utf8.RuneSelf {
		b.buf = append(b.buf, byte(r))
		return 1, nil
	}
	n := len(b.buf)
	b.buf = utf8.AppendRune(b.buf, r)
	return len(b.buf) - n, nil
}

func (b *TextBuffer) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}

func (b *TextBuffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// Truncate discards all but the first n bytes.
func (b *TextBuffer) Truncate(n int) {
	if n < 0 || n > len(b.buf) {
		panic("streams: truncation out of range")
	}
	b.buf = b.buf[:n]
}

// TruncateLastRune drops the final rune, i.e.
// a trailing delimiter after the last element.
func (b *TextBuffer) TruncateLastRune() {
	if len(b.buf) > 0 {
		_, size := utf8.DecodeLastRune(b.buf)
		b.buf = b.buf[:len(b.buf)-size]
	}
}

// Bytes returns the accumulated text. The slice
// is only valid until the next write or release.
func (b *TextBuffer) Bytes() []byte {
	return b.buf
}

func (b *TextBuffer) String() string {
	return string(b.buf)
}

func (b *TextBuffer) Reset() {
	b.buf = b.buf[:0]
}
