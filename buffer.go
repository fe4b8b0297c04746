package payload

import "crypto/subtle"

// Buffer is a uniquely-owned, size-tracked byte buffer.
//
// The zero value and a nil *Buffer are both empty buffers.
type Buffer struct {
	b []byte
}

// NewBuffer allocates a Buffer of exactly n bytes.
//
// NewBuffer panics if n is negative.
func NewBuffer(n int) *Buffer {
	if n < 0 {
		panic("payload: negative buffer size")
	}
	return &Buffer{b: make([]byte, n)}
}

// Bytes returns the contents of the buffer.
//
// The slice aliases the buffer and must not be used after
// Release.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.b
}

// Len returns the size of the buffer in bytes.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.b)
}

// Released reports whether the buffer no longer owns any memory.
func (b *Buffer) Released() bool {
	return b == nil || b.b == nil
}

// Release wipes and drops the buffer's allocation.
//
// Calling Release more than once is a no-op.
func (b *Buffer) Release() {
	if b == nil || b.b == nil {
		return
	}
	Wipe(b.b)
	b.b = nil
}

// Equal reports whether the buffer's contents equal x.
//
// The time taken is a function of the length of the buffer and
// is independent of its contents.
func (b *Buffer) Equal(x []byte) bool {
	return subtle.ConstantTimeCompare(b.Bytes(), x) == 1
}
