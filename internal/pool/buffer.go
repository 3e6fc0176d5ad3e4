// Package pool provides pooled byte buffers for archive serialization.
//
// Serializing an archive or assembling a diff script concatenates many small
// phrase fragments; drawing the scratch buffer from a pool keeps repeated
// serializations from re-allocating it each time.
package pool

import (
	"bytes"
	"sync"
)

const (
	// BufferDefaultSize is the initial capacity of buffers created by the pool.
	// A typical archive with a handful of deltas fits without growing.
	BufferDefaultSize = 1024 * 16 // 16KiB

	// BufferMaxThreshold is the largest capacity returned to the pool.
	// Buffers grown past it by an unusually large archive are discarded so a
	// single huge file does not pin memory for the process lifetime.
	BufferMaxThreshold = 1024 * 512 // 512KiB
)

// BufferPool is a pool of bytes.Buffer values with an upper retention bound.
type BufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewBufferPool creates a pool whose buffers start at defaultSize capacity
// and are discarded on Put once their capacity exceeds maxThreshold.
func NewBufferPool(defaultSize, maxThreshold int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() any {
				buf := &bytes.Buffer{}
				buf.Grow(defaultSize)

				return buf
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty buffer from the pool.
func (bp *BufferPool) Get() *bytes.Buffer {
	buf, _ := bp.pool.Get().(*bytes.Buffer)
	return buf
}

// Put returns a buffer to the pool for reuse.
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	if buf == nil {
		return
	}

	if bp.maxThreshold > 0 && buf.Cap() > bp.maxThreshold {
		// Drop oversized buffers instead of retaining them.
		return
	}

	buf.Reset()
	bp.pool.Put(buf)
}

var defaultPool = NewBufferPool(BufferDefaultSize, BufferMaxThreshold)

// GetBuffer retrieves an empty buffer from the default pool.
func GetBuffer() *bytes.Buffer {
	return defaultPool.Get()
}

// PutBuffer returns a buffer to the default pool.
func PutBuffer(buf *bytes.Buffer) {
	defaultPool.Put(buf)
}
