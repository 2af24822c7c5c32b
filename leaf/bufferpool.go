// File: bufferpool.go
// Package leaf
// License: Apache-2.0
//
// Read-buffer pooling for repeated PipeRead use, backed by the generic
// pool.SyncPool. Buffers are zeroed on Put so a reused buffer never
// carries a previous PipeRead's bytes past the new read's length.

package leaf

import "github.com/loomrt/loom/pool"

// BufferPool hands out fixed-size byte slices for PipeRead and returns
// them for reuse once a caller is done with a settled result.
type BufferPool struct {
	sp *pool.SyncPool[[]byte]
}

// NewBufferPool returns a BufferPool whose buffers are size bytes long.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		sp: pool.NewSyncPoolWithReset(
			func() []byte { return make([]byte, size) },
			func(buf []byte) {
				for i := range buf {
					buf[i] = 0
				}
			},
		),
	}
}

// Get returns a buffer, reused from the pool when one is available.
func (b *BufferPool) Get() []byte { return b.sp.Get() }

// Put returns buf to the pool for reuse.
func (b *BufferPool) Put(buf []byte) { b.sp.Put(buf) }
