package codec

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 4096 // max bytes retained per buffer
	poolInitCap = 64
)

// byte buffer pool for encode output assembly
var bufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, poolInitCap)
		return &buf
	},
}

func getBuf() *[]byte {
	return bufPool.Get().(*[]byte)
}

func putBuf(buf *[]byte) {
	if buf == nil || cap(*buf) > poolMaxCap {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	bufPool.Put(buf)
}
