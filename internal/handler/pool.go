package handler

import (
	"bytes"
	"sync"
)

// encodeBufCap fits every response body this API serves short of a full
// catalog listing.
const encodeBufCap = 512

var encodeBuffers = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, encodeBufCap))
	},
}

func getBuffer() *bytes.Buffer {
	return encodeBuffers.Get().(*bytes.Buffer)
}

// putBuffer resets buf before handing it back for reuse.
func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	encodeBuffers.Put(buf)
}
