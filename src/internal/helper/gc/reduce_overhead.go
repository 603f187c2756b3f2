// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	io.Writer
	io.WriterTo
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	Bytes() []byte
	String() string
	Len() int
	Reset()
	ReadFrom(r io.Reader) (int64, error)
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns a buffer to the pool. Buffers that did not come from a
// bytebufferpool are ignored.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the buffer pool shared by certificate bundle encoding, input file
// reads and structured log lines.
//
// Example usage for reading a certificate bundle:
//
//	buf := gc.Default.Get()
//
//	defer func() {
//		buf.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(buf) // Return the buffer to the pool for reuse
//	}()
//
//	if _, err := buf.ReadFrom(file); err != nil {
//		return nil, fmt.Errorf("error reading bundle: %w", err)
//	}
//
//	// Copy out before the buffer goes back to the pool.
//	data := bytes.Clone(buf.Bytes())
var Default Pool = &pool{p: &bytebufferpool.Pool{}}

// ReadAll reads r to EOF through a pooled buffer and returns a copy of the data.
func ReadAll(r io.Reader) ([]byte, error) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
