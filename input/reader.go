package input

import (
	"errors"
	"fmt"
	"io"
)

const readBufferSize = 4096

// Reader reads raw input from an io.Reader and decodes it into Events.
type Reader struct {
	src io.Reader
	dec *Decoder
	buf []byte
	err error
}

// NewReader returns a Reader decoding src with dec. A nil dec gets a fresh
// Decoder.
func NewReader(src io.Reader, dec *Decoder) *Reader {
	if dec == nil {
		dec = NewDecoder()
	}
	return &Reader{src: src, dec: dec, buf: make([]byte, readBufferSize)}
}

// ReadEvent blocks until one complete event is decoded. Reads that only
// extend a partial sequence or a pending paste are absorbed. Once src fails,
// buffered events are still returned before the error.
func (r *Reader) ReadEvent() (Event, error) {
	for {
		if ev, ok := r.dec.Next(); ok {
			return ev, nil
		}
		if r.err != nil {
			return nil, r.err
		}

		n, err := r.src.Read(r.buf)
		if n > 0 {
			r.dec.Feed(r.buf[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.err = io.EOF
			} else {
				r.err = fmt.Errorf("read input: %w", err)
			}
		}
	}
}
