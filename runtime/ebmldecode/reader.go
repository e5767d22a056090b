package ebmldecode

import (
	"fmt"
	"io"
)

// StreamReader drives a Decoder from an io.Reader, one byte at a time,
// and turns the resulting elemstart/elemend events into a pull-style
// Next call. It is a convenience wrapper for callers who would rather
// loop over events than feed a Decoder bytes themselves.
type StreamReader struct {
	r        io.Reader
	dec      Decoder
	buf      [1]byte
	draining bool // true once the reader is exhausted; remaining Next calls drain Decoder.EOF.
}

// NewStreamReader creates a StreamReader over r, using lookup to
// resolve element IDs as the underlying Decoder encounters them.
func NewStreamReader(r io.Reader, lookup Lookup) *StreamReader {
	sr := &StreamReader{r: r}
	sr.dec.Init(lookup)
	return sr
}

// Decoder returns the underlying Decoder, whose observable fields
// (Name, Type, Value, FloatValue, String) describe the element named
// by the most recent Next result.
func (sr *StreamReader) Decoder() *Decoder { return &sr.dec }

// Next advances the stream to the next event: EventElemStart or
// EventElemEnd. Once the underlying reader is exhausted, Next switches
// to draining the Decoder's EOF cascade, returning one EventElemEnd
// per still-open element before finally returning io.EOF. Next does
// not record any other error it returns: a later call goes on reading
// from the underlying reader, or draining EOF, with the Decoder in
// whatever state the error left it.
func (sr *StreamReader) Next() (Event, error) {
	if sr.draining {
		ev, err := sr.dec.EOF()
		if err != nil {
			return EventError, err
		}
		if ev == EventElemEnd {
			return ev, nil
		}
		return EventOK, io.EOF
	}

	for {
		n, err := sr.r.Read(sr.buf[:])
		if n == 0 {
			if err == io.EOF {
				sr.draining = true
				return sr.Next()
			}
			if err == nil {
				continue
			}
			return EventError, fmt.Errorf("ebmldecode: reading stream: %w", err)
		}

		ev, parseErr := sr.dec.Parse(sr.buf[0])
		if parseErr != nil {
			return EventError, parseErr
		}
		if ev == EventElemStart || ev == EventElemEnd {
			return ev, nil
		}
	}
}
