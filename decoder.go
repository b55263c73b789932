package ninep

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// A Decoder slices framed messages out of a byte stream. Successive
// calls to Next fetch and validate one frame at a time; the Request
// and Response methods then run the strict decode entry points on the
// sliced payload.
//
// The decoder holds at most one frame in memory at a time, in a buffer
// sized to the parser's configured maximum message size; memory usage
// per connection is therefore bounded and predictable.
//
// A Decoder is not safe for concurrent use. Usage of any Decoder
// method should be delegated to a single thread of execution or
// protected by a mutex.
type Decoder struct {
	p      *Parser
	br     *bufio.Reader
	header MessageHeader
	body   []byte

	// bytes of the current frame to discard before the next one
	pending int

	err error
}

// NewDecoder returns a Decoder that reads frames from r and validates
// them against the negotiation state in p.
func NewDecoder(r io.Reader, p *Parser) *Decoder {
	return &Decoder{p: p, br: bufio.NewReaderSize(r, int(p.MaxSize()))}
}

// Next fetches the next frame from the underlying reader. If a frame
// cannot be fetched, because the stream ended or a frame failed
// validation, Next returns false and Err reports why. Data decoded
// from the current frame is valid only until the following call to
// Next.
func (d *Decoder) Next() bool {
	if d.err != nil {
		return false
	}
	if d.pending > 0 {
		if _, err := d.br.Discard(d.pending); err != nil {
			d.err = errors.Wrap(err, "discard frame")
			return false
		}
		d.pending = 0
	}

	hdr, err := d.br.Peek(HeaderSize)
	if err != nil {
		switch {
		case err == io.EOF && len(hdr) == 0:
			d.err = io.EOF
		case err == io.EOF:
			d.err = io.ErrUnexpectedEOF
		default:
			d.err = errors.Wrap(err, "read frame header")
		}
		return false
	}
	h, err := d.p.ParseHeader(NewReader(hdr))
	if err != nil {
		d.err = err
		return false
	}

	frame, err := d.br.Peek(int(h.Size))
	if err != nil {
		if err == io.EOF {
			d.err = io.ErrUnexpectedEOF
		} else {
			d.err = errors.Wrap(err, "read frame body")
		}
		return false
	}
	d.header = h
	d.body = frame[HeaderSize:]
	d.pending = int(h.Size)
	return true
}

// Err returns the first error encountered while fetching frames. If
// the underlying reader was closed in the middle of a frame, Err
// returns io.ErrUnexpectedEOF. An EOF at a frame boundary is not
// considered an error and is not relayed by Err.
func (d *Decoder) Err() error {
	if d.err == io.EOF {
		return nil
	}
	return d.err
}

// Header returns the header of the current frame. It is valid if and
// only if the last call to Next returned true.
func (d *Decoder) Header() MessageHeader { return d.header }

// Request decodes the current frame as a client request. The result
// aliases the decoder's buffer and is valid only until the next call
// to Next.
func (d *Decoder) Request() (Request, error) {
	return d.p.ParseRequest(d.header, NewReader(d.body))
}

// Response decodes the current frame as a server response, under the
// same validity rules as Request.
func (d *Decoder) Response() (Response, error) {
	return d.p.ParseResponse(d.header, NewReader(d.body))
}
