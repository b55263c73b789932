package ninep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The first message on any connection, byte for byte.
func TestVersionWire(t *testing.T) {
	w := NewMessageWriter(make([]byte, 64))
	frame, err := w.Tversion(8192, "9P2000.e")
	require.NoError(t, err)

	want := []byte{
		0x15, 0x00, 0x00, 0x00, // size
		100,        // Tversion
		0xFF, 0xFF, // tag: NoTag
		0x00, 0x20, 0x00, 0x00, // msize: 8192
		0x08, 0x00, // len("9P2000.e")
		'9', 'P', '2', '0', '0', '0', '.', 'e',
	}
	assert.Equal(t, want, frame)

	p := NewParser(DefaultMaxSize, Version)
	h, r := parseFrame(t, p, frame)
	req, err := p.ParseRequest(h, r)
	require.NoError(t, err)
	assert.Equal(t, Tversion{Msize: 8192, Version: []byte("9P2000.e")}, req)
}

func TestRwalkWire(t *testing.T) {
	w := NewMessageWriter(make([]byte, 64))
	frame, err := w.Rwalk(7,
		Qid{Type: QTDIR, Version: 1, Path: 100},
		Qid{Type: QTFILE, Version: 2, Path: 200})
	require.NoError(t, err)

	// size[4] type[1] tag[2] nwqid[2] wqid[2*13]
	assert.Len(t, frame, 35)
	assert.Equal(t, uint32(35), guint32(frame[:4]))
	assert.Equal(t, []byte{0x02, 0x00}, frame[7:9])
}

func TestParseHeaderShort(t *testing.T) {
	p := NewParser(DefaultMaxSize, Version)
	buf := []byte{0x0b, 0x00, 0x00, 0x00, 100, 0x00, 0x00}
	for n := 0; n < HeaderSize; n++ {
		_, err := p.ParseHeader(NewReader(buf[:n]))
		assert.Equal(t, ErrIllFormedHeader, err, "%d bytes", n)
	}
}

func TestParseHeaderFrameTooShort(t *testing.T) {
	p := NewParser(DefaultMaxSize, Version)
	_, err := p.ParseHeader(NewReader([]byte{0x05, 0x00, 0x00, 0x00, 100, 0x00, 0x00}))
	assert.Equal(t, ErrFrameTooShort, err)
}

func TestParseHeaderTooBig(t *testing.T) {
	p := NewParser(DefaultMaxSize, Version)
	p.SetNegotiatedSize(256)
	_, err := p.ParseHeader(NewReader([]byte{0x00, 0x10, 0x00, 0x00, 100, 0x00, 0x00}))
	assert.Equal(t, ErrTooBig, err)
}

func TestParseHeaderUnsupportedType(t *testing.T) {
	p := NewParser(DefaultMaxSize, Version)
	for _, typ := range []uint8{0, 99, 106, 128, 149, 156, 200, 255} {
		_, err := p.ParseHeader(NewReader([]byte{0x0b, 0x00, 0x00, 0x00, typ, 0x00, 0x00}))
		assert.Equal(t, ErrUnsupportedType, err, "type %d", typ)
	}
	for _, typ := range []uint8{100, 127, 150, 155} {
		h, err := p.ParseHeader(NewReader([]byte{0x0b, 0x00, 0x00, 0x00, typ, 0x00, 0x00}))
		require.NoError(t, err, "type %d", typ)
		assert.Equal(t, typ, h.Type)
	}
}

// The decode entry points require the cursor to hold exactly the
// declared payload.
func TestParsePayloadExact(t *testing.T) {
	p := NewParser(DefaultMaxSize, Version)
	h := MessageHeader{Size: HeaderSize + 4, Type: MsgTclunk, Tag: 1}

	_, err := p.ParseRequest(h, NewReader([]byte{1, 0, 0}))
	assert.Equal(t, ErrNotEnoughData, err)

	_, err = p.ParseRequest(h, NewReader([]byte{1, 0, 0, 0, 9}))
	assert.Equal(t, ErrExtraData, err)

	req, err := p.ParseRequest(h, NewReader([]byte{1, 0, 0, 0}))
	require.NoError(t, err)
	assert.Equal(t, Tclunk{Fid: 1}, req)

	// A frame that exceeds a negotiated size lowered between header and
	// payload parse is still rejected.
	p.SetNegotiatedSize(8)
	_, err = p.ParseRequest(h, NewReader([]byte{1, 0, 0, 0}))
	assert.Equal(t, ErrTooBig, err)
}

func TestNegotiatedSizeClamp(t *testing.T) {
	p := NewParser(8192, Version)
	assert.Equal(t, uint32(8192), p.NegotiatedSize())

	assert.Equal(t, uint32(8192), p.SetNegotiatedSize(16384))
	assert.Equal(t, uint32(1024), p.SetNegotiatedSize(1024))
	assert.Equal(t, uint32(1024), p.NegotiatedSize())

	// The cap is against the configured maximum, not the previous
	// negotiated value.
	assert.Equal(t, uint32(8192), p.SetNegotiatedSize(65536))
}

func TestNegotiatedVersion(t *testing.T) {
	p := NewParser(0, "")
	assert.Equal(t, uint32(DefaultMaxSize), p.MaxSize())
	assert.Equal(t, Version, p.Version())
	assert.Equal(t, Version, p.NegotiatedVersion())

	p.SetNegotiatedVersion(UnknownVersion)
	assert.Equal(t, UnknownVersion, p.NegotiatedVersion())
	assert.Equal(t, Version, p.Version())
}
