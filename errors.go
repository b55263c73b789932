package ninep

// A ProtocolError describes a framing or validation failure detected
// while decoding a message. A protocol error is terminal for the
// current frame; resynchronization or disconnection is the transport's
// responsibility.
type ProtocolError string

func (e ProtocolError) Error() string { return string(e) }

// The closed set of protocol errors returned by the decode entry
// points. Writer routines never produce these; a writer that runs out
// of buffer space reports io.ErrShortBuffer instead.
const (
	// ErrIllFormedHeader is returned when fewer than HeaderSize bytes
	// are available to read a message header.
	ErrIllFormedHeader = ProtocolError("ill-formed header: not enough data to read a header")

	// ErrFrameTooShort is returned when the declared frame size is
	// smaller than the mandatory header.
	ErrFrameTooShort = ProtocolError("ill-formed message: declared frame size less than header")

	// ErrTooBig is returned when the declared frame size exceeds the
	// negotiated maximum message size.
	ErrTooBig = ProtocolError("ill-formed message: declared frame size greater than negotiated one")

	// ErrUnsupportedType is returned for a message type code outside
	// the recognized set.
	ErrUnsupportedType = ProtocolError("ill-formed message: unsupported message type")

	// ErrNotEnoughData is returned when a payload is shorter than its
	// frame declares.
	ErrNotEnoughData = ProtocolError("ill-formed message: declared frame size larger than message data received")

	// ErrExtraData is returned when a payload is longer than its frame
	// declares.
	ErrExtraData = ProtocolError("ill-formed message: declared frame size less than message data received")
)

type parseError string

func (p parseError) Error() string { return string(p) }

var (
	errLongAname    = parseError("aname field too long")
	errLongFilename = parseError("file name too long")
	errLongString   = parseError("string longer than max uint16")
	errLongUsername = parseError("uid or gid name is too long")
	errLongVersion  = parseError("protocol version string too long")
	errMaxWElem     = parseError("maximum walk elements exceeded")
)
