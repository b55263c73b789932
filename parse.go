package ninep

// A MessageHeader is the fixed-size header that every message starts
// with.
type MessageHeader struct {
	// Size of the message in bytes, including the header and the
	// four size bytes themselves.
	Size uint32

	// Type of the message, one of the Msg* codes.
	Type uint8

	// Tag of the transaction the message belongs to. Tags are chosen
	// by the client and are opaque to the codec.
	Tag uint16
}

// PayloadSize returns the number of payload bytes that follow the
// header.
func (h MessageHeader) PayloadSize() uint32 { return h.Size - HeaderSize }

// A Parser holds the protocol state negotiated on a connection: the
// maximum message size and the protocol version. Create one Parser per
// connection; the decode entry points consult the negotiated limits on
// every frame.
//
// The per-call parse methods only read the negotiation state, so a
// Parser may be shared between goroutines if calls to the setters are
// externally synchronized. In practice, bind one Parser per connection
// and drive it from that connection's owner.
type Parser struct {
	maxSize           uint32
	negotiatedSize    uint32
	version           string
	negotiatedVersion string
}

// NewParser returns a Parser advertising the given maximum message
// size and protocol version. A maxSize of zero selects DefaultMaxSize;
// an empty version selects Version. Until negotiation takes place the
// negotiated values equal the configured ones.
func NewParser(maxSize uint32, version string) *Parser {
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}
	if version == "" {
		version = Version
	}
	return &Parser{
		maxSize:           maxSize,
		negotiatedSize:    maxSize,
		version:           version,
		negotiatedVersion: version,
	}
}

// MaxSize returns the configured maximum message size.
func (p *Parser) MaxSize() uint32 { return p.maxSize }

// NegotiatedSize returns the maximum message size in effect for the
// session.
func (p *Parser) NegotiatedSize() uint32 { return p.negotiatedSize }

// SetNegotiatedSize records the msize agreed in a version transaction
// and returns the value actually set, which may be less than requested:
// the negotiated size never exceeds the configured maximum.
func (p *Parser) SetNegotiatedSize(size uint32) uint32 {
	if size > p.maxSize {
		size = p.maxSize
	}
	p.negotiatedSize = size
	return size
}

// Version returns the configured protocol version.
func (p *Parser) Version() string { return p.version }

// NegotiatedVersion returns the protocol version in effect for the
// session.
func (p *Parser) NegotiatedVersion() string { return p.negotiatedVersion }

// SetNegotiatedVersion records the version agreed in a version
// transaction. A server that declines the offered version replies with
// UnknownVersion, which should be recorded here as-is.
func (p *Parser) SetNegotiatedVersion(version string) {
	p.negotiatedVersion = version
}

// ParseHeader reads and validates a message header, leaving r
// positioned at the start of the payload. It does not verify that the
// declared payload is available in r; that check belongs to
// ParseRequest and ParseResponse, so that a caller may stream the
// payload instead.
func (p *Parser) ParseHeader(r *Reader) (MessageHeader, error) {
	if r.Remaining() < HeaderSize {
		return MessageHeader{}, ErrIllFormedHeader
	}

	var h MessageHeader
	h.Size, _ = r.ReadUint32()
	if h.Size < HeaderSize {
		return MessageHeader{}, ErrFrameTooShort
	}
	if h.Size > p.negotiatedSize {
		return MessageHeader{}, ErrTooBig
	}

	h.Type, _ = r.ReadUint8()
	if !validMsgType(h.Type) {
		return MessageHeader{}, ErrUnsupportedType
	}

	// Tags are chosen by the client and cannot be checked here.
	h.Tag, _ = r.ReadUint16()
	return h, nil
}

// checkPayload enforces the strict per-frame contract of the decode
// entry points: the cursor must hold exactly the declared payload.
func (p *Parser) checkPayload(h MessageHeader, r *Reader) error {
	if h.Size > p.negotiatedSize {
		return ErrTooBig
	}
	want := int(h.PayloadSize())
	if r.Remaining() < want {
		return ErrNotEnoughData
	}
	if r.Remaining() > want {
		return ErrExtraData
	}
	return nil
}

// ParseRequest decodes the payload of a client request. The cursor
// must be positioned just past the header and hold exactly
// h.PayloadSize() bytes; use a Decoder to slice frames out of a
// contiguous stream. Variable-length fields of the returned request
// alias the cursor's buffer.
func (p *Parser) ParseRequest(h MessageHeader, r *Reader) (Request, error) {
	if err := p.checkPayload(h, r); err != nil {
		return nil, err
	}
	if int(h.Type) < len(requestParseLUT) {
		if fn := requestParseLUT[h.Type]; fn != nil {
			return fn(r)
		}
	}
	return nil, ErrUnsupportedType
}

// ParseResponse decodes the payload of a server response, under the
// same contract as ParseRequest. Rsread and Rswrite replies share
// their payload layout with Rread and Rwrite and decode to those
// types; consult h.Type when the distinction matters.
func (p *Parser) ParseResponse(h MessageHeader, r *Reader) (Response, error) {
	if err := p.checkPayload(h, r); err != nil {
		return nil, err
	}
	if int(h.Type) < len(responseParseLUT) {
		if fn := responseParseLUT[h.Type]; fn != nil {
			return fn(r)
		}
	}
	return nil, ErrUnsupportedType
}

type parseRequestFn func(*Reader) (Request, error)

type parseResponseFn func(*Reader) (Response, error)

var requestParseLUT = [...]parseRequestFn{
	MsgTversion: parseTversion,
	MsgTauth:    parseTauth,
	MsgTflush:   parseTflush,
	MsgTattach:  parseTattach,
	MsgTwalk:    parseTwalk,
	MsgTopen:    parseTopen,
	MsgTcreate:  parseTcreate,
	MsgTread:    parseTread,
	MsgTwrite:   parseTwrite,
	MsgTclunk:   parseTclunk,
	MsgTremove:  parseTremove,
	MsgTstat:    parseTstat,
	MsgTwstat:   parseTwstat,
	MsgTsession: parseTsession,
	MsgTsread:   parseTsread,
	MsgTswrite:  parseTswrite,
}

var responseParseLUT = [...]parseResponseFn{
	MsgRversion: parseRversion,
	MsgRauth:    parseRauth,
	MsgRattach:  parseRattach,
	MsgRerror:   parseRerror,
	MsgRflush:   parseRflush,
	MsgRwalk:    parseRwalk,
	MsgRopen:    parseRopen,
	MsgRcreate:  parseRcreate,
	MsgRread:    parseRread,
	MsgRwrite:   parseRwrite,
	MsgRclunk:   parseRclunk,
	MsgRremove:  parseRremove,
	MsgRstat:    parseRstat,
	MsgRwstat:   parseRwstat,
	MsgRsession: parseRsession,
	MsgRsread:   parseRread,  // layout shared with Rread
	MsgRswrite:  parseRwrite, // layout shared with Rwrite
}

func parseTversion(r *Reader) (Request, error) {
	var m Tversion
	var err error
	if m.Msize, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if m.Version, err = r.ReadString(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseTauth(r *Reader) (Request, error) {
	var m Tauth
	var err error
	if m.Afid, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if m.Uname, err = r.ReadString(); err != nil {
		return nil, err
	}
	if m.Aname, err = r.ReadString(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseTflush(r *Reader) (Request, error) {
	var m Tflush
	var err error
	if m.Oldtag, err = r.ReadUint16(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseTattach(r *Reader) (Request, error) {
	var m Tattach
	var err error
	if m.Fid, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if m.Afid, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if m.Uname, err = r.ReadString(); err != nil {
		return nil, err
	}
	if m.Aname, err = r.ReadString(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseTwalk(r *Reader) (Request, error) {
	var m Twalk
	var err error
	if m.Fid, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if m.Newfid, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if m.Path, err = r.ReadWalkPath(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseTopen(r *Reader) (Request, error) {
	var m Topen
	var err error
	if m.Fid, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if m.Mode, err = r.ReadUint8(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseTcreate(r *Reader) (Request, error) {
	var m Tcreate
	var err error
	if m.Fid, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if m.Name, err = r.ReadString(); err != nil {
		return nil, err
	}
	if m.Perm, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if m.Mode, err = r.ReadUint8(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseTread(r *Reader) (Request, error) {
	var m Tread
	var err error
	if m.Fid, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if m.Offset, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if m.Count, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseTwrite(r *Reader) (Request, error) {
	var m Twrite
	var err error
	if m.Fid, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if m.Offset, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if m.Data, err = r.ReadData(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseTclunk(r *Reader) (Request, error) {
	var m Tclunk
	var err error
	if m.Fid, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseTremove(r *Reader) (Request, error) {
	var m Tremove
	var err error
	if m.Fid, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseTstat(r *Reader) (Request, error) {
	var m Tstat
	var err error
	if m.Fid, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseTwstat(r *Reader) (Request, error) {
	var m Twstat
	var err error
	if m.Fid, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if m.Stat, err = r.ReadStat(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseTsession(r *Reader) (Request, error) {
	var m Tsession
	b, err := r.take(len(m.Key))
	if err != nil {
		return nil, err
	}
	copy(m.Key[:], b)
	return m, nil
}

func parseTsread(r *Reader) (Request, error) {
	var m Tsread
	var err error
	if m.Fid, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if m.Path, err = r.ReadWalkPath(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseTswrite(r *Reader) (Request, error) {
	var m Tswrite
	var err error
	if m.Fid, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if m.Path, err = r.ReadWalkPath(); err != nil {
		return nil, err
	}
	if m.Data, err = r.ReadData(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseRversion(r *Reader) (Response, error) {
	var m Rversion
	var err error
	if m.Msize, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if m.Version, err = r.ReadString(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseRauth(r *Reader) (Response, error) {
	var m Rauth
	var err error
	if m.Aqid, err = r.ReadQid(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseRattach(r *Reader) (Response, error) {
	var m Rattach
	var err error
	if m.Qid, err = r.ReadQid(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseRerror(r *Reader) (Response, error) {
	var m Rerror
	var err error
	if m.Ename, err = r.ReadString(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseRflush(*Reader) (Response, error) { return Rflush{}, nil }

func parseRwalk(r *Reader) (Response, error) {
	var m Rwalk
	var err error
	if m.Nwqid, err = r.ReadUint16(); err != nil {
		return nil, err
	}
	if m.Nwqid > MaxWElem {
		return nil, errMaxWElem
	}
	for i := 0; i < int(m.Nwqid); i++ {
		if m.Wqid[i], err = r.ReadQid(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func parseRopen(r *Reader) (Response, error) {
	var m Ropen
	var err error
	if m.Qid, err = r.ReadQid(); err != nil {
		return nil, err
	}
	if m.Iounit, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseRcreate(r *Reader) (Response, error) {
	var m Rcreate
	var err error
	if m.Qid, err = r.ReadQid(); err != nil {
		return nil, err
	}
	if m.Iounit, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseRread(r *Reader) (Response, error) {
	var m Rread
	var err error
	if m.Data, err = r.ReadData(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseRwrite(r *Reader) (Response, error) {
	var m Rwrite
	var err error
	if m.Count, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseRclunk(*Reader) (Response, error) { return Rclunk{}, nil }

func parseRremove(*Reader) (Response, error) { return Rremove{}, nil }

func parseRstat(r *Reader) (Response, error) {
	var m Rstat
	// The stat record is preceded by a redundant two-byte count of
	// the bytes that follow; see stat(9P).
	if _, err := r.ReadUint16(); err != nil {
		return nil, err
	}
	var err error
	if m.Stat, err = r.ReadStat(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseRwstat(*Reader) (Response, error) { return Rwstat{}, nil }

func parseRsession(*Reader) (Response, error) { return Rsession{}, nil }
