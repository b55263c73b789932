package ninep

import "fmt"

// A Request is a message sent by a client. The concrete type of a
// Request is one of the T-message structs in this package. Any
// variable-length fields alias the buffer the request was decoded
// from.
type Request interface {
	isRequest()
}

// A Response is a message sent by a server in answer to a request.
// The concrete type of a Response is one of the R-message structs in
// this package. Any variable-length fields alias the buffer the
// response was decoded from.
type Response interface {
	isResponse()
}

// The version request negotiates the protocol version and message size
// to be used on the connection and initializes the connection for I/O.
// Tversion must be the first message sent on the connection, and the
// client cannot issue any further requests until it has received the
// Rversion reply.
type Tversion struct {
	// Msize is the maximum length, in bytes, that the client will
	// ever generate or expect to receive in a single message. This
	// count includes all protocol data, starting from the size field
	// and extending through the message, but excludes enveloping
	// transport protocols.
	Msize uint32

	// Version identifies the level of the protocol that the client
	// supports. The string must always begin with the two characters
	// "9P".
	Version []byte
}

// An Rversion reply contains the version of the protocol that the
// server has chosen, and the maximum size of all successive messages.
type Rversion struct {
	// Msize is the maximum size (in bytes) of any message that the
	// server will send or accept, and must be equal to or less than
	// the maximum suggested in the preceding Tversion message. After
	// the Rversion message is received, both sides of the connection
	// must honor this limit.
	Msize uint32

	// Version identifies the level of the protocol that the server
	// supports. If a server does not understand the protocol version
	// sent in a Tversion message, Version holds the string "unknown".
	Version []byte
}

// The Tauth message is used to authenticate users on a connection.
type Tauth struct {
	// Afid establishes an 'authentication file'; after a Tauth
	// message is accepted by the server, a client must carry out the
	// authentication protocol by performing I/O operations on afid.
	// Any protocol may be used; authentication is outside the scope
	// of 9P itself.
	Afid uint32

	// Uname is the name of the user to authenticate.
	Uname []byte

	// Aname is the name of the file tree to access. It may be empty.
	Aname []byte
}

// Servers that require authentication reply to a Tauth request with an
// Rauth message. Servers that do not may reply with Rerror instead.
type Rauth struct {
	// Aqid must be of type QTAUTH.
	Aqid Qid
}

// The attach message serves as a fresh introduction from a user on the
// client machine to the server.
type Tattach struct {
	// Fid establishes a fid to be used as the root of the file tree,
	// should the attach request be accepted.
	Fid uint32

	// On servers that require authentication, afid serves to
	// authenticate a user, and must have been established in a
	// previous Tauth request. A client that does not wish to
	// authenticate sets afid to NoFid.
	Afid uint32

	// Uname is the user name of the attaching user.
	Uname []byte

	// Aname is the name of the file tree that the client wants to
	// access.
	Aname []byte
}

// The Rattach message contains a server's reply to a Tattach request.
// As a result of the attach transaction, the client will have a
// connection to the root directory of the desired file tree,
// represented by the returned qid.
type Rattach struct {
	Qid Qid
}

// The Rerror message (there is no Terror) is used to return an error
// string describing the failure of a transaction. It replaces the
// reply message that would accompany a successful call; its tag is
// that of the failing request.
type Rerror struct {
	// Ename is a UTF-8 string describing the error that occurred.
	Ename []byte
}

// When the response to a request is no longer needed, such as when a
// user interrupts a process doing a read, a Tflush request is sent to
// the server to purge the pending response.
type Tflush struct {
	// Oldtag identifies the message being flushed.
	Oldtag uint16
}

// A server answers a Tflush message with an Rflush message that echoes
// the tag (not oldtag) of the Tflush. A Tflush can never be responded
// to with an Rerror message.
type Rflush struct{}

// A Twalk message is used to descend a directory hierarchy.
type Twalk struct {
	// Fid is the directory to descend from. It must have been
	// established by a previous transaction, such as an attach.
	Fid uint32

	// Newfid is the proposed fid that the client wishes to associate
	// with the result of the walk.
	Newfid uint32

	// Path holds the ordered name elements to walk through, at most
	// MaxWElem of them. It is legal for the path to be empty, in
	// which case Newfid will represent the same file as Fid.
	Path WalkPath
}

// An Rwalk message contains a server's reply to a successful Twalk
// request. If the first element of the corresponding Twalk cannot be
// walked, Rerror is returned instead.
type Rwalk struct {
	// Nwqid must always be equal to or lesser than the number of
	// names in the corresponding Twalk request. Only if it is equal
	// is the Newfid of the request established.
	Nwqid uint16

	// Wqid holds the qid of each file visited in the walk, up to the
	// first failure. Only the first Nwqid entries are meaningful.
	Wqid [MaxWElem]Qid
}

// Qids returns the meaningful prefix of m.Wqid.
func (m Rwalk) Qids() []Qid { return m.Wqid[:m.Nwqid] }

// The open request asks the file server to check permissions and
// prepare a fid for I/O with subsequent read and write messages.
type Topen struct {
	// Fid is the file to open, as established by a previous
	// transaction (such as a successful Twalk).
	Fid uint32

	// Mode determines the type of I/O: OREAD, OWRITE, ORDWR or OEXEC
	// in the low bits, with OTRUNC, OCEXEC or ORCLOSE or'ed in.
	Mode uint8
}

// An Ropen message is a server's reply to a successful Topen request.
type Ropen struct {
	// Qid is the unique identifier of the opened file.
	Qid Qid

	// Iounit may be zero. If it is not, it is the maximum number of
	// bytes that are guaranteed to be read from or written to the
	// file without breaking the transfer into multiple messages.
	Iounit uint32
}

// The create request asks the file server to create a new file with
// the name supplied, in the directory represented by fid. The owner of
// the file is the implied user of the request.
type Tcreate struct {
	Fid  uint32
	Name []byte

	// Perm holds the permissions for the newly created file.
	Perm uint32

	// Mode is the mode the file will be opened in once created.
	Mode uint8
}

// An Rcreate message is a server's reply to a successful Tcreate
// request.
type Rcreate struct {
	Qid    Qid
	Iounit uint32
}

// The read request asks for count bytes of data from the file, which
// must be opened for reading, starting offset bytes after the
// beginning of the file.
type Tread struct {
	Fid    uint32
	Offset uint64
	Count  uint32
}

// The Rread message returns the bytes requested by a Tread message.
// For directories, read returns an integral number of stat records;
// seeks on a directory are restricted to offsets previously returned
// by read.
type Rread struct {
	Data []byte
}

// The Twrite message asks that count bytes of data be recorded in the
// file, which must be opened for writing.
type Twrite struct {
	Fid    uint32
	Offset uint64
	Data   []byte
}

// An Rwrite message reports the number of bytes written.
type Rwrite struct {
	Count uint32
}

// The clunk request informs the file server that the current file
// represented by fid is no longer needed by the client. The actual
// file is not removed on the server unless the fid had been opened
// with ORCLOSE.
type Tclunk struct {
	Fid uint32
}

// An Rclunk message is a server's reply to a Tclunk request.
type Rclunk struct{}

// The remove request asks the file server both to remove the file
// represented by fid and to clunk the fid, even if the remove fails.
type Tremove struct {
	Fid uint32
}

// An Rremove message is a server's reply to a Tremove request.
type Rremove struct{}

// The stat transaction inquires about the file identified by fid.
type Tstat struct {
	Fid uint32
}

// An Rstat message carries the stat record of the file.
type Rstat struct {
	Stat Stat
}

// A request to update the stat record of the file identified by fid.
// A wstat request can change some of the file status information.
type Twstat struct {
	Fid  uint32
	Stat Stat
}

// An Rwstat message is a server's reply to a Twstat request.
type Rwstat struct{}

// A Tsession message asks the server to re-establish a previously
// negotiated session after a reconnect (9P2000.e).
type Tsession struct {
	// Key identifies the previously established session.
	Key [8]byte
}

// An Rsession message is a server's reply to a Tsession request.
type Rsession struct{}

// A Tsread message reads the entire contents of the file named by a
// path relative to fid in a single request (9P2000.e). The reply is an
// Rsread, which decodes as Rread.
type Tsread struct {
	Fid  uint32
	Path WalkPath
}

// A Tswrite message overwrites the contents of the file named by a
// path relative to fid in a single request (9P2000.e). The reply is an
// Rswrite, which decodes as Rwrite.
type Tswrite struct {
	Fid  uint32
	Path WalkPath
	Data []byte
}

func (Tversion) isRequest() {}
func (Tauth) isRequest()    {}
func (Tflush) isRequest()   {}
func (Tattach) isRequest()  {}
func (Twalk) isRequest()    {}
func (Topen) isRequest()    {}
func (Tcreate) isRequest()  {}
func (Tread) isRequest()    {}
func (Twrite) isRequest()   {}
func (Tclunk) isRequest()   {}
func (Tremove) isRequest()  {}
func (Tstat) isRequest()    {}
func (Twstat) isRequest()   {}
func (Tsession) isRequest() {}
func (Tsread) isRequest()   {}
func (Tswrite) isRequest()  {}

func (Rversion) isResponse() {}
func (Rauth) isResponse()    {}
func (Rattach) isResponse()  {}
func (Rerror) isResponse()   {}
func (Rflush) isResponse()   {}
func (Rwalk) isResponse()    {}
func (Ropen) isResponse()    {}
func (Rcreate) isResponse()  {}
func (Rread) isResponse()    {}
func (Rwrite) isResponse()   {}
func (Rclunk) isResponse()   {}
func (Rremove) isResponse()  {}
func (Rstat) isResponse()    {}
func (Rwstat) isResponse()   {}
func (Rsession) isResponse() {}

func (m Tversion) String() string {
	return fmt.Sprintf("Tversion msize=%d version=%q", m.Msize, m.Version)
}

func (m Rversion) String() string {
	return fmt.Sprintf("Rversion msize=%d version=%q", m.Msize, m.Version)
}

func (m Tauth) String() string {
	return fmt.Sprintf("Tauth afid=%x uname=%q aname=%q", m.Afid, m.Uname, m.Aname)
}

func (m Rauth) String() string { return fmt.Sprintf("Rauth aqid=%q", m.Aqid) }

func (m Tattach) String() string {
	return fmt.Sprintf("Tattach fid=%x afid=%x uname=%q aname=%q",
		m.Fid, m.Afid, m.Uname, m.Aname)
}

func (m Rattach) String() string { return fmt.Sprintf("Rattach qid=%q", m.Qid) }

func (m Rerror) String() string { return fmt.Sprintf("Rerror ename=%q", m.Ename) }

func (m Tflush) String() string { return fmt.Sprintf("Tflush oldtag=%x", m.Oldtag) }

func (m Rflush) String() string { return "Rflush" }

func (m Twalk) String() string {
	return fmt.Sprintf("Twalk fid=%x newfid=%x %q", m.Fid, m.Newfid, m.Path)
}

func (m Rwalk) String() string {
	return fmt.Sprintf("Rwalk nwqid=%d", m.Nwqid)
}

func (m Topen) String() string {
	return fmt.Sprintf("Topen fid=%x mode=%#o", m.Fid, m.Mode)
}

func (m Ropen) String() string {
	return fmt.Sprintf("Ropen qid=%q iounit=%d", m.Qid, m.Iounit)
}

func (m Tcreate) String() string {
	return fmt.Sprintf("Tcreate fid=%x name=%q perm=%o mode=%#o",
		m.Fid, m.Name, m.Perm, m.Mode)
}

func (m Rcreate) String() string {
	return fmt.Sprintf("Rcreate qid=%q iounit=%d", m.Qid, m.Iounit)
}

func (m Tread) String() string {
	return fmt.Sprintf("Tread fid=%d offset=%d count=%d", m.Fid, m.Offset, m.Count)
}

func (m Rread) String() string { return fmt.Sprintf("Rread count=%d", len(m.Data)) }

func (m Twrite) String() string {
	return fmt.Sprintf("Twrite fid=%x offset=%d count=%d", m.Fid, m.Offset, len(m.Data))
}

func (m Rwrite) String() string { return fmt.Sprintf("Rwrite count=%d", m.Count) }

func (m Tclunk) String() string { return fmt.Sprintf("Tclunk fid=%x", m.Fid) }

func (m Rclunk) String() string { return "Rclunk" }

func (m Tremove) String() string { return fmt.Sprintf("Tremove fid=%x", m.Fid) }

func (m Rremove) String() string { return "Rremove" }

func (m Tstat) String() string { return fmt.Sprintf("Tstat fid=%x", m.Fid) }

func (m Rstat) String() string { return "Rstat " + m.Stat.String() }

func (m Twstat) String() string {
	return fmt.Sprintf("Twstat fid=%x stat=%q", m.Fid, m.Stat)
}

func (m Rwstat) String() string { return "Rwstat" }

func (m Tsession) String() string { return fmt.Sprintf("Tsession key=%x", m.Key) }

func (m Rsession) String() string { return "Rsession" }

func (m Tsread) String() string {
	return fmt.Sprintf("Tsread fid=%x %q", m.Fid, m.Path)
}

func (m Tswrite) String() string {
	return fmt.Sprintf("Tswrite fid=%x %q count=%d", m.Fid, m.Path, len(m.Data))
}
