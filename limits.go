package ninep

// Validating messages becomes more complicated if we allow
// arbitrarily-long values for some of the non-fixed fields in a
// message. To simplify things, we set some limits on how big any of
// these fields can be.

// HeaderSize is the length of the mandatory message header:
//
// 	size[4] type[1] tag[2]
//
// The size field counts these seven bytes as well as the payload.
const HeaderSize = 4 + 1 + 2

// DefaultMaxSize is the maximum message size advertised before version
// negotiation has taken place.
const DefaultMaxSize = 8 * 1024

// Version is the protocol version string advertised by default.
const Version = "9P2000.e"

// UnknownVersion is the version string used by a server to decline the
// version offered by the client.
const UnknownVersion = "unknown"

// NoTag is the tag used by Tversion and Rversion messages, which are
// not part of any transaction.
const NoTag uint16 = 0xFFFF

// NoFid is a reserved fid used in a Tattach request for clients that
// do not wish to authenticate.
const NoFid uint32 = 0xFFFFFFFF

// MaxWElem is the maximum allowed number of path elements in a Twalk
// request, and of qids in an Rwalk reply.
const MaxWElem = 16

// QidLen is the encoded length of a Qid.
const QidLen = 1 + 4 + 8

// IOHeaderSize is the length of all fixed-width fields in a Twrite or
// Tread message. A connection's iounit is usually its msize minus this.
const IOHeaderSize = 4 + 1 + 2 + 4 + 8 + 4

// MaxVersionLen is the maximum length of the protocol version string in bytes.
const MaxVersionLen = 20

// MaxFilenameLen is the maximum length of a file name in bytes.
const MaxFilenameLen = 255

// MaxUidLen is the maximum length (in bytes) of a username or group
// identifier.
const MaxUidLen = 45

// MaxErrorLen is the maximum length (in bytes) of the Ename field in an
// Rerror message.
const MaxErrorLen = 512

// MaxAttachLen is the maximum length (in bytes) of the aname field of
// Tattach and Tauth requests.
const MaxAttachLen = 255

// See stat(9P) for details on the stat structure. The fixed portion
// counts the two-byte size field itself.
const statFixedSize = 2 + 2 + 4 + QidLen + 4 + 4 + 4 + 8

const minStatLen = statFixedSize + (4 * 2) // name[s] uid[s] gid[s] muid[s]

// MaxStatLen is the maximum encoded size of a Stat structure.
const MaxStatLen = minStatLen + MaxFilenameLen + (MaxUidLen * 3)

// Message type codes. The base 9P2000 set occupies 100 through 127 and
// pairs each T-message with the R-message that answers it; 106 (Terror)
// is illegal on the wire. The 9P2000.e extension occupies 150 through
// 155.
const (
	MsgTversion uint8 = 100
	MsgRversion uint8 = 101
	MsgTauth    uint8 = 102
	MsgRauth    uint8 = 103
	MsgTattach  uint8 = 104
	MsgRattach  uint8 = 105
	MsgRerror   uint8 = 107
	MsgTflush   uint8 = 108
	MsgRflush   uint8 = 109
	MsgTwalk    uint8 = 110
	MsgRwalk    uint8 = 111
	MsgTopen    uint8 = 112
	MsgRopen    uint8 = 113
	MsgTcreate  uint8 = 114
	MsgRcreate  uint8 = 115
	MsgTread    uint8 = 116
	MsgRread    uint8 = 117
	MsgTwrite   uint8 = 118
	MsgRwrite   uint8 = 119
	MsgTclunk   uint8 = 120
	MsgRclunk   uint8 = 121
	MsgTremove  uint8 = 122
	MsgRremove  uint8 = 123
	MsgTstat    uint8 = 124
	MsgRstat    uint8 = 125
	MsgTwstat   uint8 = 126
	MsgRwstat   uint8 = 127

	MsgTsession uint8 = 150
	MsgRsession uint8 = 151
	MsgTsread   uint8 = 152
	MsgRsread   uint8 = 153
	MsgTswrite  uint8 = 154
	MsgRswrite  uint8 = 155
)

// validMsgType reports whether t is in the recognized set of message
// type codes. Terror (106) is never legal on the wire.
func validMsgType(t uint8) bool {
	if t >= MsgTversion && t <= MsgRwstat {
		return t != 106
	}
	return t >= MsgTsession && t <= MsgRswrite
}
