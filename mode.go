package ninep

// File open modes for the mode field in Topen and Tcreate messages.
// The low two bits select the type of I/O; the remaining flags are
// or'ed in.
const (
	OREAD   uint8 = 0  // open read-only
	OWRITE  uint8 = 1  // open write-only
	ORDWR   uint8 = 2  // open read-write
	OEXEC   uint8 = 3  // execute (== read but check execute permission)
	OTRUNC  uint8 = 16 // or'ed in (except for exec), truncate file first
	OCEXEC  uint8 = 32 // or'ed in, close on exec
	ORCLOSE uint8 = 64 // or'ed in, remove on close
)

// Bits in Stat.Mode. The high byte mirrors the qid type bits; the low
// bits follow the unix permission model, with the read/write/execute
// triad replicated in the owner, group and other nibbles.
const (
	DMDIR    uint32 = 0x80000000 // mode bit for directories
	DMAPPEND uint32 = 0x40000000 // mode bit for append only files
	DMEXCL   uint32 = 0x20000000 // mode bit for exclusive use files
	DMMOUNT  uint32 = 0x10000000 // mode bit for mounted channel
	DMAUTH   uint32 = 0x08000000 // mode bit for authentication file
	DMTMP    uint32 = 0x04000000 // mode bit for non-backed-up file

	DMSYMLINK   uint32 = 0x02000000 // 9P2000.u
	DMDEVICE    uint32 = 0x00800000 // 9P2000.u
	DMNAMEDPIPE uint32 = 0x00200000 // 9P2000.u
	DMSOCKET    uint32 = 0x00100000 // 9P2000.u
	DMSETUID    uint32 = 0x00080000 // 9P2000.u
	DMSETGID    uint32 = 0x00040000 // 9P2000.u

	DMREAD  uint32 = 0x4 // mode bit for read permission
	DMWRITE uint32 = 0x2 // mode bit for write permission
	DMEXEC  uint32 = 0x1 // mode bit for execute permission
)
