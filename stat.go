package ninep

import "fmt"

// A Stat describes a directory entry. It is contained in Rstat and
// Twstat messages; Tread requests on directories return a Stat
// structure for each directory entry.
//
// The Name, UID, GID and MUID fields of a decoded Stat alias the
// message buffer it was decoded from.
type Stat struct {
	// Size is the length (in bytes) of the remainder of the record,
	// not counting the two size bytes themselves. It is filled in
	// from the wire when decoding and computed from the other fields
	// when encoding.
	Size uint16

	// Type contains implementation-specific data that is outside the
	// scope of the 9P protocol.
	Type uint16

	// Dev contains implementation-specific data that is outside the
	// scope of the 9P protocol. In Plan 9, it holds an identifier for
	// the block device that stores the file.
	Dev uint32

	// Qid is the unique identifier of the file.
	Qid Qid

	// Mode contains the permissions and flags set for the file.
	Mode uint32

	// Atime is the last access time for the file, in seconds since the epoch.
	Atime uint32

	// Mtime is the last time the file was modified, in seconds since the epoch.
	Mtime uint32

	// Length is the length of the file in bytes.
	Length uint64

	Name []byte // file name; must be '/' if the file is the root directory
	UID  []byte // owner name
	GID  []byte // group name
	MUID []byte // name of the user who last modified the file
}

// StatSize returns the value of the size field for s: the encoded
// length of the stat record minus the two size bytes themselves.
func StatSize(s Stat) uint16 {
	n := statFixedSize - 2
	n += 2 + len(s.Name)
	n += 2 + len(s.UID)
	n += 2 + len(s.GID)
	n += 2 + len(s.MUID)
	return uint16(n)
}

func (s Stat) String() string {
	return fmt.Sprintf("type=%x dev=%x qid=%q mode=%o atime=%d mtime=%d "+
		"length=%d name=%q uid=%q gid=%q muid=%q", s.Type, s.Dev, s.Qid,
		s.Mode, s.Atime, s.Mtime, s.Length, s.Name, s.UID, s.GID, s.MUID)
}
