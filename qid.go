package ninep

import "fmt"

// A QidType represents the type of a file (directory, etc.),
// represented as a bit vector corresponding to the high 8 bits of the
// file's mode word.
type QidType uint8

const (
	QTDIR    QidType = 0x80 // directories
	QTAPPEND QidType = 0x40 // append only files
	QTEXCL   QidType = 0x20 // exclusive use files
	QTMOUNT  QidType = 0x10 // mounted channel
	QTAUTH   QidType = 0x08 // authentication file (afid)
	QTTMP    QidType = 0x04 // non-backed-up file
	QTLINK   QidType = 0x02 // symbolic link (9P2000.u)
	QTFILE   QidType = 0x00
)

// A Qid represents the server's unique identification for the file
// being accessed: two files on the same server hierarchy are the same
// if and only if their qids are the same.
type Qid struct {
	// Type of the file the qid refers to.
	Type QidType

	// Version is a version number for a file; typically, it is
	// incremented every time a file is modified.
	Version uint32

	// Path is an integer unique among all files in the hierarchy. If
	// a file is deleted and recreated with the same name in the same
	// directory, the old and new path components of the qids should
	// be different.
	Path uint64
}

func (q Qid) String() string {
	return fmt.Sprintf("type=%d ver=%d path=%x", q.Type, q.Version, q.Path)
}
