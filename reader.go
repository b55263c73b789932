package ninep

import "encoding/binary"

// Shorthand for parsing numbers. All integers in 9P are little-endian.
var (
	guint16 = binary.LittleEndian.Uint16
	guint32 = binary.LittleEndian.Uint32
	guint64 = binary.LittleEndian.Uint64
)

// A Reader is a cursor over a caller-provided message buffer. All
// variable-length values read from it alias the underlying buffer and
// remain valid only for as long as the buffer does; the Reader never
// copies.
//
// Every read fails with ErrNotEnoughData if the cursor has fewer
// remaining bytes than requested. After a failed read the cursor
// position is unspecified and the enclosing message decode must be
// abandoned.
type Reader struct {
	data []byte
	off  int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.off }

func (r *Reader) take(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, ErrNotEnoughData
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return guint16(b), nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return guint32(b), nil
}

func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return guint64(b), nil
}

// ReadString reads a string encoded as a two-byte length followed by
// that many bytes of UTF-8 text, with no trailing NUL. The returned
// slice aliases the underlying buffer.
func (r *Reader) ReadString() ([]byte, error) {
	n, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	return r.take(int(n))
}

// ReadData reads a raw data payload encoded as a four-byte length
// followed by that many bytes. The returned slice aliases the
// underlying buffer.
func (r *Reader) ReadData() ([]byte, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	// Compare before converting, so a hostile length cannot overflow
	// int on 32-bit platforms.
	if uint64(n) > uint64(r.Remaining()) {
		return nil, ErrNotEnoughData
	}
	return r.take(int(n))
}

// ReadQid reads the thirteen-byte encoding of a Qid.
func (r *Reader) ReadQid() (Qid, error) {
	b, err := r.take(QidLen)
	if err != nil {
		return Qid{}, err
	}
	return Qid{
		Type:    QidType(b[0]),
		Version: guint32(b[1:5]),
		Path:    guint64(b[5:13]),
	}, nil
}

// ReadStat reads a Stat record. The leading size field is accepted as
// given, but must not extend past the remaining payload; a record
// whose inner fields overrun the declared size fails with
// ErrNotEnoughData.
func (r *Reader) ReadStat() (Stat, error) {
	size, err := r.ReadUint16()
	if err != nil {
		return Stat{}, err
	}
	body, err := r.take(int(size))
	if err != nil {
		return Stat{}, err
	}

	br := Reader{data: body}
	s := Stat{Size: size}
	if s.Type, err = br.ReadUint16(); err != nil {
		return Stat{}, err
	}
	if s.Dev, err = br.ReadUint32(); err != nil {
		return Stat{}, err
	}
	if s.Qid, err = br.ReadQid(); err != nil {
		return Stat{}, err
	}
	if s.Mode, err = br.ReadUint32(); err != nil {
		return Stat{}, err
	}
	if s.Atime, err = br.ReadUint32(); err != nil {
		return Stat{}, err
	}
	if s.Mtime, err = br.ReadUint32(); err != nil {
		return Stat{}, err
	}
	if s.Length, err = br.ReadUint64(); err != nil {
		return Stat{}, err
	}
	if s.Name, err = br.ReadString(); err != nil {
		return Stat{}, err
	}
	if s.UID, err = br.ReadString(); err != nil {
		return Stat{}, err
	}
	if s.GID, err = br.ReadString(); err != nil {
		return Stat{}, err
	}
	if s.MUID, err = br.ReadString(); err != nil {
		return Stat{}, err
	}
	return s, nil
}

// ReadWalkPath reads a two-byte element count followed by that many
// strings. Paths longer than MaxWElem elements are rejected.
func (r *Reader) ReadWalkPath() (WalkPath, error) {
	count, err := r.ReadUint16()
	if err != nil {
		return WalkPath{}, err
	}
	if count > MaxWElem {
		return WalkPath{}, errMaxWElem
	}
	start := r.off
	for i := 0; i < int(count); i++ {
		if _, err := r.ReadString(); err != nil {
			return WalkPath{}, err
		}
	}
	return WalkPath{count: count, raw: r.data[start:r.off]}, nil
}
