package ninep

import (
	"encoding/binary"
	"io"
	"math"
)

// A MessageWriter builds framed 9P messages into a caller-provided
// buffer. The buffer is borrowed, never grown; once it is full, the
// writer records io.ErrShortBuffer and all further appends become
// no-ops. Multiple messages may be built back to back into the same
// buffer.
//
// A message is built by calling BeginMessage, appending its fields,
// and calling EndMessage, which back-patches the size field of the
// reserved header. The per-message builder methods (Tversion, Rwalk,
// and so on) package this sequence up for every message type.
type MessageWriter struct {
	buf   []byte
	n     int
	start int
	err   error
}

// NewMessageWriter returns a MessageWriter appending to the front of buf.
func NewMessageWriter(buf []byte) *MessageWriter {
	return &MessageWriter{buf: buf}
}

// Reset discards any written data and restarts the writer on buf.
func (w *MessageWriter) Reset(buf []byte) {
	w.buf = buf
	w.n = 0
	w.start = 0
	w.err = nil
}

// Err returns the first error encountered while appending.
func (w *MessageWriter) Err() error { return w.err }

// Len returns the number of bytes written so far.
func (w *MessageWriter) Len() int { return w.n }

// Bytes returns everything written so far. The slice aliases the
// writer's buffer.
func (w *MessageWriter) Bytes() []byte { return w.buf[:w.n] }

func (w *MessageWriter) grow(n int) []byte {
	if w.err != nil {
		return nil
	}
	if len(w.buf)-w.n < n {
		w.err = io.ErrShortBuffer
		return nil
	}
	b := w.buf[w.n : w.n+n]
	w.n += n
	return b
}

func (w *MessageWriter) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *MessageWriter) WriteUint8(v uint8) {
	if b := w.grow(1); b != nil {
		b[0] = v
	}
}

func (w *MessageWriter) WriteUint16(v uint16) {
	if b := w.grow(2); b != nil {
		binary.LittleEndian.PutUint16(b, v)
	}
}

func (w *MessageWriter) WriteUint32(v uint32) {
	if b := w.grow(4); b != nil {
		binary.LittleEndian.PutUint32(b, v)
	}
}

func (w *MessageWriter) WriteUint64(v uint64) {
	if b := w.grow(8); b != nil {
		binary.LittleEndian.PutUint64(b, v)
	}
}

// WriteString appends a two-byte length followed by the bytes of s.
func (w *MessageWriter) WriteString(s string) {
	if len(s) > math.MaxUint16 {
		w.fail(errLongString)
		return
	}
	w.WriteUint16(uint16(len(s)))
	if b := w.grow(len(s)); b != nil {
		copy(b, s)
	}
}

// writeField appends a two-byte length followed by p. It is the
// []byte twin of WriteString, used for fields that arrive as slices.
func (w *MessageWriter) writeField(p []byte) {
	if len(p) > math.MaxUint16 {
		w.fail(errLongString)
		return
	}
	w.WriteUint16(uint16(len(p)))
	if b := w.grow(len(p)); b != nil {
		copy(b, p)
	}
}

// WriteData appends a four-byte length followed by p.
func (w *MessageWriter) WriteData(p []byte) {
	w.WriteUint32(uint32(len(p)))
	if b := w.grow(len(p)); b != nil {
		copy(b, p)
	}
}

// WriteQid appends the thirteen-byte encoding of q.
func (w *MessageWriter) WriteQid(q Qid) {
	if b := w.grow(QidLen); b != nil {
		b[0] = byte(q.Type)
		binary.LittleEndian.PutUint32(b[1:5], q.Version)
		binary.LittleEndian.PutUint64(b[5:13], q.Path)
	}
}

// WriteStat appends the encoding of s. The size field is computed from
// the other fields with StatSize; the Size member of s is ignored.
func (w *MessageWriter) WriteStat(s Stat) {
	if len(s.Name) > MaxFilenameLen {
		w.fail(errLongFilename)
		return
	}
	if len(s.UID) > MaxUidLen || len(s.GID) > MaxUidLen || len(s.MUID) > MaxUidLen {
		w.fail(errLongUsername)
		return
	}
	w.WriteUint16(StatSize(s))
	w.WriteUint16(s.Type)
	w.WriteUint32(s.Dev)
	w.WriteQid(s.Qid)
	w.WriteUint32(s.Mode)
	w.WriteUint32(s.Atime)
	w.WriteUint32(s.Mtime)
	w.WriteUint64(s.Length)
	w.writeField(s.Name)
	w.writeField(s.UID)
	w.writeField(s.GID)
	w.writeField(s.MUID)
}

// WriteWalkPath appends a two-byte element count followed by the
// elements themselves. Paths longer than MaxWElem elements or with an
// element longer than MaxFilenameLen bytes are rejected.
func (w *MessageWriter) WriteWalkPath(wname ...string) {
	if len(wname) > MaxWElem {
		w.fail(errMaxWElem)
		return
	}
	for _, v := range wname {
		if len(v) > MaxFilenameLen {
			w.fail(errLongFilename)
			return
		}
	}
	w.WriteUint16(uint16(len(wname)))
	for _, v := range wname {
		w.WriteString(v)
	}
}

// BeginMessage reserves a header for a message of the given type and
// tag. The size field is written by EndMessage.
func (w *MessageWriter) BeginMessage(mtype uint8, tag uint16) {
	w.start = w.n
	if b := w.grow(HeaderSize); b != nil {
		binary.LittleEndian.PutUint32(b[:4], 0)
		b[4] = mtype
		binary.LittleEndian.PutUint16(b[5:7], tag)
	}
}

// EndMessage back-patches the size field of the header reserved by the
// matching BeginMessage and returns the framed message. The returned
// slice aliases the writer's buffer and is decodable by ParseHeader
// followed by ParseRequest or ParseResponse.
func (w *MessageWriter) EndMessage() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	b := w.buf[w.start:w.n]
	binary.LittleEndian.PutUint32(b[:4], uint32(len(b)))
	return b, nil
}
