package ninep

import "fmt"

// Per-message builders. Each appends one complete framed message to
// the writer's buffer and returns the framed bytes. A builder that
// fails validation of its string or walk arguments returns before
// reserving a header, so the writer is left unchanged. Rstat and Twstat
// check the stat fields while writing the record, after the header is
// reserved; a failure there is recorded in the writer's Err.

// Tversion appends a Tversion message. The tag of the written message
// is NoTag.
func (w *MessageWriter) Tversion(msize uint32, version string) ([]byte, error) {
	if len(version) > MaxVersionLen {
		return nil, errLongVersion
	}
	w.BeginMessage(MsgTversion, NoTag)
	w.WriteUint32(msize)
	w.WriteString(version)
	return w.EndMessage()
}

// Rversion appends an Rversion message. The tag of the written message
// is NoTag.
func (w *MessageWriter) Rversion(msize uint32, version string) ([]byte, error) {
	if len(version) > MaxVersionLen {
		return nil, errLongVersion
	}
	w.BeginMessage(MsgRversion, NoTag)
	w.WriteUint32(msize)
	w.WriteString(version)
	return w.EndMessage()
}

// Tauth appends a Tauth message. The uname and aname parameters must
// be no longer than MaxUidLen and MaxAttachLen bytes, respectively.
func (w *MessageWriter) Tauth(tag uint16, afid uint32, uname, aname string) ([]byte, error) {
	if len(uname) > MaxUidLen {
		return nil, errLongUsername
	}
	if len(aname) > MaxAttachLen {
		return nil, errLongAname
	}
	w.BeginMessage(MsgTauth, tag)
	w.WriteUint32(afid)
	w.WriteString(uname)
	w.WriteString(aname)
	return w.EndMessage()
}

// Rauth appends an Rauth message.
func (w *MessageWriter) Rauth(tag uint16, aqid Qid) ([]byte, error) {
	w.BeginMessage(MsgRauth, tag)
	w.WriteQid(aqid)
	return w.EndMessage()
}

// Tattach appends a Tattach message. If the client does not want to
// authenticate, afid should be NoFid.
func (w *MessageWriter) Tattach(tag uint16, fid, afid uint32, uname, aname string) ([]byte, error) {
	if len(uname) > MaxUidLen {
		return nil, errLongUsername
	}
	if len(aname) > MaxAttachLen {
		return nil, errLongAname
	}
	w.BeginMessage(MsgTattach, tag)
	w.WriteUint32(fid)
	w.WriteUint32(afid)
	w.WriteString(uname)
	w.WriteString(aname)
	return w.EndMessage()
}

// Rattach appends an Rattach message.
func (w *MessageWriter) Rattach(tag uint16, qid Qid) ([]byte, error) {
	w.BeginMessage(MsgRattach, tag)
	w.WriteQid(qid)
	return w.EndMessage()
}

// Rerror appends an Rerror message. Errfmt may be a printf-style
// format string, with values filled in from the argument list v. If
// the error string is longer than MaxErrorLen bytes, it is truncated.
func (w *MessageWriter) Rerror(tag uint16, errfmt string, v ...interface{}) ([]byte, error) {
	ename := errfmt
	if len(v) > 0 {
		ename = fmt.Sprintf(errfmt, v...)
	}
	if len(ename) > MaxErrorLen {
		ename = ename[:MaxErrorLen]
	}
	w.BeginMessage(MsgRerror, tag)
	w.WriteString(ename)
	return w.EndMessage()
}

// Tflush appends a Tflush message.
func (w *MessageWriter) Tflush(tag, oldtag uint16) ([]byte, error) {
	w.BeginMessage(MsgTflush, tag)
	w.WriteUint16(oldtag)
	return w.EndMessage()
}

// Rflush appends an Rflush message.
func (w *MessageWriter) Rflush(tag uint16) ([]byte, error) {
	w.BeginMessage(MsgRflush, tag)
	return w.EndMessage()
}

// Twalk appends a Twalk message. An error is returned if wname is
// longer than MaxWElem elements, or if any single element in wname is
// longer than MaxFilenameLen bytes.
func (w *MessageWriter) Twalk(tag uint16, fid, newfid uint32, wname ...string) ([]byte, error) {
	if len(wname) > MaxWElem {
		return nil, errMaxWElem
	}
	for _, v := range wname {
		if len(v) > MaxFilenameLen {
			return nil, errLongFilename
		}
	}
	w.BeginMessage(MsgTwalk, tag)
	w.WriteUint32(fid)
	w.WriteUint32(newfid)
	w.WriteWalkPath(wname...)
	return w.EndMessage()
}

// Rwalk appends an Rwalk message. An error is returned if wqid has
// more than MaxWElem elements.
func (w *MessageWriter) Rwalk(tag uint16, wqid ...Qid) ([]byte, error) {
	if len(wqid) > MaxWElem {
		return nil, errMaxWElem
	}
	w.BeginMessage(MsgRwalk, tag)
	w.WriteUint16(uint16(len(wqid)))
	for _, q := range wqid {
		w.WriteQid(q)
	}
	return w.EndMessage()
}

// Topen appends a Topen message.
func (w *MessageWriter) Topen(tag uint16, fid uint32, mode uint8) ([]byte, error) {
	w.BeginMessage(MsgTopen, tag)
	w.WriteUint32(fid)
	w.WriteUint8(mode)
	return w.EndMessage()
}

// Ropen appends an Ropen message.
func (w *MessageWriter) Ropen(tag uint16, qid Qid, iounit uint32) ([]byte, error) {
	w.BeginMessage(MsgRopen, tag)
	w.WriteQid(qid)
	w.WriteUint32(iounit)
	return w.EndMessage()
}

// Tcreate appends a Tcreate message.
func (w *MessageWriter) Tcreate(tag uint16, fid uint32, name string, perm uint32, mode uint8) ([]byte, error) {
	if len(name) > MaxFilenameLen {
		return nil, errLongFilename
	}
	w.BeginMessage(MsgTcreate, tag)
	w.WriteUint32(fid)
	w.WriteString(name)
	w.WriteUint32(perm)
	w.WriteUint8(mode)
	return w.EndMessage()
}

// Rcreate appends an Rcreate message.
func (w *MessageWriter) Rcreate(tag uint16, qid Qid, iounit uint32) ([]byte, error) {
	w.BeginMessage(MsgRcreate, tag)
	w.WriteQid(qid)
	w.WriteUint32(iounit)
	return w.EndMessage()
}

// Tread appends a Tread message.
func (w *MessageWriter) Tread(tag uint16, fid uint32, offset uint64, count uint32) ([]byte, error) {
	w.BeginMessage(MsgTread, tag)
	w.WriteUint32(fid)
	w.WriteUint64(offset)
	w.WriteUint32(count)
	return w.EndMessage()
}

// Rread appends an Rread message. The data is copied into the writer's
// buffer; the whole message must fit within the negotiated msize for
// the peer to accept it.
func (w *MessageWriter) Rread(tag uint16, data []byte) ([]byte, error) {
	w.BeginMessage(MsgRread, tag)
	w.WriteData(data)
	return w.EndMessage()
}

// Twrite appends a Twrite message.
func (w *MessageWriter) Twrite(tag uint16, fid uint32, offset uint64, data []byte) ([]byte, error) {
	w.BeginMessage(MsgTwrite, tag)
	w.WriteUint32(fid)
	w.WriteUint64(offset)
	w.WriteData(data)
	return w.EndMessage()
}

// Rwrite appends an Rwrite message.
func (w *MessageWriter) Rwrite(tag uint16, count uint32) ([]byte, error) {
	w.BeginMessage(MsgRwrite, tag)
	w.WriteUint32(count)
	return w.EndMessage()
}

// Tclunk appends a Tclunk message.
func (w *MessageWriter) Tclunk(tag uint16, fid uint32) ([]byte, error) {
	w.BeginMessage(MsgTclunk, tag)
	w.WriteUint32(fid)
	return w.EndMessage()
}

// Rclunk appends an Rclunk message.
func (w *MessageWriter) Rclunk(tag uint16) ([]byte, error) {
	w.BeginMessage(MsgRclunk, tag)
	return w.EndMessage()
}

// Tremove appends a Tremove message.
func (w *MessageWriter) Tremove(tag uint16, fid uint32) ([]byte, error) {
	w.BeginMessage(MsgTremove, tag)
	w.WriteUint32(fid)
	return w.EndMessage()
}

// Rremove appends an Rremove message.
func (w *MessageWriter) Rremove(tag uint16) ([]byte, error) {
	w.BeginMessage(MsgRremove, tag)
	return w.EndMessage()
}

// Tstat appends a Tstat message.
func (w *MessageWriter) Tstat(tag uint16, fid uint32) ([]byte, error) {
	w.BeginMessage(MsgTstat, tag)
	w.WriteUint32(fid)
	return w.EndMessage()
}

// Rstat appends an Rstat message. The stat record is preceded by the
// two-byte count of the bytes that follow it, as stat(9P) requires,
// even though the record carries its own size.
func (w *MessageWriter) Rstat(tag uint16, stat Stat) ([]byte, error) {
	w.BeginMessage(MsgRstat, tag)
	w.WriteUint16(StatSize(stat) + 2)
	w.WriteStat(stat)
	return w.EndMessage()
}

// Twstat appends a Twstat message.
func (w *MessageWriter) Twstat(tag uint16, fid uint32, stat Stat) ([]byte, error) {
	w.BeginMessage(MsgTwstat, tag)
	w.WriteUint32(fid)
	w.WriteStat(stat)
	return w.EndMessage()
}

// Rwstat appends an Rwstat message.
func (w *MessageWriter) Rwstat(tag uint16) ([]byte, error) {
	w.BeginMessage(MsgRwstat, tag)
	return w.EndMessage()
}

// Tsession appends a Tsession message, which asks the server to
// re-establish the session identified by key after a reconnect.
func (w *MessageWriter) Tsession(tag uint16, key [8]byte) ([]byte, error) {
	w.BeginMessage(MsgTsession, tag)
	if b := w.grow(len(key)); b != nil {
		copy(b, key[:])
	}
	return w.EndMessage()
}

// Rsession appends an Rsession message.
func (w *MessageWriter) Rsession(tag uint16) ([]byte, error) {
	w.BeginMessage(MsgRsession, tag)
	return w.EndMessage()
}

// Tsread appends a Tsread message, which reads a whole file named by a
// path relative to fid in a single request.
func (w *MessageWriter) Tsread(tag uint16, fid uint32, wname ...string) ([]byte, error) {
	if len(wname) > MaxWElem {
		return nil, errMaxWElem
	}
	for _, v := range wname {
		if len(v) > MaxFilenameLen {
			return nil, errLongFilename
		}
	}
	w.BeginMessage(MsgTsread, tag)
	w.WriteUint32(fid)
	w.WriteWalkPath(wname...)
	return w.EndMessage()
}

// Rsread appends an Rsread message. Its payload layout is identical to
// Rread.
func (w *MessageWriter) Rsread(tag uint16, data []byte) ([]byte, error) {
	w.BeginMessage(MsgRsread, tag)
	w.WriteData(data)
	return w.EndMessage()
}

// Tswrite appends a Tswrite message, which overwrites a whole file
// named by a path relative to fid in a single request.
func (w *MessageWriter) Tswrite(tag uint16, fid uint32, wname []string, data []byte) ([]byte, error) {
	if len(wname) > MaxWElem {
		return nil, errMaxWElem
	}
	for _, v := range wname {
		if len(v) > MaxFilenameLen {
			return nil, errLongFilename
		}
	}
	w.BeginMessage(MsgTswrite, tag)
	w.WriteUint32(fid)
	w.WriteWalkPath(wname...)
	w.WriteData(data)
	return w.EndMessage()
}

// Rswrite appends an Rswrite message. Its payload layout is identical
// to Rwrite.
func (w *MessageWriter) Rswrite(tag uint16, count uint32) ([]byte, error) {
	w.BeginMessage(MsgRswrite, tag)
	w.WriteUint32(count)
	return w.EndMessage()
}
