package ninep

// A DirListingWriter encodes the portion of a directory listing that
// falls within the offset and count window of a Tread request on a
// directory.
//
// A directory read returns a whole number of stat records. The writer
// measures how much data it would have encoded until it reaches the
// requested offset; only after that are entries actually appended,
// until count bytes have been written. Entries are never split: one
// that straddles the offset is skipped entirely, and one that would
// exceed the remaining count ends the listing.
//
// The writer does not own iteration. The caller feeds entries in
// order, stopping when Encode returns false or the listing is
// exhausted:
//
//	dw := NewDirListingWriter(w, req.Count, req.Offset)
//	for _, stat := range entries {
//		if !dw.Encode(stat) {
//			break
//		}
//	}
type DirListingWriter struct {
	w         *MessageWriter
	offset    uint64
	count     uint32
	traversed uint64
	encoded   uint32
}

// NewDirListingWriter returns a writer that appends to w no more than
// count bytes of stat records logically positioned after offset bytes
// of the whole listing.
func NewDirListingWriter(w *MessageWriter, count uint32, offset uint64) *DirListingWriter {
	return &DirListingWriter{w: w, offset: offset, count: count}
}

// Encode appends stat to the output if its full extent lies within the
// window. It returns false once no further entries can fit.
func (d *DirListingWriter) Encode(stat Stat) bool {
	size := uint64(StatSize(stat)) + 2
	if d.traversed < d.offset {
		// Entries before (or straddling) the offset are skipped
		// whole; directory seeks must land on record boundaries.
		d.traversed += size
		return true
	}
	if uint64(d.encoded)+size > uint64(d.count) {
		return false
	}
	d.w.WriteStat(stat)
	if d.w.Err() != nil {
		return false
	}
	d.traversed += size
	d.encoded += uint32(size)
	return true
}

// BytesTraversed returns the number of listing bytes seen so far,
// including entries skipped before the offset.
func (d *DirListingWriter) BytesTraversed() uint64 { return d.traversed }

// BytesEncoded returns the number of bytes appended to the output.
func (d *DirListingWriter) BytesEncoded() uint32 { return d.encoded }
