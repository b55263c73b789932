package ninep

import "bytes"

// A WalkPath is an ordered sequence of path name elements, at most
// MaxWElem long, as encoded in Twalk, Tsread and Tswrite messages. It
// is a view into the message buffer; element slices alias it.
type WalkPath struct {
	count uint16
	raw   []byte
}

// Len returns the number of path elements.
func (w WalkPath) Len() int { return int(w.count) }

// Elem returns the nth path element. Calling Elem with n outside
// [0, Len()) results in a run-time panic; a WalkPath produced by
// ReadWalkPath has had its bounds verified already.
func (w WalkPath) Elem(n int) []byte {
	if n < 0 || n >= int(w.count) {
		panic("walk element out of range")
	}
	offset := 0
	size := int(guint16(w.raw[offset : offset+2]))
	for i := 0; i < n; i++ {
		offset += size + 2
		size = int(guint16(w.raw[offset : offset+2]))
	}
	return w.raw[offset+2 : offset+2+size]
}

func (w WalkPath) String() string {
	var buf [MaxWElem][]byte
	elems := buf[:0]
	for i := 0; i < w.Len(); i++ {
		elems = append(elems, w.Elem(i))
	}
	return string(bytes.Join(elems, []byte("/")))
}
