package ninep

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statOfEncodedLen returns a Stat whose full encoding, including the
// two size bytes, occupies exactly n bytes. The smallest possible
// record (empty name and identifiers) is 49 bytes.
func statOfEncodedLen(t *testing.T, n int) Stat {
	t.Helper()
	require.GreaterOrEqual(t, n, 49)
	s := Stat{
		Qid:  Qid{Type: QTFILE, Version: 1, Path: uint64(n)},
		Mode: 0644,
		Name: []byte(strings.Repeat("a", n-49)),
		UID:  []byte{},
		GID:  []byte{},
		MUID: []byte{},
	}
	require.Equal(t, n, int(StatSize(s))+2)
	return s
}

func encodeStat(t *testing.T, s Stat) []byte {
	t.Helper()
	w := NewMessageWriter(make([]byte, MaxStatLen))
	w.WriteStat(s)
	require.NoError(t, w.Err())
	return w.Bytes()
}

func TestDirWindowMiddle(t *testing.T) {
	stats := []Stat{
		statOfEncodedLen(t, 50),
		statOfEncodedLen(t, 60),
		statOfEncodedLen(t, 70),
	}

	w := NewMessageWriter(make([]byte, 512))
	dw := NewDirListingWriter(w, 60, 50)
	for _, s := range stats {
		if !dw.Encode(s) {
			break
		}
	}

	assert.Equal(t, uint64(110), dw.BytesTraversed())
	assert.Equal(t, uint32(60), dw.BytesEncoded())
	assert.Equal(t, encodeStat(t, stats[1]), w.Bytes())
}

func TestDirWindowWholeListing(t *testing.T) {
	stats := []Stat{
		statOfEncodedLen(t, 50),
		statOfEncodedLen(t, 60),
		statOfEncodedLen(t, 70),
	}

	w := NewMessageWriter(make([]byte, 512))
	dw := NewDirListingWriter(w, 200, 0)
	for _, s := range stats {
		require.True(t, dw.Encode(s))
	}

	assert.Equal(t, uint64(180), dw.BytesTraversed())
	assert.Equal(t, uint32(180), dw.BytesEncoded())

	// The output must be a decodable sequence of stat records.
	r := NewReader(w.Bytes())
	for _, s := range stats {
		want := s
		want.Size = StatSize(s)
		got, err := r.ReadStat()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, r.Remaining())
}

// An entry straddling the offset is skipped entirely, never split.
func TestDirWindowStraddle(t *testing.T) {
	w := NewMessageWriter(make([]byte, 512))
	dw := NewDirListingWriter(w, 200, 25)

	first := statOfEncodedLen(t, 50)
	second := statOfEncodedLen(t, 60)
	require.True(t, dw.Encode(first))
	assert.Equal(t, uint32(0), dw.BytesEncoded())
	require.True(t, dw.Encode(second))

	assert.Equal(t, uint64(110), dw.BytesTraversed())
	assert.Equal(t, uint32(60), dw.BytesEncoded())
	assert.Equal(t, encodeStat(t, second), w.Bytes())
}

// Encode reports no more room as soon as the next record does not fit
// whole.
func TestDirWindowStop(t *testing.T) {
	w := NewMessageWriter(make([]byte, 512))
	dw := NewDirListingWriter(w, 109, 0)

	require.True(t, dw.Encode(statOfEncodedLen(t, 50)))
	assert.False(t, dw.Encode(statOfEncodedLen(t, 60)))

	assert.Equal(t, uint64(50), dw.BytesTraversed())
	assert.Equal(t, uint32(50), dw.BytesEncoded())
}
