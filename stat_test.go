package ninep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The size field of every encoded stat equals the byte length of the
// record minus the two size bytes themselves.
func TestStatSelfSize(t *testing.T) {
	for _, s := range []Stat{
		testStat(),
		{Name: []byte{}, UID: []byte{}, GID: []byte{}, MUID: []byte{}},
		{Name: []byte("x"), UID: []byte("u"), GID: []byte("g"), MUID: []byte("m")},
	} {
		record := encodeStat(t, s)
		assert.Equal(t, len(record)-2, int(guint16(record[:2])))
		assert.Equal(t, int(StatSize(s))+2, len(record))
	}
}

func TestStatRoundTrip(t *testing.T) {
	s := testStat()
	want := s
	want.Size = StatSize(s)

	got, err := NewReader(encodeStat(t, s)).ReadStat()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// A stat whose declared size extends past the available payload must
// not be readable.
func TestStatLyingSize(t *testing.T) {
	record := encodeStat(t, testStat())
	record[0] = byte(len(record)) // larger than the bytes that follow

	_, err := NewReader(record).ReadStat()
	assert.Equal(t, ErrNotEnoughData, err)
}

func TestStatTruncated(t *testing.T) {
	record := encodeStat(t, testStat())
	for _, n := range []int{0, 1, 2, 10, len(record) - 1} {
		_, err := NewReader(record[:n]).ReadStat()
		assert.Equal(t, ErrNotEnoughData, err, "%d bytes", n)
	}
}

func TestWriteStatLimits(t *testing.T) {
	w := NewMessageWriter(make([]byte, 4096))
	s := testStat()
	s.Name = make([]byte, MaxFilenameLen+1)
	w.WriteStat(s)
	assert.Equal(t, errLongFilename, w.Err())

	w.Reset(make([]byte, 4096))
	s = testStat()
	s.GID = make([]byte, MaxUidLen+1)
	w.WriteStat(s)
	assert.Equal(t, errLongUsername, w.Err())
}
