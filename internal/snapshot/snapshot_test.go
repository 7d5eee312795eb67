package snapshot

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func lengthPrefixed(s string) []byte {
	return append([]byte{byte(len(s))}, []byte(s)...)
}

func buildSnapshot(records [][]byte) []byte {
	buf := []byte(magic)
	buf = append(buf, opDatabase, byte(len(records)), 0x00)
	for _, rec := range records {
		buf = append(buf, rec...)
	}
	buf = append(buf, opEOF)
	return buf
}

func stringRecord(key, value string) []byte {
	rec := []byte{valueTypeString}
	rec = append(rec, lengthPrefixed(key)...)
	rec = append(rec, lengthPrefixed(value)...)
	return rec
}

func expiringRecordSecs(key, value string, secs uint32) []byte {
	raw := make([]byte, 4)
	binary.LittleEndian.PutUint32(raw, secs)
	rec := append([]byte{opExpireSecs}, raw...)
	rec = append(rec, valueTypeString)
	rec = append(rec, lengthPrefixed(key)...)
	rec = append(rec, lengthPrefixed(value)...)
	return rec
}

func TestParseBasicRecord(t *testing.T) {
	data := buildSnapshot([][]byte{stringRecord("foo", "bar")})
	entries, err := Parse(data, time.Unix(0, 0))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "foo", entries[0].Key)
	require.Equal(t, "bar", entries[0].Value)
	require.Nil(t, entries[0].ExpiresAt)
}

func TestParseDropsExpiredEntry(t *testing.T) {
	data := buildSnapshot([][]byte{expiringRecordSecs("k", "v", 100)})
	entries, err := Parse(data, time.Unix(200, 0))
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestParseKeepsUnexpiredEntry(t *testing.T) {
	data := buildSnapshot([][]byte{expiringRecordSecs("k", "v", 1000)})
	entries, err := Parse(data, time.Unix(200, 0))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].ExpiresAt)
}

func TestParseMissingMagic(t *testing.T) {
	_, err := Parse([]byte("NOTREDIS"), time.Unix(0, 0))
	require.ErrorIs(t, err, ErrMissingMagic)
}

func TestParseTooShort(t *testing.T) {
	_, err := Parse([]byte("RE"), time.Unix(0, 0))
	require.ErrorIs(t, err, ErrTooShort)
}

func TestParseUnknownValueType(t *testing.T) {
	rec := []byte{0x01}
	rec = append(rec, lengthPrefixed("k")...)
	rec = append(rec, lengthPrefixed("v")...)
	data := buildSnapshot([][]byte{rec})
	_, err := Parse(data, time.Unix(0, 0))
	require.ErrorIs(t, err, ErrUnknownValueType)
}

func TestParseTruncatedRecord(t *testing.T) {
	data := []byte(magic)
	data = append(data, opDatabase, 1, 0x00, valueTypeString, 0x03, 'a', 'b')
	_, err := Parse(data, time.Unix(0, 0))
	require.ErrorIs(t, err, ErrTruncatedRecord)
}

func TestParseMultipleRecords(t *testing.T) {
	data := buildSnapshot([][]byte{
		stringRecord("a", "1"),
		stringRecord("b", "2"),
	})
	entries, err := Parse(data, time.Unix(0, 0))
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
