package keyspace

import (
	"testing"
	"time"

	"github.com/kprasad-dev/respkv/internal/resp"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	k := New()
	now := time.Unix(1000, 0)
	k.Set("k", "v", nil, now)
	v, ok := k.Get("k", now)
	require.True(t, ok)
	require.Equal(t, "v", v)
}

func TestLazyExpiry(t *testing.T) {
	k := New()
	now := time.Unix(1000, 0)
	ttl := 10 * time.Millisecond
	k.Set("k", "v", &ttl, now)

	_, ok := k.Get("k", now.Add(5*time.Millisecond))
	require.True(t, ok)

	_, ok = k.Get("k", now.Add(20*time.Millisecond))
	require.False(t, ok)

	require.Equal(t, KindNone, k.Type("k", now.Add(20*time.Millisecond)))
}

func TestTypeReporting(t *testing.T) {
	k := New()
	now := time.Unix(1000, 0)
	require.Equal(t, KindNone, k.Type("missing", now))

	k.Set("s", "v", nil, now)
	require.Equal(t, KindString, k.Type("s", now))

	_, err := k.StreamAppend("str", "1-1", []resp.Field{{Name: "a", Value: "1"}}, now)
	require.NoError(t, err)
	require.Equal(t, KindStream, k.Type("str", now))
}

func TestStreamAppendRejectsZeroID(t *testing.T) {
	k := New()
	now := time.Unix(1000, 0)
	_, err := k.StreamAppend("s", "0-0", []resp.Field{{Name: "a", Value: "1"}}, now)
	require.ErrorIs(t, err, ErrIDNotGreater)
}

func TestStreamMonotonicity(t *testing.T) {
	k := New()
	now := time.Unix(1000, 0)
	gotID, err := k.StreamAppend("s", "1-1", []resp.Field{{Name: "a", Value: "1"}}, now)
	require.NoError(t, err)
	require.Equal(t, "1-1", gotID)

	_, err = k.StreamAppend("s", "1-1", []resp.Field{{Name: "a", Value: "2"}}, now)
	require.ErrorIs(t, err, ErrIDTooSmall)

	_, err = k.StreamAppend("s", "0-0", nil, now)
	require.ErrorIs(t, err, ErrIDNotGreater)
}

func TestStreamAppendOnNonStreamIsRejected(t *testing.T) {
	k := New()
	now := time.Unix(1000, 0)
	k.Set("k", "v", nil, now)
	_, err := k.StreamAppend("k", "1-1", nil, now)
	require.ErrorIs(t, err, ErrNotAStream)
}

func TestXRangeInclusiveBothBounds(t *testing.T) {
	k := New()
	now := time.Unix(1000, 0)
	for _, entryID := range []string{"1-0", "2-0", "3-0"} {
		_, err := k.StreamAppend("s", entryID, []resp.Field{{Name: "f", Value: entryID}}, now)
		require.NoError(t, err)
	}

	entries, ok, err := k.StreamRange("s", "2-0", "3-0", now)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, entries, 2)
	require.Equal(t, int64(2), entries[0].MS)
	require.Equal(t, int64(3), entries[1].MS)

	all, ok, err := k.StreamRange("s", "-", "+", now)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, all, 3)
}

func TestXRangeAbsentKey(t *testing.T) {
	k := New()
	now := time.Unix(1000, 0)
	entries, ok, err := k.StreamRange("missing", "-", "+", now)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, entries)
}

func TestXReadExactMatch(t *testing.T) {
	k := New()
	now := time.Unix(1000, 0)
	_, err := k.StreamAppend("s", "1-1", []resp.Field{{Name: "a", Value: "1"}}, now)
	require.NoError(t, err)

	entry, ok, err := k.StreamReadExact("s", "1-1", now)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(1), entry.MS)

	_, ok, err = k.StreamReadExact("s", "1-2", now)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestKeysSnapshot(t *testing.T) {
	k := New()
	now := time.Unix(1000, 0)
	k.Set("a", "1", nil, now)
	k.Set("b", "2", nil, now)
	keys := k.Keys(now)
	require.ElementsMatch(t, []string{"a", "b"}, keys)
}

func TestRemove(t *testing.T) {
	k := New()
	now := time.Unix(1000, 0)
	k.Set("a", "1", nil, now)
	require.True(t, k.Remove("a", now))
	require.False(t, k.Remove("a", now))
}
