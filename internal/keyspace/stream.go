package keyspace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kprasad-dev/respkv/internal/resp"
)

// Common errors surfaced as SimpleError replies by the command layer.
var (
	ErrNotAStream    = errors.New("Not a stream")
	ErrBadID         = errors.New("The ID must have both values as integers! Example: 1-1")
	ErrIDNotGreater  = errors.New("ERR The ID specified in XADD must be greater than 0-0")
	ErrIDTooSmall    = errors.New("ERR The ID specified in XADD is equal or smaller than the target stream top item")
)

// id is a stream entry's compound identifier, ordered lexicographically by
// (ms, seq).
type id struct {
	ms, seq int64
}

func (a id) less(b id) bool {
	if a.ms != b.ms {
		return a.ms < b.ms
	}
	return a.seq < b.seq
}

func (a id) lessOrEqual(b id) bool {
	return a == b || a.less(b)
}

func (a id) String() string {
	return fmt.Sprintf("%d-%d", a.ms, a.seq)
}

// resolveAppendID turns an XADD id_spec into a concrete (ms, seq) pair
// given the stream's current last entry (zero value if the stream is new).
func resolveAppendID(spec string, haveLast bool, last id, now time.Time) (id, error) {
	if spec == "*" {
		return id{ms: now.UnixMilli(), seq: 0}, nil
	}
	parts := strings.SplitN(spec, "-", 2)
	if len(parts) == 1 {
		// A bare number without a dash uses current wall-clock time, same
		// as "*" alone; the literal digits are not otherwise meaningful.
		if _, err := strconv.ParseInt(parts[0], 10, 64); err != nil {
			return id{}, ErrBadID
		}
		return id{ms: now.UnixMilli(), seq: 0}, nil
	}
	ms, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return id{}, ErrBadID
	}
	if parts[1] == "*" {
		def := int64(0)
		if ms <= 0 {
			def = 1
		}
		seq := def
		if haveLast && last.ms == ms {
			seq = last.seq + 1
		}
		return id{ms: ms, seq: seq}, nil
	}
	seq, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return id{}, ErrBadID
	}
	return id{ms: ms, seq: seq}, nil
}

// StreamAppend implements XADD. fields holds the entry's name/value pairs in
// insertion order; the caller checks the even arity of the raw arguments
// before building them.
func (k *Keyspace) StreamAppend(key, idSpec string, fields []resp.Field, now time.Time) (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	c, ok := k.get(key, now)
	if ok && c.kind != KindStream {
		return "", ErrNotAStream
	}

	haveLast := ok && len(c.stream) > 0
	var last id
	if haveLast {
		l := c.stream[len(c.stream)-1]
		last = id{ms: l.MS, seq: l.Seq}
	}

	newID, err := resolveAppendID(idSpec, haveLast, last, now)
	if err != nil {
		return "", err
	}
	if newID == (id{}) {
		return "", ErrIDNotGreater
	}
	if haveLast && newID.lessOrEqual(last) {
		return "", ErrIDTooSmall
	}

	entry := resp.StreamEntry{MS: newID.ms, Seq: newID.seq, Fields: fields}
	if !ok {
		c = &cell{kind: KindStream}
		k.cells[key] = c
	}
	c.stream = append(c.stream, entry)
	return newID.String(), nil
}

// parseBound parses an XRANGE bound: "-" (open-below), "+" (open-above), or
// a literal "ms-seq" id. open is true for the open sentinels.
func parseBound(s string) (bound id, open bool, err error) {
	if s == "-" || s == "+" {
		return id{}, true, nil
	}
	parts := strings.SplitN(s, "-", 2)
	ms, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return id{}, false, ErrBadID
	}
	seq := int64(0)
	if len(parts) == 2 {
		seq, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return id{}, false, ErrBadID
		}
	}
	return id{ms: ms, seq: seq}, false, nil
}

// StreamRange implements XRANGE's inclusive-both-bounds semantics.
func (k *Keyspace) StreamRange(key, lo, hi string, now time.Time) ([]resp.StreamEntry, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	c, ok := k.get(key, now)
	if !ok {
		return nil, false, nil
	}
	if c.kind != KindStream {
		return nil, true, ErrNotAStream
	}

	loBound, loOpen, err := parseBound(lo)
	if err != nil {
		return nil, true, err
	}
	hiBound, hiOpen, err := parseBound(hi)
	if err != nil {
		return nil, true, err
	}

	var out []resp.StreamEntry
	for _, e := range c.stream {
		eid := id{ms: e.MS, seq: e.Seq}
		if !loOpen && (eid.ms < loBound.ms || (eid.ms == loBound.ms && eid.seq < loBound.seq)) {
			continue
		}
		if !hiOpen && (eid.ms > hiBound.ms || (eid.ms == hiBound.ms && eid.seq > hiBound.seq)) {
			continue
		}
		out = append(out, e)
	}
	return out, true, nil
}

// StreamReadExact implements XREAD's exact-id-match lookup: the single
// entry whose id equals want exactly, or ok=false if no such
// entry (or no such key) exists.
func (k *Keyspace) StreamReadExact(key, want string, now time.Time) (resp.StreamEntry, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	c, ok := k.get(key, now)
	if !ok {
		return resp.StreamEntry{}, false, nil
	}
	if c.kind != KindStream {
		return resp.StreamEntry{}, false, ErrNotAStream
	}
	wantID, _, err := parseBound(want)
	if err != nil {
		return resp.StreamEntry{}, false, err
	}
	for _, e := range c.stream {
		if e.MS == wantID.ms && e.Seq == wantID.seq {
			return e, true, nil
		}
	}
	return resp.StreamEntry{}, false, nil
}
