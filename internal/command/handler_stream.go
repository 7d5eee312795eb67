package command

import (
	"fmt"

	"github.com/kprasad-dev/respkv/internal/common"
	"github.com/kprasad-dev/respkv/internal/keyspace"
	"github.com/kprasad-dev/respkv/internal/resp"
)

// XAdd handles XADD <key> <id> <field> <value> [<field> <value> ...].
func XAdd(ctx *common.Context, args []string) resp.Value {
	if len(args) < 4 || len(args)%2 != 0 {
		return resp.NewSimpleError("Missing arguments! Correct usage XADD <key> <id> [<key>] [<value>]...")
	}

	key, id := args[0], args[1]
	tail := args[2:]
	fields := make([]resp.Field, 0, len(tail)/2)
	for i := 0; i < len(tail); i += 2 {
		fields = append(fields, resp.Field{Name: tail[i], Value: tail[i+1]})
	}

	newID, err := ctx.Keyspace.StreamAppend(key, id, fields, now())
	if err != nil {
		return errToReply(err)
	}
	return resp.NewBulkString(newID)
}

// XRange handles XRANGE <key> <start> <end>.
func XRange(ctx *common.Context, args []string) resp.Value {
	if len(args) != 3 {
		return resp.NewSimpleError("Missing arguments! Correct usage XRANGE <key> <start> <end>")
	}
	entries, found, err := ctx.Keyspace.StreamRange(args[0], args[1], args[2], now())
	if err != nil {
		return errToReply(err)
	}
	if !found {
		return resp.NewNullBulkString()
	}
	items := make([]resp.Value, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryProjection(e))
	}
	return resp.NewArray(items...)
}

// XRead handles XREAD <type> <key> <id>, where type must be STREAMS.
func XRead(ctx *common.Context, args []string) resp.Value {
	if len(args) != 3 {
		return resp.NewSimpleError("Missing arguments! Correct usage XREAD <type> <key> <id>")
	}
	if strUpper(args[0]) != "STREAMS" {
		return resp.NewSimpleError("Invalid type!")
	}
	entry, found, err := ctx.Keyspace.StreamReadExact(args[1], args[2], now())
	if err != nil {
		return errToReply(err)
	}
	if !found {
		return resp.NewNullBulkString()
	}
	return entryProjection(entry)
}

// entryProjection turns a stream entry into the Array(id, Array(field,
// value, field, value, ...)) shape the wire protocol carries.
func entryProjection(e resp.StreamEntry) resp.Value {
	fieldItems := make([]resp.Value, 0, len(e.Fields)*2)
	for _, f := range e.Fields {
		fieldItems = append(fieldItems, resp.NewBulkString(f.Name), resp.NewBulkString(f.Value))
	}
	return resp.NewArray(
		resp.NewBulkString(fmt.Sprintf("%d-%d", e.MS, e.Seq)),
		resp.NewArray(fieldItems...),
	)
}

func errToReply(err error) resp.Value {
	switch err {
	case keyspace.ErrNotAStream:
		return resp.NewSimpleError("Not a stream")
	case keyspace.ErrBadID:
		return resp.NewSimpleError("The ID must have both values as integers! Example: 1-1")
	case keyspace.ErrIDNotGreater:
		return resp.NewSimpleError(err.Error())
	case keyspace.ErrIDTooSmall:
		return resp.NewSimpleError(err.Error())
	default:
		return resp.NewSimpleError(fmt.Sprintf("ERR %v", err))
	}
}
