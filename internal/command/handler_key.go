package command

import (
	"github.com/kprasad-dev/respkv/internal/common"
	"github.com/kprasad-dev/respkv/internal/resp"
)

// Keys handles the KEYS command (no pattern argument, per the closed
// command table).
func Keys(ctx *common.Context, args []string) resp.Value {
	if len(args) != 0 {
		return resp.NewSimpleError("Missing arguments! Correct usage KEYS")
	}
	names := ctx.Keyspace.Keys(now())
	items := make([]resp.Value, 0, len(names))
	for _, name := range names {
		items = append(items, resp.NewBulkString(name))
	}
	return resp.NewArray(items...)
}

// Type handles the TYPE command.
func Type(ctx *common.Context, args []string) resp.Value {
	if len(args) != 1 {
		return resp.NewSimpleError("Missing arguments! Correct usage TYPE <key>")
	}
	kind := ctx.Keyspace.Type(args[0], now())
	return resp.NewSimpleString(string(kind))
}
