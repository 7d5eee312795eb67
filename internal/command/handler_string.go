package command

import (
	"strconv"
	"time"

	"github.com/kprasad-dev/respkv/internal/common"
	"github.com/kprasad-dev/respkv/internal/resp"
)

// Set handles the SET command: "SET k v" or "SET k v PX n".
func Set(ctx *common.Context, args []string) resp.Value {
	if len(args) != 2 && len(args) != 4 {
		return resp.NewSimpleError("Missing arguments! Correct usage SET <key> <value> [PX <ms>]")
	}

	key, value := args[0], args[1]
	var ttl *time.Duration

	if len(args) == 4 {
		if strUpper(args[2]) != "PX" {
			return resp.NewSimpleError("Missing arguments! Correct usage SET <key> <value> [PX <ms>]")
		}
		ms, err := strconv.ParseInt(args[3], 10, 64)
		if err != nil {
			return resp.NewSimpleError("Missing arguments! Correct usage SET <key> <value> [PX <ms>]")
		}
		d := time.Duration(ms) * time.Millisecond
		ttl = &d
	}

	ctx.Keyspace.Set(key, value, ttl, now())
	return resp.NewSimpleString("OK")
}

// Get handles the GET command.
func Get(ctx *common.Context, args []string) resp.Value {
	if len(args) != 1 {
		return resp.NewSimpleError("Missing arguments! Correct usage GET <key>")
	}
	value, ok := ctx.Keyspace.Get(args[0], now())
	if !ok {
		return resp.NewNullBulkString()
	}
	return resp.NewBulkString(value)
}
