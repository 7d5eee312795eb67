package command

import (
	"fmt"

	"github.com/kprasad-dev/respkv/internal/common"
	"github.com/kprasad-dev/respkv/internal/resp"
)

// Config handles CONFIG GET <key>, the only subcommand in the closed table.
func Config(ctx *common.Context, args []string) resp.Value {
	if len(args) != 2 || strUpper(args[0]) != "GET" {
		return resp.NewSimpleError("Missing arguments! Correct usage CONFIG GET <parameter>")
	}

	key := args[1]
	value, ok := ctx.Config.Get(key)
	if !ok {
		return resp.NewSimpleError(fmt.Sprintf("ERR unknown configuration parameter '%s'", key))
	}

	switch strUpper(key) {
	case "DIR":
		return resp.NewArray(resp.NewSimpleString("dir"), resp.NewSimpleString(value))
	case "DBFILENAME":
		return resp.NewSimpleString(value)
	default:
		return resp.NewSimpleString(value)
	}
}
