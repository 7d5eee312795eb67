package command

import (
	"github.com/kprasad-dev/respkv/internal/common"
	"github.com/kprasad-dev/respkv/internal/resp"
)

// Ping handles the PING command.
func Ping(ctx *common.Context, args []string) resp.Value {
	if len(args) > 0 {
		return resp.NewSimpleError("Missing arguments! Correct usage PING")
	}
	return resp.NewSimpleString("PONG")
}

// Echo handles the ECHO command.
func Echo(ctx *common.Context, args []string) resp.Value {
	if len(args) != 1 {
		return resp.NewSimpleError("Missing arguments! Correct usage ECHO <message>")
	}
	return resp.NewBulkString(args[0])
}
