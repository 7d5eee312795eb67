package command

import (
	"github.com/kprasad-dev/respkv/internal/common"
	"github.com/kprasad-dev/respkv/internal/resp"
)

// Info handles the additive INFO command, reporting process uptime,
// connected-client count, and host memory via gopsutil.
func Info(ctx *common.Context, args []string) resp.Value {
	if len(args) != 0 {
		return resp.NewSimpleError("Missing arguments! Correct usage INFO")
	}
	info := common.NewServerInfo()
	body := info.Print(ctx.StartTime, ctx.ConnectedClients())
	return resp.NewBulkString(body)
}
