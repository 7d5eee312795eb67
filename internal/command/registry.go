// Package command implements the command registry and dispatcher: an
// uppercase-name-to-handler map looked up case-insensitively, executed under
// the server's single exclusive lock.
package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/kprasad-dev/respkv/internal/common"
	"github.com/kprasad-dev/respkv/internal/resp"
)

// Handler processes one command's arguments (the command name already
// stripped) against ctx and returns the reply to send back.
type Handler func(ctx *common.Context, args []string) resp.Value

// Registry maps command names to handlers.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry builds the registry with every command this server supports.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[string]Handler)}
	r.handlers["PING"] = Ping
	r.handlers["ECHO"] = Echo
	r.handlers["SET"] = Set
	r.handlers["GET"] = Get
	r.handlers["KEYS"] = Keys
	r.handlers["TYPE"] = Type
	r.handlers["XADD"] = XAdd
	r.handlers["XRANGE"] = XRange
	r.handlers["XREAD"] = XRead
	r.handlers["CONFIG"] = Config
	r.handlers["INFO"] = Info
	return r
}

// Dispatch looks up and runs the handler named by frame, an Array of
// BulkString/SimpleString arguments with the command name first. Unknown
// commands never abort the connection; they produce a SimpleError reply.
func (r *Registry) Dispatch(ctx *common.Context, frame resp.Value) resp.Value {
	args, err := resp.AsStrings(frame)
	if err != nil || len(args) == 0 {
		return resp.NewSimpleError("ERR protocol error")
	}

	name := strings.ToUpper(args[0])
	handler, ok := r.handlers[name]
	if !ok {
		return resp.NewSimpleError(fmt.Sprintf("ERR unknown command '%s'", args[0]))
	}

	ctx.Mu.Lock()
	defer ctx.Mu.Unlock()
	return handler(ctx, args[1:])
}

func now() time.Time {
	return time.Now()
}

func strUpper(s string) string {
	return strings.ToUpper(s)
}
