package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shirou/gopsutil/v4/mem"
)

// ServerInfo holds the data reported by the INFO command, organized into
// categories the way the teacher's RedisInfo does.
type ServerInfo struct {
	server map[string]string
	memory map[string]string
}

// NewServerInfo creates an empty ServerInfo ready to be populated.
func NewServerInfo() *ServerInfo {
	return &ServerInfo{}
}

// Build populates the categories from the current process and host state.
func (info *ServerInfo) Build(startedAt time.Time, connectedClients int) {
	exePath, err := os.Executable()
	if err != nil {
		exePath = ""
	}
	info.server = map[string]string{
		"server_version": "v1.0.0",
		"process_id":     strconv.Itoa(os.Getpid()),
		"server_time":    fmt.Sprint(time.Now().UnixMicro()),
		"uptime_seconds": fmt.Sprintf("%d", int64(time.Since(startedAt).Seconds())),
		"server_path":    exePath,
		"connected_clients": strconv.Itoa(connectedClients),
	}

	var totalHostMemory uint64
	if vm, err := mem.VirtualMemory(); err == nil {
		totalHostMemory = vm.Total
	}
	info.memory = map[string]string{
		"total_system_memory": fmt.Sprintf("%d", totalHostMemory),
	}
}

func (info *ServerInfo) printCategory(header string, m map[string]string) string {
	s := fmt.Sprintf("# %s\n", header)
	for k, v := range m {
		s += fmt.Sprintf("%s:%s\n", k, v)
	}
	return s
}

// Print renders the full INFO reply body.
func (info *ServerInfo) Print(startedAt time.Time, connectedClients int) string {
	info.Build(startedAt, connectedClients)
	msg := info.printCategory("Server", info.server)
	msg += "\n"
	msg += info.printCategory("Memory", info.memory)
	return msg
}
