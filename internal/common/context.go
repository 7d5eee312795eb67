package common

import (
	"net"
	"sync"
	"time"

	"github.com/kprasad-dev/respkv/internal/keyspace"
)

// Context is the shared state every command handler operates on: the
// keyspace and the server's configuration. Handlers run with Mu held by the
// dispatcher, so fields reachable only through Context need no locking of
// their own; activeConns has its own lock because connection goroutines and
// Shutdown touch it outside of dispatch.
type Context struct {
	Mu sync.Mutex

	Keyspace *keyspace.Keyspace
	Config   *Config

	StartTime time.Time

	activeConnsMu sync.Mutex
	activeConns   map[net.Conn]struct{}
}

// NewContext builds a Context around an already-populated keyspace.
func NewContext(ks *keyspace.Keyspace, cfg *Config) *Context {
	return &Context{
		Keyspace:    ks,
		Config:      cfg,
		StartTime:   time.Now(),
		activeConns: make(map[net.Conn]struct{}),
	}
}

// AddConn registers a newly accepted connection.
func (c *Context) AddConn(conn net.Conn) {
	c.activeConnsMu.Lock()
	defer c.activeConnsMu.Unlock()
	c.activeConns[conn] = struct{}{}
}

// RemoveConn unregisters a connection that has finished serving.
func (c *Context) RemoveConn(conn net.Conn) {
	c.activeConnsMu.Lock()
	defer c.activeConnsMu.Unlock()
	delete(c.activeConns, conn)
}

// ConnectedClients reports the number of currently active connections.
func (c *Context) ConnectedClients() int {
	c.activeConnsMu.Lock()
	defer c.activeConnsMu.Unlock()
	return len(c.activeConns)
}

// CloseAllConnections forcibly closes every tracked connection, used during
// shutdown to unblock goroutines parked on a read.
func (c *Context) CloseAllConnections() {
	c.activeConnsMu.Lock()
	defer c.activeConnsMu.Unlock()
	for conn := range c.activeConns {
		conn.Close()
	}
}
