package server

import (
	"bufio"
	"net"
	"testing"
	"time"

	"github.com/kprasad-dev/respkv/internal/command"
	"github.com/kprasad-dev/respkv/internal/common"
	"github.com/kprasad-dev/respkv/internal/keyspace"
	"github.com/kprasad-dev/respkv/internal/resp"
	"github.com/stretchr/testify/require"
)

// newPipedServer returns a Server driving one end of a net.Pipe while the
// test holds the other end, exercising handleConnection directly without a
// real socket.
func newPipedServer(t *testing.T) (*Server, net.Conn) {
	t.Helper()
	cfg := common.DefaultConfig()
	ctx := common.NewContext(keyspace.New(), cfg)
	s := &Server{
		logger:   common.NewLogger(),
		registry: command.NewRegistry(),
		ctx:      ctx,
	}

	clientConn, serverConn := net.Pipe()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.handleConnection(serverConn)
	}()
	t.Cleanup(func() {
		clientConn.Close()
	})
	return s, clientConn
}

func TestServerPingPong(t *testing.T) {
	_, conn := newPipedServer(t)

	conn.SetDeadline(time.Now().Add(5 * time.Second))
	_, err := conn.Write([]byte("*1\r\n$4\r\nPING\r\n"))
	require.NoError(t, err)

	reader := bufio.NewReader(conn)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "+PONG\r\n", line)
}

func TestServerHandlesSplitWrites(t *testing.T) {
	_, conn := newPipedServer(t)
	conn.SetDeadline(time.Now().Add(5 * time.Second))

	full := string(resp.Encode(resp.NewArray(resp.NewBulkString("PING"))))
	go func() {
		for i := 0; i < len(full); i++ {
			conn.Write([]byte{full[i]})
		}
	}()

	reader := bufio.NewReader(conn)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "+PONG\r\n", line)
}
