// Package server implements the TCP accept loop and per-connection command
// loop: C5 in the component design, wired to the command registry and the
// shared keyspace context.
package server

import (
	"errors"
	"io"
	"net"
	"sync"
	"sync/atomic"

	"github.com/kprasad-dev/respkv/internal/command"
	"github.com/kprasad-dev/respkv/internal/common"
	"github.com/kprasad-dev/respkv/internal/resp"
)

// Server owns a listener and the registry/context pair every connection
// dispatches against.
type Server struct {
	logger   *common.Logger
	registry *command.Registry
	ctx      *common.Context

	listener net.Listener
	wg       sync.WaitGroup

	connCount int32
}

// New builds a Server bound to ctx and logger. Call Serve to start
// accepting connections on addr.
func New(ctx *common.Context, logger *common.Logger) *Server {
	return &Server{
		logger:   logger,
		registry: command.NewRegistry(),
		ctx:      ctx,
	}
}

// Serve binds addr and accepts connections until the listener is closed by
// Shutdown. Any other Accept error is logged and accepting continues.
func (s *Server) Serve(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = ln
	s.logger.Info("listening on %s\n", addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.logger.Info("listener closed\n")
				s.wg.Wait()
				return nil
			}
			s.logger.Warn("accept error: %v\n", err)
			continue
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConnection(conn)
		}()
	}
}

// Shutdown closes the listener and every tracked connection, then waits for
// in-flight connection goroutines to return.
func (s *Server) Shutdown() {
	if s.listener != nil {
		s.listener.Close()
	}
	s.ctx.CloseAllConnections()
	s.wg.Wait()
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	id := atomic.AddInt32(&s.connCount, 1)
	s.ctx.AddConn(conn)
	defer s.ctx.RemoveConn(conn)

	s.logger.Info("[%d] accepted connection from %s\n", id, conn.RemoteAddr())
	defer s.logger.Info("[%d] closed connection from %s\n", id, conn.RemoteAddr())

	buf := make([]byte, 0, 4096)
	chunk := make([]byte, 4096)

	for {
		frame, consumed, err := resp.Decode(buf)
		if err == nil {
			buf = buf[consumed:]
			reply := s.registry.Dispatch(s.ctx, frame)
			if _, werr := conn.Write(resp.Encode(reply)); werr != nil {
				s.logger.Warn("[%d] write error: %v\n", id, werr)
				return
			}
			continue
		}
		if !errors.Is(err, resp.ErrIncomplete) {
			s.logger.Warn("[%d] protocol error: %v\n", id, err)
			conn.Write(resp.Encode(resp.NewSimpleError("protocol error")))
			return
		}

		n, rerr := conn.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if rerr != nil {
			if !errors.Is(rerr, io.EOF) {
				s.logger.Warn("[%d] read error: %v\n", id, rerr)
			}
			return
		}
	}
}
