package ipc

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"os"
	"time"
)

// Server owns the control socket. It never accepts in the background:
// the daemon loop drains pending connections once per iteration via Poll,
// so commands are handled strictly in accept order with no overlap.
type Server struct {
	socketPath string
	listener   *net.UnixListener
}

// Listen binds the control socket. A socket file that still answers a
// connect probe means another instance owns it, which is fatal; a stale
// file left by a crashed instance is removed.
func Listen(socketPath string) (*Server, error) {
	if _, err := os.Stat(socketPath); err == nil {
		probe, err := net.DialTimeout("unix", socketPath, time.Second)
		if err == nil {
			probe.Close()
			return nil, fmt.Errorf("another glint instance is already running (socket %s is active)", socketPath)
		}
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	addr, err := net.ResolveUnixAddr("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("invalid socket path %s: %w", socketPath, err)
	}
	listener, err := net.ListenUnix("unix", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create control socket: %w", err)
	}
	if err := os.Chmod(socketPath, 0o600); err != nil {
		listener.Close()
		return nil, fmt.Errorf("failed to set socket permissions: %w", err)
	}

	log.Printf("IPC listening on %s", socketPath)

	return &Server{socketPath: socketPath, listener: listener}, nil
}

// Poll accepts and handles every pending connection, then returns once
// the accept queue is empty. Each connection carries one request and gets
// one response, handled synchronously before the next accept.
func (s *Server) Poll(handle func(*Request) *Response) {
	for {
		// An immediate deadline turns Accept into a non-blocking poll.
		s.listener.SetDeadline(time.Now())
		conn, err := s.listener.Accept()
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				return
			}
			log.Printf("IPC accept error: %v", err)
			return
		}
		s.handleConnection(conn, handle)
	}
}

func (s *Server) handleConnection(conn net.Conn, handle func(*Request) *Response) {
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(2 * time.Second))

	data, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil && len(data) == 0 {
		log.Printf("IPC read error: %v", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		// Malformed input is rejected at the framing layer: close the
		// connection without a protocol-level reply.
		log.Printf("IPC decode error: %v", err)
		return
	}

	resp := handle(req)

	respData, err := resp.Marshal()
	if err != nil {
		log.Printf("IPC failed to marshal response: %v", err)
		return
	}
	respData = append(respData, '\n')
	if _, err := conn.Write(respData); err != nil {
		log.Printf("IPC failed to send response: %v", err)
	}
}

// Close shuts the listener down and removes the socket file.
func (s *Server) Close() {
	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}
