package ipc

import (
	"bufio"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest([]byte(`{"cmd":"set-face","face":"analogue"}`))
	if err != nil {
		t.Fatalf("ParseRequest failed: %v", err)
	}
	if req.Cmd != CmdSetFace || req.Face != "analogue" {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestParseRequestUnknownCmd(t *testing.T) {
	_, err := ParseRequest([]byte(`{"cmd":"explode"}`))
	if err == nil {
		t.Fatal("expected error for unknown cmd")
	}
	if !strings.Contains(err.Error(), "unknown cmd") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseRequestMalformed(t *testing.T) {
	if _, err := ParseRequest([]byte("not json\n")); err == nil {
		t.Fatal("expected error for malformed input")
	}
}

func TestStateResponseRoundTrip(t *testing.T) {
	resp := StateResponse(StateSnapshot{
		Face:     "digital",
		Compact:  true,
		Width:    220,
		Height:   80,
		FontSize: 48,
		Diameter: 180,
		Locked:   false,
		Output:   "DP-1",
	})
	data, err := resp.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Response
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !decoded.OK {
		t.Error("expected ok response")
	}
	if decoded.Face != "digital" || decoded.Compact == nil || !*decoded.Compact {
		t.Errorf("state fields lost: %s", data)
	}
	if decoded.Width == nil || *decoded.Width != 220 {
		t.Errorf("width lost: %s", data)
	}
}

func TestServerPollRoundTrip(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "glint.sock")
	srv, err := Listen(socketPath)
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	defer srv.Close()

	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()
	if _, err := conn.Write([]byte(`{"cmd":"toggle-face"}` + "\n")); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var got *Request
	srv.Poll(func(req *Request) *Response {
		got = req
		return OKResponse()
	})

	if got == nil {
		t.Fatal("handler was not invoked")
	}
	if got.Cmd != CmdToggleFace {
		t.Errorf("got cmd %q, want %q", got.Cmd, CmdToggleFace)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		t.Fatalf("read response failed: %v", err)
	}
	var resp Response
	if err := json.Unmarshal(line, &resp); err != nil {
		t.Fatalf("bad response %q: %v", line, err)
	}
	if !resp.OK {
		t.Errorf("expected ok, got %+v", resp)
	}
}

func TestServerPollUnknownCmdClosesConnection(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "glint.sock")
	srv, err := Listen(socketPath)
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	defer srv.Close()

	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()
	if _, err := conn.Write([]byte(`{"cmd":"explode"}` + "\n")); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	called := false
	srv.Poll(func(req *Request) *Response {
		called = true
		return OKResponse()
	})
	if called {
		t.Error("handler must not run for an unknown cmd")
	}

	// The connection is closed without a reply.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, err := bufio.NewReader(conn).ReadBytes('\n'); err == nil {
		t.Error("expected closed connection, got a reply")
	}
}

func TestListenRefusesSecondInstance(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "glint.sock")
	srv, err := Listen(socketPath)
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	defer srv.Close()

	if _, err := Listen(socketPath); err == nil {
		t.Fatal("expected second Listen to fail")
	} else if !strings.Contains(err.Error(), "already running") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestListenRemovesStaleSocket(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "glint.sock")
	first, err := Listen(socketPath)
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	// Simulate a crash: the listener dies but the socket file stays.
	first.listener.Close()
	if _, err := os.Stat(socketPath); err != nil {
		t.Skipf("socket file removed on close: %v", err)
	}

	second, err := Listen(socketPath)
	if err != nil {
		t.Fatalf("Listen over stale socket failed: %v", err)
	}
	second.Close()
}

func TestClientSend(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "glint.sock")
	srv, err := Listen(socketPath)
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	defer srv.Close()

	client := NewClient(socketPath)

	done := make(chan error, 1)
	go func() {
		done <- client.MoveToOutput("DP-2")
	}()

	deadline := time.Now().Add(2 * time.Second)
	var got *Request
	for got == nil && time.Now().Before(deadline) {
		srv.Poll(func(req *Request) *Response {
			got = req
			return ErrorResponse("Output '%s' not found", req.Name)
		})
		time.Sleep(time.Millisecond)
	}

	err = <-done
	if err == nil {
		t.Fatal("expected ok:false to surface as an error")
	}
	if err.Error() != "Output 'DP-2' not found" {
		t.Errorf("unexpected error: %v", err)
	}
	if got == nil || got.Cmd != CmdMoveToOutput || got.Name != "DP-2" {
		t.Errorf("unexpected request: %+v", got)
	}
}
