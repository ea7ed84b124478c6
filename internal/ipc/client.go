package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/glintclock/glint/internal/runtimepath"
)

// Client talks to a running glint daemon over the control socket.
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a client for the given socket path; an empty path
// resolves the standard location.
func NewClient(socketPath string) *Client {
	if socketPath == "" {
		if p, err := runtimepath.SocketPath(); err == nil {
			socketPath = p
		}
	}
	return &Client{socketPath: socketPath, timeout: 5 * time.Second}
}

// Send delivers one request and returns the daemon's response. Transport
// failures are errors; a response with ok:false is returned as-is for the
// caller to report.
func (c *Client) Send(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to glint: %w (is the daemon running?)", err)
	}
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	respData, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &resp, nil
}

// run sends a request and converts an ok:false reply into an error.
func (c *Client) run(req *Request) error {
	resp, err := c.Send(req)
	if err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("%s", resp.Error)
	}
	return nil
}

// SetFace switches to the named face mode.
func (c *Client) SetFace(face string) error {
	return c.run(&Request{Cmd: CmdSetFace, Face: face})
}

// ToggleFace flips between digital and analogue.
func (c *Client) ToggleFace() error {
	return c.run(&Request{Cmd: CmdToggleFace})
}

// SetCompact sets compact mode.
func (c *Client) SetCompact(compact bool) error {
	return c.run(&Request{Cmd: CmdSetCompact, Compact: compact})
}

// ToggleCompact flips compact mode.
func (c *Client) ToggleCompact() error {
	return c.run(&Request{Cmd: CmdToggleCompact})
}

// SetFontSize sets the digital face text size.
func (c *Client) SetFontSize(size float64) error {
	return c.run(&Request{Cmd: CmdSetFontSize, Size: size})
}

// SetDiameter sets the analogue face diameter.
func (c *Client) SetDiameter(diameter int) error {
	return c.run(&Request{Cmd: CmdSetDiameter, Diameter: diameter})
}

// ScaleBy grows or shrinks whichever face is active.
func (c *Client) ScaleBy(delta int) error {
	return c.run(&Request{Cmd: CmdScaleBy, Delta: delta})
}

// SetLocked sets the drag lock.
func (c *Client) SetLocked(locked bool) error {
	return c.run(&Request{Cmd: CmdSetLocked, Locked: locked})
}

// ToggleLocked flips the drag lock.
func (c *Client) ToggleLocked() error {
	return c.run(&Request{Cmd: CmdToggleLocked})
}

// MoveToOutput moves the surface to a named output, or "next"/"prev".
func (c *Client) MoveToOutput(name string) error {
	return c.run(&Request{Cmd: CmdMoveToOutput, Name: name})
}

// Reload asks the daemon to reload its configuration file.
func (c *Client) Reload() error {
	return c.run(&Request{Cmd: CmdReloadConfig})
}

// State fetches the full state snapshot.
func (c *Client) State() (*Response, error) {
	resp, err := c.Send(&Request{Cmd: CmdGetState})
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, fmt.Errorf("%s", resp.Error)
	}
	return resp, nil
}

// Quit shuts the daemon down.
func (c *Client) Quit() error {
	return c.run(&Request{Cmd: CmdQuit})
}
