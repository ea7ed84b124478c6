package ipc

import (
	"encoding/json"
	"fmt"
)

// Command names carried in the request "cmd" discriminator.
const (
	CmdSetFace       = "set-face"
	CmdToggleFace    = "toggle-face"
	CmdSetCompact    = "set-compact"
	CmdToggleCompact = "toggle-compact"
	CmdSetFontSize   = "set-font-size"
	CmdSetDiameter   = "set-diameter"
	CmdScaleBy       = "scale-by"
	CmdSetLocked     = "set-locked"
	CmdToggleLocked  = "toggle-locked"
	CmdMoveToOutput  = "move-to-output"
	CmdReloadConfig  = "reload-config"
	CmdGetState      = "get-state"
	CmdQuit          = "quit"
)

var knownCommands = map[string]bool{
	CmdSetFace:       true,
	CmdToggleFace:    true,
	CmdSetCompact:    true,
	CmdToggleCompact: true,
	CmdSetFontSize:   true,
	CmdSetDiameter:   true,
	CmdScaleBy:       true,
	CmdSetLocked:     true,
	CmdToggleLocked:  true,
	CmdMoveToOutput:  true,
	CmdReloadConfig:  true,
	CmdGetState:      true,
	CmdQuit:          true,
}

// Request is one control command: the cmd discriminator plus whichever
// field that command uses. One JSON object per line on the wire.
type Request struct {
	Cmd      string  `json:"cmd"`
	Face     string  `json:"face,omitempty"`
	Compact  bool    `json:"compact"`
	Size     float64 `json:"size,omitempty"`
	Diameter int     `json:"diameter,omitempty"`
	Delta    int     `json:"delta,omitempty"`
	Locked   bool    `json:"locked"`
	Name     string  `json:"name,omitempty"`
}

// Response is the reply to a request. State fields are populated only for
// get-state.
type Response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`

	Face       string   `json:"face,omitempty"`
	Compact    *bool    `json:"compact,omitempty"`
	Width      *uint32  `json:"width,omitempty"`
	Height     *uint32  `json:"height,omitempty"`
	FontSize   *float64 `json:"font_size,omitempty"`
	Diameter   *int     `json:"diameter,omitempty"`
	ConfigPath string   `json:"config_path,omitempty"`
	Locked     *bool    `json:"locked,omitempty"`
	Output     string   `json:"output,omitempty"`
}

// OKResponse is the plain success reply.
func OKResponse() *Response {
	return &Response{OK: true}
}

// ErrorResponse is a command failure with a message; the daemon keeps
// running and state is unchanged.
func ErrorResponse(format string, args ...interface{}) *Response {
	return &Response{OK: false, Error: fmt.Sprintf(format, args...)}
}

// StateSnapshot is the flattened get-state payload.
type StateSnapshot struct {
	Face       string
	Compact    bool
	Width      uint32
	Height     uint32
	FontSize   float64
	Diameter   int
	ConfigPath string
	Locked     bool
	Output     string
}

// StateResponse builds the get-state reply.
func StateResponse(s StateSnapshot) *Response {
	return &Response{
		OK:         true,
		Face:       s.Face,
		Compact:    &s.Compact,
		Width:      &s.Width,
		Height:     &s.Height,
		FontSize:   &s.FontSize,
		Diameter:   &s.Diameter,
		ConfigPath: s.ConfigPath,
		Locked:     &s.Locked,
		Output:     s.Output,
	}
}

// ParseRequest decodes one request line. An unknown cmd value is a decode
// error, not a dispatchable command: the connection is closed without a
// protocol-level reply, matching the framing contract.
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	if !knownCommands[req.Cmd] {
		return nil, fmt.Errorf("failed to parse request: unknown cmd %q", req.Cmd)
	}
	return &req, nil
}

// Marshal encodes a response for the wire, without the trailing newline.
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
