package hook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DecisionBlock asks the host to keep the agent working.
const DecisionBlock = "block"

// Request mirrors the stop hook payload the host writes to stdin. Only
// StopHookActive drives behavior; the rest is carried for logging.
type Request struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	CWD            string `json:"cwd"`
	HookEventName  string `json:"hook_event_name"`
	// Must be a JSON bool; any other type fails decoding.
	StopHookActive bool `json:"stop_hook_active"`
}

// Response is the decision written back to the host. The zero value means
// proceed and is written as no output at all.
type Response struct {
	Decision string `json:"decision,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Block builds a blocking response with reason.
func Block(reason string) Response {
	return Response{Decision: DecisionBlock, Reason: reason}
}

// IsBlock reports whether the response blocks the host.
func (r Response) IsBlock() bool {
	return r.Decision == DecisionBlock
}

// DecodeRequest reads exactly one JSON object from r.
func DecodeRequest(r io.Reader) (Request, error) {
	dec := json.NewDecoder(r)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Request{}, fmt.Errorf("decode hook request: empty input")
		}
		return Request{}, fmt.Errorf("decode hook request: %w", err)
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '{' {
		return Request{}, fmt.Errorf("decode hook request: expected a JSON object")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Request{}, fmt.Errorf("decode hook request: unexpected data after request")
	}
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return Request{}, fmt.Errorf("decode hook request: %w", err)
	}
	return req, nil
}

// WriteResponse writes resp to w. A proceed response writes nothing.
func WriteResponse(w io.Writer, resp Response) error {
	if !resp.IsBlock() {
		return nil
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode hook response: %w", err)
	}
	payload = append(payload, '\n')
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write hook response: %w", err)
	}
	return nil
}
