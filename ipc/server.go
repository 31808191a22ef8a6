// Package ipc exposes the playback speed of a running instance to
// other local processes over a unix domain socket. The wire format is
// mpv's JSON IPC: one object per line holding an ordered command
// array, e.g. {"command": ["set_property", "speed", 2.5]}.
package ipc

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"

	"lautenbacher.net/pmlicht/animation"
)

// command is one decoded wire message.
type command struct {
	Command []any `json:"command"`
}

// response is the reply to a get_property command.
type response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error"`
}

// RotationSource yields the recent mode rotations, oldest first. It is
// called from client handler goroutines.
type RotationSource func() []animation.Rotation

// Server accepts persistent client connections on a unix domain socket
// and applies the speed commands they send.
type Server struct {
	listener  net.Listener
	speed     *Speed
	rotations RotationSource
}

// NewServer binds the socket, replacing a stale socket file left over
// from a previous run. A bind failure is fatal for the caller.
func NewServer(socketPath string, speed *Speed, rotations RotationSource) (*Server, error) {
	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("removing stale socket %s: %w", socketPath, err)
		}
	}
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("binding socket %s: %w", socketPath, err)
	}
	slog.Info("IPC listening", "socket", socketPath)
	return &Server{listener: listener, speed: speed, rotations: rotations}, nil
}

// Serve accepts connections until the listener is closed. A failed
// accept is logged and does not stop the listener; every accepted
// connection is handled on its own goroutine.
func (s *Server) Serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			slog.Error("Error accepting connection", "error", err)
			continue
		}
		go s.handleClient(conn)
	}
}

// Close shuts down the listener. The socket file is removed by the
// net package on close.
func (s *Server) Close() error {
	return s.listener.Close()
}

// handleClient reads newline-delimited commands until the client
// disconnects. Lines may be arbitrarily long. A line that does not
// decode into the expected shape is dropped without an error to the
// sender; the connection stays open.
func (s *Server) handleClient(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			var cmd command
			if jsonErr := json.Unmarshal(line, &cmd); jsonErr == nil {
				if err := s.dispatch(conn, cmd); err != nil {
					slog.Error("Error handling client", "error", err)
					return
				}
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				slog.Error("Error reading from client", "error", err)
			}
			return
		}
	}
}

// dispatch applies one decoded command. Known properties are "speed"
// (settable and gettable) and "rotations" (the scheduler's recent mode
// switches, get only); everything else is accepted and ignored. The
// returned error is non-nil only when the connection itself is broken.
func (s *Server) dispatch(conn net.Conn, cmd command) error {
	if len(cmd.Command) < 2 {
		return nil
	}
	verb, ok := cmd.Command[0].(string)
	if !ok {
		return nil
	}
	property, ok := cmd.Command[1].(string)
	if !ok {
		return nil
	}

	switch verb {
	case "set_property":
		if property != "speed" || len(cmd.Command) < 3 {
			return nil
		}
		if factor, ok := cmd.Command[2].(float64); ok {
			s.speed.Set(factor)
		}
	case "get_property":
		var data any
		switch property {
		case "speed":
			data = s.speed.Get()
		case "rotations":
			data = s.rotations()
		default:
			return nil
		}
		reply, err := json.Marshal(response{Data: data, Error: "success"})
		if err != nil {
			return nil
		}
		if _, err := conn.Write(append(reply, '\n')); err != nil {
			return fmt.Errorf("writing reply: %w", err)
		}
	}
	return nil
}
