package server

import (
	"errors"
	"io"
	"log/slog"

	"github.com/viant/cloudbridge/bridge"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithEmitter forwards emitter events to the host as notifications.
func WithEmitter(emitter *bridge.Emitter) Option {
	return func(s *Server) error {
		s.emitter = emitter
		return nil
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			return errors.New("logger was nil")
		}
		s.logger = logger
		return nil
	}
}

// WithStdio sets stdio server input and output.
func WithStdio(stdin io.Reader, stdout io.Writer) Option {
	return func(s *Server) error {
		if stdin == nil || stdout == nil {
			return errors.New("stdio reader and writer are required")
		}
		s.stdin, s.stdout = stdin, stdout
		return nil
	}
}
