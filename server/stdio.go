package server

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/viant/jsonrpc"
	transportbase "github.com/viant/jsonrpc/transport/base"
	"github.com/viant/jsonrpc/transport/server/base"
)

const stdioSession = "stdio"

type stdioServer struct {
	stdin  io.Reader
	stdout io.Writer
}

// StdioServer serves line delimited JSON-RPC messages. Requests are served
// concurrently; notifications and responses are handled in arrival order.
type StdioServer struct {
	ctx      context.Context
	base     *base.Handler
	session  *base.Session
	reader   *bufio.Reader
	inflight sync.WaitGroup
}

// ListenAndServe reads messages until EOF, then waits for in-flight requests.
func (t *StdioServer) ListenAndServe() error {
	defer t.inflight.Wait()
	for {
		if err := t.ctx.Err(); err != nil {
			return err
		}
		line, err := t.reader.ReadBytes('\n')
		if data := bytes.TrimSpace(line); len(data) > 0 {
			t.dispatch(data)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (t *StdioServer) dispatch(data []byte) {
	if transportbase.MessageType(data) != jsonrpc.MessageTypeRequest {
		t.base.HandleMessage(t.ctx, t.session, data, nil)
		return
	}
	t.inflight.Add(1)
	go func() {
		defer t.inflight.Done()
		t.base.HandleMessage(t.ctx, t.session, data, nil)
	}()
}

func frameLine(data []byte) []byte {
	return append(data, '\n')
}

// Stdio return stdio server, reading stdin and writing stdout unless WithStdio overrides them.
func (s *Server) Stdio(ctx context.Context) *StdioServer {
	if ctx == nil {
		ctx = context.Background()
	}
	stdin, stdout := s.stdin, s.stdout
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	ret := &StdioServer{
		ctx:    ctx,
		base:   base.NewHandler(),
		reader: bufio.NewReader(stdin),
	}
	ret.session = base.NewSession(ctx, stdioSession, stdout, s.NewHandler, base.WithFramer(frameLine))
	ret.base.Sessions.Put(stdioSession, ret.session)
	return ret
}
