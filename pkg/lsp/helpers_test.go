package lsp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/humorlint/internal/logging"
)

func newTestServer(t *testing.T, opts ServerOptions) (*Server, *bytes.Buffer) {
	t.Helper()

	if opts.Logger == nil {
		opts.Logger = logging.NewWithWriter(io.Discard, "error")
	}
	var out bytes.Buffer
	return NewServer(bytes.NewReader(nil), &out, opts), &out
}

// initServer runs the initialize handshake and discards its output.
func initServer(t *testing.T, s *Server, out *bytes.Buffer) {
	t.Helper()

	require.NoError(t, s.handleMessage(request(t, 0, "initialize", initializeParams{})))
	require.NoError(t, s.handleMessage(notification(t, "initialized", struct{}{})))
	out.Reset()
}

func request(t *testing.T, id int, method string, params any) *rpcMessage {
	t.Helper()

	idRaw, err := json.Marshal(id)
	require.NoError(t, err)
	msg := notification(t, method, params)
	msg.ID = idRaw
	return msg
}

func notification(t *testing.T, method string, params any) *rpcMessage {
	t.Helper()

	msg := &rpcMessage{JSONRPC: "2.0", Method: method}
	if params != nil {
		raw, err := json.Marshal(params)
		require.NoError(t, err)
		msg.Params = raw
	}
	return msg
}

// drain decodes every framed message written to out.
func drain(t *testing.T, out *bytes.Buffer) []rpcMessage {
	t.Helper()

	reader := bufio.NewReader(bytes.NewReader(out.Bytes()))
	var msgs []rpcMessage
	for {
		payload, err := readMessage(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)

		var msg rpcMessage
		require.NoError(t, json.Unmarshal(payload, &msg))
		msgs = append(msgs, msg)
	}
	out.Reset()
	return msgs
}

// published decodes the single publishDiagnostics notification in out.
func published(t *testing.T, out *bytes.Buffer) publishDiagnosticsParams {
	t.Helper()

	msgs := drain(t, out)
	require.Len(t, msgs, 1)
	require.Equal(t, "textDocument/publishDiagnostics", msgs[0].Method)

	var params publishDiagnosticsParams
	require.NoError(t, json.Unmarshal(msgs[0].Params, &params))
	require.NotNil(t, params.Diagnostics, "diagnostics must be a list, never null")
	return params
}

func frame(t *testing.T, msgs ...*rpcMessage) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	for _, msg := range msgs {
		payload, err := json.Marshal(msg)
		require.NoError(t, err)
		require.NoError(t, writeMessage(&buf, payload))
	}
	return &buf
}
