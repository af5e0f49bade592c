package lsp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/humorlint/internal/logging"
	"github.com/yaklabco/humorlint/pkg/lint"
	"github.com/yaklabco/humorlint/pkg/lint/rules"
)

var (
	// ErrExit signals a graceful shutdown after receiving "exit".
	ErrExit = errors.New("lsp exit")
	// ErrExitWithoutShutdown signals an "exit" without a preceding "shutdown".
	ErrExitWithoutShutdown = errors.New("lsp exit without shutdown")
)

// ServerOptions configures language server behavior.
type ServerOptions struct {
	// Engine evaluates documents. Defaults to the built-in rules.
	Engine *lint.Engine

	// Logger receives server logs. Defaults to logging.Default().
	Logger *log.Logger

	// MaxDiagnostics caps the diagnostics published per document. 0 means unlimited.
	MaxDiagnostics int

	// Version is reported in the initialize result.
	Version string
}

// Server handles stdio JSON-RPC for the humorlint language server.
type Server struct {
	in     *bufio.Reader
	closer io.Closer
	out    *bufio.Writer
	sendMu sync.Mutex

	mu                sync.Mutex
	initialized       bool
	shutdownRequested bool

	docs           *DocumentStore
	engine         *lint.Engine
	logger         *log.Logger
	maxDiagnostics int
	version        string
	baseCtx        context.Context
}

// NewServer constructs a new language server reading from in and writing to out.
func NewServer(in io.Reader, out io.Writer, opts ServerOptions) *Server {
	engine := opts.Engine
	if engine == nil {
		registry := lint.NewRegistry()
		rules.RegisterAll(registry)
		engine = lint.NewEngine(registry)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	maxDiagnostics := max(opts.MaxDiagnostics, 0)
	closer, _ := in.(io.Closer)

	return &Server{
		in:             bufio.NewReader(in),
		closer:         closer,
		out:            bufio.NewWriter(out),
		docs:           NewDocumentStore(),
		engine:         engine,
		logger:         logger,
		maxDiagnostics: maxDiagnostics,
		version:        opts.Version,
		baseCtx:        context.Background(),
	}
}

// Documents returns the server's document store.
func (s *Server) Documents() *DocumentStore {
	return s.docs
}

// Run serves requests until the client sends "exit" or closes the stream.
// It returns ErrExit or ErrExitWithoutShutdown on exit, and nil on EOF.
// Cancelling ctx stops Run while it waits for input and closes the input
// when it is an io.Closer.
func (s *Server) Run(ctx context.Context) error {
	s.baseCtx = logging.WithLogger(ctx, s.logger)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	done := make(chan struct{})
	defer close(done)
	frames := s.readFrames(done)

	for {
		var fr inbound
		select {
		case <-ctx.Done():
			s.closeInput()
			return fmt.Errorf("serve: %w", ctx.Err())
		case fr = <-frames:
		}

		if fr.err != nil {
			if errors.Is(fr.err, io.EOF) {
				s.logger.Debug("client closed the stream")
				return nil
			}
			return fmt.Errorf("read message: %w", fr.err)
		}
		var msg rpcMessage
		if err := json.Unmarshal(fr.payload, &msg); err != nil {
			s.logger.Warn("failed to parse message", logging.FieldError, err)
			if err := s.sendError(json.RawMessage("null"), codeParseError, "parse error"); err != nil {
				return err
			}
			continue
		}
		if msg.Method == "" {
			continue
		}
		if err := s.handleMessage(&msg); err != nil {
			return err
		}
	}
}

// inbound is one read from the input stream.
type inbound struct {
	payload []byte
	err     error
}

// readFrames reads messages on a separate goroutine until a read fails or
// done is closed.
func (s *Server) readFrames(done <-chan struct{}) <-chan inbound {
	frames := make(chan inbound)
	go func() {
		for {
			payload, err := readMessage(s.in)
			select {
			case frames <- inbound{payload: payload, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return frames
}

func (s *Server) closeInput() {
	if s.closer == nil {
		return
	}
	if err := s.closer.Close(); err != nil {
		s.logger.Debug("close input", logging.FieldError, err)
	}
}

func (s *Server) handleMessage(msg *rpcMessage) error {
	s.logger.Debug("received message",
		logging.FieldMethod, msg.Method,
		logging.FieldRequestID, describeID(msg.ID))

	if msg.Method == "exit" {
		if s.isShutdownRequested() {
			return ErrExit
		}
		return ErrExitWithoutShutdown
	}
	if s.isShutdownRequested() {
		return s.reject(msg, codeInvalidRequest, "server is shutting down")
	}
	if !s.isInitialized() && msg.Method != "initialize" {
		return s.reject(msg, codeServerNotInitialized, "server not initialized")
	}

	switch msg.Method {
	case "initialize":
		return s.handleInitialize(msg)
	case "initialized":
		return nil
	case "shutdown":
		return s.handleShutdown(msg)
	case "textDocument/didOpen":
		return s.handleDidOpen(msg)
	case "textDocument/didChange":
		return s.handleDidChange(msg)
	case "textDocument/didSave":
		return s.handleDidSave(msg)
	case "textDocument/didClose":
		return s.handleDidClose(msg)
	default:
		return s.reject(msg, codeMethodNotFound, "method not found")
	}
}

// reject answers a request with an error; notifications are dropped.
func (s *Server) reject(msg *rpcMessage, code int, message string) error {
	if !msg.isRequest() {
		s.logger.Debug("dropping notification", logging.FieldMethod, msg.Method)
		return nil
	}
	return s.sendError(msg.ID, code, message)
}

func (s *Server) handleInitialize(msg *rpcMessage) error {
	var params initializeParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, codeInvalidParams, "invalid params")
		}
	}

	s.mu.Lock()
	already := s.initialized
	s.initialized = true
	s.mu.Unlock()
	if already {
		return s.sendError(msg.ID, codeInvalidRequest, "server already initialized")
	}

	if params.ClientInfo != nil {
		s.logger.Info("client connected",
			logging.FieldName, params.ClientInfo.Name,
			logging.FieldVersion, params.ClientInfo.Version)
	}

	result := initializeResult{
		Capabilities: serverCapabilities{
			TextDocumentSync: textDocumentSyncOptions{
				OpenClose: true,
				Change:    syncFull,
				Save: saveOptions{
					IncludeText: true,
				},
			},
		},
		ServerInfo: serverInfo{
			Name:    diagnosticSource,
			Version: s.version,
		},
	}
	return s.sendResponse(msg.ID, result)
}

func (s *Server) handleShutdown(msg *rpcMessage) error {
	s.mu.Lock()
	s.shutdownRequested = true
	s.mu.Unlock()
	return s.sendResponse(msg.ID, nil)
}

func (s *Server) handleDidOpen(msg *rpcMessage) error {
	var params didOpenTextDocumentParams
	if !s.decodeNotification(msg, &params) {
		return nil
	}
	uri := params.TextDocument.URI
	if uri == "" {
		return nil
	}
	doc := s.docs.Put(uri, params.TextDocument.Version, params.TextDocument.Text)
	return s.publish(doc)
}

func (s *Server) handleDidChange(msg *rpcMessage) error {
	var params didChangeTextDocumentParams
	if !s.decodeNotification(msg, &params) {
		return nil
	}
	uri := params.TextDocument.URI
	if uri == "" {
		return nil
	}
	doc := s.docs.Update(uri, params.TextDocument.Version, func(text string) string {
		return applyChanges(text, params.ContentChanges)
	})
	return s.publish(doc)
}

func (s *Server) handleDidSave(msg *rpcMessage) error {
	var params didSaveTextDocumentParams
	if !s.decodeNotification(msg, &params) {
		return nil
	}
	uri := params.TextDocument.URI
	if uri == "" {
		return nil
	}
	doc, ok := s.docs.Get(uri)
	if params.Text != nil {
		version := 0
		if ok {
			version = doc.Version
		}
		doc = s.docs.Put(uri, version, *params.Text)
	} else if !ok {
		s.logger.Debug("save for unknown document", logging.FieldURI, uri)
		return nil
	}
	return s.publish(doc)
}

func (s *Server) handleDidClose(msg *rpcMessage) error {
	var params didCloseTextDocumentParams
	if !s.decodeNotification(msg, &params) {
		return nil
	}
	uri := params.TextDocument.URI
	if uri == "" {
		return nil
	}
	s.docs.Delete(uri)
	return s.sendPublish(uri, nil, nil)
}

// decodeNotification unmarshals params, logging and reporting false when
// they are malformed.
func (s *Server) decodeNotification(msg *rpcMessage, params any) bool {
	if err := json.Unmarshal(msg.Params, params); err != nil {
		s.logger.Warn("invalid notification params",
			logging.FieldMethod, msg.Method,
			logging.FieldError, err)
		return false
	}
	return true
}

// publish evaluates doc and sends its diagnostics.
func (s *Server) publish(doc *Document) error {
	result := s.engine.EvaluateSnapshot(s.baseCtx, doc.Snapshot)
	for ruleID, err := range result.RuleErrors {
		s.logger.Warn("rule failed",
			logging.FieldName, ruleID,
			logging.FieldURI, doc.URI,
			logging.FieldError, err)
	}

	diags := result.Diagnostics
	if s.maxDiagnostics > 0 && len(diags) > s.maxDiagnostics {
		s.logger.Info("truncating diagnostics",
			logging.FieldURI, doc.URI,
			logging.FieldLimit, s.maxDiagnostics,
			logging.FieldDropped, len(diags)-s.maxDiagnostics)
		diags = diags[:s.maxDiagnostics]
	}

	s.logger.Debug("publishing diagnostics",
		logging.FieldURI, doc.URI,
		logging.FieldDocVersion, doc.Version,
		logging.FieldDiagnostics, len(diags))

	version := doc.Version
	return s.sendPublish(doc.URI, &version, toLSPDiagnostics(doc.Snapshot, diags))
}

func (s *Server) isInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

func (s *Server) isShutdownRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdownRequested
}

func (s *Server) sendResponse(id json.RawMessage, result any) error {
	msg := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"result":  result,
	}
	return s.send(msg)
}

func (s *Server) sendError(id json.RawMessage, code int, message string) error {
	msg := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"error": rpcError{
			Code:    code,
			Message: message,
		},
	}
	return s.send(msg)
}

func (s *Server) sendPublish(uri string, version *int, list []lspDiagnostic) error {
	if list == nil {
		list = []lspDiagnostic{}
	}
	msg := map[string]any{
		"jsonrpc": "2.0",
		"method":  "textDocument/publishDiagnostics",
		"params": publishDiagnosticsParams{
			URI:         uri,
			Version:     version,
			Diagnostics: list,
		},
	}
	return s.send(msg)
}

func (s *Server) send(msg any) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if err := writeMessage(s.out, payload); err != nil {
		return err
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
