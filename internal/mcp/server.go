package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jackzampolin/visionocr/internal/tools"
	"github.com/jackzampolin/visionocr/version"
)

const (
	// ServerName identifies this server to MCP clients.
	ServerName = "vision-framework-ocr"

	// ProtocolVersion is the MCP protocol revision this server implements.
	ProtocolVersion = "2024-11-05"

	// Instructions summarize the tool surface for the connecting client.
	Instructions = "OCR images on macOS with Vision framework. " +
		"Use ocr_image for one image, ocr_batch for many images, and ocr_text for plain text output."

	// maxLineBytes bounds a single JSON-RPC message (batch results can be large).
	maxLineBytes = 16 * 1024 * 1024
)

// Server serves MCP tool invocations over newline-delimited JSON-RPC on a
// reader/writer pair, normally stdin/stdout. Requests are handled one at a
// time in arrival order; each tool call blocks until its helper process
// exits.
type Server struct {
	registry *tools.Registry
	logger   *slog.Logger
	in       io.Reader
	out      io.Writer
}

// Config holds server construction parameters.
type Config struct {
	// Registry supplies the callable tools.
	Registry *tools.Registry
	// Logger is the structured logger (must not write to Out).
	Logger *slog.Logger
	// In is the transport input (default: os.Stdin).
	In io.Reader
	// Out is the transport output (default: os.Stdout).
	Out io.Writer
}

// New creates a Server with the given configuration.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	return &Server{
		registry: cfg.Registry,
		logger:   cfg.Logger,
		in:       cfg.In,
		out:      cfg.Out,
	}
}

// Run reads messages until the input closes or ctx is cancelled. Reading
// happens on a separate goroutine so cancellation takes effect even while a
// Read on the transport is blocked; on cancel the pending Read is abandoned,
// which is fine for a process on its way out.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server listening", "name", ServerName, "version", version.GitRelease)

	lines := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			// The scanner reuses its buffer across Scan calls.
			msg := make([]byte, len(line))
			copy(msg, line)
			select {
			case lines <- msg:
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("transport read failed: %w", err)
			}
			s.logger.Info("mcp transport closed")
			return nil
		case line := <-lines:
			s.handleMessage(ctx, line)
		}
	}
}

func (s *Server) handleMessage(ctx context.Context, line []byte) {
	var req request
	if err := json.Unmarshal(line, &req); err != nil {
		s.logger.Warn("unparseable message", "error", err)
		s.writeError(json.RawMessage("null"), codeParseError, "parse error", err.Error())
		return
	}

	if req.isNotification() {
		// Notifications (e.g. notifications/initialized) are consumed silently.
		s.logger.Debug("notification received", "method", req.Method)
		return
	}

	switch req.Method {
	case "initialize":
		s.writeResult(req.ID, initializeResult{
			ProtocolVersion: ProtocolVersion,
			Capabilities:    capabilities{Tools: toolCapabilities{ListChanged: false}},
			ServerInfo:      serverInfo{Name: ServerName, Version: version.GitRelease},
			Instructions:    Instructions,
		})
	case "ping":
		s.writeResult(req.ID, struct{}{})
	case "tools/list":
		s.writeResult(req.ID, s.listTools())
	case "tools/call":
		s.handleToolCall(ctx, req)
	case "":
		s.writeError(req.ID, codeInvalidRequest, "invalid request", "missing method")
	default:
		s.writeError(req.ID, codeMethodNotFound, "method not found", req.Method)
	}
}

func (s *Server) listTools() listToolsResult {
	all := s.registry.List()
	descriptors := make([]toolDescriptor, 0, len(all))
	for _, t := range all {
		descriptors = append(descriptors, toolDescriptor{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		})
	}
	return listToolsResult{Tools: descriptors}
}

func (s *Server) handleToolCall(ctx context.Context, req request) {
	var params callParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.writeError(req.ID, codeInvalidParams, "invalid params", err.Error())
		return
	}
	if params.Name == "" {
		s.writeError(req.ID, codeInvalidParams, "invalid params", "tool name is required")
		return
	}

	callID := uuid.New().String()
	start := time.Now()
	s.logger.Info("tool call", "call_id", callID, "tool", params.Name)

	result, err := s.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool call failed",
			"call_id", callID,
			"tool", params.Name,
			"duration", time.Since(start),
			"error", err,
		)
		s.writeError(req.ID, codeToolError, err.Error(), nil)
		return
	}

	text, err := renderResult(result)
	if err != nil {
		s.writeError(req.ID, codeToolError, "failed to encode tool result", err.Error())
		return
	}

	s.logger.Info("tool call completed", "call_id", callID, "tool", params.Name, "duration", time.Since(start))
	s.writeResult(req.ID, callResult{
		Content: []contentBlock{{Type: "text", Text: text}},
		IsError: false,
	})
}

// renderResult turns a tool's return value into the text content block sent
// to the client. Strings pass through bare; everything else is JSON.
func renderResult(result any) (string, error) {
	if text, ok := result.(string); ok {
		return text, nil
	}
	encoded, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (s *Server) writeResult(id json.RawMessage, result any) {
	s.write(response{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) writeError(id json.RawMessage, code int, message string, data any) {
	s.write(response{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: message, Data: data}})
}

func (s *Server) write(resp response) {
	encoded, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("failed to encode response", "error", err)
		return
	}
	if _, err := s.out.Write(append(encoded, '\n')); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}
