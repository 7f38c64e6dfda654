package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/stepline"
	"github.com/aretw0/stepline/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// StatusURI is the resource exposing the engine inspection.
const StatusURI = "stepline://status"

// Server wraps a Controller and exposes it as an MCP Server.
type Server struct {
	controller ports.Controller
	mcpServer  *server.MCPServer
	logger     *slog.Logger
}

// NewServer creates a new MCP Server instance.
func NewServer(c ports.Controller, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		controller: c,
		mcpServer:  server.NewMCPServer("stepline-mcp", stepline.Version),
		logger:     logger,
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the MCP SSE transport on addr until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, addr, baseURL string) error {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("status",
		mcp.WithDescription("Inspect the queues, checkpoints and playback state of the timeline."),
	), s.handleStatus)

	s.mcpServer.AddTool(mcp.NewTool("pause",
		mcp.WithDescription("Pause or resume playback. Without arguments, toggles."),
		mcp.WithBoolean("paused", mcp.Description("true to pause, false to resume")),
	), s.handlePause)

	s.mcpServer.AddTool(mcp.NewTool("speed",
		mcp.WithDescription("Set the playback speed multiplier."),
		mcp.WithNumber("multiplier", mcp.Required(), mcp.Description("Strictly positive multiplier; 1 is normal speed")),
	), s.handleSpeed)

	s.mcpServer.AddTool(mcp.NewTool("reset",
		mcp.WithDescription("Rebuild the timeline in authoring order and replay up to the first checkpoint."),
	), s.command(ports.Controller.Reset, "timeline reset"))

	s.mcpServer.AddTool(mcp.NewTool("step_next",
		mcp.WithDescription("Pause and draw exactly one more unit."),
	), s.command(ports.Controller.StepNext, "stepped forward"))

	s.mcpServer.AddTool(mcp.NewTool("step_back",
		mcp.WithDescription("Pause and undraw the last committed unit."),
	), s.command(ports.Controller.StepBack, "stepped back"))

	s.mcpServer.AddTool(mcp.NewTool("redraw",
		mcp.WithDescription("Repaint every committed figure."),
	), s.command(ports.Controller.ReDrawAll, "redrawn"))

	s.mcpServer.AddTool(mcp.NewTool("next_checkpoint",
		mcp.WithDescription("Skip forward to the next checkpoint."),
	), s.seek(ports.Controller.LoadNextCheckpoint))

	s.mcpServer.AddTool(mcp.NewTool("previous_checkpoint",
		mcp.WithDescription("Rewind to the most recent committed checkpoint."),
	), s.seek(ports.Controller.LoadPreviousCheckpoint))

	s.mcpServer.AddTool(mcp.NewTool("helper",
		mcp.WithDescription("Switch playback to the helper queue, or back to the main timeline."),
		mcp.WithBoolean("enabled", mcp.Required(), mcp.Description("true to read from the helper queue")),
	), s.handleHelper)

	s.mcpServer.AddTool(mcp.NewTool("load_checkpoint_to_helper",
		mcp.WithDescription("Play the run starting at a checkpoint on the helper queue."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Checkpoint figure id")),
	), s.handleLoadHelper)
}

func (s *Server) handleStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := s.statusJSON(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handlePause(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if _, ok := args["paused"]; !ok {
		paused, err := s.controller.TogglePause(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("pause failed: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("paused: %t", paused)), nil
	}
	paused := request.GetBool("paused", true)
	if err := s.controller.SetPaused(ctx, paused); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("pause failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("paused: %t", paused)), nil
}

func (s *Server) handleSpeed(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	m, err := request.RequireFloat("multiplier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.controller.UpdateSpeed(ctx, m); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("speed failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("speed: %g", m)), nil
}

func (s *Server) handleHelper(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	enabled, err := request.RequireBool("enabled")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.controller.SetUsingHelperQueue(ctx, enabled); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("helper failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("helper: %t", enabled)), nil
}

func (s *Server) handleLoadHelper(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.controller.LoadCheckpointToHelper(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load checkpoint failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("helper loaded from %s", id)), nil
}

func (s *Server) command(fn func(ports.Controller, context.Context) error, done string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := fn(s.controller, ctx); err != nil {
			s.logger.Error("MCP tool failed", "tool", request.Params.Name, "error", err)
			return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", request.Params.Name, err)), nil
		}
		return mcp.NewToolResultText(done), nil
	}
}

func (s *Server) seek(fn func(ports.Controller, context.Context) (string, bool, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok, err := fn(s.controller, ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", request.Params.Name, err)), nil
		}
		if !ok {
			return mcp.NewToolResultText("no checkpoint"), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("checkpoint: %s", id)), nil
	}
}

func (s *Server) statusJSON(ctx context.Context) (string, error) {
	in, err := s.controller.Inspect(ctx)
	if err != nil {
		return "", fmt.Errorf("inspect failed: %w", err)
	}
	data, err := json.Marshal(in)
	if err != nil {
		return "", errors.Join(errors.New("inspect encode failed"), err)
	}
	return string(data), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(StatusURI, "Timeline Status",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, err := s.statusJSON(ctx)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      StatusURI,
				MIMEType: "application/json",
				Text:     text,
			},
		}, nil
	})
}
