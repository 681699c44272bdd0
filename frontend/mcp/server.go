// Package mcp exposes the game service as MCP tools, so an agent can play over stdio.
//
// Tools call the service in-process. A game is normally started before serving;
// new_game switches boards or starts over.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/wricardo/game2048/game/engine"
	"github.com/wricardo/game2048/game/service"
)

const instructions = `2048 - MCP Interface

GAME OBJECTIVE:
Slide the tiles on the board. Two equal tiles that collide merge into their sum.
Every move that changes the board spawns a new 2. Reach the win tile before the board locks up.

AVAILABLE TOOLS:
- state: Current board, status and legal moves
- move: Slide all tiles up/down/left/right
- undo: Take back the last move
- new_game: Start over, optionally on another config
- list_configs: List available board configurations`

// Server wraps an MCP server whose tools drive a GameService
type Server struct {
	svc       service.GameService
	mcpServer *server.MCPServer
}

// NewServer registers the game tools on a new MCP server
func NewServer(svc service.GameService, version string) *Server {
	s := &Server{svc: svc}
	s.mcpServer = server.NewMCPServer(
		"2048",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(instructions),
	)
	s.mcpServer.AddTools(s.tools()...)
	return s
}

// MCPServer returns the underlying server
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools on stdin/stdout until the input closes
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) tools() []server.ServerTool {
	noArgs := mcp.ToolInputSchema{
		Type:       "object",
		Properties: map[string]interface{}{},
	}

	return []server.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "state",
				Description: "Get the current board, status and legal moves",
				InputSchema: noArgs,
			},
			Handler: s.handleState,
		},
		{
			Tool: mcp.Tool{
				Name:        "move",
				Description: "Slide every tile in a direction",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"direction": map[string]interface{}{
							"type":        "string",
							"enum":        []string{"up", "down", "left", "right"},
							"description": "Direction to slide",
						},
					},
					Required: []string{"direction"},
				},
			},
			Handler: s.handleMove,
		},
		{
			Tool: mcp.Tool{
				Name:        "undo",
				Description: "Take back the last move",
				InputSchema: noArgs,
			},
			Handler: s.handleUndo,
		},
		{
			Tool: mcp.Tool{
				Name:        "new_game",
				Description: "Start a new game, optionally on another configuration",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"config": map[string]interface{}{
							"type":        "string",
							"description": "Config ID from list_configs (optional, keeps the current board type when empty)",
						},
					},
				},
			},
			Handler: s.handleNewGame,
		},
		{
			Tool: mcp.Tool{
				Name:        "list_configs",
				Description: "List available board configurations",
				InputSchema: noArgs,
			},
			Handler: s.handleListConfigs,
		},
	}
}

func (s *Server) handleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.svc.State(ctx)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(formatGameState(state)), nil
}

func (s *Server) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	direction := request.GetString("direction", "")
	cmd, err := engine.ParseCommand(direction)
	if err != nil || !cmd.IsDirection() {
		return mcp.NewToolResultError(fmt.Sprintf("direction must be up, down, left or right, got %q", direction)), nil
	}
	return s.apply(ctx, cmd)
}

func (s *Server) handleUndo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.apply(ctx, engine.Undo)
}

func (s *Server) apply(ctx context.Context, cmd engine.Command) (*mcp.CallToolResult, error) {
	result, err := s.svc.Apply(ctx, cmd)
	if err != nil {
		return toolError(err), nil
	}
	log.Debug().Str("cmd", cmd.String()).Bool("changed", result.Changed).Msg("mcp turn")
	return mcp.NewToolResultText(formatMoveResult(result)), nil
}

func (s *Server) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	configName := request.GetString("config", "")

	var (
		state *service.GameState
		err   error
	)
	if configName == "" {
		state, err = s.svc.Reset(ctx)
		if errors.Is(err, service.ErrNoGame) {
			state, err = s.svc.NewGame(ctx, "")
		}
	} else {
		state, err = s.svc.NewGame(ctx, configName)
	}
	if err != nil {
		return toolError(err), nil
	}

	return mcp.NewToolResultText("New game started\n\n" + formatGameState(state)), nil
}

func (s *Server) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	configs, err := s.svc.ListConfigs(ctx)
	if err != nil {
		return toolError(err), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Available Configs (%d):\n\n", len(configs))
	for _, c := range configs {
		fmt.Fprintf(&b, "- %s: %s (%dx%d, win %d, undo %s)\n", c.ConfigID, c.Name, c.Width, c.Height, c.WinValue, c.UndoMode)
		if c.Description != "" {
			fmt.Fprintf(&b, "  %s\n", c.Description)
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

func toolError(err error) *mcp.CallToolResult {
	if errors.Is(err, service.ErrNoGame) {
		return mcp.NewToolResultError("no game in progress, call new_game first")
	}
	return mcp.NewToolResultError(err.Error())
}

func formatGameState(state *service.GameState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Config: %s\n", state.ConfigID)
	fmt.Fprintf(&b, "Status: %s\n", state.Status)
	fmt.Fprintf(&b, "Moves: %d | Best tile: %d | Win: %d | Undo available: %d\n",
		state.MoveCount, state.MaxTile, state.WinValue, state.UndoAvailable)
	if state.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", state.Message)
	}

	fmt.Fprintf(&b, "\nBoard:\n%s\n", state.Grid)

	moves := make([]string, len(state.PossibleMoves))
	for i, cmd := range state.PossibleMoves {
		moves[i] = cmd.String()
	}
	if len(moves) == 0 {
		b.WriteString("\nPossible moves: none\n")
	} else {
		fmt.Fprintf(&b, "\nPossible moves: %s\n", strings.Join(moves, ", "))
	}
	return b.String()
}

func formatMoveResult(result *service.MoveResult) string {
	var b strings.Builder
	if result.Changed {
		fmt.Fprintf(&b, "%s: board changed\n", result.Turn.Command)
	} else {
		fmt.Fprintf(&b, "%s: nothing changed\n", result.Turn.Command)
	}
	for _, ev := range result.Events {
		fmt.Fprintf(&b, "- %s: %s\n", ev.Type, ev.Message)
	}
	b.WriteString("\n")
	b.WriteString(formatGameState(result.State))
	return b.String()
}
