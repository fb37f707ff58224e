// Package mcpadapter exposes the summarization engine to MCP clients
// over stdio.
package mcpadapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/ports"
)

type Server struct {
	service ports.SummaryService
	mcpSrv  *server.MCPServer
}

func NewServer(service ports.SummaryService, version string) *Server {
	s := &Server{service: service}

	mcpSrv := server.NewMCPServer(
		"document-text-summariser",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	summarizeTool := mcp.NewTool("summarize_text",
		mcp.WithDescription("Summarize a block of text and extract its key points."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text to summarize."),
		),
		mcp.WithString("length",
			mcp.Description("Summary length: short, medium or long. Defaults to medium."),
			mcp.Enum("short", "medium", "long"),
		),
	)
	mcpSrv.AddTool(summarizeTool, s.handleSummarize)

	keyPointsTool := mcp.NewTool("extract_key_points",
		mcp.WithDescription("Extract the most salient key points from a block of text."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text to analyze."),
		),
		mcp.WithNumber("max_points",
			mcp.Description("Maximum number of key points to return. Defaults to 5."),
		),
	)
	mcpSrv.AddTool(keyPointsTool, s.handleExtractKeyPoints)

	s.mcpSrv = mcpSrv
	return s
}

// ServeStdio blocks until the client closes the stream.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpSrv)
}

func (s *Server) handleSummarize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	length := request.GetString("length", "")

	reply, err := s.service.Summarize(ctx, ports.SummarizeRequest{
		Text:   text,
		Length: length,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summarize: %v", err)), nil
	}

	payload, err := json.MarshalIndent(reply.Result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) handleExtractKeyPoints(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	maxPoints := request.GetInt("max_points", 5)

	points, err := s.service.ExtractKeyPoints(ctx, text, maxPoints)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("extract key points: %v", err)), nil
	}

	payload, err := json.MarshalIndent(map[string][]string{"key_points": points}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}
