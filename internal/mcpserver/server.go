// Package mcpserver exposes the extraction pipeline as Model Context
// Protocol tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tcs-research/prodoc-extract/internal/batch"
	"github.com/tcs-research/prodoc-extract/internal/config"
	"github.com/tcs-research/prodoc-extract/internal/descriptions"
	"github.com/tcs-research/prodoc-extract/internal/extract"
	"github.com/tcs-research/prodoc-extract/internal/projectid"
	"github.com/tcs-research/prodoc-extract/internal/textnorm"
)

// Server represents the MCP server instance
type Server struct {
	config     *config.Config
	normalizer *textnorm.Normalizer
	engine     *extract.Engine
	processor  *batch.Processor
	mcpServer  *server.MCPServer
	logger     *slog.Logger
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, engine *extract.Engine, logger *slog.Logger) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	mcpServer := server.NewMCPServer(
		cfg.AppName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:     cfg,
		normalizer: textnorm.New(),
		engine:     engine,
		processor:  batch.NewProcessor(engine, logger),
		mcpServer:  mcpServer,
		logger:     logger,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	normalizeTextTool := mcp.NewTool(
		"normalize_text",
		mcp.WithDescription("Repair page noise, OCR artifacts, and whitespace in raw document text"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Raw document text to normalize"),
		),
	)
	s.mcpServer.AddTool(normalizeTextTool, s.handleNormalizeText)

	resolveProjectIDTool := mcp.NewTool(
		"resolve_project_id",
		mcp.WithDescription("Derive the project identifier from a document filename"),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("Document filename or full path"),
		),
	)
	s.mcpServer.AddTool(resolveProjectIDTool, s.handleResolveProjectID)

	extractFieldsTool := mcp.NewTool(
		"extract_fields",
		mcp.WithDescription("Extract the brief description and challenges fields from one document's text"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Document text to extract from"),
		),
		mcp.WithString("filename",
			mcp.Description("Optional filename used to derive the project identifier"),
		),
	)
	s.mcpServer.AddTool(extractFieldsTool, s.handleExtractFields)

	processDirectoryTool := mcp.NewTool(
		"process_directory",
		mcp.WithDescription("Process every matching document in a directory and summarize extraction coverage"),
		mcp.WithString("directory",
			mcp.Description("Directory of documents to process (uses the configured input directory if empty)"),
		),
		mcp.WithString("pattern",
			mcp.Description("Glob pattern for input files (uses the configured pattern if empty)"),
		),
		mcp.WithString("output_file",
			mcp.Description("Optional path; when set, the full record array is saved there as JSON"),
		),
	)
	s.mcpServer.AddTool(processDirectoryTool, s.handleProcessDirectory)

	serverInfoTool := mcp.NewTool(
		"server_info",
		mcp.WithDescription("Get server information, available tools, configuration, and usage guidance"),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions
func (s *Server) handleNormalizeText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cleaned := s.normalizer.Normalize(text)

	responseText := fmt.Sprintf("Normalized %d characters to %d\n", len(text), len(cleaned))
	responseText += "\nNormalized text:\n"
	responseText += cleaned

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleResolveProjectID(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, err := request.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id := projectid.Resolve(filename)

	responseText := fmt.Sprintf("Project ID: %s\n", id)
	responseText += fmt.Sprintf("Source: %s\n", filename)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleExtractFields(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	filename := "document.txt"
	if f, ok := request.GetArguments()["filename"].(string); ok && f != "" {
		filename = f
	}

	doc := s.normalizer.Normalize(text)
	brief := s.engine.ExtractBrief(doc)
	challenges := s.engine.ExtractChallenges(doc)

	responseText := fmt.Sprintf("Project ID: %s\n\n", projectid.Resolve(filename))
	responseText += s.formatFieldResult("Brief description", brief)
	responseText += "\n"
	responseText += s.formatFieldResult("Challenges / problem statements", challenges)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleProcessDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := s.config.InputDir // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	pattern := s.config.Pattern
	if p, ok := args["pattern"].(string); ok && p != "" {
		pattern = p
	}

	outputFile := ""
	if o, ok := args["output_file"].(string); ok {
		outputFile = o
	}

	runner, err := batch.NewRunner(s.processor, pattern, s.config.Workers, false, s.logger)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	records, err := runner.Run(ctx, directory)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if outputFile != "" {
		if err := batch.WriteRecords(outputFile, records); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	summary := batch.Summarize(records)
	responseText := fmt.Sprintf("Processed %d document(s) in %s\n", summary.Total, directory)
	responseText += fmt.Sprintf("Brief descriptions found: %d (%.1f%%)\n",
		summary.WithBrief, summary.Percent(summary.WithBrief))
	responseText += fmt.Sprintf("Challenges found: %d (%.1f%%)\n",
		summary.WithChallenges, summary.Percent(summary.WithChallenges))
	responseText += fmt.Sprintf("Unreadable documents: %d\n", summary.Errors)
	if outputFile != "" {
		responseText += fmt.Sprintf("\nResults saved to: %s\n", outputFile)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	responseText := fmt.Sprintf("%s v%s\n", s.config.AppName, s.config.Version)
	responseText += fmt.Sprintf("Input directory: %s\n", s.config.InputDir)
	responseText += fmt.Sprintf("File pattern: %s\n", s.config.Pattern)
	responseText += fmt.Sprintf("Workers: %d\n", s.config.Workers)

	responseText += "\nAvailable Tools:\n"
	for i, name := range descriptions.GetAllToolNames() {
		responseText += fmt.Sprintf("%d. %s - %s\n", i+1, name, descriptions.Headline(name))
	}

	responseText += "\n" + descriptions.ServerUsageGuidance

	return mcp.NewToolResultText(responseText), nil
}

// Formatting methods
func (s *Server) formatFieldResult(label string, res extract.Result) string {
	if !res.Matched() {
		return fmt.Sprintf("%s: not found (tried %d rule groups)\n", label, len(res.GroupsTried))
	}

	text := fmt.Sprintf("%s: found via group %s (rules: %s)\n",
		label, res.Group, strings.Join(res.Rules, ", "))
	text += res.Text + "\n"
	return text
}

// Run serves MCP over stdio until the parent process closes the stream or
// the transport fails.
func (s *Server) Run(_ context.Context) error {
	s.logger.Debug("mcpserver.run.start",
		"name", s.config.AppName,
		"input_dir", s.config.InputDir,
	)

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
