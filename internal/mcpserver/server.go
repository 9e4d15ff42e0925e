// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the project catalogue for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sablekunal/all-we-need/internal/content"
	"github.com/sablekunal/all-we-need/internal/leaderboard"
	"github.com/sablekunal/all-we-need/internal/models"
)

// Server wraps the MCP server with catalogue tools. Projects are loaded
// from the content directory on every call so the catalogue is always
// current while the maintainer edits files.
type Server struct {
	mcp        *server.MCPServer
	loader     *content.Loader
	contentDir string
	outputDir  string
}

// New creates a new MCP server with all catalogue tools registered.
// outputDir is where a prior build left its JSON dumps; tools that read
// them report an error until a build has run.
func New(contentDir, outputDir string) *Server {
	s := &Server{
		loader:     content.NewLoader(),
		contentDir: contentDir,
		outputDir:  outputDir,
	}

	s.mcp = server.NewMCPServer(
		"all-we-need",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_projects",
		mcp.WithDescription("List every catalogued project with its slug, title, and tags."),
	), s.listProjects)

	s.mcp.AddTool(mcp.NewTool("get_project",
		mcp.WithDescription("Return the full record of a single project."),
		mcp.WithString("slug", mcp.Required(), mcp.Description("Project slug (e.g. figma-dev)")),
	), s.getProject)

	s.mcp.AddTool(mcp.NewTool("search_projects",
		mcp.WithDescription("Search projects by title, description, or tag."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchProjects)

	s.mcp.AddTool(mcp.NewTool("get_leaderboard",
		mcp.WithDescription("Return the merge leaderboard, optionally limited to a recency window."),
		mcp.WithString("window", mcp.Description("Recency window: daily, week, month, or all (default all)")),
	), s.getLeaderboard)

	s.mcp.AddTool(mcp.NewTool("get_project_contract",
		mcp.WithDescription("Returns the canonical project file format. "+
			"Call this before drafting a new project submission."),
	), s.getProjectContract)

	// Resource: project format contract.
	s.mcp.AddResource(
		mcp.NewResource("allweneed://project-format", "Project Format Contract",
			mcp.WithResourceDescription("Canonical Markdown project format that all submissions must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readProjectFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) load() ([]models.Project, error) {
	return s.loader.Load(s.contentDir)
}

type projectSummary struct {
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Link  string   `json:"link"`
}

func summarize(p models.Project) projectSummary {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return projectSummary{Slug: p.Slug, Title: p.Title, Tags: tags, Link: p.Link}
}

func (s *Server) listProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projects, err := s.load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	summaries := make([]projectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, summarize(p))
	}

	out, _ := json.MarshalIndent(summaries, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := req.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	projects, err := s.load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	for _, p := range projects {
		if p.Slug != slug {
			continue
		}
		raw, readErr := os.ReadFile(filepath.Join(s.contentDir, p.Filename))
		if readErr != nil {
			return mcp.NewToolResultError(readErr.Error()), nil
		}
		return mcp.NewToolResultText(string(raw)), nil
	}

	return mcp.NewToolResultError(fmt.Sprintf("not found: %s", slug)), nil
}

func (s *Server) searchProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	projects, err := s.load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	needle := strings.ToLower(query)
	var matches []projectSummary
	for _, p := range projects {
		if matchesProject(p, needle) {
			matches = append(matches, summarize(p))
		}
	}

	if len(matches) == 0 {
		return mcp.NewToolResultText("no projects found"), nil
	}
	out, _ := json.MarshalIndent(matches, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func matchesProject(p models.Project, needle string) bool {
	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func (s *Server) getLeaderboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	w := leaderboard.WindowAll
	if v, err := req.RequireString("window"); err == nil && v != "" {
		w = leaderboard.Window(v)
	}
	switch w {
	case leaderboard.WindowDaily, leaderboard.WindowWeek, leaderboard.WindowMonth, leaderboard.WindowAll:
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown window: %s", w)), nil
	}

	raw, err := os.ReadFile(filepath.Join(s.outputDir, "leaderboard.json"))
	if err != nil {
		return mcp.NewToolResultError("leaderboard unavailable, run a build first: " + err.Error()), nil
	}
	var stats []models.ContributorStat
	if err := json.Unmarshal(raw, &stats); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rows := leaderboard.FilterWindow(stats, w, time.Now())
	if rows == nil {
		rows = []models.ContributorStat{}
	}
	out, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getProjectContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(ProjectFormatContract), nil
}

func (s *Server) readProjectFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "allweneed://project-format",
			MIMEType: "text/markdown",
			Text:     ProjectFormatContract,
		},
	}, nil
}
