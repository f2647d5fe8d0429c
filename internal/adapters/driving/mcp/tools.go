package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the substring to search for in note titles and bodies"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// ByTagInput is the input schema for the by_tag tool.
type ByTagInput struct {
	Tag   string `json:"tag" jsonschema:"the tag to look up, case-insensitive"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// GetNoteInput is the input schema for the get_note tool.
type GetNoteInput struct {
	ID string `json:"id" jsonschema:"the note id, e.g. shell/basics/variables"`
}

// NoteOutput represents a single note in tool results.
type NoteOutput struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Topic   string   `json:"topic,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Score   float64  `json:"score,omitempty"`
	Snippet string   `json:"snippet,omitempty"`
	Body    string   `json:"body,omitempty"`
}

// ListOutput is the output schema for the search and by_tag tools.
type ListOutput struct {
	Results []NoteOutput `json:"results"`
	Count   int          `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the note catalog by substring, ranked by occurrence count",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "by_tag",
		Description: "List notes carrying a tag",
	}, s.handleByTag)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_note",
		Description: "Fetch a note's full content by id",
	}, s.handleGetNote)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, ListOutput, error) {
	opts := domain.QueryOptions{Limit: defaultLimit(input.Limit)}
	results, err := s.ports.Query.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, ListOutput{}, err
	}
	return nil, toListOutput(results), nil
}

// handleByTag handles the by_tag tool invocation.
func (s *Server) handleByTag(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ByTagInput,
) (*mcp.CallToolResult, ListOutput, error) {
	opts := domain.QueryOptions{Limit: defaultLimit(input.Limit)}
	results, err := s.ports.Query.ByTag(ctx, input.Tag, opts)
	if err != nil {
		return nil, ListOutput{}, err
	}
	return nil, toListOutput(results), nil
}

// handleGetNote handles the get_note tool invocation.
func (s *Server) handleGetNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetNoteInput,
) (*mcp.CallToolResult, NoteOutput, error) {
	doc, err := s.ports.Catalog.Get(ctx, input.ID)
	if err != nil {
		return nil, NoteOutput{}, err
	}
	return nil, NoteOutput{
		ID:    doc.ID,
		Title: doc.Title,
		Topic: doc.Topic(),
		Tags:  doc.Tags,
		Body:  doc.Body,
	}, nil
}

// defaultLimit applies the tool default of 10 results.
func defaultLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	return limit
}

// toListOutput converts query results into the tool output shape.
func toListOutput(results []domain.QueryResult) ListOutput {
	out := ListOutput{
		Results: make([]NoteOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		doc := &results[i].Document
		out.Results[i] = NoteOutput{
			ID:      doc.ID,
			Title:   doc.Title,
			Topic:   doc.Topic(),
			Tags:    doc.Tags,
			Score:   results[i].Score,
			Snippet: results[i].Snippet,
		}
	}
	return out
}
