package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pitchlab/callgrader/internal/enrich"
	"github.com/pitchlab/callgrader/internal/grader"
	"github.com/pitchlab/callgrader/internal/models"
)

// GradeInput is the MCP tool input schema (matches the HTTP API field names).
type GradeInput struct {
	SessionID      string        `json:"session_id" jsonschema:"unique session identifier"`
	Turns          []models.Turn `json:"turns" jsonschema:"ordered diarized turns of the finished session"`
	PolicySnippets []string      `json:"policy_snippets,omitempty" jsonschema:"optional policy text inserted into the rubric prompt"`
}

// GradeOutput mirrors the HTTP grade response.
type GradeOutput struct {
	Packet models.GradePacket `json:"packet"`
	Record enrich.FlatRecord  `json:"record"`
}

// NewGradeHandler returns a tool handler that uses the given grader.
// Pass the returned function to mcp.AddTool.
func NewGradeHandler(g *grader.Grader) func(context.Context, *mcp.CallToolRequest, GradeInput) (*mcp.CallToolResult, GradeOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GradeInput) (*mcp.CallToolResult, GradeOutput, error) {
		return GradeSession(ctx, g, req, input)
	}
}

// GradeSession runs the full grading pipeline and returns the result.
func GradeSession(
	ctx context.Context,
	g *grader.Grader,
	req *mcp.CallToolRequest,
	input GradeInput,
) (*mcp.CallToolResult, GradeOutput, error) {
	transcript := models.Transcript{
		SessionID: input.SessionID,
		Turns:     input.Turns,
	}

	packet := g.Grade(ctx, transcript, input.PolicySnippets)

	return nil, GradeOutput{
		Packet: packet,
		Record: enrich.Enrich(transcript, packet),
	}, nil
}
