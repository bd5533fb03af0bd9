package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neujobscan/backend/engine"
)

// ParseResumeTool extracts structured resume data from raw text
type ParseResumeTool struct{}

// NewParseResumeTool creates the resume parsing tool
func NewParseResumeTool() *ParseResumeTool {
	return &ParseResumeTool{}
}

func (t *ParseResumeTool) Name() string {
	return "parse_resume"
}

func (t *ParseResumeTool) Description() string {
	return "Parse raw resume text into structured data: personal info, work experience, education, categorized skills, certifications and projects"
}

func (t *ParseResumeTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Raw resume text to parse",
			},
		},
		"required": []string{"content"},
	}
}

func (t *ParseResumeTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	parsed, err := engine.ParseResume(req.Content)
	if err != nil {
		return NewErrorResult(err.Error())
	}
	return NewSuccessResult(parsed)
}
