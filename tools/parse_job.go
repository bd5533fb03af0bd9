package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neujobscan/backend/engine"
)

// ParseJobTool extracts structured job posting data from raw text
type ParseJobTool struct{}

// NewParseJobTool creates the job parsing tool
func NewParseJobTool() *ParseJobTool {
	return &ParseJobTool{}
}

func (t *ParseJobTool) Name() string {
	return "parse_job"
}

func (t *ParseJobTool) Description() string {
	return "Parse a raw job posting into structured data: title, company, requirements, responsibilities, skills with required flags, and top keywords"
}

func (t *ParseJobTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Raw job posting text to parse",
			},
		},
		"required": []string{"content"},
	}
}

func (t *ParseJobTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	parsed, err := engine.ParseJob(req.Content)
	if err != nil {
		return NewErrorResult(err.Error())
	}
	return NewSuccessResult(parsed)
}
