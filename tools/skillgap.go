package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neujobscan/backend/engine"
	"github.com/neujobscan/backend/models"
)

// SkillGapTool identifies missing skills and strengths for a resume/job pair
type SkillGapTool struct{}

// NewSkillGapTool creates the skill-gap tool
func NewSkillGapTool() *SkillGapTool {
	return &SkillGapTool{}
}

func (t *SkillGapTool) Name() string {
	return "skill_gap"
}

func (t *SkillGapTool) Description() string {
	return "Compare resume skills against job skills: missing skills ranked by importance with learning resources, confirmed strengths, and a time-horizon learning plan"
}

func (t *SkillGapTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume": map[string]interface{}{
				"type":        "object",
				"description": "Parsed resume data, as produced by parse_resume",
			},
			"job": map[string]interface{}{
				"type":        "object",
				"description": "Parsed job data, as produced by parse_job",
			},
		},
		"required": []string{"resume", "job"},
	}
}

func (t *SkillGapTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req struct {
		Resume *models.ParsedResumeData `json:"resume"`
		Job    *models.ParsedJobData    `json:"job"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	gaps, err := engine.ComputeSkillGaps(req.Resume, req.Job)
	if err != nil {
		return NewErrorResult(err.Error())
	}
	return NewSuccessResult(gaps)
}
