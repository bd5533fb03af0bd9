// Package tools exposes the scan pipeline stages as individually invocable
// tools for the MCP server and the tool-definitions endpoint.
package tools

import (
	"context"
	"encoding/json"
	"sort"
)

// Tool is one invocable pipeline capability
type Tool interface {
	// Name returns the tool name
	Name() string

	// Description returns the tool description for clients
	Description() string

	// InputSchema returns the JSON schema for the tool input
	InputSchema() map[string]interface{}

	// Execute runs the tool with the given input
	Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error)
}

// ToolRegistry holds all available tools, keyed by name
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates an empty tool registry
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{tools: make(map[string]Tool)}
}

// Register adds a tool to the registry. A later registration under the same
// name replaces the earlier one.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools ordered by name
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name() < tools[j].Name()
	})
	return tools
}

// GetToolDefinitions returns name/description/schema triples for every tool,
// ordered by name
func (r *ToolRegistry) GetToolDefinitions() []map[string]interface{} {
	definitions := make([]map[string]interface{}, 0, len(r.tools))
	for _, tool := range r.List() {
		definitions = append(definitions, map[string]interface{}{
			"name":        tool.Name(),
			"description": tool.Description(),
			"parameters":  tool.InputSchema(),
		})
	}
	return definitions
}

// ToolResult is the uniform envelope every tool execution returns
type ToolResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// NewSuccessResult wraps a payload in a successful tool result
func NewSuccessResult(data interface{}) (json.RawMessage, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(ToolResult{Success: true, Data: dataBytes})
}

// NewErrorResult wraps an error message in a failed tool result
func NewErrorResult(errMsg string) (json.RawMessage, error) {
	return json.Marshal(ToolResult{Success: false, Error: errMsg})
}
