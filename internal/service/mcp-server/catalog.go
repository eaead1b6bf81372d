package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// ParamType is the JSON type of a tool parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeInteger ParamType = "integer"
)

// Param describes one tool parameter.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	Default     any
	Enum        []string
}

// ToolDefinition is the static description of a tool.
type ToolDefinition struct {
	Name        string
	Description string
	Params      []Param
}

// Tool names
const (
	ToolGetProject         = "get_project"
	ToolSearchIssues       = "search_issues"
	ToolGetIssue           = "get_issue"
	ToolGetProjectVersions = "get_project_versions"
	ToolSearchQAIssues     = "search_qa_issues"
)

const (
	defaultSearchFields     = "summary,status,priority,issuetype,assignee,created,updated"
	defaultSearchMaxResults = 50
)

var (
	getProjectDefinition = ToolDefinition{
		Name:        ToolGetProject,
		Description: "Get project details (key, name, lead, type, category)",
		Params: []Param{
			{Name: "project_key", Type: TypeString, Required: true, Description: "Project key (e.g. QAQ, WASD, PROMO)"},
		},
	}

	searchIssuesDefinition = ToolDefinition{
		Name:        ToolSearchIssues,
		Description: "Search issues using JQL",
		Params: []Param{
			{Name: "jql", Type: TypeString, Required: true, Description: "JQL query (e.g. project = QAQ AND status = 'In Progress')"},
			{Name: "fields", Type: TypeString, Default: defaultSearchFields, Description: "Comma-separated fields to return"},
			{Name: "max_results", Type: TypeInteger, Default: defaultSearchMaxResults, Description: "Maximum number of results to return"},
		},
	}

	getIssueDefinition = ToolDefinition{
		Name:        ToolGetIssue,
		Description: "Get details of a single issue, including QA custom fields",
		Params: []Param{
			{Name: "issue_key", Type: TypeString, Required: true, Description: "Issue key (e.g. QAQ-777, WASD-1251)"},
			{Name: "fields", Type: TypeString, Description: "Comma-separated fields to fetch (default: all fields)"},
		},
	}

	getProjectVersionsDefinition = ToolDefinition{
		Name:        ToolGetProjectVersions,
		Description: "List the versions of a project",
		Params: []Param{
			{Name: "project_key", Type: TypeString, Required: true, Description: "Project key (e.g. QAQ, WASD)"},
		},
	}

	searchQAIssuesDefinition = ToolDefinition{
		Name:        ToolSearchQAIssues,
		Description: "Search QA issues with predefined JQL",
		Params: []Param{
			{
				Name:     "search_type",
				Type:     TypeString,
				Required: true,
				Enum:     QASearchTypes,
				Description: "Search type: in_progress_epics (epics in progress), qa_target (QA targets), " +
					"deploy_waiting (waiting for deployment), epic_issues (issues of one epic)",
			},
			{Name: "epic_key", Type: TypeString, Description: "Epic key (required when search_type is epic_issues)"},
			{Name: "fix_version", Type: TypeString, Description: "Fix version (optional when search_type is deploy_waiting)"},
		},
	}
)

// MCPTool converts the definition to its mcp-go form.
func (d ToolDefinition) MCPTool() mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(d.Description)}
	for _, p := range d.Params {
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		if len(p.Enum) > 0 {
			propOpts = append(propOpts, mcp.Enum(p.Enum...))
		}

		switch p.Type {
		case TypeInteger:
			if def, ok := p.Default.(int); ok {
				propOpts = append(propOpts, mcp.DefaultNumber(float64(def)))
			}
			opts = append(opts, mcp.WithNumber(p.Name, propOpts...))
		default:
			if def, ok := p.Default.(string); ok {
				propOpts = append(propOpts, mcp.DefaultString(def))
			}
			opts = append(opts, mcp.WithString(p.Name, propOpts...))
		}
	}
	return mcp.NewTool(d.Name, opts...)
}
