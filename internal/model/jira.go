package model

// Custom field ids of the QA workflow on the Jira instance.
const (
	FieldQAAssignee = "customfield_10521"
	FieldDeployDate = "customfield_10706"
	FieldStartDate  = "customfield_10209"
	FieldEndDate    = "customfield_10210"
	FieldQATarget   = "customfield_12213"
	FieldEpicName   = "customfield_10103"
)

// Project is the reduced form of GET project/{key}
type Project struct {
	Key            *string `json:"key"`
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	Lead           *string `json:"lead"`
	ProjectTypeKey *string `json:"projectTypeKey"`
	Category       *string `json:"category"`
}

// IssueSummary is one row of a search result
type IssueSummary struct {
	Key      *string `json:"key"`
	Summary  *string `json:"summary"`
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
	Assignee *string `json:"assignee"`
	Created  *string `json:"created"`
	Updated  *string `json:"updated"`
}

// SearchResult is the reduced form of GET search
type SearchResult struct {
	Total      *int           `json:"total"`
	MaxResults *int           `json:"maxResults"`
	StartAt    *int           `json:"startAt"`
	Issues     []IssueSummary `json:"issues"`
}

// Issue is the reduced form of GET issue/{key}
type Issue struct {
	Key         *string   `json:"key"`
	Summary     *string   `json:"summary"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Priority    *string   `json:"priority"`
	IssueType   *string   `json:"issuetype"`
	Assignee    *string   `json:"assignee"`
	Reporter    *string   `json:"reporter"`
	Created     *string   `json:"created"`
	Updated     *string   `json:"updated"`
	DueDate     *string   `json:"duedate"`
	Project     *string   `json:"project"`
	Labels      []string  `json:"labels"`
	FixVersions []*string `json:"fixVersions"`

	QAAssignee *string `json:"qa_assignee"`
	DeployDate any     `json:"deploy_date"`
	StartDate  any     `json:"start_date"`
	EndDate    any     `json:"end_date"`
	QATarget   *string `json:"qa_target"`
	EpicName   any     `json:"epic_name"`
}

// Version is one entry of GET project/{key}/versions
type Version struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Archived    *bool   `json:"archived"`
	Released    *bool   `json:"released"`
	ReleaseDate *string `json:"releaseDate"`
	Description *string `json:"description"`
}
