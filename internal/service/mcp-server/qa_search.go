package mcpserver

import (
	"fmt"

	"jira_mcp/internal/model"
)

// QA search types, in schema order
const (
	QASearchInProgressEpics = "in_progress_epics"
	QASearchQATarget        = "qa_target"
	QASearchDeployWaiting   = "deploy_waiting"
	QASearchEpicIssues      = "epic_issues"
)

// QASearchTypes lists the accepted search_type values.
var QASearchTypes = []string{
	QASearchInProgressEpics,
	QASearchQATarget,
	QASearchDeployWaiting,
	QASearchEpicIssues,
}

var qaQueries = map[string]string{
	QASearchInProgressEpics: `project in ("QAQ","이벤트 운영 QA") AND type = Epic AND status = "In Progress"`,
	QASearchQATarget:        `project in ("QAQ","APP 운영 QA") AND "QA 대상" = Y`,
	QASearchDeployWaiting:   `"배포 진행" = YES`,
	QASearchEpicIssues:      `"Epic Link" = %s`,
}

// QA searches also return the QA assignee and QA target custom fields.
var (
	qaSearchFields     = defaultSearchFields + "," + model.FieldQAAssignee + "," + model.FieldQATarget
	qaSearchMaxResults = 100
)

// qaJQL builds the JQL for a QA search type.
func qaJQL(searchType, epicKey, fixVersion string) (string, error) {
	query, ok := qaQueries[searchType]
	if !ok {
		return "", &UnsupportedSearchTypeError{SearchType: searchType}
	}

	switch searchType {
	case QASearchDeployWaiting:
		if fixVersion != "" {
			query += fmt.Sprintf(` AND fixVersion = "%s"`, fixVersion)
		}
	case QASearchEpicIssues:
		query = fmt.Sprintf(query, epicKey)
	}
	return query, nil
}
