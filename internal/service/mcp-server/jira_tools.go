package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"jira_mcp/internal/model"
)

const (
	apiPath       = "/rest/api/2"
	apiLatestPath = "/rest/api/latest"
)

func (d *Dispatcher) getProject(ctx context.Context, args Arguments) (string, error) {
	path := fmt.Sprintf("%s/project/%s", apiPath, url.PathEscape(args.String("project_key")))
	data, err := d.jira.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return "", err
	}

	project, err := asObject(data)
	if err != nil {
		return "", err
	}
	return renderJSON("📋 Project", model.NewProject(project))
}

func (d *Dispatcher) searchIssues(ctx context.Context, args Arguments) (string, error) {
	return d.search(ctx, args.String("jql"), args.String("fields"), args.Int("max_results"))
}

func (d *Dispatcher) search(ctx context.Context, jql, fields string, maxResults int) (string, error) {
	query := url.Values{}
	query.Set("jql", jql)
	query.Set("fields", fields)
	query.Set("maxResults", strconv.Itoa(maxResults))

	data, err := d.jira.Do(ctx, http.MethodGet, apiPath+"/search", query, nil)
	if err != nil {
		return "", err
	}

	body, err := asObject(data)
	if err != nil {
		return "", err
	}
	result := model.NewSearchResult(body)
	return renderJSON(fmt.Sprintf("🔍 Search results (%s)", countLabel(result.Total)), result)
}

func (d *Dispatcher) getIssue(ctx context.Context, args Arguments) (string, error) {
	issueKey := args.String("issue_key")

	var query url.Values
	if fields := args.String("fields"); fields != "" {
		query = url.Values{"fields": {fields}}
	}

	path := fmt.Sprintf("%s/issue/%s", apiPath, url.PathEscape(issueKey))
	data, err := d.jira.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return "", err
	}

	issue, err := asObject(data)
	if err != nil {
		return "", err
	}
	return renderJSON(fmt.Sprintf("📄 Issue (%s)", issueKey), model.NewIssue(issue))
}

func (d *Dispatcher) getProjectVersions(ctx context.Context, args Arguments) (string, error) {
	path := fmt.Sprintf("%s/project/%s/versions", apiLatestPath, url.PathEscape(args.String("project_key")))
	data, err := d.jira.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return "", err
	}

	raw, ok := data.([]any)
	if !ok {
		return "", &UnexpectedResponseError{Want: "array"}
	}
	versions := model.NewVersions(raw)
	return renderJSON(fmt.Sprintf("📦 Project versions (%d)", len(versions)), versions)
}

func (d *Dispatcher) searchQAIssues(ctx context.Context, args Arguments) (string, error) {
	jql, err := qaJQL(args.String("search_type"), args.String("epic_key"), args.String("fix_version"))
	if err != nil {
		return "", err
	}
	return d.search(ctx, jql, qaSearchFields, qaSearchMaxResults)
}

// asObject accepts only a top-level JSON object. Nested fields are reduced
// leniently by model.Object.
func asObject(data any) (model.Object, error) {
	obj := model.AsObject(data)
	if obj == nil {
		return nil, &UnexpectedResponseError{Want: "object"}
	}
	return obj, nil
}
