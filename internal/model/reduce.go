package model

// NewProject reduces a raw project payload.
func NewProject(raw Object) Project {
	return Project{
		Key:            raw.Str("key"),
		Name:           raw.Str("name"),
		Description:    raw.Str("description"),
		Lead:           raw.NestedStr("lead", "displayName"),
		ProjectTypeKey: raw.Str("projectTypeKey"),
		Category:       raw.NestedStr("projectCategory", "name"),
	}
}

// NewSearchResult reduces a raw search payload.
func NewSearchResult(raw Object) SearchResult {
	result := SearchResult{
		Total:      raw.Int("total"),
		MaxResults: raw.Int("maxResults"),
		StartAt:    raw.Int("startAt"),
		Issues:     []IssueSummary{},
	}
	for _, item := range raw.List("issues") {
		issue := AsObject(item)
		if issue == nil {
			continue
		}
		fields := issue.Obj("fields")
		result.Issues = append(result.Issues, IssueSummary{
			Key:      issue.Str("key"),
			Summary:  fields.Str("summary"),
			Status:   fields.NestedStr("status", "name"),
			Priority: fields.NestedStr("priority", "name"),
			Assignee: fields.NestedStr("assignee", "displayName"),
			Created:  fields.Str("created"),
			Updated:  fields.Str("updated"),
		})
	}
	return result
}

// NewIssue reduces a raw issue payload, including the QA custom fields.
func NewIssue(raw Object) Issue {
	fields := raw.Obj("fields")

	labels := []string{}
	for _, l := range fields.List("labels") {
		if s, ok := l.(string); ok {
			labels = append(labels, s)
		}
	}

	fixVersions := []*string{}
	for _, v := range fields.List("fixVersions") {
		fixVersions = append(fixVersions, AsObject(v).Str("name"))
	}

	return Issue{
		Key:         raw.Str("key"),
		Summary:     fields.Str("summary"),
		Description: fields.Str("description"),
		Status:      fields.NestedStr("status", "name"),
		Priority:    fields.NestedStr("priority", "name"),
		IssueType:   fields.NestedStr("issuetype", "name"),
		Assignee:    fields.NestedStr("assignee", "displayName"),
		Reporter:    fields.NestedStr("reporter", "displayName"),
		Created:     fields.Str("created"),
		Updated:     fields.Str("updated"),
		DueDate:     fields.Str("duedate"),
		Project:     fields.NestedStr("project", "name"),
		Labels:      labels,
		FixVersions: fixVersions,

		QAAssignee: fields.NestedStr(FieldQAAssignee, "displayName"),
		DeployDate: fields.Scalar(FieldDeployDate),
		StartDate:  fields.Scalar(FieldStartDate),
		EndDate:    fields.Scalar(FieldEndDate),
		QATarget:   fields.NestedStr(FieldQATarget, "value"),
		EpicName:   fields.Scalar(FieldEpicName),
	}
}

// NewVersions reduces a raw version list. Non-object entries are skipped.
func NewVersions(raw []any) []Version {
	versions := make([]Version, 0, len(raw))
	for _, item := range raw {
		v := AsObject(item)
		if v == nil {
			continue
		}
		versions = append(versions, Version{
			ID:          v.Str("id"),
			Name:        v.Str("name"),
			Archived:    v.Bool("archived"),
			Released:    v.Bool("released"),
			ReleaseDate: v.Str("releaseDate"),
			Description: v.Str("description"),
		})
	}
	return versions
}
