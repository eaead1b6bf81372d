package auth

import (
	"encoding/base64"
	"net/http"
)

const jsonMediaType = "application/json"

// HeaderSet is the fixed set of headers sent with every Jira request.
// It is read-only once built and safe to share between goroutines.
type HeaderSet struct {
	Authorization string
	Accept        string
	ContentType   string
}

// BuildHeaders derives the Basic auth header set for a username and API token.
func BuildHeaders(username, apiToken string) HeaderSet {
	encoded := base64.StdEncoding.EncodeToString([]byte(username + ":" + apiToken))
	return HeaderSet{
		Authorization: "Basic " + encoded,
		Accept:        jsonMediaType,
		ContentType:   jsonMediaType,
	}
}

// HeadersFor returns a header set for complete credentials, or nil.
func HeadersFor(c Credentials) *HeaderSet {
	if !c.Complete() {
		return nil
	}
	h := BuildHeaders(c.Username, c.APIToken)
	return &h
}

// Apply sets the headers on req.
func (h HeaderSet) Apply(req *http.Request) {
	req.Header.Set("Authorization", h.Authorization)
	req.Header.Set("Accept", h.Accept)
	req.Header.Set("Content-Type", h.ContentType)
}
