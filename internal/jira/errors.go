package jira

import (
	"errors"
	"fmt"
)

// maxBodyExcerpt bounds how much of an error response body is kept.
const maxBodyExcerpt = 200

// ErrAuthNotConfigured is returned before any network call when no credentials were resolved.
var ErrAuthNotConfigured = errors.New("authentication not configured: set JIRA_USERNAME and JIRA_API_TOKEN or pass --username and --api_token")

// HTTPError is returned for a non-2xx response from Jira.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// TransportError wraps a failure that happened before a response was obtained
// (DNS, connection refused, timeout).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func newHTTPError(status int, body []byte) *HTTPError {
	return &HTTPError{StatusCode: status, Body: truncate(string(body), maxBodyExcerpt)}
}

// truncate cuts s to at most n characters
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
