package mcpserver

import (
	"errors"
	"fmt"
)

var (
	errMustBeString  = errors.New("must be a string")
	errMustBeInteger = errors.New("must be an integer")
	errNegative      = errors.New("must not be negative")
	errTooLarge      = errors.New("must not exceed 2147483647")
)

// UnknownToolError is returned for an invocation of a tool absent from the catalog.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// UnsupportedSearchTypeError is returned by search_qa_issues for an unrecognized search_type.
type UnsupportedSearchTypeError struct {
	SearchType string
}

func (e *UnsupportedSearchTypeError) Error() string {
	return fmt.Sprintf("unsupported search type: %s", e.SearchType)
}

// ValidationError reports a malformed or missing argument.
type ValidationError struct {
	Tool   string
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q for %s: %s", e.Param, e.Tool, e.Reason)
}

// UnexpectedResponseError reports a successful response whose top-level JSON
// shape does not match the endpoint.
type UnexpectedResponseError struct {
	Want string
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response: expected a JSON %s", e.Want)
}
