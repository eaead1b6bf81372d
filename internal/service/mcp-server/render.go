package mcpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// renderJSON formats v as a fenced, indented JSON block under header.
func renderJSON(header string, v any) (string, error) {
	buf := new(bytes.Buffer)
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return fmt.Sprintf("%s:\n```json\n%s\n```", header, strings.TrimRight(buf.String(), "\n")), nil
}

func failureText(label string, err error) string {
	return fmt.Sprintf("❌ %s: %v", label, err)
}

func countLabel(total *int) string {
	if total == nil {
		return "unknown total"
	}
	return strconv.Itoa(*total) + " issues"
}
