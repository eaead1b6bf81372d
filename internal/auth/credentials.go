package auth

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

const (
	// UsernameKey is the logical key of the Jira principal.
	UsernameKey = "username"
	// APITokenKey is the logical key of the Jira API secret.
	APITokenKey = "api_token"

	envPrefix = "JIRA_"
)

// Credentials holds the principal and secret used for Basic auth against Jira.
type Credentials struct {
	Username string
	APIToken string
}

// Complete reports whether both halves of the pair are present.
func (c Credentials) Complete() bool {
	return c.Username != "" && c.APIToken != ""
}

// Resolver looks up credential values from launch arguments and the environment.
// A --<key> flag wins over the JIRA_<KEY> environment variable.
type Resolver struct {
	Args   []string
	Lookup func(string) (string, bool)
}

// NewResolver creates a Resolver over the process arguments and environment
func NewResolver() *Resolver {
	return &Resolver{
		Args:   os.Args[1:],
		Lookup: os.LookupEnv,
	}
}

// Resolve returns the value for key and whether one was found.
func (r *Resolver) Resolve(key string) (string, bool) {
	if v, ok := r.flagValue(key); ok {
		return v, true
	}
	if r.Lookup == nil {
		return "", false
	}
	return r.Lookup(EnvName(key))
}

// Credentials resolves both halves of the pair. The result may be incomplete.
func (r *Resolver) Credentials() Credentials {
	username, _ := r.Resolve(UsernameKey)
	token, _ := r.Resolve(APITokenKey)
	return Credentials{Username: username, APIToken: token}
}

// flagValue parses Args with a throwaway flag set that only knows key, so
// flags belonging to other components are skipped rather than rejected.
func (r *Resolver) flagValue(key string) (string, bool) {
	fs := pflag.NewFlagSet(key, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	value := fs.String(key, "", "")

	if err := fs.Parse(r.Args); err != nil {
		return "", false
	}
	if !fs.Changed(key) {
		return "", false
	}
	return *value, true
}

// EnvName maps a logical key to its environment variable, e.g. api_token -> JIRA_API_TOKEN
func EnvName(key string) string {
	return envPrefix + strings.ToUpper(key)
}
