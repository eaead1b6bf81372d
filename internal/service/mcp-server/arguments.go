package mcpserver

import (
	"encoding/json"
	"math"
	"strconv"
)

// Arguments are tool arguments after validation and defaulting.
type Arguments map[string]any

// String returns a string argument or "".
func (a Arguments) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Int returns an integer argument or 0.
func (a Arguments) Int(name string) int {
	i, _ := a[name].(int)
	return i
}

// bindArguments checks raw against the definition and applies defaults.
// Empty strings count as absent. Unknown arguments are ignored.
func bindArguments(def ToolDefinition, raw map[string]any) (Arguments, error) {
	args := Arguments{}
	for _, p := range def.Params {
		value, err := coerce(p, raw[p.Name])
		if err != nil {
			return nil, &ValidationError{Tool: def.Name, Param: p.Name, Reason: err.Error()}
		}
		if value == nil {
			if p.Required {
				return nil, &ValidationError{Tool: def.Name, Param: p.Name, Reason: "is required"}
			}
			if p.Default != nil {
				args[p.Name] = p.Default
			}
			continue
		}
		args[p.Name] = value
	}
	return args, nil
}

// coerce returns nil for an absent value.
func coerce(p Param, v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch p.Type {
	case TypeInteger:
		var n int
		switch x := v.(type) {
		case float64:
			if x != math.Trunc(x) {
				return nil, errMustBeInteger
			}
			if x < 0 {
				return nil, errNegative
			}
			if x > math.MaxInt32 {
				return nil, errTooLarge
			}
			n = int(x)
		case int:
			n = x
		case json.Number:
			i, err := strconv.Atoi(x.String())
			if err != nil {
				return nil, errMustBeInteger
			}
			n = i
		case string:
			if x == "" {
				return nil, nil
			}
			i, err := strconv.Atoi(x)
			if err != nil {
				return nil, errMustBeInteger
			}
			n = i
		default:
			return nil, errMustBeInteger
		}
		if n < 0 {
			return nil, errNegative
		}
		if n > math.MaxInt32 {
			return nil, errTooLarge
		}
		return n, nil

	default:
		s, ok := v.(string)
		if !ok {
			return nil, errMustBeString
		}
		if s == "" {
			return nil, nil
		}
		return s, nil
	}
}
