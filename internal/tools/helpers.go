package tools

import (
	"fmt"
	"strconv"
)

// requireString extracts a required non-empty string argument, failing
// with a message that names the missing field.
func requireString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing required argument: %s", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("argument %s must be a non-empty string", key)
	}
	return s, nil
}

// requireID extracts a required identifier argument. JSON numbers
// arrive as float64; string ids and keys ("DEV-7") pass through. The
// returned string form feeds URL paths and form fields.
func requireID(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing required argument: %s", key)
	}
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(n), nil
	case string:
		if n != "" {
			return n, nil
		}
	}
	return "", fmt.Errorf("argument %s must be an id or key", key)
}

// optionalString extracts an optional string argument; absent or
// mis-typed values yield "".
func optionalString(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// idValue turns the string form of an id back into a JSON-friendly
// value for link bundles: numeric ids become numbers, keys stay
// strings.
func idValue(id string) any {
	if n, err := strconv.Atoi(id); err == nil {
		return n
	}
	return id
}
