package config

import (
	"fmt"
	"strings"

	"github.com/pathtree/pathtree/router"
)

// ValidationError represents a route table validation error.
type ValidationError struct {
	Path    string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// HasErrors returns true if there are validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validate checks the route table against the registry: paths must be
// well-formed templates, method tokens must be in the supported set,
// endpoint names must resolve, and no (path, method) pair may appear
// twice. The underlying engine would silently let the last duplicate
// win, so duplicates are rejected here, before registration.
func (t *RouteTable) Validate(reg *EndpointRegistry) error {
	var errs ValidationErrors

	addError := func(path, format string, args ...any) {
		errs = append(errs, ValidationError{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if len(t.Routes) == 0 {
		addError("routes", "route table is empty")
		return errs
	}

	seen := make(map[string]int)
	for i, route := range t.Routes {
		prefix := fmt.Sprintf("routes[%d]", i)

		validatePattern(route.Path, prefix, addError)

		if len(route.Methods) == 0 {
			addError(prefix+".methods", "at least one method is required")
		}
		for j, token := range route.Methods {
			method, ok := router.ParseMethod(token)
			if !ok {
				addError(fmt.Sprintf("%s.methods[%d]", prefix, j), "unsupported method %q", token)
				continue
			}
			key := route.Path + " " + method.String()
			if prev, dup := seen[key]; dup {
				addError(fmt.Sprintf("%s.methods[%d]", prefix, j),
					"duplicate registration of %s %s (first at routes[%d])", method, route.Path, prev)
			} else {
				seen[key] = i
			}
		}

		if route.Endpoint == "" {
			addError(prefix+".endpoint", "endpoint name is required")
		} else if reg != nil {
			if _, ok := reg.Lookup(route.Endpoint); !ok {
				addError(prefix+".endpoint", "unknown endpoint %q", route.Endpoint)
			}
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validatePattern checks a single path template.
func validatePattern(pattern, prefix string, addError func(string, string, ...any)) {
	field := prefix + ".path"

	if pattern == "" {
		addError(field, "path is required")
		return
	}
	if !strings.HasPrefix(pattern, "/") {
		addError(field, "path must start with '/'")
		return
	}
	if pattern == "/" {
		return
	}

	segments := strings.Split(strings.Trim(pattern, "/"), "/")
	for i, seg := range segments {
		switch {
		case seg == "":
			addError(field, "empty segment at position %d", i)
		case strings.HasPrefix(seg, ":"):
			if len(seg) == 1 {
				addError(field, "parameter segment at position %d has no name", i)
			}
		case strings.HasPrefix(seg, "*"):
			if i != len(segments)-1 {
				addError(field, "wildcard segment must be the final segment")
			}
		case strings.ContainsAny(seg, ":*"):
			addError(field, "':' and '*' are only allowed at the start of a segment")
		}
	}
}
