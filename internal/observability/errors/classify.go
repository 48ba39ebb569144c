// Package errors normalizes error values into stable category names for log
// tagging.
package errors

import (
	goerrors "errors"
	"reflect"
	"strings"

	"github.com/chainfleet/jobctl/internal/core"
)

// Classify returns a normalized error type name suitable for tagging logs.
// Remote API categories win over whatever lower-level error they wrap; other
// errors are unwrapped to the innermost concrete type and converted to
// snake_case-ish.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	var authErr *core.AuthError
	if goerrors.As(err, &authErr) {
		return "auth_error"
	}
	var netErr *core.NetworkError
	if goerrors.As(err, &netErr) {
		return "network_error"
	}
	var formatErr *core.ResponseFormatError
	if goerrors.As(err, &formatErr) {
		return "response_format_error"
	}
	if goerrors.Is(err, core.ErrNoCredential) {
		return "no_credential"
	}

	// Unwrap to the innermost error for better signal.
	for {
		unwrapped := goerrors.Unwrap(err)
		if unwrapped == nil {
			break
		}
		err = unwrapped
	}

	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}

	name := strings.ToLower(strings.ReplaceAll(t.String(), "*", ""))
	name = strings.ReplaceAll(name, ".", "_")
	if name == "" {
		return "unknown"
	}
	return name
}
