package paramskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeUnsupportedShape marks a type whose structural shape matches no
	// supported case: a multi-field struct, a map, a slice, a channel, or
	// any other shape that needs an explicitly registered schema.
	CodeUnsupportedShape = "unsupported_shape"
	// CodeEmptyEnum marks an enumeration registered with no alternatives.
	CodeEmptyEnum = "empty_enum"
)

// Issue represents a single derivation failure.
type Issue struct {
	Path    string // Type path from the requested root (for example: /Wrapped/Inner).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints (how to register a schema, etc.).
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"type":"main.Widget"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of derivation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unsupported_shape at /Inner
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
