//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"sort"
	"strings"
)

// FieldErrors carries per-field validation messages for form-shaped input.
// It implements error so services can return it through the usual path while
// the HTTP layer surfaces each offending field inline.
type FieldErrors map[string]string

// Error joins field messages in a stable order.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return strings.Join(parts, "; ")
}
