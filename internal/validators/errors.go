package validators

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// fieldOrder fixes the order in which fields are reported in
// [ValidationErrors.Message].
var fieldOrder = []string{FieldName, FieldEmail, FieldPassword}

// ValidationErrors maps a field name to the messages describing why the
// field was rejected.
type ValidationErrors map[string][]string

// Add appends a message for field.
func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// Any reports whether at least one message was recorded.
func (v ValidationErrors) Any() bool {
	for _, messages := range v {
		if len(messages) > 0 {
			return true
		}
	}
	return false
}

// Message summarises the errors as the first message followed by the count
// of the remaining ones, e.g. "The name field is required. (and 2 more errors)".
func (v ValidationErrors) Message() string {
	var all []string
	for _, field := range v.fields() {
		all = append(all, v[field]...)
	}

	switch len(all) {
	case 0:
		return ""
	case 1:
		return all[0]
	case 2:
		return all[0] + " (and 1 more error)"
	default:
		return fmt.Sprintf("%s (and %d more errors)", all[0], len(all)-1)
	}
}

func (v ValidationErrors) Error() string {
	return v.Message()
}

// fields returns the known fields in report order followed by any other
// field present, sorted.
func (v ValidationErrors) fields() []string {
	fields := make([]string, 0, len(v))
	known := make(map[string]struct{}, len(fieldOrder))
	for _, f := range fieldOrder {
		known[f] = struct{}{}
		if len(v[f]) > 0 {
			fields = append(fields, f)
		}
	}

	var rest []string
	for f, messages := range v {
		if _, ok := known[f]; !ok && len(messages) > 0 {
			rest = append(rest, f)
		}
	}
	slices.Sort(rest)
	return append(fields, rest...)
}
