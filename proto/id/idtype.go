// Package id holds the generated wire types and service definition of the
// ID service, plus helpers for mapping IDType to scheme names.
package id

import (
	"fmt"
	"strings"
)

// Kind returns the lower-case scheme name, e.g. "snowflake". Unspecified
// maps to "snowflake"; values outside the enum map to "".
func (x IDType) Kind() string {
	if x == IDType_ID_TYPE_UNSPECIFIED {
		return "snowflake"
	}
	name, ok := IDType_name[int32(x)]
	if !ok {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(name, "ID_TYPE_"))
}

// ParseIDType accepts a scheme name ("ulid") or a full enum name
// ("ID_TYPE_ULID"), case-insensitively.
func ParseIDType(s string) (IDType, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(want, "ID_TYPE_") {
		want = "ID_TYPE_" + want
	}
	if v, ok := IDType_value[want]; ok {
		return IDType(v), nil
	}
	return IDType_ID_TYPE_UNSPECIFIED, fmt.Errorf("unknown id type %q", s)
}
