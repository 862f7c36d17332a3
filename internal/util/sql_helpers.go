package util

import (
	"database/sql"
	"strings"
)

// StringToNullString maps blank strings to NULL so optional text columns
// do not store empty values.
func StringToNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
