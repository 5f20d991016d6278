package sqlite

import (
	"strings"
	"time"

	"github.com/pdfchat/pdfchat"
)

// scanTime parses a TEXT column holding an RFC3339 timestamp.
func scanTime(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, pdfchat.Errorf(pdfchat.EINTERNAL, "invalid %s timestamp %q: %v", column, value, err)
	}
	return t, nil
}

// addPagination appends LIMIT/OFFSET clauses for positive filter values.
func addPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
