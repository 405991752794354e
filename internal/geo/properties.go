package geo

import (
	"fmt"
	"time"
)

// MismatchedRow reports an attribute row whose arity does not match
// the field name list. Rows are never truncated or padded to fit.
type MismatchedRow struct {
	Fields int
	Values int
}

func (e *MismatchedRow) Error() string {
	return fmt.Sprintf("attribute row has %d values for %d fields", e.Values, e.Fields)
}

// ProjectRow pairs one raw attribute row with its field names, in
// field order. Date and time values become ISO-8601 text because
// GeoJSON properties carry only JSON-native values.
func ProjectRow(fields []string, row []any) (Properties, error) {
	if len(row) != len(fields) {
		return nil, &MismatchedRow{Fields: len(fields), Values: len(row)}
	}

	props := make(Properties, 0, len(fields))
	for i, name := range fields {
		props = append(props, Property{Name: name, Value: normalizeValue(row[i])})
	}

	return props, nil
}

// normalizeValue rewrites values that have no JSON representation of
// their own. Everything else passes through unchanged.
func normalizeValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return formatTime(t)
	}

	return v
}

// formatTime renders a timestamp as ISO-8601 text, using the bare date
// form when the clock part is zero. DBF date fields carry no time of
// day, so they come out as YYYY-MM-DD.
func formatTime(t time.Time) string {
	h, m, s := t.Clock()
	if h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}

	return t.Format(time.RFC3339)
}
