package schema

import (
	"time"

	perr "ledgerdesk/internal/platform/errors"
)

// Record is anything that can lower itself to positional wire values.
// A nil element marks a database null
type Record interface {
	WireValues() []any
}

// Encode validates a record against the table declaration and returns the
// positional wire row. Pure and deterministic: same record and table, same
// row. The first violation aborts the encode; nothing is coerced
func Encode(tbl Table, rec Record) ([]any, error) {
	vals := rec.WireValues()
	if len(vals) != len(tbl.Columns) {
		return nil, perr.SchemaViolationf(
			"record carries %d values, table %s.%s declares %d columns",
			len(vals), tbl.Schema, tbl.Name, len(tbl.Columns),
		)
	}
	for i, col := range tbl.Columns {
		v := vals[i]
		if v == nil {
			if !col.Nullable {
				return nil, perr.WithField(perr.SchemaViolationf(
					"column %q is not nullable", col.Name,
				), col.Name)
			}
			continue
		}
		if !col.Type.accepts(v) {
			return nil, perr.WithField(perr.SchemaViolationf(
				"column %q declared %s, value is %T", col.Name, col.Type, v,
			), col.Name)
		}
	}
	return vals, nil
}

// accepts reports whether a non-nil dynamic value matches the wire type
func (t WireType) accepts(v any) bool {
	switch t {
	case WireText:
		_, ok := v.(string)
		return ok
	case WireFloat8:
		_, ok := v.(float64)
		return ok
	case WireBool:
		_, ok := v.(bool)
		return ok
	case WireTimestamp:
		_, ok := v.(time.Time)
		return ok
	case WireInt4:
		switch v.(type) {
		case int32, int:
			return true
		}
		return false
	default:
		return false
	}
}
