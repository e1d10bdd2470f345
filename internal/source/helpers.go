package source

import (
	"database/sql"

	"github.com/alexanderramin/chapterhub/internal/domain"
)

// timeframeColumns maps a timeframe to its start/end/rule columns. A nil
// timeframe is stored as NULL so it reads back as nil; an empty one stays "".
func timeframeColumns(tf *domain.Timeframe) (start, end interface{}, rule string) {
	if tf == nil {
		return nil, nil, ""
	}
	return tf.Start, tf.End, tf.Rule
}

// nullableFloat converts a *float64 to a value suitable for SQLite storage.
func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// nullableInt converts a *int to a value suitable for SQLite storage.
func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
