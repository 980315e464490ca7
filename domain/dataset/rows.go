// Package dataset holds tabular data as a homogeneous list of rows, where
// each row maps the same column names to values. Think of it as a table:
// each key is a column and each row is a record.
package dataset

import "sort"

// Row is a single record keyed by column name.
type Row map[string]interface{}

// Rows is a homogeneous list of records: every row carries the same keys.
type Rows []Row

// Keys returns the column names of the first row in sorted order, or nil
// for an empty dataset.
func (r Rows) Keys() []string {
	if len(r) == 0 {
		return nil
	}
	keys := make([]string, 0, len(r[0]))
	for k := range r[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Column returns the values of one column in row order. Missing cells are
// nil.
func (r Rows) Column(key string) []interface{} {
	values := make([]interface{}, len(r))
	for i, row := range r {
		values[i] = row[key]
	}
	return values
}

// NumericColumn returns the column as float64 values. The second result is
// false when any cell is missing or not numeric.
func (r Rows) NumericColumn(key string) ([]float64, bool) {
	values := make([]float64, len(r))
	for i, row := range r {
		f, ok := AsNumber(row[key])
		if !ok {
			return nil, false
		}
		values[i] = f
	}
	return values, true
}

// NumericKeys returns the sorted column names whose values are numeric in
// every row.
func (r Rows) NumericKeys() []string {
	var keys []string
	for _, k := range r.Keys() {
		if _, ok := r.NumericColumn(k); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// AsNumber converts a cell value to float64 when it holds one of the
// numeric types a row may carry.
func AsNumber(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}
