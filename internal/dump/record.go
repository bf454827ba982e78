package dump

import (
	"github.com/tidwall/gjson"
)

// ClassRecord is one exported game-object definition: a mapping of declared
// field names to raw values, tagged with the native-class identifier it was
// loaded under. Field values are mostly strings (numbers arrive as
// "75.000000" style text), so accessors coerce on read. Records are read-only.
type ClassRecord struct {
	NativeClass string
	fields      map[string]gjson.Result
}

// NewClassRecord builds a record from a decoded JSON object. Used by the
// loader and by tests constructing synthetic records.
func NewClassRecord(nativeClass string, obj gjson.Result) ClassRecord {
	fields := make(map[string]gjson.Result)
	obj.ForEach(func(key, value gjson.Result) bool {
		fields[key.String()] = value
		return true
	})
	return ClassRecord{NativeClass: nativeClass, fields: fields}
}

// Str returns the raw string value of a field, or "" when absent.
func (r ClassRecord) Str(key string) string {
	return r.fields[key].String()
}

// Float coerces a field to a float64. Numeric strings are parsed; absent
// fields yield 0.
func (r ClassRecord) Float(key string) float64 {
	return r.fields[key].Float()
}

// Has reports whether the field is present in the record.
func (r ClassRecord) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// Records returns the elements of an array-of-objects field as sub-records
// carrying the same native-class tag. Used for nested declarations such as a
// generator's fuel list.
func (r ClassRecord) Records(key string) []ClassRecord {
	value, ok := r.fields[key]
	if !ok || !value.IsArray() {
		return nil
	}
	var out []ClassRecord
	value.ForEach(func(_, element gjson.Result) bool {
		out = append(out, NewClassRecord(r.NativeClass, element))
		return true
	})
	return out
}
