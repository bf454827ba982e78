package dump

import (
	"fmt"
	"strings"
)

// EmptySelectionError indicates a requested native-class filter matched no
// group at all. That means the docs schema drifted away from the parsing
// rules, which must never be silently ignored.
type EmptySelectionError struct {
	Tags []string
}

func (e *EmptySelectionError) Error() string {
	return fmt.Sprintf("no class records match native classes [%s]", strings.Join(e.Tags, ", "))
}

// Filter flattens the class records of every group whose native-class tag is
// in tags, in file order. Each record keeps the tag it matched so downstream
// phases can distinguish e.g. plain manufacturers from variable-power ones.
func Filter(groups []ClassGroup, tags []string) ([]ClassRecord, error) {
	wanted := make(map[string]bool, len(tags))
	for _, tag := range tags {
		wanted[tag] = true
	}

	var records []ClassRecord
	for _, group := range groups {
		if !wanted[group.NativeClass] {
			continue
		}
		records = append(records, group.Classes...)
	}
	if len(records) == 0 {
		return nil, &EmptySelectionError{Tags: tags}
	}
	return records, nil
}
