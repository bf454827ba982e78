package parse

import (
	"fmt"
	"strings"
)

// AmbiguousBuildingError means a recipe names more than one manufacturing
// building. The docs are expected to name exactly one per recipe.
type AmbiguousBuildingError struct {
	Recipe  string
	Matches []string
}

func (e *AmbiguousBuildingError) Error() string {
	return fmt.Sprintf("unclear building for recipe %q: matched [%s]", e.Recipe, strings.Join(e.Matches, ", "))
}

// UnknownBuildingError means a recipe references a building class that is not
// in the known building set.
type UnknownBuildingError struct {
	Recipe   string
	Building string
}

func (e *UnknownBuildingError) Error() string {
	return fmt.Sprintf("unknown building %q for recipe %q", e.Building, e.Recipe)
}

// UnknownItemError means an ingredient, product or fuel token has no
// corresponding item entity.
type UnknownItemError struct {
	Item string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("unknown item %q", e.Item)
}
