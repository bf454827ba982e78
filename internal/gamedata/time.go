package gamedata

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RecipeTime is either a decimal duration in seconds or an unevaluated
// numerator/denominator pair. Generator burn times are kept as fractions so
// downstream consumers can reconstruct the exact duration without
// floating-point drift.
type RecipeTime struct {
	seconds  float64
	num, den string
	fraction bool
}

// Seconds builds a decimal recipe time.
func Seconds(v float64) RecipeTime {
	return RecipeTime{seconds: v}
}

// Fraction builds an unevaluated num/den recipe time.
func Fraction(num, den string) RecipeTime {
	return RecipeTime{num: num, den: den, fraction: true}
}

// IsFraction reports whether the time is an unevaluated fraction.
func (t RecipeTime) IsFraction() bool {
	return t.fraction
}

// SecondsValue returns the decimal duration. Only meaningful when
// IsFraction is false.
func (t RecipeTime) SecondsValue() float64 {
	return t.seconds
}

func (t RecipeTime) String() string {
	if t.fraction {
		return t.num + "/" + t.den
	}
	return strconv.FormatFloat(t.seconds, 'f', -1, 64)
}

func (t RecipeTime) MarshalJSON() ([]byte, error) {
	if t.fraction {
		return json.Marshal(t.num + "/" + t.den)
	}
	return json.Marshal(t.seconds)
}

func (t *RecipeTime) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		num, den, ok := strings.Cut(s, "/")
		if !ok {
			return fmt.Errorf("recipe time %q: not a num/den fraction", s)
		}
		*t = Fraction(num, den)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = Seconds(v)
	return nil
}
