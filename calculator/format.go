package calculator

import (
	"math"

	"distill/model"
)

// absent marks a nullable column that has no value at this point.
var absent = math.NaN()

type column struct {
	name     string
	places   int
	nullable bool
}

// layout fixes the field order and display precision of a series. Rounding
// happens here and nowhere else, so recurrences always run on raw values.
type layout []column

func (l layout) point(op string, values ...float64) (*model.SamplePoint, error) {
	p := model.NewSamplePoint()
	for i, col := range l {
		v := values[i]
		if col.nullable && math.IsNaN(v) {
			p.SetNull(col.name)
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, numericf(op, "%s is not finite (%v)", col.name, v)
		}
		p.Set(col.name, round(v, col.places))
	}
	return p, nil
}

func round(v float64, places int) float64 {
	pow := math.Pow10(places)
	r := math.Round(v*pow) / pow
	if r == 0 {
		// no "-0" in the output
		return 0
	}
	return r
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type arg struct {
	name string
	v    float64
}

func requireFinite(op string, args ...arg) error {
	for _, a := range args {
		if !finite(a.v) {
			return invalidf(op, "%s must be finite, got %v", a.name, a.v)
		}
	}
	return nil
}

// 时长，单位 min
const (
	DefaultDuration = 60
	MaxDuration     = 24 * 60
)

func resolveDuration(op string, duration int) (int, error) {
	if duration < 0 {
		return 0, invalidf(op, "duration must be >= 0, got %d", duration)
	}
	if duration > MaxDuration {
		return 0, invalidf(op, "duration must be <= %d, got %d", MaxDuration, duration)
	}
	if duration == 0 {
		return DefaultDuration, nil
	}
	return duration, nil
}
