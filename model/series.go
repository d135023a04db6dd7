package model

import (
	"encoding/json"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SamplePoint is one row of a series. Fields keep insertion order through
// JSON encoding; the chart picks its horizontal axis by scanning field names.
type SamplePoint struct {
	fields *orderedmap.OrderedMap[string, *float64]
}

func NewSamplePoint() *SamplePoint {
	return &SamplePoint{fields: orderedmap.New[string, *float64]()}
}

// Set stores v under name, appending the field if it is new.
func (p *SamplePoint) Set(name string, v float64) *SamplePoint {
	p.fields.Set(name, &v)
	return p
}

// SetNull keeps the field in place but without a value.
func (p *SamplePoint) SetNull(name string) *SamplePoint {
	p.fields.Set(name, nil)
	return p
}

// Get returns false when the field is missing or null.
func (p *SamplePoint) Get(name string) (float64, bool) {
	v, ok := p.fields.Get(name)
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// Has reports whether the field exists, null or not.
func (p *SamplePoint) Has(name string) bool {
	_, ok := p.fields.Get(name)
	return ok
}

func (p *SamplePoint) Fields() []string {
	names := make([]string, 0, p.fields.Len())
	for pair := p.fields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

func (p *SamplePoint) Len() int {
	return p.fields.Len()
}

func (p *SamplePoint) MarshalJSON() ([]byte, error) {
	return p.fields.MarshalJSON()
}

func (p *SamplePoint) UnmarshalJSON(data []byte) error {
	p.fields = orderedmap.New[string, *float64]()
	return json.Unmarshal(data, p.fields)
}

// Series is an ordered sequence of sample points.
type Series []*SamplePoint

var axisHints = []string{"time", "date", "hour", "minute"}

// AxisField returns the field a chart should use as its horizontal axis: the
// first one whose name looks like a time, else the first field.
func (s Series) AxisField() string {
	if len(s) == 0 {
		return ""
	}
	fields := s[0].Fields()
	for _, name := range fields {
		lower := strings.ToLower(name)
		for _, hint := range axisHints {
			if strings.Contains(lower, hint) {
				return name
			}
		}
	}
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
