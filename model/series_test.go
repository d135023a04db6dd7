package model

import (
	"encoding/json"
	"testing"
)

func TestSamplePointKeepsOrder(t *testing.T) {
	p := NewSamplePoint().Set("x", 0.5).Set("yEq", 0.714).SetNull("yOp").Set("xLine", 0.5)

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"x":0.5,"yEq":0.714,"yOp":null,"xLine":0.5}`
	if string(b) != want {
		t.Fatalf("json = %s, want %s", b, want)
	}

	var back SamplePoint
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	fields := back.Fields()
	if len(fields) != 4 || fields[0] != "x" || fields[2] != "yOp" || fields[3] != "xLine" {
		t.Fatalf("fields after round trip = %v", fields)
	}
	if _, ok := back.Get("yOp"); ok {
		t.Fatal("yOp should stay null")
	}
	if !back.Has("yOp") {
		t.Fatal("yOp should still be present")
	}
	if v, ok := back.Get("yEq"); !ok || v != 0.714 {
		t.Fatalf("yEq = %v, %v", v, ok)
	}
}

func TestSeriesJSONRoundTrip(t *testing.T) {
	s := Series{
		NewSamplePoint().Set("time", 0).Set("temperature", 20),
		NewSamplePoint().Set("time", 1).Set("temperature", 27.61),
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"time":0,"temperature":20},{"time":1,"temperature":27.61}]`
	if string(b) != want {
		t.Fatalf("json = %s, want %s", b, want)
	}

	var back Series
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	again, err := json.Marshal(back)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != want {
		t.Fatalf("second encoding = %s, want %s", again, want)
	}
}

func TestAxisField(t *testing.T) {
	cases := []struct {
		name   string
		fields []string
		want   string
	}{
		{"time first", []string{"time", "temperature"}, "time"},
		{"minute later", []string{"value", "elapsedMinutes"}, "elapsedMinutes"},
		{"date", []string{"level", "Date"}, "Date"},
		{"hour", []string{"a", "hourOfDay"}, "hourOfDay"},
		{"fallback", []string{"x", "yEq", "yOp", "xLine"}, "x"},
		{"rayleigh", []string{"percentDistilled", "residueComposition"}, "percentDistilled"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewSamplePoint()
			for i, f := range tc.fields {
				p.Set(f, float64(i))
			}
			if got := (Series{p}).AxisField(); got != tc.want {
				t.Fatalf("AxisField = %q, want %q", got, tc.want)
			}
		})
	}
	if got := (Series{}).AxisField(); got != "" {
		t.Fatalf("empty series axis = %q", got)
	}
}
