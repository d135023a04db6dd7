package calculator

import (
	"errors"
	"math"
	"testing"

	"distill/model"
)

func field(t *testing.T, p *model.SamplePoint, name string) float64 {
	t.Helper()
	v, ok := p.Get(name)
	if !ok {
		t.Fatalf("field %q missing or null in point %v", name, p.Fields())
	}
	return v
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func expectInvalid(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an invalid parameter error, got nil")
	}
	if !errors.Is(err, ErrInvalidParameter) || !IsKind(err, KindInvalidParameter) {
		t.Fatalf("expected invalid parameter error, got %v", err)
	}
}

func expectFields(t *testing.T, s model.Series, want ...string) {
	t.Helper()
	for i, p := range s {
		got := p.Fields()
		if len(got) != len(want) {
			t.Fatalf("point %d fields = %v, want %v", i, got, want)
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("point %d fields = %v, want %v", i, got, want)
			}
		}
	}
}
