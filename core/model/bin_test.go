package model

import "testing"

func TestClassifyFillBoundaries(t *testing.T) {
	cases := []struct {
		fill float64
		want BinStatus
	}{
		{0, StatusEmpty},
		{24, StatusEmpty},
		{25, StatusHalf},
		{69, StatusHalf},
		{70, StatusFull},
		{99, StatusFull},
		{100, StatusPriority},
		{150, StatusPriority},
	}
	for _, c := range cases {
		if got := ClassifyFill(c.fill); got != c.want {
			t.Errorf("ClassifyFill(%v) = %v, want %v", c.fill, got, c.want)
		}
	}
}

func TestBinNeedsCollection(t *testing.T) {
	if (Bin{FillLevel: 70}).NeedsCollection() {
		t.Fatalf("70 percent is not a candidate, the threshold is strict")
	}
	if !(Bin{FillLevel: 70.5}).NeedsCollection() {
		t.Fatalf("expected 70.5 percent to be a candidate")
	}
}

func TestBinValidate(t *testing.T) {
	if err := (Bin{ID: "b1"}).Validate(); err == nil {
		t.Fatalf("expected error for missing sensor id")
	}
	if err := (Bin{ID: "b1", SensorID: "s1"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
