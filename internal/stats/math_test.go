package stats

import (
	"errors"
	"testing"
)

type row struct {
	name  string
	count int
	risk  string
}

var rows = []row{
	{"Saddar", 2890, "High"},
	{"Clifton", 2456, "High"},
	{"Defence", 1543, "Low"},
}

func count(r row) int { return r.count }

func TestMaxOf(t *testing.T) {
	got, err := MaxOf(rows, count)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2890 {
		t.Errorf("MaxOf() = %d, want 2890", got)
	}
	for _, r := range rows {
		if got < r.count {
			t.Errorf("max %d below record %s (%d)", got, r.name, r.count)
		}
	}

	if _, err := MaxOf([]row{}, count); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput on empty input, got %v", err)
	}
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		ceiling  int
		expected float64
	}{
		{"Full", 2890, 2890, 100},
		{"Half", 50, 100, 50},
		{"ZeroCeiling", 10, 0, 0},
		{"NegativeCeiling", 10, -5, 0},
		{"OverCeiling", 150, 100, 100},
		{"NegativeValue", -10, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentOf(tt.value, tt.ceiling); got != tt.expected {
				t.Errorf("PercentOf() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPercentOfBoundedForDataset(t *testing.T) {
	ceiling, _ := MaxOf(rows, count)
	for _, r := range rows {
		p := PercentOf(r.count, ceiling)
		if p < 0 || p > 100 {
			t.Errorf("%s: percent %v out of [0,100]", r.name, p)
		}
	}
}

func TestSumAndCount(t *testing.T) {
	if got := SumField(rows[:2], count); got != 5346 {
		t.Errorf("SumField() = %d, want 5346", got)
	}
	if got := SumField([]row{}, count); got != 0 {
		t.Errorf("SumField(empty) = %d, want 0", got)
	}

	high := func(r row) bool { return r.risk == "High" }
	if got := CountWhere(rows, high); got != 2 {
		t.Errorf("CountWhere() = %d, want 2", got)
	}
	if got := CountWhere(nil, high); got != 0 {
		t.Errorf("CountWhere(nil) = %d, want 0", got)
	}
}

func TestShareOf(t *testing.T) {
	if got := ShareOf(1, 4); got != 25 {
		t.Errorf("ShareOf() = %v, want 25", got)
	}
	if got := ShareOf(3.0, 0); got != 0 {
		t.Errorf("ShareOf(zero whole) = %v, want 0", got)
	}
}

func TestGroupCounts(t *testing.T) {
	got := GroupCounts(rows, func(r row) string { return r.risk })
	if got["High"] != 2 || got["Low"] != 1 || len(got) != 2 {
		t.Errorf("GroupCounts() = %v", got)
	}
}

func TestTopN(t *testing.T) {
	asc := func(a, b row) int { return a.count - b.count }

	got := TopN(rows, 2, asc)
	if len(got) != 2 || got[0].name != "Defence" || got[1].name != "Clifton" {
		t.Errorf("TopN() = %v", got)
	}
	if rows[0].name != "Saddar" {
		t.Error("TopN mutated its input")
	}
	if got := TopN(rows, 10, asc); len(got) != 3 {
		t.Errorf("TopN(n > len) returned %d items", len(got))
	}
	if got := TopN(rows, 0, asc); got != nil {
		t.Errorf("TopN(0) = %v, want nil", got)
	}
}

func TestPeakOf(t *testing.T) {
	idx, err := PeakOf([]int{3, 9, 9, 1}, func(v int) int { return v })
	if err != nil || idx != 1 {
		t.Errorf("PeakOf() = %d, %v; want 1, nil", idx, err)
	}
	if _, err := PeakOf([]int{}, func(v int) int { return v }); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestCalculateMedianDiscrete(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		expected float64
	}{
		{"Empty", []int{}, 0},
		{"SingleItem", []int{5}, 5},
		{"OddCount", []int{1, 3, 2, 4, 5}, 3},
		{"EvenCount", []int{1, 2, 3, 4}, 2.5},
		{"AreaCounts", []int{2890, 2456, 1543}, 2456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateMedianDiscrete(tt.values); got != tt.expected {
				t.Errorf("CalculateMedianDiscrete() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCalculateMedianContinuous(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"Empty", []float64{}, 0},
		{"SingleItem", []float64{5.5}, 5.5},
		{"EvenCount", []float64{1, 2, 3, 4}, 2.5},
		{"Unsorted", []float64{10.5, 2.5, 8.5, 4.5, 6.5}, 6.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateMedianContinuous(tt.values); got != tt.expected {
				t.Errorf("CalculateMedianContinuous() = %v, want %v", got, tt.expected)
			}
		})
	}
}
