package stats

import (
	"errors"
	"slices"
)

// ErrEmptyInput is returned when a maximum is requested over an empty collection.
var ErrEmptyInput = errors.New("stats: empty input")

// Number is any numeric field a dashboard table carries.
type Number interface {
	~int | ~int64 | ~float64
}

// MaxOf returns the largest value of field across records.
func MaxOf[T any, N Number](records []T, field func(T) N) (N, error) {
	if len(records) == 0 {
		var zero N
		return zero, ErrEmptyInput
	}
	best := field(records[0])
	for _, r := range records[1:] {
		best = max(best, field(r))
	}
	return best, nil
}

// PercentOf scales value against ceiling into [0, 100]. A non-positive ceiling yields 0.
func PercentOf[N Number](value, ceiling N) float64 {
	if ceiling <= 0 {
		return 0
	}
	p := float64(value) / float64(ceiling) * 100
	return min(100, max(0, p))
}

// ShareOf returns part as a percentage of whole, unclamped. A zero whole yields 0.
func ShareOf[N Number](part, whole N) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// SumField adds up field across records.
func SumField[T any, N Number](records []T, field func(T) N) N {
	var sum N
	for _, r := range records {
		sum += field(r)
	}
	return sum
}

// CountWhere counts the records satisfying pred.
func CountWhere[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// GroupCounts returns the number of records per key.
func GroupCounts[T any, K comparable](records []T, key func(T) K) map[K]int {
	out := make(map[K]int)
	for _, r := range records {
		out[key(r)]++
	}
	return out
}

// TopN returns the first n records ordered by compare. The input is not modified and ties keep
// their original order.
func TopN[T any](records []T, n int, compare func(a, b T) int) []T {
	if n <= 0 {
		return nil
	}
	temp := slices.Clone(records)
	slices.SortStableFunc(temp, compare)
	if n < len(temp) {
		temp = temp[:n]
	}
	return temp
}

// PeakOf returns the index of the record with the largest field value, the first one on ties.
func PeakOf[T any, N Number](records []T, field func(T) N) (int, error) {
	if len(records) == 0 {
		return -1, ErrEmptyInput
	}
	idx := 0
	for i, r := range records {
		if field(r) > field(records[idx]) {
			idx = i
		}
	}
	return idx, nil
}

// CalculateMedianDiscrete finds the median value in a slice of integers.
func CalculateMedianDiscrete(values []int) float64 {
	if len(values) == 0 {
		return 0
	}

	temp := slices.Clone(values)
	slices.Sort(temp)

	n := len(temp)
	if n%2 == 1 {
		return float64(temp[n/2])
	}
	return float64(temp[n/2-1]+temp[n/2]) / 2.0
}

// CalculateMedianContinuous finds the median value in a slice of floats.
func CalculateMedianContinuous(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	temp := slices.Clone(values)
	slices.Sort(temp)

	n := len(temp)
	if n%2 == 1 {
		return temp[n/2]
	}
	return (temp[n/2-1] + temp[n/2]) / 2.0
}
