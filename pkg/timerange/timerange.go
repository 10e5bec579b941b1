// Package timerange implements set operations over half-open intervals of
// minutes since midnight.
//
// Every function is non-destructive: inputs are never modified and a new
// slice is returned. Zero-length ranges are never produced.
package timerange

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// MinutesPerDay upper bound for Range.End
const MinutesPerDay = 24 * 60

// ErrInvalidRange возвращается, когда границы интервала некорректны
var ErrInvalidRange = errors.New("timerange: invalid range")

// Range half-open interval [Start, End) in minutes since midnight
type Range struct {
	Start int
	End   int
}

// New creates a validated Range
func New(start, end int) (Range, error) {
	r := Range{Start: start, End: end}
	if !r.Valid() {
		return Range{}, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, start, end)
	}
	return r, nil
}

// Valid reports whether 0 <= Start < End <= MinutesPerDay
func (r Range) Valid() bool {
	return r.Start >= 0 && r.Start < r.End && r.End <= MinutesPerDay
}

// Duration length of the range in minutes
func (r Range) Duration() int {
	return r.End - r.Start
}

// Overlaps reports whether r and other share at least one minute.
// Touching endpoints do not overlap.
func (r Range) Overlaps(other Range) bool {
	return Overlaps(r, other)
}

// Overlaps reports whether a and b overlap: a.Start < b.End && a.End > b.Start
func Overlaps(a, b Range) bool {
	return a.Start < b.End && a.End > b.Start
}

// Subtract removes [cutStart, cutEnd) from every range.
// A range may disappear, pass through unchanged, be trimmed, or split in two.
func Subtract(ranges []Range, cutStart, cutEnd int) []Range {
	result := make([]Range, 0, len(ranges)+1)
	for _, r := range ranges {
		// Нет пересечения (или пустой вырез) - интервал остаётся как есть
		if cutStart >= cutEnd || cutEnd <= r.Start || cutStart >= r.End {
			result = append(result, r)
			continue
		}
		if cutStart > r.Start {
			result = append(result, Range{Start: r.Start, End: cutStart})
		}
		if cutEnd < r.End {
			result = append(result, Range{Start: cutEnd, End: r.End})
		}
	}
	return result
}

// Intersect returns the intersection of two range sets.
// Both inputs are sorted by Start (on copies), overlapping ranges inside one set
// are merged, then the sets are swept with two pointers. The result is disjoint.
func Intersect(a, b []Range) []Range {
	result := make([]Range, 0)
	if len(a) == 0 || len(b) == 0 {
		return result
	}

	sortedA := mergeOverlapping(sortedByStart(a))
	sortedB := mergeOverlapping(sortedByStart(b))

	i, j := 0, 0
	for i < len(sortedA) && j < len(sortedB) {
		start := max(sortedA[i].Start, sortedB[j].Start)
		end := min(sortedA[i].End, sortedB[j].End)
		if start < end {
			result = append(result, Range{Start: start, End: end})
		}

		// Сдвигаем указатель интервала, который заканчивается раньше
		if sortedA[i].End < sortedB[j].End {
			i++
		} else {
			j++
		}
	}

	return result
}

// GenerateSlots emits candidate slots of the given duration inside every range.
// The cursor starts at range.Start and advances by step, independent of duration;
// a slot is emitted while cursor+duration <= range.End.
func GenerateSlots(ranges []Range, duration, step int) []Range {
	slots := make([]Range, 0)
	if duration <= 0 || step <= 0 {
		return slots
	}

	for _, r := range ranges {
		for cursor := r.Start; cursor+duration <= r.End; cursor += step {
			slots = append(slots, Range{Start: cursor, End: cursor + duration})
		}
	}
	return slots
}

// RemoveConflicts drops every slot that overlaps any blocked range
func RemoveConflicts(slots, blocked []Range) []Range {
	result := make([]Range, 0, len(slots))
	for _, slot := range slots {
		if !overlapsAny(slot, blocked) {
			result = append(result, slot)
		}
	}
	return result
}

func overlapsAny(slot Range, blocked []Range) bool {
	for _, b := range blocked {
		if Overlaps(slot, b) {
			return true
		}
	}
	return false
}

func sortedByStart(ranges []Range) []Range {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(x, y Range) int {
		return cmp.Compare(x.Start, y.Start)
	})
	return sorted
}

// mergeOverlapping склеивает пересекающиеся интервалы отсортированного набора
// Соприкасающиеся интервалы остаются раздельными: слот не переходит через их границу
func mergeOverlapping(sorted []Range) []Range {
	merged := sorted[:0]
	for _, r := range sorted {
		if n := len(merged); n > 0 && r.Start < merged[n-1].End {
			merged[n-1].End = max(merged[n-1].End, r.End)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
