package domain

import "fmt"

// TimeRange is a numeric time range within a single day, expressed in
// decimal hours (10:30 = 10.5). Ranges are half-open for overlap purposes:
// a range ending exactly where another begins does not overlap it.
type TimeRange struct {
	Start float64
	End   float64
}

// SplitRange subtracts cut from target and returns the ordered sub-ranges
// of target that do not overlap cut: none when cut swallows target, target
// itself when they do not overlap, one piece when cut covers an end, two
// pieces when cut is a strict interior hole.
func SplitRange(target, cut TimeRange) []TimeRange {
	switch {
	case target.Start >= cut.Start && target.End <= cut.End:
		// Cut fully covers target.
		return []TimeRange{}

	case target.End <= cut.Start || cut.End <= target.Start:
		// Disjoint. Touching endpoints count as disjoint.
		return []TimeRange{target}

	case target.Start <= cut.Start && cut.Start <= target.End:
		// Cut starts inside target.
		if target.End <= cut.End {
			return []TimeRange{{Start: target.Start, End: cut.Start}}
		}
		return []TimeRange{
			{Start: target.Start, End: cut.Start},
			{Start: cut.End, End: target.End},
		}

	case cut.Start <= target.Start && target.Start <= cut.End:
		// Cut covers the left edge of target.
		if target.End > cut.End {
			return []TimeRange{{Start: cut.End, End: target.End}}
		}
		return []TimeRange{}

	default:
		// Unreachable for totally ordered endpoints. A hit here is a logic
		// bug, not an input problem, so fail loudly.
		panic(fmt.Sprintf("domain: SplitRange reached impossible case: target=%+v cut=%+v", target, cut))
	}
}

// SubtractFromRanges removes cut from every range in the working set,
// preserving relative order.
func SubtractFromRanges(ranges []TimeRange, cut TimeRange) []TimeRange {
	result := make([]TimeRange, 0, len(ranges))
	for _, r := range ranges {
		result = append(result, SplitRange(r, cut)...)
	}
	return result
}
