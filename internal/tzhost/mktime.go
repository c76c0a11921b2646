package tzhost

import (
	"sort"
	"time"
)

const secondsPerDay = 86400

// MakeTime converts civil fields in loc to an absolute instant.
//
// Fields that name two instants (a fold) resolve to the one whose regime
// matches hint, or the earlier one for HintAuto. Fields inside a gap are
// read with the offset in force before the transition, which moves them
// forward by the size of the gap. A hint that contradicts the regime of a
// unique instant reinterprets the fields with the offset of the requested
// regime, as mktime does for an explicit tm_isdst.
func MakeTime(loc *time.Location, f Fields, hint DSTHint) (int64, Broken) {
	naive := f.naive()

	var candidates []int64
	for _, probe := range [...]int64{naive - secondsPerDay, naive, naive + secondsPerDay} {
		off := offsetAt(loc, probe)
		u := naive - int64(off)
		if offsetAt(loc, u) != off || contains(candidates, u) {
			continue
		}
		candidates = append(candidates, u)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	var u int64
	switch len(candidates) {
	case 0:
		u = naive - int64(gapOffset(loc, naive, hint))
	case 1:
		u = candidates[0]
		if hint != HintAuto && isDSTAt(loc, u) != (hint == HintDaylight) {
			if other, ok := regimeOffset(loc, u, hint == HintDaylight); ok {
				u -= int64(other - offsetAt(loc, u))
			}
		}
	default:
		u = candidates[0]
		if hint != HintAuto {
			for _, c := range candidates {
				if isDSTAt(loc, c) == (hint == HintDaylight) {
					u = c
					break
				}
			}
		}
	}
	return u, BreakDown(u, loc)
}

// gapOffset picks the offset used to read fields that fall in a gap.
func gapOffset(loc *time.Location, naive int64, hint DSTHint) int {
	before := naive - secondsPerDay
	after := naive + secondsPerDay
	if hint != HintAuto {
		want := hint == HintDaylight
		switch {
		case isDSTAt(loc, before) == want:
			return offsetAt(loc, before)
		case isDSTAt(loc, after) == want:
			return offsetAt(loc, after)
		}
	}
	return offsetAt(loc, before)
}

// regimeOffset finds the offset of the nearest period whose daylight flag
// is dst. Zones without such a period report false.
func regimeOffset(loc *time.Location, unix int64, dst bool) (int, bool) {
	for _, days := range [...]int64{182, -182, 91, -91, 273, -273} {
		probe := unix + days*secondsPerDay
		if isDSTAt(loc, probe) == dst {
			return offsetAt(loc, probe), true
		}
	}
	return 0, false
}

func offsetAt(loc *time.Location, unix int64) int {
	_, off := time.Unix(unix, 0).In(loc).Zone()
	return off
}

func isDSTAt(loc *time.Location, unix int64) bool {
	return time.Unix(unix, 0).In(loc).IsDST()
}

func contains(xs []int64, x int64) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
