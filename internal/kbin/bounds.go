package kbin

import "math"

// AddOverflowSafe32 adds a and b, reporting ok=false when the int32 result
// would overflow. Offset arithmetic on a region walks header+prev+size chains
// repeatedly; an overflowed offset must never be allowed to silently wrap
// into a valid-looking but wrong address.
func AddOverflowSafe32(a, b int32) (int32, bool) {
	switch {
	case b > 0 && a > math.MaxInt32-b:
		return 0, false
	case b < 0 && a < math.MinInt32-b:
		return 0, false
	default:
		return a + b, true
	}
}

// InBounds reports whether the half-open range [off, off+length) fits
// entirely within a buffer of size bufLen.
func InBounds(bufLen, off, length int32) bool {
	if off < 0 || length < 0 {
		return false
	}
	end, ok := AddOverflowSafe32(off, length)
	if !ok {
		return false
	}
	return end <= bufLen
}
