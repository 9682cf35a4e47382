// internal/utils/math.go
package utils

// Lerp interpolates linearly between from and to.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp limits v to [lo, hi].
func Clamp[T ~int | ~float32 | ~float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Fade maps the remaining part of a countdown to an opacity in [0, 1]:
// fully opaque until the last fadeOut seconds, then linear to zero.
func Fade(remaining, fadeOut float64) float64 {
	if remaining <= 0 {
		return 0
	}
	if fadeOut <= 0 || remaining >= fadeOut {
		return 1
	}
	return remaining / fadeOut
}
