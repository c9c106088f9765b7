package sliceutil

// Filter creates a new slice by filtering elements in s via f.
func Filter[S ~[]E, E any](s S, f func(E) bool) []E {
	result := make([]E, 0, len(s))

	for _, e := range s {
		if f(e) {
			result = append(result, e)
		}
	}

	return result
}

// Map creates a new slice by applying f to each element in s.
func Map[S ~[]E, E any, R any](s S, f func(E) R) []R {
	result := make([]R, 0, len(s))

	for _, e := range s {
		result = append(result, f(e))
	}

	return result
}

// Any reports whether f holds for at least one element in s.
//
// It stops at the first match.
func Any[S ~[]E, E any](s S, f func(E) bool) bool {
	for _, e := range s {
		if f(e) {
			return true
		}
	}

	return false
}

// Count returns the number of elements in s for which f holds.
func Count[S ~[]E, E any](s S, f func(E) bool) int {
	n := 0

	for _, e := range s {
		if f(e) {
			n++
		}
	}

	return n
}
