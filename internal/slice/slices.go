package slice

// Map applies fn to every element of s and returns the results.
func Map[In, Out any](s []In, fn func(In) Out) []Out {
	out := make([]Out, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// NoZero returns s without its zero-valued elements.
func NoZero[T comparable](s []T) []T {
	var zero T
	out := make([]T, 0, len(s))
	for _, v := range s {
		if v != zero {
			out = append(out, v)
		}
	}
	return out
}

// Unique returns s without duplicate elements, preserving the order of first
// occurrence.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
