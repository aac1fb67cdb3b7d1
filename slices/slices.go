package slices

func Map[T, V any](s []T, f func(T) V) []V {
	result := make([]V, 0, len(s))
	for _, v := range s {
		result = append(result, f(v))
	}
	return result
}

func Filter[T any](s []T, keep func(T) bool) []T {
	result := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			result = append(result, v)
		}
	}
	return result
}
