package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
