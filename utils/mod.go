package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Sign converts a side flag into the factor that maps a mover-relative value
// into the maximizing player's frame.
func Sign(maximizing bool) float64 {
	if maximizing {
		return 1
	}
	return -1
}
