package result

// Outcome is implemented by every Result regardless of its type parameters.
type Outcome interface {
	// IsSuccess returns true if the success variant is held
	IsSuccess() bool
	// IsFailure returns true if the failure variant is held
	IsFailure() bool
}

// CountSuccesses returns how many items hold the success variant.
func CountSuccesses[T Outcome](items []T) int {
	count := 0
	for _, item := range items {
		if item.IsSuccess() {
			count++
		}
	}
	return count
}
