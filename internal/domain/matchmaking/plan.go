package matchmaking

// Capacity returns 2^maxFights, at least 1.
func Capacity(maxFights int) int {
	if maxFights <= 0 {
		return 1
	}
	if maxFights > 16 {
		maxFights = 16
	}
	return 1 << maxFights
}

// NextPowerOfTwo returns the smallest power of two >= v, and 1 for v <= 1.
func NextPowerOfTwo(v int) int {
	if v <= 1 {
		return 1
	}
	result := 1
	for result < v {
		result <<= 1
	}
	return result
}

// BracketSize is the slot count of a bracket holding n athletes.
func BracketSize(n int) int {
	if n <= 1 {
		return 1
	}
	return NextPowerOfTwo(n)
}

// SplitIntoChunks cuts items into brackets of at most capacity. A trailing
// single athlete takes the previous chunk's last athlete when that chunk has
// more than two, or joins it when the result still fits.
func SplitIntoChunks[T any](items []T, capacity int) [][]T {
	if capacity <= 0 {
		capacity = 1
	}
	var chunks [][]T
	for i := 0; i < len(items); i += capacity {
		end := i + capacity
		if end > len(items) {
			end = len(items)
		}
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	if len(chunks) == 0 {
		return [][]T{{}}
	}

	if n := len(chunks); n > 1 && len(chunks[n-1]) == 1 {
		previous, last := chunks[n-2], chunks[n-1]
		switch {
		case len(previous) > 2:
			moved := previous[len(previous)-1]
			chunks[n-2] = previous[:len(previous)-1]
			chunks[n-1] = append([]T{moved}, last...)
		case len(previous)+len(last) <= capacity:
			chunks[n-2] = append(previous, last...)
			chunks = chunks[:n-1]
		}
	}
	return chunks
}
