package postprocess

// argMax returns the index of the largest of the first n values of data.  The
// first occurrence wins on ties.  ok is false when data holds fewer than n
// values or n is zero.
func argMax(data []float32, n int) (idx int, ok bool) {

	if n <= 0 || len(data) < n {
		return 0, false
	}

	best := data[0]

	for i := 1; i < n; i++ {
		// NaN never compares greater so it can't be selected after index 0
		if data[i] > best || best != best {
			best = data[i]
			idx = i
		}
	}

	return idx, true
}
