package bench

// sortMillis sorts a slice of millisecond timing samples in place. The
// driver only ever calls this on RunCount samples (spec.md's default is 5,
// and validation keeps it odd and >= 3), so a plain insertion sort
// is the right tool: no counting-sort machinery is ever going to pay for
// itself at this n.
func sortMillis(data []uint32) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// trimmedMean sorts samples and returns the integer mean of every sample
// except the minimum and maximum, per spec.md §4.7.3. samples must have at
// least 3 elements; the caller (the driver, with a config-validated
// RunCount) is responsible for that precondition.
func trimmedMean(samples []uint32) uint32 {
	sortMillis(samples)
	var total uint64
	for _, v := range samples[1 : len(samples)-1] {
		total += uint64(v)
	}
	return uint32(total / uint64(len(samples)-2))
}
