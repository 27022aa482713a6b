package models

// ensureLen grows seq until index n-1 exists, filling new slots with pad().
// Existing elements are never touched.
func ensureLen[T any](seq []T, n int, pad func() T) []T {
	for len(seq) < n {
		seq = append(seq, pad())
	}
	return seq
}
