package random

// Choice returns a uniformly chosen item of things, or the zero value when things is empty.
func Choice[T any](src Source, things []T) T {
	if len(things) == 0 {
		var nothing T
		return nothing
	}
	return things[src.Range(0, int64(len(things)))]
}
