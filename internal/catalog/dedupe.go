package catalog

// Merge concatenates the lists in priority order and keeps the first entry
// for every distinct title.
func Merge(lists ...[]Entry) []Entry {
	size := 0
	for _, l := range lists {
		size += len(l)
	}

	seen := make(map[string]bool, size)
	out := make([]Entry, 0, size)

	for _, l := range lists {
		for _, e := range l {
			if seen[e.Title] {
				continue
			}
			seen[e.Title] = true
			out = append(out, e)
		}
	}

	return out
}
