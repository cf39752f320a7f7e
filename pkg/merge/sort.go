package merge

import "sort"

// Sort orders entries by the given key. Non-name keys break ties on the
// relative path so repeated runs over an unchanged tree produce identical
// output. When reverse is set the fully resolved order is flipped as a whole,
// tie-breaks included, rather than inverting each comparator independently.
func Sort(entries []FileEntry, key SortKey, reverse bool) {
	less := comparator(key)
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})

	if reverse {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
}

func comparator(key SortKey) func(a, b FileEntry) bool {
	switch key {
	case SortByCreationTime:
		return func(a, b FileEntry) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.RelPath < b.RelPath
		}
	case SortByModTime:
		return func(a, b FileEntry) bool {
			if !a.ModifiedAt.Equal(b.ModifiedAt) {
				return a.ModifiedAt.Before(b.ModifiedAt)
			}
			return a.RelPath < b.RelPath
		}
	case SortBySize:
		return func(a, b FileEntry) bool {
			if a.Size != b.Size {
				return a.Size < b.Size
			}
			return a.RelPath < b.RelPath
		}
	default: // SortByName
		return func(a, b FileEntry) bool {
			return a.RelPath < b.RelPath
		}
	}
}
