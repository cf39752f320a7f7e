package merge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSort_ByName(t *testing.T) {
	t.Parallel()

	entries := entriesFor("b.txt", "a/z.txt", "a.txt", "Z.txt")
	Sort(entries, SortByName, false)

	// Case-sensitive lexicographic order on the relative path.
	assert.Equal(t, []string{"Z.txt", "a.txt", "a/z.txt", "b.txt"}, relPaths(entries))
}

func TestSort_ByNameReversed(t *testing.T) {
	t.Parallel()

	entries := entriesFor("a.txt", "c.txt", "b.txt")
	Sort(entries, SortByName, true)
	assert.Equal(t, []string{"c.txt", "b.txt", "a.txt"}, relPaths(entries))
}

func TestSort_BySizeWithNameTieBreak(t *testing.T) {
	t.Parallel()

	entries := []FileEntry{
		{RelPath: "big.txt", Size: 100},
		{RelPath: "b-small.txt", Size: 10},
		{RelPath: "a-small.txt", Size: 10},
	}
	Sort(entries, SortBySize, false)
	assert.Equal(t, []string{"a-small.txt", "b-small.txt", "big.txt"}, relPaths(entries))
}

func TestSort_ByModTimeWithNameTieBreak(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []FileEntry{
		{RelPath: "late.txt", ModifiedAt: base.Add(time.Hour)},
		{RelPath: "b.txt", ModifiedAt: base},
		{RelPath: "a.txt", ModifiedAt: base},
	}
	Sort(entries, SortByModTime, false)
	assert.Equal(t, []string{"a.txt", "b.txt", "late.txt"}, relPaths(entries))
}

func TestSort_ByCreationTime(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []FileEntry{
		{RelPath: "new.txt", CreatedAt: base.Add(time.Minute)},
		{RelPath: "old.txt", CreatedAt: base},
	}
	Sort(entries, SortByCreationTime, false)
	assert.Equal(t, []string{"old.txt", "new.txt"}, relPaths(entries))
}

func TestSort_ReverseFlipsResolvedOrder(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []FileEntry{
		{RelPath: "b.txt", ModifiedAt: base},
		{RelPath: "a.txt", ModifiedAt: base},
		{RelPath: "early.txt", ModifiedAt: base.Add(-time.Hour)},
	}
	Sort(entries, SortByModTime, true)

	// The whole resolved order is reversed, so the name tie-break between
	// a.txt and b.txt flips along with the primary key direction.
	assert.Equal(t, []string{"b.txt", "a.txt", "early.txt"}, relPaths(entries))
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"name", "creation_time", "modification_time", "size"} {
		key, err := ParseSortKey(valid)
		assert.NoError(t, err)
		assert.Equal(t, SortKey(valid), key)
	}

	_, err := ParseSortKey("alphabetical")
	assert.Error(t, err)
}
