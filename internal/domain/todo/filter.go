package todo

import (
	"cmp"
	"slices"
)

// Filter scopes a todo query to one user and, optionally, a tag set.
// An empty TagIDs means all of the user's todos; otherwise a todo matches
// when it carries at least one of the tags.
type Filter struct {
	UserID string
	TagIDs []string
}

// IsTagFiltered reports whether the filter narrows by tag.
func (f Filter) IsTagFiltered() bool {
	return len(f.TagIDs) > 0
}

// Matches reports whether t belongs to the filter's result set.
func (f Filter) Matches(t *Todo) bool {
	if t.UserID != f.UserID {
		return false
	}
	if !f.IsTagFiltered() {
		return true
	}
	for _, id := range f.TagIDs {
		if t.HasTag(id) {
			return true
		}
	}
	return false
}

// Normalized returns a copy with deduplicated, sorted tag IDs so equal
// filters compare equal.
func (f Filter) Normalized() Filter {
	ids := NormalizeTagIDs(f.TagIDs)
	slices.Sort(ids)
	return Filter{UserID: f.UserID, TagIDs: ids}
}

// Retain returns a copy keeping only the tag IDs for which keep is true.
func (f Filter) Retain(keep func(tagID string) bool) Filter {
	ids := make([]string, 0, len(f.TagIDs))
	for _, id := range f.TagIDs {
		if keep(id) {
			ids = append(ids, id)
		}
	}
	return Filter{UserID: f.UserID, TagIDs: ids}
}

// Equal reports whether two filters select the same set.
func (f Filter) Equal(other Filter) bool {
	a, b := f.Normalized(), other.Normalized()
	return a.UserID == b.UserID && slices.Equal(a.TagIDs, b.TagIDs)
}

// SortNewestFirst orders todos by CreatedAt descending. ID breaks ties so
// the order is total.
func SortNewestFirst(todos []Todo) {
	slices.SortStableFunc(todos, func(a, b Todo) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}

// Select returns clones of the todos matching f, newest first.
func Select(todos []Todo, f Filter) []Todo {
	out := make([]Todo, 0, len(todos))
	for i := range todos {
		if f.Matches(&todos[i]) {
			out = append(out, todos[i].Clone())
		}
	}
	SortNewestFirst(out)
	return out
}
