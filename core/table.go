package core

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Text is a sort key compared case-insensitively with Spanish collation rules.
type Text string

// Comparer compares the sort keys produced by table accessors.
// It is not safe for concurrent use.
type Comparer struct {
	coll *collate.Collator
}

func NewComparer() *Comparer {
	return &Comparer{coll: collate.New(language.Spanish, collate.IgnoreCase)}
}

// Compare returns -1, 0 or 1. Ints compare numerically, Text with collation and strings
// byte-wise; mismatched kinds fall back to their printed form.
func (c *Comparer) Compare(a, b interface{}) int {
	switch av := a.(type) {
	case int:
		if bv, ok := b.(int); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case Text:
		if bv, ok := b.(Text); ok {
			return c.coll.CompareString(string(av), string(bv))
		}
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// Less adapts Compare to sort.SliceStable, flipping the order when descending.
func (c *Comparer) Less(a, b interface{}, descending bool) bool {
	if descending {
		return c.Compare(a, b) > 0
	}
	return c.Compare(a, b) < 0
}

// NumberKey returns s as an int sort key, or s itself when it is not a number.
func NumberKey(s string) interface{} {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return s
}

// ContainsFold reports whether substr (already lowered) is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// Paginate returns the [start, end) bounds of the 0-based page index for total rows.
// Out of range pages are empty.
func Paginate(total, index, size int) (start, end int) {
	if size <= 0 {
		return 0, total
	}
	if index < 0 {
		index = 0
	}
	start = index * size
	if start > total {
		return total, total
	}
	end = start + size
	if end > total {
		end = total
	}
	return start, end
}

// PageCount returns the number of pages needed for total rows.
func PageCount(total, size int) int {
	if size <= 0 || total == 0 {
		return 1
	}
	return (total + size - 1) / size
}
