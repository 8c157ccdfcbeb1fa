package ehdr

import (
	"strings"

	"envi-binreader/envi/eerr"
	"github.com/samber/lo"
)

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Value reports the value stored for key and whether the key is present at all,
// so an explicitly empty value can be told apart from a missing one.
func (r *Store) Value(key string) (string, bool) {
	entry, ok := r.entries.Get(normalizeKey(key))
	if !ok {
		return "", false
	}
	return entry.Value, true
}

// Lookup returns the value stored for key. An absent key yields an empty
// string, or eerr.ErrMissingHeaderItem when required is set.
func (r *Store) Lookup(key string, required bool) (string, error) {
	value, ok := r.Value(key)
	if !ok && required {
		return "", eerr.ErrMissingHeaderItem{Key: key, Index: -1}
	}
	return value, nil
}

// Items splits the value stored for key into its sub-items. One surrounding
// brace pair is dropped, then the value is split on commas if it has any and on
// whitespace otherwise.
func (r *Store) Items(key string) ([]string, bool) {
	value, ok := r.Value(key)
	if !ok {
		return nil, false
	}
	return SplitItems(value), true
}

// Item returns the index-th sub-item of the value stored for key. An index out
// of range is reported the same way as an absent key.
func (r *Store) Item(key string, index int) (string, bool) {
	items, ok := r.Items(key)
	if !ok || index < 0 || index >= len(items) {
		return "", false
	}
	return items[index], true
}

func (r *Store) LookupIndexed(key string, index int, required bool) (string, error) {
	item, ok := r.Item(key, index)
	if !ok && required {
		return "", eerr.ErrMissingHeaderItem{Key: key, Index: index}
	}
	return item, nil
}

func SplitItems(value string) []string {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "{") && strings.HasSuffix(value, "}") {
		value = value[1 : len(value)-1]
	}
	var items []string
	if strings.Contains(value, ",") {
		items = strings.Split(value, ",")
	} else {
		items = strings.Fields(value)
	}
	items = lo.Map(
		items,
		func(item string, _ int) string {
			return strings.TrimSpace(item)
		},
	)
	if len(items) == 1 && items[0] == "" {
		return []string{}
	}
	return items
}
