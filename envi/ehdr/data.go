// Package ehdr loads ENVI text headers into a case-insensitive key/value store.
package ehdr

import (
	"envi-binreader/ds"
)

type (
	// Store maps lowercased header keys to their values. It is filled once by
	// Load or Parse and is read-only afterwards.
	Store struct {
		entries *ds.LinkedHashMap[string, Entry]
	}
	Entry struct {
		// Key is the key as last written in the header, before lowercasing.
		Key   string `json:"key"`
		Value string `json:"value"`
	}
)

const (
	MagicLine = "ENVI"
	Delimiter = "="
	// Extension is the extension of a header file paired with a binary file.
	Extension = ".hdr"
)

func NewStore() *Store {
	return &Store{
		entries: ds.NewLinkedHashMap[string, Entry](),
	}
}

func (r *Store) Len() int {
	return r.entries.Len()
}

// Keys returns the lowercased keys in the order they first appeared.
func (r *Store) Keys() []string {
	return r.entries.Keys()
}

// Entries returns the entries in the order their keys first appeared.
func (r *Store) Entries() []Entry {
	keys := r.entries.Keys()
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		entry, _ := r.entries.Get(key)
		entries = append(entries, entry)
	}
	return entries
}

// Set stores value under the lowercased key. A later Set of the same key
// overwrites the earlier value.
func (r *Store) Set(key string, value string) {
	r.entries.Put(normalizeKey(key), Entry{Key: key, Value: value})
}

func (r Store) MarshalJSON() ([]byte, error) {
	values := ds.NewLinkedHashMap[string, string]()
	for _, entry := range r.Entries() {
		values.Put(entry.Key, entry.Value)
	}
	return values.MarshalJSON()
}
