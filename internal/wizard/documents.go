package wizard

import (
	"sync"

	"github.com/google/uuid"
)

// DocumentEntry is one row of the wizard's documents list. File is an
// opaque resource handle (upload blob reference); it is deliberately kept
// out of the validated nested object because it cannot be deep-copied or
// serialized like the other fields.
type DocumentEntry struct {
	ID           string
	DocumentType uint
	File         any
	FileKey      string
	Description  string
	ExpiryDate   string
}

// DocumentList is an ordered sequence of document entries keyed by stable
// synthetic ids, so removal and reorder never renumber references held
// elsewhere.
type DocumentList struct {
	mu      sync.Mutex
	entries []DocumentEntry
}

// NewDocumentList creates an empty document list.
func NewDocumentList() *DocumentList {
	return &DocumentList{}
}

// Add appends an entry and returns its assigned id.
func (l *DocumentList) Add(entry DocumentEntry) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry.ID = uuid.NewString()
	l.entries = append(l.entries, entry)
	return entry.ID
}

// Remove deletes the entry with the given id. Surviving entries keep their
// ids, field values, and relative order. It reports whether an entry was
// removed.
func (l *DocumentList) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.entries[:0]
	removed := false
	for _, e := range l.entries {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept
	return removed
}

// Update applies fn to the entry with the given id. It reports whether the
// entry exists. The id itself cannot be changed.
func (l *DocumentList) Update(id string, fn func(*DocumentEntry)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.entries {
		if l.entries[i].ID == id {
			fn(&l.entries[i])
			l.entries[i].ID = id
			return true
		}
	}
	return false
}

// Entries returns a copy of the list in order.
func (l *DocumentList) Entries() []DocumentEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]DocumentEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *DocumentList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
