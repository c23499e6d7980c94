// Package wizard implements the multi-section onboarding form aggregator:
// independently-rendered tabs collaboratively build one nested payload
// through a shared set-value contract, with whole-object validation whose
// failures are attributed to dotted field paths.
package wizard

import (
	"strings"
	"sync"
)

// Form holds one nested form object. Top-level scalars and nested section
// objects are addressed by dotted paths ("contract.start_date"). Setting a
// path merges non-destructively: sibling sections set by other tabs are
// never cleared.
type Form struct {
	mu     sync.Mutex
	fields map[string]any
	errors map[string]string
}

// NewForm creates an empty form.
func NewForm() *Form {
	return &Form{fields: make(map[string]any)}
}

// Set writes value at the dotted path, creating intermediate section maps
// as needed. Existing sibling paths are preserved.
func (f *Form) Set(path string, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	segments := strings.Split(path, ".")
	node := f.fields
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[seg] = child
		}
		node = child
	}
	node[segments[len(segments)-1]] = value
}

// Get reads the value at the dotted path. The second return reports
// whether the path has been set.
func (f *Form) Get(path string) (any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	segments := strings.Split(path, ".")
	node := f.fields
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			return nil, false
		}
		node = child
	}
	v, ok := node[segments[len(segments)-1]]
	return v, ok
}

// Values returns a deep copy of the nested form object.
func (f *Form) Values() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyTree(f.fields)
}

// Errors returns the full validation error set from the last Validate call,
// keyed by dotted path.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// SectionErrors returns the validation errors scoped to one tab: entries
// whose path equals prefix or starts with prefix followed by a dot. Tabs
// render only their own section's errors.
func (f *Form) SectionErrors(prefix string) map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string)
	for path, msg := range f.errors {
		if path == prefix || strings.HasPrefix(path, prefix+".") {
			out[path] = msg
		}
	}
	return out
}

// TopLevelErrors returns errors attributed to non-nested paths.
func (f *Form) TopLevelErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string)
	for path, msg := range f.errors {
		if !strings.Contains(path, ".") {
			out[path] = msg
		}
	}
	return out
}

func (f *Form) setErrors(errs map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = errs
}

func copyTree(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		if child, ok := v.(map[string]any); ok {
			out[k] = copyTree(child)
			continue
		}
		out[k] = v
	}
	return out
}
