// Package listquery implements the list-view query state shared by every
// list screen: a filter map plus a 1-indexed page, kept in canonical
// correspondence with a URL query string, and a controller that debounces
// fast-changing filter fields before committing them.
package listquery

import (
	"net/url"
	"strconv"
)

// Reserved query parameter names used for pagination/sorting, not filtering.
var reservedParams = map[string]bool{
	"page":      true,
	"page_size": true,
	"sort":      true,
}

// DefaultPage is the page used when the URL carries no usable page value.
const DefaultPage = 1

// Filters maps filter-field names to their current values. An empty value
// means the field is inactive and is omitted from the encoded URL.
type Filters map[string]string

// Clone returns an independent copy of f.
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// merge applies partial on top of f, keeping keys absent from partial.
func (f Filters) merge(partial map[string]string) {
	for k, v := range partial {
		f[k] = v
	}
}

// Decode extracts the filter state and page from a URL query string.
// Reserved parameters and empty values are skipped; a malformed or
// non-positive page falls back to DefaultPage.
func Decode(values url.Values) (Filters, int) {
	filters := make(Filters)
	for key, vs := range values {
		if reservedParams[key] {
			continue
		}
		if len(vs) > 0 && vs[0] != "" {
			filters[key] = vs[0]
		}
	}

	page := DefaultPage
	if raw := values.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			page = n
		}
	}

	return filters, page
}

// Encode produces the canonical query string values for a filter state and
// page. Empty filter values are omitted, and the default page is omitted,
// so Encode∘Decode is the identity on canonical states.
func Encode(filters Filters, page int) url.Values {
	values := url.Values{}
	for k, v := range filters {
		if v != "" {
			values.Set(k, v)
		}
	}
	if page > DefaultPage {
		values.Set("page", strconv.Itoa(page))
	}
	return values
}
