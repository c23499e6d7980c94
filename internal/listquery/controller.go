package listquery

import (
	"net/url"
	"strconv"
	"sync"
	"time"
)

// DefaultPageSize is the fixed page size every list screen requests.
const DefaultPageSize = 20

// Snapshot is the committed state handed to the OnCommit hook and used to
// build outgoing query parameters.
type Snapshot struct {
	Filters Filters
	Page    int
}

// Options configures a Controller.
type Options struct {
	// InitialQuery is the current URL's query string at mount. Filter
	// state and page are decoded from it; parameters that belong to other
	// UI regions are preserved untouched on every navigation.
	InitialQuery url.Values

	// InitialFilters seeds filter fields, overriding InitialQuery values.
	InitialFilters Filters

	// Fields names the filter fields this screen owns. When non-empty,
	// only these keys are decoded from InitialQuery as filter state;
	// other non-reserved parameters are treated as belonging to another
	// UI region and passed through untouched. When empty, every
	// non-reserved parameter is a filter.
	Fields []string

	// DebounceFields lists filter fields whose updates wait out
	// DebounceDelay before committing. Fields not listed commit
	// synchronously.
	DebounceFields []string
	DebounceDelay  time.Duration

	// Navigate rewrites the URL query string after every commit so that
	// reload and share reproduce the identical view.
	Navigate func(url.Values)

	// OnCommit fires exactly once per committed change (filters or page).
	OnCommit func(Snapshot)

	// PageSize overrides DefaultPageSize in Params output.
	PageSize int
}

// Controller owns the current page and filter values for one list screen.
// It is the single writer of this screen's query parameters: commits merge
// the canonical encoding of its own state with any unrelated parameters
// found in the initial URL.
//
// Debounce semantics: each debounced field owns one timer; a newer update
// to the same field cancels and restarts it, so only the final value after
// the quiet period commits. Updates to different debounced fields settle
// independently. Every commit — immediate or settled — resets the page to
// 1, once per settling event.
type Controller struct {
	mu       sync.Mutex
	filters  Filters
	page     int
	pageSize int
	foreign  url.Values
	debounce map[string]bool
	delay    time.Duration
	timers   map[string]*time.Timer
	pending  map[string]string
	navigate func(url.Values)
	onCommit func(Snapshot)
	closed   bool
}

// New creates a Controller from opts. Filter state and page come from
// InitialQuery (overlaid by InitialFilters); a malformed page falls back
// to 1.
func New(opts Options) *Controller {
	filters, page := Decode(opts.InitialQuery)

	owned := make(map[string]bool, len(opts.Fields)+len(opts.InitialFilters))
	for _, f := range opts.Fields {
		owned[f] = true
	}
	for f := range opts.InitialFilters {
		owned[f] = true
	}
	if len(owned) > 0 {
		for key := range filters {
			if !owned[key] {
				delete(filters, key)
			}
		}
	}
	filters.merge(opts.InitialFilters)

	// With no declared field universe every non-reserved parameter is a
	// filter, so nothing is foreign.
	foreign := url.Values{}
	if len(owned) > 0 {
		for key, vs := range opts.InitialQuery {
			if reservedParams[key] || owned[key] {
				continue
			}
			foreign[key] = append([]string(nil), vs...)
		}
	}

	debounce := make(map[string]bool, len(opts.DebounceFields))
	for _, f := range opts.DebounceFields {
		debounce[f] = true
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Controller{
		filters:  filters,
		page:     page,
		pageSize: pageSize,
		foreign:  foreign,
		debounce: debounce,
		delay:    opts.DebounceDelay,
		timers:   make(map[string]*time.Timer),
		pending:  make(map[string]string),
		navigate: opts.Navigate,
		onCommit: opts.OnCommit,
	}
}

// FilterChange merges a partial filter update. Debounced keys are parked
// until their quiet period elapses (last write wins); the rest commit
// immediately. A mixed update commits its immediate portion at once while
// the debounced portion waits out its own timer.
func (c *Controller) FilterChange(partial map[string]string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	immediate := make(map[string]string)
	for key, value := range partial {
		if !c.debounce[key] {
			immediate[key] = value
			continue
		}
		c.pending[key] = value
		if t, ok := c.timers[key]; ok {
			t.Stop()
		}
		key := key
		c.timers[key] = time.AfterFunc(c.delay, func() { c.settle(key) })
	}

	if len(immediate) == 0 {
		c.mu.Unlock()
		return
	}

	c.filters.merge(immediate)
	for key := range immediate {
		delete(c.foreign, key)
	}
	c.page = DefaultPage
	values, snap := c.commitLocked()
	c.mu.Unlock()
	c.fire(values, snap)
}

// settle commits the pending value of one debounced field after its quiet
// period. A timer that fires after Close or after being superseded is a
// no-op.
func (c *Controller) settle(key string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	value, ok := c.pending[key]
	if !ok {
		c.mu.Unlock()
		return
	}
	delete(c.pending, key)
	delete(c.timers, key)

	c.filters[key] = value
	delete(c.foreign, key)
	c.page = DefaultPage
	values, snap := c.commitLocked()
	c.mu.Unlock()
	c.fire(values, snap)
}

// PageChange sets the current page verbatim and commits immediately.
// Range validation is the caller's responsibility.
func (c *Controller) PageChange(page int) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.page = page
	values, snap := c.commitLocked()
	c.mu.Unlock()
	c.fire(values, snap)
}

// Snapshot returns the committed filter state and page. Pending debounced
// values are not visible until they settle.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{Filters: c.filters.Clone(), Page: c.page}
}

// Params returns the query parameters for the data layer: committed
// filters plus page and page_size. The returned values are the cache key
// for the outgoing request.
func (c *Controller) Params() url.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	values := url.Values{}
	for k, v := range c.filters {
		if v != "" {
			values.Set(k, v)
		}
	}
	values.Set("page", strconv.Itoa(c.page))
	values.Set("page_size", strconv.Itoa(c.pageSize))
	return values
}

// Close stops all outstanding debounce timers. Timers that already fired
// observe the closed flag and do not commit; no state mutation happens
// after Close returns.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for key, t := range c.timers {
		t.Stop()
		delete(c.timers, key)
	}
	for key := range c.pending {
		delete(c.pending, key)
	}
}

// commitLocked builds the navigation values and snapshot for the current
// state. Callers must hold the mutex and invoke fire after releasing it.
func (c *Controller) commitLocked() (url.Values, Snapshot) {
	values := Encode(c.filters, c.page)
	for key, vs := range c.foreign {
		values[key] = append([]string(nil), vs...)
	}
	return values, Snapshot{Filters: c.filters.Clone(), Page: c.page}
}

// fire invokes the navigation and commit callbacks outside the lock.
func (c *Controller) fire(values url.Values, snap Snapshot) {
	if c.navigate != nil {
		c.navigate(values)
	}
	if c.onCommit != nil {
		c.onCommit(snap)
	}
}
