package alerts

import (
	"context"
	"sync"

	"fraudwatch/pkg/log"
)

// Searcher is the backend search operation the view model depends on.
type Searcher interface {
	Search(ctx context.Context, filter Filter, page, size int) (*Page, error)
}

// SearchOptions configures a SearchView.
type SearchOptions struct {
	// AutoFetch runs a fetch asynchronously whenever filters, page or
	// page size change.
	AutoFetch   bool
	InitialPage int
	InitialSize int
}

// SearchState is a consistent snapshot of the view model.
type SearchState struct {
	Alerts        []Alert
	Filters       Filter
	Page          int
	PageSize      int
	TotalElements int64
	TotalPages    int
	Loading       bool
	Error         string
}

// SearchView holds client-side pagination and filter state over the alert
// search endpoint. Changing what you are looking for always restarts
// pagination: SetFilters and ClearFilters reset the page to 0. A fetch
// that loses a race against a newer fetch (or against Close) discards its
// response instead of clobbering fresher state.
type SearchView struct {
	searcher  Searcher
	logger    log.Logger
	autoFetch bool

	mu            sync.Mutex
	filters       Filter
	page          int
	size          int
	alerts        []Alert
	totalElements int64
	totalPages    int
	loading       bool
	lastError     string
	generation    uint64
	closed        bool

	lifetime context.Context
	cancel   context.CancelFunc
}

// NewSearchView creates a view model over the given searcher.
func NewSearchView(searcher Searcher, opts SearchOptions, logger log.Logger) *SearchView {
	size := opts.InitialSize
	if size <= 0 {
		size = 10
	}
	page := opts.InitialPage
	if page < 0 {
		page = 0
	}

	ctx, cancel := context.WithCancel(context.Background())

	v := &SearchView{
		searcher:  searcher,
		logger:    logger,
		autoFetch: opts.AutoFetch,
		page:      page,
		size:      size,
		lifetime:  ctx,
		cancel:    cancel,
	}

	if opts.AutoFetch {
		go v.Fetch(ctx)
	}

	return v
}

// SetFilters replaces the active filter and resets the page to 0.
func (v *SearchView) SetFilters(f Filter) {
	v.mu.Lock()
	v.filters = f
	v.page = 0
	v.mu.Unlock()

	v.maybeAutoFetch()
}

// ClearFilters drops every filter and resets the page to 0.
func (v *SearchView) ClearFilters() {
	v.SetFilters(Filter{})
}

// SetPage moves to the given zero-indexed page without altering filters.
func (v *SearchView) SetPage(page int) {
	v.mu.Lock()
	if page < 0 {
		page = 0
	}
	v.page = page
	v.mu.Unlock()

	v.maybeAutoFetch()
}

// SetPageSize changes the page size without altering filters.
func (v *SearchView) SetPageSize(size int) {
	v.mu.Lock()
	if size > 0 {
		v.size = size
	}
	v.mu.Unlock()

	v.maybeAutoFetch()
}

// Fetch runs one search with the current coordinates. On success the
// returned page's content and totals replace the view state; on failure a
// readable message lands in Error and the previous content stays in place.
// Loading is always cleared on completion.
func (v *SearchView) Fetch(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	v.generation++
	gen := v.generation
	filter, page, size := v.filters, v.page, v.size
	v.loading = true
	v.lastError = ""
	v.mu.Unlock()

	result, err := v.searcher.Search(ctx, filter, page, size)

	v.mu.Lock()
	defer v.mu.Unlock()

	// A newer fetch (or teardown) owns the state now.
	if gen != v.generation || v.closed {
		return nil
	}

	v.loading = false
	if err != nil {
		v.lastError = err.Error()
		if v.logger != nil {
			v.logger.Errorf(ctx, "Alert search failed: %v", err)
		}
		return err
	}

	v.alerts = result.Content
	v.totalElements = result.TotalElements
	v.totalPages = result.TotalPages
	return nil
}

// Refresh re-runs the current search.
func (v *SearchView) Refresh(ctx context.Context) error {
	return v.Fetch(ctx)
}

// State returns a consistent snapshot for rendering.
func (v *SearchView) State() SearchState {
	v.mu.Lock()
	defer v.mu.Unlock()

	alerts := make([]Alert, len(v.alerts))
	copy(alerts, v.alerts)

	return SearchState{
		Alerts:        alerts,
		Filters:       v.filters,
		Page:          v.page,
		PageSize:      v.size,
		TotalElements: v.totalElements,
		TotalPages:    v.totalPages,
		Loading:       v.loading,
		Error:         v.lastError,
	}
}

// Close tears the view model down; a late-arriving fetch response no
// longer updates state.
func (v *SearchView) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()

	v.cancel()
}

func (v *SearchView) maybeAutoFetch() {
	if !v.autoFetch {
		return
	}
	go v.Fetch(v.lifetime)
}
