package listing

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultDebounce is the settle time applied to search input.
const DefaultDebounce = 300 * time.Millisecond

// Result is what a list screen renders: the filtered items plus enough
// context to show an explicit empty state.
type Result[T any] struct {
	Items []T
	Total int
	Query Query
}

// Empty reports whether nothing matched.
func (r Result[T]) Empty() bool { return len(r.Items) == 0 }

// Filtered reports whether the query hid some of the loaded items.
func (r Result[T]) Filtered() bool { return !r.Query.IsZero() }

// FetchFunc loads the full collection from the API.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Page holds one loaded collection and its filter state. Loads are
// sequenced: a response for a superseded Load is discarded.
type Page[T any] struct {
	resource string
	fetch    FetchFunc[T]
	match    Matcher[T]
	seq      *Sequencer
	debounce *Debouncer
	logger   *slog.Logger

	mu     sync.Mutex
	items  []T
	query  Query
	loaded bool
	render func(Result[T])
}

// PageConfig configures a Page.
type PageConfig struct {
	Debounce  time.Duration
	Sequencer *Sequencer
	Logger    *slog.Logger
}

// NewPage creates a list page for resource.
func NewPage[T any](resource string, fetch FetchFunc[T], match Matcher[T], cfg PageConfig) *Page[T] {
	if cfg.Sequencer == nil {
		cfg.Sequencer = NewSequencer()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Page[T]{
		resource: resource,
		fetch:    fetch,
		match:    match,
		seq:      cfg.Sequencer,
		debounce: NewDebouncer(cfg.Debounce),
		logger:   cfg.Logger,
	}
}

// OnRender registers the callback invoked after every debounced query
// change and every applied load.
func (p *Page[T]) OnRender(fn func(Result[T])) {
	p.mu.Lock()
	p.render = fn
	p.mu.Unlock()
}

// Load fetches the collection and applies the current query. If another
// Load started meanwhile, this response is dropped and the result reflects
// whatever is currently held; stale reports that case.
func (p *Page[T]) Load(ctx context.Context) (res Result[T], stale bool, err error) {
	ticket := p.seq.Begin(p.resource)

	items, err := p.fetch(ctx)
	if err != nil {
		return Result[T]{}, false, err
	}

	p.mu.Lock()
	if !ticket.Current() {
		res = p.resultLocked()
		p.mu.Unlock()
		p.logger.DebugContext(ctx, "dropping stale response",
			slog.String("resource", p.resource),
			slog.Uint64("ticket", ticket.ID()),
		)
		return res, true, nil
	}
	p.items = items
	p.loaded = true
	res = p.resultLocked()
	render := p.render
	p.mu.Unlock()

	if render != nil {
		render(res)
	}
	return res, false, nil
}

// Loaded reports whether a load has been applied.
func (p *Page[T]) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// Apply sets the query and filters immediately, without debouncing or
// rendering.
func (p *Page[T]) Apply(q Query) Result[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.query = q
	return p.resultLocked()
}

// SetQuery records the query and re-renders once input has settled.
func (p *Page[T]) SetQuery(q Query) {
	p.debounce.Trigger(func() {
		res := p.Apply(q)
		p.mu.Lock()
		render := p.render
		p.mu.Unlock()
		if render != nil {
			render(res)
		}
	})
}

// Flush forces a pending SetQuery to run now.
func (p *Page[T]) Flush() { p.debounce.Flush() }

// Close drops any pending SetQuery.
func (p *Page[T]) Close() { p.debounce.Stop() }

// Current returns the filtered view for the current query.
func (p *Page[T]) Current() Result[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resultLocked()
}

// Items returns every loaded item, unfiltered.
func (p *Page[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

func (p *Page[T]) resultLocked() Result[T] {
	return Result[T]{
		Items: Filter(p.items, p.query, p.match),
		Total: len(p.items),
		Query: p.query,
	}
}
