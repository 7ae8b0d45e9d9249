package gallery

// Overlay models the keyboard-driven search overlay embedded in the rendered
// gallery page. The Go model mirrors the client script so its transitions
// can be tested without a browser: closed <-> open, typing refilters, arrow
// keys move a single highlighted index clamped to the result bounds, and
// selecting returns the highlighted entry's URL.
type Overlay struct {
	entries []Entry
	open    bool
	query   string
	results []Entry
	cursor  int
}

// NewOverlay builds an overlay over the given search index.
func NewOverlay(entries []Entry) *Overlay {
	return &Overlay{entries: entries}
}

// IsOpen reports whether the overlay is visible.
func (o *Overlay) IsOpen() bool { return o.open }

// Query returns the current filter text.
func (o *Overlay) Query() string { return o.query }

// Results returns the current filtered entries.
func (o *Overlay) Results() []Entry {
	if !o.open {
		return nil
	}
	return o.results
}

// Cursor returns the highlighted index within Results.
func (o *Overlay) Cursor() int { return o.cursor }

// Open shows the overlay with an empty query and every entry listed.
func (o *Overlay) Open() {
	o.open = true
	o.query = ""
	o.results = Filter(o.entries, "")
	o.cursor = 0
}

// Close hides the overlay and drops its state.
func (o *Overlay) Close() {
	o.open = false
	o.query = ""
	o.results = nil
	o.cursor = 0
}

// Type replaces the filter text and resets the highlight to the first
// result. No-op while closed.
func (o *Overlay) Type(query string) {
	if !o.open {
		return
	}
	o.query = query
	o.results = Filter(o.entries, query)
	o.cursor = 0
}

// Move shifts the highlight by delta, clamped to the result bounds.
func (o *Overlay) Move(delta int) {
	if !o.open || len(o.results) == 0 {
		return
	}
	o.cursor += delta
	if o.cursor < 0 {
		o.cursor = 0
	}
	if o.cursor > len(o.results)-1 {
		o.cursor = len(o.results) - 1
	}
}

// Select returns the highlighted entry's URL and closes the overlay.
// Selecting with no results reports false and leaves the overlay open.
func (o *Overlay) Select() (string, bool) {
	if !o.open || len(o.results) == 0 {
		return "", false
	}
	url := o.results[o.cursor].URL
	o.Close()
	return url, true
}
