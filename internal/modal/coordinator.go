// Package modal coordinates a page's named, mutually-exclusive modals.
// Each page declares its modal visibility as independent boolean setters;
// the coordinator guarantees at most one is ever true by closing
// everything before opening anything. Tracking a separate "active modal"
// variable instead would have to be kept in sync with setters the pages
// already own, and would drift.
package modal

import "log/slog"

// RulerSwitch is the on/off switch of the non-stacked ruler overlay,
// owned elsewhere. Any open modal dismisses the ruler unless the caller
// opts out.
type RulerSwitch interface {
	Active() bool
	Hide()
}

// PaneSwitcher abstracts the responsive two-pane layout. In single-pane
// mode only one pane renders at a time, and a modal opened while the
// other pane is showing would be unreachable.
type PaneSwitcher interface {
	SinglePane() bool
	ShowEditorPane()
}

// Setter shows or hides one named modal.
type Setter func(visible bool)

// Coordinator enforces mutual exclusion across a page's modals and
// couples opening a modal to ruler dismissal and pane switching.
type Coordinator struct {
	names   []string
	setters map[string]Setter
	ruler   RulerSwitch
	panes   PaneSwitcher
	logger  *slog.Logger
}

// Option adjusts a single Open call.
type Option func(*openOptions)

type openOptions struct {
	keepRuler bool
}

// WithKeepRuler leaves the ruler overlay up when the modal opens. Used
// by modals that configure the ruler itself.
func WithKeepRuler() Option {
	return func(o *openOptions) { o.keepRuler = true }
}

// New creates a coordinator. ruler and panes may be nil when the page
// has no ruler or no responsive layout.
func New(ruler RulerSwitch, panes PaneSwitcher, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		setters: make(map[string]Setter),
		ruler:   ruler,
		panes:   panes,
		logger:  logger,
	}
}

// Register adds a named modal setter. Registration order is preserved so
// CloseAll behaves deterministically.
func (c *Coordinator) Register(name string, set Setter) {
	if _, exists := c.setters[name]; exists {
		c.logger.Warn("modal setter registered twice", "name", name)
		return
	}
	c.names = append(c.names, name)
	c.setters[name] = set
}

// Open shows the named modal and nothing else. Every registered setter
// is driven false first, unconditionally; an unknown name is a caller
// bug that is logged only after the close-all step has completed, so the
// page is never left with a stale modal up.
func (c *Coordinator) Open(name string, opts ...Option) {
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}

	c.CloseAll()

	if !o.keepRuler && c.ruler != nil && c.ruler.Active() {
		c.ruler.Hide()
	}

	set, ok := c.setters[name]
	if !ok {
		c.logger.Warn("open requested for unknown modal", "name", name)
		return
	}
	set(true)

	if c.panes != nil && c.panes.SinglePane() {
		c.panes.ShowEditorPane()
	}
}

// CloseAll drives every registered setter false.
func (c *Coordinator) CloseAll() {
	for _, name := range c.names {
		c.setters[name](false)
	}
}
