// Package registry tracks every open overlay across the application in a
// single ordered stack, so dismissal can always find the topmost surface.
package registry

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// Layer is the stacking class an overlay belongs to. It determines the
// overlay's z-band and its default dismissal rules.
type Layer int

const (
	LayerModal Layer = iota
	LayerPopover
	LayerSheet
	LayerToast
)

// String returns the layer name for logs and diagnostics.
func (l Layer) String() string {
	switch l {
	case LayerModal:
		return "modal"
	case LayerPopover:
		return "popover"
	case LayerSheet:
		return "sheet"
	case LayerToast:
		return "toast"
	default:
		return "unknown"
	}
}

// Instance is one currently-open overlay.
type Instance struct {
	ID      string
	Layer   Layer
	OnClose func()
}

// Registry is the process-wide ordered collection of open overlays.
// Insertion order defines recency: the last registered instance is the
// topmost. It is constructed once at application start and injected into
// everything that needs it; tests build isolated instances.
//
// All operations are total: duplicate registration and unknown
// unregistration degrade the UI at worst, they never panic.
type Registry struct {
	instances []Instance
	logger    *slog.Logger
}

// New creates an empty registry.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		instances: make([]Instance, 0),
		logger:    logger,
	}
}

// Register adds an instance to the top of the stack. A duplicate id is a
// caller bug (registering twice without unregistering, usually broken
// lifecycle wiring); the first registration wins and a warning is logged.
func (r *Registry) Register(id string, layer Layer, onClose func()) {
	for _, inst := range r.instances {
		if inst.ID == id {
			r.logger.Warn("overlay registered twice without unregister",
				"id", id, "layer", layer.String())
			return
		}
	}
	r.instances = append(r.instances, Instance{ID: id, Layer: layer, OnClose: onClose})
	r.logger.Debug("overlay registered", "id", id, "layer", layer.String(), "depth", len(r.instances))
}

// Unregister removes the instance with the given id. Unknown ids are a
// silent no-op: a component tearing down after an external dismissal has
// already removed it is expected, not an error.
func (r *Registry) Unregister(id string) {
	for i, inst := range r.instances {
		if inst.ID == id {
			r.instances = append(r.instances[:i], r.instances[i+1:]...)
			r.logger.Debug("overlay unregistered", "id", id, "depth", len(r.instances))
			return
		}
	}
}

// Topmost returns the id of the most recently registered instance,
// optionally filtered to the given layers. The second return is false
// when no instance matches.
func (r *Registry) Topmost(layers ...Layer) (string, bool) {
	for i := len(r.instances) - 1; i >= 0; i-- {
		if matchesLayer(r.instances[i].Layer, layers) {
			return r.instances[i].ID, true
		}
	}
	return "", false
}

// CloseTopmost dispatches a close request to the topmost instance,
// optionally filtered to the given layers. Escape is routed here rather
// than through per-overlay key handlers so that exactly one surface
// reacts, regardless of the order independent handlers would fire in.
//
// The instance stays registered until its owner responds to the request
// by unregistering; the registry never mutates visibility itself.
func (r *Registry) CloseTopmost(layers ...Layer) bool {
	for i := len(r.instances) - 1; i >= 0; i-- {
		inst := r.instances[i]
		if !matchesLayer(inst.Layer, layers) {
			continue
		}
		r.logger.Debug("close requested for topmost overlay", "id", inst.ID, "layer", inst.Layer.String())
		if inst.OnClose != nil {
			inst.OnClose()
		}
		return true
	}
	return false
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	return len(r.instances)
}

func matchesLayer(l Layer, layers []Layer) bool {
	if len(layers) == 0 {
		return true
	}
	for _, want := range layers {
		if l == want {
			return true
		}
	}
	return false
}

var idCounter atomic.Uint64

// NextID generates a unique instance id for the lifetime of the process:
// a monotonic counter plus the creation timestamp.
func NextID() string {
	return fmt.Sprintf("ovl-%d-%d", idCounter.Add(1), time.Now().UnixNano())
}
