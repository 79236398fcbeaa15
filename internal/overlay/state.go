// Package overlay owns the loaded layers and the active layer selector.
package overlay

import (
	"sync"

	"github.com/woozymasta/clustermap/internal/loader"
	"github.com/woozymasta/clustermap/internal/style"
)

// Layer is a registered overlay with its last load result.
type Layer struct {
	Collection *loader.Collection
	Err        error
	Kind       style.Kind
}

// State holds the active layer and the collections behind every layer.
// Collections are swapped whole; a reader never observes a partial one.
type State struct {
	layers map[style.Kind]*Layer
	subs   []func(style.Kind)
	active style.Kind

	mu       sync.RWMutex
	changeMu sync.Mutex // serializes active changes and their notifications
}

// New returns a state with every known layer registered empty.
func New(active style.Kind) *State {
	s := &State{
		layers: make(map[style.Kind]*Layer, len(style.Kinds)),
		active: active,
	}
	for _, k := range style.Kinds {
		s.layers[k] = &Layer{Kind: k}
	}
	return s
}

// Active returns the active layer.
func (s *State) Active() style.Kind {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SetActive selects kind and notifies subscribers, even when unchanged.
func (s *State) SetActive(kind style.Kind) {
	s.changeMu.Lock()
	defer s.changeMu.Unlock()

	s.mu.Lock()
	s.active = kind
	subs := append([]func(style.Kind){}, s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(kind)
	}
}

// Toggle switches to the next layer and returns it.
func (s *State) Toggle() style.Kind {
	next := style.Clusters
	if s.Active() == style.Clusters {
		next = style.Geological
	}
	s.SetActive(next)
	return next
}

// Subscribe registers fn to run after every active layer change.
func (s *State) Subscribe(fn func(style.Kind)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Replace stores the result of loading kind. On error the previous
// collection is dropped and the layer stays empty.
func (s *State) Replace(kind style.Kind, c *loader.Collection, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := &Layer{Kind: kind, Collection: c, Err: err}
	if err != nil {
		l.Collection = nil
	}
	s.layers[kind] = l
}

// Layer returns a snapshot of the layer entry.
func (s *State) Layer(kind style.Kind) (Layer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.layers[kind]
	if !ok {
		return Layer{}, false
	}
	return *l, true
}

// Layers returns snapshots of all layers in display order.
func (s *State) Layers() []Layer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Layer, 0, len(s.layers))
	for _, k := range style.Kinds {
		if l, ok := s.layers[k]; ok {
			out = append(out, *l)
		}
	}
	return out
}
